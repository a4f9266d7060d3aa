package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-manager/internal/httperr"
	"github.com/BruksfildServices01/studio-manager/internal/httpresp"
	"github.com/BruksfildServices01/studio-manager/internal/middleware"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	ucAccount "github.com/BruksfildServices01/studio-manager/internal/usecase/account"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	register       *ucAccount.Register
	login          *ucAccount.Login
	getProfile     *ucAccount.GetProfile
	updateProfile  *ucAccount.UpdateProfile
	changePassword *ucAccount.ChangePassword
	listUsers      *ucAccount.ListUsers
	createUser     *ucAccount.CreateUser
	resetPassword  *ucAccount.ResetPassword
	log            *zap.Logger
}

func NewAuthHandler(
	register *ucAccount.Register,
	login *ucAccount.Login,
	getProfile *ucAccount.GetProfile,
	updateProfile *ucAccount.UpdateProfile,
	changePassword *ucAccount.ChangePassword,
	listUsers *ucAccount.ListUsers,
	createUser *ucAccount.CreateUser,
	resetPassword *ucAccount.ResetPassword,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		register:       register,
		login:          login,
		getProfile:     getProfile,
		updateProfile:  updateProfile,
		changePassword: changePassword,
		listUsers:      listUsers,
		createUser:     createUser,
		resetPassword:  resetPassword,
		log:            log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	StudioName string `json:"studio_name"`
	Timezone   string `json:"timezone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	StudioName *string `json:"studio_name"`
	Timezone   *string `json:"timezone"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// ======================================================
// SESSION
// ======================================================

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.register.Execute(c.Request.Context(), ucAccount.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		StudioName: req.StudioName,
		Timezone:   req.Timezone,
	})
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}

	httpresp.Created(c, sessionResponse{Token: session.Token, User: session.User})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}

	httpresp.OK(c, sessionResponse{Token: session.Token, User: session.User})
}

// ======================================================
// PROFILE
// ======================================================

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.getProfile.Execute(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.OK(c, user)
}

func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.updateProfile.Execute(c.Request.Context(), middleware.Caller(c), ucAccount.ProfileInput{
		Name:       req.Name,
		Phone:      req.Phone,
		StudioName: req.StudioName,
		Timezone:   req.Timezone,
	})
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.OK(c, user)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.changePassword.Execute(
		c.Request.Context(),
		middleware.Caller(c),
		req.CurrentPassword,
		req.NewPassword,
	)
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.OK(c, gin.H{"message": "Password updated."})
}

// ======================================================
// USERS (OWNER)
// ======================================================

func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.listUsers.Execute(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.List(c, users)
}

func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.createUser.Execute(c.Request.Context(), middleware.Caller(c), ucAccount.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.Created(c, user)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.resetPassword.Execute(c.Request.Context(), middleware.Caller(c), id, req.Password); err != nil {
		httperr.Respond(c, middleware.Logger(c, h.log), err)
		return
	}
	httpresp.OK(c, gin.H{"message": "Password reset."})
}
