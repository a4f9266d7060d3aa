package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-manager/internal/domain/studio"
	"github.com/BruksfildServices01/studio-manager/internal/models"
	"github.com/BruksfildServices01/studio-manager/internal/tenancy"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, tenancy.NotFound(err, "user_not_found")
	}
	return &user, nil
}

func (r *AccountGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		return nil, tenancy.NotFound(err, "user_not_found")
	}
	return &user, nil
}

func (r *AccountGormRepository) EmailTaken(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	return count > 0, err
}

func (r *AccountGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *AccountGormRepository) SaveUser(
	ctx context.Context,
	user *models.User,
) error {
	res := r.db.WithContext(ctx).
		Model(user).
		Select("*").
		Omit("ID", "Email", "ManagedByID", "CreatedAt").
		Updates(user)
	return tenancy.Affected(res, "user_not_found")
}

// managedBy restricts a query to ownerID and the users it created.
func managedBy(ownerID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("(id = ? OR managed_by_id = ?)", ownerID, ownerID)
	}
}

func (r *AccountGormRepository) GetManagedUser(
	ctx context.Context,
	ownerID uint,
	id uint,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Scopes(managedBy(ownerID)).
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, tenancy.NotFound(err, "user_not_found")
	}
	return &user, nil
}

func (r *AccountGormRepository) ListManagedUsers(
	ctx context.Context,
	ownerID uint,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Scopes(managedBy(ownerID)).
		Order("created_at DESC, id DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Compile-time check
var _ studio.AccountRepository = (*AccountGormRepository)(nil)
