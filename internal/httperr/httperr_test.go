package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	Respond(c, zap.NewNop(), err)

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRespond_MapsKinds(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrBusiness("invalid_amount"), http.StatusBadRequest, "invalid_amount"},
		{ErrNotFound("event_not_found"), http.StatusNotFound, "event_not_found"},
		{ErrUnauthorized("invalid_token"), http.StatusUnauthorized, "invalid_token"},
		{ErrForbidden("owner_only"), http.StatusForbidden, "owner_only"},
		{ErrConflict("email_taken", "Email already registered."), http.StatusConflict, "email_taken"},
	}

	for _, tc := range cases {
		w, body := respond(t, tc.err)
		assert.Equal(t, tc.status, w.Code, tc.code)
		assert.Equal(t, tc.code, body.Code)
		assert.NotEmpty(t, body.Message)
	}
}

func TestRespond_WrappedBusinessError(t *testing.T) {
	w, body := respond(t, fmt.Errorf("loading: %w", ErrNotFound("client_not_found")))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "client_not_found", body.Code)
}

func TestRespond_HidesInternalDetail(t *testing.T) {
	w, body := respond(t, errors.New("pq: connection refused to 10.0.0.4"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal_error", body.Code)
	assert.NotContains(t, body.Message, "10.0.0.4")
}

func TestIsBusinessAndKind(t *testing.T) {
	err := fmt.Errorf("wrap: %w", ErrForbidden("owner_only"))
	assert.True(t, IsBusiness(err, "owner_only"))
	assert.False(t, IsBusiness(err, "other"))
	assert.True(t, IsKind(err, KindForbidden))
	assert.False(t, IsKind(errors.New("plain"), KindForbidden))
}
