package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kampusadmin/dashboard-api/internal/auth"
)

func loginRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := setupMockDB(t)
	tokens := auth.NewTokenManager("test-secret", "dashboard-api", time.Hour)
	h := NewAuthHandler(db, tokens)

	r := gin.New()
	r.POST("/login", h.Login)
	return r, mock
}

func userRows(t *testing.T, password string, active bool) *sqlmock.Rows {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return sqlmock.NewRows([]string{
		"id", "email", "password_hash",
		"can_manage_customers", "can_view_financials",
		"can_manage_partnership_codes", "can_view_partnership_stats",
		"can_manage_access", "is_active",
	}).AddRow(
		5, "gokhan@example.com", string(hash),
		true, true, false, false, false, active,
	)
}

func TestLoginSuccess(t *testing.T) {
	r, mock := loginRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRows(t, "correct-password", true))

	w := doJSON(t, r, http.MethodPost, "/login", gin.H{
		"email":    "gokhan@example.com",
		"password": "correct-password",
	})

	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "bearer", body["token_type"])
	assert.NotEmpty(t, body["access_token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "gokhan@example.com", user["email"])
	assert.Equal(t, true, user["can_manage_customers"])
	assert.Equal(t, false, user["can_manage_access"])
	assert.NotContains(t, user, "password_hash")
}

func TestLoginWrongPassword(t *testing.T) {
	r, mock := loginRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRows(t, "correct-password", true))

	w := doJSON(t, r, http.MethodPost, "/login", gin.H{
		"email":    "gokhan@example.com",
		"password": "wrong-password",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decodeBody(t, w)["error_code"])
}

func TestLoginUnknownEmail(t *testing.T) {
	r, mock := loginRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doJSON(t, r, http.MethodPost, "/login", gin.H{
		"email":    "nobody@example.com",
		"password": "whatever",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decodeBody(t, w)["error_code"])
}

func TestLoginInactiveUser(t *testing.T) {
	r, mock := loginRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRows(t, "correct-password", false))

	w := doJSON(t, r, http.MethodPost, "/login", gin.H{
		"email":    "gokhan@example.com",
		"password": "correct-password",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decodeBody(t, w)["error_code"])
}

func TestLoginMalformedRequest(t *testing.T) {
	r, _ := loginRouter(t)

	w := doJSON(t, r, http.MethodPost, "/login", gin.H{"email": "not-an-email"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
