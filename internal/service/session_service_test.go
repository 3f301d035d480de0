package service

import (
	"testing"

	"go-retail-crm/internal/model"
	"go-retail-crm/internal/repository"
	"go-retail-crm/pkg/config"
	"go-retail-crm/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newSessionService(t *testing.T) SessionService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	local := repository.NewLocalStore(db)
	require.NoError(t, local.Migrate())

	return NewSessionService(local, config.JWTConfig{
		Secret:          "test-secret",
		Issuer:          "go-retail-crm",
		ExpirationHours: 1,
	})
}

func TestLoginAcceptsAnyWellFormedEmail(t *testing.T) {
	svc := newSessionService(t)

	resp, err := svc.Login("someone@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "someone@example.com", resp.User.Email)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)

	claims, err := jwt.ValidateToken(config.JWTConfig{Secret: "test-secret"}, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "someone@example.com", claims.Email)
}

func TestLoginRejectsMalformedEmail(t *testing.T) {
	svc := newSessionService(t)

	for _, email := range []string{"", "not-an-email"} {
		_, err := svc.Login(email)
		assert.ErrorIs(t, err, ErrEmailRequired, "email=%q", email)
	}
}

func TestSessionPersistsUntilLogout(t *testing.T) {
	svc := newSessionService(t)

	user, err := svc.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, user)

	_, err = svc.Login("someone@example.com")
	require.NoError(t, err)

	user, err = svc.CurrentUser()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "someone@example.com", user.Email)

	require.NoError(t, svc.Logout())
	user, err = svc.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, user)
}
