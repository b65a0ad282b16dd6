package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/praneeth8555/dairyadmin/internal/auth/domain"
	"github.com/praneeth8555/dairyadmin/internal/auth/repository"
	"github.com/praneeth8555/dairyadmin/internal/clock"
	"github.com/praneeth8555/dairyadmin/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (domain.Service, *clock.FakeClock) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Admin{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	fake := clock.NewFakeClock(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))

	svc, err := New(Params{
		DB:     db,
		Log:    zap.NewNop(),
		Clock:  fake,
		GenID:  node,
		Config: config.Config{AuthJWTSecret: "test-secret"},
		Repo:   repository.Provide(),
	})
	require.NoError(t, err)
	return svc, fake
}

func TestNewRequiresSecretOutsideDevelopment(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Admin{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	fake := clock.NewFakeClock(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))

	params := Params{
		DB:     db,
		Log:    zap.NewNop(),
		Clock:  fake,
		GenID:  node,
		Config: config.Config{Environment: "production"},
		Repo:   repository.Provide(),
	}
	_, err = New(params)
	require.Error(t, err)

	params.Config.Environment = "development"
	svc, err := New(params)
	require.NoError(t, err)

	// The development fallback key still round-trips tokens.
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, domain.Credentials{Username: "admin", Password: "sup3rsecret"}))
	resp, err := svc.Login(ctx, domain.Credentials{Username: "admin", Password: "sup3rsecret"})
	require.NoError(t, err)

	username, err := svc.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, domain.Credentials{Username: "admin", Password: "sup3rsecret"}))

	resp, err := svc.Login(ctx, domain.Credentials{Username: "admin", Password: "sup3rsecret"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	username, err := svc.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, domain.Credentials{Username: "admin", Password: "sup3rsecret"}))

	_, err := svc.Login(ctx, domain.Credentials{Username: "admin", Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.Credentials{Username: "nobody", Password: "sup3rsecret"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Register(ctx, domain.Credentials{Username: " ", Password: "sup3rsecret"}), domain.ErrInvalidUsername)
	assert.ErrorIs(t, svc.Register(ctx, domain.Credentials{Username: "admin", Password: "short"}), domain.ErrInvalidPassword)

	require.NoError(t, svc.Register(ctx, domain.Credentials{Username: "admin", Password: "sup3rsecret"}))
	assert.ErrorIs(t, svc.Register(ctx, domain.Credentials{Username: "admin", Password: "sup3rsecret"}), domain.ErrUsernameTaken)
}

func TestTokenExpiresAfter24Hours(t *testing.T) {
	svc, fake := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, domain.Credentials{Username: "admin", Password: "sup3rsecret"}))
	resp, err := svc.Login(ctx, domain.Credentials{Username: "admin", Password: "sup3rsecret"})
	require.NoError(t, err)

	fake.Advance(23 * time.Hour)
	_, err = svc.VerifyToken(resp.Token)
	require.NoError(t, err)

	fake.Advance(2 * time.Hour)
	_, err = svc.VerifyToken(resp.Token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
