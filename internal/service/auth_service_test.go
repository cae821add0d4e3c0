package service_test

import (
	"testing"

	"github.com/eventify/eventify-backend/internal/models"
	"github.com/eventify/eventify-backend/internal/service"
	"github.com/eventify/eventify-backend/pkg/bcrypt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newAuthService(userRepo *mockUserRepo, adminRepo *mockAdminRepo) *service.AuthService {
	return service.NewAuthService(userRepo, adminRepo, zap.NewNop())
}

func TestRegister(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("mismatched passwords create nothing", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := newAuthService(userRepo, new(mockAdminRepo))

		_, err := svc.Register(models.RegisterRequest{
			Name:            "Alice",
			Email:           "alice@example.com",
			Password:        "secret1",
			ConfirmPassword: "secret2",
		})
		assert.ErrorIs(t, err, service.ErrPasswordMismatch)
		userRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := newAuthService(userRepo, new(mockAdminRepo))

		userRepo.On("EmailExists", "alice@example.com").Return(true, nil)

		_, err := svc.Register(models.RegisterRequest{
			Name:            "Alice",
			Email:           "alice@example.com",
			Password:        "secret1",
			ConfirmPassword: "secret1",
		})
		assert.ErrorIs(t, err, service.ErrEmailTaken)
		userRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("success stores a hash, never the plaintext", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := newAuthService(userRepo, new(mockAdminRepo))

		userRepo.On("EmailExists", "alice@example.com").Return(false, nil)
		userRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
			user := args.Get(0).(*models.User)
			assert.NotEqual(t, "secret1", user.Password)
			assert.NoError(t, bcrypt.ComparePassword(user.Password, "secret1"))
			user.ID = 42
		}).Return(nil)

		resp, err := svc.Register(models.RegisterRequest{
			Name:            "Alice",
			Email:           "alice@example.com",
			Password:        "secret1",
			ConfirmPassword: "secret1",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(42), resp.UserID)
		assert.Equal(t, models.RoleUser, resp.Role)
		assert.NotEmpty(t, resp.Token)
	})
}

func TestLoginUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := bcrypt.HashPassword("correct-password")
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := newAuthService(userRepo, new(mockAdminRepo))

		userRepo.On("GetByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.LoginUser(models.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := newAuthService(userRepo, new(mockAdminRepo))

		userRepo.On("GetByEmail", "alice@example.com").Return(&models.User{ID: 1, Email: "alice@example.com", Password: hash}, nil)

		_, err := svc.LoginUser(models.LoginRequest{Email: "alice@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("success issues a user token", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := newAuthService(userRepo, new(mockAdminRepo))

		userRepo.On("GetByEmail", "alice@example.com").Return(&models.User{ID: 1, Email: "alice@example.com", Password: hash}, nil)

		resp, err := svc.LoginUser(models.LoginRequest{Email: "alice@example.com", Password: "correct-password"})
		require.NoError(t, err)
		assert.Equal(t, models.RoleUser, resp.Role)
		assert.NotEmpty(t, resp.Token)
	})
}

func TestLoginAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := bcrypt.HashPassword("admin-password")
	require.NoError(t, err)

	t.Run("unknown admin", func(t *testing.T) {
		adminRepo := new(mockAdminRepo)
		svc := newAuthService(new(mockUserRepo), adminRepo)

		adminRepo.On("GetByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.LoginAdmin(models.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("success issues an admin token", func(t *testing.T) {
		adminRepo := new(mockAdminRepo)
		svc := newAuthService(new(mockUserRepo), adminRepo)

		adminRepo.On("GetByEmail", "admin@example.com").Return(&models.Admin{ID: 1, Email: "admin@example.com", Password: hash}, nil)

		resp, err := svc.LoginAdmin(models.LoginRequest{Email: "admin@example.com", Password: "admin-password"})
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, resp.Role)
		assert.NotEmpty(t, resp.Token)
	})
}
