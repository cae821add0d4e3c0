package service

import (
	"errors"

	"github.com/eventify/eventify-backend/internal/models"
	"github.com/eventify/eventify-backend/internal/repository"
	"github.com/eventify/eventify-backend/pkg/bcrypt"
	jwtPkg "github.com/eventify/eventify-backend/pkg/jwt"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
	logger    *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, adminRepo repository.AdminRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		logger:    logger,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := jwtPkg.Generate(user.ID, models.RoleUser)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.Uint("user_id", user.ID))

	return &models.AuthResponse{
		Token:  token,
		UserID: user.ID,
		Role:   models.RoleUser,
	}, nil
}

func (s *AuthService) LoginUser(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwtPkg.Generate(user.ID, models.RoleUser)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:  token,
		UserID: user.ID,
		Role:   models.RoleUser,
	}, nil
}

func (s *AuthService) LoginAdmin(req models.LoginRequest) (*models.AuthResponse, error) {
	admin, err := s.adminRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := bcrypt.ComparePassword(admin.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwtPkg.Generate(admin.ID, models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	s.logger.Info("admin logged in", zap.Uint("admin_id", admin.ID))

	return &models.AuthResponse{
		Token:  token,
		UserID: admin.ID,
		Role:   models.RoleAdmin,
	}, nil
}
