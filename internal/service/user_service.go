package service

import (
	"errors"
	"mime/multipart"

	"github.com/eventify/eventify-backend/internal/models"
	"github.com/eventify/eventify-backend/internal/repository"
	"github.com/eventify/eventify-backend/pkg/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
	logger   *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, store storage.Storage, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		storage:  store,
		logger:   logger,
	}
}

func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateProfilePicture(userID uint, file *multipart.FileHeader) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	path, err := s.storage.Save(file)
	if err != nil {
		return nil, err
	}

	if user.ProfilePic != "" {
		if err := s.storage.Delete(user.ProfilePic); err != nil {
			s.logger.Warn("failed to delete old profile picture", zap.String("path", user.ProfilePic), zap.Error(err))
		}
	}

	user.ProfilePic = path
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// Delete removes the user together with their tickets.
func (s *UserService) Delete(id uint) error {
	if err := s.userRepo.DeleteWithTickets(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.logger.Info("user deleted", zap.Uint("user_id", id))
	return nil
}
