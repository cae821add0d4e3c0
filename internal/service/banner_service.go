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

type BannerService struct {
	bannerRepo repository.BannerRepository
	storage    storage.Storage
	logger     *zap.Logger
}

func NewBannerService(bannerRepo repository.BannerRepository, store storage.Storage, logger *zap.Logger) *BannerService {
	return &BannerService{
		bannerRepo: bannerRepo,
		storage:    store,
		logger:     logger,
	}
}

func (s *BannerService) Create(req models.BannerRequest, image *multipart.FileHeader) (*models.Banner, error) {
	if image == nil {
		return nil, ErrImageRequired
	}

	path, err := s.storage.Save(image)
	if err != nil {
		return nil, err
	}

	banner := &models.Banner{
		EventName: req.EventName,
		Location:  req.Location,
		Image:     path,
	}
	if err := s.bannerRepo.Create(banner); err != nil {
		return nil, err
	}
	return banner, nil
}

func (s *BannerService) GetAll() ([]models.Banner, error) {
	return s.bannerRepo.GetAll()
}

func (s *BannerService) Update(id uint, req models.UpdateBannerRequest, image *multipart.FileHeader) (*models.Banner, error) {
	banner, err := s.bannerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.EventName != nil {
		banner.EventName = *req.EventName
	}
	if req.Location != nil {
		banner.Location = *req.Location
	}
	if image != nil {
		path, err := s.storage.Save(image)
		if err != nil {
			return nil, err
		}
		if err := s.storage.Delete(banner.Image); err != nil {
			s.logger.Warn("failed to delete old banner image", zap.String("path", banner.Image), zap.Error(err))
		}
		banner.Image = path
	}

	if err := s.bannerRepo.Update(banner); err != nil {
		return nil, err
	}
	return banner, nil
}

func (s *BannerService) Delete(id uint) error {
	banner, err := s.bannerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.bannerRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.storage.Delete(banner.Image); err != nil {
		s.logger.Warn("failed to delete banner image", zap.String("path", banner.Image), zap.Error(err))
	}
	return nil
}
