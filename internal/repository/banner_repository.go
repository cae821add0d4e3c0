package repository

import (
	"github.com/eventify/eventify-backend/internal/models"
	"gorm.io/gorm"
)

type BannerRepository interface {
	Create(banner *models.Banner) error
	GetByID(id uint) (*models.Banner, error)
	GetAll() ([]models.Banner, error)
	Update(banner *models.Banner) error
	Delete(id uint) error
}

type bannerRepository struct {
	db *gorm.DB
}

var _ BannerRepository = (*bannerRepository)(nil)

func NewBannerRepository(db *gorm.DB) *bannerRepository {
	return &bannerRepository{db: db}
}

func (r *bannerRepository) Create(banner *models.Banner) error {
	return r.db.Create(banner).Error
}

func (r *bannerRepository) GetByID(id uint) (*models.Banner, error) {
	var banner models.Banner
	if err := r.db.First(&banner, id).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepository) GetAll() ([]models.Banner, error) {
	var banners []models.Banner
	err := r.db.Find(&banners).Error
	return banners, err
}

func (r *bannerRepository) Update(banner *models.Banner) error {
	return r.db.Save(banner).Error
}

func (r *bannerRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Banner{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
