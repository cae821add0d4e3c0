package repository

import (
	"github.com/eventify/eventify-backend/internal/models"
	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(admin *models.Admin) error
	GetByEmail(email string) (*models.Admin, error)
	EmailExists(email string) (bool, error)
}

type adminRepository struct {
	db *gorm.DB
}

var _ AdminRepository = (*adminRepository)(nil)

func NewAdminRepository(db *gorm.DB) *adminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

func (r *adminRepository) GetByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
