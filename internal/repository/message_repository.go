package repository

import (
	"github.com/eventify/eventify-backend/internal/models"
	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(message *models.Message) error
	GetAll() ([]models.Message, error)
	Delete(id uint) error
	Count() (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

var _ MessageRepository = (*messageRepository)(nil)

func NewMessageRepository(db *gorm.DB) *messageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) GetAll() ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *messageRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Message{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *messageRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).Count(&count).Error
	return count, err
}
