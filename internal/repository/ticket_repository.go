package repository

import (
	"github.com/eventify/eventify-backend/internal/models"
	"gorm.io/gorm"
)

type TicketRepository interface {
	Create(ticket *models.Ticket) error
	GetByID(id uint) (*models.Ticket, error)
	GetByUserID(userID uint) ([]models.Ticket, error)
	GetAll() ([]models.Ticket, error)
	Update(ticket *models.Ticket) error
	Delete(id uint) error
	CountByEventID(eventID uint) (int64, error)
	Count() (int64, error)
}

type ticketRepository struct {
	db *gorm.DB
}

var _ TicketRepository = (*ticketRepository)(nil)

func NewTicketRepository(db *gorm.DB) *ticketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ticket *models.Ticket) error {
	return r.db.Create(ticket).Error
}

func (r *ticketRepository) GetByID(id uint) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := r.db.First(&ticket, id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) GetByUserID(userID uint) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.Preload("Event").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *ticketRepository) GetAll() ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.Preload("Event").Preload("User").
		Order("created_at DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *ticketRepository) Update(ticket *models.Ticket) error {
	return r.db.Save(ticket).Error
}

func (r *ticketRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Ticket{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ticketRepository) CountByEventID(eventID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Ticket{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}

func (r *ticketRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Ticket{}).Count(&count).Error
	return count, err
}
