package repository

import (
	"github.com/eventify/eventify-backend/internal/models"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(event *models.Event) error
	GetByID(id uint) (*models.Event, error)
	GetAll() ([]models.Event, error)
	Update(event *models.Event) error
	Delete(id uint) error
	// DecrementAvailableTickets takes quantity tickets off the event in a
	// single conditional UPDATE. It reports false when the event is missing
	// or does not have that many tickets left, so two concurrent bookings
	// can never both drain the same capacity.
	DecrementAvailableTickets(id uint, quantity int) (bool, error)
	// IncrementAvailableTickets hands capacity back after a failed booking.
	IncrementAvailableTickets(id uint, quantity int) error
	Count() (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

var _ EventRepository = (*eventRepository)(nil)

func NewEventRepository(db *gorm.DB) *eventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) GetAll() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Find(&events).Error
	return events, err
}

func (r *eventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *eventRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *eventRepository) DecrementAvailableTickets(id uint, quantity int) (bool, error) {
	result := r.db.Model(&models.Event{}).
		Where("id = ? AND available_tickets >= ?", id, quantity).
		UpdateColumn("available_tickets", gorm.Expr("available_tickets - ?", quantity))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *eventRepository) IncrementAvailableTickets(id uint, quantity int) error {
	return r.db.Model(&models.Event{}).
		Where("id = ?", id).
		UpdateColumn("available_tickets", gorm.Expr("available_tickets + ?", quantity)).Error
}

func (r *eventRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Count(&count).Error
	return count, err
}
