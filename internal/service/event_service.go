package service

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/eventify/eventify-backend/internal/models"
	"github.com/eventify/eventify-backend/internal/repository"
	"github.com/eventify/eventify-backend/pkg/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Accepted layouts for the date form field.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

type EventService struct {
	eventRepo  repository.EventRepository
	ticketRepo repository.TicketRepository
	storage    storage.Storage
	logger     *zap.Logger
}

func NewEventService(eventRepo repository.EventRepository, ticketRepo repository.TicketRepository, store storage.Storage, logger *zap.Logger) *EventService {
	return &EventService{
		eventRepo:  eventRepo,
		ticketRepo: ticketRepo,
		storage:    store,
		logger:     logger,
	}
}

func (s *EventService) Create(req models.EventRequest, image *multipart.FileHeader) (*models.Event, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		Name:             req.Name,
		Description:      req.Description,
		Location:         req.Location,
		Date:             date,
		TicketPrice:      req.TicketPrice,
		AvailableTickets: req.AvailableTickets,
	}

	if image != nil {
		path, err := s.storage.Save(image)
		if err != nil {
			return nil, err
		}
		event.Image = path
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}

	s.logger.Info("event created", zap.Uint("event_id", event.ID), zap.String("name", event.Name))
	return event, nil
}

func (s *EventService) GetAll() ([]models.Event, error) {
	return s.eventRepo.GetAll()
}

func (s *EventService) GetByID(id uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *EventService) Update(id uint, req models.UpdateEventRequest, image *multipart.FileHeader) (*models.Event, error) {
	event, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		event.Date = date
	}
	if req.TicketPrice != nil {
		event.TicketPrice = *req.TicketPrice
	}
	if req.AvailableTickets != nil {
		event.AvailableTickets = *req.AvailableTickets
	}

	if image != nil {
		path, err := s.storage.Save(image)
		if err != nil {
			return nil, err
		}
		if event.Image != "" {
			if err := s.storage.Delete(event.Image); err != nil {
				s.logger.Warn("failed to delete old event image", zap.String("path", event.Image), zap.Error(err))
			}
		}
		event.Image = path
	}

	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete refuses to remove an event that still has booked tickets, so no
// ticket ends up referencing a missing event.
func (s *EventService) Delete(id uint) error {
	event, err := s.GetByID(id)
	if err != nil {
		return err
	}

	count, err := s.ticketRepo.CountByEventID(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrEventHasTickets
	}

	if err := s.eventRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if event.Image != "" {
		if err := s.storage.Delete(event.Image); err != nil {
			s.logger.Warn("failed to delete event image", zap.String("path", event.Image), zap.Error(err))
		}
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
