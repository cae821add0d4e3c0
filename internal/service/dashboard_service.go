package service

import (
	"github.com/eventify/eventify-backend/internal/models"
	"github.com/eventify/eventify-backend/internal/repository"
)

type DashboardService struct {
	userRepo    repository.UserRepository
	ticketRepo  repository.TicketRepository
	eventRepo   repository.EventRepository
	messageRepo repository.MessageRepository
}

func NewDashboardService(userRepo repository.UserRepository, ticketRepo repository.TicketRepository, eventRepo repository.EventRepository, messageRepo repository.MessageRepository) *DashboardService {
	return &DashboardService{
		userRepo:    userRepo,
		ticketRepo:  ticketRepo,
		eventRepo:   eventRepo,
		messageRepo: messageRepo,
	}
}

func (s *DashboardService) GetStats() (*models.DashboardStats, error) {
	users, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	tickets, err := s.ticketRepo.Count()
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.Count()
	if err != nil {
		return nil, err
	}
	messages, err := s.messageRepo.Count()
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		Users:    users,
		Tickets:  tickets,
		Events:   events,
		Messages: messages,
	}, nil
}
