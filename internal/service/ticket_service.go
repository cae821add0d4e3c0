package service

import (
	"errors"

	"github.com/eventify/eventify-backend/internal/models"
	"github.com/eventify/eventify-backend/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Allowed status transitions: pending may be resolved either way, a
// confirmed ticket may still be cancelled, cancelled is terminal.
var ticketTransitions = map[models.TicketStatus][]models.TicketStatus{
	models.TicketPending:   {models.TicketConfirmed, models.TicketCancelled},
	models.TicketConfirmed: {models.TicketCancelled},
}

type TicketService struct {
	ticketRepo repository.TicketRepository
	eventRepo  repository.EventRepository
	logger     *zap.Logger
}

func NewTicketService(ticketRepo repository.TicketRepository, eventRepo repository.EventRepository, logger *zap.Logger) *TicketService {
	return &TicketService{
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
		logger:     logger,
	}
}

// Book reserves quantity tickets for the user. The capacity check and the
// decrement happen in one conditional UPDATE, so a sold-out event cannot be
// oversold by concurrent requests.
func (s *TicketService) Book(userID uint, req models.BookTicketRequest) (*models.Ticket, error) {
	event, err := s.eventRepo.GetByID(req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ok, err := s.eventRepo.DecrementAvailableTickets(event.ID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInsufficientTickets
	}

	ticket := &models.Ticket{
		UserID:     userID,
		EventID:    event.ID,
		Quantity:   req.Quantity,
		TotalPrice: float64(req.Quantity) * event.TicketPrice,
		Status:     models.TicketConfirmed,
	}
	if err := s.ticketRepo.Create(ticket); err != nil {
		// The decrement already committed; hand the capacity back.
		if restoreErr := s.eventRepo.IncrementAvailableTickets(event.ID, req.Quantity); restoreErr != nil {
			s.logger.Error("failed to restore capacity after booking failure",
				zap.Uint("event_id", event.ID),
				zap.Int("quantity", req.Quantity),
				zap.Error(restoreErr))
		}
		return nil, err
	}

	s.logger.Info("ticket booked",
		zap.Uint("ticket_id", ticket.ID),
		zap.Uint("event_id", event.ID),
		zap.Int("quantity", req.Quantity))

	return ticket, nil
}

func (s *TicketService) GetUserTickets(userID uint) ([]models.Ticket, error) {
	return s.ticketRepo.GetByUserID(userID)
}

func (s *TicketService) GetAllTickets() ([]models.Ticket, error) {
	return s.ticketRepo.GetAll()
}

func (s *TicketService) UpdateStatus(id uint, status models.TicketStatus) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if ticket.Status != status && !transitionAllowed(ticket.Status, status) {
		return nil, ErrInvalidTransition
	}

	ticket.Status = status
	if err := s.ticketRepo.Update(ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// Delete removes a ticket record. The event's available count is left
// untouched: a deleted booking does not put its tickets back on sale.
func (s *TicketService) Delete(id uint) error {
	if err := s.ticketRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func transitionAllowed(from, to models.TicketStatus) bool {
	for _, allowed := range ticketTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
