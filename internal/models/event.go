package models

import (
	"time"
)

type Event struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	Date             time.Time `json:"date" gorm:"not null"`
	TicketPrice      float64   `json:"ticket_price" gorm:"not null;check:ticket_price >= 0"`
	AvailableTickets int       `json:"available_tickets" gorm:"not null;check:available_tickets >= 0"`
	Image            string    `json:"image"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type EventRequest struct {
	Name             string  `form:"name" validate:"required"`
	Description      string  `form:"description"`
	Location         string  `form:"location"`
	Date             string  `form:"date" validate:"required"`
	TicketPrice      float64 `form:"ticket_price" validate:"gte=0"`
	AvailableTickets int     `form:"available_tickets" validate:"gte=0"`
}

type UpdateEventRequest struct {
	Name             *string  `form:"name"`
	Description      *string  `form:"description"`
	Location         *string  `form:"location"`
	Date             *string  `form:"date"`
	TicketPrice      *float64 `form:"ticket_price" validate:"omitempty,gte=0"`
	AvailableTickets *int     `form:"available_tickets" validate:"omitempty,gte=0"`
}
