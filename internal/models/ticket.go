package models

import (
	"time"
)

type TicketStatus string

const (
	TicketPending   TicketStatus = "pending"
	TicketConfirmed TicketStatus = "confirmed"
	TicketCancelled TicketStatus = "cancelled"
)

type Ticket struct {
	ID         uint         `json:"id" gorm:"primaryKey"`
	UserID     uint         `json:"user_id" gorm:"not null;index"`
	User       User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	EventID    uint         `json:"event_id" gorm:"not null;index"`
	Event      Event        `json:"event,omitempty" gorm:"foreignKey:EventID"`
	Quantity   int          `json:"quantity" gorm:"not null;check:quantity >= 1"`
	TotalPrice float64      `json:"total_price" gorm:"not null"`
	Status     TicketStatus `json:"status" gorm:"type:varchar(20);not null;default:'confirmed'"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

type BookTicketRequest struct {
	EventID  uint `json:"event_id" validate:"required"`
	Quantity int  `json:"quantity" validate:"required,gte=1"`
}

type UpdateTicketRequest struct {
	Status TicketStatus `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}
