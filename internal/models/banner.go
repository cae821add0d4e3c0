package models

import (
	"time"
)

// Banner carries a promotional image for the landing carousel. EventName is
// a display string, not a foreign key.
type Banner struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	EventName string    `json:"event_name" gorm:"not null"`
	Location  string    `json:"location" gorm:"not null"`
	Image     string    `json:"image" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BannerRequest struct {
	EventName string `form:"event_name" validate:"required"`
	Location  string `form:"location" validate:"required"`
}

type UpdateBannerRequest struct {
	EventName *string `form:"event_name"`
	Location  *string `form:"location"`
}
