package models

import "time"

const (
	PriceTypeHourly = "hourly"
	PriceTypeFixed  = "fixed"
	PriceTypeDaily  = "daily"
)

type ProviderService struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ProviderID uint `gorm:"index" json:"provider_id"`

	Title       string  `gorm:"size:100;not null" json:"title"`
	Description string  `gorm:"size:500" json:"description"`
	BasePrice   float64 `json:"base_price"`

	// hourly | fixed | daily
	PriceType string `gorm:"size:20;default:'fixed'" json:"price_type"`

	// Minutes one engagement takes; 0 means unset (bookings fall back to 60).
	DurationMinutes int `json:"duration_minutes"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
