package dto

import (
	"time"

	"github.com/google/uuid"
)

type BookingListDTO struct {
	ID                uint      `json:"id"`
	Reference         uuid.UUID `json:"reference"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	Status            string    `json:"status"`
	Amount            float64   `json:"amount"`
	Notes             string    `json:"notes,omitempty"`
	ServiceTitle      string    `json:"service_title"`
	ProviderName      string    `json:"provider_name"`
	ProviderAvatarURL string    `json:"provider_avatar_url,omitempty"`
}
