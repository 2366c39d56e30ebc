package models

import "time"

type Provider struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfileID uint    `gorm:"uniqueIndex" json:"profile_id"`
	Profile   Profile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile"`

	Tagline string `gorm:"size:150" json:"tagline"`
	Bio     string `gorm:"type:text" json:"bio"`

	HourlyRate      float64 `json:"hourly_rate"`
	ServiceRadiusKm int     `gorm:"default:10" json:"service_radius_km"`
	YearsExperience int     `json:"years_experience"`

	Rating      float64 `gorm:"default:0" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"review_count"`

	Languages []string `gorm:"serializer:json" json:"languages"`

	Services []ProviderService `gorm:"foreignKey:ProviderID" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
