package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uint `gorm:"index" json:"provider_id"`

	ClientID uint    `json:"client_id"`
	Client   Profile `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:1000" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
