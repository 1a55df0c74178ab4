package models

import (
	"time"

	"github.com/BruksfildServices01/reverse-logistics/internal/domain/operatinghours"
)

type CollectionPoint struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	EstablishmentID *uint          `gorm:"index" json:"establishment_id"`
	Establishment   *Establishment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"establishment,omitempty"`

	CarrierID *uint    `gorm:"index" json:"carrier_id"`
	Carrier   *Carrier `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"carrier,omitempty"`

	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:2" json:"state"`
	ZipCode string `gorm:"size:9" json:"zip_code"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	Timezone string `gorm:"size:64" json:"timezone"`

	// nil: horário desconhecido. Vazio: fechado a semana toda.
	OperatingHours *operatinghours.WeeklySchedule `gorm:"type:jsonb" json:"operating_hours"`

	Active bool `gorm:"not null" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *CollectionPoint) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
