package models

import "time"

type Establishment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Document string `gorm:"size:14;uniqueIndex" json:"document"`
	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`
	City     string `gorm:"size:100" json:"city"`
	State    string `gorm:"size:2" json:"state"`
	LogoURL  string `gorm:"size:500" json:"logo_url"`
	Active   bool   `gorm:"not null" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
