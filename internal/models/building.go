package models

import (
	"time"
)

// Building is a physical location that organizations occupy. The
// geographic point is stored as a latitude/longitude column pair in
// WGS84. Buildings are created once and never updated.
type Building struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Address   string    `gorm:"type:text;not null;index" json:"address" validate:"required"`
	Latitude  float64   `gorm:"type:double precision;not null" json:"latitude"`
	Longitude float64   `gorm:"type:double precision;not null" json:"longitude"`
	CreatedAt time.Time `json:"created_at"`

	Organizations []Organization `gorm:"foreignKey:BuildingID" json:"organizations,omitempty"`
}

func (b *Building) TableName() string {
	return "buildings"
}
