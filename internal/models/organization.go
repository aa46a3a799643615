package models

import (
	"time"
)

// Organization is a directory entry. It occupies exactly one Building,
// owns its Phones (destroyed with it) and is tagged with zero or more
// Activities through the organization_activity junction table.
type Organization struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null;index" json:"name" validate:"required,min=1,max=255"`
	BuildingID uint      `gorm:"not null;index" json:"building_id"`
	CreatedAt  time.Time `json:"created_at"`

	Building   *Building  `gorm:"foreignKey:BuildingID" json:"building,omitempty"`
	Phones     []Phone    `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"phones"`
	Activities []Activity `gorm:"many2many:organization_activity" json:"activities"`
}

func (o *Organization) TableName() string {
	return "organizations"
}
