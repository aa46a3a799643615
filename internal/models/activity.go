package models

import (
	"time"
)

// MaxActivityDepth bounds the nesting of the activity forest. A root
// activity is level 1, so the deepest allowed chain is 1 -> 2 -> 3.
const MaxActivityDepth = 3

// Activity is a node in the business-category forest. Level is 1 for
// roots (ParentID nil) and parent.Level+1 otherwise; it never exceeds
// MaxActivityDepth, which also rules out cycles since level strictly
// increases along parent edges.
type Activity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;index" json:"name" validate:"required"`
	ParentID  *uint     `gorm:"index" json:"parent_id,omitempty"`
	Level     int       `gorm:"not null;default:1" json:"level"`
	CreatedAt time.Time `json:"created_at"`

	Children []Activity `gorm:"foreignKey:ParentID" json:"children,omitempty"`
}

func (a *Activity) TableName() string {
	return "activities"
}
