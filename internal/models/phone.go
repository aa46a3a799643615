package models

// Phone belongs to exactly one Organization. Number must match one of
// the accepted formats, enforced in pkg/utils before insert.
type Phone struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Number         string `gorm:"type:varchar(32);not null" json:"number"`
	OrganizationID uint   `gorm:"not null;index" json:"organization_id"`
}

func (p *Phone) TableName() string {
	return "phones"
}
