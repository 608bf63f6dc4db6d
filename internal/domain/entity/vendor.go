package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Vendor represents an external supplier or partner in the directory
// (markets, florists, tent and sound rental, transport).
type Vendor struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Type      enum.VendorType `gorm:"size:50;default:'other'" json:"type"`
	Phone     *string         `gorm:"size:50" json:"phone,omitempty"`
	Email     *string         `gorm:"size:255" json:"email,omitempty"`
	Address   *string         `gorm:"type:text" json:"address,omitempty"`
	Note      *string         `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vendor
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Vendor model
func (Vendor) TableName() string {
	return "vendors"
}
