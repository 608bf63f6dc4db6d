package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItem is one priced entry of the catering menu. Dishes carry a
// MN- code; the reserved BAN-/NV- codes price tables, frames and
// serving staff and are seeded at startup.
type MenuItem struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code         string         `gorm:"size:50;unique;not null" json:"code"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Unit         string         `gorm:"size:50;default:'phần'" json:"unit"`
	SellingPrice float64        `gorm:"type:decimal(15,2);default:0" json:"selling_price"`
	CostPrice    float64        `gorm:"type:decimal(15,2);default:0" json:"cost_price"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	Note         *string        `gorm:"type:text" json:"note,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new menu item
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}
