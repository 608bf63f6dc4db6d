package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Event is a booked catering job, created by converting an accepted
// quote. It is what the calendar screen renders.
type Event struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	QuoteID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"quote_id"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`

	CustomerName string    `gorm:"size:255" json:"customer_name"`
	EventDate    time.Time `gorm:"type:date;not null;index" json:"event_date"`
	TableCount   int       `gorm:"default:0" json:"table_count"`

	TotalAmount float64 `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	TotalCost   float64 `gorm:"type:decimal(15,2);default:0" json:"total_cost"`

	Status enum.EventStatus `gorm:"default:0" json:"status"`
	Note   *string          `gorm:"type:text" json:"note,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Quote    Quote     `gorm:"foreignKey:QuoteID" json:"-"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// BeforeCreate generates a UUID before creating a new event
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Event model
func (Event) TableName() string {
	return "events"
}
