package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Quote is the persisted, flattened form of a priced quote: customer
// info, the counts and adjustments the calculation ran with, the
// aggregate totals and the original free-text dish list. Per-line
// price/cost overrides are session state and are deliberately not
// stored; reopening a quote re-parses DishesInput against the current
// menu.
type Quote struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Reference  string     `gorm:"size:100;unique;not null" json:"reference"`
	EventDate  time.Time  `gorm:"type:date;not null" json:"event_date"`

	CustomerName  string  `gorm:"size:255" json:"customer_name"`
	CustomerPhone *string `gorm:"size:50" json:"customer_phone,omitempty"`

	TableCount int    `gorm:"default:0" json:"table_count"`
	TableType  string `gorm:"size:20;default:'inox'" json:"table_type"`
	StaffCount int    `gorm:"default:0" json:"staff_count"`
	FrameCount int    `gorm:"default:0" json:"frame_count"`

	DishesInput string `gorm:"type:text" json:"dishes_input"`

	TableDiscountPct     float64 `gorm:"type:decimal(5,2);default:0" json:"table_discount_pct"`
	FrameDiscountPct     float64 `gorm:"type:decimal(5,2);default:0" json:"frame_discount_pct"`
	OrderDiscountPct     float64 `gorm:"type:decimal(5,2);default:0" json:"order_discount_pct"`
	VATPct               float64 `gorm:"type:decimal(5,2);default:0" json:"vat_pct"`
	CustomerHandlesStaff bool    `gorm:"default:false" json:"customer_handles_staff"`
	ShowIndividualPrices bool    `gorm:"default:true" json:"show_individual_prices"`

	Subtotal    float64 `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	TotalAmount float64 `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	TotalCost   float64 `gorm:"type:decimal(15,2);default:0" json:"total_cost"`
	TotalProfit float64 `gorm:"type:decimal(15,2);default:0" json:"total_profit"`

	Status enum.QuoteStatus `gorm:"default:0" json:"status"`
	Note   *string          `gorm:"type:text" json:"note,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quote
func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}
