package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/entity"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/enum"
	"github.com/duanbtco-star/giaotuyet-api/pkg/pagination"
)

// EventRepository defines the interface for booked-event data operations
type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	GetByQuoteID(ctx context.Context, quoteID uuid.UUID) (*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *EventFilterParams) ([]entity.Event, int64, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.Event, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.EventStatus) error
}

// EventFilterParams contains filtering parameters for event queries
type EventFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.EventStatus
}
