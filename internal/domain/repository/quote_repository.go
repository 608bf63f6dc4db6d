package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/entity"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/enum"
	"github.com/duanbtco-star/giaotuyet-api/pkg/pagination"
)

// QuoteRepository defines the interface for quote data operations
type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	GetByReference(ctx context.Context, reference string) (*entity.Quote, error)
	Update(ctx context.Context, quote *entity.Quote) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *QuoteFilterParams) ([]entity.Quote, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuoteStatus) error
	GetNextReferenceNumber(ctx context.Context) (int, error)
}

// QuoteFilterParams contains filtering parameters for quote queries
type QuoteFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuoteStatus
	CustomerID *uuid.UUID
	SortBy     string
	SortOrder  string
}
