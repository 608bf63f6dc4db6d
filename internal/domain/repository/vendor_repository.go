package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/entity"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/enum"
	"github.com/duanbtco-star/giaotuyet-api/pkg/pagination"
)

// VendorRepository defines the interface for vendor directory operations
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *VendorFilterParams) ([]entity.Vendor, int64, error)
}

// VendorFilterParams contains filtering parameters for vendor queries
type VendorFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Type       *enum.VendorType
}
