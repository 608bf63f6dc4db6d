package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/entity"
	"github.com/duanbtco-star/giaotuyet-api/pkg/pagination"
)

// MenuItemRepository defines the interface for menu data operations
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	GetByCode(ctx context.Context, code string) (*entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *MenuItemFilterParams) ([]entity.MenuItem, int64, error)
	ListActive(ctx context.Context) ([]entity.MenuItem, error)
}

// MenuItemFilterParams contains filtering parameters for menu queries
type MenuItemFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	ActiveOnly bool
}
