package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/duanbtco-star/giaotuyet-api/internal/domain/entity"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/repository"
	"github.com/duanbtco-star/giaotuyet-api/pkg/apperror"
	"github.com/duanbtco-star/giaotuyet-api/pkg/pagination"
)

// MenuService handles menu catalog business logic
type MenuService struct {
	menuRepo repository.MenuItemRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuItemRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// CreateMenuItemInput represents the input for creating a menu item
type CreateMenuItemInput struct {
	Code         string
	Name         string
	Unit         string
	SellingPrice float64
	CostPrice    float64
	Note         *string
}

// CreateMenuItem creates a new menu item
func (s *MenuService) CreateMenuItem(ctx context.Context, input *CreateMenuItemInput) (*entity.MenuItem, error) {
	existing, err := s.menuRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Menu item code already exists")
	}

	if input.SellingPrice < 0 || input.CostPrice < 0 {
		return nil, apperror.NewBadRequestError("Prices must not be negative")
	}

	unit := input.Unit
	if unit == "" {
		unit = "phần"
	}

	item := &entity.MenuItem{
		Code:         input.Code,
		Name:         input.Name,
		Unit:         unit,
		SellingPrice: input.SellingPrice,
		CostPrice:    input.CostPrice,
		IsActive:     true,
		Note:         input.Note,
	}
	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetMenuItem retrieves a menu item by ID
func (s *MenuService) GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// UpdateMenuItemInput represents the input for updating a menu item
type UpdateMenuItemInput struct {
	ID           uuid.UUID
	Name         *string
	Unit         *string
	SellingPrice *float64
	CostPrice    *float64
	IsActive     *bool
	Note         *string
}

// UpdateMenuItem updates an existing menu item
func (s *MenuService) UpdateMenuItem(ctx context.Context, input *UpdateMenuItemInput) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.SellingPrice != nil {
		if *input.SellingPrice < 0 {
			return nil, apperror.NewBadRequestError("Selling price must not be negative")
		}
		item.SellingPrice = *input.SellingPrice
	}
	if input.CostPrice != nil {
		if *input.CostPrice < 0 {
			return nil, apperror.NewBadRequestError("Cost price must not be negative")
		}
		item.CostPrice = *input.CostPrice
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	if input.Note != nil {
		item.Note = input.Note
	}

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteMenuItem soft-deletes a menu item
func (s *MenuService) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.menuRepo.Delete(ctx, id)
}

// ListMenuItemsInput represents the input for listing menu items
type ListMenuItemsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	ActiveOnly bool
}

// ListMenuItems lists menu items with filtering
func (s *MenuService) ListMenuItems(ctx context.Context, input *ListMenuItemsInput) (*pagination.PaginatedResult[entity.MenuItem], error) {
	params := &repository.MenuItemFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		ActiveOnly: input.ActiveOnly,
	}
	items, total, err := s.menuRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}
