package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/duanbtco-star/giaotuyet-api/internal/domain/entity"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/enum"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/repository"
	"github.com/duanbtco-star/giaotuyet-api/pkg/apperror"
	"github.com/duanbtco-star/giaotuyet-api/pkg/pagination"
)

// VendorService handles vendor directory business logic
type VendorService struct {
	vendorRepo repository.VendorRepository
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo repository.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

// CreateVendorInput represents the input for creating a vendor
type CreateVendorInput struct {
	Name    string
	Type    enum.VendorType
	Phone   *string
	Email   *string
	Address *string
	Note    *string
}

// CreateVendor creates a new vendor
func (s *VendorService) CreateVendor(ctx context.Context, input *CreateVendorInput) (*entity.Vendor, error) {
	vendorType := input.Type
	if vendorType == "" {
		vendorType = enum.VendorTypeOther
	}
	if !vendorType.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown vendor type")
	}

	vendor := &entity.Vendor{
		Name:    input.Name,
		Type:    vendorType,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
		Note:    input.Note,
	}
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// GetVendor retrieves a vendor by ID
func (s *VendorService) GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	return vendor, nil
}

// UpdateVendorInput represents the input for updating a vendor
type UpdateVendorInput struct {
	ID      uuid.UUID
	Name    *string
	Type    *enum.VendorType
	Phone   *string
	Email   *string
	Address *string
	Note    *string
}

// UpdateVendor updates an existing vendor
func (s *VendorService) UpdateVendor(ctx context.Context, input *UpdateVendorInput) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	if input.Name != nil {
		vendor.Name = *input.Name
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, apperror.NewBadRequestError("Unknown vendor type")
		}
		vendor.Type = *input.Type
	}
	if input.Phone != nil {
		vendor.Phone = input.Phone
	}
	if input.Email != nil {
		vendor.Email = input.Email
	}
	if input.Address != nil {
		vendor.Address = input.Address
	}
	if input.Note != nil {
		vendor.Note = input.Note
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// DeleteVendor soft-deletes a vendor
func (s *VendorService) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return apperror.NewNotFoundError("Vendor")
	}
	return s.vendorRepo.Delete(ctx, id)
}

// ListVendorsInput represents the input for listing vendors
type ListVendorsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Type       *enum.VendorType
}

// ListVendors lists vendors with filtering
func (s *VendorService) ListVendors(ctx context.Context, input *ListVendorsInput) (*pagination.PaginatedResult[entity.Vendor], error) {
	params := &repository.VendorFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Type:       input.Type,
	}
	vendors, total, err := s.vendorRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(vendors, pag), nil
}
