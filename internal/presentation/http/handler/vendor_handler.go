package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/duanbtco-star/giaotuyet-api/internal/application/service"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/enum"
	"github.com/duanbtco-star/giaotuyet-api/internal/presentation/http/dto/response"
)

// VendorHandler handles vendor directory HTTP requests
type VendorHandler struct {
	vendorService *service.VendorService
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorService *service.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// CreateVendorRequest represents the create vendor request body
type CreateVendorRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Type    string  `json:"type"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Note    *string `json:"note"`
}

// UpdateVendorRequest represents the update vendor request body
type UpdateVendorRequest struct {
	Name    *string `json:"name"`
	Type    *string `json:"type"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Note    *string `json:"note"`
}

// List handles listing vendors
// @Summary List Vendors
// @Tags vendors
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param type query string false "Vendor type filter"
// @Success 200 {object} response.APIResponse
// @Router /vendors [get]
func (h *VendorHandler) List(c *gin.Context) {
	var vendorType *enum.VendorType
	if t := c.Query("type"); t != "" {
		vt := enum.VendorType(t)
		if !vt.IsValid() {
			response.BadRequest(c, "Unknown vendor type")
			return
		}
		vendorType = &vt
	}

	result, err := h.vendorService.ListVendors(c.Request.Context(), &service.ListVendorsInput{
		Pagination: parsePagination(c),
		Search:     c.Query("search"),
		Type:       vendorType,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Vendors retrieved successfully", result)
}

// Get handles getting a single vendor
// @Summary Get Vendor
// @Tags vendors
// @Security BearerAuth
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} response.APIResponse
// @Router /vendors/{id} [get]
func (h *VendorHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	vendor, err := h.vendorService.GetVendor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Vendor retrieved successfully", vendor)
}

// Create handles creating a vendor
// @Summary Create Vendor
// @Tags vendors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateVendorRequest true "Vendor data"
// @Success 201 {object} response.APIResponse
// @Router /vendors [post]
func (h *VendorHandler) Create(c *gin.Context) {
	var req CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), &service.CreateVendorInput{
		Name:    req.Name,
		Type:    enum.VendorType(req.Type),
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Note:    req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Vendor created successfully", vendor)
}

// Update handles updating a vendor
// @Summary Update Vendor
// @Tags vendors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID"
// @Param request body UpdateVendorRequest true "Vendor data"
// @Success 200 {object} response.APIResponse
// @Router /vendors/{id} [put]
func (h *VendorHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var vendorType *enum.VendorType
	if req.Type != nil {
		vt := enum.VendorType(*req.Type)
		vendorType = &vt
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), &service.UpdateVendorInput{
		ID:      id,
		Name:    req.Name,
		Type:    vendorType,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Note:    req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Vendor updated successfully", vendor)
}

// Delete handles deleting a vendor
// @Summary Delete Vendor
// @Tags vendors
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Success 204
// @Router /vendors/{id} [delete]
func (h *VendorHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	if err := h.vendorService.DeleteVendor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
