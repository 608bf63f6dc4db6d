package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/duanbtco-star/giaotuyet-api/internal/application/service"
	"github.com/duanbtco-star/giaotuyet-api/internal/presentation/http/dto/response"
)

// MenuHandler handles menu catalog HTTP requests
type MenuHandler struct {
	menuService  *service.MenuService
	quoteService *service.QuoteService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService, quoteService *service.QuoteService) *MenuHandler {
	return &MenuHandler{
		menuService:  menuService,
		quoteService: quoteService,
	}
}

// CreateMenuItemRequest represents the create menu item request body
type CreateMenuItemRequest struct {
	Code         string  `json:"code" binding:"required,max=50"`
	Name         string  `json:"name" binding:"required,max=255"`
	Unit         string  `json:"unit"`
	SellingPrice float64 `json:"selling_price" binding:"min=0"`
	CostPrice    float64 `json:"cost_price" binding:"min=0"`
	Note         *string `json:"note"`
}

// UpdateMenuItemRequest represents the update menu item request body
type UpdateMenuItemRequest struct {
	Name         *string  `json:"name"`
	Unit         *string  `json:"unit"`
	SellingPrice *float64 `json:"selling_price"`
	CostPrice    *float64 `json:"cost_price"`
	IsActive     *bool    `json:"is_active"`
	Note         *string  `json:"note"`
}

// List handles listing menu items
// @Summary List Menu Items
// @Tags menu
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param active query bool false "Only active items"
// @Success 200 {object} response.APIResponse
// @Router /menu-items [get]
func (h *MenuHandler) List(c *gin.Context) {
	result, err := h.menuService.ListMenuItems(c.Request.Context(), &service.ListMenuItemsInput{
		Pagination: parsePagination(c),
		Search:     c.Query("search"),
		ActiveOnly: c.Query("active") == "true",
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Menu items retrieved successfully", result)
}

// Suggest ranks menu entries against a partial dish name
// @Summary Suggest Menu Items
// @Description Autocomplete dish names while typing
// @Tags menu
// @Security BearerAuth
// @Produce json
// @Param q query string true "Partial dish name"
// @Success 200 {object} response.APIResponse
// @Router /menu-items/suggest [get]
func (h *MenuHandler) Suggest(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.BadRequest(c, "Query parameter q is required")
		return
	}

	candidates, err := h.quoteService.Autocomplete(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Suggestions retrieved successfully", candidates)
}

// Get handles getting a single menu item
// @Summary Get Menu Item
// @Tags menu
// @Security BearerAuth
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} response.APIResponse
// @Router /menu-items/{id} [get]
func (h *MenuHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	item, err := h.menuService.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu item retrieved successfully", item)
}

// Create handles creating a menu item
// @Summary Create Menu Item
// @Tags menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateMenuItemRequest true "Menu item data"
// @Success 201 {object} response.APIResponse
// @Router /menu-items [post]
func (h *MenuHandler) Create(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.CreateMenuItem(c.Request.Context(), &service.CreateMenuItemInput{
		Code:         req.Code,
		Name:         req.Name,
		Unit:         req.Unit,
		SellingPrice: req.SellingPrice,
		CostPrice:    req.CostPrice,
		Note:         req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Menu item created successfully", item)
}

// Update handles updating a menu item
// @Summary Update Menu Item
// @Tags menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param request body UpdateMenuItemRequest true "Menu item data"
// @Success 200 {object} response.APIResponse
// @Router /menu-items/{id} [put]
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.UpdateMenuItem(c.Request.Context(), &service.UpdateMenuItemInput{
		ID:           id,
		Name:         req.Name,
		Unit:         req.Unit,
		SellingPrice: req.SellingPrice,
		CostPrice:    req.CostPrice,
		IsActive:     req.IsActive,
		Note:         req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu item updated successfully", item)
}

// Delete handles deleting a menu item
// @Summary Delete Menu Item
// @Tags menu
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 204
// @Router /menu-items/{id} [delete]
func (h *MenuHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := h.menuService.DeleteMenuItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
