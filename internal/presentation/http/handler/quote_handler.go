package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/duanbtco-star/giaotuyet-api/internal/application/service"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/enum"
	"github.com/duanbtco-star/giaotuyet-api/internal/presentation/http/dto/request"
	"github.com/duanbtco-star/giaotuyet-api/internal/presentation/http/dto/response"
	"github.com/duanbtco-star/giaotuyet-api/internal/quote"
)

// QuoteHandler handles quote-related HTTP requests
type QuoteHandler struct {
	quoteService *service.QuoteService
	eventService *service.EventService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService, eventService *service.EventService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		eventService: eventService,
	}
}

// Preview runs the calculation engine without saving anything
// @Summary Preview Quote
// @Description Parse the dish list, resolve it against the menu and return line items, suggestions and totals
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.ComputeQuoteRequest true "Computation input"
// @Success 200 {object} response.APIResponse
// @Router /quotes/preview [post]
func (h *QuoteHandler) Preview(c *gin.Context) {
	var req request.ComputeQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.quoteService.Compute(c.Request.Context(), computeInputFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quote computed successfully", result)
}

// List handles listing quotes
// @Summary List Quotes
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param status query int false "Status filter"
// @Param customer_id query string false "Customer filter"
// @Success 200 {object} response.APIResponse
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var status *enum.QuoteStatus
	if s := c.Query("status"); s != "" {
		var parsed int
		if _, err := fmt.Sscanf(s, "%d", &parsed); err == nil {
			st := enum.QuoteStatus(parsed)
			if st.IsValid() {
				status = &st
			}
		}
	}

	var customerID *uuid.UUID
	if cid := c.Query("customer_id"); cid != "" {
		parsed, err := uuid.Parse(cid)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		customerID = &parsed
	}

	result, err := h.quoteService.ListQuotes(c.Request.Context(), &service.ListQuotesInput{
		UserID:     *userID,
		IsAdmin:    IsAdmin(c),
		Pagination: parsePagination(c),
		Search:     c.Query("search"),
		Status:     status,
		CustomerID: customerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Quotes retrieved successfully", result)
}

// Get returns a stored quote together with a fresh computation of its
// dish list against the current menu
// @Summary Get Quote
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	q, computation, err := h.quoteService.ReopenQuote(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quote retrieved successfully", gin.H{
		"quote":       q,
		"computation": computation,
	})
}

// Create handles creating a quote
// @Summary Create Quote
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SaveQuoteRequest true "Quote data"
// @Success 201 {object} response.APIResponse
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SaveQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		response.BadRequest(c, "Invalid event date, expected YYYY-MM-DD")
		return
	}

	customerID, ok := parseOptionalUUID(req.CustomerID)
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	q, err := h.quoteService.CreateQuote(c.Request.Context(), &service.CreateQuoteInput{
		UserID:        *userID,
		CustomerID:    customerID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		EventDate:     eventDate,
		Note:          req.Note,
		Compute:       *computeInputFromRequest(&req.ComputeQuoteRequest),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Quote created successfully", q)
}

// Update handles updating a quote
// @Summary Update Quote
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body request.SaveQuoteRequest true "Quote data"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id} [put]
func (h *QuoteHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	var req request.SaveQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		response.BadRequest(c, "Invalid event date, expected YYYY-MM-DD")
		return
	}

	customerID, ok := parseOptionalUUID(req.CustomerID)
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	q, err := h.quoteService.UpdateQuote(c.Request.Context(), &service.UpdateQuoteInput{
		UserID:        *userID,
		ID:            id,
		IsAdmin:       IsAdmin(c),
		CustomerID:    customerID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		EventDate:     eventDate,
		Note:          req.Note,
		Compute:       *computeInputFromRequest(&req.ComputeQuoteRequest),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quote updated successfully", q)
}

// Delete handles deleting a quote
// @Summary Delete Quote
// @Tags quotes
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 204
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	if err := h.quoteService.DeleteQuote(c.Request.Context(), *userID, id, IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UpdateStatus handles quote status transitions
// @Summary Update Quote Status
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body request.UpdateQuoteStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	var req request.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.quoteService.UpdateQuoteStatus(c.Request.Context(), *userID, id, enum.QuoteStatus(req.Status), IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quote status updated successfully", nil)
}

// Export renders a quote as an Excel workbook
// @Summary Export Quote
// @Description Download the quote as an .xlsx file in the saved display mode
// @Tags quotes
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Quote ID"
// @Success 200 {file} binary
// @Router /quotes/{id}/export [get]
func (h *QuoteHandler) Export(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	file, filename, err := h.quoteService.ExportQuote(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		c.Error(err)
	}
}

// Convert books an accepted quote as an event
// @Summary Convert Quote
// @Description Create a calendar event from an accepted quote
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 201 {object} response.APIResponse
// @Router /quotes/{id}/convert [post]
func (h *QuoteHandler) Convert(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	event, err := h.eventService.ConvertQuote(c.Request.Context(), *userID, id, IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Quote converted to event successfully", event)
}

func computeInputFromRequest(req *request.ComputeQuoteRequest) *service.ComputeInput {
	edits := make([]service.LineEdit, 0, len(req.LineEdits))
	for _, e := range req.LineEdits {
		edits = append(edits, service.LineEdit{
			Code:         e.Code,
			Quantity:     e.Quantity,
			SellingPrice: e.SellingPrice,
			CostPrice:    e.CostPrice,
			Remove:       e.Remove,
		})
	}

	accepted := make([]service.AcceptedSuggestion, 0, len(req.Accepted))
	for _, a := range req.Accepted {
		accepted = append(accepted, service.AcceptedSuggestion{
			Raw:      a.Raw,
			Code:     a.Code,
			Quantity: a.Quantity,
		})
	}

	tableType := quote.TableInox
	if req.TableType == string(quote.TableEvent) {
		tableType = quote.TableEvent
	}

	return &service.ComputeInput{
		TableCount:  req.TableCount,
		TableType:   tableType,
		StaffCount:  req.StaffCount,
		FrameCount:  req.FrameCount,
		DishesInput: req.DishesInput,
		LineEdits:   edits,
		Accepted:    accepted,
		TablePrice:  req.TablePrice,
		StaffPrice:  req.StaffPrice,
		FramePrice:  req.FramePrice,
		FrameCost:   req.FrameCost,
		Adjustments: quote.ExportAdjustments{
			TableDiscountPct:     req.TableDiscountPct,
			FrameDiscountPct:     req.FrameDiscountPct,
			OrderDiscountPct:     req.OrderDiscountPct,
			VATPct:               req.VATPct,
			CustomerHandlesStaff: req.CustomerHandlesStaff,
			ShowIndividualPrices: req.ShowIndividualPrices,
		},
	}
}

func parseOptionalUUID(s *string) (*uuid.UUID, bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, false
	}
	return &id, true
}
