package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/duanbtco-star/giaotuyet-api/internal/application/service"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/enum"
	"github.com/duanbtco-star/giaotuyet-api/internal/presentation/http/dto/response"
)

// EventHandler handles booked-event HTTP requests
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// UpdateEventRequest represents the update event request body
type UpdateEventRequest struct {
	EventDate *string `json:"event_date"`
	Note      *string `json:"note"`
}

// UpdateEventStatusRequest represents a status change request
type UpdateEventStatusRequest struct {
	Status int `json:"status" binding:"min=0"`
}

// List handles listing events
// @Summary List Events
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param status query int false "Status filter"
// @Success 200 {object} response.APIResponse
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	var status *enum.EventStatus
	if s := c.Query("status"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil {
			st := enum.EventStatus(parsed)
			if st.IsValid() {
				status = &st
			}
		}
	}

	result, err := h.eventService.ListEvents(c.Request.Context(), &service.ListEventsInput{
		Pagination: parsePagination(c),
		Search:     c.Query("search"),
		Status:     status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Events retrieved successfully", result)
}

// Calendar returns the events of one month
// @Summary Events By Month
// @Description List the events of one calendar month for the calendar screen
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} response.APIResponse
// @Router /events/calendar [get]
func (h *EventHandler) Calendar(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(c, "Invalid year")
			return
		}
		year = parsed
	}
	if m := c.Query("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(c, "Invalid month")
			return
		}
		month = parsed
	}

	events, err := h.eventService.ListEventsByMonth(c.Request.Context(), year, time.Month(month))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Events retrieved successfully", events)
}

// Get handles getting a single event
// @Summary Get Event
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.APIResponse
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid event ID")
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Event retrieved successfully", event)
}

// Update handles rescheduling an event
// @Summary Update Event
// @Tags events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body UpdateEventRequest true "Event data"
// @Success 200 {object} response.APIResponse
// @Router /events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid event ID")
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var eventDate *time.Time
	if req.EventDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			response.BadRequest(c, "Invalid event date, expected YYYY-MM-DD")
			return
		}
		eventDate = &parsed
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), &service.UpdateEventInput{
		ID:        id,
		EventDate: eventDate,
		Note:      req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Event updated successfully", event)
}

// UpdateStatus handles event status changes
// @Summary Update Event Status
// @Tags events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body UpdateEventStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /events/{id}/status [patch]
func (h *EventHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid event ID")
		return
	}

	var req UpdateEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.eventService.UpdateEventStatus(c.Request.Context(), id, enum.EventStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Event status updated successfully", nil)
}

// Delete handles deleting an event
// @Summary Delete Event
// @Tags events
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid event ID")
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
