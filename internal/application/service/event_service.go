package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/duanbtco-star/giaotuyet-api/internal/domain/entity"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/enum"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/repository"
	"github.com/duanbtco-star/giaotuyet-api/pkg/apperror"
	"github.com/duanbtco-star/giaotuyet-api/pkg/pagination"
)

// EventService handles booked-event business logic, including the
// conversion of accepted quotes into calendar entries.
type EventService struct {
	eventRepo repository.EventRepository
	quoteRepo repository.QuoteRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo repository.EventRepository, quoteRepo repository.QuoteRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		quoteRepo: quoteRepo,
	}
}

// ConvertQuote books an accepted quote as an event. The quote moves to
// Converted and afterwards refuses further edits.
func (s *EventService) ConvertQuote(ctx context.Context, userID, quoteID uuid.UUID, isAdmin bool) (*entity.Event, error) {
	q, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	if !isAdmin && q.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	if q.Status == enum.QuoteStatusConverted {
		return nil, apperror.NewConflictError("Quote has already been converted")
	}
	if q.Status != enum.QuoteStatusAccepted {
		return nil, apperror.NewBadRequestError("Only accepted quotes can be converted")
	}

	existing, err := s.eventRepo.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An event already exists for this quote")
	}

	event := &entity.Event{
		QuoteID:      q.ID,
		CustomerID:   q.CustomerID,
		CustomerName: q.CustomerName,
		EventDate:    q.EventDate,
		TableCount:   q.TableCount,
		TotalAmount:  q.TotalAmount,
		TotalCost:    q.TotalCost,
		Status:       enum.EventStatusScheduled,
		Note:         q.Note,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	if err := s.quoteRepo.UpdateStatus(ctx, q.ID, enum.QuoteStatusConverted); err != nil {
		return nil, err
	}
	return event, nil
}

// GetEvent retrieves an event by ID
func (s *EventService) GetEvent(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperror.NewNotFoundError("Event")
	}
	return event, nil
}

// ListEventsInput represents the input for listing events
type ListEventsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.EventStatus
}

// ListEvents lists events with filtering
func (s *EventService) ListEvents(ctx context.Context, input *ListEventsInput) (*pagination.PaginatedResult[entity.Event], error) {
	params := &repository.EventFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
	}
	events, total, err := s.eventRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(events, pag), nil
}

// ListEventsByMonth returns the events of one calendar month, for the
// calendar screen.
func (s *EventService) ListEventsByMonth(ctx context.Context, year int, month time.Month) ([]entity.Event, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)
	return s.eventRepo.ListByDateRange(ctx, from, to)
}

// UpdateEventStatus updates the status of an event
func (s *EventService) UpdateEventStatus(ctx context.Context, id uuid.UUID, status enum.EventStatus) error {
	if !status.IsValid() {
		return apperror.NewBadRequestError("Unknown event status")
	}
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return apperror.NewNotFoundError("Event")
	}
	return s.eventRepo.UpdateStatus(ctx, id, status)
}

// UpdateEventInput represents the input for updating an event
type UpdateEventInput struct {
	ID        uuid.UUID
	EventDate *time.Time
	Note      *string
}

// UpdateEvent updates the reschedulable fields of an event
func (s *EventService) UpdateEvent(ctx context.Context, input *UpdateEventInput) (*entity.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperror.NewNotFoundError("Event")
	}

	if input.EventDate != nil {
		event.EventDate = *input.EventDate
	}
	if input.Note != nil {
		event.Note = input.Note
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent deletes an event
func (s *EventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return apperror.NewNotFoundError("Event")
	}
	return s.eventRepo.Delete(ctx, id)
}
