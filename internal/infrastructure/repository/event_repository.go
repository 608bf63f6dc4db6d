package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/duanbtco-star/giaotuyet-api/internal/domain/entity"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/enum"
	domainRepo "github.com/duanbtco-star/giaotuyet-api/internal/domain/repository"
)

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) domainRepo.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var event entity.Event
	err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&event, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &event, err
}

func (r *eventRepository) GetByQuoteID(ctx context.Context, quoteID uuid.UUID) (*entity.Event, error) {
	var event entity.Event
	err := r.db.WithContext(ctx).First(&event, "quote_id = ?", quoteID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &event, err
}

func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Event{}, "id = ?", id).Error
}

func (r *eventRepository) List(ctx context.Context, params *domainRepo.EventFilterParams) ([]entity.Event, int64, error) {
	var events []entity.Event
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Event{})

	if params.Search != "" {
		query = query.Where("customer_name ILIKE ?", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("event_date ASC").
		Find(&events).Error

	return events, total, err
}

func (r *eventRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.Event, error) {
	var events []entity.Event
	err := r.db.WithContext(ctx).
		Where("event_date >= ? AND event_date < ?", from, to).
		Order("event_date ASC").
		Find(&events).Error
	return events, err
}

func (r *eventRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.EventStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Event{}).
		Where("id = ?", id).
		Update("status", status).Error
}
