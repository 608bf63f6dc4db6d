package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/duanbtco-star/giaotuyet-api/internal/domain/entity"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/enum"
	domainRepo "github.com/duanbtco-star/giaotuyet-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountQuotesByStatus(ctx context.Context) ([]domainRepo.QuoteStatusCount, error) {
	var rows []struct {
		Status int64
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&entity.Quote{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make([]domainRepo.QuoteStatusCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, domainRepo.QuoteStatusCount{
			Status: enum.QuoteStatus(row.Status),
			Count:  row.Count,
		})
	}
	return counts, nil
}

func (r *analyticsRepository) GetQuotedRevenue(ctx context.Context, from, to time.Time) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Model(&entity.Quote{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&revenue).Error
	return revenue, err
}

func (r *analyticsRepository) GetBookedRevenue(ctx context.Context, from, to time.Time) (domainRepo.MonthlyRevenueResult, error) {
	var row struct {
		Revenue float64
		Cost    float64
	}
	err := r.db.WithContext(ctx).Model(&entity.Event{}).
		Select("COALESCE(SUM(total_amount), 0) as revenue, COALESCE(SUM(total_cost), 0) as cost").
		Where("event_date >= ? AND event_date < ?", from, to).
		Where("status <> ?", enum.EventStatusCanceled).
		Scan(&row).Error

	return domainRepo.MonthlyRevenueResult{
		Month:   from,
		Revenue: row.Revenue,
		Cost:    row.Cost,
	}, err
}

func (r *analyticsRepository) GetMonthlyBookings(ctx context.Context, months int) ([]domainRepo.MonthlyRevenueResult, error) {
	if months < 1 {
		months = 1
	}

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	results := make([]domainRepo.MonthlyRevenueResult, 0, months)
	for i := months - 1; i >= 0; i-- {
		from := firstOfMonth.AddDate(0, -i, 0)
		to := from.AddDate(0, 1, 0)
		monthly, err := r.GetBookedRevenue(ctx, from, to)
		if err != nil {
			return nil, err
		}
		results = append(results, monthly)
	}
	return results, nil
}
