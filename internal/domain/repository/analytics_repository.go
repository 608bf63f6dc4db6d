package repository

import (
	"context"
	"time"

	"github.com/duanbtco-star/giaotuyet-api/internal/domain/enum"
)

// QuoteStatusCount represents how many quotes sit in one status
type QuoteStatusCount struct {
	Status enum.QuoteStatus
	Count  int64
}

// MonthlyRevenueResult represents booked revenue for one month
type MonthlyRevenueResult struct {
	Month   time.Time
	Revenue float64
	Cost    float64
}

// AnalyticsRepository defines interface for dashboard aggregation queries
type AnalyticsRepository interface {
	// CountQuotesByStatus returns quote counts grouped by status
	CountQuotesByStatus(ctx context.Context) ([]QuoteStatusCount, error)

	// GetQuotedRevenue returns the total value of quotes created in [from, to)
	GetQuotedRevenue(ctx context.Context, from, to time.Time) (float64, error)

	// GetBookedRevenue returns revenue and cost of events scheduled in [from, to)
	GetBookedRevenue(ctx context.Context, from, to time.Time) (MonthlyRevenueResult, error)

	// GetMonthlyBookings returns per-month booked revenue for the last N months
	GetMonthlyBookings(ctx context.Context, months int) ([]MonthlyRevenueResult, error)
}
