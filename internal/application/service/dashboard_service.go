package service

import (
	"context"
	"time"

	"github.com/duanbtco-star/giaotuyet-api/internal/domain/enum"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/repository"
)

// DashboardService aggregates quote and booking figures for the
// dashboard screen.
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// MonthlyBooking is one month of booked revenue
type MonthlyBooking struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Profit  float64 `json:"profit"`
}

// DashboardSummary is the full dashboard payload
type DashboardSummary struct {
	QuoteCounts map[string]int64 `json:"quote_counts"`

	QuotedThisMonth float64 `json:"quoted_this_month"`
	BookedThisMonth float64 `json:"booked_this_month"`
	CostThisMonth   float64 `json:"cost_this_month"`
	ProfitThisMonth float64 `json:"profit_this_month"`

	MonthlyBookings []MonthlyBooking `json:"monthly_bookings"`
}

// GetSummary builds the dashboard figures for the current month plus a
// trailing monthly breakdown.
func (s *DashboardService) GetSummary(ctx context.Context, trailingMonths int) (*DashboardSummary, error) {
	if trailingMonths <= 0 {
		trailingMonths = 6
	}

	counts, err := s.analyticsRepo.CountQuotesByStatus(ctx)
	if err != nil {
		return nil, err
	}
	quoteCounts := make(map[string]int64)
	for st := enum.QuoteStatusDraft; st <= enum.QuoteStatusConverted; st++ {
		quoteCounts[st.String()] = 0
	}
	for _, c := range counts {
		quoteCounts[c.Status.String()] = c.Count
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, 0)

	quoted, err := s.analyticsRepo.GetQuotedRevenue(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	booked, err := s.analyticsRepo.GetBookedRevenue(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	monthly, err := s.analyticsRepo.GetMonthlyBookings(ctx, trailingMonths)
	if err != nil {
		return nil, err
	}
	bookings := make([]MonthlyBooking, 0, len(monthly))
	for _, m := range monthly {
		bookings = append(bookings, MonthlyBooking{
			Month:   m.Month.Format("2006-01"),
			Revenue: m.Revenue,
			Cost:    m.Cost,
			Profit:  m.Revenue - m.Cost,
		})
	}

	return &DashboardSummary{
		QuoteCounts:     quoteCounts,
		QuotedThisMonth: quoted,
		BookedThisMonth: booked.Revenue,
		CostThisMonth:   booked.Cost,
		ProfitThisMonth: booked.Revenue - booked.Cost,
		MonthlyBookings: bookings,
	}, nil
}
