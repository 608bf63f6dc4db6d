package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/duanbtco-star/giaotuyet-api/internal/domain/entity"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/enum"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/repository"
	"github.com/duanbtco-star/giaotuyet-api/internal/quote"
	"github.com/duanbtco-star/giaotuyet-api/pkg/pagination"
)

type fakeMenuRepo struct {
	items []entity.MenuItem
}

func (f *fakeMenuRepo) Create(ctx context.Context, item *entity.MenuItem) error { return nil }
func (f *fakeMenuRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	return nil, nil
}
func (f *fakeMenuRepo) GetByCode(ctx context.Context, code string) (*entity.MenuItem, error) {
	return nil, nil
}
func (f *fakeMenuRepo) Update(ctx context.Context, item *entity.MenuItem) error { return nil }
func (f *fakeMenuRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }
func (f *fakeMenuRepo) List(ctx context.Context, params *repository.MenuItemFilterParams) ([]entity.MenuItem, int64, error) {
	return f.items, int64(len(f.items)), nil
}
func (f *fakeMenuRepo) ListActive(ctx context.Context) ([]entity.MenuItem, error) {
	return f.items, nil
}

type fakeQuoteRepo struct {
	quotes map[uuid.UUID]*entity.Quote
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: make(map[uuid.UUID]*entity.Quote)}
}

func (f *fakeQuoteRepo) Create(ctx context.Context, q *entity.Quote) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	stored := *q
	f.quotes[q.ID] = &stored
	return nil
}
func (f *fakeQuoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	q, ok := f.quotes[id]
	if !ok {
		return nil, nil
	}
	copied := *q
	return &copied, nil
}
func (f *fakeQuoteRepo) GetByReference(ctx context.Context, reference string) (*entity.Quote, error) {
	for _, q := range f.quotes {
		if q.Reference == reference {
			copied := *q
			return &copied, nil
		}
	}
	return nil, nil
}
func (f *fakeQuoteRepo) Update(ctx context.Context, q *entity.Quote) error {
	stored := *q
	f.quotes[q.ID] = &stored
	return nil
}
func (f *fakeQuoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.quotes, id)
	return nil
}
func (f *fakeQuoteRepo) List(ctx context.Context, userID uuid.UUID, params *repository.QuoteFilterParams) ([]entity.Quote, int64, error) {
	var out []entity.Quote
	for _, q := range f.quotes {
		if userID != uuid.Nil && q.UserID != userID {
			continue
		}
		out = append(out, *q)
	}
	return out, int64(len(out)), nil
}
func (f *fakeQuoteRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuoteStatus) error {
	if q, ok := f.quotes[id]; ok {
		q.Status = status
	}
	return nil
}
func (f *fakeQuoteRepo) GetNextReferenceNumber(ctx context.Context) (int, error) {
	return len(f.quotes) + 1, nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *entity.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (f *fakeCustomerRepo) Update(ctx context.Context, c *entity.Customer) error { return nil }
func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }
func (f *fakeCustomerRepo) List(ctx context.Context, params *repository.CustomerFilterParams) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}

type fakeEventRepo struct {
	events map[uuid.UUID]*entity.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uuid.UUID]*entity.Event)}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *entity.Event) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	stored := *e
	f.events[e.ID] = &stored
	return nil
}
func (f *fakeEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	return e, nil
}
func (f *fakeEventRepo) GetByQuoteID(ctx context.Context, quoteID uuid.UUID) (*entity.Event, error) {
	for _, e := range f.events {
		if e.QuoteID == quoteID {
			return e, nil
		}
	}
	return nil, nil
}
func (f *fakeEventRepo) Update(ctx context.Context, e *entity.Event) error { return nil }
func (f *fakeEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.events, id)
	return nil
}
func (f *fakeEventRepo) List(ctx context.Context, params *repository.EventFilterParams) ([]entity.Event, int64, error) {
	return nil, 0, nil
}
func (f *fakeEventRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.Event, error) {
	return nil, nil
}
func (f *fakeEventRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.EventStatus) error {
	if e, ok := f.events[id]; ok {
		e.Status = status
	}
	return nil
}

func testMenu() []entity.MenuItem {
	return []entity.MenuItem{
		{Code: "MN-001", Name: "Gà luộc", Unit: "con", SellingPrice: 200000, CostPrice: 120000, IsActive: true},
		{Code: "MN-002", Name: "Chả giò", Unit: "phần", SellingPrice: 15000, CostPrice: 8000, IsActive: true},
		{Code: "MN-003", Name: "Súp cua", Unit: "phần", SellingPrice: 20000, CostPrice: 12000, IsActive: true},
		{Code: quote.CodeTableInox, Name: "Bàn inox", Unit: "bàn", SellingPrice: 250000, CostPrice: 250000, IsActive: true},
		{Code: quote.CodeStaff, Name: "Nhân viên phục vụ", Unit: "người", SellingPrice: 350000, CostPrice: 300000, IsActive: true},
		{Code: quote.CodeFrame, Name: "Khung rạp", Unit: "bộ", SellingPrice: 2000000, CostPrice: 1500000, IsActive: true},
	}
}

func newTestQuoteService() (*QuoteService, *fakeQuoteRepo) {
	quoteRepo := newFakeQuoteRepo()
	menuRepo := &fakeMenuRepo{items: testMenu()}
	customerRepo := &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
	return NewQuoteService(quoteRepo, menuRepo, customerRepo), quoteRepo
}

func TestComputeResolvesDishes(t *testing.T) {
	svc, _ := newTestQuoteService()

	result, err := svc.Compute(context.Background(), &ComputeInput{
		TableCount:  10,
		TableType:   quote.TableInox,
		DishesInput: "Gà luộc\nChả giò x 20",
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	if result.Items[0].Quantity != 10 {
		t.Errorf("unquantified dish should default to table count, got %d", result.Items[0].Quantity)
	}
	if result.Items[1].Quantity != 20 {
		t.Errorf("explicit quantity lost: got %d", result.Items[1].Quantity)
	}
	if len(result.Unmatched) != 0 {
		t.Errorf("unexpected unmatched entries: %v", result.Unmatched)
	}
}

func TestComputeAppliesLineEdits(t *testing.T) {
	svc, _ := newTestQuoteService()

	price := 180000.0
	result, err := svc.Compute(context.Background(), &ComputeInput{
		TableCount:  5,
		TableType:   quote.TableInox,
		DishesInput: "Gà luộc, Súp cua",
		LineEdits: []LineEdit{
			{Code: "MN-001", SellingPrice: &price},
			{Code: "MN-003", Remove: true},
		},
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 item after removal, got %d", len(result.Items))
	}
	if got := result.Items[0].Price.Effective(); got != 180000 {
		t.Errorf("price override not applied: got %v", got)
	}
}

func TestCreateQuotePersistsAggregates(t *testing.T) {
	svc, repo := newTestQuoteService()
	userID := uuid.New()

	q, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       userID,
		CustomerName: "Chị Hoa",
		EventDate:    time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		Compute: ComputeInput{
			TableCount:  10,
			TableType:   quote.TableInox,
			StaffCount:  2,
			DishesInput: "Gà luộc\nChả giò x 100",
		},
	})
	if err != nil {
		t.Fatalf("CreateQuote: %v", err)
	}
	if q.Reference != "QT-000001" {
		t.Errorf("reference = %q, want QT-000001", q.Reference)
	}
	if q.Status != enum.QuoteStatusDraft {
		t.Errorf("new quote status = %v, want Draft", q.Status)
	}

	// dishes 10*200000 + 100*15000 = 3,500,000; tables 10*250000; staff 2*350000
	wantTotal := 3500000.0 + 2500000.0 + 700000.0
	if q.TotalAmount != wantTotal {
		t.Errorf("TotalAmount = %v, want %v", q.TotalAmount, wantTotal)
	}

	stored, _ := repo.GetByID(context.Background(), q.ID)
	if stored == nil {
		t.Fatal("quote not persisted")
	}
	if stored.DishesInput != "Gà luộc\nChả giò x 100" {
		t.Errorf("raw dish text not stored: %q", stored.DishesInput)
	}
}

func TestUpdateQuoteForbiddenForOtherUser(t *testing.T) {
	svc, _ := newTestQuoteService()
	owner := uuid.New()

	q, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       owner,
		CustomerName: "Anh Tú",
		EventDate:    time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		Compute:      ComputeInput{TableCount: 5, TableType: quote.TableInox, DishesInput: "Gà luộc"},
	})
	if err != nil {
		t.Fatalf("CreateQuote: %v", err)
	}

	_, err = svc.UpdateQuote(context.Background(), &UpdateQuoteInput{
		UserID:       uuid.New(),
		ID:           q.ID,
		IsAdmin:      false,
		CustomerName: "Anh Tú",
		EventDate:    q.EventDate,
		Compute:      ComputeInput{TableCount: 6, TableType: quote.TableInox, DishesInput: "Gà luộc"},
	})
	if err == nil {
		t.Fatal("expected forbidden error for non-owner")
	}
}

func TestConvertQuoteRequiresAccepted(t *testing.T) {
	quoteRepo := newFakeQuoteRepo()
	menuRepo := &fakeMenuRepo{items: testMenu()}
	customerRepo := &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
	quoteSvc := NewQuoteService(quoteRepo, menuRepo, customerRepo)

	eventRepo := newFakeEventRepo()
	eventSvc := NewEventService(eventRepo, quoteRepo)

	userID := uuid.New()
	q, err := quoteSvc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       userID,
		CustomerName: "Cô Lan",
		EventDate:    time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC),
		Compute:      ComputeInput{TableCount: 20, TableType: quote.TableInox, DishesInput: "Gà luộc"},
	})
	if err != nil {
		t.Fatalf("CreateQuote: %v", err)
	}

	if _, err := eventSvc.ConvertQuote(context.Background(), userID, q.ID, false); err == nil {
		t.Fatal("draft quote should not be convertible")
	}

	if err := quoteSvc.UpdateQuoteStatus(context.Background(), userID, q.ID, enum.QuoteStatusAccepted, false); err != nil {
		t.Fatalf("UpdateQuoteStatus: %v", err)
	}

	event, err := eventSvc.ConvertQuote(context.Background(), userID, q.ID, false)
	if err != nil {
		t.Fatalf("ConvertQuote: %v", err)
	}
	if event.QuoteID != q.ID {
		t.Errorf("event not linked to quote")
	}
	if event.TotalAmount != q.TotalAmount {
		t.Errorf("event total = %v, want %v", event.TotalAmount, q.TotalAmount)
	}

	stored, _ := quoteRepo.GetByID(context.Background(), q.ID)
	if stored.Status != enum.QuoteStatusConverted {
		t.Errorf("quote status after conversion = %v, want Converted", stored.Status)
	}

	// Converting twice must fail.
	if _, err := eventSvc.ConvertQuote(context.Background(), userID, q.ID, false); err == nil {
		t.Fatal("second conversion should fail")
	}
}

func TestConvertedQuoteRefusesEdits(t *testing.T) {
	quoteRepo := newFakeQuoteRepo()
	menuRepo := &fakeMenuRepo{items: testMenu()}
	customerRepo := &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
	svc := NewQuoteService(quoteRepo, menuRepo, customerRepo)

	userID := uuid.New()
	q, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       userID,
		CustomerName: "Chú Bảy",
		EventDate:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Compute:      ComputeInput{TableCount: 8, TableType: quote.TableInox, DishesInput: "Gà luộc"},
	})
	if err != nil {
		t.Fatalf("CreateQuote: %v", err)
	}
	if err := quoteRepo.UpdateStatus(context.Background(), q.ID, enum.QuoteStatusConverted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	_, err = svc.UpdateQuote(context.Background(), &UpdateQuoteInput{
		UserID:       userID,
		ID:           q.ID,
		CustomerName: "Chú Bảy",
		EventDate:    q.EventDate,
		Compute:      ComputeInput{TableCount: 9, TableType: quote.TableInox, DishesInput: "Gà luộc"},
	})
	if err == nil {
		t.Fatal("converted quote must refuse edits")
	}
}

func TestReopenQuoteRecomputes(t *testing.T) {
	svc, _ := newTestQuoteService()
	userID := uuid.New()

	q, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       userID,
		CustomerName: "Chị Mai",
		EventDate:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Compute: ComputeInput{
			TableCount:  10,
			TableType:   quote.TableInox,
			DishesInput: "Gà luộc\nMón không tồn tại",
			Adjustments: quote.ExportAdjustments{OrderDiscountPct: 10},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuote: %v", err)
	}

	stored, computation, err := svc.ReopenQuote(context.Background(), q.ID)
	if err != nil {
		t.Fatalf("ReopenQuote: %v", err)
	}
	if stored.ID != q.ID {
		t.Fatal("wrong quote returned")
	}
	if len(computation.Items) != 1 {
		t.Errorf("expected 1 resolved item, got %d", len(computation.Items))
	}
	if len(computation.Unmatched) != 1 {
		t.Errorf("expected 1 unmatched line, got %d", len(computation.Unmatched))
	}
	if computation.Export.GrandTotal != q.TotalAmount {
		t.Errorf("recomputed total %v differs from stored %v", computation.Export.GrandTotal, q.TotalAmount)
	}
}

func TestAutocompleteRanksCandidates(t *testing.T) {
	svc, _ := newTestQuoteService()

	candidates, err := svc.Autocomplete(context.Background(), "ga luoc")
	if err != nil {
		t.Fatalf("Autocomplete: %v", err)
	}
	if len(candidates) == 0 {
		t.Fatal("expected at least one candidate")
	}
	if candidates[0].Entry.Code != "MN-001" {
		t.Errorf("top candidate = %s, want MN-001", candidates[0].Entry.Code)
	}
}

func TestListQuotesScopedToUser(t *testing.T) {
	svc, _ := newTestQuoteService()
	alice := uuid.New()
	bob := uuid.New()

	for _, id := range []uuid.UUID{alice, alice, bob} {
		_, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
			UserID:       id,
			CustomerName: "Khách",
			EventDate:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
			Compute:      ComputeInput{TableCount: 1, TableType: quote.TableInox, DishesInput: "Gà luộc"},
		})
		if err != nil {
			t.Fatalf("CreateQuote: %v", err)
		}
	}

	params := &pagination.PaginationParams{Page: 1, PerPage: 15}
	result, err := svc.ListQuotes(context.Background(), &ListQuotesInput{
		UserID:     alice,
		IsAdmin:    false,
		Pagination: params,
	})
	if err != nil {
		t.Fatalf("ListQuotes: %v", err)
	}
	if len(result.Items) != 2 {
		t.Errorf("staff user sees %d quotes, want 2", len(result.Items))
	}

	adminResult, err := svc.ListQuotes(context.Background(), &ListQuotesInput{
		UserID:     alice,
		IsAdmin:    true,
		Pagination: params,
	})
	if err != nil {
		t.Fatalf("ListQuotes admin: %v", err)
	}
	if len(adminResult.Items) != 3 {
		t.Errorf("admin sees %d quotes, want 3", len(adminResult.Items))
	}
}

func TestExportQuoteProducesWorkbook(t *testing.T) {
	svc, _ := newTestQuoteService()
	userID := uuid.New()

	q, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       userID,
		CustomerName: "Chị Hoa",
		EventDate:    time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		Compute: ComputeInput{
			TableCount:  10,
			TableType:   quote.TableInox,
			StaffCount:  2,
			FrameCount:  1,
			DishesInput: "Gà luộc\nChả giò x 100",
		},
	})
	if err != nil {
		t.Fatalf("CreateQuote: %v", err)
	}

	file, filename, err := svc.ExportQuote(context.Background(), q.ID)
	if err != nil {
		t.Fatalf("ExportQuote: %v", err)
	}
	defer file.Close()

	if filename != q.Reference+".xlsx" {
		t.Errorf("filename = %q, want %q", filename, q.Reference+".xlsx")
	}
	rows, err := file.GetRows("Quote")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) == 0 {
		t.Fatal("workbook has no rows")
	}
}
