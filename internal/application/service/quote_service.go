package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/duanbtco-star/giaotuyet-api/internal/domain/entity"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/enum"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/repository"
	"github.com/duanbtco-star/giaotuyet-api/internal/quote"
	"github.com/duanbtco-star/giaotuyet-api/pkg/apperror"
	"github.com/duanbtco-star/giaotuyet-api/pkg/export"
	"github.com/duanbtco-star/giaotuyet-api/pkg/pagination"
)

// QuoteService runs the quote computation engine over the menu catalog
// and manages persisted quotes
type QuoteService struct {
	quoteRepo    repository.QuoteRepository
	menuRepo     repository.MenuItemRepository
	customerRepo repository.CustomerRepository
}

// NewQuoteService creates a new quote service
func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	menuRepo repository.MenuItemRepository,
	customerRepo repository.CustomerRepository,
) *QuoteService {
	return &QuoteService{
		quoteRepo:    quoteRepo,
		menuRepo:     menuRepo,
		customerRepo: customerRepo,
	}
}

// ComputeInput carries everything the engine needs for one computation
// pass: counts, the raw dish text, session edits and export
// adjustments.
type ComputeInput struct {
	TableCount int
	TableType  quote.TableType
	StaffCount int
	FrameCount int

	DishesInput string

	// Optional per-line session edits, applied after parsing in order.
	LineEdits []LineEdit
	// Accepted suggestions for previously unmatched lines.
	Accepted []AcceptedSuggestion

	// Optional fee price overrides.
	TablePrice *float64
	StaffPrice *float64
	FramePrice *float64
	FrameCost  *float64

	Adjustments quote.ExportAdjustments
}

// LineEdit is a user edit against one resolved line, addressed by
// catalog code.
type LineEdit struct {
	Code         string
	Quantity     *int
	SellingPrice *float64
	CostPrice    *float64
	Remove       bool
}

// AcceptedSuggestion resolves an unmatched raw line to a catalog code.
type AcceptedSuggestion struct {
	Raw      string
	Code     string
	Quantity int
}

// QuoteComputation is the full result of one engine pass: resolved
// line items, unresolved lines with ranked suggestions, the fee lines
// and both total views.
type QuoteComputation struct {
	Items     []*quote.LineItem      `json:"items"`
	Unmatched []quote.UnmatchedEntry `json:"unmatched"`
	Fees      *quote.FeeSet          `json:"fees"`
	Base      quote.BaseTotals       `json:"base_totals"`
	Export    quote.ExportTotals     `json:"export_totals"`
}

// Compute runs the engine without persisting anything.
func (s *QuoteService) Compute(ctx context.Context, input *ComputeInput) (*QuoteComputation, error) {
	draft, err := s.buildDraft(ctx, input)
	if err != nil {
		return nil, err
	}
	base, exportTotals := draft.Recompute()
	return &QuoteComputation{
		Items:     draft.Items,
		Unmatched: draft.Unmatched,
		Fees:      draft.Fees,
		Base:      base,
		Export:    exportTotals,
	}, nil
}

// Autocomplete ranks menu entries against a partial dish name for the
// live-typing flow.
func (s *QuoteService) Autocomplete(ctx context.Context, q string) ([]quote.SuggestionCandidate, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Suggest(q, quote.AutocompleteThreshold, quote.AutocompleteLimit), nil
}

// CreateQuoteInput represents the input for creating a quote
type CreateQuoteInput struct {
	UserID        uuid.UUID
	CustomerID    *uuid.UUID
	CustomerName  string
	CustomerPhone *string
	EventDate     time.Time
	Note          *string
	Compute       ComputeInput
}

// CreateQuote computes the totals and persists the flattened quote
// record. Only aggregate figures and the raw dish text are stored;
// per-line overrides live and die with the editing session.
func (s *QuoteService) CreateQuote(ctx context.Context, input *CreateQuoteInput) (*entity.Quote, error) {
	nextNum, err := s.quoteRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}
	reference := fmt.Sprintf("QT-%06d", nextNum)

	customerName := input.CustomerName
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer != nil {
			customerName = customer.Name
		}
	}

	draft, err := s.buildDraft(ctx, &input.Compute)
	if err != nil {
		return nil, err
	}
	_, totals := draft.Recompute()

	q := &entity.Quote{
		UserID:        input.UserID,
		CustomerID:    input.CustomerID,
		Reference:     reference,
		EventDate:     input.EventDate,
		CustomerName:  customerName,
		CustomerPhone: input.CustomerPhone,

		TableCount: draft.Fees.Table.Quantity,
		TableType:  string(input.Compute.TableType),
		StaffCount: draft.Fees.Staff.Quantity,
		FrameCount: draft.Fees.Frame.Quantity,

		DishesInput: input.Compute.DishesInput,

		TableDiscountPct:     input.Compute.Adjustments.TableDiscountPct,
		FrameDiscountPct:     input.Compute.Adjustments.FrameDiscountPct,
		OrderDiscountPct:     input.Compute.Adjustments.OrderDiscountPct,
		VATPct:               input.Compute.Adjustments.VATPct,
		CustomerHandlesStaff: input.Compute.Adjustments.CustomerHandlesStaff,
		ShowIndividualPrices: input.Compute.Adjustments.ShowIndividualPrices,

		Subtotal:    totals.Subtotal,
		TotalAmount: totals.GrandTotal,
		TotalCost:   totals.TotalCost,
		TotalProfit: totals.TotalProfit,

		Status: enum.QuoteStatusDraft,
		Note:   input.Note,
	}

	if err := s.quoteRepo.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// GetQuote retrieves a quote by ID
func (s *QuoteService) GetQuote(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	q, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	return q, nil
}

// ReopenQuote re-runs the engine over a stored quote's raw dish text
// and adjustments against the current menu.
func (s *QuoteService) ReopenQuote(ctx context.Context, id uuid.UUID) (*entity.Quote, *QuoteComputation, error) {
	q, err := s.GetQuote(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	computation, err := s.Compute(ctx, computeInputFromQuote(q))
	if err != nil {
		return nil, nil, err
	}
	return q, computation, nil
}

// ListQuotesInput represents the input for listing quotes
type ListQuotesInput struct {
	UserID     uuid.UUID
	IsAdmin    bool
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuoteStatus
	CustomerID *uuid.UUID
}

// ListQuotes lists quotes with filtering
func (s *QuoteService) ListQuotes(ctx context.Context, input *ListQuotesInput) (*pagination.PaginatedResult[entity.Quote], error) {
	params := &repository.QuoteFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		CustomerID: input.CustomerID,
	}

	var userID uuid.UUID
	if !input.IsAdmin {
		userID = input.UserID
	}

	quotes, total, err := s.quoteRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotes, pag), nil
}

// UpdateQuoteInput represents the input for updating a quote
type UpdateQuoteInput struct {
	UserID        uuid.UUID
	ID            uuid.UUID
	IsAdmin       bool
	CustomerID    *uuid.UUID
	CustomerName  string
	CustomerPhone *string
	EventDate     time.Time
	Note          *string
	Compute       ComputeInput
}

// UpdateQuote recomputes and updates an existing quote
func (s *QuoteService) UpdateQuote(ctx context.Context, input *UpdateQuoteInput) (*entity.Quote, error) {
	q, err := s.quoteRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	if !input.IsAdmin && q.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}
	if q.Status == enum.QuoteStatusConverted {
		return nil, apperror.NewConflictError("Quote has already been converted to an event")
	}

	customerName := input.CustomerName
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer != nil {
			customerName = customer.Name
		}
	}

	draft, err := s.buildDraft(ctx, &input.Compute)
	if err != nil {
		return nil, err
	}
	_, totals := draft.Recompute()

	q.CustomerID = input.CustomerID
	q.EventDate = input.EventDate
	q.CustomerName = customerName
	q.CustomerPhone = input.CustomerPhone
	q.TableCount = draft.Fees.Table.Quantity
	q.TableType = string(input.Compute.TableType)
	q.StaffCount = draft.Fees.Staff.Quantity
	q.FrameCount = draft.Fees.Frame.Quantity
	q.DishesInput = input.Compute.DishesInput
	q.TableDiscountPct = input.Compute.Adjustments.TableDiscountPct
	q.FrameDiscountPct = input.Compute.Adjustments.FrameDiscountPct
	q.OrderDiscountPct = input.Compute.Adjustments.OrderDiscountPct
	q.VATPct = input.Compute.Adjustments.VATPct
	q.CustomerHandlesStaff = input.Compute.Adjustments.CustomerHandlesStaff
	q.ShowIndividualPrices = input.Compute.Adjustments.ShowIndividualPrices
	q.Subtotal = totals.Subtotal
	q.TotalAmount = totals.GrandTotal
	q.TotalCost = totals.TotalCost
	q.TotalProfit = totals.TotalProfit
	q.Note = input.Note

	if err := s.quoteRepo.Update(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// DeleteQuote deletes a quote
func (s *QuoteService) DeleteQuote(ctx context.Context, userID, id uuid.UUID, isAdmin bool) error {
	q, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if q == nil {
		return apperror.NewNotFoundError("Quote")
	}
	if !isAdmin && q.UserID != userID {
		return apperror.ErrForbidden
	}
	return s.quoteRepo.Delete(ctx, id)
}

// UpdateQuoteStatus updates the status of a quote
func (s *QuoteService) UpdateQuoteStatus(ctx context.Context, userID, id uuid.UUID, status enum.QuoteStatus, isAdmin bool) error {
	if !status.IsValid() {
		return apperror.NewBadRequestError("Unknown quote status")
	}
	q, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if q == nil {
		return apperror.NewNotFoundError("Quote")
	}
	if !isAdmin && q.UserID != userID {
		return apperror.ErrForbidden
	}
	return s.quoteRepo.UpdateStatus(ctx, id, status)
}

// ExportQuote recomputes a stored quote and renders it as an Excel
// workbook in the display mode the quote was saved with.
func (s *QuoteService) ExportQuote(ctx context.Context, id uuid.UUID) (*excelize.File, string, error) {
	q, err := s.GetQuote(ctx, id)
	if err != nil {
		return nil, "", err
	}

	input := computeInputFromQuote(q)
	draft, err := s.buildDraft(ctx, input)
	if err != nil {
		return nil, "", err
	}
	_, totals := draft.Recompute()

	doc := &export.QuoteDocument{
		Reference:    q.Reference,
		CustomerName: q.CustomerName,
		EventDate:    q.EventDate,
		TableCount:   q.TableCount,
		Items:        draft.Items,
		Fees:         draft.Fees,
		Totals:       totals,
		Adjustments:  input.Adjustments,
	}

	file, err := export.QuoteWorkbook(doc)
	if err != nil {
		return nil, "", err
	}
	return file, q.Reference + ".xlsx", nil
}

func (s *QuoteService) loadCatalog(ctx context.Context) (*quote.Catalog, error) {
	items, err := s.menuRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]quote.CatalogEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, quote.CatalogEntry{
			Code:         item.Code,
			Name:         item.Name,
			Unit:         item.Unit,
			SellingPrice: item.SellingPrice,
			CostPrice:    item.CostPrice,
		})
	}
	return quote.NewCatalog(entries), nil
}

func (s *QuoteService) buildDraft(ctx context.Context, input *ComputeInput) (*quote.Draft, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	draft := quote.NewDraft(catalog, input.TableType)
	draft.Fees.Table.SetQuantity(input.TableCount)
	draft.Fees.Staff.SetQuantity(input.StaffCount)
	draft.Fees.Frame.SetQuantity(input.FrameCount)

	if input.TablePrice != nil {
		draft.Fees.Table.OverridePrice(*input.TablePrice)
	}
	if input.StaffPrice != nil {
		draft.Fees.Staff.OverridePrice(*input.StaffPrice)
	}
	if input.FramePrice != nil {
		draft.Fees.Frame.OverridePrice(*input.FramePrice)
	}
	if input.FrameCost != nil {
		draft.Fees.Frame.OverrideCost(*input.FrameCost)
	}

	draft.ParseInput(input.DishesInput, input.TableCount)

	for _, accepted := range input.Accepted {
		entry, ok := catalog.Lookup(accepted.Code)
		if !ok {
			continue
		}
		draft.AcceptSuggestion(accepted.Raw, quote.SuggestionCandidate{Entry: entry}, accepted.Quantity)
	}

	for _, edit := range input.LineEdits {
		item := findByCode(draft.Items, edit.Code)
		if item == nil {
			continue
		}
		if edit.Remove {
			draft.Remove(item.ID)
			continue
		}
		if edit.Quantity != nil {
			draft.UpdateQuantity(item.ID, *edit.Quantity)
		}
		if edit.SellingPrice != nil {
			draft.UpdateSellingPrice(item.ID, *edit.SellingPrice)
		}
		if edit.CostPrice != nil {
			draft.UpdateCostPrice(item.ID, *edit.CostPrice)
		}
	}

	draft.Adjustments = input.Adjustments
	return draft, nil
}

func findByCode(items []*quote.LineItem, code string) *quote.LineItem {
	for _, item := range items {
		if item.Code == code {
			return item
		}
	}
	return nil
}

func computeInputFromQuote(q *entity.Quote) *ComputeInput {
	return &ComputeInput{
		TableCount:  q.TableCount,
		TableType:   quote.TableType(q.TableType),
		StaffCount:  q.StaffCount,
		FrameCount:  q.FrameCount,
		DishesInput: q.DishesInput,
		Adjustments: quote.ExportAdjustments{
			TableDiscountPct:     q.TableDiscountPct,
			FrameDiscountPct:     q.FrameDiscountPct,
			OrderDiscountPct:     q.OrderDiscountPct,
			VATPct:               q.VATPct,
			CustomerHandlesStaff: q.CustomerHandlesStaff,
			ShowIndividualPrices: q.ShowIndividualPrices,
		},
	}
}
