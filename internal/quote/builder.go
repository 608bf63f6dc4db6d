package quote

import (
	"github.com/google/uuid"
)

// LineItem is one resolved, quantified, priced row of a quote draft.
// Total and Profit are derived and refreshed on every mutation.
type LineItem struct {
	ID       uuid.UUID            `json:"id"`
	Code     string               `json:"code"`
	Name     string               `json:"name"`
	Unit     string               `json:"unit"`
	Quantity int                  `json:"quantity"`
	Price    Overridable[float64] `json:"price"`
	Cost     Overridable[float64] `json:"cost"`
	Total    float64              `json:"total"`
	Profit   float64              `json:"profit"`
}

func (li *LineItem) recompute() {
	qty := float64(li.Quantity)
	li.Total = li.Price.Effective() * qty
	li.Profit = (li.Price.Effective() - li.Cost.Effective()) * qty
}

// Draft is the mutable state of one quoting session: resolved line
// items, unresolved input lines, the auxiliary fee lines and the
// export adjustments. One draft belongs to exactly one editing
// session; nothing here is safe for concurrent use and nothing needs
// to be.
type Draft struct {
	catalog *Catalog

	Items       []*LineItem       `json:"items"`
	Unmatched   []UnmatchedEntry  `json:"unmatched"`
	Fees        *FeeSet           `json:"fees"`
	Adjustments ExportAdjustments `json:"adjustments"`
}

// NewDraft starts an empty quoting session over a catalog snapshot.
func NewDraft(catalog *Catalog, tableType TableType) *Draft {
	return &Draft{
		catalog: catalog,
		Fees:    NewFeeSet(catalog, tableType),
	}
}

// ParseInput resolves a raw dish blob against the catalog, merging the
// matches into the current line items and replacing the unmatched set.
// defaultQty is the order's table count.
func (d *Draft) ParseInput(input string, defaultQty int) {
	matches, unmatched := d.catalog.Resolve(input, defaultQty)
	for _, m := range matches {
		d.AddOrMergeMatch(m.Entry, m.Quantity, m.Explicit)
	}
	d.Unmatched = unmatched
}

// AddOrMergeMatch adds a resolved entry to the draft. A repeat of an
// existing entry accumulates its quantity only when the quantity was
// explicit in the input; an unquantified repeat is a no-op on the
// existing line so casual duplicate mentions never inflate the count.
func (d *Draft) AddOrMergeMatch(entry CatalogEntry, qty int, explicit bool) *LineItem {
	if qty < 1 {
		qty = 1
	}
	if existing := d.findByCode(entry.Code); existing != nil {
		if explicit {
			existing.Quantity += qty
		}
		existing.recompute()
		return existing
	}

	item := &LineItem{
		ID:       uuid.New(),
		Code:     entry.Code,
		Name:     entry.Name,
		Unit:     entry.Unit,
		Quantity: qty,
		Price:    NewOverridable(entry.SellingPrice),
		Cost:     NewOverridable(entry.CostPrice),
	}
	item.recompute()
	d.Items = append(d.Items, item)
	return item
}

// UpdateQuantity sets a line's quantity, floored at 1. Unknown IDs are
// ignored.
func (d *Draft) UpdateQuantity(id uuid.UUID, qty int) *LineItem {
	item := d.find(id)
	if item == nil {
		return nil
	}
	if qty < 1 {
		qty = 1
	}
	item.Quantity = qty
	item.recompute()
	return item
}

// UpdateSellingPrice sets a selling-price override, floored at 0.
func (d *Draft) UpdateSellingPrice(id uuid.UUID, price float64) *LineItem {
	item := d.find(id)
	if item == nil {
		return nil
	}
	if price < 0 {
		price = 0
	}
	item.Price.Set(price)
	item.recompute()
	return item
}

// UpdateCostPrice sets a cost-price override, floored at 0. Only the
// profit side changes; the customer-facing total is cost-independent.
func (d *Draft) UpdateCostPrice(id uuid.UUID, cost float64) *LineItem {
	item := d.find(id)
	if item == nil {
		return nil
	}
	if cost < 0 {
		cost = 0
	}
	item.Cost.Set(cost)
	item.recompute()
	return item
}

// Remove deletes a line item unconditionally. There is no undo.
func (d *Draft) Remove(id uuid.UUID) bool {
	for i, item := range d.Items {
		if item.ID == id {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return true
		}
	}
	return false
}

// AcceptSuggestion turns a suggestion for an unresolved line into a
// line item (quantity treated as explicit) and drops the raw line from
// the unmatched set.
func (d *Draft) AcceptSuggestion(raw string, cand SuggestionCandidate, qty int) *LineItem {
	for i, u := range d.Unmatched {
		if u.Raw == raw {
			d.Unmatched = append(d.Unmatched[:i], d.Unmatched[i+1:]...)
			break
		}
	}
	return d.AddOrMergeMatch(cand.Entry, qty, true)
}

// Recompute derives the current totals. Pure with respect to the draft:
// calling it any number of times without mutation yields equal results.
func (d *Draft) Recompute() (BaseTotals, ExportTotals) {
	base := ComputeBaseTotals(d.Items, d.Fees)
	export := ComputeExportTotals(base, d.Fees.Table.Quantity, d.Adjustments)
	return base, export
}

func (d *Draft) find(id uuid.UUID) *LineItem {
	for _, item := range d.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

func (d *Draft) findByCode(code string) *LineItem {
	for _, item := range d.Items {
		if item.Code == code {
			return item
		}
	}
	return nil
}
