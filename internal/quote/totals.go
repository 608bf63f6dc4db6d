package quote

import "math"

// ExportAdjustments are the order-level modifiers applied at
// finalization time. They never mutate line items or fee lines.
type ExportAdjustments struct {
	TableDiscountPct     float64 `json:"table_discount_pct"`
	FrameDiscountPct     float64 `json:"frame_discount_pct"`
	OrderDiscountPct     float64 `json:"order_discount_pct"`
	VATPct               float64 `json:"vat_pct"`
	CustomerHandlesStaff bool    `json:"customer_handles_staff"`
	ShowIndividualPrices bool    `json:"show_individual_prices"`
}

// BaseTotals is the internal, pre-discount view of a draft. Profit
// figures here always include staff, regardless of export flags.
type BaseTotals struct {
	DishesTotal  float64 `json:"dishes_total"`
	DishesCost   float64 `json:"dishes_cost"`
	DishesProfit float64 `json:"dishes_profit"`

	TableTotal float64 `json:"table_total"`
	TableCost  float64 `json:"table_cost"`
	StaffTotal float64 `json:"staff_total"`
	StaffCost  float64 `json:"staff_cost"`
	FrameTotal float64 `json:"frame_total"`
	FrameCost  float64 `json:"frame_cost"`

	GrandTotal  float64 `json:"grand_total"`
	TotalCost   float64 `json:"total_cost"`
	TotalProfit float64 `json:"total_profit"`
}

// ExportTotals is the customer-facing view after discounts, staff
// exclusion and VAT. Cost figures are never discounted.
type ExportTotals struct {
	TableTotal float64 `json:"table_total"`
	FrameTotal float64 `json:"frame_total"`
	StaffTotal float64 `json:"staff_total"`

	Subtotal     float64 `json:"subtotal"`
	SubtotalCost float64 `json:"subtotal_cost"`

	GrandTotal  float64 `json:"grand_total"`
	TotalCost   float64 `json:"total_cost"`
	TotalProfit float64 `json:"total_profit"`

	VATAmount     float64 `json:"vat_amount"`
	PricePerTable float64 `json:"price_per_table"`
}

// ComputeBaseTotals aggregates line items and fee lines into the
// internal cost/profit view.
func ComputeBaseTotals(items []*LineItem, fees *FeeSet) BaseTotals {
	var t BaseTotals
	for _, item := range items {
		qty := float64(item.Quantity)
		t.DishesTotal += item.Price.Effective() * qty
		t.DishesCost += item.Cost.Effective() * qty
	}
	t.DishesProfit = t.DishesTotal - t.DishesCost

	t.TableTotal = fees.Table.Total()
	t.TableCost = fees.Table.CostTotal()
	t.StaffTotal = fees.Staff.Total()
	t.StaffCost = fees.Staff.CostTotal()
	t.FrameTotal = fees.Frame.Total()
	t.FrameCost = fees.Frame.CostTotal()

	t.GrandTotal = t.DishesTotal + t.TableTotal + t.StaffTotal + t.FrameTotal
	t.TotalCost = t.DishesCost + t.TableCost + t.StaffCost + t.FrameCost
	t.TotalProfit = t.GrandTotal - t.TotalCost
	return t
}

// ComputeExportTotals applies the export adjustments on top of the
// base totals. Category discounts hit only their own total, the order
// discount compounds multiplicatively after them, and VAT is a
// display-only additive line that never feeds back into the total or
// the profit.
func ComputeExportTotals(base BaseTotals, tableCount int, adj ExportAdjustments) ExportTotals {
	var t ExportTotals

	t.TableTotal = base.TableTotal * (1 - clampPct(adj.TableDiscountPct)/100)
	t.FrameTotal = base.FrameTotal * (1 - clampPct(adj.FrameDiscountPct)/100)

	staffTotal := base.StaffTotal
	staffCost := base.StaffCost
	if adj.CustomerHandlesStaff {
		// The staff still work the event; they just drop off the bill.
		staffTotal = 0
		staffCost = 0
	}
	t.StaffTotal = staffTotal

	t.Subtotal = base.DishesTotal + t.TableTotal + t.FrameTotal + staffTotal
	t.SubtotalCost = base.DishesCost + base.TableCost + base.FrameCost + staffCost

	t.GrandTotal = t.Subtotal * (1 - clampPct(adj.OrderDiscountPct)/100)
	t.TotalCost = t.SubtotalCost
	t.TotalProfit = t.GrandTotal - t.TotalCost

	t.VATAmount = t.GrandTotal * clampPct(adj.VATPct) / 100

	if tableCount > 0 {
		t.PricePerTable = t.GrandTotal / float64(tableCount)
	}
	return t
}

// clampPct forces a percentage into [0,100]. The input boundary
// already clamps, but totals must stay finite even when it cannot be
// trusted.
func clampPct(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
