package quote

import (
	"math"
	"testing"
)

func TestRecomputeIsIdempotent(t *testing.T) {
	d := NewDraft(testCatalog(), TableInox)
	d.ParseInput("Gà luộc\nChả giò x 20", 10)
	d.Fees.Table.SetQuantity(10)
	d.Fees.Staff.SetQuantity(5)
	d.Adjustments.OrderDiscountPct = 5

	base1, export1 := d.Recompute()
	base2, export2 := d.Recompute()

	if base1 != base2 {
		t.Fatalf("base totals drifted between recomputes:\n%+v\n%+v", base1, base2)
	}
	if export1 != export2 {
		t.Fatalf("export totals drifted between recomputes:\n%+v\n%+v", export1, export2)
	}
}

func TestDiscountCompounding(t *testing.T) {
	fees := NewFeeSet(testCatalog(), TableInox)
	fees.Table.SetQuantity(4) // 4 × 250,000 = 1,000,000

	base := ComputeBaseTotals(nil, fees)
	if base.TableTotal != 1000000 {
		t.Fatalf("table total = %v, want 1,000,000", base.TableTotal)
	}

	export := ComputeExportTotals(base, 4, ExportAdjustments{
		TableDiscountPct: 10,
		OrderDiscountPct: 10,
	})

	if export.TableTotal != 900000 {
		t.Fatalf("discounted table total = %v, want 900,000", export.TableTotal)
	}
	if got := export.Subtotal - export.TableTotal - base.StaffTotal; math.Abs(got) > 1e-9 {
		t.Fatalf("subtotal contains unexpected components: %+v", export)
	}
	wantGrand := (base.StaffTotal + 900000.0) * 0.9
	if math.Abs(export.GrandTotal-wantGrand) > 1e-9 {
		t.Fatalf("grand total = %v, want %v (discounts must compound multiplicatively)", export.GrandTotal, wantGrand)
	}
	// Cost figures stay at their pre-discount values.
	if export.TotalCost != base.TableCost+base.StaffCost+base.FrameCost {
		t.Fatalf("cost was discounted: %v", export.TotalCost)
	}
}

func TestStaffExclusionKeepsInternalProfit(t *testing.T) {
	fees := NewFeeSet(testCatalog(), TableInox)
	fees.Staff.SetQuantity(5) // 1,750,000 total / 1,500,000 cost

	base := ComputeBaseTotals(nil, fees)
	export := ComputeExportTotals(base, 0, ExportAdjustments{CustomerHandlesStaff: true})

	if export.StaffTotal != 0 {
		t.Fatalf("staff total not excluded from the bill: %v", export.StaffTotal)
	}
	if export.Subtotal != 0 || export.SubtotalCost != 0 {
		t.Fatalf("staff amounts leaked into the export subtotal: %+v", export)
	}
	// The internal view still carries staff profit for margin analysis.
	if base.TotalProfit != 1750000-1500000 {
		t.Fatalf("internal profit corrupted by export exclusion: %v", base.TotalProfit)
	}
}

func TestZeroTableSafety(t *testing.T) {
	fees := NewFeeSet(testCatalog(), TableInox)
	base := ComputeBaseTotals(nil, fees)
	export := ComputeExportTotals(base, 0, ExportAdjustments{})

	if export.PricePerTable != 0 {
		t.Fatalf("price per table with zero tables = %v, want 0", export.PricePerTable)
	}
	if math.IsNaN(export.GrandTotal) || math.IsInf(export.PricePerTable, 0) {
		t.Fatal("NaN/Inf leaked out of the totals")
	}
}

func TestPercentagesClampedDefensively(t *testing.T) {
	fees := NewFeeSet(testCatalog(), TableInox)
	fees.Table.SetQuantity(2)
	base := ComputeBaseTotals(nil, fees)

	export := ComputeExportTotals(base, 2, ExportAdjustments{
		TableDiscountPct: 250,
		OrderDiscountPct: -40,
		VATPct:           math.NaN(),
	})

	if export.TableTotal != 0 {
		t.Fatalf("discount above 100%% must clamp to 100%%: %v", export.TableTotal)
	}
	if export.GrandTotal != export.Subtotal {
		t.Fatalf("negative order discount must clamp to 0: %+v", export)
	}
	if math.IsNaN(export.VATAmount) {
		t.Fatal("NaN VAT percentage propagated")
	}
}

func TestVATIsDisplayOnly(t *testing.T) {
	fees := NewFeeSet(testCatalog(), TableInox)
	fees.Table.SetQuantity(4)
	base := ComputeBaseTotals(nil, fees)

	with := ComputeExportTotals(base, 4, ExportAdjustments{VATPct: 8})
	without := ComputeExportTotals(base, 4, ExportAdjustments{})

	if with.GrandTotal != without.GrandTotal || with.TotalProfit != without.TotalProfit {
		t.Fatal("VAT folded into the grand total or profit")
	}
	if want := with.GrandTotal * 0.08; math.Abs(with.VATAmount-want) > 1e-9 {
		t.Fatalf("VAT amount = %v, want %v", with.VATAmount, want)
	}
}

func TestFeeCostOverrideAsymmetry(t *testing.T) {
	fees := NewFeeSet(testCatalog(), TableInox)

	if fees.Table.OverrideCost(1) {
		t.Fatal("table rental cost must never be overridable")
	}
	if fees.Staff.OverrideCost(1) {
		t.Fatal("staff service cost must never be overridable")
	}
	if !fees.Frame.OverrideCost(1200000) {
		t.Fatal("frame rental cost must be overridable")
	}

	fees.Frame.SetQuantity(2)
	if fees.Frame.CostTotal() != 2400000 {
		t.Fatalf("frame cost override not applied: %v", fees.Frame.CostTotal())
	}
	if fees.Table.Cost.Effective() != 250000 {
		t.Fatalf("table cost drifted off the catalog rate: %v", fees.Table.Cost.Effective())
	}
}

// Full end-to-end scenario: ten inox tables, a pasted dish list with
// explicit quantity and ordinal-numbered lines, five staff, no frame.
func TestEndToEndScenario(t *testing.T) {
	d := NewDraft(testCatalog(), TableInox)
	d.ParseInput("Gà luộc\nChả giò x 20\n2. Súp cua", 10)
	d.Fees.Table.SetQuantity(10)
	d.Fees.Staff.SetQuantity(5)
	d.Fees.Frame.SetQuantity(0)

	if len(d.Unmatched) != 0 {
		t.Fatalf("unexpected unmatched lines: %+v", d.Unmatched)
	}
	if len(d.Items) != 3 {
		t.Fatalf("expected 3 line items, got %d", len(d.Items))
	}

	expect := []struct {
		code   string
		qty    int
		total  float64
		profit float64
	}{
		{"MN-001", 10, 2000000, 800000},
		{"MN-002", 20, 300000, 140000},
		{"MN-003", 10, 200000, 80000},
	}
	for i, want := range expect {
		got := d.Items[i]
		if got.Code != want.code || got.Quantity != want.qty || got.Total != want.total || got.Profit != want.profit {
			t.Fatalf("line %d = %+v, want %+v", i, got, want)
		}
	}

	base, _ := d.Recompute()
	if base.TableTotal != 2500000 || base.TableCost != 2500000 {
		t.Fatalf("table totals = %v/%v", base.TableTotal, base.TableCost)
	}
	if base.StaffTotal != 1750000 || base.StaffCost != 1500000 {
		t.Fatalf("staff totals = %v/%v", base.StaffTotal, base.StaffCost)
	}
	if base.FrameTotal != 0 || base.FrameCost != 0 {
		t.Fatalf("frame totals = %v/%v", base.FrameTotal, base.FrameCost)
	}
	if base.GrandTotal != 6750000 {
		t.Fatalf("grand total = %v, want 6,750,000", base.GrandTotal)
	}
	if base.DishesCost != 1480000 {
		t.Fatalf("dishes cost = %v, want 1,480,000", base.DishesCost)
	}
	if base.TotalCost != 5480000 {
		t.Fatalf("total cost = %v, want 5,480,000", base.TotalCost)
	}
	if base.TotalProfit != 1270000 {
		t.Fatalf("total profit = %v, want 1,270,000", base.TotalProfit)
	}
}
