package quote

import (
	"testing"

	"github.com/google/uuid"
)

func TestUnquantifiedRepeatDoesNotInflate(t *testing.T) {
	d := NewDraft(testCatalog(), TableInox)
	d.ParseInput("Phở\nPhở", 10)

	if len(d.Items) != 1 {
		t.Fatalf("expected one merged line item, got %d", len(d.Items))
	}
	if d.Items[0].Quantity != 10 {
		t.Fatalf("unquantified repeat inflated quantity to %d", d.Items[0].Quantity)
	}
}

func TestExplicitQuantitiesAccumulate(t *testing.T) {
	d := NewDraft(testCatalog(), TableInox)
	d.ParseInput("Phở x 5\nPhở x 3", 10)

	if len(d.Items) != 1 {
		t.Fatalf("expected one merged line item, got %d", len(d.Items))
	}
	if d.Items[0].Quantity != 8 {
		t.Fatalf("expected quantity 8, got %d", d.Items[0].Quantity)
	}
}

func TestQuantityFloor(t *testing.T) {
	d := NewDraft(testCatalog(), TableInox)
	d.ParseInput("Phở", 10)
	id := d.Items[0].ID

	for _, q := range []int{0, -5} {
		d.UpdateQuantity(id, q)
		if d.Items[0].Quantity != 1 {
			t.Fatalf("UpdateQuantity(%d) left quantity %d, want 1", q, d.Items[0].Quantity)
		}
	}
}

func TestOverrideIsolation(t *testing.T) {
	d := NewDraft(testCatalog(), TableInox)
	d.ParseInput("Gà luộc\nChả giò", 10)

	a, b := d.Items[0], d.Items[1]
	beforePrice := b.Price.Effective()
	beforeTotal := b.Total
	beforeProfit := b.Profit

	d.UpdateSellingPrice(a.ID, 999999)

	if b.Price.Effective() != beforePrice || b.Total != beforeTotal || b.Profit != beforeProfit {
		t.Fatal("override on one line item leaked into another")
	}
	if a.Price.Effective() != 999999 {
		t.Fatalf("override not applied: %v", a.Price.Effective())
	}
}

func TestOverridePersistsIndependentlyOfBase(t *testing.T) {
	d := NewDraft(testCatalog(), TableInox)
	d.ParseInput("Gà luộc", 10)
	item := d.Items[0]

	d.UpdateSellingPrice(item.ID, 180000)
	d.UpdateQuantity(item.ID, 5)

	if item.Price.Effective() != 180000 {
		t.Fatal("override lost after quantity edit")
	}
	if item.Total != 180000*5 {
		t.Fatalf("total not recomputed from override: %v", item.Total)
	}
	if !item.Price.IsOverridden() || item.Price.Base != 200000 {
		t.Fatal("base price must survive under the override")
	}
}

func TestPriceOverrideFloorsAtZero(t *testing.T) {
	d := NewDraft(testCatalog(), TableInox)
	d.ParseInput("Gà luộc", 10)
	item := d.Items[0]

	d.UpdateSellingPrice(item.ID, -500)
	if item.Price.Effective() != 0 {
		t.Fatalf("negative price override not clamped: %v", item.Price.Effective())
	}
	d.UpdateCostPrice(item.ID, -500)
	if item.Cost.Effective() != 0 {
		t.Fatalf("negative cost override not clamped: %v", item.Cost.Effective())
	}
}

func TestCostOverrideLeavesTotalUntouched(t *testing.T) {
	d := NewDraft(testCatalog(), TableInox)
	d.ParseInput("Gà luộc", 10)
	item := d.Items[0]
	total := item.Total

	d.UpdateCostPrice(item.ID, 150000)

	if item.Total != total {
		t.Fatal("cost override changed the customer-facing total")
	}
	if item.Profit != (200000-150000)*10 {
		t.Fatalf("profit not recomputed from cost override: %v", item.Profit)
	}
}

func TestRemoveLineItem(t *testing.T) {
	d := NewDraft(testCatalog(), TableInox)
	d.ParseInput("Gà luộc\nChả giò", 10)

	if !d.Remove(d.Items[0].ID) {
		t.Fatal("remove reported failure for an existing line")
	}
	if len(d.Items) != 1 || d.Items[0].Code != "MN-002" {
		t.Fatalf("unexpected items after remove: %+v", d.Items)
	}
	if d.Remove(uuid.New()) {
		t.Fatal("remove of an unknown id must be a no-op")
	}
}

func TestMutationsOnUnknownIDAreBenign(t *testing.T) {
	d := NewDraft(testCatalog(), TableInox)
	d.ParseInput("Gà luộc", 10)

	if item := d.UpdateQuantity(uuid.New(), 3); item != nil {
		t.Fatal("unknown id must not resolve to a line item")
	}
	if item := d.UpdateSellingPrice(uuid.New(), 100); item != nil {
		t.Fatal("unknown id must not resolve to a line item")
	}
	if d.Items[0].Quantity != 10 {
		t.Fatal("stray mutation altered an unrelated line")
	}
}

func TestAcceptSuggestion(t *testing.T) {
	d := NewDraft(testCatalog(), TableInox)
	d.ParseInput("sup kua", 10)

	if len(d.Items) != 0 || len(d.Unmatched) != 1 {
		t.Fatalf("expected one unmatched line, got items=%d unmatched=%d", len(d.Items), len(d.Unmatched))
	}
	sugg := d.Unmatched[0].Suggestions
	if len(sugg) == 0 || sugg[0].Entry.Code != "MN-003" {
		t.Fatalf("expected Súp cua suggestion, got %+v", sugg)
	}

	item := d.AcceptSuggestion(d.Unmatched[0].Raw, sugg[0], 12)

	if item == nil || item.Code != "MN-003" || item.Quantity != 12 {
		t.Fatalf("unexpected accepted line item: %+v", item)
	}
	if len(d.Unmatched) != 0 {
		t.Fatal("accepted line still present in unmatched set")
	}
}
