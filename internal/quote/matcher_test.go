package quote

import "testing"

func testCatalog() *Catalog {
	return NewCatalog([]CatalogEntry{
		{Code: "MN-001", Name: "Gà luộc", Unit: "đĩa", SellingPrice: 200000, CostPrice: 120000},
		{Code: "MN-002", Name: "Chả giò", Unit: "đĩa", SellingPrice: 15000, CostPrice: 8000},
		{Code: "MN-003", Name: "Súp cua", Unit: "bát", SellingPrice: 20000, CostPrice: 12000},
		{Code: "MN-004", Name: "Phở", Unit: "bát", SellingPrice: 50000, CostPrice: 30000},
		{Code: "MN-005", Name: "Cơm chiên Dương Châu", Unit: "đĩa", SellingPrice: 80000, CostPrice: 45000},
		{Code: CodeTableInox, Name: "Bàn inox", Unit: "bàn", SellingPrice: 250000, CostPrice: 250000},
		{Code: CodeStaff, Name: "Nhân viên phục vụ", Unit: "người", SellingPrice: 350000, CostPrice: 300000},
		{Code: CodeFrame, Name: "Khung rạp", Unit: "bộ", SellingPrice: 2000000, CostPrice: 1500000},
	})
}

func TestNormalizeStripsDiacritics(t *testing.T) {
	if got := Normalize("Gà Luộc"); got != "ga luoc" {
		t.Fatalf("Normalize(Gà Luộc) = %q", got)
	}
	if got := Normalize("  SÚP CUA  "); got != "sup cua" {
		t.Fatalf("Normalize(SÚP CUA) = %q", got)
	}
}

func TestMatchContainment(t *testing.T) {
	c := testCatalog()

	entry, ok := c.Match("ga luoc")
	if !ok || entry.Code != "MN-001" {
		t.Fatalf("diacritic-free candidate did not match: %v %v", entry, ok)
	}

	// Candidate containing the first two tokens of the entry name.
	entry, ok = c.Match("cơm chiên thập cẩm")
	if !ok || entry.Code != "MN-005" {
		t.Fatalf("two-token prefix containment did not match: %v %v", entry, ok)
	}

	if _, ok := c.Match("bánh xèo"); ok {
		t.Fatal("unknown dish should not match")
	}
}

func TestMatchFirstCatalogHitWins(t *testing.T) {
	c := NewCatalog([]CatalogEntry{
		{Code: "A", Name: "Gà hấp"},
		{Code: "B", Name: "Gà hấp hành"},
	})
	entry, ok := c.Match("gà hấp")
	if !ok || entry.Code != "A" {
		t.Fatalf("expected first entry in catalog order, got %v", entry)
	}
}

func TestSimilarityBounds(t *testing.T) {
	if got := Similarity("Phở bò", "pho bo"); got != 1 {
		t.Fatalf("identical normalized strings must score 1.0, got %v", got)
	}
	if got := Similarity("phở", "khung rạp sự kiện"); got > 0.3 {
		t.Fatalf("disjoint strings scored too high: %v", got)
	}
}

func TestSimilarityMonotoneInEditDistance(t *testing.T) {
	base := "ga luoc"
	prev := Similarity(base, base)
	for _, mutated := range []string{"ga luoz", "ga lyoz", "gq lyoz"} {
		score := Similarity(base, mutated)
		if score > prev {
			t.Fatalf("score rose with edit distance: %q -> %v after %v", mutated, score, prev)
		}
		prev = score
	}
}

func TestSuggestThresholdAndLimit(t *testing.T) {
	c := testCatalog()

	sugg := c.Suggest("sup cu", SuggestThreshold, SuggestLimit)
	if len(sugg) == 0 {
		t.Fatal("expected at least one suggestion for a near-miss")
	}
	if sugg[0].Entry.Code != "MN-003" {
		t.Fatalf("best suggestion should be Súp cua, got %v", sugg[0].Entry)
	}
	if len(sugg) > SuggestLimit {
		t.Fatalf("suggestion list exceeds limit: %d", len(sugg))
	}
	for i := 1; i < len(sugg); i++ {
		if sugg[i].Score > sugg[i-1].Score {
			t.Fatal("suggestions not ordered by descending score")
		}
	}
}

func TestSuggestEmptyForGibberish(t *testing.T) {
	c := testCatalog()
	if sugg := c.Suggest("zzzzqqqq", SuggestThreshold, SuggestLimit); len(sugg) != 0 {
		t.Fatalf("gibberish should yield no suggestions, got %v", sugg)
	}
}

func TestResolvePartitionsMatchedAndUnmatched(t *testing.T) {
	c := testCatalog()
	matches, unmatched := c.Resolve("Gà luộc\nmón không tồn tại nào đó\nChả giò x 20", 10)

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Entry.Code != "MN-001" || matches[0].Quantity != 10 || matches[0].Explicit {
		t.Fatalf("unexpected first match: %+v", matches[0])
	}
	if matches[1].Entry.Code != "MN-002" || matches[1].Quantity != 20 || !matches[1].Explicit {
		t.Fatalf("unexpected second match: %+v", matches[1])
	}

	if len(unmatched) != 1 {
		t.Fatalf("expected 1 unmatched line, got %d", len(unmatched))
	}
	if unmatched[0].Raw != "món không tồn tại nào đó" {
		t.Fatalf("unexpected unmatched raw line: %q", unmatched[0].Raw)
	}
}
