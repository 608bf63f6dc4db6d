package quote

// Reserved catalog codes for the fixed service items. The menu source
// must keep these codes stable for auto-pricing to pick them up.
const (
	CodeTableInox  = "BAN-001"
	CodeTableEvent = "BAN-002"
	CodeFrame      = "BAN-003"
	CodeStaff      = "NV-001"
)

// Fallback prices used when a reserved code is missing from the
// catalog snapshot. Quoting must never block on an incomplete menu.
var fallbackPrices = map[string]struct {
	Sell float64
	Cost float64
}{
	CodeTableInox:  {Sell: 250000, Cost: 250000},
	CodeTableEvent: {Sell: 300000, Cost: 280000},
	CodeFrame:      {Sell: 2000000, Cost: 1500000},
	CodeStaff:      {Sell: 350000, Cost: 300000},
}

// CatalogEntry is one priced item from the menu database. Entries are
// read-only for the lifetime of a quoting session.
type CatalogEntry struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	SellingPrice float64 `json:"selling_price"`
	CostPrice    float64 `json:"cost_price"`
}

// Catalog is an immutable snapshot of the menu, loaded once per
// session. Order matters: containment matching picks the first hit.
type Catalog struct {
	entries    []CatalogEntry
	normalized []string
	byCode     map[string]int
}

// NewCatalog builds a catalog snapshot from menu entries.
func NewCatalog(entries []CatalogEntry) *Catalog {
	c := &Catalog{
		entries:    make([]CatalogEntry, len(entries)),
		normalized: make([]string, len(entries)),
		byCode:     make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)
	for i, e := range c.entries {
		c.normalized[i] = Normalize(e.Name)
		if _, ok := c.byCode[e.Code]; !ok {
			c.byCode[e.Code] = i
		}
	}
	return c
}

// Entries returns the catalog contents in catalog order.
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup finds an entry by its catalog code.
func (c *Catalog) Lookup(code string) (CatalogEntry, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return CatalogEntry{}, false
	}
	return c.entries[i], true
}

// servicePrices resolves the selling and cost price for a reserved
// service code, falling back to the documented defaults when the code
// is absent from the snapshot.
func (c *Catalog) servicePrices(code string) (sell, cost float64) {
	if e, ok := c.Lookup(code); ok {
		return e.SellingPrice, e.CostPrice
	}
	fb := fallbackPrices[code]
	return fb.Sell, fb.Cost
}
