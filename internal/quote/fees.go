package quote

// TableType selects which reserved table item prices the table fee.
type TableType string

const (
	TableInox  TableType = "inox"
	TableEvent TableType = "event"
)

// Code returns the reserved catalog code for the table type.
func (t TableType) Code() string {
	if t == TableEvent {
		return CodeTableEvent
	}
	return CodeTableInox
}

// FeeCategory identifies one of the three fixed non-dish charges.
type FeeCategory string

const (
	FeeTableRental  FeeCategory = "table_rental"
	FeeStaffService FeeCategory = "staff_service"
	FeeFrameRental  FeeCategory = "frame_rental"
)

// FeeLine is one auxiliary charge: a quantity priced off a reserved
// catalog item, with override semantics mirroring dish line items but
// keyed by category. Only the frame line supports a cost override;
// table and staff costs always follow the catalog rate.
type FeeLine struct {
	Category FeeCategory          `json:"category"`
	Code     string               `json:"code"`
	Quantity int                  `json:"quantity"`
	Price    Overridable[float64] `json:"price"`
	Cost     Overridable[float64] `json:"cost"`

	costEditable bool
}

// SetQuantity clamps the count to zero or more. A zero count is a
// legal state (no frames, no hired staff), not an error.
func (f *FeeLine) SetQuantity(q int) {
	if q < 0 {
		q = 0
	}
	f.Quantity = q
}

// OverridePrice sets the selling-price override, floored at zero.
func (f *FeeLine) OverridePrice(p float64) {
	if p < 0 {
		p = 0
	}
	f.Price.Set(p)
}

// OverrideCost sets the cost override when the category supports one.
// Table rental and staff service report false and stay on the catalog
// cost.
func (f *FeeLine) OverrideCost(c float64) bool {
	if !f.costEditable {
		return false
	}
	if c < 0 {
		c = 0
	}
	f.Cost.Set(c)
	return true
}

// Total is the customer-facing amount before any export discount.
func (f *FeeLine) Total() float64 {
	return f.Price.Effective() * float64(f.Quantity)
}

// CostTotal is the internal cost amount.
func (f *FeeLine) CostTotal() float64 {
	return f.Cost.Effective() * float64(f.Quantity)
}

// FeeSet holds the three auxiliary fee lines of one quote.
type FeeSet struct {
	Table *FeeLine `json:"table"`
	Staff *FeeLine `json:"staff"`
	Frame *FeeLine `json:"frame"`
}

// NewFeeSet seeds the fee lines from the reserved catalog codes,
// falling back to default prices when a code is missing.
func NewFeeSet(c *Catalog, tableType TableType) *FeeSet {
	return &FeeSet{
		Table: newFeeLine(c, FeeTableRental, tableType.Code(), false),
		Staff: newFeeLine(c, FeeStaffService, CodeStaff, false),
		Frame: newFeeLine(c, FeeFrameRental, CodeFrame, true),
	}
}

func newFeeLine(c *Catalog, category FeeCategory, code string, costEditable bool) *FeeLine {
	sell, cost := c.servicePrices(code)
	return &FeeLine{
		Category:     category,
		Code:         code,
		Price:        NewOverridable(sell),
		Cost:         NewOverridable(cost),
		costEditable: costEditable,
	}
}

// Lines returns the fee lines in display order.
func (s *FeeSet) Lines() []*FeeLine {
	return []*FeeLine{s.Table, s.Staff, s.Frame}
}
