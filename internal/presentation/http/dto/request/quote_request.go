package request

// ComputeQuoteRequest carries everything one computation pass needs:
// counts, the raw dish text, session edits and export adjustments.
type ComputeQuoteRequest struct {
	TableCount int    `json:"table_count" binding:"min=0"`
	TableType  string `json:"table_type"`
	StaffCount int    `json:"staff_count" binding:"min=0"`
	FrameCount int    `json:"frame_count" binding:"min=0"`

	DishesInput string `json:"dishes_input"`

	LineEdits []QuoteLineEditRequest   `json:"line_edits"`
	Accepted  []AcceptSuggestionRequest `json:"accepted"`

	TablePrice *float64 `json:"table_price"`
	StaffPrice *float64 `json:"staff_price"`
	FramePrice *float64 `json:"frame_price"`
	FrameCost  *float64 `json:"frame_cost"`

	TableDiscountPct     float64 `json:"table_discount_pct"`
	FrameDiscountPct     float64 `json:"frame_discount_pct"`
	OrderDiscountPct     float64 `json:"order_discount_pct"`
	VATPct               float64 `json:"vat_pct"`
	CustomerHandlesStaff bool    `json:"customer_handles_staff"`
	ShowIndividualPrices bool    `json:"show_individual_prices"`
}

// QuoteLineEditRequest is a session edit against one resolved line
type QuoteLineEditRequest struct {
	Code         string   `json:"code" binding:"required"`
	Quantity     *int     `json:"quantity"`
	SellingPrice *float64 `json:"selling_price"`
	CostPrice    *float64 `json:"cost_price"`
	Remove       bool     `json:"remove"`
}

// AcceptSuggestionRequest resolves an unmatched line to a catalog code
type AcceptSuggestionRequest struct {
	Raw      string `json:"raw" binding:"required"`
	Code     string `json:"code" binding:"required"`
	Quantity int    `json:"quantity" binding:"min=0"`
}

// SaveQuoteRequest represents the create/update quote request body
type SaveQuoteRequest struct {
	CustomerID    *string `json:"customer_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
	EventDate     string  `json:"event_date" binding:"required"`
	Note          *string `json:"note"`

	ComputeQuoteRequest
}

// UpdateQuoteStatusRequest represents a status transition request
type UpdateQuoteStatusRequest struct {
	Status int `json:"status" binding:"min=0"`
}
