package model

// CartLine is one row of the cart, keyed by (ProductID, Size).
// Size is empty for lines added without a size concept.
// Name, UnitPrice and Image are a snapshot copied from the product at
// add time; they are not re-synced when the product changes later.
type CartLine struct {
	ProductID string `json:"productId"`
	Size      string `json:"size,omitempty"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Image     string `json:"image"`
	Quantity  int64  `json:"quantity"`
}

// Cart holds the ordered line items and the derived total.
// Total must always equal the sum of UnitPrice*Quantity over all lines.
type Cart struct {
	Lines []CartLine `json:"items"`
	Total int64      `json:"total"`
}

// SizeSelection is the in-progress (size, quantity) choice a user
// builds before confirming add-to-cart. Only entries with a positive
// quantity are committed.
type SizeSelection struct {
	Size     string `json:"size"`
	Quantity int64  `json:"quantity"`
}
