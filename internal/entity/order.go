package domain

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

// Product is the authoritative catalog record for one product code.
type Product struct {
	ID       int64   `json:"id"`
	Code     string  `json:"productCode"`
	Name     string  `json:"productName"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

// SubmittedItem is a cart line as the client sends it: a code and a size.
// Nothing in it is trusted for pricing.
type SubmittedItem struct {
	ProductCode string `json:"productCode"`
	Size        string `json:"size"`
}

// CartItem is a cart line after enrichment from the catalog.
type CartItem struct {
	ID          int64   `json:"id"`
	ProductCode string  `json:"productCode"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Size        string  `json:"size"`
}

// Address is opaque to pricing; it is sanitized on the way in and carried
// through to the persisted order unchanged.
type Address map[string]any

type Pricing struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Delivery float64 `json:"delivery"`
	Total    float64 `json:"total"`
}

// OrderSummary is the priced order as quoted to the client. Once hashed it is
// immutable from the server's point of view; it is never stored unless its
// digest verifies.
type OrderSummary struct {
	Cart      []CartItem `json:"cart"`
	Address   Address    `json:"address"`
	Pricing   Pricing    `json:"pricing"`
	OrderDate time.Time  `json:"orderDate"`
	Status    Status     `json:"status"`
}
