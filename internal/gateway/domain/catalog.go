package domain

// Product is the gateway's view of a catalog entry owned by the products
// backend. Plain passthrough data, no gateway-side invariants.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int32   `json:"quantity"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int32   `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is the gateway's view of an order owned by the orders backend.
type Order struct {
	ID     string      `json:"id"`
	UserID string      `json:"user_id"`
	Status string      `json:"status"`
	Total  float64     `json:"total"`
	Items  []OrderItem `json:"items"`
}
