package domain

// Profile is the signed-in user. Nil means logged out.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Bio   string `json:"bio"`
}

const (
	CategoryBooks       = "books"
	CategoryElectronics = "electronics"
	CategoryFurniture   = "furniture"
	CategoryClothing    = "clothing"
	CategoryOther       = "other"
)

const ListingStatusActive = "Active"

// Listing is a product the user has put up for sale.
type Listing struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    Money  `json:"price"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	Image    string `json:"image"`
}

// ListingDraft is the caller-supplied part of a listing. ID, date and
// status are assigned by the store, never by the caller.
type ListingDraft struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    Money  `json:"price"`
	Image    string `json:"image"`
}

const OrderStatusProcessing = "Processing"

// Order is a completed, simulated purchase. Immutable once recorded.
type Order struct {
	ID     string      `json:"id"`
	Date   string      `json:"date"`
	Status string      `json:"status"`
	Total  Money       `json:"total"`
	Items  []OrderItem `json:"items"`
}

type OrderItem struct {
	Name     string `json:"name"`
	Price    Money  `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
}

// OrderDraft is the caller-supplied part of an order.
type OrderDraft struct {
	Total Money       `json:"total"`
	Items []OrderItem `json:"items"`
}
