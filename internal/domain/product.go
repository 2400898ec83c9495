package domain

// Product is a catalog record. The catalog is read-only; stores never
// mutate it.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       Money  `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Seller      string `json:"seller"`
	IsNew       bool   `json:"isNew"`
	Description string `json:"description,omitempty"`
	Condition   string `json:"condition,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Location    string `json:"location,omitempty"`
	PostedDate  string `json:"postedDate,omitempty"`
}

type Review struct {
	Name    string `json:"name"`
	Date    string `json:"date"`
	Comment string `json:"comment"`
}
