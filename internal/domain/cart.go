package domain

import "github.com/shopspring/decimal"

type Cart struct {
	Items []CartItem `json:"items"`
}

type CartItem struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Price     Money  `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}

// TotalItems is the sum of quantities across all entries.
func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity across all entries,
// recomputed from the current items on every call.
func (c Cart) TotalPrice() Money {
	total := NewMoney(decimal.Zero)
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(item.Quantity))
	}
	return total
}
