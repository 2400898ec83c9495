package store_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdwaitMishr/vitmart/internal/domain"
	"github.com/AdwaitMishr/vitmart/internal/store"
)

func TestCart_AddItem_DistinctIDs(t *testing.T) {
	cart := store.NewCart()

	wantTotal := 0
	const n = 5
	for i := 0; i < n; i++ {
		item := randomCartItem()
		wantTotal += item.Quantity
		cart.AddItem(item)
	}

	assert.Len(t, cart.Items(), n)
	assert.Equal(t, wantTotal, cart.TotalItems())
}

func TestCart_AddItem_MergesQuantities(t *testing.T) {
	cart := store.NewCart()

	item := randomCartItem()
	item.Quantity = 2
	cart.AddItem(item)

	item.Quantity = 3
	cart.AddItem(item)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, cart.TotalItems())
}

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantLen  int
		wantQty  int
	}{
		{
			name:     "positive quantity is set",
			quantity: 7,
			wantLen:  1,
			wantQty:  7,
		},
		{
			name:     "zero removes the entry",
			quantity: 0,
			wantLen:  0,
		},
		{
			name:     "negative removes the entry",
			quantity: -3,
			wantLen:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := store.NewCart()
			item := randomCartItem()
			item.Quantity = 2
			cart.AddItem(item)

			cart.UpdateQuantity(item.ProductID, tt.quantity)

			items := cart.Items()
			require.Len(t, items, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantQty, items[0].Quantity)
			} else {
				assert.Equal(t, 0, cart.TotalItems())
			}
		})
	}
}

func TestCart_UpdateQuantity_AbsentID(t *testing.T) {
	cart := store.NewCart()
	cart.AddItem(randomCartItem())

	before := cart.Items()
	cart.UpdateQuantity("no-such-id", 3)

	assertCartItems(t, before, cart.Items())
}

func TestCart_RemoveItem_AbsentID(t *testing.T) {
	cart := store.NewCart()
	cart.AddItem(randomCartItem())

	before := cart.Items()
	cart.RemoveItem("no-such-id")

	assertCartItems(t, before, cart.Items())
}

func TestCart_RemoveItem_KeepsOrder(t *testing.T) {
	cart := store.NewCart()

	first := randomCartItem()
	second := randomCartItem()
	third := randomCartItem()
	cart.AddItem(first)
	cart.AddItem(second)
	cart.AddItem(third)

	cart.RemoveItem(second.ProductID)

	assertCartItems(t, []domain.CartItem{first, third}, cart.Items())
}

func TestCart_TotalPrice(t *testing.T) {
	cart := store.NewCart()

	item := randomCartItem()
	item.Price = domain.MoneyFromFloat(50)
	item.Quantity = 3
	cart.AddItem(item)

	other := randomCartItem()
	other.Price = domain.MoneyFromFloat(18)
	other.Quantity = 1
	cart.AddItem(other)

	assert.True(t, cart.TotalPrice().Amount.Equal(domain.MoneyFromFloat(168).Amount))

	cart.Clear()
	assert.True(t, cart.TotalPrice().IsZero())
	assert.Empty(t, cart.Items())
}

func TestCart_Subscribe(t *testing.T) {
	cart := store.NewCart()

	calls := 0
	unsubscribe := cart.Subscribe(func() { calls++ })

	item := randomCartItem()
	cart.AddItem(item)
	cart.UpdateQuantity(item.ProductID, 4)
	cart.Clear()
	assert.Equal(t, 3, calls)

	// no-op mutations do not notify
	cart.RemoveItem("no-such-id")
	assert.Equal(t, 3, calls)

	unsubscribe()
	cart.AddItem(randomCartItem())
	assert.Equal(t, 3, calls)
}

func randomCartItem() domain.CartItem {
	return domain.CartItem{
		ProductID: gofakeit.UUID(),
		Name:      gofakeit.ProductName(),
		Price:     domain.MoneyFromFloat(gofakeit.Price(1, 100)),
		Quantity:  gofakeit.Number(1, 5),
		Image:     gofakeit.URL(),
	}
}

func moneyComparer() cmp.Option {
	return cmp.Comparer(func(x, y domain.Money) bool {
		return x.Amount.Equal(y.Amount) && x.Currency.String() == y.Currency.String()
	})
}

func assertCartItems(t *testing.T, expected, actual []domain.CartItem) {
	t.Helper()

	diff := cmp.Diff(expected, actual, moneyComparer())
	assert.Empty(t, diff)
}
