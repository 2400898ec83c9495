package store

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AdwaitMishr/vitmart/internal/domain"
	"github.com/AdwaitMishr/vitmart/internal/port"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCheckoutInFlight = errors.New("checkout already in progress")
	ErrProductNotFound  = errors.New("product not found")
)

// DefaultPaymentDelay mirrors the storefront's simulated payment
// processing time.
const DefaultPaymentDelay = 2 * time.Second

// Checkout runs the simulated purchase flow. A single-flight guard
// rejects a second submission while one is processing; the original UI
// only disabled the submit button, which left a double-submit race open.
type Checkout struct {
	cart    *Cart
	user    *User
	catalog port.Catalog
	log     logrus.FieldLogger
	delay   time.Duration

	inFlight atomic.Bool
}

func NewCheckout(cart *Cart, user *User, catalog port.Catalog, log logrus.FieldLogger, delay time.Duration) *Checkout {
	if delay <= 0 {
		delay = DefaultPaymentDelay
	}
	return &Checkout{
		cart:    cart,
		user:    user,
		catalog: catalog,
		log:     log,
		delay:   delay,
	}
}

// CheckoutCart purchases the current cart contents: snapshot, simulated
// payment, record the order, then clear the cart.
func (c *Checkout) CheckoutCart(ctx context.Context) (domain.Order, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return domain.Order{}, ErrCheckoutInFlight
	}
	defer c.inFlight.Store(false)

	items := c.cart.Items()
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	order := c.process(ctx, items)
	c.cart.Clear()

	return order, nil
}

// CheckoutProduct is the buy-now path: a single product purchased
// directly, leaving the cart untouched. A quantity below 1 is treated
// as 1.
func (c *Checkout) CheckoutProduct(ctx context.Context, productID string, quantity int) (domain.Order, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return domain.Order{}, ErrCheckoutInFlight
	}
	defer c.inFlight.Store(false)

	product, ok := c.catalog.ProductByID(productID)
	if !ok {
		return domain.Order{}, ErrProductNotFound
	}

	if quantity < 1 {
		quantity = 1
	}

	items := []domain.CartItem{{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
		Image:     product.Image,
	}}

	return c.process(ctx, items), nil
}

// process runs the fixed payment delay and records the order. Once the
// delay starts it always completes and always records: there is no
// cancellation path in this flow.
func (c *Checkout) process(ctx context.Context, items []domain.CartItem) domain.Order {
	time.Sleep(c.delay)

	var total domain.Money
	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		total = total.Add(item.Price.Mul(item.Quantity))
		orderItems = append(orderItems, domain.OrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Image:    item.Image,
		})
	}

	order := c.user.AddOrder(ctx, domain.OrderDraft{
		Total: total,
		Items: orderItems,
	})

	c.log.WithField("order_id", order.ID).Info("checkout complete")
	return order
}
