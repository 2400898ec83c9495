package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/AdwaitMishr/vitmart/internal/domain"
	"github.com/AdwaitMishr/vitmart/internal/port"
)

// longDate matches the storefront's human-readable date format,
// e.g. "September 1, 2026".
const longDate = "January 2, 2006"

// orderSeqStart seeds the order id counter. Ids keep the ORD-#### shape
// but come from a monotonic counter instead of a random 4-digit draw, so
// they cannot collide within a session. Past ORD-9999 the %04d verb
// simply widens to five digits; uniqueness wins over the fixed width.
const orderSeqStart = 1000

// User owns identity, the user's listings and the order history, and
// synchronizes all of it through the persistence port after every
// mutation while a session is active.
type User struct {
	kv  port.KV
	log logrus.FieldLogger

	mu       sync.RWMutex
	profile  *domain.Profile
	listings []domain.Listing
	orders   []domain.Order
	loggedIn bool
	orderSeq int

	notifier notifier
}

type UserOption func(*User)

// WithDemoData starts the store signed in with the demo profile and a
// couple of fixture listings/orders, the way the original storefront
// shipped. Restore still overrides this with whatever the persistence
// backend holds.
func WithDemoData() UserOption {
	return func(u *User) {
		profile := demoProfile("arya.nair@vitstudent.ac.in")
		u.profile = &profile
		u.loggedIn = true
		u.listings = demoListings()
		u.orders = demoOrders()
		u.orderSeq = nextOrderSeq(u.orders)
	}
}

func NewUser(kv port.KV, log logrus.FieldLogger, opts ...UserOption) *User {
	u := &User{
		kv:       kv,
		log:      log,
		orderSeq: orderSeqStart,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Login unconditionally succeeds: there is no credential verification in
// this storefront, the password is ignored by design. It installs the
// fixed demo profile with the supplied email substituted in.
func (u *User) Login(ctx context.Context, email, _ string) error {
	u.mu.Lock()
	profile := demoProfile(email)
	u.profile = &profile
	u.loggedIn = true
	u.persistLocked(ctx)
	u.mu.Unlock()

	u.notifier.notify()
	return nil
}

// Logout clears the profile and session flag and removes only the user
// and isLoggedIn keys from the persistence backend. Listings and orders
// entries are deliberately left in place.
func (u *User) Logout(ctx context.Context) {
	u.mu.Lock()
	u.profile = nil
	u.loggedIn = false
	u.mu.Unlock()

	for _, key := range []string{port.KeyUser, port.KeyIsLoggedIn} {
		if err := u.kv.Delete(ctx, key); err != nil {
			u.log.WithError(err).WithField("key", key).Warn("failed to delete session key")
		}
	}

	u.notifier.notify()
}

// AddListing assigns id, date and status and prepends the listing so the
// newest entry shows first.
func (u *User) AddListing(ctx context.Context, draft domain.ListingDraft) domain.Listing {
	listing := domain.Listing{
		ID:       uuid.NewString(),
		Name:     draft.Name,
		Category: draft.Category,
		Price:    draft.Price,
		Date:     time.Now().Format(longDate),
		Status:   domain.ListingStatusActive,
		Image:    draft.Image,
	}

	u.mu.Lock()
	u.listings = append([]domain.Listing{listing}, u.listings...)
	u.persistLocked(ctx)
	u.mu.Unlock()

	u.notifier.notify()
	return listing
}

// AddOrder assigns id, date and status and prepends the order. Orders
// are immutable once recorded.
func (u *User) AddOrder(ctx context.Context, draft domain.OrderDraft) domain.Order {
	u.mu.Lock()
	order := domain.Order{
		ID:     fmt.Sprintf("ORD-%04d", u.orderSeq),
		Date:   time.Now().Format(longDate),
		Status: domain.OrderStatusProcessing,
		Total:  draft.Total,
		Items:  draft.Items,
	}
	u.orderSeq++
	u.orders = append([]domain.Order{order}, u.orders...)
	u.persistLocked(ctx)
	u.mu.Unlock()

	u.notifier.notify()
	return order
}

// Restore loads the four persistence keys. Each key fails independently:
// a corrupt value logs a warning and leaves that field at its current
// default, the other keys still restore.
func (u *User) Restore(ctx context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if raw, ok := u.read(ctx, port.KeyUser); ok {
		var profile domain.Profile
		if err := json.Unmarshal([]byte(raw), &profile); err != nil {
			u.log.WithError(err).Warn("failed to parse saved user")
		} else {
			u.profile = &profile
		}
	}

	if raw, ok := u.read(ctx, port.KeyListings); ok {
		var listings []domain.Listing
		if err := json.Unmarshal([]byte(raw), &listings); err != nil {
			u.log.WithError(err).Warn("failed to parse saved listings")
		} else {
			u.listings = listings
		}
	}

	if raw, ok := u.read(ctx, port.KeyOrders); ok {
		var orders []domain.Order
		if err := json.Unmarshal([]byte(raw), &orders); err != nil {
			u.log.WithError(err).Warn("failed to parse saved orders")
		} else {
			u.orders = orders
			u.orderSeq = nextOrderSeq(orders)
		}
	}

	if raw, ok := u.read(ctx, port.KeyIsLoggedIn); ok && raw == "true" {
		u.loggedIn = true
	}
}

func (u *User) IsLoggedIn() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.loggedIn
}

// Profile returns a copy of the signed-in profile, or nil when logged out.
func (u *User) Profile() *domain.Profile {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if u.profile == nil {
		return nil
	}
	p := *u.profile
	return &p
}

func (u *User) Listings() []domain.Listing {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]domain.Listing, len(u.listings))
	copy(out, u.listings)
	return out
}

func (u *User) Orders() []domain.Order {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]domain.Order, len(u.orders))
	copy(out, u.orders)
	return out
}

// Subscribe registers fn to run after every mutation. The returned func
// unsubscribes.
func (u *User) Subscribe(fn func()) func() {
	return u.notifier.subscribe(fn)
}

func (u *User) read(ctx context.Context, key string) (string, bool) {
	raw, ok, err := u.kv.Get(ctx, key)
	if err != nil {
		u.log.WithError(err).WithField("key", key).Warn("failed to read persistence key")
		return "", false
	}
	return raw, ok
}

// persistLocked flushes the full session to the persistence backend.
// Writes are a full overwrite, skipped entirely while logged out, and
// best-effort: a failed flush is logged and the in-memory state stands.
func (u *User) persistLocked(ctx context.Context) {
	if !u.loggedIn || u.profile == nil {
		return
	}

	entries := make(map[string]string, 4)
	for key, v := range map[string]any{
		port.KeyUser:     u.profile,
		port.KeyListings: u.listings,
		port.KeyOrders:   u.orders,
	} {
		data, err := json.Marshal(v)
		if err != nil {
			u.log.WithError(err).WithField("key", key).Warn("failed to encode persistence value")
			return
		}
		entries[key] = string(data)
	}
	entries[port.KeyIsLoggedIn] = strconv.FormatBool(u.loggedIn)

	if err := u.kv.SetMany(ctx, entries); err != nil {
		u.log.WithError(err).Warn("failed to flush session state")
	}
}

func demoProfile(email string) domain.Profile {
	return domain.Profile{
		Name:  "Arya Nair",
		Email: email,
		Phone: "(987) 654-3210",
		Bio:   "Computer Science student at VIT. Interested in web development and AI.",
	}
}

// nextOrderSeq continues the counter past the highest ORD-n already on
// record so restored sessions never reissue an id.
func nextOrderSeq(orders []domain.Order) int {
	next := orderSeqStart
	for _, o := range orders {
		n, err := strconv.Atoi(strings.TrimPrefix(o.ID, "ORD-"))
		if err != nil {
			continue
		}
		if n >= next {
			next = n + 1
		}
	}
	return next
}

func demoListings() []domain.Listing {
	return []domain.Listing{
		{
			ID:       uuid.NewString(),
			Name:     "Drafting Kit with Mini Drafter",
			Category: domain.CategoryOther,
			Price:    domain.MoneyFromFloat(400),
			Date:     "August 10, 2026",
			Status:   domain.ListingStatusActive,
			Image:    "/images/listings/drafter.jpg",
		},
		{
			ID:       uuid.NewString(),
			Name:     "Digital Electronics by Morris Mano",
			Category: domain.CategoryBooks,
			Price:    domain.MoneyFromFloat(300),
			Date:     "August 22, 2026",
			Status:   domain.ListingStatusActive,
			Image:    "/images/listings/morris-mano.jpg",
		},
	}
}

func demoOrders() []domain.Order {
	return []domain.Order{
		{
			ID:     "ORD-1000",
			Date:   "August 15, 2026",
			Status: "Delivered",
			Total:  domain.MoneyFromFloat(700),
			Items: []domain.OrderItem{
				{
					Name:     "Scientific Calculator FX-991ES",
					Price:    domain.MoneyFromFloat(700),
					Quantity: 1,
					Image:    "/images/products/fx991es.jpg",
				},
			},
		},
	}
}
