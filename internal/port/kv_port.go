package port

import "context"

// Keys the user store synchronizes with the persistence backend.
const (
	KeyUser       = "user"
	KeyListings   = "userListings"
	KeyOrders     = "userOrders"
	KeyIsLoggedIn = "isLoggedIn"
)

// KV is the durable key-value boundary the user store writes through.
// Values are JSON text; KeyIsLoggedIn holds the literal "true"/"false".
// Implementations must tolerate deletes of absent keys.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, entries map[string]string) error
	Delete(ctx context.Context, key string) error
}
