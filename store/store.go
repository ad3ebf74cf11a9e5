// Package store defines the data access contract the rest of the
// application is written against. Three interchangeable backends implement
// it: an in-memory one (store/memory), a document one (store/mongo) and a
// relational one (store/postgres). The backend is picked once at startup;
// nothing outside an adapter may depend on how a particular backend names
// or shapes its records.
package store

import (
	"context"
	"errors"
	"sync"

	"smart-order/models"
)

var (
	// ErrNotFound reports a lookup or update that matched no record.
	ErrNotFound = errors.New("record not found")

	// ErrAuthFailed covers unknown email, wrong password and inactive
	// account alike; callers cannot tell which.
	ErrAuthFailed = errors.New("authentication failed")
)

// Store is the full adapter surface. All blocking calls take a context and
// return the raw error on failure; no adapter retries anything.
type Store interface {
	GetMenu(ctx context.Context) ([]models.MenuItem, error)
	AddMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item models.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) error

	GetUsers(ctx context.Context) ([]models.User, error)
	AddUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, id string) error
	Login(ctx context.Context, email, password string) (*models.User, error)

	// CreateOrder persists a new Pending order with its total computed from
	// the items at this moment, and returns the new order id.
	CreateOrder(ctx context.Context, tableID string, items []models.CartItem, customerName string) (string, error)
	GetOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error

	// SubscribeToOrders registers fn to receive a fresh snapshot of all
	// orders after every successful order write. Updates to a single order
	// are never delivered out of order to a given subscriber. The returned
	// function unsubscribes.
	SubscribeToOrders(fn func([]models.Order)) func()

	GetCompanySettings(ctx context.Context) (models.CompanySettings, error)
	SaveCompanySettings(ctx context.Context, settings models.CompanySettings) error

	Close(ctx context.Context) error
}

// Broadcaster is the shared subscriber fan-out used by the adapters.
// Publishing walks the subscriber list under the lock, so each subscriber
// sees write effects in the order they were applied.
type Broadcaster struct {
	mu   sync.Mutex
	next int
	subs map[int]func([]models.Order)
}

func (b *Broadcaster) Subscribe(fn func([]models.Order)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs == nil {
		b.subs = make(map[int]func([]models.Order))
	}
	id := b.next
	b.next++
	b.subs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

func (b *Broadcaster) Publish(orders []models.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, fn := range b.subs {
		fn(orders)
	}
}
