// Package memory is the in-memory store backend. It needs no external
// services, seeds itself with a starter menu and a default admin account,
// and loses everything on restart. Intended for demos and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"smart-order/engine"
	"smart-order/models"
	"smart-order/store"
)

type Memory struct {
	mu      sync.RWMutex
	menu    []models.MenuItem
	users   []models.User
	orders  []models.Order
	company models.CompanySettings

	bc store.Broadcaster
}

// New builds a seeded store. The default login is admin@smartorder / 1234.
func New() *Memory {
	m := &Memory{menu: seedMenu()}

	hash, _ := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
	m.users = append(m.users, models.User{
		ID:        uuid.NewString(),
		Name:      "Administrator",
		Email:     "admin@smartorder",
		Password:  string(hash),
		Role:      models.RoleAdmin,
		Status:    models.UserActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
	return m
}

func (m *Memory) GetMenu(ctx context.Context) ([]models.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.MenuItem{}, m.menu...), nil
}

func (m *Memory) AddMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = uuid.NewString()
	m.menu = append(m.menu, item)
	return item, nil
}

func (m *Memory) UpdateMenuItem(ctx context.Context, item models.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.menu {
		if m.menu[i].ID == item.ID {
			m.menu[i] = item
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *Memory) DeleteMenuItem(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.menu {
		if m.menu[i].ID == id {
			m.menu = append(m.menu[:i], m.menu[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *Memory) GetUsers(ctx context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.User{}, m.users...), nil
}

func (m *Memory) AddUser(ctx context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.users = append(m.users, user)
	return user, nil
}

func (m *Memory) UpdateUser(ctx context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == user.ID {
			user.CreatedAt = m.users[i].CreatedAt
			user.UpdatedAt = time.Now()
			m.users[i] = user
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *Memory) DeleteUser(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// Login deliberately returns the same error for an unknown email, a wrong
// password and an inactive account.
func (m *Memory) Login(ctx context.Context, email, password string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.users {
		if m.users[i].Email != email {
			continue
		}
		if m.users[i].Status != models.UserActive {
			return nil, store.ErrAuthFailed
		}
		if bcrypt.CompareHashAndPassword([]byte(m.users[i].Password), []byte(password)) != nil {
			return nil, store.ErrAuthFailed
		}
		u := m.users[i]
		u.Password = ""
		return &u, nil
	}
	return nil, store.ErrAuthFailed
}

func (m *Memory) CreateOrder(ctx context.Context, tableID string, items []models.CartItem, customerName string) (string, error) {
	m.mu.Lock()
	order := models.Order{
		ID:           uuid.NewString(),
		TableID:      tableID,
		CustomerName: customerName,
		Items:        items,
		Total:        engine.OrderTotal(items),
		Status:       models.StatusPending,
		Timestamp:    time.Now(),
	}
	m.orders = append(m.orders, order)
	snapshot := append([]models.Order{}, m.orders...)
	m.mu.Unlock()

	m.bc.Publish(snapshot)
	return order.ID, nil
}

func (m *Memory) GetOrders(ctx context.Context) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Order{}, m.orders...), nil
}

func (m *Memory) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	m.mu.Lock()
	found := false
	for i := range m.orders {
		if m.orders[i].ID == orderID {
			m.orders[i].Status = status
			found = true
			break
		}
	}
	snapshot := append([]models.Order{}, m.orders...)
	m.mu.Unlock()

	if !found {
		return store.ErrNotFound
	}
	m.bc.Publish(snapshot)
	return nil
}

func (m *Memory) SubscribeToOrders(fn func([]models.Order)) func() {
	return m.bc.Subscribe(fn)
}

func (m *Memory) GetCompanySettings(ctx context.Context) (models.CompanySettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.company, nil
}

func (m *Memory) SaveCompanySettings(ctx context.Context, settings models.CompanySettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.company = settings
	return nil
}

func (m *Memory) Close(ctx context.Context) error { return nil }
