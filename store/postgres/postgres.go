// Package postgres is the relational store backend. All snake_case mapping
// between the schema and the domain models stays inside this package.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"smart-order/engine"
	"smart-order/models"
	"smart-order/store"
)

type Postgres struct {
	pool *pgxpool.Pool

	bc store.Broadcaster
}

// Connect opens the pool and applies the schema.
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	config.MaxConns = 25

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to open pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

func (p *Postgres) GetMenu(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := p.pool.Query(ctx, getMenuSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Category, &item.Image); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (p *Postgres) AddMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	item.ID = uuid.NewString()
	_, err := p.pool.Exec(ctx, insertMenuItemSQL,
		item.ID, item.Name, item.Description, item.Price, item.Category, item.Image)
	if err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (p *Postgres) UpdateMenuItem(ctx context.Context, item models.MenuItem) error {
	tag, err := p.pool.Exec(ctx, updateMenuItemSQL,
		item.ID, item.Name, item.Description, item.Price, item.Category, item.Image)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (p *Postgres) DeleteMenuItem(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, deleteMenuItemSQL, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (p *Postgres) GetUsers(ctx context.Context) ([]models.User, error) {
	rows, err := p.pool.Query(ctx, getUsersSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (p *Postgres) AddUser(ctx context.Context, user models.User) (models.User, error) {
	user.ID = uuid.NewString()
	err := p.pool.QueryRow(ctx, insertUserSQL,
		user.ID, user.Name, user.Email, user.Password, user.Role, user.Status).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (p *Postgres) UpdateUser(ctx context.Context, user models.User) error {
	tag, err := p.pool.Exec(ctx, updateUserSQL,
		user.ID, user.Name, user.Email, user.Password, user.Role, user.Status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (p *Postgres) DeleteUser(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, deleteUserSQL, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (p *Postgres) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := p.pool.QueryRow(ctx, getUserByEmailSQL, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.Status, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrAuthFailed
	}
	if err != nil {
		return nil, err
	}
	if user.Status != models.UserActive {
		return nil, store.ErrAuthFailed
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, store.ErrAuthFailed
	}
	user.Password = ""
	return &user, nil
}

func (p *Postgres) CreateOrder(ctx context.Context, tableID string, items []models.CartItem, customerName string) (string, error) {
	order := models.Order{
		ID:           uuid.NewString(),
		TableID:      tableID,
		CustomerName: customerName,
		Items:        items,
		Total:        engine.OrderTotal(items),
		Status:       models.StatusPending,
		Timestamp:    time.Now(),
	}

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return "", err
	}
	_, err = p.pool.Exec(ctx, insertOrderSQL,
		order.ID, order.TableID, order.CustomerName, itemsJSON, order.Total, order.Status, order.Timestamp)
	if err != nil {
		return "", err
	}
	p.publish(ctx)
	return order.ID, nil
}

func (p *Postgres) GetOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := p.pool.Query(ctx, getOrdersSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var itemsJSON []byte
		if err := rows.Scan(&o.ID, &o.TableID, &o.CustomerName, &itemsJSON, &o.Total, &o.Status, &o.Timestamp); err != nil {
			return nil, err
		}
		// A NULL items column decodes as an empty list; records written by
		// other clients may lack it briefly.
		if len(itemsJSON) > 0 {
			if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
				return nil, fmt.Errorf("order %s: bad items payload: %w", o.ID, err)
			}
		}
		if o.Items == nil {
			o.Items = []models.CartItem{}
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (p *Postgres) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	tag, err := p.pool.Exec(ctx, updateOrderStatusSQL, orderID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	p.publish(ctx)
	return nil
}

func (p *Postgres) SubscribeToOrders(fn func([]models.Order)) func() {
	return p.bc.Subscribe(fn)
}

func (p *Postgres) publish(ctx context.Context) {
	orders, err := p.GetOrders(ctx)
	if err != nil {
		return
	}
	p.bc.Publish(orders)
}

func (p *Postgres) GetCompanySettings(ctx context.Context) (models.CompanySettings, error) {
	var s models.CompanySettings
	err := p.pool.QueryRow(ctx, getCompanySQL).
		Scan(&s.TradeName, &s.LegalName, &s.TaxID, &s.StateRegistration,
			&s.Street, &s.Number, &s.Neighborhood, &s.City, &s.State)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.CompanySettings{}, nil
	}
	if err != nil {
		return models.CompanySettings{}, err
	}
	return s, nil
}

func (p *Postgres) SaveCompanySettings(ctx context.Context, s models.CompanySettings) error {
	_, err := p.pool.Exec(ctx, saveCompanySQL,
		s.TradeName, s.LegalName, s.TaxID, s.StateRegistration,
		s.Street, s.Number, s.Neighborhood, s.City, s.State)
	return err
}

func (p *Postgres) Close(ctx context.Context) error {
	p.pool.Close()
	return nil
}
