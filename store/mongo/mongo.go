// Package mongo is the document store backend, the hosted real-time flavor
// of the adapter contract.
package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"smart-order/engine"
	"smart-order/models"
	"smart-order/store"
)

type Mongo struct {
	client  *mongo.Client
	menu    *mongo.Collection
	users   *mongo.Collection
	orders  *mongo.Collection
	company *mongo.Collection

	bc store.Broadcaster
}

// Connect dials the cluster and binds the collections. The database name is
// part of the deployment config, not of the contract.
func Connect(ctx context.Context, uri, database string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(database)
	return &Mongo{
		client:  client,
		menu:    db.Collection("menu_items"),
		users:   db.Collection("users"),
		orders:  db.Collection("orders"),
		company: db.Collection("company_settings"),
	}, nil
}

func (m *Mongo) GetMenu(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := m.menu.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (m *Mongo) AddMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	item.ID = uuid.NewString()
	if _, err := m.menu.InsertOne(ctx, item); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (m *Mongo) UpdateMenuItem(ctx context.Context, item models.MenuItem) error {
	result, err := m.menu.ReplaceOne(ctx, bson.M{"id": item.ID}, item)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (m *Mongo) DeleteMenuItem(ctx context.Context, id string) error {
	result, err := m.menu.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (m *Mongo) GetUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := m.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (m *Mongo) AddUser(ctx context.Context, user models.User) (models.User, error) {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	if _, err := m.users.InsertOne(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (m *Mongo) UpdateUser(ctx context.Context, user models.User) error {
	user.UpdatedAt = time.Now()
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: user.Name},
		{Key: "email", Value: user.Email},
		{Key: "password", Value: user.Password},
		{Key: "role", Value: user.Role},
		{Key: "status", Value: user.Status},
		{Key: "updated_at", Value: user.UpdatedAt},
	}}}
	result, err := m.users.UpdateOne(ctx, bson.M{"id": user.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (m *Mongo) DeleteUser(ctx context.Context, id string) error {
	result, err := m.users.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (m *Mongo) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := m.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
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

func (m *Mongo) CreateOrder(ctx context.Context, tableID string, items []models.CartItem, customerName string) (string, error) {
	order := models.Order{
		ID:           uuid.NewString(),
		TableID:      tableID,
		CustomerName: customerName,
		Items:        items,
		Total:        engine.OrderTotal(items),
		Status:       models.StatusPending,
		Timestamp:    time.Now(),
	}
	if _, err := m.orders.InsertOne(ctx, order); err != nil {
		return "", err
	}
	m.publish(ctx)
	return order.ID, nil
}

func (m *Mongo) GetOrders(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := m.orders.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (m *Mongo) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}}}}
	result, err := m.orders.UpdateOne(ctx, bson.M{"id": orderID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	m.publish(ctx)
	return nil
}

func (m *Mongo) SubscribeToOrders(fn func([]models.Order)) func() {
	return m.bc.Subscribe(fn)
}

// publish re-reads the order set after a successful write and fans it out.
// Writes go through this process one at a time per order, which keeps each
// subscriber's view monotonic.
func (m *Mongo) publish(ctx context.Context) {
	orders, err := m.GetOrders(ctx)
	if err != nil {
		return
	}
	m.bc.Publish(orders)
}

func (m *Mongo) GetCompanySettings(ctx context.Context) (models.CompanySettings, error) {
	var settings models.CompanySettings
	err := m.company.FindOne(ctx, bson.M{}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.CompanySettings{}, nil
	}
	if err != nil {
		return models.CompanySettings{}, err
	}
	return settings, nil
}

func (m *Mongo) SaveCompanySettings(ctx context.Context, settings models.CompanySettings) error {
	opts := options.Replace().SetUpsert(true)
	_, err := m.company.ReplaceOne(ctx, bson.M{}, settings, opts)
	return err
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
