package models

import "time"

// OrderStatus moves strictly forward:
// Pending -> Preparing -> Ready -> Served -> Closed.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusServed    OrderStatus = "Served"
	StatusClosed    OrderStatus = "Closed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusServed, StatusClosed:
		return true
	}
	return false
}

// Order is one customer's single submission of cart items at a table.
// Only Status ever changes after creation; Total is computed once at
// submission from the item prices current at that moment.
type Order struct {
	ID           string      `json:"id" bson:"id"`
	TableID      string      `json:"tableId" bson:"table_id"`
	CustomerName string      `json:"customerName" bson:"customer_name"`
	Items        []CartItem  `json:"items" bson:"items"`
	Total        float64     `json:"total" bson:"total"`
	Status       OrderStatus `json:"status" bson:"status"`
	Timestamp    time.Time   `json:"timestamp" bson:"timestamp"`
}
