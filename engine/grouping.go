package engine

import "smart-order/models"

// AnonymousCustomer is the display name used when an order was submitted
// without one.
const AnonymousCustomer = "Anonymous Customer"

// CustomerGroup is one customer's open orders at a table, in arrival order.
type CustomerGroup struct {
	Customer string         `json:"customer"`
	Orders   []models.Order `json:"orders"`
}

// Total sums the order totals of the group.
func (g CustomerGroup) Total() float64 {
	var sum float64
	for _, o := range g.Orders {
		sum += o.Total
	}
	return Round2(sum)
}

// OpenOrders filters the snapshot down to the table's non-Closed orders.
// Any status short of Closed counts as open; the filter makes no assumption
// that statuses advanced one step at a time. Orders with a nil item list are
// normalized to an empty one so downstream formatting never trips on a
// partially written record.
func OpenOrders(orders []models.Order, tableID string) []models.Order {
	var open []models.Order
	for _, o := range orders {
		if o.TableID != tableID || o.Status == models.StatusClosed {
			continue
		}
		if o.Items == nil {
			o.Items = []models.CartItem{}
		}
		open = append(open, o)
	}
	return open
}

// OpenOrderIDs lists the ids a close-table pass must transition to Closed.
func OpenOrderIDs(orders []models.Order, tableID string) []string {
	var ids []string
	for _, o := range OpenOrders(orders, tableID) {
		ids = append(ids, o.ID)
	}
	return ids
}

// GroupOpenOrdersByCustomer splits a table's open orders per customer name
// for the bill. Group order follows first appearance of each name, and each
// group keeps its orders in arrival order.
func GroupOpenOrdersByCustomer(orders []models.Order, tableID string) []CustomerGroup {
	open := OpenOrders(orders, tableID)

	index := make(map[string]int)
	groups := []CustomerGroup{}
	for _, o := range open {
		name := o.CustomerName
		if name == "" {
			name = AnonymousCustomer
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, CustomerGroup{Customer: name})
		}
		groups[i].Orders = append(groups[i].Orders, o)
	}
	return groups
}
