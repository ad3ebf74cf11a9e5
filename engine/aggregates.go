package engine

import "smart-order/models"

type Occupancy string

const (
	TableFree     Occupancy = "Free"
	TableOccupied Occupancy = "Occupied"
)

// TableStatus reports Occupied iff the table has at least one non-Closed
// order in the snapshot.
func TableStatus(orders []models.Order, tableID string) Occupancy {
	for _, o := range orders {
		if o.TableID == tableID && o.Status != models.StatusClosed {
			return TableOccupied
		}
	}
	return TableFree
}

// TableTotal is the running total of the table: the sum of order totals over
// its non-Closed orders. Zero for a free table.
func TableTotal(orders []models.Order, tableID string) float64 {
	var sum float64
	for _, o := range orders {
		if o.TableID == tableID && o.Status != models.StatusClosed {
			sum += o.Total
		}
	}
	return Round2(sum)
}

// ActiveOrderCount counts orders still needing kitchen or front-of-house
// action, i.e. neither Served nor Closed.
func ActiveOrderCount(orders []models.Order) int {
	count := 0
	for _, o := range orders {
		if o.Status != models.StatusClosed && o.Status != models.StatusServed {
			count++
		}
	}
	return count
}

// ItemStats is a lifetime sales figure for one menu item name.
type ItemStats struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// BestSellingItem flattens every order's items regardless of status and picks
// the name with the highest summed quantity. Ties go to the name encountered
// first. With no items anywhere the sentinel {"---","---",0} comes back.
func BestSellingItem(orders []models.Order) ItemStats {
	totals := make(map[string]*ItemStats)
	var names []string
	for _, o := range orders {
		for _, item := range o.Items {
			s, ok := totals[item.Name]
			if !ok {
				s = &ItemStats{Name: item.Name, Category: string(item.Category)}
				totals[item.Name] = s
				names = append(names, item.Name)
			}
			s.Quantity += item.Quantity
		}
	}

	best := ItemStats{Name: "---", Category: "---", Quantity: 0}
	for _, name := range names {
		if totals[name].Quantity > best.Quantity {
			best = *totals[name]
		}
	}
	return best
}

// SalesByCategory sums price*quantity per category across all orders. Used
// for the dashboard chart, not for billing.
func SalesByCategory(orders []models.Order) map[models.Category]float64 {
	sales := make(map[models.Category]float64)
	for _, o := range orders {
		for _, item := range o.Items {
			sales[item.Category] = Round2(sales[item.Category] + item.Price*float64(item.Quantity))
		}
	}
	return sales
}

// ClosedSalesTotal sums the totals of Closed orders, the dashboard's
// lifetime revenue figure.
func ClosedSalesTotal(orders []models.Order) float64 {
	var sum float64
	for _, o := range orders {
		if o.Status == models.StatusClosed {
			sum += o.Total
		}
	}
	return Round2(sum)
}
