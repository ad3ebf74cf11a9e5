package controllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"smart-order/engine"
	"smart-order/models"
)

type createOrderRequest struct {
	TableID      string            `json:"table_id" validate:"required"`
	CustomerName string            `json:"customer_name"`
	Items        []models.CartItem `json:"items" validate:"dive"`
}

// CreateOrder is the customer "submit order" action. The empty-cart and
// missing-name checks run locally; a request failing them never reaches the
// store.
func CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		var req createOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := engine.ValidateSubmission(req.Items, req.CustomerName); err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
			return
		}
		for _, item := range req.Items {
			if item.Quantity < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "item quantity must be at least 1"})
				return
			}
		}

		orderID, err := dataStore.CreateOrder(ctx, req.TableID, req.Items, req.CustomerName)
		if err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "order was not created"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"order_id": orderID})
	}
}

// GetOrders serves the history/report view: every order, newest first, with
// optional table and date (YYYY-MM-DD) filters and the period revenue total.
func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		orders, err := dataStore.GetOrders(ctx)
		if err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "error occurred while listing orders"})
			return
		}

		tableID := c.Query("table_id")
		date := c.Query("date")

		filtered := []models.Order{}
		var revenue float64
		for _, o := range orders {
			if tableID != "" && o.TableID != tableID {
				continue
			}
			if date != "" && o.Timestamp.Format("2006-01-02") != date {
				continue
			}
			if o.Items == nil {
				o.Items = []models.CartItem{}
			}
			filtered = append(filtered, o)
			revenue += o.Total
		}
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Timestamp.After(filtered[j].Timestamp)
		})

		c.JSON(http.StatusOK, gin.H{
			"orders":        filtered,
			"total_revenue": engine.Round2(revenue),
		})
	}
}

// GetKitchenOrders lists the active board: not Served, not Closed, oldest
// first so the kitchen works the queue top down.
func GetKitchenOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		orders, err := dataStore.GetOrders(ctx)
		if err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "error occurred while listing orders"})
			return
		}

		active := []models.Order{}
		for _, o := range orders {
			if o.Status == models.StatusClosed || o.Status == models.StatusServed {
				continue
			}
			if o.Items == nil {
				o.Items = []models.CartItem{}
			}
			active = append(active, o)
		}
		sort.SliceStable(active, func(i, j int) bool {
			return active[i].Timestamp.Before(active[j].Timestamp)
		})
		c.JSON(http.StatusOK, active)
	}
}

// AdvanceOrderStatus moves an order one step forward in the lifecycle. The
// server derives the next status; clients cannot request an arbitrary one.
func AdvanceOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		orderID := c.Param("order_id")
		orders, err := dataStore.GetOrders(ctx)
		if err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "error occurred while fetching order"})
			return
		}

		var current *models.Order
		for i := range orders {
			if orders[i].ID == orderID {
				current = &orders[i]
				break
			}
		}
		if current == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		next, err := engine.AdvanceStatus(current.Status)
		if err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
			return
		}
		if err := dataStore.UpdateOrderStatus(ctx, orderID, next); err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "order status update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"order_id": orderID, "status": next})
	}
}

// GetStats backs the admin dashboard cards and charts.
func GetStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		orders, err := dataStore.GetOrders(ctx)
		if err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "error occurred while computing stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"generated_at":      time.Now(),
			"total_sales":       engine.ClosedSalesTotal(orders),
			"active_orders":     engine.ActiveOrderCount(orders),
			"best_selling_item": engine.BestSellingItem(orders),
			"sales_by_category": engine.SalesByCategory(orders),
		})
	}
}
