package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"smart-order/engine"
	"smart-order/models"
)

const defaultTableCount = 75

// qrImageService renders a URL as a scannable code; image generation is
// fully delegated to it.
const qrImageService = "https://api.qrserver.com/v1/create-qr-code/?size=250x250&data="

func tableCount() int {
	n, err := strconv.Atoi(os.Getenv("TABLE_COUNT"))
	if err != nil || n < 1 {
		return defaultTableCount
	}
	return n
}

type tableView struct {
	ID     string           `json:"id"`
	Status engine.Occupancy `json:"status"`
	Total  float64          `json:"total"`
}

// GetTables renders the table map: occupancy and running total for every
// table, derived live from the order set.
func GetTables() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		orders, err := dataStore.GetOrders(ctx)
		if err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "error occurred while listing tables"})
			return
		}

		tables := make([]tableView, 0, tableCount())
		for i := 1; i <= tableCount(); i++ {
			id := strconv.Itoa(i)
			tables = append(tables, tableView{
				ID:     id,
				Status: engine.TableStatus(orders, id),
				Total:  engine.TableTotal(orders, id),
			})
		}
		c.JSON(http.StatusOK, tables)
	}
}

// GetTableOrders is the customer's own view: the table's open orders,
// newest first, grouped per customer, with the running total.
func GetTableOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		tableID := c.Param("table_id")
		orders, err := dataStore.GetOrders(ctx)
		if err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "error occurred while listing table orders"})
			return
		}

		open := engine.OpenOrders(orders, tableID)
		sort.SliceStable(open, func(i, j int) bool {
			return open[i].Timestamp.After(open[j].Timestamp)
		})
		if open == nil {
			open = []models.Order{}
		}

		c.JSON(http.StatusOK, gin.H{
			"table_id": tableID,
			"status":   engine.TableStatus(orders, tableID),
			"orders":   open,
			"groups":   engine.GroupOpenOrdersByCustomer(orders, tableID),
			"total":    engine.TableTotal(orders, tableID),
		})
	}
}

// GetTableQR builds the ordering entry-point URL for a table and the
// external image-service URL that renders it. The base URL comes from
// config and can be overridden per request, which makes LAN testing with a
// phone possible.
func GetTableQR() gin.HandlerFunc {
	return func(c *gin.Context) {
		tableID := c.Param("table_id")

		base := c.Query("base")
		if base == "" {
			base = os.Getenv("BASE_URL")
		}
		if base == "" {
			base = "http://localhost:8000/frontend"
		}
		base = strings.TrimSuffix(base, "/")

		appURL := fmt.Sprintf("%s/#/table/%s", base, tableID)
		c.JSON(http.StatusOK, gin.H{
			"table_id": tableID,
			"url":      appURL,
			"image":    qrImageService + url.QueryEscape(appURL),
		})
	}
}
