package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"smart-order/engine"
	"smart-order/models"
)

type closeTableRequest struct {
	IncludeServiceFee bool    `json:"include_service_fee"`
	PaymentMethod     string  `json:"payment_method" validate:"required"`
	AmountPaid        float64 `json:"amount_paid"`
}

// GetBill previews the bill for the close dialog. The subtotal is always
// re-derived from the live order set; orders placed while the dialog is
// open must show up.
func GetBill() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		tableID := c.Param("table_id")
		includeFee := true
		if v, err := strconv.ParseBool(c.DefaultQuery("service_fee", "true")); err == nil {
			includeFee = v
		}

		orders, err := dataStore.GetOrders(ctx)
		if err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "error occurred while computing bill"})
			return
		}

		bill := engine.ComputeBill(engine.TableTotal(orders, tableID), includeFee)
		c.JSON(http.StatusOK, gin.H{
			"table_id": tableID,
			"groups":   engine.GroupOpenOrdersByCustomer(orders, tableID),
			"bill":     bill,
		})
	}
}

// CloseTable transitions every open order of the table to Closed and
// returns the receipt. The service-fee choice, payment method and amount
// paid are never persisted; they exist only in the returned receipt.
//
// The per-order updates are not transactional. If one fails midway the
// table ends up mixed (some Closed, some not); the response reports which
// ids did close and the caller re-reads the table status rather than
// assuming the close went through. Nothing is rolled back.
func CloseTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		tableID := c.Param("table_id")
		var req closeTableRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		method, err := engine.ParsePaymentMethod(req.PaymentMethod)
		if err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
			return
		}

		orders, err := dataStore.GetOrders(ctx)
		if err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "error occurred while fetching orders"})
			return
		}

		openIDs := engine.OpenOrderIDs(orders, tableID)
		if len(openIDs) == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "table has no open orders"})
			return
		}

		groups := engine.GroupOpenOrdersByCustomer(orders, tableID)
		bill := engine.ComputeBill(engine.TableTotal(orders, tableID), req.IncludeServiceFee)

		if method == engine.PaymentCash && req.AmountPaid < bill.Total {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount paid is below the total"})
			return
		}

		company, err := dataStore.GetCompanySettings(ctx)
		if err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "error occurred while loading company settings"})
			return
		}

		closed := []string{}
		for _, id := range openIDs {
			if err := dataStore.UpdateOrderStatus(ctx, id, models.StatusClosed); err != nil {
				c.JSON(statusFromErr(err), gin.H{
					"error":      "table close failed partway; re-check table status",
					"closed_ids": closed,
				})
				return
			}
			closed = append(closed, id)
		}

		receipt := engine.BuildReceipt(groups, bill, method, req.AmountPaid, company, tableID, time.Now())
		c.JSON(http.StatusOK, gin.H{
			"closed_ids": closed,
			"receipt":    receipt,
		})
	}
}
