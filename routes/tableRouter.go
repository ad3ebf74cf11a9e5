package routes

import (
	controller "smart-order/controllers"
	"smart-order/middleware"

	"github.com/gin-gonic/gin"
)

func TableRoutes(incomingRoutes *gin.Engine) {
	// Customers look up their own table's open orders from the table page.
	incomingRoutes.GET("/tables/:table_id/orders", controller.GetTableOrders())

	incomingRoutes.GET("/tables",
		middleware.Authentication(), middleware.RequireCapability(middleware.CapTables),
		controller.GetTables())
	incomingRoutes.GET("/tables/:table_id/qr",
		middleware.Authentication(), middleware.RequireCapability(middleware.CapQRCodes),
		controller.GetTableQR())
	incomingRoutes.GET("/tables/:table_id/bill",
		middleware.Authentication(), middleware.RequireCapability(middleware.CapTables),
		controller.GetBill())
	incomingRoutes.POST("/tables/:table_id/close",
		middleware.Authentication(), middleware.RequireCapability(middleware.CapTables),
		controller.CloseTable())
}
