package routes

import (
	controller "smart-order/controllers"
	"smart-order/middleware"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	// Submission and the live feed are open so the customer-facing pages
	// work without an account.
	incomingRoutes.POST("/orders", controller.CreateOrder())
	incomingRoutes.GET("/ws/orders", controller.HandleOrderSocket())

	incomingRoutes.GET("/orders",
		middleware.Authentication(), middleware.RequireCapability(middleware.CapHistory),
		controller.GetOrders())
	incomingRoutes.GET("/orders/kitchen",
		middleware.Authentication(), middleware.RequireCapability(middleware.CapKitchen),
		controller.GetKitchenOrders())
	incomingRoutes.PATCH("/orders/:order_id/advance",
		middleware.Authentication(), middleware.RequireCapability(middleware.CapKitchen),
		controller.AdvanceOrderStatus())
	incomingRoutes.GET("/stats",
		middleware.Authentication(), middleware.RequireCapability(middleware.CapDashboard),
		controller.GetStats())
}
