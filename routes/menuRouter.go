package routes

import (
	controller "smart-order/controllers"
	"smart-order/middleware"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes *gin.Engine) {
	// Customers browse the menu without logging in.
	incomingRoutes.GET("/menu", controller.GetMenu())

	menu := incomingRoutes.Group("/menu", middleware.Authentication(), middleware.RequireCapability(middleware.CapMenu))
	menu.POST("", controller.CreateMenuItem())
	menu.PUT("/:item_id", controller.UpdateMenuItem())
	menu.DELETE("/:item_id", controller.DeleteMenuItem())
}
