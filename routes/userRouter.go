package routes

import (
	controller "smart-order/controllers"
	"smart-order/middleware"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/users/login", controller.Login())

	users := incomingRoutes.Group("/users", middleware.Authentication(), middleware.RequireCapability(middleware.CapUsers))
	users.GET("", controller.GetUsers())
	users.POST("", controller.CreateUser())
	users.PUT("/:user_id", controller.UpdateUser())
	users.DELETE("/:user_id", controller.DeleteUser())
}
