package routes

import (
	controller "smart-order/controllers"
	"smart-order/middleware"

	"github.com/gin-gonic/gin"
)

func CompanyRoutes(incomingRoutes *gin.Engine) {
	company := incomingRoutes.Group("/company", middleware.Authentication(), middleware.RequireCapability(middleware.CapSettings))
	company.GET("", controller.GetCompanySettings())
	company.PUT("", controller.SaveCompanySettings())
}
