package routes

import (
	controller "go-cafe-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/order", controller.CreateOrder())
	incomingRoutes.GET("/orders", controller.GetOrders())
}
