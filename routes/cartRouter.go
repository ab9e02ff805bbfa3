package routes

import (
	controller "go-cafe-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func CartRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/cart", controller.AddCartItem())
	incomingRoutes.GET("/cart", controller.GetCartItems())
	incomingRoutes.DELETE("/cart/:id", controller.RemoveCartItem())
}
