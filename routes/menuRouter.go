package routes

import (
	controller "go-cafe-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/api/menu", controller.GetMenu())
	incomingRoutes.PUT("/api/menu/:id", controller.UpdateAvailability())
	incomingRoutes.GET("/ws", controller.HandleWebSocket())
}
