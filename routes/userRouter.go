package routes

import (
	controller "go-cafe-ordering/controllers"
	"go-cafe-ordering/middleware"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/register", controller.Register())
	incomingRoutes.POST("/login", controller.Login())
	incomingRoutes.GET("/users", middleware.Authentication(), controller.GetUsers())
}
