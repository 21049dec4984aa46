package routes

import (
	controller "golang-exercisetracker/controllers"
	"golang-exercisetracker/store"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.RouterGroup, s store.Store) {
	incomingRoutes.POST("/api/users", controller.CreateUser(s))
	incomingRoutes.GET("/api/users", controller.GetUsers(s))
}
