package routes

import (
	controller "golang-exercisetracker/controllers"
	"golang-exercisetracker/store"

	"github.com/gin-gonic/gin"
)

func ExerciseRoutes(incomingRoutes *gin.RouterGroup, s store.Store) {
	incomingRoutes.POST("/api/users/:id/exercises", controller.AddExercise(s))
	incomingRoutes.GET("/api/users/:id/logs", controller.GetLogs(s))
}
