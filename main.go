package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"golang-exercisetracker/database"
	"golang-exercisetracker/routes"
	"golang-exercisetracker/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, reading configuration from the environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatal().Msg("MONGODB_URI is not set")
	}

	client, err := database.Connect(uri)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(cors.Default())

	router.StaticFile("/", "./views/index.html")
	router.Static("/public", "./public")

	exerciseStore := store.NewMongoStore(client)

	apiRoutes := router.Group("/")
	{
		routes.UserRoutes(apiRoutes, exerciseStore)
		routes.ExerciseRoutes(apiRoutes, exerciseStore)
	}

	log.Info().Str("port", port).Msg("Your app is listening")
	router.Run(":" + port)
}
