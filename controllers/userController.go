package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"golang-exercisetracker/models"
	"golang-exercisetracker/store"
)

var validate = validator.New()

type userInput struct {
	Username string `form:"username" validate:"required"`
}

// CreateUser registers a username, or returns the existing user unchanged
// when the username is already taken.
func CreateUser(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var input userInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusOK, gin.H{"error": err.Error()})
			return
		}

		if validationErr := validate.Struct(input); validationErr != nil {
			c.JSON(http.StatusOK, gin.H{"error": validationErr.Error()})
			return
		}

		user, err := s.GetOrCreateUser(ctx, input.Username)
		if err != nil {
			c.String(http.StatusOK, err.Error())
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

func GetUsers(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		users, err := s.ListUsers(ctx)
		if err != nil {
			c.String(http.StatusOK, err.Error())
			return
		}

		if users == nil {
			users = []models.User{}
		}
		c.JSON(http.StatusOK, users)
	}
}
