package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"golang-exercisetracker/models"
	"golang-exercisetracker/store"
)

// dateLayout matches the calendar-date string exposed to clients,
// e.g. "Mon Jan 01 1990".
const dateLayout = "Mon Jan 02 2006"

var dateLayouts = []string{"2006-01-02", time.RFC3339, dateLayout}

type exerciseInput struct {
	Description string `form:"description" validate:"required"`
	Duration    string `form:"duration" validate:"required"`
	Date        string `form:"date"`
}

// parseDate accepts a handful of calendar-date layouts and truncates the
// result to midnight UTC so stored dates and range bounds compare cleanly.
func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// normalizeDate resolves the caller-supplied date to the display string and
// its timestamp, defaulting to the current date when absent or unparsable.
func normalizeDate(raw string) (string, time.Time) {
	when, ok := parseDate(raw)
	if !ok {
		now := time.Now()
		when = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return when.Format(dateLayout), when
}

// AddExercise appends a log entry to the user identified by the :id path
// parameter. An unknown user is a domain error, reported in the body.
func AddExercise(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var input exerciseInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusOK, gin.H{"error": err.Error()})
			return
		}

		if validationErr := validate.Struct(input); validationErr != nil {
			c.JSON(http.StatusOK, gin.H{"error": validationErr.Error()})
			return
		}

		duration, err := strconv.Atoi(input.Duration)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"error": "Invalid duration"})
			return
		}

		user, err := s.FindUserByID(ctx, c.Param("id"))
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusOK, gin.H{"error": "Unknown userId"})
			return
		}
		if err != nil {
			c.String(http.StatusOK, err.Error())
			return
		}

		date, when := normalizeDate(input.Date)

		exercise := models.Exercise{
			UserID:      user.ID.Hex(),
			Username:    user.Username,
			Description: input.Description,
			Duration:    duration,
			Date:        date,
			When:        when,
		}

		if _, err := s.InsertExercise(ctx, exercise); err != nil {
			c.String(http.StatusOK, err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":          user.ID,
			"username":    user.Username,
			"date":        date,
			"duration":    duration,
			"description": input.Description,
		})
	}
}

// GetLogs returns the user's exercises filtered by the optional from/to
// date bounds (inclusive, applied independently) and capped by limit.
func GetLogs(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		user, err := s.FindUserByID(ctx, c.Param("id"))
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusOK, gin.H{"error": "No user with this ID"})
			return
		}
		if err != nil {
			c.String(http.StatusOK, err.Error())
			return
		}

		limit, err := strconv.ParseInt(c.Query("limit"), 10, 64)
		if err != nil || limit <= 0 {
			limit = 100
		}

		filter := store.LogFilter{Limit: limit}
		if from, ok := parseDate(c.Query("from")); ok {
			filter.From = &from
		}
		if to, ok := parseDate(c.Query("to")); ok {
			filter.To = &to
		}

		exercises, err := s.FindExercises(ctx, user.ID.Hex(), filter)
		if err != nil {
			c.String(http.StatusOK, err.Error())
			return
		}

		entries := make([]gin.H, 0, len(exercises))
		for _, exercise := range exercises {
			entries = append(entries, gin.H{
				"description": exercise.Description,
				"duration":    exercise.Duration,
				"date":        exercise.Date,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"username": user.Username,
			"count":    len(entries),
			"id":       user.ID,
			"log":      entries,
		})
	}
}
