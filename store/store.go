package store

import (
	"context"
	"errors"
	"time"

	"golang-exercisetracker/models"
)

// ErrUserNotFound is returned when an id does not resolve to a stored user,
// including ids that are not valid object ids.
var ErrUserNotFound = errors.New("user not found")

// LogFilter narrows an exercise query. Nil bounds are not applied; both
// bounds are inclusive. Limit caps the number of returned entries.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int64
}

// Store is the document database surface the handlers depend on.
type Store interface {
	// GetOrCreateUser returns the user with the given username, inserting
	// it first if no such user exists. The operation is atomic.
	GetOrCreateUser(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	InsertExercise(ctx context.Context, exercise models.Exercise) (models.Exercise, error)
	// FindExercises returns the user's exercises matching the filter,
	// sorted ascending by date.
	FindExercises(ctx context.Context, userID string, filter LogFilter) ([]models.Exercise, error)
}
