package store

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"golang-exercisetracker/models"
)

// MemoryStore implements Store in memory for tests and local development.
type MemoryStore struct {
	mu        sync.RWMutex
	users     []models.User
	exercises []models.Exercise
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) GetOrCreateUser(ctx context.Context, username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}

	user := models.User{ID: primitive.NewObjectID(), Username: username}
	s.users = append(s.users, user)
	return user, nil
}

func (s *MemoryStore) FindUserByID(ctx context.Context, id string) (models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == objID {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryStore) InsertExercise(ctx context.Context, exercise models.Exercise) (models.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exercise.ID = primitive.NewObjectID()
	s.exercises = append(s.exercises, exercise)
	return exercise, nil
}

func (s *MemoryStore) FindExercises(ctx context.Context, userID string, filter LogFilter) ([]models.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.Exercise
	for _, exercise := range s.exercises {
		if exercise.UserID != userID {
			continue
		}
		if filter.From != nil && exercise.When.Before(*filter.From) {
			continue
		}
		if filter.To != nil && exercise.When.After(*filter.To) {
			continue
		}
		matched = append(matched, exercise)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].When.Before(matched[j].When)
	})

	if filter.Limit > 0 && int64(len(matched)) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}
