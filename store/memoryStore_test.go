package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-exercisetracker/models"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func TestGetOrCreateUserIsAtomicPerUsername(t *testing.T) {
	s := NewMemoryStore()

	first, err := s.GetOrCreateUser(context.Background(), "fcc_test")
	require.NoError(t, err)
	second, err := s.GetOrCreateUser(context.Background(), "fcc_test")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	users, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestFindUserByIDRejectsMalformedID(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.FindUserByID(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByIDUnknownID(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.FindUserByID(context.Background(), "aaaaaaaaaaaaaaaaaaaaaaaa")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindExercisesFiltersAndSorts(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	user, err := s.GetOrCreateUser(ctx, "fcc_test")
	require.NoError(t, err)
	other, err := s.GetOrCreateUser(ctx, "someone_else")
	require.NoError(t, err)

	for _, d := range []string{"1990-06-15", "1990-01-01", "1990-12-31"} {
		_, err := s.InsertExercise(ctx, models.Exercise{
			UserID:      user.ID.Hex(),
			Username:    user.Username,
			Description: "run",
			Duration:    30,
			When:        day(t, d),
		})
		require.NoError(t, err)
	}
	_, err = s.InsertExercise(ctx, models.Exercise{
		UserID: other.ID.Hex(),
		When:   day(t, "1990-06-15"),
	})
	require.NoError(t, err)

	all, err := s.FindExercises(ctx, user.ID.Hex(), LogFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].When.Before(all[1].When))
	assert.True(t, all[1].When.Before(all[2].When))

	from := day(t, "1990-01-01")
	to := day(t, "1990-06-15")
	bounded, err := s.FindExercises(ctx, user.ID.Hex(), LogFilter{From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, bounded, 2)

	limited, err := s.FindExercises(ctx, user.ID.Hex(), LogFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, day(t, "1990-01-01"), limited[0].When)
}
