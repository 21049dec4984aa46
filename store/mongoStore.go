package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"golang-exercisetracker/database"
	"golang-exercisetracker/models"
)

// MongoStore implements Store on top of MongoDB collections.
type MongoStore struct {
	users     *mongo.Collection
	exercises *mongo.Collection
}

func NewMongoStore(client *mongo.Client) *MongoStore {
	return &MongoStore{
		users:     database.OpenCollection(client, "user"),
		exercises: database.OpenCollection(client, "exercise"),
	}
}

// GetOrCreateUser upserts in a single round trip so two concurrent calls
// with the same new username cannot both insert.
func (s *MongoStore) GetOrCreateUser(ctx context.Context, username string) (models.User, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user models.User
	err := s.users.FindOneAndUpdate(
		ctx,
		bson.M{"username": username},
		bson.M{"$setOnInsert": bson.M{"username": username}},
		opts,
	).Decode(&user)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *MongoStore) FindUserByID(ctx context.Context, id string) (models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	var user models.User
	err = s.users.FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *MongoStore) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoStore) InsertExercise(ctx context.Context, exercise models.Exercise) (models.Exercise, error) {
	exercise.ID = primitive.NewObjectID()
	if _, err := s.exercises.InsertOne(ctx, exercise); err != nil {
		return models.Exercise{}, err
	}
	return exercise, nil
}

func (s *MongoStore) FindExercises(ctx context.Context, userID string, filter LogFilter) ([]models.Exercise, error) {
	query := bson.M{"user_id": userID}

	dateRange := bson.M{}
	if filter.From != nil {
		dateRange["$gte"] = *filter.From
	}
	if filter.To != nil {
		dateRange["$lte"] = *filter.To
	}
	if len(dateRange) > 0 {
		query["when"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "when", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := s.exercises.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	var exercises []models.Exercise
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}
