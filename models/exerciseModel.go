package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Exercise struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      string             `json:"userId" bson:"user_id"`
	Username    string             `json:"username" bson:"username"`
	Description string             `json:"description" bson:"description" validate:"required"`
	Duration    int                `json:"duration" bson:"duration"`
	Date        string             `json:"date" bson:"date"`
	// When mirrors Date as a real timestamp; the display string is not
	// ordered, so range filters and sorting key on this field.
	When time.Time `json:"-" bson:"when"`
}
