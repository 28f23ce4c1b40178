package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is the aggregate root. Comments (and their replies) are embedded, so
// every thread mutation is a single-document write.
type Post struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID      string             `json:"userID" bson:"userid"`
	Title       string             `json:"title" bson:"title"`
	Comments    []Comment          `json:"comments" bson:"comments"`
	DateCreated time.Time          `json:"datecreated" bson:"datecreated"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

type PostBody struct {
	Title string `json:"title"`
}
