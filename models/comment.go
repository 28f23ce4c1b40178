package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Placeholder values written over a comment when it is soft deleted.
const (
	DeletedCommentContent = "This comment has been deleted"
	DeletedCommentAuthor  = "Deleted User"
)

// Comment is embedded in the owning Post document. Author and AuthorPic are
// snapshots taken from the user record at creation time, they never track the
// live user record afterwards.
type Comment struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID      string             `json:"userID" bson:"userid"`
	Author      string             `json:"author" bson:"author"`
	AuthorPic   string             `json:"authorPic" bson:"authorpic"`
	Content     string             `json:"content" bson:"content"`
	Likes       []string           `json:"likes" bson:"likes"`
	Replies     []Reply            `json:"replies" bson:"replies"`
	IsEdited    bool               `json:"isedited" bson:"isedited"`
	IsDeleted   bool               `json:"isdeleted" bson:"isdeleted"`
	DateCreated time.Time          `json:"datecreated" bson:"datecreated"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// Reply has the same shape as Comment but carries no nested replies.
type Reply struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID      string             `json:"userID" bson:"userid"`
	Author      string             `json:"author" bson:"author"`
	AuthorPic   string             `json:"authorPic" bson:"authorpic"`
	Content     string             `json:"content" bson:"content"`
	Likes       []string           `json:"likes" bson:"likes"`
	IsEdited    bool               `json:"isedited" bson:"isedited"`
	IsDeleted   bool               `json:"isdeleted" bson:"isdeleted"`
	DateCreated time.Time          `json:"datecreated" bson:"datecreated"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

type CommentBody struct {
	Content string `json:"content"`
}
