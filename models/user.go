package models

import (
	"time"
)

// User is the slice of the platform user record this service needs: enough to
// stamp an author snapshot onto a new comment or reply.
type User struct {
	UserID      string    `json:"_id,omitempty" bson:"_id,omitempty"`
	UserName    string    `json:"username,omitempty" bson:"username,omitempty"`
	ProfilePic  string    `json:"profile_pic" bson:"profile_pic"`
	DateCreated time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}
