package models

import (
	"time"
)

type NotificationType int

const (
	CommentNotification NotificationType = iota + 1
	ReplyNotification
	LikeNotification
)

// Notification is the event shape published to the platform notification
// channel. The notification service on the other end owns delivery.
type Notification struct {
	Type        NotificationType `json:"type"`
	UserID      string           `json:"userid"`
	InitiatorID string           `json:"initiatorid"` // the person who triggered this notification
	PostID      string           `json:"postid"`
	Message     string           `json:"message"`
	Status      string           `json:"status"`
	DateCreated time.Time        `json:"datecreated,omitempty"`
}
