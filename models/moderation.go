package models

import (
	"time"
)

const (
	ModerationActionEdit       = "edit"
	ModerationActionSoftDelete = "soft_delete"
	ModerationActionHardDelete = "hard_delete"
)

// ModerationEvent is the audit row written to Postgres for every edit and
// delete, so moderators can reconstruct what happened to a thread.
type ModerationEvent struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	PostID      string    `json:"postid" gorm:"column:post_id;size:64;index"`
	CommentID   string    `json:"commentid" gorm:"column:comment_id;size:64;index"`
	ReplyID     string    `json:"replyid,omitempty" gorm:"column:reply_id;size:64"`
	UserID      string    `json:"userid" gorm:"column:user_id;size:64;index"`
	Action      string    `json:"action" gorm:"column:action;size:20"`
	DateCreated time.Time `json:"datecreated" gorm:"column:date_created"`
}

// TableName overrides the default table name used by GORM
func (ModerationEvent) TableName() string {
	return "comment_moderation_events"
}
