package stores

import (
	"context"
	"errors"

	"comment-service/models"
)

// ErrNotFound is returned by every store when the requested record does not
// exist. Callers branch on it with errors.Is.
var ErrNotFound = errors.New("record not found")

// PostStore persists the post aggregate. The comment thread is embedded in the
// post document, so UpdateComments replaces the whole thread in one
// single-document write.
type PostStore interface {
	CreatePost(ctx context.Context, post *models.Post) (*models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	UpdateComments(ctx context.Context, postID string, comments []models.Comment) error
}

// UserStore resolves caller ids to platform user records.
type UserStore interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

// ModerationStore records the audit trail of thread mutations.
type ModerationStore interface {
	Record(ctx context.Context, event *models.ModerationEvent) error
}
