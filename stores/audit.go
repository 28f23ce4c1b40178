package stores

import (
	"context"
	"time"

	"gorm.io/gorm"

	"comment-service/models"
)

// GormModerationStore writes moderation events to Postgres. The thread itself
// lives in Mongo; the audit trail goes to the relational side so moderators
// can query it without touching the content store.
type GormModerationStore struct {
	db *gorm.DB
}

func NewGormModerationStore(db *gorm.DB) (*GormModerationStore, error) {
	if err := db.AutoMigrate(&models.ModerationEvent{}); err != nil {
		return nil, err
	}
	return &GormModerationStore{db: db}, nil
}

func (s *GormModerationStore) Record(ctx context.Context, event *models.ModerationEvent) error {
	if event.DateCreated.IsZero() {
		event.DateCreated = time.Now()
	}
	return s.db.WithContext(ctx).Create(event).Error
}

// ListByPost returns the audit trail for one post, oldest first.
func (s *GormModerationStore) ListByPost(ctx context.Context, postID string) ([]models.ModerationEvent, error) {
	var events []models.ModerationEvent
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("date_created ASC").
		Find(&events).Error
	return events, err
}
