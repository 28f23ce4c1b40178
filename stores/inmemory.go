package stores

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"comment-service/models"
)

// Memory implements PostStore, UserStore and ModerationStore in memory.
// It backs the test suite and local development without a database. Posts are
// copied on the way in and out so callers can only change stored state through
// UpdateComments, the same contract the Mongo store gives.
type Memory struct {
	mu     sync.RWMutex
	posts  map[string]*models.Post
	users  map[string]*models.User
	events []models.ModerationEvent
}

func NewMemory() *Memory {
	return &Memory{
		posts: make(map[string]*models.Post),
		users: make(map[string]*models.User),
	}
}

func (m *Memory) CreatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	post.DateCreated = time.Now()
	post.UpdatedAt = post.DateCreated
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	m.posts[post.ID.Hex()] = clonePost(post)
	return post, nil
}

func (m *Memory) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	post, ok := m.posts[postID]
	if !ok {
		return nil, ErrNotFound
	}
	return clonePost(post), nil
}

func (m *Memory) UpdateComments(ctx context.Context, postID string, comments []models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	post, ok := m.posts[postID]
	if !ok {
		return ErrNotFound
	}
	post.Comments = cloneComments(comments)
	post.UpdatedAt = time.Now()
	return nil
}

// AddUser seeds a user record, standing in for the platform user service.
func (m *Memory) AddUser(user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.UserID] = user
}

func (m *Memory) GetUser(ctx context.Context, userID string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *Memory) Record(ctx context.Context, event *models.ModerationEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, *event)
	return nil
}

// Events returns the recorded moderation events, oldest first.
func (m *Memory) Events() []models.ModerationEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.ModerationEvent, len(m.events))
	copy(out, m.events)
	return out
}

func clonePost(post *models.Post) *models.Post {
	copied := *post
	copied.Comments = cloneComments(post.Comments)
	return &copied
}

func cloneComments(comments []models.Comment) []models.Comment {
	out := make([]models.Comment, len(comments))
	for i, c := range comments {
		out[i] = c
		out[i].Likes = append([]string(nil), c.Likes...)
		out[i].Replies = make([]models.Reply, len(c.Replies))
		for j, rep := range c.Replies {
			out[i].Replies[j] = rep
			out[i].Replies[j].Likes = append([]string(nil), rep.Likes...)
		}
	}
	return out
}
