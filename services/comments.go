package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"comment-service/configs"
	"comment-service/models"
	"comment-service/stores"
	"comment-service/utils"
)

const (
	MaxCommentLength = 1000
	MaxReplyLength   = 500
)

// CommentService owns the lifecycle of a post's comment thread. Every
// mutation loads the post aggregate, edits the embedded comments in memory
// and writes the whole thread back in one document update.
type CommentService struct {
	posts         stores.PostStore
	users         stores.UserStore
	notifier      Notifier
	moderation    stores.ModerationStore
	defaultAvatar string
	logger        *logrus.Entry
}

func NewCommentService(posts stores.PostStore, users stores.UserStore) *CommentService {
	return &CommentService{
		posts:  posts,
		users:  users,
		logger: configs.LogWithContext("comment-service", "comments"),
	}
}

// WithNotifier wires the notification publisher. Without one, events are
// silently skipped.
func (s *CommentService) WithNotifier(notifier Notifier) *CommentService {
	s.notifier = notifier
	return s
}

// WithModeration wires the moderation audit trail.
func (s *CommentService) WithModeration(moderation stores.ModerationStore) *CommentService {
	s.moderation = moderation
	return s
}

// WithDefaultAvatar sets the avatar URL snapshotted for users that have no
// profile picture.
func (s *CommentService) WithDefaultAvatar(url string) *CommentService {
	s.defaultAvatar = url
	return s
}

// CreatePost provisions a post aggregate with an empty thread.
func (s *CommentService) CreatePost(ctx context.Context, callerID, title string) (*models.Post, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyContent
	}
	if _, err := s.resolveUser(ctx, callerID); err != nil {
		return nil, err
	}
	post := &models.Post{
		UserID:   callerID,
		Title:    title,
		Comments: []models.Comment{},
	}
	post, err := s.posts.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost returns the post aggregate including its thread.
func (s *CommentService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return s.loadPost(ctx, postID)
}

// FetchThread returns the full comment list of a post, soft-deleted
// placeholders included, so clients can render "deleted" markers next to
// surviving replies.
func (s *CommentService) FetchThread(ctx context.Context, postID string) ([]models.Comment, error) {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// CreateComment appends a new comment to the post's thread. Author name and
// avatar are snapshotted from the caller's user record at creation time.
func (s *CommentService) CreateComment(ctx context.Context, postID, callerID, content string) (*models.Comment, error) {
	content, err := normalizeContent(content, MaxCommentLength)
	if err != nil {
		return nil, err
	}
	user, err := s.resolveUser(ctx, callerID)
	if err != nil {
		return nil, err
	}
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	comment := models.Comment{
		ID:          primitive.NewObjectID(),
		UserID:      callerID,
		Author:      user.UserName,
		AuthorPic:   utils.AvatarOrDefault(user.ProfilePic, s.defaultAvatar),
		Content:     content,
		Likes:       []string{},
		Replies:     []models.Reply{},
		DateCreated: now,
		UpdatedAt:   now,
	}
	post.Comments = append(post.Comments, comment)

	if err := s.saveThread(ctx, post); err != nil {
		return nil, err
	}
	s.notify(ctx, models.CommentNotification, post.UserID, callerID, postID,
		"commented on your post: "+utils.Preview(content, 80))
	return &comment, nil
}

// CreateReply appends a reply to an existing comment. Soft-deleted comments
// still accept replies, their thread is not frozen.
func (s *CommentService) CreateReply(ctx context.Context, postID, commentID, callerID, content string) (*models.Reply, error) {
	content, err := normalizeContent(content, MaxReplyLength)
	if err != nil {
		return nil, err
	}
	user, err := s.resolveUser(ctx, callerID)
	if err != nil {
		return nil, err
	}
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	idx, err := findComment(post, commentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	reply := models.Reply{
		ID:          primitive.NewObjectID(),
		UserID:      callerID,
		Author:      user.UserName,
		AuthorPic:   utils.AvatarOrDefault(user.ProfilePic, s.defaultAvatar),
		Content:     content,
		Likes:       []string{},
		DateCreated: now,
		UpdatedAt:   now,
	}
	post.Comments[idx].Replies = append(post.Comments[idx].Replies, reply)

	if err := s.saveThread(ctx, post); err != nil {
		return nil, err
	}
	s.notify(ctx, models.ReplyNotification, post.Comments[idx].UserID, callerID, postID,
		"replied to your comment: "+utils.Preview(content, 80))
	return &reply, nil
}

// UpdateComment replaces a comment's content. Author-only; the edited flag is
// sticky once set.
func (s *CommentService) UpdateComment(ctx context.Context, postID, commentID, callerID, content string) (*models.Comment, error) {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	idx, err := findComment(post, commentID)
	if err != nil {
		return nil, err
	}
	comment := &post.Comments[idx]
	if comment.IsDeleted {
		return nil, ErrCommentNotFound
	}
	if !isAuthor(comment.UserID, callerID) {
		return nil, ErrNotAuthor
	}
	content, err = normalizeContent(content, MaxCommentLength)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	comment.IsEdited = true
	comment.UpdatedAt = time.Now()

	if err := s.saveThread(ctx, post); err != nil {
		return nil, err
	}
	s.audit(ctx, postID, commentID, "", callerID, models.ModerationActionEdit)
	return comment, nil
}

// UpdateReply replaces a reply's content. Author-only.
func (s *CommentService) UpdateReply(ctx context.Context, postID, commentID, replyID, callerID, content string) (*models.Reply, error) {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	cIdx, err := findComment(post, commentID)
	if err != nil {
		return nil, err
	}
	rIdx, err := findReply(&post.Comments[cIdx], replyID)
	if err != nil {
		return nil, err
	}
	reply := &post.Comments[cIdx].Replies[rIdx]
	if !isAuthor(reply.UserID, callerID) {
		return nil, ErrNotAuthor
	}
	content, err = normalizeContent(content, MaxReplyLength)
	if err != nil {
		return nil, err
	}

	reply.Content = content
	reply.IsEdited = true
	reply.UpdatedAt = time.Now()

	if err := s.saveThread(ctx, post); err != nil {
		return nil, err
	}
	s.audit(ctx, postID, commentID, replyID, callerID, models.ModerationActionEdit)
	return reply, nil
}

// DeleteComment removes a comment from the thread. A comment that has replies
// is only soft deleted, its content and author are replaced with placeholders
// and it keeps its position, so the replies under it stay reachable. A
// comment with no replies is removed entirely.
func (s *CommentService) DeleteComment(ctx context.Context, postID, commentID, callerID string) error {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return err
	}
	idx, err := findComment(post, commentID)
	if err != nil {
		return err
	}
	comment := &post.Comments[idx]
	if comment.IsDeleted {
		return ErrCommentNotFound
	}
	if !isAuthor(comment.UserID, callerID) {
		return ErrNotAuthor
	}

	action := models.ModerationActionHardDelete
	if len(comment.Replies) > 0 {
		comment.Content = models.DeletedCommentContent
		comment.Author = models.DeletedCommentAuthor
		comment.AuthorPic = ""
		comment.IsDeleted = true
		comment.UpdatedAt = time.Now()
		action = models.ModerationActionSoftDelete
	} else {
		post.Comments = append(post.Comments[:idx], post.Comments[idx+1:]...)
	}

	if err := s.saveThread(ctx, post); err != nil {
		return err
	}
	s.audit(ctx, postID, commentID, "", callerID, action)
	return nil
}

// DeleteReply removes a reply from its parent comment. Replies carry no
// nesting of their own, so the delete is always hard.
func (s *CommentService) DeleteReply(ctx context.Context, postID, commentID, replyID, callerID string) error {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return err
	}
	cIdx, err := findComment(post, commentID)
	if err != nil {
		return err
	}
	comment := &post.Comments[cIdx]
	rIdx, err := findReply(comment, replyID)
	if err != nil {
		return err
	}
	if !isAuthor(comment.Replies[rIdx].UserID, callerID) {
		return ErrNotAuthor
	}

	comment.Replies = append(comment.Replies[:rIdx], comment.Replies[rIdx+1:]...)

	if err := s.saveThread(ctx, post); err != nil {
		return err
	}
	s.audit(ctx, postID, commentID, replyID, callerID, models.ModerationActionHardDelete)
	return nil
}

// ToggleLike flips the caller's membership in a comment's like set and
// returns the resulting set. Any authenticated user may like any comment,
// their own included.
func (s *CommentService) ToggleLike(ctx context.Context, postID, commentID, callerID string) ([]string, error) {
	if _, err := s.resolveUser(ctx, callerID); err != nil {
		return nil, err
	}
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	idx, err := findComment(post, commentID)
	if err != nil {
		return nil, err
	}
	comment := &post.Comments[idx]

	likes, added := toggleLike(comment.Likes, callerID)
	comment.Likes = likes

	if err := s.saveThread(ctx, post); err != nil {
		return nil, err
	}
	if added {
		s.notify(ctx, models.LikeNotification, comment.UserID, callerID, postID, "liked your comment")
	}
	return likes, nil
}

// ToggleReplyLike is ToggleLike for a reply.
func (s *CommentService) ToggleReplyLike(ctx context.Context, postID, commentID, replyID, callerID string) ([]string, error) {
	if _, err := s.resolveUser(ctx, callerID); err != nil {
		return nil, err
	}
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	cIdx, err := findComment(post, commentID)
	if err != nil {
		return nil, err
	}
	rIdx, err := findReply(&post.Comments[cIdx], replyID)
	if err != nil {
		return nil, err
	}
	reply := &post.Comments[cIdx].Replies[rIdx]

	likes, added := toggleLike(reply.Likes, callerID)
	reply.Likes = likes

	if err := s.saveThread(ctx, post); err != nil {
		return nil, err
	}
	if added {
		s.notify(ctx, models.LikeNotification, reply.UserID, callerID, postID, "liked your reply")
	}
	return likes, nil
}

// isAuthor is the single ownership predicate every mutating operation goes
// through.
func isAuthor(authorID, callerID string) bool {
	return authorID != "" && authorID == callerID
}

func normalizeContent(content string, maxLength int) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > maxLength {
		return "", ErrContentTooLong
	}
	return content, nil
}

func findComment(post *models.Post, commentID string) (int, error) {
	for i := range post.Comments {
		if post.Comments[i].ID.Hex() == commentID {
			return i, nil
		}
	}
	return 0, ErrCommentNotFound
}

func findReply(comment *models.Comment, replyID string) (int, error) {
	for i := range comment.Replies {
		if comment.Replies[i].ID.Hex() == replyID {
			return i, nil
		}
	}
	return 0, ErrReplyNotFound
}

func toggleLike(likes []string, userID string) ([]string, bool) {
	for i, id := range likes {
		if id == userID {
			return append(likes[:i], likes[i+1:]...), false
		}
	}
	return append(likes, userID), true
}

func (s *CommentService) loadPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := s.posts.GetPost(ctx, postID)
	if errors.Is(err, stores.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *CommentService) resolveUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if errors.Is(err, stores.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *CommentService) saveThread(ctx context.Context, post *models.Post) error {
	err := s.posts.UpdateComments(ctx, post.ID.Hex(), post.Comments)
	if errors.Is(err, stores.ErrNotFound) {
		return ErrPostNotFound
	}
	return err
}

func (s *CommentService) notify(ctx context.Context, notificationType models.NotificationType, userID, initiatorID, postID, message string) {
	if s.notifier == nil || userID == initiatorID {
		return
	}
	notification := &models.Notification{
		Type:        notificationType,
		UserID:      userID,
		InitiatorID: initiatorID,
		PostID:      postID,
		Message:     message,
	}
	if err := s.notifier.Publish(ctx, notification); err != nil {
		s.logger.Error("Failed to publish notification", "error", err, "type", notificationType)
	}
}

func (s *CommentService) audit(ctx context.Context, postID, commentID, replyID, userID, action string) {
	if s.moderation == nil {
		return
	}
	event := &models.ModerationEvent{
		PostID:    postID,
		CommentID: commentID,
		ReplyID:   replyID,
		UserID:    userID,
		Action:    action,
	}
	if err := s.moderation.Record(ctx, event); err != nil {
		s.logger.Error("Failed to record moderation event", "error", err, "action", action)
	}
}
