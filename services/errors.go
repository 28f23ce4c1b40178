package services

import (
	"errors"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrReplyNotFound   = errors.New("reply not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrNotAuthor = errors.New("only the author can modify this comment")

	ErrEmptyContent   = errors.New("content cannot be empty")
	ErrContentTooLong = errors.New("content is too long")
)

// IsNotFound reports whether err maps to a 404 at the HTTP boundary.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrReplyNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsValidation reports whether err maps to a 400 at the HTTP boundary.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyContent) || errors.Is(err, ErrContentTooLong)
}
