package responses

import (
	"comment-service/models"
)

// Every response carries a success flag and a human-readable message; error
// responses are a StatusResponse with success=false.

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ThreadResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Comments []models.Comment `json:"comments"`
}

type CommentResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Comment *models.Comment `json:"comment"`
}

type ReplyResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Reply   *models.Reply `json:"reply"`
}

type LikesResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Likes   []string `json:"likes"`
}

type PostResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Post    *models.Post `json:"post"`
}
