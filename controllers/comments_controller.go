package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"comment-service/middleware"
	"comment-service/models"
	"comment-service/responses"
	"comment-service/services"
)

// GetThread returns a post's full comment list, soft-deleted placeholders
// included. Public, no auth.
func GetThread(svc *services.CommentService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
		defer cancel()
		vars := mux.Vars(r)

		comments, err := svc.FetchThread(ctx, vars["PostID"])
		if err != nil {
			serviceErrorResponse(rw, err)
			return
		}
		writeJSON(rw, http.StatusOK, responses.ThreadResponse{Success: true, Message: "thread fetched", Comments: comments})
	}
}

func AddComment(svc *services.CommentService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
		defer cancel()
		vars := mux.Vars(r)

		body := models.CommentBody{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			errorResponse(rw, http.StatusBadRequest, "invalid JSON body")
			return
		}

		comment, err := svc.CreateComment(ctx, vars["PostID"], middleware.UserID(ctx), body.Content)
		if err != nil {
			serviceErrorResponse(rw, err)
			return
		}
		writeJSON(rw, http.StatusCreated, responses.CommentResponse{Success: true, Message: "comment added", Comment: comment})
	}
}

func AddReply(svc *services.CommentService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
		defer cancel()
		vars := mux.Vars(r)

		body := models.CommentBody{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			errorResponse(rw, http.StatusBadRequest, "invalid JSON body")
			return
		}

		reply, err := svc.CreateReply(ctx, vars["PostID"], vars["CommentID"], middleware.UserID(ctx), body.Content)
		if err != nil {
			serviceErrorResponse(rw, err)
			return
		}
		writeJSON(rw, http.StatusCreated, responses.ReplyResponse{Success: true, Message: "reply added", Reply: reply})
	}
}

func EditComment(svc *services.CommentService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
		defer cancel()
		vars := mux.Vars(r)

		body := models.CommentBody{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			errorResponse(rw, http.StatusBadRequest, "invalid JSON body")
			return
		}

		comment, err := svc.UpdateComment(ctx, vars["PostID"], vars["CommentID"], middleware.UserID(ctx), body.Content)
		if err != nil {
			serviceErrorResponse(rw, err)
			return
		}
		writeJSON(rw, http.StatusOK, responses.CommentResponse{Success: true, Message: "comment updated", Comment: comment})
	}
}

func EditReply(svc *services.CommentService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
		defer cancel()
		vars := mux.Vars(r)

		body := models.CommentBody{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			errorResponse(rw, http.StatusBadRequest, "invalid JSON body")
			return
		}

		reply, err := svc.UpdateReply(ctx, vars["PostID"], vars["CommentID"], vars["ReplyID"], middleware.UserID(ctx), body.Content)
		if err != nil {
			serviceErrorResponse(rw, err)
			return
		}
		writeJSON(rw, http.StatusOK, responses.ReplyResponse{Success: true, Message: "reply updated", Reply: reply})
	}
}

func DeleteComment(svc *services.CommentService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
		defer cancel()
		vars := mux.Vars(r)

		err := svc.DeleteComment(ctx, vars["PostID"], vars["CommentID"], middleware.UserID(ctx))
		if err != nil {
			serviceErrorResponse(rw, err)
			return
		}
		writeJSON(rw, http.StatusOK, responses.StatusResponse{Success: true, Message: "comment deleted"})
	}
}

func DeleteReply(svc *services.CommentService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
		defer cancel()
		vars := mux.Vars(r)

		err := svc.DeleteReply(ctx, vars["PostID"], vars["CommentID"], vars["ReplyID"], middleware.UserID(ctx))
		if err != nil {
			serviceErrorResponse(rw, err)
			return
		}
		writeJSON(rw, http.StatusOK, responses.StatusResponse{Success: true, Message: "reply deleted"})
	}
}

// LikeComment toggles the caller's like on a comment and returns the
// resulting like set, so the client can update its counter without a refetch.
func LikeComment(svc *services.CommentService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
		defer cancel()
		vars := mux.Vars(r)

		likes, err := svc.ToggleLike(ctx, vars["PostID"], vars["CommentID"], middleware.UserID(ctx))
		if err != nil {
			serviceErrorResponse(rw, err)
			return
		}
		writeJSON(rw, http.StatusOK, responses.LikesResponse{Success: true, Message: "like toggled", Likes: likes})
	}
}

func LikeReply(svc *services.CommentService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
		defer cancel()
		vars := mux.Vars(r)

		likes, err := svc.ToggleReplyLike(ctx, vars["PostID"], vars["CommentID"], vars["ReplyID"], middleware.UserID(ctx))
		if err != nil {
			serviceErrorResponse(rw, err)
			return
		}
		writeJSON(rw, http.StatusOK, responses.LikesResponse{Success: true, Message: "like toggled", Likes: likes})
	}
}
