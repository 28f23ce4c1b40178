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

// AddPost provisions a post with an empty thread. Full post CRUD belongs to
// the content service, this exists so threads have an aggregate to live in.
func AddPost(svc *services.CommentService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
		defer cancel()

		body := models.PostBody{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			errorResponse(rw, http.StatusBadRequest, "invalid JSON body")
			return
		}

		post, err := svc.CreatePost(ctx, middleware.UserID(ctx), body.Title)
		if err != nil {
			serviceErrorResponse(rw, err)
			return
		}
		writeJSON(rw, http.StatusCreated, responses.PostResponse{Success: true, Message: "post created", Post: post})
	}
}

func GetPost(svc *services.CommentService) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
		defer cancel()
		vars := mux.Vars(r)

		post, err := svc.GetPost(ctx, vars["PostID"])
		if err != nil {
			serviceErrorResponse(rw, err)
			return
		}
		writeJSON(rw, http.StatusOK, responses.PostResponse{Success: true, Message: "post fetched", Post: post})
	}
}
