package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"comment-service/controllers"
	"comment-service/middleware"
	"comment-service/services"
)

// CommentRoutes mounts the thread API under /comments/v1. Reading a thread is
// public, every mutation requires a bearer token. Literal-suffix routes
// (reply, like) are registered before the generic id routes so mux matches
// them first.
func CommentRoutes(router *mux.Router, svc *services.CommentService, jwtSecret []byte) {
	auth := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireAuth(jwtSecret, h)
	}

	router.HandleFunc("/comments/v1/posts", auth(controllers.AddPost(svc))).Methods("POST")
	router.HandleFunc("/comments/v1/posts/{PostID}", controllers.GetPost(svc)).Methods("GET")

	router.HandleFunc("/comments/v1/{PostID}", controllers.GetThread(svc)).Methods("GET")
	router.HandleFunc("/comments/v1/{PostID}", auth(controllers.AddComment(svc))).Methods("POST")
	router.HandleFunc("/comments/v1/{PostID}/{CommentID}/reply", auth(controllers.AddReply(svc))).Methods("POST")
	router.HandleFunc("/comments/v1/{PostID}/{CommentID}/like", auth(controllers.LikeComment(svc))).Methods("POST")
	router.HandleFunc("/comments/v1/{PostID}/{CommentID}/{ReplyID}/like", auth(controllers.LikeReply(svc))).Methods("POST")
	router.HandleFunc("/comments/v1/{PostID}/{CommentID}", auth(controllers.EditComment(svc))).Methods("PUT")
	router.HandleFunc("/comments/v1/{PostID}/{CommentID}/{ReplyID}", auth(controllers.EditReply(svc))).Methods("PUT")
	router.HandleFunc("/comments/v1/{PostID}/{CommentID}", auth(controllers.DeleteComment(svc))).Methods("DELETE")
	router.HandleFunc("/comments/v1/{PostID}/{CommentID}/{ReplyID}", auth(controllers.DeleteReply(svc))).Methods("DELETE")
}
