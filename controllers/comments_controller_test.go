package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comment-service/models"
	"comment-service/responses"
	"comment-service/routes"
	"comment-service/services"
	"comment-service/stores"
)

var testSecret = []byte("test-secret")

type testAPI struct {
	router *mux.Router
	post   *models.Post
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	mem := stores.NewMemory()
	mem.AddUser(&models.User{UserID: "alice", UserName: "Alice", ProfilePic: "https://cdn.example.com/alice.png"})
	mem.AddUser(&models.User{UserID: "bob", UserName: "Bob"})

	svc := services.NewCommentService(mem, mem).WithDefaultAvatar("https://cdn.example.com/default.png")
	post, err := svc.CreatePost(context.Background(), "alice", "Test Post")
	require.NoError(t, err)

	router := mux.NewRouter()
	routes.CommentRoutes(router, svc, testSecret)
	return &testAPI{router: router, post: post}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func token(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}

func TestGetThread_Public(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, "GET", "/comments/v1/"+api.post.ID.Hex(), "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := responses.ThreadResponse{}
	decode(t, rec, &body)
	assert.True(t, body.Success)
	assert.Empty(t, body.Comments)
}

func TestGetThread_UnknownPost(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, "GET", "/comments/v1/64b0c9f2a1b2c3d4e5f60718", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := responses.StatusResponse{}
	decode(t, rec, &body)
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Message)
}

func TestAddComment_RequiresAuth(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, "POST", "/comments/v1/"+api.post.ID.Hex(), "", models.CommentBody{Content: "hi"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddComment(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, "POST", "/comments/v1/"+api.post.ID.Hex(), token(t, "bob"), models.CommentBody{Content: "first!"})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := responses.CommentResponse{}
	decode(t, rec, &body)
	assert.True(t, body.Success)
	require.NotNil(t, body.Comment)
	assert.Equal(t, "first!", body.Comment.Content)
	assert.Equal(t, "Bob", body.Comment.Author)
	assert.Equal(t, "bob", body.Comment.UserID)
}

func TestAddComment_InvalidBody(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest("POST", "/comments/v1/"+api.post.ID.Hex(), bytes.NewReader([]byte("{not json")))
	req.Header.Set("Authorization", "Bearer "+token(t, "bob"))
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddComment_ValidationError(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, "POST", "/comments/v1/"+api.post.ID.Hex(), token(t, "bob"), models.CommentBody{Content: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := responses.StatusResponse{}
	decode(t, rec, &body)
	assert.False(t, body.Success)
}

func TestAddComment_UnknownCaller(t *testing.T) {
	api := newTestAPI(t)

	// valid token for a user the identity store does not know
	rec := api.do(t, "POST", "/comments/v1/"+api.post.ID.Hex(), token(t, "ghost"), models.CommentBody{Content: "boo"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReplyFlow(t *testing.T) {
	api := newTestAPI(t)
	postID := api.post.ID.Hex()

	rec := api.do(t, "POST", "/comments/v1/"+postID, token(t, "bob"), models.CommentBody{Content: "parent"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := responses.CommentResponse{}
	decode(t, rec, &created)
	commentID := created.Comment.ID.Hex()

	rec = api.do(t, "POST", "/comments/v1/"+postID+"/"+commentID+"/reply", token(t, "alice"), models.CommentBody{Content: "child"})
	require.Equal(t, http.StatusCreated, rec.Code)
	reply := responses.ReplyResponse{}
	decode(t, rec, &reply)
	assert.Equal(t, "child", reply.Reply.Content)
	assert.Equal(t, "alice", reply.Reply.UserID)

	// deleting the parent now soft-deletes it
	rec = api.do(t, "DELETE", "/comments/v1/"+postID+"/"+commentID, token(t, "bob"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, "GET", "/comments/v1/"+postID, "", nil)
	thread := responses.ThreadResponse{}
	decode(t, rec, &thread)
	require.Len(t, thread.Comments, 1)
	assert.True(t, thread.Comments[0].IsDeleted)
	assert.Equal(t, models.DeletedCommentContent, thread.Comments[0].Content)
	require.Len(t, thread.Comments[0].Replies, 1)
}

func TestEditComment_Forbidden(t *testing.T) {
	api := newTestAPI(t)
	postID := api.post.ID.Hex()

	rec := api.do(t, "POST", "/comments/v1/"+postID, token(t, "bob"), models.CommentBody{Content: "mine"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := responses.CommentResponse{}
	decode(t, rec, &created)

	rec = api.do(t, "PUT", "/comments/v1/"+postID+"/"+created.Comment.ID.Hex(), token(t, "alice"), models.CommentBody{Content: "hijacked"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	body := responses.StatusResponse{}
	decode(t, rec, &body)
	assert.False(t, body.Success)
}

func TestEditComment(t *testing.T) {
	api := newTestAPI(t)
	postID := api.post.ID.Hex()

	rec := api.do(t, "POST", "/comments/v1/"+postID, token(t, "bob"), models.CommentBody{Content: "draft"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := responses.CommentResponse{}
	decode(t, rec, &created)

	rec = api.do(t, "PUT", "/comments/v1/"+postID+"/"+created.Comment.ID.Hex(), token(t, "bob"), models.CommentBody{Content: "final"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := responses.CommentResponse{}
	decode(t, rec, &body)
	assert.Equal(t, "final", body.Comment.Content)
	assert.True(t, body.Comment.IsEdited)
}

func TestDeleteComment_NoReplies(t *testing.T) {
	api := newTestAPI(t)
	postID := api.post.ID.Hex()

	rec := api.do(t, "POST", "/comments/v1/"+postID, token(t, "bob"), models.CommentBody{Content: "fleeting"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := responses.CommentResponse{}
	decode(t, rec, &created)

	rec = api.do(t, "DELETE", "/comments/v1/"+postID+"/"+created.Comment.ID.Hex(), token(t, "bob"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, "GET", "/comments/v1/"+postID, "", nil)
	thread := responses.ThreadResponse{}
	decode(t, rec, &thread)
	assert.Empty(t, thread.Comments)
}

func TestLikeToggle(t *testing.T) {
	api := newTestAPI(t)
	postID := api.post.ID.Hex()

	rec := api.do(t, "POST", "/comments/v1/"+postID, token(t, "bob"), models.CommentBody{Content: "like me"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := responses.CommentResponse{}
	decode(t, rec, &created)
	likePath := "/comments/v1/" + postID + "/" + created.Comment.ID.Hex() + "/like"

	rec = api.do(t, "POST", likePath, token(t, "alice"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	likes := responses.LikesResponse{}
	decode(t, rec, &likes)
	assert.Equal(t, []string{"alice"}, likes.Likes)

	rec = api.do(t, "POST", likePath, token(t, "alice"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	likes = responses.LikesResponse{}
	decode(t, rec, &likes)
	assert.Empty(t, likes.Likes)
}

func TestReplyLikeAndDelete(t *testing.T) {
	api := newTestAPI(t)
	postID := api.post.ID.Hex()

	rec := api.do(t, "POST", "/comments/v1/"+postID, token(t, "bob"), models.CommentBody{Content: "parent"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := responses.CommentResponse{}
	decode(t, rec, &created)
	commentID := created.Comment.ID.Hex()

	rec = api.do(t, "POST", "/comments/v1/"+postID+"/"+commentID+"/reply", token(t, "alice"), models.CommentBody{Content: "child"})
	require.Equal(t, http.StatusCreated, rec.Code)
	reply := responses.ReplyResponse{}
	decode(t, rec, &reply)
	replyID := reply.Reply.ID.Hex()

	rec = api.do(t, "POST", "/comments/v1/"+postID+"/"+commentID+"/"+replyID+"/like", token(t, "bob"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	likes := responses.LikesResponse{}
	decode(t, rec, &likes)
	assert.Equal(t, []string{"bob"}, likes.Likes)

	// replies are always hard-deleted
	rec = api.do(t, "DELETE", "/comments/v1/"+postID+"/"+commentID+"/"+replyID, token(t, "alice"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, "GET", "/comments/v1/"+postID, "", nil)
	thread := responses.ThreadResponse{}
	decode(t, rec, &thread)
	require.Len(t, thread.Comments, 1)
	assert.Empty(t, thread.Comments[0].Replies)
}

func TestCreateAndGetPost(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, "POST", "/comments/v1/posts", token(t, "alice"), models.PostBody{Title: "Another Post"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := responses.PostResponse{}
	decode(t, rec, &created)
	require.NotNil(t, created.Post)

	rec = api.do(t, "GET", "/comments/v1/posts/"+created.Post.ID.Hex(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := responses.PostResponse{}
	decode(t, rec, &fetched)
	assert.Equal(t, "Another Post", fetched.Post.Title)
}
