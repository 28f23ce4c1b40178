package stores

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"comment-service/models"
)

// MongoPostStore keeps each post, with its embedded comment thread, as one
// document in the posts collection. Thread mutations are load-mutate-save:
// the service loads the aggregate, edits the comments slice in memory and
// writes it back with a single $set.
type MongoPostStore struct {
	posts *mongo.Collection
}

func NewMongoPostStore(posts *mongo.Collection) *MongoPostStore {
	return &MongoPostStore{posts: posts}
}

func (s *MongoPostStore) CreatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	post.DateCreated = time.Now()
	post.UpdatedAt = post.DateCreated
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	if _, err := s.posts.InsertOne(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *MongoPostStore) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	oID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, ErrNotFound
	}
	post := models.Post{}
	err = s.posts.FindOne(ctx, bson.M{"_id": oID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *MongoPostStore) UpdateComments(ctx context.Context, postID string, comments []models.Comment) error {
	oID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return ErrNotFound
	}
	update := bson.M{"$set": bson.M{"comments": comments, "updated_at": time.Now()}}
	res, err := s.posts.UpdateOne(ctx, bson.M{"_id": oID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MongoUserStore reads the platform users collection. This service never
// writes user records, it only snapshots them onto new comments.
type MongoUserStore struct {
	users *mongo.Collection
}

func NewMongoUserStore(users *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{users: users}
}

func (s *MongoUserStore) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user := models.User{}
	err := s.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
