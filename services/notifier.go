package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"comment-service/models"
)

// Notifier publishes notification events for the platform notification
// service to deliver. Publishing is best effort, a failed publish never fails
// the request that triggered it.
type Notifier interface {
	Publish(ctx context.Context, notification *models.Notification) error
}

// RedisNotifier publishes notifications as JSON on the shared Redis channel.
type RedisNotifier struct {
	client  *redis.Client
	channel string
}

func NewRedisNotifier(client *redis.Client, channel string) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel}
}

func (n *RedisNotifier) Publish(ctx context.Context, notification *models.Notification) error {
	notification.Status = "pending"
	notification.DateCreated = time.Now()

	jsonData, err := json.Marshal(notification)
	if err != nil {
		return err
	}
	return n.client.Publish(ctx, n.channel, jsonData).Err()
}
