package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Publisher is satisfied by *redis.Client.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher publishes every event as JSON on a Redis channel so other
// services (a kitchen display, a staff chat bot) can react to bookings.
type RedisPublisher struct {
	client  Publisher
	channel string
}

func NewRedisPublisher(client Publisher, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Notify(ctx context.Context, e Event) error {
	jsonData, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("error marshaling notification data: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, jsonData).Err(); err != nil {
		return fmt.Errorf("error publishing notification to Redis: %w", err)
	}
	return nil
}
