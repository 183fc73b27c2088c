package events

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// ChatProducer publishes chat events to a redis stream. Publishing is
// best effort: callers log failures and carry on serving the request.
type ChatProducer struct {
	client     *redis.Client
	streamName string
}

func NewChatProducer(client *redis.Client, streamName string) *ChatProducer {
	return &ChatProducer{
		client:     client,
		streamName: streamName,
	}
}

func (p *ChatProducer) Publish(ctx context.Context, event *ChatEvent) error {
	fields := map[string]interface{}{
		"event_id":  event.EventID,
		"user_id":   event.UserID,
		"kind":      event.Kind,
		"timestamp": event.Timestamp,
	}

	if event.Term != "" {
		fields["term"] = event.Term
	}
	if event.ProductID != 0 {
		fields["product_id"] = strconv.FormatInt(event.ProductID, 10)
	}
	if event.OrderID != "" {
		fields["order_id"] = event.OrderID
	}
	if event.IP != "" {
		fields["ip"] = event.IP
	}
	if event.UserAgent != "" {
		fields["user_agent"] = event.UserAgent
	}
	if event.Browser != "" {
		fields["browser"] = event.Browser
	}
	if event.OS != "" {
		fields["os"] = event.OS
	}
	if event.DeviceType != "" {
		fields["device_type"] = event.DeviceType
	}

	result := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.streamName,
		Values: fields,
	})

	if err := result.Err(); err != nil {
		return fmt.Errorf("failed to publish chat event: %w", err)
	}

	return nil
}

func (p *ChatProducer) StreamLength(ctx context.Context) (int64, error) {
	result := p.client.XLen(ctx, p.streamName)
	return result.Val(), result.Err()
}
