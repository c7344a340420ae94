// Package redispub publishes parcel change notifications to a Redis channel.
// Listeners such as tracking dashboards subscribe to the channel to refresh
// their views. Publication is best-effort; a Redis outage never blocks or
// rolls back a committed transition.
package redispub

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chiefroqa/baruk-app/internal/core/ports"
)

// Channel is the Redis pub/sub channel parcel events are published to.
const Channel = "parcels.events"

// eventPayload is the wire shape of a published parcel event.
type eventPayload struct {
	ParcelID     string    `json:"parcel_id"`
	TrackingCode string    `json:"tracking_code"`
	Status       string    `json:"status"`
	Kind         string    `json:"kind"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// RedisPublisher implements EventPublisher on top of Redis pub/sub.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher creates a publisher over the given Redis client.
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

// Publish serializes the event as JSON and publishes it to the parcel
// events channel.
func (p *RedisPublisher) Publish(ctx context.Context, event ports.ParcelEvent) error {
	payload, err := json.Marshal(eventPayload{
		ParcelID:     event.ParcelID.String(),
		TrackingCode: event.TrackingCode,
		Status:       event.Status.String(),
		Kind:         string(event.Kind),
		OccurredAt:   event.OccurredAt,
	})
	if err != nil {
		return err
	}

	return p.client.Publish(ctx, Channel, payload).Err()
}
