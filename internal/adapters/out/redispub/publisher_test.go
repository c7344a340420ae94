package redispub_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiefroqa/baruk-app/internal/adapters/out/redispub"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/custody"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/core/ports"
)

func TestRedisPublisher_Publish(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	publisher := redispub.NewRedisPublisher(client)

	t.Run("should publish the event as JSON on the parcel events channel", func(t *testing.T) {
		ctx := t.Context()

		sub := client.Subscribe(ctx, redispub.Channel)
		t.Cleanup(func() { _ = sub.Close() })
		_, err := sub.Receive(ctx)
		require.NoError(t, err)

		parcelID := kernel.NewUUID()
		occurredAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		err = publisher.Publish(ctx, ports.ParcelEvent{
			ParcelID:     parcelID,
			TrackingCode: "BRK-ABCDEFGH",
			Status:       parcel.OutForDelivery,
			Kind:         custody.EventOutForDelivery,
			OccurredAt:   occurredAt,
		})
		require.NoError(t, err)

		select {
		case msg := <-sub.Channel():
			var payload struct {
				ParcelID     string    `json:"parcel_id"`
				TrackingCode string    `json:"tracking_code"`
				Status       string    `json:"status"`
				Kind         string    `json:"kind"`
				OccurredAt   time.Time `json:"occurred_at"`
			}
			require.NoError(t, json.Unmarshal([]byte(msg.Payload), &payload))
			assert.Equal(t, parcelID.String(), payload.ParcelID)
			assert.Equal(t, "BRK-ABCDEFGH", payload.TrackingCode)
			assert.Equal(t, "out_for_delivery", payload.Status)
			assert.Equal(t, string(custody.EventOutForDelivery), payload.Kind)
			assert.True(t, payload.OccurredAt.Equal(occurredAt))
		case <-time.After(2 * time.Second):
			t.Fatal("no event received on the parcel events channel")
		}
	})

	t.Run("should fail when the server is unreachable", func(t *testing.T) {
		ctx := t.Context()
		server.Close()

		err := publisher.Publish(ctx, ports.ParcelEvent{
			ParcelID:     kernel.NewUUID(),
			TrackingCode: "BRK-HGFEDCBA",
			Status:       parcel.SearchingRider,
			Kind:         custody.EventOrderPlaced,
			OccurredAt:   time.Now().UTC(),
		})

		require.Error(t, err)
	})
}
