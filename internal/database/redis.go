package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"prestige-backend/internal/models"
)

// SignalChannel carries UI signals from the core to the websocket hub.
const SignalChannel = "ui:signals"

func NewRedisClient(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}

// SignalBus publishes UI signals over redis pub/sub. Signals are transient by
// design: nothing is queued or replayed, a client not connected when a signal
// fires simply never sees it.
type SignalBus struct {
	client *redis.Client
}

func NewSignalBus(client *redis.Client) *SignalBus {
	return &SignalBus{client: client}
}

func (b *SignalBus) Publish(ctx context.Context, sig models.UISignal) {
	data, err := json.Marshal(sig)
	if err != nil {
		log.Printf("signal bus: failed to marshal %s signal: %v", sig.Type, err)
		return
	}
	if err := b.client.Publish(ctx, SignalChannel, string(data)).Err(); err != nil {
		log.Printf("signal bus: failed to publish %s signal: %v", sig.Type, err)
	}
}

// Subscribe returns a pub/sub subscription on the signal channel. The caller
// owns closing it.
func (b *SignalBus) Subscribe(ctx context.Context) *redis.PubSub {
	return b.client.Subscribe(ctx, SignalChannel)
}
