// Package stream publishes per-turn simulation events for external
// consumers. Rendering and visualization live outside this module; a
// visualizer subscribes to the event channel and draws whatever arrives.
package stream

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultChannel is the pub/sub channel events are published to when no
// channel is configured.
const DefaultChannel = "gridrover.turns"

// Publisher emits turn events to interested consumers.
type Publisher interface {
	// Publish sends one turn event.
	Publish(ctx context.Context, event TurnEvent) error

	// Close releases the publisher's resources.
	Close() error
}

// NopPublisher discards all events. It is the default when no streaming is
// configured.
type NopPublisher struct{}

// Publish discards the event.
func (NopPublisher) Publish(ctx context.Context, event TurnEvent) error { return nil }

// Close does nothing.
func (NopPublisher) Close() error { return nil }

// RedisOptions configures the Redis connection.
type RedisOptions struct {
	// URL is the Redis connection string (e.g., "redis://localhost:6379")
	URL string

	// Channel is the pub/sub channel to publish to. Defaults to
	// DefaultChannel.
	Channel string

	// TLS configuration for secure connections
	TLS *tls.Config

	// ConnectTimeout is the maximum time to wait for connection establishment
	ConnectTimeout time.Duration

	// WriteTimeout is the maximum time to wait for publish operations
	WriteTimeout time.Duration
}

// RedisPublisher implements Publisher over Redis pub/sub using go-redis/v9.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher creates a Redis publisher with the given options and
// verifies the connection with a ping.
func NewRedisPublisher(opts RedisOptions) (*RedisPublisher, error) {
	if opts.URL == "" {
		opts.URL = "redis://localhost:6379"
	}
	if opts.Channel == "" {
		opts.Channel = DefaultChannel
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 5 * time.Second
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	redisOpts.TLSConfig = opts.TLS
	redisOpts.DialTimeout = opts.ConnectTimeout
	redisOpts.WriteTimeout = opts.WriteTimeout

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisPublisher{client: client, channel: opts.Channel}, nil
}

// Publish JSON-encodes the event and publishes it to the channel.
func (p *RedisPublisher) Publish(ctx context.Context, event TurnEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal turn event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish to channel %s: %w", p.channel, err)
	}
	return nil
}

// Close closes the Redis connection.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// Subscribe creates a subscription to the publisher's channel and returns a
// channel of decoded events. The goroutine feeding it exits when the context
// is cancelled. Intended for visualizers and tests.
func (p *RedisPublisher) Subscribe(ctx context.Context) (<-chan TurnEvent, error) {
	pubsub := p.client.Subscribe(ctx, p.channel)

	// Wait for subscription confirmation
	if _, err := pubsub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("failed to subscribe to channel %s: %w", p.channel, err)
	}

	events := make(chan TurnEvent)
	go func() {
		defer close(events)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event TurnEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return events, nil
}
