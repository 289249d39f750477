package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("events")

// Pub/Sub channel constants
const (
	EventsChannel = "channel:events"
)

// Event types
const (
	TypeUserRegistered = "user_registered"
	TypeUserLoggedIn   = "user_logged_in"
)

// Event represents a global message published via Pub/Sub.
type Event struct {
	Type    string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// UserRegisteredPayload is the payload for the "user_registered" event.
type UserRegisteredPayload struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// UserLoggedInPayload is the payload for the "user_logged_in" event.
type UserLoggedInPayload struct {
	UserID     int64  `json:"user_id"`
	TokenState string `json:"token_state"`
}

// Publisher broadcasts domain events.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

type redisPublisher struct {
	rdb     *redis.Client
	channel string
}

// NewRedisPublisher creates a Publisher that sends events on EventsChannel.
func NewRedisPublisher(rdb *redis.Client) Publisher {
	return &redisPublisher{rdb: rdb, channel: EventsChannel}
}

func (p *redisPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	ctx, span := tracer.Start(ctx, "events.Publish", trace.WithAttributes(
		attribute.String("event.type", eventType),
	))
	defer span.End()

	msg, err := Encode(eventType, payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "encode event")
		return err
	}

	if err := p.rdb.Publish(ctx, p.channel, msg).Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "publish event")
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}
	return nil
}

// Encode wraps payload in an Event envelope.
func Encode(eventType string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	event, err := json.Marshal(Event{Type: eventType, Payload: raw})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}
	return event, nil
}

// decode parses an Event envelope and unmarshals its payload into dst.
func decode(msg []byte, dst any) (string, error) {
	var event Event
	if err := json.Unmarshal(msg, &event); err != nil {
		return "", fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if dst != nil {
		if err := json.Unmarshal(event.Payload, dst); err != nil {
			return event.Type, fmt.Errorf("failed to unmarshal %s payload: %w", event.Type, err)
		}
	}
	return event.Type, nil
}
