package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"showcase-portal-backend/internal/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrMalformedEvent marks a delivery that can never be processed
var ErrMalformedEvent = errors.New("malformed notification event")

// Handler processes one decoded event
type Handler func(ctx context.Context, event *Event) error

// Consumer reads notification events from the queue until its context is cancelled
type Consumer struct {
	url        string
	queue      string
	prefetch   int
	maxBackoff time.Duration
	handler    Handler
}

// NewConsumer creates a consumer that hands each event to handler
func NewConsumer(url, queue string, handler Handler) *Consumer {
	if queue == "" {
		queue = DefaultQueueName
	}
	return &Consumer{
		url:        url,
		queue:      queue,
		prefetch:   50,
		maxBackoff: 30 * time.Second,
		handler:    handler,
	}
}

// Run dials the broker and consumes, reconnecting with exponential backoff.
// It returns only when ctx is done.
func (c *Consumer) Run(ctx context.Context) error {
	log := logger.WithContext(ctx).WithField("queue", c.queue)
	backoff := time.Second

	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			log.Warnf("Failed to dial broker: %v; retrying in %s", err, backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < c.maxBackoff {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = c.consume(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warnf("Consume loop ended: %v; reconnecting", err)
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		logger.WithContext(ctx).Warnf("Failed to set QoS: %v", err)
	}
	if _, err := declareQueue(ch, c.queue); err != nil {
		return err
	}

	deliveries, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", c.queue, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			c.dispatch(ctx, d)
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, d amqp.Delivery) {
	requeue, err := c.Handle(ctx, d.Body)
	if err != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"message_id": d.MessageId,
			"requeue":    requeue,
		}).Errorf("Failed to handle notification: %v", err)
		_ = d.Nack(false, requeue)
		return
	}
	_ = d.Ack(false)
}

// Handle decodes body and runs the handler. It reports whether a failed
// delivery should be requeued; malformed payloads never are.
func (c *Consumer) Handle(ctx context.Context, body []byte) (bool, error) {
	event, err := DecodeEvent(body)
	if err != nil {
		return false, err
	}
	if err := c.handler(ctx, event); err != nil {
		return !errors.Is(err, ErrMalformedEvent), err
	}
	return false, nil
}

// DecodeEvent parses a delivery body into an Event
func DecodeEvent(body []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if event.Type == "" || event.ShowcaseID == "" {
		return nil, fmt.Errorf("%w: missing type or showcase id", ErrMalformedEvent)
	}
	return &event, nil
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
