package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"showcase-portal-backend/internal/logger"

	"github.com/avast/retry-go/v4"
	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultQueueName is used when no queue name is configured
const DefaultQueueName = "showcase.notifications"

// Publisher sends notification events to a durable RabbitMQ queue.
// The connection is opened lazily and re-dialed after a failure.
type Publisher struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel

	dial func(url string) (*amqp.Connection, error)
}

// NewPublisher creates a publisher for the given broker URL and queue
func NewPublisher(url, queue string) *Publisher {
	if queue == "" {
		queue = DefaultQueueName
	}
	return &Publisher{url: url, queue: queue, dial: amqp.Dial}
}

// Publish marshals the event and publishes it as a persistent JSON message
func (p *Publisher) Publish(ctx context.Context, event *Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel(ctx)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Type:         event.Type,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		p.reset()
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id":    event.ID,
		"event_type":  event.Type,
		"showcase_id": event.ShowcaseID,
		"recipients":  len(event.Messages),
	}).Debug("Published notification event")
	return nil
}

// Close releases the channel and connection
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var err error
	if p.ch != nil {
		err = p.ch.Close()
	}
	if p.conn != nil {
		if cerr := p.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	p.ch, p.conn = nil, nil
	return err
}

// channel returns an open channel, dialing with backoff when needed. Caller holds mu.
func (p *Publisher) channel(ctx context.Context) (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	var conn *amqp.Connection
	err := retry.Do(func() error {
		var derr error
		conn, derr = p.dial(p.url)
		return derr
	},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if _, err := declareQueue(ch, p.queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *Publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.ch, p.conn = nil, nil
}

func declareQueue(ch *amqp.Channel, name string) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(name, true, false, false, false, nil)
	if err != nil {
		return q, fmt.Errorf("failed to declare queue %s: %w", name, err)
	}
	return q, nil
}

// NoopPublisher drops every event; used when no broker is configured
type NoopPublisher struct{}

// Publish logs and discards the event
func (NoopPublisher) Publish(ctx context.Context, event *Event) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_type":  event.Type,
		"showcase_id": event.ShowcaseID,
	}).Debug("Notifications disabled, event dropped")
	return nil
}
