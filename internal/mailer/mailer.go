package mailer

import (
	"context"
	"fmt"

	apperrors "showcase-portal-backend/internal/errors"
	"showcase-portal-backend/internal/logger"
	"showcase-portal-backend/internal/queue"

	"github.com/wneessen/go-mail"
)

// Config holds SMTP settings
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	TLS      bool
}

// Sender delivers prepared messages
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Mailer turns notification events into e-mails
type Mailer struct {
	from   string
	sender Sender
}

// New builds a Mailer backed by an SMTP client
func New(cfg Config) (*Mailer, error) {
	if cfg.Host == "" {
		return nil, apperrors.ErrSMTPNotConfigured
	}

	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return NewWithSender(cfg.From, client), nil
}

// NewWithSender builds a Mailer around an existing sender
func NewWithSender(from string, sender Sender) *Mailer {
	return &Mailer{from: from, sender: sender}
}

// Build renders the e-mails for every recipient with an address
func (m *Mailer) Build(event *queue.Event) ([]*mail.Msg, error) {
	msgs := make([]*mail.Msg, 0, len(event.Messages))
	for _, message := range event.Messages {
		if message.To == "" {
			continue
		}
		msg := mail.NewMsg()
		if err := msg.From(m.from); err != nil {
			return nil, fmt.Errorf("invalid sender address %q: %w", m.from, err)
		}
		if message.Name != "" {
			if err := msg.AddToFormat(message.Name, message.To); err != nil {
				return nil, fmt.Errorf("invalid recipient address %q: %w", message.To, err)
			}
		} else if err := msg.To(message.To); err != nil {
			return nil, fmt.Errorf("invalid recipient address %q: %w", message.To, err)
		}
		msg.Subject(message.Subject)
		msg.SetBodyString(mail.TypeTextPlain, message.Body)
		msg.SetGenHeader(mail.HeaderXMailer, "showcase-notifier")
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// Handle is a queue.Handler: it sends one e-mail per recipient. Delivery
// failures are logged and do not cause the event to be redelivered.
func (m *Mailer) Handle(ctx context.Context, event *queue.Event) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id":    event.ID,
		"event_type":  event.Type,
		"showcase_id": event.ShowcaseID,
	})

	msgs, err := m.Build(event)
	if err != nil {
		return fmt.Errorf("%w: %v", queue.ErrMalformedEvent, err)
	}
	if len(msgs) == 0 {
		log.Info("No recipients with an e-mail address")
		return nil
	}

	if err := m.sender.DialAndSendWithContext(ctx, msgs...); err != nil {
		log.Errorf("Failed to send notification e-mails: %v", err)
		return nil
	}
	log.WithField("sent", len(msgs)).Info("Notification e-mails sent")
	return nil
}
