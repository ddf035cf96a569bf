package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	apperrors "showcase-portal-backend/internal/errors"
	"showcase-portal-backend/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

type fakeSender struct {
	sent []*mail.Msg
	err  error
}

func (f *fakeSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	f.sent = append(f.sent, messages...)
	return f.err
}

func event() *queue.Event {
	return &queue.Event{
		ID:         "evt-1",
		Type:       queue.EventShowcaseCreated,
		ShowcaseID: "sc-1",
		Messages: []queue.Message{
			{To: "owner@example.org", Name: "Owner", Subject: "Reuse case 'Map' was submitted for review.", Body: "Dear Owner,"},
			{To: "", Name: "No Mail", Subject: "skip", Body: "skip"},
			{To: "admin@example.org", Subject: "Reuse case 'Map' was submitted for review.", Body: "Dear admin,"},
		},
	}
}

func TestNew(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, apperrors.ErrSMTPNotConfigured)

	m, err := New(Config{Host: "smtp.example.org", Port: 2525, From: "portal@example.org", Username: "u", Password: "p"})
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestBuild(t *testing.T) {
	m := NewWithSender("portal@example.org", &fakeSender{})

	msgs, err := m.Build(event())
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	var buf bytes.Buffer
	_, err = msgs[0].WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<owner@example.org>")
	assert.Contains(t, buf.String(), "Subject: Reuse case 'Map' was submitted for review.")
	assert.Contains(t, buf.String(), "Dear Owner,")
	assert.Contains(t, buf.String(), "portal@example.org")
}

func TestBuildInvalidSender(t *testing.T) {
	m := NewWithSender("not an address", &fakeSender{})
	_, err := m.Build(event())
	assert.Error(t, err)
}

func TestHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("sends one message per addressed recipient", func(t *testing.T) {
		sender := &fakeSender{}
		m := NewWithSender("portal@example.org", sender)
		require.NoError(t, m.Handle(ctx, event()))
		assert.Len(t, sender.sent, 2)
	})

	t.Run("smtp failure is swallowed", func(t *testing.T) {
		sender := &fakeSender{err: errors.New("connection refused")}
		m := NewWithSender("portal@example.org", sender)
		assert.NoError(t, m.Handle(ctx, event()))
	})

	t.Run("no recipients", func(t *testing.T) {
		sender := &fakeSender{}
		m := NewWithSender("portal@example.org", sender)
		require.NoError(t, m.Handle(ctx, &queue.Event{Type: queue.EventShowcaseCreated, ShowcaseID: "sc-1"}))
		assert.Empty(t, sender.sent)
	})

	t.Run("bad recipient address is malformed", func(t *testing.T) {
		m := NewWithSender("portal@example.org", &fakeSender{})
		err := m.Handle(ctx, &queue.Event{
			Type: queue.EventShowcaseCreated, ShowcaseID: "sc-1",
			Messages: []queue.Message{{To: "@@", Subject: "s", Body: "b"}},
		})
		assert.ErrorIs(t, err, queue.ErrMalformedEvent)
	})
}
