package queue

import (
	"time"
)

// Event types
const (
	EventShowcaseCreated       = "showcase.created"
	EventShowcaseStatusUpdated = "showcase.status_updated"
)

// Message is one rendered e-mail for a single recipient
type Message struct {
	UserID  string `json:"user_id"`
	To      string `json:"to"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	// Notification is the short in-app text without greeting and footer
	Notification string `json:"notification"`
}

// Event is the notification payload published on a showcase change
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	ShowcaseID string    `json:"showcase_id"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	ActionURL  string    `json:"action_url"`
	OccurredAt time.Time `json:"occurred_at"`
	Messages   []Message `json:"messages"`
}
