package email

import (
	"time"

	"github.com/google/uuid"
)

// Kind labels what produced a message; it only feeds logs.
type Kind string

const (
	KindAssignment       Kind = "assignment"
	KindOverdueAlert     Kind = "overdue_alert"
	KindManagerDigest    Kind = "manager_digest"
	KindTechnicianDigest Kind = "technician_digest"
	KindNotification     Kind = "notification"
)

// Message is a fully rendered email waiting for delivery.
type Message struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	To        string    `json:"to"`
	ToName    string    `json:"to_name,omitempty"`
	Subject   string    `json:"subject"`
	HTMLBody  string    `json:"html_body"`
	TextBody  string    `json:"text_body,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// raw is the encoded form a RedisQueue popped, used to acknowledge it.
	raw string
}

func newMessage(kind Kind, to, toName, subject, html string) *Message {
	return &Message{
		ID:        uuid.NewString(),
		Kind:      kind,
		To:        to,
		ToName:    toName,
		Subject:   subject,
		HTMLBody:  html,
		CreatedAt: time.Now().UTC(),
	}
}
