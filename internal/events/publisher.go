// Package events publishes render summaries to NATS for downstream
// consumers (site rebuild triggers, dashboards). Publishing is optional;
// a nil Publisher is a no-op.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// RenderCompleted is the event emitted after every render run.
type RenderCompleted struct {
	RunID      string    `json:"run_id"`
	FinishedAt time.Time `json:"finished_at"`
	Pages      int       `json:"pages"`
	Files      int       `json:"files"`
	Collisions int       `json:"collisions"`
	Outcome    string    `json:"outcome"`
}

// Publisher publishes render events to a NATS subject.
type Publisher struct {
	conn    *nats.Conn
	subject string
}

// Connect establishes the NATS connection. The subject must be non-empty.
func Connect(natsURL, subject string) (*Publisher, error) {
	if subject == "" {
		return nil, fmt.Errorf("event subject is required")
	}

	conn, err := nats.Connect(natsURL, nats.Name("nuxtdoc"))
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return &Publisher{conn: conn, subject: subject}, nil
}

// PublishRenderCompleted emits a render summary. A nil publisher is a no-op.
func (p *Publisher) PublishRenderCompleted(ev RenderCompleted) error {
	if p == nil {
		return nil
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal render event: %w", err)
	}
	if err := p.conn.Publish(p.subject, payload); err != nil {
		return fmt.Errorf("publish render event: %w", err)
	}
	return p.conn.Flush()
}

// Close drains and closes the connection. A nil publisher is a no-op.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.conn.Close()
}
