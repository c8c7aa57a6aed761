// Package natsnotify publishes case escalation events to NATS.
package natsnotify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"beacon/internal/domain"
	"beacon/internal/jurisdiction"
)

// DefaultSubjectPrefix is used when no prefix is configured.
const DefaultSubjectPrefix = "cases.escalated"

// Publisher is the subset of *nats.Conn the notifier needs.
type Publisher interface {
	PublishMsg(m *nats.Msg) error
}

// Notifier publishes each escalation as JSON on <prefix>.<jurisdiction>.
type Notifier struct {
	pub    Publisher
	prefix string
	logger *slog.Logger
}

func New(pub Publisher, prefix string, logger *slog.Logger) *Notifier {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), ".")
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{pub: pub, prefix: prefix, logger: logger}
}

// Subject returns the subject an event for jurisdictionID is published on.
func (n *Notifier) Subject(jurisdictionID string) string {
	id := strings.ToLower(strings.TrimSpace(jurisdictionID))
	if id == "" {
		id = jurisdiction.GenericID
	}
	return n.prefix + "." + id
}

func (n *Notifier) NotifyEscalation(ctx context.Context, ev domain.EscalationEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal escalation event: %w", err)
	}
	msg := nats.NewMsg(n.Subject(ev.Jurisdiction))
	msg.Data = data
	// Lets a JetStream stream on the subject drop redeliveries.
	msg.Header.Set(nats.MsgIdHdr, ev.EventID)
	if err := n.pub.PublishMsg(msg); err != nil {
		return fmt.Errorf("publish %s: %w", msg.Subject, err)
	}
	n.logger.DebugContext(ctx, "escalation published", "subject", msg.Subject, "event_id", ev.EventID)
	return nil
}

// Connect dials NATS with reconnects enabled and connection state logged.
func Connect(url, name string, logger *slog.Logger) (*nats.Conn, error) {
	if logger == nil {
		logger = slog.Default()
	}
	nc, err := nats.Connect(url,
		nats.Name(name),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.Timeout(5*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return nc, nil
}
