package natsnotify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beacon/internal/domain"
	"beacon/internal/priority"
)

type fakePublisher struct {
	msgs []*nats.Msg
	err  error
}

func (f *fakePublisher) PublishMsg(m *nats.Msg) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, m)
	return nil
}

func event() domain.EscalationEvent {
	return domain.EscalationEvent{
		EventID:         "evt-1",
		CaseID:          "case-1",
		Jurisdiction:    "ontario",
		FromLevel:       priority.Low,
		ToLevel:         priority.Medium,
		HoursUnresolved: 73,
		Reason:          "Auto-escalated from LOW to MEDIUM after 72 hours unresolved",
		OccurredAt:      time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestNotifier_PublishesOnJurisdictionSubject(t *testing.T) {
	pub := &fakePublisher{}
	n := New(pub, "", nil)

	require.NoError(t, n.NotifyEscalation(context.Background(), event()))

	require.Len(t, pub.msgs, 1)
	msg := pub.msgs[0]
	assert.Equal(t, "cases.escalated.ontario", msg.Subject)
	assert.Equal(t, "evt-1", msg.Header.Get(nats.MsgIdHdr))

	var got domain.EscalationEvent
	require.NoError(t, json.Unmarshal(msg.Data, &got))
	assert.Equal(t, event(), got)
}

func TestNotifier_Subject(t *testing.T) {
	n := New(&fakePublisher{}, "alerts.priority.", nil)

	assert.Equal(t, "alerts.priority.quebec", n.Subject(" Quebec "))
	assert.Equal(t, "alerts.priority.generic", n.Subject(""))
}

func TestNotifier_PublishError(t *testing.T) {
	n := New(&fakePublisher{err: nats.ErrConnectionClosed}, "", nil)

	err := n.NotifyEscalation(context.Background(), event())
	assert.True(t, errors.Is(err, nats.ErrConnectionClosed))
}

func TestNotifier_CancelledContext(t *testing.T) {
	pub := &fakePublisher{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(pub, "", nil).NotifyEscalation(ctx, event())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, pub.msgs)
}
