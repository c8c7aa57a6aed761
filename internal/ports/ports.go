package ports

import (
	"context"
	"time"

	"beacon/internal/domain"
	"beacon/internal/jurisdiction"
	"beacon/internal/priority"
)

// Assessor scores risk factors, either ad hoc or for a stored case.
type Assessor interface {
	Assess(ctx context.Context, factors priority.CaseRiskFactors, jurisdictionID string) priority.Assessment
	AssessDocument(ctx context.Context, factors []byte, jurisdictionID string) (priority.Assessment, error)
	AssessCase(ctx context.Context, caseID string) (priority.Assessment, error)
}

// Jurisdictions exposes the profile registry to transports.
type Jurisdictions interface {
	List(ctx context.Context) []jurisdiction.Summary
	Get(ctx context.Context, id string) (jurisdiction.Profile, error)
	Validate(ctx context.Context, candidate map[string]any) jurisdiction.ValidationResult
}

// Notifier delivers escalation events to the messaging subsystem.
type Notifier interface {
	NotifyEscalation(ctx context.Context, ev domain.EscalationEvent) error
}

// EscalationSweeper runs the escalation sweep on demand and reports the
// number of escalation steps applied.
type EscalationSweeper interface {
	SweepDue(ctx context.Context, batch int, recheck time.Duration) (int, error)
}
