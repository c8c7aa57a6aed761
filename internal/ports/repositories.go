package ports

import (
	"context"
	"time"

	"beacon/internal/domain"
	"beacon/internal/priority"
)

// CaseRepository reads cases and stores assessment results on them.
type CaseRepository interface {
	// Get returns domain.ErrCaseNotFound for an unknown id.
	Get(ctx context.Context, caseID string) (domain.Case, error)
	// SaveAssessment stores a on the case and returns the level actually
	// stored. A case that has been auto-escalated keeps its level when a is
	// less urgent.
	SaveAssessment(ctx context.Context, caseID string, a priority.Assessment, at time.Time) (priority.Level, error)
}

// EscalationRepository supports the periodic escalation sweep.
type EscalationRepository interface {
	// ClaimDue returns up to limit open, assessed, non-critical cases that
	// have not been swept within recheck, marking them as swept.
	ClaimDue(ctx context.Context, limit int, recheck time.Duration) ([]domain.Case, error)
	// ApplyEscalation moves the case from ev.FromLevel to ev.ToLevel and
	// records the event. It reports false when the case is no longer open at
	// ev.FromLevel.
	ApplyEscalation(ctx context.Context, ev domain.EscalationEvent) (applied bool, err error)
}
