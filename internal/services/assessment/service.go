package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"beacon/internal/jurisdiction"
	"beacon/internal/metrics"
	"beacon/internal/ports"
	"beacon/internal/priority"
)

// ErrNoCaseStore is returned by AssessCase when the service runs without persistence.
var ErrNoCaseStore = errString("case store not configured")

type errString string

func (e errString) Error() string { return string(e) }

type Service struct {
	profiles jurisdiction.Source
	cases    ports.CaseRepository
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

// New wires the service. cases and m may be nil.
func New(profiles jurisdiction.Source, cases ports.CaseRepository, m *metrics.Metrics, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{profiles: profiles, cases: cases, metrics: m, logger: logger, now: time.Now}
}

// Assess scores factors against the current registry. An unknown
// jurisdiction is not an error, but it is logged and counted so silent
// demotions to the generic profile stay visible.
func (s *Service) Assess(ctx context.Context, factors priority.CaseRiskFactors, jurisdictionID string) priority.Assessment {
	a := priority.Assess(s.profiles.Current(), factors, jurisdictionID)
	if a.JurisdictionFallback {
		s.logger.WarnContext(ctx, "unknown jurisdiction, assessed with generic profile",
			"requested", jurisdictionID, "profile", a.Jurisdiction)
	}
	s.metrics.ObserveAssessment(a)
	return a
}

// AssessDocument scores a raw JSON factors document. Documents that carry
// only the misspelled hours key are still scored, but they are logged and
// counted so the remaining legacy clients can be found.
func (s *Service) AssessDocument(ctx context.Context, factors []byte, jurisdictionID string) (priority.Assessment, error) {
	var f priority.CaseRiskFactors
	if len(factors) > 0 {
		if err := json.Unmarshal(factors, &f); err != nil {
			return priority.Assessment{}, fmt.Errorf("parse factors: %w", err)
		}
		if priority.UsesLegacyHoursKey(factors) {
			s.logger.WarnContext(ctx, "factors use legacy hourssMissing key", "jurisdiction", jurisdictionID)
			s.metrics.ObserveLegacyHoursKey()
		}
	}
	return s.Assess(ctx, f, jurisdictionID), nil
}

// AssessCase scores a stored case and persists the result on it. A case
// that was auto-escalated keeps its escalated level when the fresh score maps
// to something less urgent; the store enforces the same rule so a concurrent
// escalation is not undone either.
func (s *Service) AssessCase(ctx context.Context, caseID string) (priority.Assessment, error) {
	if s.cases == nil {
		return priority.Assessment{}, ErrNoCaseStore
	}
	c, err := s.cases.Get(ctx, caseID)
	if err != nil {
		return priority.Assessment{}, err
	}
	a := s.Assess(ctx, c.Factors, c.Jurisdiction)
	if held, ok := c.EscalatedLevel(); ok {
		a = s.hold(ctx, caseID, a, held)
	}
	stored, err := s.cases.SaveAssessment(ctx, caseID, a, s.now())
	if err != nil {
		return priority.Assessment{}, fmt.Errorf("save assessment for case %s: %w", caseID, err)
	}
	if stored != a.Level {
		a = s.hold(ctx, caseID, a, stored)
	}
	s.logger.InfoContext(ctx, "case assessed",
		"case_id", caseID, "jurisdiction", a.Jurisdiction, "score", a.Score, "level", a.Level.Code())
	return a, nil
}

func (s *Service) hold(ctx context.Context, caseID string, a priority.Assessment, l priority.Level) priority.Assessment {
	held := priority.Hold(a, l)
	if held.Level != a.Level {
		s.logger.InfoContext(ctx, "escalated level kept over lower score",
			"case_id", caseID, "scored", a.Level.Code(), "held", held.Level.Code())
	}
	return held
}
