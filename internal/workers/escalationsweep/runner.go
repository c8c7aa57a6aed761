package escalationsweep

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"beacon/internal/domain"
	"beacon/internal/escalation"
	"beacon/internal/metrics"
	"beacon/internal/ports"
)

// LogNotifier records escalations in the log only. Used when no message
// broker is configured.
type LogNotifier struct{ Logger *slog.Logger }

func (n LogNotifier) NotifyEscalation(ctx context.Context, ev domain.EscalationEvent) error {
	n.Logger.InfoContext(ctx, "case escalated",
		"case_id", ev.CaseID, "from", ev.FromLevel.Code(), "to", ev.ToLevel.Code(), "reason", ev.Reason)
	return nil
}

// Sweeper re-checks a claimed case against the escalation rules and
// applies every step that is due.
type Sweeper struct {
	Repo     ports.EscalationRepository
	Notifier ports.Notifier
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
	Now      func() time.Time
}

// Process applies every escalation step due for c, one level at a time.
// Each step is applied conditionally on the level it starts from, so a case
// changed concurrently stops the sequence. It returns the number of steps
// applied.
func (s *Sweeper) Process(ctx context.Context, c domain.Case) (int, error) {
	if c.Level == nil || c.Status != domain.CaseOpen {
		return 0, nil
	}
	now := s.now()
	hours := c.HoursUnresolved(now)
	from := *c.Level
	applied := 0
	for _, d := range escalation.Settle(from, hours) {
		ev := domain.EscalationEvent{
			EventID:         uuid.NewString(),
			CaseID:          c.ID,
			Jurisdiction:    c.Jurisdiction,
			FromLevel:       from,
			ToLevel:         *d.NewLevel,
			HoursUnresolved: hours,
			Reason:          d.Reason,
			OccurredAt:      now,
		}
		ok, err := s.Repo.ApplyEscalation(ctx, ev)
		if err != nil {
			return applied, err
		}
		if !ok {
			s.logger().DebugContext(ctx, "case changed during sweep, skipping", "case_id", c.ID)
			return applied, nil
		}
		applied++
		s.Metrics.ObserveEscalation(ev.FromLevel, ev.ToLevel)
		if s.Notifier != nil {
			if err := s.Notifier.NotifyEscalation(ctx, ev); err != nil {
				s.logger().ErrorContext(ctx, "escalation notification failed", "case_id", c.ID, "event_id", ev.EventID, "error", err)
			}
		}
		from = ev.ToLevel
	}
	return applied, nil
}

// SweepDue runs SweepInline against the sweeper's own repository.
func (s *Sweeper) SweepDue(ctx context.Context, batch int, recheck time.Duration) (int, error) {
	return SweepInline(ctx, s.Repo, s, batch, recheck)
}

func (s *Sweeper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Sweeper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Options tune Run.
type Options struct {
	Concurrency  int
	PollInterval time.Duration
	Batch        int
	Recheck      time.Duration
}

const (
	defaultPollInterval = time.Minute
	defaultBatch        = 50
)

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = defaultPollInterval
	}
	if o.Batch < 1 {
		o.Batch = defaultBatch
	}
	return o
}

// Run starts a dispatcher that claims due cases on every tick and feeds
// them to worker goroutines. It returns once ctx is cancelled and all
// workers have drained.
func Run(ctx context.Context, repo ports.EscalationRepository, sweeper *Sweeper, opts Options) {
	if opts.Concurrency < 1 {
		return
	}
	opts = opts.withDefaults()
	casesCh := make(chan domain.Case, opts.Concurrency)
	log := sweeper.logger()

	// dispatcher loop
	go func() {
		ticker := time.NewTicker(opts.PollInterval)
		defer ticker.Stop()
		defer close(casesCh)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				for {
					batch, err := repo.ClaimDue(ctx, opts.Batch, opts.Recheck)
					if err != nil {
						if ctx.Err() == nil {
							log.Error("sweep claim error", "error", err)
						}
						break
					}
					for _, c := range batch {
						select {
						case casesCh <- c:
						case <-ctx.Done():
							return
						}
					}
					if len(batch) < opts.Batch {
						break
					}
				}
			}
		}
	}()

	// workers
	done := make(chan struct{})
	for i := 0; i < opts.Concurrency; i++ {
		go func(idx int) {
			defer func() { done <- struct{}{} }()
			for c := range casesCh {
				start := time.Now()
				if _, err := sweeper.Process(ctx, c); err != nil {
					log.Error("sweep case failed", "worker", idx, "case_id", c.ID, "error", err)
				}
				sweeper.Metrics.ObserveSweepCase(time.Since(start).Seconds())
			}
		}(i)
	}
	for i := 0; i < opts.Concurrency; i++ {
		<-done
	}
}

// SweepInline claims and processes due cases synchronously until none are
// left, using the same Sweeper the background workers use. It returns the
// number of escalation steps applied.
func SweepInline(ctx context.Context, repo ports.EscalationRepository, sweeper *Sweeper, batch int, recheck time.Duration) (int, error) {
	if batch < 1 {
		batch = defaultBatch
	}
	total := 0
	for {
		cases, err := repo.ClaimDue(ctx, batch, recheck)
		if err != nil {
			return total, err
		}
		for _, c := range cases {
			n, err := sweeper.Process(ctx, c)
			total += n
			if err != nil {
				return total, err
			}
		}
		if len(cases) < batch {
			return total, nil
		}
	}
}
