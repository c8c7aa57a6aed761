package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	api "beacon/internal/api"
	"beacon/internal/domain"
	"beacon/internal/escalation"
	"beacon/internal/ports"
	"beacon/internal/priority"
	"beacon/internal/services/assessment"
	"beacon/internal/services/jurisdictions"
)

const maxBodyBytes = 1 << 20

// Server implements the generated StrictServerInterface.
type Server struct {
	assessor      ports.Assessor
	jurisdictions ports.Jurisdictions
	sweeper       ports.EscalationSweeper
	gatherer      prometheus.Gatherer
	logger        *slog.Logger
}

// New builds a Server. sweeper and gatherer may be nil: without a sweeper
// the sweep endpoint answers 503, without a gatherer /metrics is not mounted.
func New(assessor ports.Assessor, j ports.Jurisdictions, sweeper ports.EscalationSweeper, gatherer prometheus.Gatherer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{assessor: assessor, jurisdictions: j, sweeper: sweeper, gatherer: gatherer, logger: logger}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(maxBodyBytes))
	r.Use(s.logRequests)

	if s.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	// Generated handler wiring
	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			s.writeError(w, r, badRequest(err.Error()))
		},
		ResponseErrorHandlerFunc: s.writeError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			s.writeError(w, r, badRequest(err.Error()))
		},
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.DebugContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// Strict handler methods

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

func (s *Server) PostAssessment(ctx context.Context, req api.PostAssessmentRequestObject) (api.PostAssessmentResponseObject, error) {
	if req.Body == nil {
		return nil, badRequest("missing body")
	}
	var factors []byte
	if req.Body.Factors != nil {
		factors = *req.Body.Factors
	}
	var jurisdictionID string
	if req.Body.Jurisdiction != nil {
		jurisdictionID = *req.Body.Jurisdiction
	}
	a, err := s.assessor.AssessDocument(ctx, factors, jurisdictionID)
	if err != nil {
		return api.PostAssessment400JSONResponse{Error: err.Error()}, nil
	}
	return api.PostAssessment200JSONResponse(a), nil
}

func (s *Server) PostEscalationCheck(ctx context.Context, req api.PostEscalationCheckRequestObject) (api.PostEscalationCheckResponseObject, error) {
	if req.Body == nil || req.Body.CurrentLevel == nil || req.Body.HoursMissing == nil {
		return api.PostEscalationCheck400JSONResponse{Error: "currentLevel and hoursMissing are required"}, nil
	}
	d := escalation.Check(priority.Level(*req.Body.CurrentLevel), *req.Body.HoursMissing)
	return api.PostEscalationCheck200JSONResponse(d), nil
}

func (s *Server) PostEscalationSweep(ctx context.Context, req api.PostEscalationSweepRequestObject) (api.PostEscalationSweepResponseObject, error) {
	if s.sweeper == nil {
		return api.PostEscalationSweep503JSONResponse{Error: "escalation sweep not configured"}, nil
	}
	var batch int
	var recheck time.Duration
	if req.Body != nil {
		if req.Body.Batch != nil {
			batch = *req.Body.Batch
		}
		if req.Body.RecheckSeconds != nil {
			recheck = time.Duration(*req.Body.RecheckSeconds) * time.Second
		}
	}
	n, err := s.sweeper.SweepDue(ctx, batch, recheck)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "on-demand escalation sweep finished", "escalated", n)
	return api.PostEscalationSweep200JSONResponse{Escalated: n}, nil
}

func (s *Server) GetPriority(ctx context.Context, req api.GetPriorityRequestObject) (api.GetPriorityResponseObject, error) {
	l := priority.Level(req.Level)
	if !l.Valid() {
		return api.GetPriority400JSONResponse{
			Error: fmt.Sprintf("level must be between %d and %d", priority.Critical, priority.Minimal),
		}, nil
	}
	d := priority.Display(l)
	return api.GetPriority200JSONResponse{
		Level:         int(l),
		Code:          l.Code(),
		Name:          l.String(),
		Label:         d.Label,
		LabelFr:       d.LabelFr,
		Color:         d.Color,
		BgColor:       d.BgColor,
		Description:   d.Description,
		DescriptionFr: d.DescriptionFr,
	}, nil
}

func (s *Server) ListJurisdictions(ctx context.Context, _ api.ListJurisdictionsRequestObject) (api.ListJurisdictionsResponseObject, error) {
	return api.ListJurisdictions200JSONResponse(s.jurisdictions.List(ctx)), nil
}

func (s *Server) GetJurisdiction(ctx context.Context, req api.GetJurisdictionRequestObject) (api.GetJurisdictionResponseObject, error) {
	p, err := s.jurisdictions.Get(ctx, req.Id)
	if err != nil {
		if errors.Is(err, jurisdictions.ErrNotFound) {
			return api.GetJurisdiction404JSONResponse{Error: err.Error()}, nil
		}
		return nil, err
	}
	return api.GetJurisdiction200JSONResponse(p), nil
}

func (s *Server) ValidateJurisdiction(ctx context.Context, req api.ValidateJurisdictionRequestObject) (api.ValidateJurisdictionResponseObject, error) {
	var candidate map[string]any
	if req.Body != nil {
		candidate = *req.Body
	}
	return api.ValidateJurisdiction200JSONResponse(s.jurisdictions.Validate(ctx, candidate)), nil
}

func (s *Server) PostCaseAssessment(ctx context.Context, req api.PostCaseAssessmentRequestObject) (api.PostCaseAssessmentResponseObject, error) {
	a, err := s.assessor.AssessCase(ctx, req.Id.String())
	switch {
	case errors.Is(err, domain.ErrCaseNotFound):
		return api.PostCaseAssessment404JSONResponse{Error: err.Error()}, nil
	case errors.Is(err, assessment.ErrNoCaseStore):
		return api.PostCaseAssessment503JSONResponse{Error: err.Error()}, nil
	case err != nil:
		return nil, err
	}
	return api.PostCaseAssessment200JSONResponse(a), nil
}

type runtimeError struct {
	code int
	msg  string
}

func (e *runtimeError) Error() string { return e.msg }

func badRequest(msg string) error { return &runtimeError{code: http.StatusBadRequest, msg: msg} }

func statusFor(err error) int {
	var rt *runtimeError
	switch {
	case errors.As(err, &rt):
		return rt.code
	case errors.Is(err, jurisdictions.ErrNotFound), errors.Is(err, domain.ErrCaseNotFound):
		return http.StatusNotFound
	case errors.Is(err, assessment.ErrNoCaseStore):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "error", err, "request_id", middleware.GetReqID(r.Context()))
		msg = http.StatusText(status)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: msg})
}
