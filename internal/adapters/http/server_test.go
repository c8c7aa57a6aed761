package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beacon/internal/domain"
	"beacon/internal/jurisdiction"
	"beacon/internal/metrics"
	"beacon/internal/ports"
	"beacon/internal/priority"
	"beacon/internal/services/assessment"
	"beacon/internal/services/jurisdictions"
)

const knownCase = "7d4f2c1a-3b5e-4f60-8a71-92b3c4d5e6f7"

type stubCases struct {
	saved   int
	saveErr error
}

func (s *stubCases) Get(ctx context.Context, id string) (domain.Case, error) {
	if id != knownCase {
		return domain.Case{}, domain.ErrCaseNotFound
	}
	return domain.Case{
		ID:           id,
		Jurisdiction: "ontario",
		Status:       domain.CaseOpen,
		Factors:      priority.CaseRiskFactors{SuicidalRisk: true},
	}, nil
}

func (s *stubCases) SaveAssessment(ctx context.Context, id string, a priority.Assessment, at time.Time) (priority.Level, error) {
	if s.saveErr != nil {
		return 0, s.saveErr
	}
	s.saved++
	return a.Level, nil
}

type stubSweeper struct {
	batch   int
	recheck time.Duration
	applied int
	err     error
}

func (s *stubSweeper) SweepDue(ctx context.Context, batch int, recheck time.Duration) (int, error) {
	s.batch, s.recheck = batch, recheck
	return s.applied, s.err
}

func newTestServer(t *testing.T, cases *stubCases) *httptest.Server {
	t.Helper()
	return newSweepServer(t, cases, nil)
}

func newSweepServer(t *testing.T, cases *stubCases, sweeper *stubSweeper) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	profiles := jurisdiction.Default()

	var assessor *assessment.Service
	if cases != nil {
		assessor = assessment.New(profiles, cases, m, logger)
	} else {
		assessor = assessment.New(profiles, nil, m, logger)
	}
	var sw ports.EscalationSweeper
	if sweeper != nil {
		sw = sweeper
	}
	srv := httptest.NewServer(New(assessor, jurisdictions.New(profiles), sw, reg, logger).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, rd)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := do(t, srv, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestPostAssessment(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := do(t, srv, http.MethodPost, "/v1/assessments", `{
		"factors": {
			"age": 8,
			"hourssMissing": 80,
			"requiresDailyMedication": true,
			"suicidalRisk": true,
			"hasFinancialResources": false
		}
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var a priority.Assessment
	require.NoError(t, json.Unmarshal(body, &a))
	assert.Equal(t, priority.Critical, a.Level)
	assert.Equal(t, jurisdiction.GenericID, a.Jurisdiction)
	assert.Len(t, a.Factors, 5)
	assert.Equal(t, "Priority P0 Critical / Critique (score 120, profile generic)", a.Explanation[0])
}

func TestPostAssessment_UnknownJurisdictionFallsBack(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := do(t, srv, http.MethodPost, "/v1/assessments",
		`{"jurisdiction": "atlantis", "factors": {"suspectedAbduction": true}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var a priority.Assessment
	require.NoError(t, json.Unmarshal(body, &a))
	assert.True(t, a.JurisdictionFallback)
	assert.Equal(t, jurisdiction.GenericID, a.Jurisdiction)
	assert.Equal(t, priority.Medium, a.Level)
}

func TestPostAssessment_BadJSON(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := do(t, srv, http.MethodPost, "/v1/assessments", `{"factors":`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "can't decode JSON body")
}

func TestPostEscalationCheck(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := do(t, srv, http.MethodPost, "/v1/escalations/check", `{"currentLevel": 4, "hoursMissing": 50}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{
		"shouldEscalate": true,
		"newLevel": 3,
		"reason": "Auto-escalated from MINIMAL to LOW after 48 hours unresolved"
	}`, string(body))

	resp, body = do(t, srv, http.MethodPost, "/v1/escalations/check", `{"currentLevel": 0, "hoursMissing": 1000}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"shouldEscalate": false}`, string(body))

	resp, _ = do(t, srv, http.MethodPost, "/v1/escalations/check", `{"currentLevel": 2}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetPriority(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := do(t, srv, http.MethodGet, "/v1/priorities/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "P1", got["code"])
	assert.Equal(t, "HIGH", got["name"])
	assert.Equal(t, "High", got["label"])
	assert.Equal(t, "Élevé", got["labelFr"])

	for _, bad := range []string{"7", "-1", "urgent"} {
		resp, _ := do(t, srv, http.MethodGet, "/v1/priorities/"+bad, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, bad)
	}
}

func TestJurisdictions(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := do(t, srv, http.MethodGet, "/v1/jurisdictions", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []jurisdiction.Summary
	require.NoError(t, json.Unmarshal(body, &list))
	ids := make([]string, len(list))
	for i, s := range list {
		ids[i] = s.ID
	}
	assert.Subset(t, ids, []string{"generic", "ontario", "quebec", "british_columbia"})

	resp, body = do(t, srv, http.MethodGet, "/v1/jurisdictions/quebec", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var p map[string]any
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Equal(t, "fr", p["language"])
	weights, ok := p["priorityWeights"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 25, weights["age12to17"])

	resp, _ = do(t, srv, http.MethodGet, "/v1/jurisdictions/atlantis", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestValidateJurisdiction(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := do(t, srv, http.MethodPost, "/v1/jurisdictions/validate", `{"id": "Bad Id"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res jurisdiction.ValidationResult
	require.NoError(t, json.Unmarshal(body, &res))
	assert.False(t, res.Valid)
	assert.NotEmpty(t, res.Errors)
}

func TestPostCaseAssessment(t *testing.T) {
	cases := &stubCases{}
	srv := newTestServer(t, cases)

	resp, body := do(t, srv, http.MethodPost, "/v1/cases/"+knownCase+"/assessment", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var a priority.Assessment
	require.NoError(t, json.Unmarshal(body, &a))
	assert.Equal(t, "ontario", a.Jurisdiction)
	assert.Equal(t, 35, a.Score)
	assert.Equal(t, 1, cases.saved)

	resp, _ = do(t, srv, http.MethodPost, "/v1/cases/00000000-0000-0000-0000-000000000000/assessment", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = do(t, srv, http.MethodPost, "/v1/cases/not-a-uuid/assessment", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "Invalid format for parameter id")
}

func TestPostCaseAssessment_Errors(t *testing.T) {
	srv := newTestServer(t, nil)
	resp, _ := do(t, srv, http.MethodPost, "/v1/cases/"+knownCase+"/assessment", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	srv = newTestServer(t, &stubCases{saveErr: errors.New("connection refused")})
	resp, body := do(t, srv, http.MethodPost, "/v1/cases/"+knownCase+"/assessment", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, string(body), "connection refused")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	do(t, srv, http.MethodPost, "/v1/assessments", `{"factors": {"suspectedAbduction": true}}`)

	resp, body := do(t, srv, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "beacon_assessments_total")
}

func TestPostAssessment_LegacyHoursKeyIsCounted(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := do(t, srv, http.MethodPost, "/v1/assessments", `{"factors": {"hourssMissing": 50}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var a priority.Assessment
	require.NoError(t, json.Unmarshal(body, &a))
	assert.Equal(t, 20, a.Score, "the misspelled key is still scored")

	do(t, srv, http.MethodPost, "/v1/assessments", `{"factors": {"hoursMissing": 50}}`)

	_, metricsBody := do(t, srv, http.MethodGet, "/metrics", "")
	assert.Contains(t, string(metricsBody), "beacon_legacy_hours_key_total 1")
}

func TestPostAssessment_MissingFactors(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := do(t, srv, http.MethodPost, "/v1/assessments", `{"jurisdiction": "ontario"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var a priority.Assessment
	require.NoError(t, json.Unmarshal(body, &a))
	assert.Zero(t, a.Score)
	assert.Equal(t, priority.Minimal, a.Level)
}

func TestPostEscalationSweep(t *testing.T) {
	sweeper := &stubSweeper{applied: 3}
	srv := newSweepServer(t, nil, sweeper)

	resp, body := do(t, srv, http.MethodPost, "/v1/escalations/sweep", `{"batch": 10, "recheckSeconds": 60}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.JSONEq(t, `{"escalated": 3}`, string(body))
	assert.Equal(t, 10, sweeper.batch)
	assert.Equal(t, time.Minute, sweeper.recheck)

	resp, _ = do(t, srv, http.MethodPost, "/v1/escalations/sweep", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "the body is optional")
	assert.Zero(t, sweeper.batch)
}

func TestPostEscalationSweep_Errors(t *testing.T) {
	srv := newTestServer(t, nil)
	resp, _ := do(t, srv, http.MethodPost, "/v1/escalations/sweep", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	srv = newSweepServer(t, nil, &stubSweeper{err: errors.New("connection refused")})
	resp, body := do(t, srv, http.MethodPost, "/v1/escalations/sweep", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, string(body), "connection refused")
}
