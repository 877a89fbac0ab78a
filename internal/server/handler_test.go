package server

import (
	"net"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/wealthpro/wealth-analytics/internal/calculation"
	"github.com/wealthpro/wealth-analytics/internal/config"
	"github.com/wealthpro/wealth-analytics/internal/domain"
)

func newTestHandler() *Handler {
	return NewHandler(calculation.NewCalculationEngine(), nil)
}

func doRequest(h *Handler, method, path, body string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(path)
	req.SetBodyString(body)

	var ctx fasthttp.RequestCtx
	ctx.Init(&req, nil, nil)
	h.HandleRequest(&ctx)
	return &ctx
}

func decodeResult(t *testing.T, ctx *fasthttp.RequestCtx, result any) CalculationResponse {
	t.Helper()
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

	var envelope struct {
		CalculationID string          `json:"calculation_id"`
		StartedAt     string          `json:"started_at"`
		DurationMs    int64           `json:"duration_ms"`
		Result        json.RawMessage `json:"result"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Result, result))
	return CalculationResponse{
		CalculationID: envelope.CalculationID,
		StartedAt:     envelope.StartedAt,
		DurationMs:    envelope.DurationMs,
	}
}

func decodeError(t *testing.T, ctx *fasthttp.RequestCtx) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, ctx.Response.StatusCode(), resp.Status)
	return resp
}

func TestHandleSIP(t *testing.T) {
	ctx := doRequest(newTestHandler(), "POST", "/v1/sip",
		`{"monthly_contribution": 10000, "annual_return": 12, "years": 20}`)

	var res domain.SIPResult
	meta := decodeResult(t, ctx, &res)
	assert.Len(t, meta.CalculationID, 36)
	assert.NotEmpty(t, meta.StartedAt)
	require.Len(t, res.Points, 240)
	assert.True(t, res.FinalInvested.Equal(decimal.NewFromInt(2_400_000)))
	assert.True(t, res.FinalValue.GreaterThan(res.FinalInvested))
}

func TestHandleMonteCarloSeedReproducible(t *testing.T) {
	h := newTestHandler()
	body := `{"years": 5, "monthly_contribution": 1000, "average_return": 12, "volatility": 15, "seed": 99}`

	var first, second domain.MonteCarloResult
	decodeResult(t, doRequest(h, "POST", "/v1/montecarlo", body), &first)
	decodeResult(t, doRequest(h, "POST", "/v1/montecarlo", body), &second)

	assert.Equal(t, int64(99), first.Seed)
	require.Len(t, first.Paths, calculation.DefaultSimulations)
	assert.True(t, first.Summary.Median.Equal(second.Summary.Median))
	assert.True(t, first.Paths[7].Terminal.Equal(second.Paths[7].Terminal))
}

func TestHandleDelayAndGoal(t *testing.T) {
	h := newTestHandler()

	var delay domain.DelayComparison
	decodeResult(t, doRequest(h, "POST", "/v1/delay",
		`{"monthly_contribution": 10000, "annual_return": 12, "duration_years": 20, "delay_years": 5}`), &delay)
	assert.True(t, delay.Loss.IsPositive())
	assert.True(t, delay.CorpusNow.Sub(delay.CorpusDelayed).Equal(delay.Loss))

	var goal domain.GoalResult
	decodeResult(t, doRequest(h, "POST", "/v1/goal",
		`{"item": "Car", "current_cost": 1000000, "years_to_purchase": 1, "item_inflation": 0, "monthly_savings": 1, "expected_return": 0}`), &goal)
	assert.False(t, goal.Affordable)
	assert.True(t, goal.FutureSavings.Equal(decimal.NewFromInt(12)))
}

func TestHandlePlan(t *testing.T) {
	example := config.NewInputParser().CreateExampleConfiguration()
	body, err := json.Marshal(example)
	require.NoError(t, err)

	var report domain.PlanReport
	decodeResult(t, doRequest(newTestHandler(), "POST", "/v1/plan", string(body)), &report)
	assert.Equal(t, example.Seed, report.Seed)
	require.Len(t, report.SIP, 1)
	require.Len(t, report.MonteCarlo, 1)
	assert.Equal(t, example.Seed, report.MonteCarlo[0].Result.Seed)
	require.Len(t, report.Goals, 1)
}

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   domain.Code
	}{
		{"malformed json", "POST", "/v1/sip", `{"years": `, 400, CodeMalformedRequest},
		{"empty body", "POST", "/v1/goal", ``, 400, CodeMalformedRequest},
		{"invalid parameter", "POST", "/v1/sip", `{"monthly_contribution": -5, "annual_return": 12, "years": 20}`, 400, domain.CodeInvalidParameter},
		{"negative volatility", "POST", "/v1/montecarlo", `{"years": 5, "monthly_contribution": 100, "average_return": 12, "volatility": -1}`, 400, domain.CodeInvalidParameter},
		{"delay not shorter than duration", "POST", "/v1/delay", `{"monthly_contribution": 100, "annual_return": 12, "duration_years": 5, "delay_years": 5}`, 400, domain.CodeInvalidParameter},
		{"empty plan", "POST", "/v1/plan", `{}`, 400, domain.CodeInvalidParameter},
		{"cost above cap", "POST", "/v1/goal", `{"current_cost": 1e300, "years_to_purchase": 100, "item_inflation": 100, "monthly_savings": 1, "expected_return": 10}`, 400, domain.CodeInvalidParameter},
		{"wrong method", "GET", "/v1/sip", ``, 405, CodeMethodNotAllowed},
		{"unknown path", "POST", "/v2/sip", `{}`, 404, CodeNotFound},
	}
	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := doRequest(h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, ctx.Response.StatusCode())
			resp := decodeError(t, ctx)
			assert.Equal(t, tt.code, resp.Code)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestHugeExponentRejectedUpFront(t *testing.T) {
	h := newTestHandler()
	start := time.Now()
	ctx := doRequest(h, "POST", "/v1/sip", `{"monthly_contribution":1e2000000,"annual_return":12,"years":3}`)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	assert.Equal(t, domain.CodeInvalidParameter, decodeError(t, ctx).Code)
}

func TestStatusFor(t *testing.T) {
	status, code := StatusFor(domain.Overflow("future cost"))
	assert.Equal(t, fasthttp.StatusUnprocessableEntity, status)
	assert.Equal(t, domain.CodeNumericOverflow, code)

	status, code = StatusFor(assert.AnError)
	assert.Equal(t, fasthttp.StatusInternalServerError, status)
	assert.Equal(t, domain.CodeUnknown, code)
}

func TestHealthz(t *testing.T) {
	h := newTestHandler()
	ctx := doRequest(h, "GET", "/healthz", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"status":"ok"}`, string(ctx.Response.Body()))

	ctx = doRequest(h, "POST", "/healthz", "")
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestServerInMemory(t *testing.T) {
	cfg, err := config.LoadServerConfig(config.DefaultSettings())
	require.NoError(t, err)

	ln := fasthttputil.NewInmemoryListener()
	srv := New(cfg, calculation.NopLogger{})
	go srv.Serve(ln)     //nolint:errcheck
	defer srv.Shutdown() //nolint:errcheck

	client := &fasthttp.Client{Dial: func(string) (net.Conn, error) { return ln.Dial() }}
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI("http://wealthcalc/v1/delay")
	req.Header.SetMethod("POST")
	req.SetBodyString(`{"monthly_contribution": 25000, "annual_return": 12, "duration_years": 20, "delay_years": 5}`)
	require.NoError(t, client.DoTimeout(req, resp, 5*time.Second))
	assert.Equal(t, fasthttp.StatusOK, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), `"calculation_id"`)
	assert.Equal(t, "wealthcalc", string(resp.Header.Server()))
}
