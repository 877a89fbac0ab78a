package server

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/wealthpro/wealth-analytics/internal/calculation"
	"github.com/wealthpro/wealth-analytics/internal/config"
	"github.com/wealthpro/wealth-analytics/internal/domain"
)

// Handler serves the calculators over JSON.
type Handler struct {
	engine *calculation.CalculationEngine
	parser *config.InputParser
	logger calculation.Logger
	now    func() time.Time
}

// NewHandler creates a handler running calculations on engine.
func NewHandler(engine *calculation.CalculationEngine, logger calculation.Logger) *Handler {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Handler{
		engine: engine,
		parser: config.NewInputParser(),
		logger: logger,
		now:    time.Now,
	}
}

type calculateFunc func(ctx context.Context, body []byte) (any, error)

// HandleRequest routes a request to its calculator.
func (h *Handler) HandleRequest(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	if path == "/healthz" {
		if !ctx.IsGet() && !ctx.IsHead() {
			h.writeError(ctx, fasthttp.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed")
			return
		}
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"status":"ok"}`)
		return
	}

	var calc calculateFunc
	switch path {
	case "/v1/sip":
		calc = h.sip
	case "/v1/montecarlo":
		calc = h.monteCarlo
	case "/v1/delay":
		calc = h.delay
	case "/v1/goal":
		calc = h.goal
	case "/v1/plan":
		calc = h.plan
	default:
		h.writeError(ctx, fasthttp.StatusNotFound, CodeNotFound, "Unknown path "+path)
		return
	}
	if !ctx.IsPost() {
		h.writeError(ctx, fasthttp.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed")
		return
	}

	start := h.now()
	result, err := calc(ctx, ctx.PostBody())
	if err != nil {
		h.writeCalculationError(ctx, err)
		return
	}
	elapsed := h.now().Sub(start)

	h.writeJSON(ctx, fasthttp.StatusOK, CalculationResponse{
		CalculationID: uuid.New().String(),
		StartedAt:     start.UTC().Format(time.RFC3339),
		DurationMs:    elapsed.Milliseconds(),
		Result:        result,
	})
	h.logger.Debugf("%s completed in %s", path, elapsed)
}

func (h *Handler) sip(_ context.Context, body []byte) (any, error) {
	var in domain.SIPInput
	if err := decode(body, &in); err != nil {
		return nil, err
	}
	return calculation.ProjectSIP(in)
}

func (h *Handler) monteCarlo(ctx context.Context, body []byte) (any, error) {
	var in domain.MonteCarloInput
	if err := decode(body, &in); err != nil {
		return nil, err
	}
	return h.engine.RunMonteCarlo(ctx, in, in.Seed)
}

func (h *Handler) delay(_ context.Context, body []byte) (any, error) {
	var in domain.DelayInput
	if err := decode(body, &in); err != nil {
		return nil, err
	}
	return calculation.ComputeDelayCost(in)
}

func (h *Handler) goal(_ context.Context, body []byte) (any, error) {
	var in domain.GoalInput
	if err := decode(body, &in); err != nil {
		return nil, err
	}
	return calculation.ComputeGoalGap(in)
}

func (h *Handler) plan(ctx context.Context, body []byte) (any, error) {
	var plan domain.Configuration
	if err := decode(body, &plan); err != nil {
		return nil, err
	}
	if err := h.parser.ValidateConfiguration(&plan); err != nil {
		return nil, err
	}
	return h.engine.RunPlan(ctx, &plan)
}

var errEmptyBody = errors.New("empty body")

// malformedError marks a body that could not be decoded.
type malformedError struct{ err error }

func (e *malformedError) Error() string { return "Invalid request body: " + e.err.Error() }
func (e *malformedError) Unwrap() error { return e.err }

func decode(body []byte, v any) error {
	if len(body) == 0 {
		return &malformedError{err: errEmptyBody}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &malformedError{err: err}
	}
	return nil
}

// StatusFor maps an error to its HTTP status and code.
func StatusFor(err error) (int, domain.Code) {
	var malformed *malformedError
	if errors.As(err, &malformed) {
		return fasthttp.StatusBadRequest, CodeMalformedRequest
	}
	code := domain.CodeOf(err)
	switch code {
	case domain.CodeInvalidParameter:
		return fasthttp.StatusBadRequest, code
	case domain.CodeNumericOverflow:
		return fasthttp.StatusUnprocessableEntity, code
	default:
		return fasthttp.StatusInternalServerError, code
	}
}

func (h *Handler) writeCalculationError(ctx *fasthttp.RequestCtx, err error) {
	status, code := StatusFor(err)
	if status >= fasthttp.StatusInternalServerError {
		h.logger.Errorf("%s failed: %v", ctx.Path(), err)
	} else {
		h.logger.Debugf("%s rejected: %v", ctx.Path(), err)
	}
	h.writeError(ctx, status, code, err.Error())
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, status int, code domain.Code, message string) {
	h.writeJSON(ctx, status, ErrorResponse{Status: status, Code: code, Message: message})
}

func (h *Handler) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		h.logger.Errorf("encode response: %v", err)
		ctx.Error(`{"status":500,"code":"UNKNOWN","message":"encode response"}`, fasthttp.StatusInternalServerError)
		ctx.SetContentType("application/json")
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
