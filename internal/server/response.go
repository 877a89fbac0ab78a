package server

import "github.com/wealthpro/wealth-analytics/internal/domain"

// CalculationResponse wraps every successful calculation.
type CalculationResponse struct {
	CalculationID string `json:"calculation_id"`
	StartedAt     string `json:"started_at"`
	DurationMs    int64  `json:"duration_ms"`
	Result        any    `json:"result"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Status  int         `json:"status"`
	Code    domain.Code `json:"code"`
	Message string      `json:"message"`
}

// Codes for failures outside the calculation error taxonomy.
const (
	CodeMalformedRequest domain.Code = "MALFORMED_REQUEST"
	CodeMethodNotAllowed domain.Code = "METHOD_NOT_ALLOWED"
	CodeNotFound         domain.Code = "NOT_FOUND"
)
