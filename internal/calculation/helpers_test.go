package calculation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// assertRelClose checks got against a float reference within a relative tolerance.
func assertRelClose(t *testing.T, want float64, got decimal.Decimal, tol float64) {
	t.Helper()
	g := got.InexactFloat64()
	if want == 0 {
		assert.InDelta(t, 0, g, tol)
		return
	}
	assert.LessOrEqualf(t, math.Abs(g-want)/math.Abs(want), tol, "want %v got %v", want, g)
}

// annuityDueFloat is an independent float64 reference for the annuity-due formula.
func annuityDueFloat(c, r float64, n int) float64 {
	if r == 0 {
		return c * float64(n)
	}
	return c * ((math.Pow(1+r, float64(n)) - 1) / r) * (1 + r)
}
