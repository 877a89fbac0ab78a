package calculation

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthpro/wealth-analytics/internal/domain"
)

func TestDecimalFromFloat(t *testing.T) {
	v, err := DecimalFromFloat("annual_return", 12.5)
	require.NoError(t, err)
	assert.True(t, v.Equal(d("12.5")))

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := DecimalFromFloat("annual_return", bad)
		assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	}
}

func TestRequireAmount(t *testing.T) {
	assert.NoError(t, requireAmount("x", d("1e15")))
	assert.NoError(t, requireAmount("x", d("0.000000000000000001")))

	for _, bad := range []string{"0", "-1", "1000000000000000.5", "2e15", "1e2000000", "1e-19", "-1e2000000"} {
		err := requireAmount("monthly_contribution", d(bad))
		assert.ErrorIs(t, err, domain.ErrInvalidParameter, bad)
	}
}

func TestRequireScaleSkipsRescaling(t *testing.T) {
	start := time.Now()
	assert.ErrorIs(t, requireAmount("x", d("1e2000000")), domain.ErrInvalidParameter)
	assert.ErrorIs(t, requireRate("x", d("1e-2000000")), domain.ErrInvalidParameter)
	assert.ErrorIs(t, requireExemption("x", d("1e2000000")), domain.ErrInvalidParameter)
	assert.Less(t, time.Since(start), time.Second)
}

func TestValidateAssumptions(t *testing.T) {
	assert.NoError(t, ValidateAssumptions(domain.DefaultAssumptions()))
	assert.NoError(t, ValidateAssumptions(domain.Assumptions{InflationRate: d("0"), TaxRate: d("0"), TaxExemption: d("0")}))

	err := ValidateAssumptions(domain.Assumptions{InflationRate: d("6"), TaxRate: d("12.5"), TaxExemption: d("1e16")})
	var pe *domain.ParameterError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "ltcg_exemption", pe.Field)
}

func TestRequireRepresentable(t *testing.T) {
	assert.NoError(t, requireRepresentable("x", d("1e300")))
	assert.ErrorIs(t, requireRepresentable("x", d("1e400")), domain.ErrNumericOverflow)
}

func TestLTCGTax(t *testing.T) {
	taxable, tax := LTCGTax(d("225000"), d("12.5"), d("125000"))
	assert.True(t, taxable.Equal(d("100000")))
	assert.True(t, tax.Equal(d("12500")))

	taxable, tax = LTCGTax(d("-5000"), d("12.5"), d("125000"))
	assert.True(t, taxable.IsZero())
	assert.True(t, tax.IsZero())
}
