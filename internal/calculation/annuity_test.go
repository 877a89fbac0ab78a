package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthpro/wealth-analytics/internal/domain"
)

func TestFutureValueAnnuityDue(t *testing.T) {
	tests := []struct {
		name         string
		contribution string
		rate         string
		periods      int
	}{
		{"one year at 1% monthly", "1000", "0.01", 12},
		{"twenty years at 1% monthly", "25000", "0.01", 240},
		{"fractional monthly rate", "50000", "0.0083333333333333", 60},
		{"negative rate", "1000", "-0.005", 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FutureValueAnnuityDue(d(tt.contribution), d(tt.rate), tt.periods)
			require.NoError(t, err)
			want := annuityDueFloat(d(tt.contribution).InexactFloat64(), d(tt.rate).InexactFloat64(), tt.periods)
			assertRelClose(t, want, got, 1e-9)
		})
	}
}

func TestFutureValueAnnuityDue_SinglePeriodCompoundsOnce(t *testing.T) {
	got, err := FutureValueAnnuityDue(d("1000"), d("0.01"), 1)
	require.NoError(t, err)
	assert.True(t, got.Equal(d("1010")), "got %s", got)
}

func TestFutureValueAnnuityDue_ZeroRateIsExact(t *testing.T) {
	got, err := FutureValueAnnuityDue(d("25000"), decimal.Zero, 240)
	require.NoError(t, err)
	assert.True(t, got.Equal(d("6000000")), "got %s", got)

	got, err = FutureValueAnnuityDue(d("333.33"), decimal.Zero, 7)
	require.NoError(t, err)
	assert.True(t, got.Equal(d("333.33").Mul(decimal.NewFromInt(7))), "got %s", got)
}

func TestFutureValueAnnuityDue_ZeroPeriods(t *testing.T) {
	got, err := FutureValueAnnuityDue(d("25000"), d("0.01"), 0)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestFutureValueAnnuityDue_StrictlyIncreasingInPeriods(t *testing.T) {
	for _, rate := range []string{"0", "0.001", "0.01", "0.05"} {
		prev := decimal.Zero
		for n := 1; n <= 360; n++ {
			got, err := FutureValueAnnuityDue(d("1000"), d(rate), n)
			require.NoError(t, err)
			require.Truef(t, got.GreaterThan(prev), "rate %s: fv(%d)=%s not greater than fv(%d)=%s", rate, n, got, n-1, prev)
			prev = got
		}
	}
}

func TestFutureValueAnnuityDue_InvalidInputs(t *testing.T) {
	_, err := FutureValueAnnuityDue(d("1000"), d("0.01"), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	_, err = FutureValueAnnuityDue(d("1000"), d("-1"), 12)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestFutureValueAnnuityDue_Overflow(t *testing.T) {
	_, err := FutureValueAnnuityDue(decimal.New(1, 300), d("0.08"), 1200)
	assert.ErrorIs(t, err, domain.ErrNumericOverflow)
}
