package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthpro/wealth-analytics/internal/domain"
)

func goalInput(savings string) domain.GoalInput {
	return domain.GoalInput{
		Name:            "car",
		Item:            "Tesla Model 3",
		CurrentCost:     d("4000000"),
		YearsToPurchase: 5,
		ItemInflation:   d("5"),
		MonthlySavings:  d(savings),
		ExpectedReturn:  d("10"),
	}
}

func TestComputeGoalGap_FutureCost(t *testing.T) {
	res, err := ComputeGoalGap(goalInput("50000"))
	require.NoError(t, err)
	// 4,000,000 * 1.05^5 = 4,000,000 * 1.2762815625
	assert.True(t, res.FutureCost.Equal(d("5105126.25")), "got %s", res.FutureCost)
	assert.Equal(t, "Tesla Model 3", res.Item)
}

func TestComputeGoalGap_Shortfall(t *testing.T) {
	res, err := ComputeGoalGap(goalInput("50000"))
	require.NoError(t, err)

	assertRelClose(t, annuityDueFloat(50000, 0.10/12, 60), res.FutureSavings, 1e-9)
	assert.True(t, res.Gap.Equal(res.FutureSavings.Sub(res.FutureCost)))
	assert.False(t, res.Affordable)
	assert.True(t, res.Gap.IsNegative())
	assert.True(t, res.Shortfall.Equal(res.Gap.Neg()))
}

func TestComputeGoalGap_Affordable(t *testing.T) {
	res, err := ComputeGoalGap(goalInput("100000"))
	require.NoError(t, err)
	assert.True(t, res.Affordable)
	assert.False(t, res.Gap.IsNegative())
	assert.True(t, res.Shortfall.IsZero())
}

func TestComputeGoalGap_AffordabilityMatchesGapSign(t *testing.T) {
	for _, savings := range []string{"10000", "60000", "65000", "70000", "150000"} {
		res, err := ComputeGoalGap(goalInput(savings))
		require.NoError(t, err)
		assert.Equal(t, !res.Gap.IsNegative(), res.Affordable, "savings %s", savings)
	}
}

func TestComputeGoalGap_ZeroReturn(t *testing.T) {
	in := goalInput("50000")
	in.ExpectedReturn = d("0")
	res, err := ComputeGoalGap(in)
	require.NoError(t, err)
	assert.True(t, res.FutureSavings.Equal(d("3000000")))
}

func TestComputeGoalGap_InvalidInputs(t *testing.T) {
	tests := map[string]func(*domain.GoalInput){
		"zero cost":    func(in *domain.GoalInput) { in.CurrentCost = d("0") },
		"zero years":   func(in *domain.GoalInput) { in.YearsToPurchase = 0 },
		"zero savings": func(in *domain.GoalInput) { in.MonthlySavings = d("0") },
		"huge return":  func(in *domain.GoalInput) { in.ExpectedReturn = d("1000") },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			in := goalInput("50000")
			mutate(&in)
			_, err := ComputeGoalGap(in)
			assert.ErrorIs(t, err, domain.ErrInvalidParameter)
		})
	}
}
