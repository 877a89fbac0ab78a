package output

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/wealthpro/wealth-analytics/internal/domain"
)

// Highlights picks the headline numbers of a plan.
type Highlights struct {
	BestSIP           string
	BestSIPMultiplier decimal.Decimal
	CostliestDelay    string
	CostliestLoss     decimal.Decimal
	GoalsAffordable   int
	GoalsTotal        int
	ShortfallGoals    []string
}

// AnalyzePlan returns the SIP with the highest wealth multiplier, the delay
// with the largest loss and the goals that cannot be met.
// Ties resolve to the alphabetically first scenario name.
func AnalyzePlan(report *domain.PlanReport) Highlights {
	var h Highlights

	sips := append([]domain.SIPScenario(nil), report.SIP...)
	sort.Slice(sips, func(i, j int) bool { return sips[i].Name < sips[j].Name })
	for _, s := range sips {
		if h.BestSIP == "" || s.Result.WealthMultiplier.GreaterThan(h.BestSIPMultiplier) {
			h.BestSIP = s.Name
			h.BestSIPMultiplier = s.Result.WealthMultiplier
		}
	}

	delays := append([]domain.DelayScenario(nil), report.Delay...)
	sort.Slice(delays, func(i, j int) bool { return delays[i].Name < delays[j].Name })
	for _, d := range delays {
		if h.CostliestDelay == "" || d.Result.Loss.GreaterThan(h.CostliestLoss) {
			h.CostliestDelay = d.Name
			h.CostliestLoss = d.Result.Loss
		}
	}

	for _, g := range report.Goals {
		h.GoalsTotal++
		if g.Result.Affordable {
			h.GoalsAffordable++
			continue
		}
		h.ShortfallGoals = append(h.ShortfallGoals, g.Name)
	}
	sort.Strings(h.ShortfallGoals)
	return h
}
