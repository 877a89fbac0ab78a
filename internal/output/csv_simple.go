package output

import (
	"bytes"
	"encoding/csv"

	"github.com/wealthpro/wealth-analytics/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per scenario).
// Columns that do not apply to a scenario kind are left empty.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

var summaryHeader = []string{
	"Kind", "Scenario", "Invested", "FinalValue", "RealFinalValue", "TaxAmount", "PostTaxValue",
	"WealthMultiplier", "Min", "Median", "Max", "CorpusNow", "CorpusDelayed", "Loss",
	"FutureCost", "FutureSavings", "Gap", "Affordable",
}

func (c CSVSummarizer) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(summaryHeader); err != nil {
		return nil, err
	}
	row := func(kind, name string, cols map[string]string) []string {
		out := make([]string, len(summaryHeader))
		out[0], out[1] = kind, name
		for i, h := range summaryHeader[2:] {
			out[i+2] = cols[h]
		}
		return out
	}

	var rows [][]string
	for _, s := range sortedSIP(report.SIP) {
		r := s.Result
		rows = append(rows, row("sip", s.Name, map[string]string{
			"Invested":         r.FinalInvested.StringFixed(2),
			"FinalValue":       r.FinalValue.StringFixed(2),
			"RealFinalValue":   r.RealFinalValue.StringFixed(2),
			"TaxAmount":        r.TaxAmount.StringFixed(2),
			"PostTaxValue":     r.PostTaxValue.StringFixed(2),
			"WealthMultiplier": r.WealthMultiplier.StringFixed(4),
		}))
	}
	for _, s := range sortedMonteCarlo(report.MonteCarlo) {
		r := s.Result
		rows = append(rows, row("monte_carlo", s.Name, map[string]string{
			"Min":    r.Summary.Min.StringFixed(2),
			"Median": r.Summary.Median.StringFixed(2),
			"Max":    r.Summary.Max.StringFixed(2),
		}))
	}
	for _, s := range sortedDelay(report.Delay) {
		r := s.Result
		rows = append(rows, row("delay", s.Name, map[string]string{
			"CorpusNow":     r.CorpusNow.StringFixed(2),
			"CorpusDelayed": r.CorpusDelayed.StringFixed(2),
			"Loss":          r.Loss.StringFixed(2),
		}))
	}
	for _, s := range sortedGoals(report.Goals) {
		r := s.Result
		rows = append(rows, row("goal", s.Name, map[string]string{
			"FutureCost":    r.FutureCost.StringFixed(2),
			"FutureSavings": r.FutureSavings.StringFixed(2),
			"Gap":           r.Gap.StringFixed(2),
			"Affordable":    boolToString(r.Affordable),
		}))
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
