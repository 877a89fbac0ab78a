package output

import (
	"bytes"
	"encoding/csv"

	"github.com/wealthpro/wealth-analytics/internal/domain"
)

// CSVSeriesExporter writes the time series behind a report: one row per SIP
// month and one row per Monte Carlo path month, plus the approximate average
// path with an empty path index.
type CSVSeriesExporter struct{}

func (c CSVSeriesExporter) Name() string { return "series-csv" }

func (c CSVSeriesExporter) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Kind", "Scenario", "Path", "Month", "Year", "Invested", "Value", "RealValue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range sortedSIP(report.SIP) {
		for _, p := range s.Result.Points {
			row := []string{
				"sip",
				s.Name,
				"",
				intToString(p.Month),
				p.Year.StringFixed(4),
				p.Invested.StringFixed(2),
				p.PortfolioValue.StringFixed(2),
				p.RealValue.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	for _, s := range sortedMonteCarlo(report.MonteCarlo) {
		for _, path := range s.Result.Paths {
			for m, v := range path.Values {
				row := []string{"monte_carlo", s.Name, intToString(path.Index), intToString(m), "", "", v.StringFixed(2), ""}
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
		}
		for m, v := range s.Result.ApproximateAveragePath {
			row := []string{"monte_carlo_average", s.Name, "", intToString(m), "", "", v.StringFixed(2), ""}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
