package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/wealthpro/wealth-analytics/internal/domain"
)

// MonteCarloCSVReport generates CSV exports for a single Monte Carlo run
type MonteCarloCSVReport struct {
	Input  domain.MonteCarloInput
	Result *domain.MonteCarloResult
}

func writeCSVFile(outputPath string, rows [][]string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(outputPath), err)
	}
	return nil
}

// GenerateSummaryCSV creates a summary CSV with aggregate statistics
func (m *MonteCarloCSVReport) GenerateSummaryCSV(outputPath string) error {
	r := m.Result
	return writeCSVFile(outputPath, [][]string{
		{"Metric", "Value", "Description"},
		{"Worst Case", r.Summary.Min.StringFixed(2), "Lowest terminal value across simulations"},
		{"Median Case", r.Summary.Median.StringFixed(2), "Median terminal value"},
		{"Best Case", r.Summary.Max.StringFixed(2), "Highest terminal value across simulations"},
		{"Average Return", FormatPercentage(m.Input.AverageReturn), "Expected annual return"},
		{"Volatility", FormatPercentage(m.Input.Volatility), "Annual standard deviation of returns"},
		{"Monthly Contribution", m.Input.MonthlyContribution.StringFixed(2), "Contribution added every month"},
		{"Number of Simulations", strconv.Itoa(r.NumSimulations), "Total number of simulations run"},
		{"Months", strconv.Itoa(r.Months), "Simulated horizon"},
		{"Seed", int64ToString(r.Seed), "Seed that reproduces this run"},
	})
}

// GenerateDetailedCSV creates a detailed CSV with one row per simulation
func (m *MonteCarloCSVReport) GenerateDetailedCSV(outputPath string) error {
	rows := [][]string{{"SimulationID", "Terminal", "BelowMedian"}}
	for _, p := range m.Result.Paths {
		rows = append(rows, []string{
			strconv.Itoa(p.Index),
			p.Terminal.StringFixed(2),
			strconv.FormatBool(p.Terminal.LessThan(m.Result.Summary.Median)),
		})
	}
	return writeCSVFile(outputPath, rows)
}

// GeneratePercentileCSV creates a CSV with the percentile bands
func (m *MonteCarloCSVReport) GeneratePercentileCSV(outputPath string) error {
	p := m.Result.Percentiles
	return writeCSVFile(outputPath, [][]string{
		{"Percentile", "Terminal", "Interpretation"},
		{"10th", p.P10.StringFixed(2), "Worst 10% of scenarios"},
		{"25th", p.P25.StringFixed(2), "Below average scenarios"},
		{"50th (Median)", p.P50.StringFixed(2), "Typical scenario"},
		{"75th", p.P75.StringFixed(2), "Above average scenarios"},
		{"90th", p.P90.StringFixed(2), "Best 10% of scenarios"},
	})
}

// GeneratePathsCSV writes the full month-by-month value of every path, one
// column per simulation, followed by the approximate average path.
func (m *MonteCarloCSVReport) GeneratePathsCSV(outputPath string) error {
	header := []string{"Month"}
	for _, p := range m.Result.Paths {
		header = append(header, "Sim"+strconv.Itoa(p.Index))
	}
	header = append(header, "ApproximateAverage")
	rows := [][]string{header}
	for month := 0; month <= m.Result.Months; month++ {
		row := []string{strconv.Itoa(month)}
		for _, p := range m.Result.Paths {
			row = append(row, p.Values[month].StringFixed(2))
		}
		avg := ""
		if month < len(m.Result.ApproximateAveragePath) {
			avg = m.Result.ApproximateAveragePath[month].StringFixed(2)
		}
		rows = append(rows, append(row, avg))
	}
	return writeCSVFile(outputPath, rows)
}

// GenerateAllCSVReports creates all CSV reports in a single directory and
// returns the written paths.
func (m *MonteCarloCSVReport) GenerateAllCSVReports(outputDir string) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	steps := []struct {
		file string
		gen  func(string) error
	}{
		{"monte_carlo_summary.csv", m.GenerateSummaryCSV},
		{"monte_carlo_detailed.csv", m.GenerateDetailedCSV},
		{"monte_carlo_percentiles.csv", m.GeneratePercentileCSV},
		{"monte_carlo_paths.csv", m.GeneratePathsCSV},
	}
	var written []string
	for _, s := range steps {
		path := filepath.Join(outputDir, s.file)
		if err := s.gen(path); err != nil {
			return written, fmt.Errorf("failed to generate %s: %w", s.file, err)
		}
		written = append(written, path)
	}
	return written, nil
}
