package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/wealthpro/wealth-analytics/internal/domain"
)

// ErrUnsupportedFormat is returned when a report format name is not registered.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.PlanReport) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// currencyFormatter is implemented by formatters that print a currency symbol.
type currencyFormatter interface {
	WithCurrency(symbol string) Formatter
}

// WithCurrency returns f configured to print symbol, or f unchanged when it
// prints plain numbers.
func WithCurrency(f Formatter, symbol string) Formatter {
	if cf, ok := f.(currencyFormatter); ok && symbol != "" {
		return cf.WithCurrency(symbol)
	}
	return f
}

// WriteFormatted runs a formatter and writes output to a file in dir named
// after the formatter and the report timestamp.
func WriteFormatted(f Formatter, report *domain.PlanReport, dir, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	stamp := report.GeneratedAt
	if stamp.IsZero() {
		stamp = time.Now()
	}
	name := strings.ReplaceAll(f.Name(), "-", "_")
	filename := filepath.Join(dir, fmt.Sprintf("wealth_%s_%s.%s", name, stamp.Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	ConsoleVerboseFormatter{},
	CSVSummarizer{},
	CSVSeriesExporter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":         "console",
	"verbose":      "console-verbose",
	"detailed":     "console-verbose",
	"csv-summary":  "csv",
	"summary-csv":  "csv",
	"csv-series":   "series-csv",
	"detailed-csv": "series-csv",
	"json-pretty":  "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// ExtensionFor returns the file extension used when writing a format to disk.
func ExtensionFor(name string) string {
	n := NormalizeFormatName(name)
	switch {
	case n == "json":
		return "json"
	case strings.Contains(n, "csv"):
		return "csv"
	default:
		return "txt"
	}
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
