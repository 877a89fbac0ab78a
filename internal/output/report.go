package output

import (
	"fmt"
	"strings"

	"github.com/wealthpro/wealth-analytics/internal/domain"
)

// UnsupportedFormatError enriches ErrUnsupportedFormat with the registered names.
func UnsupportedFormatError(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Lookup resolves a format name, returning an error listing alternatives
// when it is unknown.
func Lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, UnsupportedFormatError(format)
}

// GenerateReport writes the report in the given format into dir and returns
// the written file names. "all" writes the console summary, the summary CSV,
// the series CSV and JSON.
func GenerateReport(report *domain.PlanReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range []string{"console", "csv", "series-csv", "json"} {
			file, err := WriteFormatted(GetFormatterByName(name), report, dir, ExtensionFor(name))
			if err != nil {
				return files, err
			}
			files = append(files, file)
		}
		return files, nil
	}

	f, err := Lookup(format)
	if err != nil {
		return nil, err
	}
	file, err := WriteFormatted(f, report, dir, ExtensionFor(format))
	if err != nil {
		return nil, err
	}
	return []string{file}, nil
}
