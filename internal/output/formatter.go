package output

import (
	"fmt"
	"os"
	"sort"
	"time"
)

// Formatter renders a report into a specific output format
type Formatter interface {
	Format(report *Report) ([]byte, error)
	Name() string
}

// FormatterFunc adapts a plain function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(report *Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report *Report) ([]byte, error) { return f.F(report) }

var formatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{Pretty: true},
	CSVFormatter{},
	MarkdownFormatter{},
	HTMLFormatter{},
	XLSXFormatter{},
}

var formatAliases = map[string]string{
	"text":  "console",
	"table": "console",
	"md":    "markdown",
	"excel": "xlsx",
}

// AvailableFormatterNames lists the canonical formatter names
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists alternative names accepted by GetFormatterByName
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for alias := range formatAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// GetFormatterByName resolves a formatter by name or alias; nil if unknown
func GetFormatterByName(name string) Formatter {
	if canonical, ok := formatAliases[name]; ok {
		name = canonical
	}
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// WriteFormatted renders the report and writes it to a timestamped file in the working directory
func WriteFormatted(f Formatter, report *Report, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("nac_tco_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
