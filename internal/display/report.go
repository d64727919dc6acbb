package display

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/core/tui/theme"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/quotefix/config"
	"github.com/grovetools/quotefix/internal/normalizer"
	"github.com/grovetools/quotefix/internal/quotes"
)

// QuoteCount is one row of a report.
type QuoteCount struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Char        string `json:"char" yaml:"char" toml:"char"`
	Replacement string `json:"replacement" yaml:"replacement" toml:"replacement"`
	Count       int    `json:"count" yaml:"count" toml:"count"`
}

// Report is the serializable form of a normalizer.Result.
type Report struct {
	Path        string       `json:"path" yaml:"path" toml:"path"`
	Total       int          `json:"total" yaml:"total" toml:"total"`
	Written     bool         `json:"written" yaml:"written" toml:"written"`
	BytesBefore int          `json:"bytesBefore" yaml:"bytes_before" toml:"bytes_before"`
	BytesAfter  int          `json:"bytesAfter" yaml:"bytes_after" toml:"bytes_after"`
	Quotes      []QuoteCount `json:"quotes" yaml:"quotes" toml:"quotes"`
}

// NewReport builds a Report from res, in substitution table order.
func NewReport(res *normalizer.Result, showZero bool) Report {
	r := Report{
		Path:        res.Path,
		Total:       res.Counts.Total(),
		Written:     res.Written,
		BytesBefore: res.BytesBefore,
		BytesAfter:  res.BytesAfter,
		Quotes:      []QuoteCount{},
	}
	for _, s := range quotes.Table() {
		n := res.Counts[s.From]
		if n == 0 && !showZero {
			continue
		}
		r.Quotes = append(r.Quotes, QuoteCount{
			Name:        s.Name,
			Char:        string(s.From),
			Replacement: string(s.To),
			Count:       n,
		})
	}
	return r
}

// Render writes the report to w in the given format.
func Render(w io.Writer, r Report, format string) error {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to marshal report to YAML: %w", err)
		}
		return enc.Close()
	case config.FormatTOML:
		if err := toml.NewEncoder(w).Encode(r); err != nil {
			return fmt.Errorf("failed to marshal report to TOML: %w", err)
		}
		return nil
	case config.FormatTable, "":
		PrintTable(w, r)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// PrintTable prints the report as a formatted table.
func PrintTable(writer io.Writer, r Report) {
	mutedStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.MutedText)
	cleanStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.Green)
	dirtyStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.Yellow)

	if r.Total == 0 {
		fmt.Fprintf(writer, "%s %s\n", cleanStyle.Render("No smart quotes in"), r.Path)
		return
	}

	fmt.Fprintf(writer, "%s %s\n\n", dirtyStyle.Render(fmt.Sprintf("%d smart quotes in", r.Total)), r.Path)

	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "QUOTE\tCHAR\tREPLACEMENT\tCOUNT")
	for _, q := range r.Quotes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", q.Name, q.Char, q.Replacement, q.Count)
	}
	w.Flush()

	fmt.Fprintln(writer, mutedStyle.Render(fmt.Sprintf("\n%d bytes -> %d bytes", r.BytesBefore, r.BytesAfter)))
}
