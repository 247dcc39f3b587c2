package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bytesift/bytesift/internal/patterns"
	"github.com/bytesift/bytesift/internal/types"
)

// PrintOptions controls human-readable rendering.
type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
}

var (
	styleSensitive = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleType      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleIssue     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleDim       = lipgloss.NewStyle().Faint(true)
)

// PrintAnalysis renders one analysis report for terminals. Sensitive matched
// text is masked; the full value is only available in the structured output.
func PrintAnalysis(w io.Writer, rep types.Report, opts PrintOptions) {
	fmt.Fprintf(w, "%s: %d patterns\n", rep.Path, rep.TotalPatterns)
	for _, m := range rep.Matches {
		label := string(m.Type)
		text := m.MatchedText
		if patterns.Sensitive(label) {
			text = maskValue(text)
			if !opts.NoColor {
				label = styleSensitive.Render(label)
			}
		} else if !opts.NoColor {
			label = styleType.Render(label)
		}
		fmt.Fprintf(w, "  %-20s @%-8d conf=%.2f  %s\n", label, m.Start, m.Confidence, text)
	}
	for _, issue := range rep.Issues {
		if opts.NoColor {
			fmt.Fprintf(w, "  issue: %s\n", issue)
		} else {
			fmt.Fprintf(w, "  %s\n", styleIssue.Render("issue: "+issue))
		}
	}
	st := rep.Statistics
	stats := fmt.Sprintf("  %d lines, %d words, %d bytes, entropy %.2f",
		st.Lines, st.Words, st.Bytes, st.Entropy)
	if opts.NoColor {
		fmt.Fprintln(w, stats)
	} else {
		fmt.Fprintln(w, styleDim.Render(stats))
	}
}

// PrintMetrics renders one metrics row in wc column order.
func PrintMetrics(w io.Writer, path string, m types.TextMetrics) {
	fmt.Fprintf(w, "%8d %8d %8d %s\n", m.Lines, m.Words, m.Bytes, path)
}

// PrintClassification renders one classification row.
func PrintClassification(w io.Writer, cls types.FileClassification, opts PrintOptions) {
	kind := "text"
	if cls.IsBinary {
		kind = "binary"
	}
	lang := cls.Language
	if lang == "" {
		lang = "-"
	}
	fmt.Fprintf(w, "%-24s %-18s %-10s %-10s %-6s conf=%.2f\n",
		cls.Path, cls.FileType, lang, cls.Encoding, kind, cls.Confidence)
}

// PrintSummary writes the footer with batch statistics.
func PrintSummary(w io.Writer, opts PrintOptions, errs int) {
	if opts.Duration <= 0 && opts.FilesScanned <= 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	if errs > 0 {
		fmt.Fprintf(w, "Errors: %d\n", errs)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Duration: %.2fs\n", opts.Duration.Seconds())
	}
}

func maskValue(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "…" + s[len(s)-4:]
}
