package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/oxhq/mrdocs/internal/diag"
)

// PrintDiagnostics writes every event in events to stderr, one line each,
// grouped by source location as diag.Buffer.Events already orders them.
// Severity is colored when jsonOutput is false; JSON mode emits one object
// per line instead, for tools consuming the output programmatically.
func PrintDiagnostics(events []diag.Event, jsonOutput bool) {
	for _, e := range events {
		if jsonOutput {
			fmt.Fprintln(os.Stderr, e.JSON())
			continue
		}
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", formatLocation(e.Location.File, e.Location.Line), severityLabel(e.Severity), e.Message)
	}
}

func formatLocation(file string, line int) string {
	if file == "" {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", file, line)
}

func severityLabel(s diag.Severity) string {
	switch s {
	case diag.SeverityError:
		return color.New(color.FgRed, color.Bold).Sprint("error")
	case diag.SeverityWarn:
		return color.New(color.FgYellow).Sprint("warning")
	case diag.SeverityInfo:
		return color.New(color.FgCyan).Sprint("info")
	case diag.SeverityDebug, diag.SeverityTrace:
		return color.New(color.Faint).Sprint(s.String())
	default:
		return s.String()
	}
}

// PrintFatal reports a fatal (non-diagnostic) error — a bad flag, a missing
// file, an internal invariant violation — and is always routed to stderr
// regardless of output mode.
func PrintFatal(err error, jsonOutput bool) {
	if jsonOutput {
		b, _ := json.Marshal(struct {
			Error string `json:"error"`
		}{Error: err.Error()})
		fmt.Fprintln(os.Stderr, string(b))
		return
	}
	fmt.Fprintln(os.Stderr, color.New(color.FgRed, color.Bold).Sprint("fatal:"), err)
}

// PrintSummary reports how many diagnostics were emitted at each severity,
// after a run completes.
func PrintSummary(events []diag.Event) {
	var warnings, errorsN int
	for _, e := range events {
		switch e.Severity {
		case diag.SeverityWarn:
			warnings++
		case diag.SeverityError:
			errorsN++
		}
	}
	if warnings == 0 && errorsN == 0 {
		fmt.Fprintln(os.Stderr, color.New(color.FgGreen).Sprint("finalize: no diagnostics"))
		return
	}
	fmt.Fprintf(os.Stderr, "finalize: %d warning(s), %d error(s)\n", warnings, errorsN)
}
