// Package diffutil renders unified diffs for debug tooling and tests —
// comparing a corpus snapshot before and after a finalizer run, or an
// expected vs. actual serialized Info in a table-driven test failure.
package diffutil

import (
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// Unified renders a unified diff of before vs. after, labeled with name. It
// is plain text; callers that want ANSI coloring use Colored instead.
func Unified(before, after, name string, context int) string {
	d := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: name + " (before)",
		ToFile:   name + " (after)",
		Context:  context,
	}
	text, err := difflib.GetUnifiedDiffString(d)
	if err != nil {
		return "(diff error: " + err.Error() + ")"
	}
	return text
}

// Colored renders the same diff as Unified with additions/deletions/hunk
// headers colored, for a terminal-attached debug CLI.
func Colored(before, after, name string, context int) string {
	text := Unified(before, after, name, context)
	lines := strings.Split(text, "\n")
	var b strings.Builder
	for i, l := range lines {
		if i == len(lines)-1 && l == "" {
			continue
		}
		switch {
		case strings.HasPrefix(l, "+"):
			b.WriteString(color.New(color.FgGreen).Sprint(l))
		case strings.HasPrefix(l, "-"):
			b.WriteString(color.New(color.FgRed).Sprint(l))
		case strings.HasPrefix(l, "@"):
			b.WriteString(color.New(color.FgCyan).Sprint(l))
		default:
			b.WriteString(l)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
