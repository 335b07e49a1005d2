package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxhq/mrdocs/internal/diag"
	"github.com/oxhq/mrdocs/internal/info"
)

func TestFormatLocationUnknownWhenNoFile(t *testing.T) {
	assert.Equal(t, "<unknown>", formatLocation("", 0))
}

func TestFormatLocationIncludesLine(t *testing.T) {
	assert.Equal(t, "a.hpp:12", formatLocation("a.hpp", 12))
}

func TestPrintDiagnosticsDoesNotPanic(t *testing.T) {
	events := []diag.Event{
		diag.Warnf(diag.CodeUndocumented, info.SourceLocation{File: "a.hpp", Line: 1}, "Widget", "undocumented"),
		diag.Errorf(diag.CodeInternalInvariantViolation, info.SourceLocation{}, "x", "boom"),
	}
	assert.NotPanics(t, func() { PrintDiagnostics(events, false) })
	assert.NotPanics(t, func() { PrintDiagnostics(events, true) })
}

func TestPrintSummaryDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() { PrintSummary(nil) })
	assert.NotPanics(t, func() {
		PrintSummary([]diag.Event{diag.Warnf(diag.CodeUndocumented, info.SourceLocation{}, "x", "y")})
	})
}

func TestPrintFatalDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() { PrintFatal(assertError{}, false) })
	assert.NotPanics(t, func() { PrintFatal(assertError{}, true) })
}

type assertError struct{}

func (assertError) Error() string { return "boom" }
