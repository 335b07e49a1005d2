// Package diag defines the diagnostic events the finalizer pipeline emits,
// and the buffer that deduplicates and promotes them per configuration.
package diag

import (
	"encoding/json"
	"fmt"

	"github.com/oxhq/mrdocs/internal/info"
)

// Severity is the diagnostic's level, mirroring a trace/debug/info/warn/error
// scale. Only Warn and Error participate in exit-code decisions; Trace/
// Debug/Info exist so the pipeline can surface progress without forcing
// every caller through a separate logging path.
type Severity int

const (
	SeverityTrace Severity = iota
	SeverityDebug
	SeverityInfo
	SeverityWarn
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityTrace:
		return "trace"
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Code enumerates the diagnostic kinds the finalizer pipeline can produce.
type Code string

const (
	CodeParseFailure              Code = "parse-failure"
	CodeSymbolNotFound            Code = "symbol-not-found"
	CodeAmbiguousReference        Code = "ambiguous-reference"
	CodeDocCopyMissingSource      Code = "doc-copy-missing-source"
	CodeDocCopyTargetUndocumented Code = "doc-copy-target-undocumented"
	CodeInternalInvariantViolation Code = "internal-invariant-violation"

	CodeUndocumented           Code = "undocumented"
	CodeDocParamNotFound       Code = "doc-param-not-found"
	CodeDuplicateParamDoc      Code = "duplicate-param-doc"
	CodeMissingParamDoc        Code = "missing-param-doc"
	CodeUndocumentedReturn     Code = "undocumented-return"
	CodeUndocumentedEnumValue  Code = "undocumented-enum-value"
	CodeUnnamedParameter       Code = "unnamed-parameter"
)

// Event is one diagnostic instance, uniform across human and JSON output.
type Event struct {
	Severity Severity  `json:"severity"`
	Code     Code      `json:"code"`
	Subject  symbolKey `json:"subject,omitempty"`
	Location info.SourceLocation `json:"location"`
	Message  string    `json:"message"`
}

// symbolKey is a loosely-typed subject identifier (a name or id string); it
// stays a plain string so Event stays trivially JSON-serializable without
// importing the corpus package.
type symbolKey = string

func (e Event) Error() string {
	return e.Message
}

func (e Event) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// dedupKey identifies diagnostics that should collapse into one emission:
// same code, same subject, same location.
type dedupKey struct {
	code     Code
	subject  string
	location info.SourceLocation
}

// Buffer collects diagnostics during a pipeline run, deduplicating by
// (code, subject, location) and grouping by location on flush.
type Buffer struct {
	events []Event
	seen   map[dedupKey]bool
}

// NewBuffer returns an empty diagnostic buffer.
func NewBuffer() *Buffer {
	return &Buffer{seen: make(map[dedupKey]bool)}
}

// Emit records an event unless an identical (code, subject, location)
// triple was already recorded. Returns true if the event was newly recorded.
func (b *Buffer) Emit(e Event) bool {
	key := dedupKey{code: e.Code, subject: e.Subject, location: e.Location}
	if b.seen[key] {
		return false
	}
	b.seen[key] = true
	b.events = append(b.events, e)
	return true
}

// Events returns every recorded event, grouped by source location (stable
// within each location's group, in emission order).
func (b *Buffer) Events() []Event {
	byLoc := make(map[info.SourceLocation][]Event)
	var order []info.SourceLocation
	for _, e := range b.events {
		if _, ok := byLoc[e.Location]; !ok {
			order = append(order, e.Location)
		}
		byLoc[e.Location] = append(byLoc[e.Location], e)
	}
	out := make([]Event, 0, len(b.events))
	for _, loc := range order {
		out = append(out, byLoc[loc]...)
	}
	return out
}

// HasErrors reports whether any recorded event is at Error severity, or at
// Warn severity with warnAsError set — the exit-code decision the host tool
// makes after a run.
func (b *Buffer) HasErrors(warnAsError bool) bool {
	for _, e := range b.events {
		if e.Severity == SeverityError {
			return true
		}
		if warnAsError && e.Severity == SeverityWarn {
			return true
		}
	}
	return false
}

// Len returns the number of distinct (deduplicated) events recorded.
func (b *Buffer) Len() int {
	return len(b.events)
}

// Warnf is a convenience constructor for a warn-severity event.
func Warnf(code Code, loc info.SourceLocation, subject string, format string, args ...any) Event {
	return Event{Severity: SeverityWarn, Code: code, Subject: subject, Location: loc, Message: fmt.Sprintf(format, args...)}
}

// Errorf is a convenience constructor for an error-severity event.
func Errorf(code Code, loc info.SourceLocation, subject string, format string, args ...any) Event {
	return Event{Severity: SeverityError, Code: code, Subject: subject, Location: loc, Message: fmt.Sprintf(format, args...)}
}

// InvariantViolation is fatal: unlike Event, it is never buffered. A pass
// that discovers one aborts the run immediately by returning (or panicking
// with) this error rather than continuing with a sentinel.
type InvariantViolation struct {
	Message string
}

func (e InvariantViolation) Error() string {
	return "internal invariant violation: " + e.Message
}
