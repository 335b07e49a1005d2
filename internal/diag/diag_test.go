package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/mrdocs/internal/info"
)

func TestEmitDeduplicatesByCodeSubjectLocation(t *testing.T) {
	b := NewBuffer()
	loc := info.SourceLocation{File: "a.hpp", Line: 10}

	first := b.Emit(Warnf(CodeSymbolNotFound, loc, "Widget::go", "cannot resolve %s", "Widget::go"))
	second := b.Emit(Warnf(CodeSymbolNotFound, loc, "Widget::go", "cannot resolve %s", "Widget::go"))

	assert.True(t, first)
	assert.False(t, second)
	assert.Equal(t, 1, b.Len())
}

func TestEmitDistinguishesBySubject(t *testing.T) {
	b := NewBuffer()
	loc := info.SourceLocation{File: "a.hpp", Line: 10}

	b.Emit(Warnf(CodeSymbolNotFound, loc, "Widget::go", "x"))
	b.Emit(Warnf(CodeSymbolNotFound, loc, "Widget::stop", "y"))

	assert.Equal(t, 2, b.Len())
}

func TestEventsGroupedByLocation(t *testing.T) {
	b := NewBuffer()
	locA := info.SourceLocation{File: "a.hpp", Line: 1}
	locB := info.SourceLocation{File: "b.hpp", Line: 1}

	b.Emit(Warnf(CodeUndocumented, locB, "B::f", "undocumented"))
	b.Emit(Warnf(CodeUndocumented, locA, "A::f", "undocumented"))
	b.Emit(Warnf(CodeUndocumented, locB, "B::g", "undocumented"))

	events := b.Events()
	require.Len(t, events, 3)
	// first location seen (locB) groups its two events contiguously, then locA.
	assert.Equal(t, locB, events[0].Location)
	assert.Equal(t, locB, events[1].Location)
	assert.Equal(t, locA, events[2].Location)
}

func TestHasErrorsRespectsWarnAsError(t *testing.T) {
	b := NewBuffer()
	loc := info.SourceLocation{}
	b.Emit(Warnf(CodeUndocumented, loc, "x", "warn"))

	assert.False(t, b.HasErrors(false))
	assert.True(t, b.HasErrors(true))

	b.Emit(Errorf(CodeInternalInvariantViolation, loc, "y", "boom"))
	assert.True(t, b.HasErrors(false))
}

func TestInvariantViolationMessage(t *testing.T) {
	err := InvariantViolation{Message: "record missing from table"}
	assert.Contains(t, err.Error(), "record missing from table")
}
