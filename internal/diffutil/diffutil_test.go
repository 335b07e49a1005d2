package diffutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnified_RendersAdditionsAndDeletions(t *testing.T) {
	before := "one\ntwo\nthree\n"
	after := "one\ntwo-changed\nthree\n"

	out := Unified(before, after, "example", 3)

	assert.Contains(t, out, "-two")
	assert.Contains(t, out, "+two-changed")
	assert.Contains(t, out, "example (before)")
	assert.Contains(t, out, "example (after)")
}

func TestUnified_IdenticalInputProducesNoDiff(t *testing.T) {
	text := "unchanged\n"
	out := Unified(text, text, "example", 3)
	assert.Empty(t, strings.TrimSpace(out))
}

func TestColored_PreservesDiffContentUnderANSICodes(t *testing.T) {
	before := "a\n"
	after := "b\n"

	out := Colored(before, after, "example", 3)

	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
}
