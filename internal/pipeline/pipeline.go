// Package pipeline orchestrates the finalizer passes in the resolved order
// (spec.md 2, 5): base-member inheritance, overload folding, member
// sorting, javadoc finalization, then namespace culling. Each pass runs to
// completion before the next begins; see SPEC_FULL.md's pass-ordering note
// for why namespace culling runs last.
package pipeline

import (
	"github.com/oxhq/mrdocs/internal/config"
	"github.com/oxhq/mrdocs/internal/corpus"
	"github.com/oxhq/mrdocs/internal/diag"
	"github.com/oxhq/mrdocs/internal/inherit"
	"github.com/oxhq/mrdocs/internal/jdfinalize"
	"github.com/oxhq/mrdocs/internal/lookup"
	"github.com/oxhq/mrdocs/internal/membersort"
	"github.com/oxhq/mrdocs/internal/nscull"
	"github.com/oxhq/mrdocs/internal/overloadfold"
)

// Run executes the full finalizer pipeline over c and returns the
// diagnostics the javadoc pass produced. c is mutated in place.
func Run(c *corpus.InfoSet, cfg config.Config) *diag.Buffer {
	inherit.Run(c, cfg)

	if cfg.Overloads {
		overloadfold.Fold(c)
	}

	membersort.Run(c, cfg)

	engine := lookup.New(c)
	diags := jdfinalize.Run(c, engine, cfg)

	nscull.Run(c, cfg)

	return diags
}
