// Package jdfinalize implements the javadoc finalizer (spec.md 4.G): nine
// ordered passes over every documented Info's Javadoc tree — reference
// resolution, @relates, @copydoc merging, whitespace trimming, auto-brief,
// code-block unindent, temporary removal, function auto-synthesis, and
// overload-set brief synthesis — plus the undocumented-symbol diagnostics.
package jdfinalize

import (
	"fmt"

	"github.com/oxhq/mrdocs/internal/config"
	"github.com/oxhq/mrdocs/internal/corpus"
	"github.com/oxhq/mrdocs/internal/diag"
	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/lookup"
	"github.com/oxhq/mrdocs/internal/symbolid"
)

type finalizer struct {
	corpus   *corpus.InfoSet
	lookup   *lookup.Engine
	cfg      config.Config
	diags    *diag.Buffer
	finished map[symbolid.ID]bool // copydoc recursion guard / memo
	warned   map[[2]string]bool   // deduped broken-reference warnings, by (target, enclosing name)
}

// Run executes all nine passes over every Info in c and returns the
// diagnostics produced. lookupEngine must already be constructed over c (the
// pipeline builds one lookup.Engine per run and shares it with this pass).
func Run(c *corpus.InfoSet, lookupEngine *lookup.Engine, cfg config.Config) *diag.Buffer {
	f := &finalizer{
		corpus:   c,
		lookup:   lookupEngine,
		cfg:      cfg,
		diags:    diag.NewBuffer(),
		finished: make(map[symbolid.ID]bool),
		warned:   make(map[[2]string]bool),
	}

	c.Each(func(rec *info.Info) bool {
		f.finalize(rec)
		return true
	})

	c.Each(func(rec *info.Info) bool {
		if rec.Kind == info.KindOverloads {
			f.synthesizeOverloadBrief(rec)
		}
		return true
	})

	c.Each(func(rec *info.Info) bool {
		f.emitUndocumentedDiagnostics(rec)
		return true
	})

	return f.diags
}

// finalize runs passes 1-8 on rec, recursing into copydoc targets first so a
// target's own javadoc is fully resolved before it is merged elsewhere.
// Idempotent: a record already finalized this run is skipped.
func (f *finalizer) finalize(rec *info.Info) {
	if f.finished[rec.ID] {
		return
	}
	f.finished[rec.ID] = true

	if rec.Javadoc == nil {
		if rec.Kind == info.KindFunction && f.cfg.AutoFunctionMetadata {
			f.autoSynthesizeFunction(rec)
		}
		return
	}

	f.resolveReferences(rec)
	f.resolveRelates(rec)
	f.mergeCopydoc(rec)
	f.trim(rec.Javadoc)
	f.autoBrief(rec.Javadoc)
	f.unindentCode(rec.Javadoc)
	f.removeCopiedNodes(rec.Javadoc)
	if rec.Kind == info.KindFunction && f.cfg.AutoFunctionMetadata {
		f.autoSynthesizeFunction(rec)
	}
}

func (f *finalizer) warnOnce(key [2]string, e diag.Event) {
	if f.warned[key] {
		return
	}
	f.warned[key] = true
	f.diags.Emit(e)
}

func (f *finalizer) locationOf(rec *info.Info) info.SourceLocation {
	if len(rec.Locations) > 0 {
		return rec.Locations[0]
	}
	return info.SourceLocation{}
}

func subjectName(rec *info.Info) string {
	if rec.Name != "" {
		return rec.Name
	}
	return fmt.Sprintf("<%s>", rec.ID)
}
