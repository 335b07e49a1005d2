package jdfinalize

import (
	"github.com/oxhq/mrdocs/internal/diag"
	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/javadoc"
	"github.com/oxhq/mrdocs/internal/symbolid"
)

// resolveReferences is pass 1: every InlineReference node's Target is
// resolved against rec's own id as lookup context.
func (f *finalizer) resolveReferences(rec *info.Info) {
	rec.Javadoc.Walk(func(n *javadoc.Node) {
		if !n.IsInline || n.Inline != javadoc.InlineReference || n.Resolved || n.Target == "" {
			return
		}
		n.Resolved = true
		target, err := f.lookup.Lookup(rec.ID, n.Target)
		if err != nil {
			f.warnOnce([2]string{n.Target, rec.Name}, diag.Warnf(
				diag.CodeSymbolNotFound, f.locationOf(rec), subjectName(rec),
				"unresolved reference to %q in documentation of %s", n.Target, subjectName(rec)))
			return
		}
		n.ID = target.ID
	})
}

// resolveRelates is pass 2: each RelatesRaw entry on a function is resolved,
// and a back-reference is appended to the target's Doc.Related. Entries
// that fail to resolve are dropped.
func (f *finalizer) resolveRelates(rec *info.Info) {
	if rec.Kind != info.KindFunction || len(rec.Javadoc.RelatesRaw) == 0 {
		return
	}
	var resolved []symbolid.ID
	for _, raw := range rec.Javadoc.RelatesRaw {
		target, err := f.lookup.Lookup(rec.ID, raw)
		if err != nil {
			f.warnOnce([2]string{raw, rec.Name}, diag.Warnf(
				diag.CodeSymbolNotFound, f.locationOf(rec), subjectName(rec),
				"unresolved @relates target %q on %s", raw, subjectName(rec)))
			continue
		}
		if target.Javadoc == nil {
			target.Javadoc = &javadoc.Doc{}
		}
		target.Javadoc.Related = append(target.Javadoc.Related, rec.ID)
		resolved = append(resolved, target.ID)
	}
	rec.Javadoc.Relates = resolved
	rec.Javadoc.RelatesRaw = nil
}
