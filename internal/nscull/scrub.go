package nscull

import (
	"github.com/oxhq/mrdocs/internal/corpus"
	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/javadoc"
	"github.com/oxhq/mrdocs/internal/symbolid"
)

// scrub clears every surviving reference to an erased id so invariant 1
// (every referenced SymbolID is either invalid or resolves) holds once
// culling completes.
func scrub(c *corpus.InfoSet, erased map[symbolid.ID]bool) {
	if len(erased) == 0 {
		return
	}
	c.Each(func(rec *info.Info) bool {
		rec.SpecializationOf = maybeScrub(rec.SpecializationOf, erased)
		rec.GuideTemplate = maybeScrub(rec.GuideTemplate, erased)
		rec.FriendTarget = maybeScrub(rec.FriendTarget, erased)
		rec.UsingTarget = maybeScrub(rec.UsingTarget, erased)
		rec.Derived = scrubSlice(rec.Derived, erased)
		if rec.Javadoc != nil {
			scrubJavadoc(rec.Javadoc, erased)
		}
		return true
	})
}

func maybeScrub(id symbolid.ID, erased map[symbolid.ID]bool) symbolid.ID {
	if erased[id] {
		return symbolid.Invalid
	}
	return id
}

func scrubSlice(ids []symbolid.ID, erased map[symbolid.ID]bool) []symbolid.ID {
	if len(ids) == 0 {
		return ids
	}
	out := ids[:0]
	for _, id := range ids {
		if !erased[id] {
			out = append(out, id)
		}
	}
	return out
}

func scrubJavadoc(d *javadoc.Doc, erased map[symbolid.ID]bool) {
	d.Relates = scrubSlice(d.Relates, erased)
	d.Related = scrubSlice(d.Related, erased)
	d.Walk(func(n *javadoc.Node) {
		if n.IsInline && n.Inline == javadoc.InlineReference && erased[n.ID] {
			n.ID = symbolid.Invalid
		}
		if n.IsInline && n.Inline == javadoc.InlineCopied && erased[n.CopyID] {
			n.CopyID = symbolid.Invalid
		}
	})
}
