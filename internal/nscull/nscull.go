// Package nscull implements the namespace culler (spec.md 4.I): a post-order
// walk of the namespace tree that drops empty, undocumented namespaces and
// downgrades the extraction mode of namespaces whose members are entirely
// dependency/see-below/implementation-defined.
package nscull

import (
	"github.com/oxhq/mrdocs/internal/config"
	"github.com/oxhq/mrdocs/internal/corpus"
	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/symbolid"
)

// Run culls the namespace tree rooted at global, then scrubs any surviving
// reference to a culled id so invariant 1 (every referenced id resolves, or
// is invalid) holds after the pass.
func Run(c *corpus.InfoSet, cfg config.Config) {
	culler := &culler{corpus: c, extractEmpty: cfg.ExtractEmptyNamespaces}
	erased := make(map[symbolid.ID]bool)
	culler.cull(symbolid.Global, erased)
	scrub(c, erased)
}

type culler struct {
	corpus       *corpus.InfoSet
	extractEmpty bool
}

// cull recurses into id's child namespaces first (post-order), then decides
// id's own fate. It reports whether id itself was erased, so its caller can
// remove it from its own parent's namespace list.
func (c *culler) cull(id symbolid.ID, erased map[symbolid.ID]bool) bool {
	ns := c.corpus.Find(id)
	if ns == nil || ns.Kind != info.KindNamespace {
		return false
	}

	kept := ns.NamespaceMembers.Namespaces[:0]
	for _, child := range append([]symbolid.ID(nil), ns.NamespaceMembers.Namespaces...) {
		if c.cull(child, erased) {
			continue
		}
		kept = append(kept, child)
	}
	ns.NamespaceMembers.Namespaces = kept

	if id == symbolid.Global {
		return false
	}
	if !c.corpus.IsUndocumented(id) {
		return false // documented namespaces are always kept
	}

	if ns.NamespaceMembers.IsEmpty() {
		if c.extractEmpty {
			return false
		}
		c.corpus.Erase(id)
		erased[id] = true
		return true
	}

	downgradeExtractionMode(c.corpus, ns)
	return false
}

// downgradeExtractionMode implements rule 5: a regular-mode namespace whose
// members are all non-regular is downgraded to the weakest mode shared by
// all of them.
func downgradeExtractionMode(c *corpus.InfoSet, ns *info.Info) {
	if ns.ExtractionMode != info.ExtractionRegular {
		return
	}
	members := ns.NamespaceMembers.All()
	if len(members) == 0 {
		return
	}
	weakest := info.ExtractionMode(-1)
	for _, id := range members {
		m := c.Find(id)
		if m == nil {
			continue
		}
		if m.ExtractionMode == info.ExtractionRegular {
			return // at least one regular member: no downgrade
		}
		if weakest == -1 {
			weakest = m.ExtractionMode
		} else {
			weakest = info.Weaker(weakest, m.ExtractionMode)
		}
	}
	if weakest != -1 {
		ns.ExtractionMode = weakest
	}
}
