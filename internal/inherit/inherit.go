// Package inherit implements the base-member inheritor (spec.md 4.F): for
// each record with bases, it copies or references base-class members into
// the derived record's interface, honoring the base's access specifier,
// shadowing, special-member exclusion, and the configured InheritMode.
package inherit

import (
	"sort"

	"github.com/oxhq/mrdocs/internal/config"
	"github.com/oxhq/mrdocs/internal/corpus"
	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/symbolid"
)

// inheriter carries the state threaded through one Run: the visited set
// that bounds each record to being processed once (mirroring
// internal/overloadfold's visited-set traversal of the same base-class
// DAG), plus the resolved mode and extract-private flag from Config.
type inheriter struct {
	corpus         *corpus.InfoSet
	visited        map[symbolid.ID]bool
	mode           config.InheritMode
	extractPrivate bool
}

// Run walks the corpus from the global namespace, visiting each record's
// bases before the record itself. It always populates each public base's
// derived list (spec.md 3's record "derived list" field), and additionally
// inherits base members into every record per cfg.InheritBaseMembers unless
// that mode is "never".
func Run(c *corpus.InfoSet, cfg config.Config) {
	h := &inheriter{
		corpus:         c,
		visited:        make(map[symbolid.ID]bool),
		mode:           cfg.InheritBaseMembers,
		extractPrivate: cfg.ExtractPrivate,
	}
	h.walkNamespace(symbolid.Global)
}

func (h *inheriter) walkNamespace(id symbolid.ID) {
	ns := h.corpus.Find(id)
	if ns == nil || ns.Kind != info.KindNamespace {
		return
	}
	for _, child := range append([]symbolid.ID(nil), ns.NamespaceMembers.Namespaces...) {
		h.walkNamespace(child)
	}
	for _, child := range append([]symbolid.ID(nil), ns.NamespaceMembers.Records...) {
		h.inheritRecord(child)
	}
}

// inheritRecord inherits id's bases before itself (so a grandparent's
// members are already reference/copied into a parent before the parent's
// own members are walked into a grandchild), then applies each base in
// declaration order.
func (h *inheriter) inheritRecord(id symbolid.ID) {
	if h.visited[id] {
		return
	}
	h.visited[id] = true
	rec := h.corpus.Find(id)
	if rec == nil || rec.Kind != info.KindRecord {
		return
	}

	for _, base := range rec.Bases {
		if base.ID.IsValid() {
			h.inheritRecord(base.ID)
		}
	}
	for access := info.AccessPublic; access <= info.AccessPrivate; access++ {
		for _, child := range append([]symbolid.ID(nil), rec.Interface[access].Records...) {
			h.inheritRecord(child)
		}
	}

	for _, base := range rec.Bases {
		if !base.ID.IsValid() {
			continue
		}
		baseRec := h.corpus.Find(base.ID)
		if baseRec == nil {
			continue
		}
		h.recordDerived(rec, baseRec, base)
	}

	if h.mode == config.InheritNever {
		return
	}

	// Snapshot rec's own (not-yet-inherited-into) members before mutating
	// its tranches, so a base's member shadows only a genuine
	// derived-class declaration, not something copied in from an earlier
	// base in this same loop.
	ownFnSigs, ownNames := snapshotOwn(h.corpus, rec)

	for _, base := range rec.Bases {
		if !base.ID.IsValid() {
			continue
		}
		baseRec := h.corpus.Find(base.ID)
		if baseRec == nil {
			continue
		}
		h.applyBase(rec, baseRec, base, ownFnSigs, ownNames)
	}
}

// recordDerived adds rec's id to baseRec's derived list when base is a
// public, regularly-extracted base of a regularly-extracted rec, ordered by
// the derived record's name (then id, to break ties deterministically).
// Grounded on DerivedFinalizer::build: only public inheritance publishes
// the relationship, since a protected/private base's derived classes are
// not part of its own documented interface.
func (h *inheriter) recordDerived(rec, baseRec *info.Info, base info.Base) {
	if base.Access != info.AccessPublic {
		return
	}
	if rec.ExtractionMode != info.ExtractionRegular || baseRec.ExtractionMode != info.ExtractionRegular {
		return
	}
	for _, id := range baseRec.Derived {
		if id == rec.ID {
			return
		}
	}
	idx := sort.Search(len(baseRec.Derived), func(i int) bool {
		other := h.corpus.Find(baseRec.Derived[i])
		if other == nil || other.Name != rec.Name {
			return other == nil || other.Name >= rec.Name
		}
		return string(other.ID[:]) >= string(rec.ID[:])
	})
	baseRec.Derived = append(baseRec.Derived, symbolid.Invalid)
	copy(baseRec.Derived[idx+1:], baseRec.Derived[idx:])
	baseRec.Derived[idx] = rec.ID
}

func (h *inheriter) applyBase(derived, baseRec *info.Info, base info.Base, ownFnSigs, ownNames map[string]bool) {
	if base.Access == info.AccessPrivate && !h.extractPrivate {
		return
	}

	for _, srcAccess := range [...]info.Access{info.AccessPublic, info.AccessProtected} {
		members := baseRec.Interface[srcAccess].All()
		destAccess := mapAccess(base.Access, srcAccess)
		for _, id := range members {
			member := h.corpus.Find(id)
			if member == nil {
				continue
			}
			if member.IsSpecialMember() {
				continue
			}
			if isShadowed(member, ownFnSigs, ownNames) {
				continue
			}
			h.inheritMember(derived, destAccess, member)
		}
	}
}

func (h *inheriter) inheritMember(derived *info.Info, access info.Access, member *info.Info) {
	switch h.mode {
	case config.InheritReference:
		if member.ExtractionMode == info.ExtractionDependency {
			return // would dangle: the dependency is never expanded in a regular record
		}
		h.addReference(derived, access, member)
	case config.InheritCopyDependencies:
		if member.ExtractionMode == info.ExtractionDependency {
			h.copyRehome(derived, access, member)
		} else {
			h.addReference(derived, access, member)
		}
	case config.InheritCopyAll:
		h.copyRehome(derived, access, member)
	}
}

func (h *inheriter) addReference(derived *info.Info, access info.Access, member *info.Info) {
	derived.Interface[access].AddByKind(member.Kind, member.IsStatic, member.ID)
	derived.RecordMembers = append(derived.RecordMembers, member.ID)
}

// copyRehome deep-copies member into a new Info owned by derived, with a
// deterministic id so re-running the pass against an unchanged corpus
// reassigns the same synthetic id (internal/symbolid.Derive).
func (h *inheriter) copyRehome(derived *info.Info, access info.Access, member *info.Info) {
	cp := *member
	cp.ID = symbolid.Derive(derived.ID, member.ID)
	cp.Parent = derived.ID
	cp.Access = access
	if member.ExtractionMode == info.ExtractionDependency {
		cp.ExtractionMode = derived.ExtractionMode
	}
	h.corpus.Put(&cp)
	derived.Interface[access].AddByKind(cp.Kind, cp.IsStatic, cp.ID)
	derived.RecordMembers = append(derived.RecordMembers, cp.ID)
}

// mapAccess implements spec.md 4.F's base-access-specifier table: a public
// base preserves the member's own access, a protected or private base
// collapses every inherited member to that base's own access.
func mapAccess(baseAccess, srcAccess info.Access) info.Access {
	if baseAccess == info.AccessPublic {
		return srcAccess
	}
	return baseAccess
}

// isShadowed reports whether member's name (or, for functions, signature)
// coincides with one of derived's own pre-inheritance members.
func isShadowed(member *info.Info, ownFnSigs, ownNames map[string]bool) bool {
	if member.Kind == info.KindFunction {
		return ownFnSigs[member.SignatureKey()]
	}
	return ownNames[member.Name]
}

func snapshotOwn(c *corpus.InfoSet, rec *info.Info) (fnSigs, names map[string]bool) {
	fnSigs = make(map[string]bool)
	names = make(map[string]bool)
	for access := info.AccessPublic; access <= info.AccessPrivate; access++ {
		for _, id := range rec.Interface[access].All() {
			m := c.Find(id)
			if m == nil {
				continue
			}
			if m.Kind == info.KindFunction {
				fnSigs[m.SignatureKey()] = true
			} else {
				names[m.Name] = true
			}
		}
	}
	return fnSigs, names
}
