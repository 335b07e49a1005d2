// Package overloadfold implements the overload-folding pass: it walks the
// corpus and, for every parent entity, groups function members sharing the
// same name, access, and static-ness into a synthetic "overloads" Info. See
// internal/lookup for the consumer this produces entities for — its
// candidate-pool expansion assumes every KindOverloads entity carries a
// Name, OperatorKind, OperatorSpelled, and Role mirrored from the group.
package overloadfold

import (
	"sort"
	"strings"

	"github.com/oxhq/mrdocs/internal/corpus"
	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/symbolid"
)

// folder carries the state threaded through one Fold pass: the visited set
// that bounds each entity to being folded once, and a registry of already
// produced overload-set entities keyed by their member-id set so bases and
// using-declarations can be deduplicated against.
//
// The registry is corpus-wide rather than scoped to a single record's base
// list: the "any base already has a matching entity" and "the source
// namespace already has a matching entity" rules in spec are both instances
// of the same underlying rule (reuse an overload set whenever its member-ID
// set already exists somewhere), so one shared map serves both without
// walking the base list or using-target separately.
type folder struct {
	corpus   *corpus.InfoSet
	visited  map[symbolid.ID]bool
	bySignature map[string]symbolid.ID
}

// Fold runs the overload-folding pass over the whole corpus, starting from
// the global namespace.
func Fold(c *corpus.InfoSet) {
	f := &folder{
		corpus:      c,
		visited:     make(map[symbolid.ID]bool),
		bySignature: make(map[string]symbolid.ID),
	}
	f.foldNamespace(symbolid.Global)
}

func (f *folder) foldNamespace(id symbolid.ID) {
	if f.visited[id] {
		return
	}
	f.visited[id] = true
	ns := f.corpus.Find(id)
	if ns == nil || ns.Kind != info.KindNamespace {
		return
	}

	f.foldFunctionBucket(ns, &ns.NamespaceMembers, false)
	f.foldFunctionBucket(ns, &ns.NamespaceMembers, true)

	for _, child := range append([]symbolid.ID(nil), ns.NamespaceMembers.Namespaces...) {
		f.foldNamespace(child)
	}
	for _, child := range append([]symbolid.ID(nil), ns.NamespaceMembers.Records...) {
		f.foldRecord(child)
	}
}

// foldRecord folds rec's bases before rec itself, per spec's pre-order
// traversal rule, then groups each of the six (access x static) function
// buckets rec carries.
func (f *folder) foldRecord(id symbolid.ID) {
	if f.visited[id] {
		return
	}
	f.visited[id] = true
	rec := f.corpus.Find(id)
	if rec == nil || rec.Kind != info.KindRecord {
		return
	}

	for _, base := range rec.Bases {
		if base.ID.IsValid() {
			f.foldRecord(base.ID)
		}
	}

	for access := info.AccessPublic; access <= info.AccessPrivate; access++ {
		tranche := &rec.Interface[access]
		f.foldFunctionBucket(rec, tranche, false)
		f.foldFunctionBucket(rec, tranche, true)
		for _, child := range append([]symbolid.ID(nil), tranche.Records...) {
			f.foldRecord(child)
		}
	}
}

// foldFunctionBucket groups tranche's Functions (or StaticFunctions, when
// isStatic) bucket by name, replacing every group of two or more with a
// single synthetic overloads entity.
func (f *folder) foldFunctionBucket(parent *info.Info, tranche *info.Tranche, isStatic bool) {
	bucket := tranche.FunctionsOf(isStatic)
	if len(bucket) == 0 {
		return
	}

	groups, order := groupByName(f.corpus, bucket)
	for _, name := range order {
		members := groups[name]
		if len(members) < 2 {
			continue
		}
		overloadsID := f.foldGroup(parent, members)
		tranche.ReplaceFunctions(members, overloadsID, isStatic)
		if parent.Kind == info.KindRecord {
			parent.RecordMembers = rewriteFlat(parent.RecordMembers, members, overloadsID)
		}
	}
}

// foldGroup produces (or reuses) the overloads entity for one name-grouped
// set of function ids, registering it in f.bySignature for later reuse by a
// base class or a using-introduced name sharing the same member set.
func (f *folder) foldGroup(parent *info.Info, members []symbolid.ID) symbolid.ID {
	key := signatureKey(members)
	if existing, ok := f.bySignature[key]; ok {
		return existing
	}

	representative := f.corpus.MustFind(members[0])
	id := symbolid.Derive(parent.ID, members[0])
	synthetic := &info.Info{
		ID:              id,
		Kind:            info.KindOverloads,
		Name:            representative.Name,
		Parent:          parent.ID,
		Access:          representative.Access,
		IsStatic:        representative.IsStatic,
		OperatorKind:    representative.OperatorKind,
		OperatorSpelled: representative.OperatorSpelled,
		Role:            representative.Role,
		OverloadMembers: append([]symbolid.ID(nil), members...),
	}
	f.corpus.Put(synthetic)
	f.bySignature[key] = id
	return id
}

// groupByName buckets ids by their Info.Name, preserving first-seen order
// both within a group and across groups, so output stays deterministic
// regardless of map iteration.
func groupByName(c *corpus.InfoSet, ids []symbolid.ID) (map[string][]symbolid.ID, []string) {
	groups := make(map[string][]symbolid.ID)
	var order []string
	for _, id := range ids {
		m := c.Find(id)
		if m == nil {
			continue
		}
		if _, seen := groups[m.Name]; !seen {
			order = append(order, m.Name)
		}
		groups[m.Name] = append(groups[m.Name], id)
	}
	return groups, order
}

// signatureKey renders a canonical, order-independent key for a set of
// member ids, used to detect that two candidate groups (e.g. a base's
// original group and a derived class's inherited-then-regrouped one) denote
// the same overload set.
func signatureKey(ids []symbolid.ID) string {
	hexes := make([]string, len(ids))
	for i, id := range ids {
		hexes[i] = id.String()
	}
	sort.Strings(hexes)
	return strings.Join(hexes, ",")
}

func rewriteFlat(ids []symbolid.ID, oldIDs []symbolid.ID, newID symbolid.ID) []symbolid.ID {
	oldSet := make(map[symbolid.ID]bool, len(oldIDs))
	for _, id := range oldIDs {
		oldSet[id] = true
	}
	out := make([]symbolid.ID, 0, len(ids))
	inserted := false
	for _, id := range ids {
		if oldSet[id] {
			if !inserted {
				out = append(out, newID)
				inserted = true
			}
			continue
		}
		out = append(out, id)
	}
	if !inserted {
		out = append(out, newID)
	}
	return out
}
