// Package membersort implements the member sorter (spec.md 4.H): a stable,
// composite-key reordering of every tranche's id lists, applied recursively
// to namespaces, records, and overload sets.
package membersort

import (
	"sort"

	"github.com/oxhq/mrdocs/internal/config"
	"github.com/oxhq/mrdocs/internal/corpus"
	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/reference"
	"github.com/oxhq/mrdocs/internal/symbolid"
	"github.com/oxhq/mrdocs/internal/typesystem"
)

type sorter struct {
	corpus  *corpus.InfoSet
	policy  config.SortPolicy
	visited map[symbolid.ID]bool
}

// Run walks the corpus from the global namespace and sorts every tranche it
// finds, recursing into namespaces, records, and overload sets. Disabled
// entirely by cfg.SortMembers.
func Run(c *corpus.InfoSet, cfg config.Config) {
	if !cfg.SortMembers {
		return
	}
	s := &sorter{corpus: c, policy: cfg.SortPolicy, visited: make(map[symbolid.ID]bool)}
	s.visitNamespace(symbolid.Global)
}

func (s *sorter) visitNamespace(id symbolid.ID) {
	if s.visited[id] {
		return
	}
	s.visited[id] = true
	ns := s.corpus.Find(id)
	if ns == nil || ns.Kind != info.KindNamespace {
		return
	}
	s.sortTranche(&ns.NamespaceMembers)
	for _, child := range ns.NamespaceMembers.Namespaces {
		s.visitNamespace(child)
	}
	for _, child := range ns.NamespaceMembers.Records {
		s.visitRecord(child)
	}
}

func (s *sorter) visitRecord(id symbolid.ID) {
	if s.visited[id] {
		return
	}
	s.visited[id] = true
	rec := s.corpus.Find(id)
	if rec == nil || rec.Kind != info.KindRecord {
		return
	}
	for access := range rec.Interface {
		s.sortTranche(&rec.Interface[access])
	}
	for _, id := range rec.RecordMembers {
		member := s.corpus.Find(id)
		if member == nil {
			continue
		}
		switch member.Kind {
		case info.KindRecord:
			s.visitRecord(id)
		case info.KindOverloads:
			s.sortOverloadSet(member)
		}
	}
}

func (s *sorter) sortOverloadSet(set *info.Info) {
	if s.visited[set.ID] {
		return
	}
	s.visited[set.ID] = true
	s.sortIDs(set.OverloadMembers)
}

func (s *sorter) sortTranche(t *info.Tranche) {
	s.sortIDs(t.Namespaces)
	s.sortIDs(t.Records)
	s.sortIDs(t.Typedefs)
	s.sortIDs(t.Enums)
	s.sortIDs(t.Functions)
	s.sortIDs(t.StaticFunctions)
	s.sortIDs(t.Variables)
	s.sortIDs(t.StaticVariables)
	s.sortIDs(t.Concepts)
	s.sortIDs(t.Guides)
	s.sortIDs(t.Usings)
	s.sortIDs(t.NamespaceAliases)
	s.sortIDs(t.Friends)
}

// sortIDs stable-sorts ids in place by the composite key.
func (s *sorter) sortIDs(ids []symbolid.ID) {
	if len(ids) < 2 {
		return
	}
	keys := make([]key, len(ids))
	for i, id := range ids {
		keys[i] = s.keyOf(id)
	}
	idx := make([]int, len(ids))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return less(keys[idx[a]], keys[idx[b]])
	})
	out := make([]symbolid.ID, len(ids))
	for i, j := range idx {
		out[i] = ids[j]
	}
	copy(ids, out)
}

// key is the sort composite for one member id, computed once per pass so
// the comparator stays a pure function of precomputed fields.
type key struct {
	id              symbolid.ID
	isCtor          bool
	isDtor          bool
	isAssign        bool
	isRelational    bool
	relationalOrder int
	isConversion    bool
	isCopyOrMove    bool
	isCopy          bool
	name            string
	sigKey          string
}

func (s *sorter) keyOf(id symbolid.ID) key {
	m := s.corpus.Find(id)
	if m == nil {
		return key{id: id}
	}
	k := key{
		id:       id,
		isCtor:   s.policy.ConstructorsFirst && m.Role == info.RoleConstructor,
		isDtor:   s.policy.DestructorsFirst && m.Role == info.RoleDestructor,
		isAssign: s.policy.AssignmentsFirst && m.OperatorKind == reference.OpAssign,
		isConversion: s.policy.ConversionsLast && m.Role == info.RoleConversion,
		name:     m.Name,
		sigKey:   m.SignatureKey(),
	}
	if s.policy.RelationalLast {
		if order, ok := reference.RelationalOrder(m.OperatorKind); ok {
			k.isRelational = true
			k.relationalOrder = order
		}
	}
	if s.policy.CopyMoveOrdering && len(m.Params) == 1 &&
		(m.Role == info.RoleConstructor || m.OperatorKind == reference.OpAssign) {
		switch m.Params[0].Type.Tag {
		case typesystem.KindLValueRef:
			k.isCopyOrMove, k.isCopy = true, true
		case typesystem.KindRValueRef:
			k.isCopyOrMove, k.isCopy = true, false
		}
	}
	return k
}

// less defines the composite ordering described in spec.md 4.H, applied in
// strict priority order: each rule either decides the comparison or falls
// through to the next.
func less(a, b key) bool {
	if a.isCtor != b.isCtor {
		return a.isCtor
	}
	if a.isDtor != b.isDtor {
		return a.isDtor
	}
	if a.isAssign != b.isAssign {
		return a.isAssign
	}
	if a.isRelational != b.isRelational {
		return !a.isRelational // relationals sort last
	}
	if a.isRelational && b.isRelational && a.relationalOrder != b.relationalOrder {
		return a.relationalOrder < b.relationalOrder
	}
	if a.isConversion != b.isConversion {
		return !a.isConversion // conversions sort last
	}
	if a.isCopyOrMove != b.isCopyOrMove {
		return a.isCopyOrMove
	}
	if a.isCopyOrMove && b.isCopyOrMove && a.isCopy != b.isCopy {
		return a.isCopy // copy precedes move
	}
	if a.name != b.name {
		return a.name < b.name
	}
	return a.sigKey < b.sigKey
}
