package corpus

import (
	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/symbolid"
)

// AllMembers returns every direct member id of container, regardless of
// access — the candidate pool unqualified-name lookup's member matching
// starts from. For a namespace this is the union of its single tranche; for
// a record it is the record's flat RecordMembers list (every direct member,
// any access).
func AllMembers(container *info.Info) []symbolid.ID {
	switch container.Kind {
	case info.KindNamespace:
		return container.NamespaceMembers.All()
	case info.KindRecord:
		return container.RecordMembers
	default:
		return nil
	}
}

// MemberTranche returns the tranche a member of the given access should be
// filed under within container, or nil if container does not bucket members
// by access (anything but a record).
func MemberTranche(container *info.Info, access info.Access) *info.Tranche {
	switch container.Kind {
	case info.KindNamespace:
		return &container.NamespaceMembers
	case info.KindRecord:
		if access == info.AccessNone {
			return nil
		}
		return &container.Interface[access]
	default:
		return nil
	}
}

// ParentChainTerminates reports whether walking Parent pointers from start
// reaches symbolid.Global within len(s) steps without revisiting an id —
// the well-formedness condition every Info's parent chain must satisfy.
func ParentChainTerminates(s *InfoSet, start symbolid.ID) bool {
	seen := make(map[symbolid.ID]bool)
	cur := start
	for i := 0; i <= s.Len()+1; i++ {
		if cur.IsGlobal() {
			return true
		}
		if seen[cur] {
			return false
		}
		seen[cur] = true
		rec := s.Find(cur)
		if rec == nil {
			return false
		}
		cur = rec.Parent
	}
	return false
}
