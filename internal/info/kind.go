// Package info defines the tagged-variant Info record: every declaration in
// the corpus, plus the synthetic entities the finalizer allocates (overload
// sets, inherited member copies).
package info

// Kind discriminates the Info tagged variant.
type Kind int

const (
	KindNamespace Kind = iota
	KindRecord
	KindFunction
	KindOverloads
	KindEnum
	KindEnumConstant
	KindTypedef
	KindUsingType
	KindVariable
	KindField
	KindConcept
	KindGuide
	KindFriend
	KindUsing
	KindNamespaceAlias
)

// String renders k for diagnostics and test failure messages.
func (k Kind) String() string {
	switch k {
	case KindNamespace:
		return "namespace"
	case KindRecord:
		return "record"
	case KindFunction:
		return "function"
	case KindOverloads:
		return "overloads"
	case KindEnum:
		return "enum"
	case KindEnumConstant:
		return "enum-constant"
	case KindTypedef:
		return "typedef"
	case KindUsingType:
		return "using-type"
	case KindVariable:
		return "variable"
	case KindField:
		return "field"
	case KindConcept:
		return "concept"
	case KindGuide:
		return "guide"
	case KindFriend:
		return "friend"
	case KindUsing:
		return "using"
	case KindNamespaceAlias:
		return "namespace-alias"
	default:
		return "unknown"
	}
}

// IsFunctionLike reports whether k is a function or a synthetic overload set
// — the two kinds the lookup engine's parameter-list matching predicate
// applies to.
func (k Kind) IsFunctionLike() bool {
	return k == KindFunction || k == KindOverloads
}

// IsTransparent reports whether members of a namespace/enum of this kind
// are visible for unqualified lookup through the container itself — inline
// namespaces and unscoped enums. This is evaluated per-Info (inline flag /
// scoped flag), not purely by Kind; see Info.IsTransparent.
func (k Kind) IsTransparent() bool {
	return k == KindNamespace || k == KindEnum
}
