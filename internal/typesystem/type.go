// Package typesystem defines the tagged-variant type and name records shared
// by the corpus (internal/info), the reference model (internal/reference),
// and the parser (internal/refparser). These are pure value types; nothing
// in this package resolves names or performs lookup.
package typesystem

import "github.com/oxhq/mrdocs/internal/symbolid"

// TypeKind discriminates the Type tagged variant.
type TypeKind int

const (
	KindNamed TypeKind = iota
	KindBuiltin
	KindTag
	KindLValueRef
	KindRValueRef
	KindPointer
	KindMemberPointer
	KindArray
	KindFunction
	KindSpecialization
	KindPack
)

// TagKeyword is the elaborated-type keyword used by a KindTag type.
type TagKeyword int

const (
	TagNone TagKeyword = iota
	TagClass
	TagStruct
	TagUnion
	TagEnum
)

// CVQualifiers holds top-level const/volatile qualification, which every
// Type variant may carry independent of its Tag.
type CVQualifiers struct {
	Const    bool
	Volatile bool
}

// ExceptionSpec captures a function type's exception specification, used by
// KindFunction (and mirrored by reference.NoexceptInfo for reference-string
// function tails).
type ExceptionSpec struct {
	Noexcept         bool
	NoexceptOperand  string
	NoexceptExplicit bool
}

// Type is the tagged-variant type record. Exactly the field(s) relevant to
// Tag are meaningful; the rest are zero.
type Type struct {
	Kind CVQualifiers
	Tag  TypeKind

	// KindNamed
	Name *Name

	// KindBuiltin
	Builtin string // e.g. "int", "double", "bool", "void", "char"

	// KindTag
	TagKeyword TagKeyword
	TagName    *Name

	// KindLValueRef, KindRValueRef, KindPointer: wraps Pointee.
	// KindPack: wraps Pointee as the expanded pattern type.
	Pointee *Type

	// KindMemberPointer
	ClassName *Name

	// KindArray
	Element    *Type
	BoundsExpr string // raw source text of the bounds expression, if any

	// KindFunction
	Return      *Type
	Params      []Type
	Variadic    bool
	RefQualifier int // 0=none, 1=lvalue(&), 2=rvalue(&&) — mirrors reference.ReferenceKind
	Exception   ExceptionSpec

	// KindSpecialization
	TemplateArgs     []Type
	SpecializationID symbolid.ID
}

// Name is the tagged-variant name record: a possibly qualified name,
// resolved to a SymbolID during lookup.
type Name struct {
	Prefix *Name
	Text   string
	ID     symbolid.ID

	// Specialization-name fields; zero when this Name is a plain name.
	IsSpecialization bool
	TemplateArgs     []Type
	SpecializationID symbolid.ID
}

// Qualified reports whether n has a prefix scope (e.g. "outer::inner").
func (n *Name) Qualified() bool {
	return n != nil && n.Prefix != nil
}

// Resolved reports whether n's ID has been filled in by lookup.
func (n *Name) Resolved() bool {
	return n != nil && n.ID.IsValid()
}
