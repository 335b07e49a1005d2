package info

import (
	"github.com/oxhq/mrdocs/internal/javadoc"
	"github.com/oxhq/mrdocs/internal/reference"
	"github.com/oxhq/mrdocs/internal/symbolid"
	"github.com/oxhq/mrdocs/internal/typesystem"
)

// SourceLocation is a single file/line/column a declaration's text spans.
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

// Param is one function parameter.
type Param struct {
	Name    string
	Type    typesystem.Type
	Default string
}

// TemplateParam is one parameter of a template declaration.
type TemplateParam struct {
	Name        string
	IsTypeParam bool
	IsPack      bool
}

// TemplateInfo is present on records and functions that are templates.
type TemplateInfo struct {
	Params []TemplateParam
}

// Base is one entry of a record's base-class list.
type Base struct {
	Type      typesystem.Type
	ID        symbolid.ID // resolved base record id, or symbolid.Invalid
	Access    Access
	IsVirtual bool
}

// Info is the tagged-variant record. Common fields are always
// meaningful; the remaining fields are grouped by the Kind they serve and
// zero-valued otherwise.
type Info struct {
	ID             symbolid.ID
	Kind           Kind
	Name           string
	Parent         symbolid.ID
	Access         Access
	ExtractionMode ExtractionMode
	Javadoc        *javadoc.Doc
	Locations      []SourceLocation

	// --- KindNamespace ---
	NamespaceInline  bool
	NamespaceMembers Tranche

	// --- KindRecord ---
	RecordTag        TagKind
	Bases            []Base
	RecordMembers    []symbolid.ID // flat list of all direct member ids, any access
	Derived          []symbolid.ID
	Interface        [3]Tranche // indexed by Access: Public, Protected, Private
	RecordTemplate   *TemplateInfo
	IsSpecialization bool
	SpecializationOf symbolid.ID

	// --- KindFunction ---
	Return           *typesystem.Type
	Params           []Param
	Role             FunctionRole
	OperatorKind     reference.Operator
	OperatorSpelled  string
	IsRecordMethod   bool
	CV               typesystem.CVQualifiers
	RefQualifier     int // mirrors reference.ReferenceKind
	Noexcept         *reference.NoexceptInfo
	Storage          StorageClass
	FunctionTemplate *TemplateInfo
	IsStatic         bool
	IsDefaulted      bool
	IsDeleted        bool


	// --- KindOverloads (synthetic) ---
	OverloadMembers []symbolid.ID

	// --- KindEnum ---
	Scoped     bool
	Underlying *typesystem.Type
	Values     []symbolid.ID

	// --- KindEnumConstant ---
	Initializer string

	// --- KindTypedef / KindUsingType ---
	Aliased *typesystem.Type

	// --- KindVariable / KindField ---
	VarType        *typesystem.Type
	VarInitializer string

	// --- KindConcept ---
	ConceptExpression string

	// --- KindGuide ---
	GuideTemplate symbolid.ID

	// --- KindFriend ---
	FriendTarget symbolid.ID
	FriendType   *typesystem.Type

	// --- KindUsing / KindNamespaceAlias ---
	UsingTarget symbolid.ID
}

// IsNamespace, IsRecord, ... provide a terser call site than comparing Kind
// directly; member-sorter and finalizer code reads more like the spec this
// way.
func (i *Info) IsNamespace() bool { return i.Kind == KindNamespace }
func (i *Info) IsRecord() bool    { return i.Kind == KindRecord }
func (i *Info) IsFunction() bool  { return i.Kind == KindFunction }
func (i *Info) IsOverloads() bool { return i.Kind == KindOverloads }
func (i *Info) IsEnum() bool      { return i.Kind == KindEnum }

// IsTransparent reports whether i's members are visible for unqualified
// lookup through i itself without naming i — inline namespaces and unscoped
// enums.
func (i *Info) IsTransparent() bool {
	switch i.Kind {
	case KindNamespace:
		return i.NamespaceInline
	case KindEnum:
		return !i.Scoped
	default:
		return false
	}
}

// IsSpecialMember reports whether i is a constructor, destructor, or
// assignment operator — the functions base-member inheritance excludes, and
// whose "special member" grouping rule overload folding applies to.
func (i *Info) IsSpecialMember() bool {
	if i.Kind != KindFunction {
		return false
	}
	if i.Role == RoleConstructor || i.Role == RoleDestructor {
		return true
	}
	return i.OperatorKind == reference.OpAssign
}

// SignatureKey returns a comparison key for shadowing detection: name plus
// parameter types up to top-level cv/ref. Only meaningful for KindFunction.
func (i *Info) SignatureKey() string {
	key := i.Name
	for _, p := range i.Params {
		key += "|" + typeSpellingIgnoringTopCVRef(p.Type)
	}
	return key
}

func typeSpellingIgnoringTopCVRef(t typesystem.Type) string {
	// Strip a top-level reference and the cv-qualification beneath it;
	// everything else (pointee chains, template args) participates in the
	// comparison, matching "parameter types up to top-level cv/ref".
	inner := t
	if (inner.Tag == typesystem.KindLValueRef || inner.Tag == typesystem.KindRValueRef) && inner.Pointee != nil {
		inner = *inner.Pointee
	}
	inner.Kind = typesystem.CVQualifiers{}
	return spellType(inner)
}

// spellType renders a minimal deterministic textual key for a Type. It is
// not meant to be human-facing C++ syntax, only a stable comparison key.
func spellType(t typesystem.Type) string {
	switch t.Tag {
	case typesystem.KindNamed:
		return "named:" + spellName(t.Name)
	case typesystem.KindBuiltin:
		return "builtin:" + t.Builtin
	case typesystem.KindTag:
		return "tag:" + spellName(t.TagName)
	case typesystem.KindLValueRef:
		return "&" + spellType(derefOrZero(t.Pointee))
	case typesystem.KindRValueRef:
		return "&&" + spellType(derefOrZero(t.Pointee))
	case typesystem.KindPointer:
		return "*" + spellType(derefOrZero(t.Pointee))
	case typesystem.KindMemberPointer:
		return "memptr:" + spellName(t.ClassName) + ":" + spellType(derefOrZero(t.Pointee))
	case typesystem.KindArray:
		return "[]" + spellType(derefOrZero(t.Element))
	case typesystem.KindFunction:
		s := "fn("
		for idx, p := range t.Params {
			if idx > 0 {
				s += ","
			}
			s += spellType(p)
		}
		return s + ")"
	case typesystem.KindSpecialization:
		s := "spec:" + spellName(t.Name) + "<"
		for idx, a := range t.TemplateArgs {
			if idx > 0 {
				s += ","
			}
			s += spellType(a)
		}
		return s + ">"
	case typesystem.KindPack:
		return "pack:" + spellType(derefOrZero(t.Pointee))
	default:
		return "?"
	}
}

func derefOrZero(t *typesystem.Type) typesystem.Type {
	if t == nil {
		return typesystem.Type{}
	}
	return *t
}

func spellName(n *typesystem.Name) string {
	if n == nil {
		return ""
	}
	s := n.Text
	if n.Prefix != nil {
		s = spellName(n.Prefix) + "::" + s
	}
	return s
}
