// Package reference defines the parsed-reference model: a value-semantic
// representation of a textual C++ symbol reference, as produced by
// internal/refparser and consumed by internal/lookup.
package reference

import "github.com/oxhq/mrdocs/internal/typesystem"

// Operator enumerates the closed set of overloadable C++ operators.
// Destructors and conversion operators are not members of it; Component
// marks them with IsDestructor and ConversionTarget.
type Operator int

const (
	OpNone Operator = iota
	OpPlus
	OpMinus
	OpStar
	OpSlash
	OpPercent
	OpAmp
	OpPipe
	OpCaret
	OpTilde
	OpNot
	OpAssign
	OpLess
	OpGreater
	OpComma
	OpSpaceship // <=>
	OpLeftShift
	OpRightShift
	OpAnd // &&
	OpOr  // ||
	OpSubscript
	OpCall
	OpArrow
	OpArrowStar
	OpNew
	OpNewArray
	OpDelete
	OpDeleteArray
	OpCoAwait
	OpConditional
	OpIncrement
	OpDecrement
	OpEqual
	OpNotEqual
	OpLessEqual
	OpGreaterEqual
	OpPlusAssign
	OpMinusAssign
	OpStarAssign
	OpSlashAssign
	OpPercentAssign
	OpAmpAssign
	OpPipeAssign
	OpCaretAssign
	OpLeftShiftAssign
	OpRightShiftAssign

	// opSentinel marks the end of the enumeration; not a real operator.
	opSentinel
)

// ReferenceKind distinguishes the ref-qualifier (&, &&, or none) on a
// function tail.
type ReferenceKind int

const (
	RefNone ReferenceKind = iota
	RefLValue
	RefRValue
)

// NoexceptInfo captures a parsed noexcept-clause. An empty Operand with
// Explicit == false denotes plain "noexcept" (unconditional); Explicit with
// a non-empty Operand denotes "noexcept(expr)" with the operand text
// captured verbatim rather than evaluated.
type NoexceptInfo struct {
	Explicit bool
	Operand  string
}

// FunctionTail is the optional parameter-list-and-qualifiers suffix of a
// reference.
type FunctionTail struct {
	HasParams             bool
	Params                []typesystem.Type
	Variadic              bool
	ExplicitObjectParam   bool
	RefQualifier          ReferenceKind
	Const                 bool
	Volatile              bool
	Noexcept              *NoexceptInfo
}

// Component is one `::`-separated segment of a reference. Exactly one of
// Identifier, Operator, or ConversionTarget is meaningful, discriminated by
// which of Operator/ConversionTarget is non-zero/non-nil; Identifier also
// holds the verbatim spelling after a destructor's leading "~".
type Component struct {
	Identifier       string
	IsDestructor     bool
	Operator         Operator
	OperatorSpelled  string // the exact token text matched, e.g. "new[]" vs "new []"
	ConversionTarget *typesystem.Type
	TemplateArgs     []TemplateArg
}

// TemplateArgKind discriminates the union inside TemplateArg.
type TemplateArgKind int

const (
	TemplateArgType TemplateArgKind = iota
	TemplateArgExpr
	TemplateArgTemplateName
)

// TemplateArg is one element of a `<...>` template-argument list. Only Kind
// and the matching field are meaningful; the parser does not evaluate
// non-type arguments, it only captures their source text.
type TemplateArg struct {
	Kind TemplateArgKind
	Type *typesystem.Type
	Text string // raw source text for Expr/TemplateName kinds
}

// ParsedRef is the full output of internal/refparser: an optional
// fully-qualified flag, the component chain, and an optional function tail.
type ParsedRef struct {
	FullyQualified bool
	Components     []Component
	Tail           *FunctionTail
}

// LastComponent returns the final component of the reference, or the zero
// Component if empty (callers must not rely on this for empty refs — the
// parser never produces one).
func (p *ParsedRef) LastComponent() Component {
	if len(p.Components) == 0 {
		return Component{}
	}
	return p.Components[len(p.Components)-1]
}

// IsConversion reports whether the last component is a conversion operator
// (`operator <type>`).
func (c Component) IsConversion() bool {
	return c.ConversionTarget != nil
}

// IsOperator reports whether the component names an overloaded operator
// (excluding conversions, which have their own flag).
func (c Component) IsOperator() bool {
	return c.Operator != OpNone
}
