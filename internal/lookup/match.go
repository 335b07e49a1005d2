package lookup

import (
	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/reference"
)

// nameMatches implements spec.md 4.D's "name match" rule: a plain
// identifier compares against the member's name, while an operator or
// conversion component compares the member's operator-kind / conversion
// role instead. internal/overloadfold mirrors a group's name, OperatorKind
// and Role onto the synthetic KindOverloads entity it creates, so this
// check applies uniformly to both functions and overload sets.
func nameMatches(m *info.Info, c reference.Component) bool {
	switch {
	case c.IsDestructor:
		return m.Kind == info.KindFunction && m.Role == info.RoleDestructor
	case c.IsConversion():
		return m.Kind == info.KindFunction && m.Role == info.RoleConversion
	case c.IsOperator():
		return (m.Kind == info.KindFunction || m.Kind == info.KindOverloads) && m.OperatorKind == c.Operator
	default:
		return m.Name == c.Identifier
	}
}

// templateArgsMatch requires m to carry template info whose parameter
// arity equals the number of explicit template arguments on c.
func templateArgsMatch(m *info.Info, c reference.Component) bool {
	var tmpl *info.TemplateInfo
	switch m.Kind {
	case info.KindFunction:
		tmpl = m.FunctionTemplate
	case info.KindRecord:
		tmpl = m.RecordTemplate
	}
	if tmpl == nil {
		return false
	}
	return len(tmpl.Params) == len(c.TemplateArgs)
}

// paramListMatches applies only to function-like candidates (functions and
// overload sets) and compares parameter arity only, per spec.md 4.D.
func paramListMatches(m *info.Info, tail *reference.FunctionTail) bool {
	if !m.Kind.IsFunctionLike() {
		return false
	}
	if m.Kind == info.KindOverloads {
		// An overload set as a whole has no single parameter list; arity
		// matching against a tail only makes sense against one of its
		// constituent functions, which are separately present in the
		// candidate pool (expandOverloads unions them in). Fall through to
		// name-only tiers for the set itself.
		return false
	}
	return len(m.Params) == len(tail.Params)
}
