package refparser

import (
	"testing"

	"github.com/oxhq/mrdocs/internal/reference"
	"github.com/oxhq/mrdocs/internal/typesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AcceptanceTable(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{"empty input fails", "", false},
		{"bare identifier", "a", true},
		{"leading scope", "::a", true},
		{"qualified chain", "a::b::c", true},

		{"destructor last component", "a::~b", true},
		{"operator last component", "a::operator+", true},
		{"call operator last component", "a::operator()", true},
		{"conversion operator last component", "a::operator bool", true},

		{"component after conversion is rejected", "a::operator bool::c", false},
		{"component after operator is rejected", "a::operator+::c", false},

		{"empty parameter list", "f()", true},
		{"void parameter list", "f(void)", true},
		{"void combined with another parameter", "f(void, void)", false},

		{"duplicate const specifier", "f(const const int)", false},
		{"triple long specifier", "f(long long long int)", false},
		{"signed combined with class type", "f(signed A)", false},
		{"auto followed by stray keyword", "f(auto int)", false},

		{"duplicate trailing const", "f(int) const const", false},
		{"trailing const and ref qualifier", "f(int) const &", true},
		{"conditional noexcept operand", "f(int) noexcept(2+2)", true},

		{"nested parenthesized declarator", "f(A (fn(int, A))) noexcept((2+5)+(3+2))", true},
		{"reference cannot be followed by another reference", "f(A&&&& x)", false},

		{"reference cannot follow a pointer", "f(A*&ptr)", false},
		{"rvalue reference cannot follow a pointer", "f(A*&&ptr)", false},
		{"pointer cannot follow a reference", "f(A&* x)", false},

		{"member pointer", "f(S C::* D)", true},
		{"nested member pointer", "f(S C::D::* E)", true},
		{"member pointer cannot stack another pointer", "f(S C::** D)", false},
		{"member pointer cannot be followed by a reference", "f(S C::*& D)", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Parse(tc.input)
			assert.Equalf(t, tc.ok, res.OK, "Parse(%q)", tc.input)
			if tc.ok {
				require.NotNil(t, res.Ref)
			} else {
				assert.Nil(t, res.Ref)
			}
		})
	}
}

// A reference to a pointer is ill-formed in this grammar: an
// internal/pointed-to reference can never follow a pointer run.
func TestParse_ReferenceFollowingPointerIsRejected(t *testing.T) {
	res := Parse("f(A*&ptr)")
	require.False(t, res.OK)
	require.Nil(t, res.Ref)
}

func TestParse_MemberPointerProducesClassNameAndPointee(t *testing.T) {
	res := Parse("f(S C::* D)")
	require.True(t, res.OK)
	require.Len(t, res.Ref.Tail.Params, 1)
	p := res.Ref.Tail.Params[0]
	require.Equal(t, typesystem.KindMemberPointer, p.Tag)
	require.NotNil(t, p.ClassName)
	assert.Equal(t, "C", p.ClassName.Text)
	require.NotNil(t, p.Pointee)
	assert.Equal(t, typesystem.KindNamed, p.Pointee.Tag)
}

func TestParse_NestedMemberPointerChainsQualifiers(t *testing.T) {
	res := Parse("f(S C::D::* E)")
	require.True(t, res.OK)
	p := res.Ref.Tail.Params[0]
	require.Equal(t, typesystem.KindMemberPointer, p.Tag)
	require.NotNil(t, p.ClassName)
	assert.Equal(t, "D", p.ClassName.Text)
	require.NotNil(t, p.ClassName.Prefix)
	assert.Equal(t, "C", p.ClassName.Prefix.Text)
}

func TestParse_FullyQualifiedFlag(t *testing.T) {
	res := Parse("::foo")
	require.True(t, res.OK)
	assert.True(t, res.Ref.FullyQualified)
	assert.False(t, Parse("foo").Ref.FullyQualified)
}

func TestParse_TemplateArguments(t *testing.T) {
	res := Parse("vector<int>::push_back")
	require.True(t, res.OK)
	require.Len(t, res.Ref.Components, 2)
	first := res.Ref.Components[0]
	require.Len(t, first.TemplateArgs, 1)
	assert.Equal(t, reference.TemplateArgType, first.TemplateArgs[0].Kind)
	assert.Equal(t, "push_back", res.Ref.Components[1].Identifier)
}

func TestParse_TemplateArgumentArityOnly(t *testing.T) {
	// A non-type argument that cannot also parse as a type-id (here an
	// arithmetic expression) is captured as raw text, not evaluated — arity
	// is all the lookup layer needs. A bare identifier argument is always
	// accepted as a type-id first, since the parser has no symbol table to
	// disambiguate "is N a type or a value" — that ambiguity is exactly why
	// template-argument matching in spec.md 4.D is arity-only.
	res := Parse("array<int, N+1>")
	require.True(t, res.OK)
	args := res.Ref.Components[0].TemplateArgs
	require.Len(t, args, 2)
	assert.Equal(t, reference.TemplateArgType, args[0].Kind)
	assert.Equal(t, reference.TemplateArgExpr, args[1].Kind)
	assert.Equal(t, "N+1", args[1].Text)
}

func TestParse_OperatorArityDisambiguationIsLeftToCaller(t *testing.T) {
	res := Parse("A::operator*")
	require.True(t, res.OK)
	last := res.Ref.LastComponent()
	assert.True(t, last.IsOperator())
	assert.Equal(t, reference.OpStar, last.Operator)
}

func TestParse_NewDeleteArrayForms(t *testing.T) {
	res := Parse("A::operator new[]")
	require.True(t, res.OK)
	assert.Equal(t, reference.OpNewArray, res.Ref.LastComponent().Operator)

	res = Parse("A::operator delete")
	require.True(t, res.OK)
	assert.Equal(t, reference.OpDelete, res.Ref.LastComponent().Operator)
}

func TestParse_SpaceshipLongestMatch(t *testing.T) {
	res := Parse("A::operator<=>")
	require.True(t, res.OK)
	assert.Equal(t, reference.OpSpaceship, res.Ref.LastComponent().Operator)
}

func TestParse_DestructorIdentifier(t *testing.T) {
	res := Parse("Widget::~Widget")
	require.True(t, res.OK)
	last := res.Ref.LastComponent()
	assert.True(t, last.IsDestructor)
	assert.Equal(t, "Widget", last.Identifier)
}

func TestParse_NoexceptUnconditional(t *testing.T) {
	res := Parse("f() noexcept")
	require.True(t, res.OK)
	require.NotNil(t, res.Ref.Tail.Noexcept)
	assert.False(t, res.Ref.Tail.Noexcept.Explicit)
}

func TestParse_ThrowEmptyIsNoexceptEquivalent(t *testing.T) {
	res := Parse("f() throw()")
	require.True(t, res.OK)
	require.NotNil(t, res.Ref.Tail.Noexcept)
}

func TestParse_RvalueRefQualifier(t *testing.T) {
	res := Parse("f() &&")
	require.True(t, res.OK)
	assert.Equal(t, reference.RefRValue, res.Ref.Tail.RefQualifier)
}

func TestParse_TrailingInputNotConsumedIsNotAnError(t *testing.T) {
	// "Trailing bytes are not themselves an error at this layer" — the
	// caller (lookup, jdfinalize) decides whether leftover content matters.
	res := Parse("foo garbage")
	require.True(t, res.OK)
	assert.Equal(t, 3, res.Pos)
}

func TestParseWithContinuation_AppendsUntilClosed(t *testing.T) {
	siblings := []string{"int) const"}
	i := 0
	next := func() (string, bool) {
		if i >= len(siblings) {
			return "", false
		}
		s := siblings[i]
		i++
		return s, true
	}
	res := ParseWithContinuation("foo(", next)
	require.True(t, res.OK)
	assert.True(t, res.Ref.Tail.Const)
}

func TestParseWithContinuation_StopsWhenNoSiblingsRemain(t *testing.T) {
	next := func() (string, bool) { return "", false }
	res := ParseWithContinuation("foo(", next)
	assert.False(t, res.OK)
}

func TestParseWithContinuation_StopsOnNoProgress(t *testing.T) {
	calls := 0
	next := func() (string, bool) {
		calls++
		if calls > 3 {
			return "", false
		}
		return "", true
	}
	res := ParseWithContinuation("foo(", next)
	assert.False(t, res.OK)
	assert.LessOrEqual(t, calls, 2)
}
