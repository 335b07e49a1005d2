package refparser

import "github.com/oxhq/mrdocs/internal/typesystem"

// reservedKeywords are decl-specifier / clause keywords that can never be a
// declarator's trailing identifier (parameter name). Rejecting them here is
// what makes a stray keyword after a terminal specifier a parse failure
// instead of being swallowed as a parameter name — e.g. "auto int" must
// fail rather than parse as "auto" typed parameter named "int".
var reservedKeywords = map[string]bool{
	"const": true, "volatile": true, "signed": true, "unsigned": true,
	"short": true, "long": true, "class": true, "struct": true, "union": true,
	"enum": true, "typename": true, "auto": true, "decltype": true,
	"void": true, "bool": true, "char": true, "wchar_t": true,
	"char8_t": true, "char16_t": true, "char32_t": true, "int": true,
	"float": true, "double": true, "const_cast": true, "this": true,
	"noexcept": true, "throw": true, "operator": true,
}

// parseDeclarator applies pointer/reference/array/function declarator
// suffixes to base, per spec.md 4.B "Declarators". allowName selects
// whether a trailing identifier (a parameter name) may be consumed and
// discarded — true for parameter declarators, irrelevant elsewhere since
// template-argument/conversion-target types never carry one.
func (p *parser) parseDeclarator(base *typesystem.Type, allowName bool) (*typesystem.Type, bool) {
	cur := base

	// Pointers (each optionally cv-qualified) may stack arbitrarily. A
	// member-pointer ("C::*") may appear at most once, only at the start of
	// the run, and ends it: it may not follow a plain pointer
	// (fail("f(A* C::* ptr)")), and no further pointer or member-pointer may
	// follow it (ParseRef.cpp asserts fail("f(S C::** D)")). A reference may
	// never follow a pointer or member-pointer run (ParseRef.cpp asserts
	// fail("f(A*&ptr)"), fail("f(A*&&ptr)"), fail("f(S C::*& D)")).
	sawPointer := false
	sawMemberPointer := false
	for {
		p.skipWS()
		if !sawMemberPointer {
			save := p.pos
			if className, ok := p.tryParseMemberPointerPrefix(); ok {
				if sawPointer {
					p.pos = save
					return nil, p.fail()
				}
				p.skipWS()
				cur = &typesystem.Type{Tag: typesystem.KindMemberPointer, ClassName: className, Pointee: cur, Kind: p.matchPointerCV()}
				sawPointer = true
				sawMemberPointer = true
				continue
			}
			p.pos = save
		}
		if !p.matchByte('*') {
			break
		}
		if sawMemberPointer {
			return nil, p.fail()
		}
		sawPointer = true
		p.skipWS()
		cur = &typesystem.Type{Tag: typesystem.KindPointer, Pointee: cur, Kind: p.matchPointerCV()}
	}

	p.skipWS()
	refSeen := false
	if p.peekByte() == '&' {
		if sawPointer {
			return nil, p.fail()
		}
		if p.matchLiteral("&&") {
			cur = &typesystem.Type{Tag: typesystem.KindRValueRef, Pointee: cur}
		} else {
			p.matchByte('&')
			cur = &typesystem.Type{Tag: typesystem.KindLValueRef, Pointee: cur}
		}
		refSeen = true
	}
	if refSeen {
		p.skipWS()
		// "After a reference, no pointer, reference, array, or function
		// suffix may follow" (spec.md 4.B) — also catches "&&&&" stacking.
		if p.peekByte() == '*' || p.peekByte() == '&' || p.peekByte() == '[' || p.peekByte() == '(' {
			return nil, p.fail()
		}
	}

	if !refSeen && p.peekByte() == '(' {
		// A parenthesized sub-declarator: "A (fn(int, A))" declares fn as a
		// function returning A. Recurse into the parens with the same base,
		// then the outer suffix chain (if any) applies to the result.
		save := p.pos
		p.pos++
		inner, ok := p.parseDeclarator(cur, allowName)
		if !ok {
			return nil, false
		}
		p.skipWS()
		if !p.matchByte(')') {
			p.pos = save
			return nil, p.fail()
		}
		cur = inner
		return p.parseSuffixChain(cur)
	}

	if allowName {
		p.skipWS()
		if !p.eof() && isIdentStart(p.s[p.pos]) {
			save := p.pos
			name, _ := p.parseIdentifier()
			if reservedKeywords[name] {
				p.pos = save
			}
		}
	}

	return p.parseSuffixChain(cur)
}

// matchPointerCV consumes the const/volatile qualifiers trailing a pointer
// or member-pointer star, advancing past whitespace between them.
func (p *parser) matchPointerCV() typesystem.CVQualifiers {
	cv := typesystem.CVQualifiers{}
	for {
		if p.matchKeyword("const") {
			cv.Const = true
			p.skipWS()
			continue
		}
		if p.matchKeyword("volatile") {
			cv.Volatile = true
			p.skipWS()
			continue
		}
		break
	}
	return cv
}

// tryParseMemberPointerPrefix looks for a qualified-name run immediately
// followed by "::*" (spec.md 4.B's member-pointer declarator form, e.g.
// "C::*" or "C::D::*"). On failure it restores p.pos so an ordinary
// declarator (a bare parameter name, or nothing) can still be parsed.
func (p *parser) tryParseMemberPointerPrefix() (*typesystem.Name, bool) {
	save := p.pos
	name, ok := p.parseQualifiedName()
	if !ok {
		p.pos = save
		return nil, false
	}
	p.skipWS()
	if !p.matchLiteral("::") {
		p.pos = save
		return nil, false
	}
	p.skipWS()
	if !p.matchByte('*') {
		p.pos = save
		return nil, false
	}
	return name, true
}

// parseSuffixChain consumes any run of array/function declarator suffixes
// following the pointer/reference/name portion of a declarator.
func (p *parser) parseSuffixChain(cur *typesystem.Type) (*typesystem.Type, bool) {
	for {
		p.skipWS()
		switch p.peekByte() {
		case '[':
			bounds, ok := p.balancedBrackets()
			if !ok {
				return nil, false
			}
			cur = &typesystem.Type{Tag: typesystem.KindArray, Element: cur, BoundsExpr: bounds}
		case '(':
			params, variadic, ok := p.parseParenParamList()
			if !ok {
				return nil, false
			}
			cur = &typesystem.Type{Tag: typesystem.KindFunction, Return: cur, Params: params, Variadic: variadic}
		default:
			return cur, true
		}
	}
}

// parseParenParamList parses a balanced "(" param ("," param)* ")" used by
// both function-suffix declarators and the top-level function-tail, minus
// the "void" empty-parameter special case (only the top-level tail honors
// that, per spec.md 4.B).
func (p *parser) parseParenParamList() ([]typesystem.Type, bool, bool) {
	params, variadic, _, ok := p.parseParenParamListExplicit()
	return params, variadic, ok
}

// parseParenParamListExplicit is parseParenParamList plus the
// explicit-object-parameter bit, used by the top-level function tail
// (spec.md 4.B: `param := "this"? decl-specifier-seq declarator?`).
func (p *parser) parseParenParamListExplicit() ([]typesystem.Type, bool, bool, bool) {
	if !p.matchByte('(') {
		return nil, false, false, p.fail()
	}
	var params []typesystem.Type
	variadic := false
	explicitObject := false
	p.skipWS()
	if p.peekByte() == ')' {
		p.pos++
		return params, variadic, explicitObject, true
	}
	first := true
	for {
		p.skipWS()
		if p.matchLiteral("...") {
			variadic = true
			p.skipWS()
			if p.peekByte() != ')' {
				return nil, false, false, p.fail()
			}
			break
		}
		isThis := false
		if first && p.matchKeyword("this") {
			isThis = true
			p.skipWS()
		}
		t, ok := p.parseParam()
		if !ok {
			return nil, false, false, false
		}
		if isThis {
			explicitObject = true
		}
		params = append(params, t)
		first = false
		p.skipWS()
		if p.matchByte(',') {
			continue
		}
		break
	}
	p.skipWS()
	if !p.matchByte(')') {
		return nil, false, false, p.fail()
	}
	return params, variadic, explicitObject, true
}

// parseParam parses one function-tail parameter: a decl-specifier-seq and
// an optional declarator (the parameter name, if any, is parsed and
// discarded by parseDeclarator).
func (p *parser) parseParam() (typesystem.Type, bool) {
	st, ok := p.parseDeclSpecifierSeq()
	if !ok {
		return typesystem.Type{}, false
	}
	base := st.buildType()
	t, ok := p.parseDeclarator(&base, true)
	if !ok {
		return typesystem.Type{}, false
	}
	return *t, true
}
