package refparser

import "github.com/oxhq/mrdocs/internal/reference"

// parseFunctionTail parses the optional "(" ( "void" | param-list )? ")"
// suffix. A nil, true return means no "(" was present at all (no tail is
// not itself an error — the caller decides whether that's acceptable).
func (p *parser) parseFunctionTail() (*reference.FunctionTail, bool) {
	if p.peekByte() != '(' {
		return nil, true
	}
	save := p.pos
	p.pos++ // consume '('
	p.skipWS()

	if p.peekKeyword("void") {
		save2 := p.pos
		p.matchKeyword("void")
		p.skipWS()
		if p.peekByte() == ')' {
			p.pos++
			return &reference.FunctionTail{HasParams: true}, true
		}
		// "void" combined with anything else ("void, void") is invalid.
		p.pos = save2
		return nil, p.fail()
	}

	p.pos = save
	params, variadic, explicitObject, ok := p.parseParenParamListExplicit()
	if !ok {
		return nil, false
	}
	return &reference.FunctionTail{
		HasParams:           true,
		Params:              params,
		Variadic:            variadic,
		ExplicitObjectParam: explicitObject,
	}, true
}

// applyQualifiers parses the optional cv/ref-qualifier/noexcept suffix
// trailing a function tail: "(const|volatile)* ref-qual? noexcept-clause?".
// As in the decl-specifier cv run, at most one of each is allowed here too
// ("f(int) const const" fails), and a ref-qualifier may appear at most
// once.
func (p *parser) applyQualifiers(tail *reference.FunctionTail) bool {
	constN, volatileN := 0, 0
	for {
		p.skipWS()
		switch {
		case p.matchKeyword("const"):
			constN++
			if constN > 1 {
				return p.fail()
			}
			tail.Const = true
			continue
		case p.matchKeyword("volatile"):
			volatileN++
			if volatileN > 1 {
				return p.fail()
			}
			tail.Volatile = true
			continue
		}
		break
	}

	p.skipWS()
	if p.matchLiteral("&&") {
		tail.RefQualifier = reference.RefRValue
	} else if p.matchByte('&') {
		tail.RefQualifier = reference.RefLValue
	}

	p.skipWS()
	if p.matchKeyword("noexcept") {
		p.skipWS()
		if p.peekByte() == '(' {
			operand, ok := p.balancedParens()
			if !ok {
				return false
			}
			tail.Noexcept = &reference.NoexceptInfo{Explicit: true, Operand: operand}
		} else {
			tail.Noexcept = &reference.NoexceptInfo{}
		}
	} else if p.matchKeyword("throw") {
		p.skipWS()
		if !p.matchByte('(') {
			return p.fail()
		}
		p.skipWS()
		if !p.matchByte(')') {
			return p.fail()
		}
		tail.Noexcept = &reference.NoexceptInfo{}
	}
	return true
}
