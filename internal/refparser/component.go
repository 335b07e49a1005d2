package refparser

import "github.com/oxhq/mrdocs/internal/reference"

// parseComponent parses one `::`-separated segment. isTerminal reports
// whether this component kind may only appear as the reference's last
// component (destructor, operator, conversion) — the caller fails the
// overall parse if a "::" follows a terminal component.
func (p *parser) parseComponent() (c reference.Component, isTerminal bool, ok bool) {
	if p.peekByte() == '~' {
		save := p.pos
		p.pos++
		name, idOK := p.parseIdentifier()
		if !idOK {
			p.pos = save
			return c, false, p.fail()
		}
		return reference.Component{Identifier: name, IsDestructor: true}, true, true
	}

	if p.peekKeyword("operator") {
		p.matchKeyword("operator")
		if op, spelled, opOK := p.matchOperatorToken(); opOK {
			return reference.Component{Operator: op, OperatorSpelled: spelled}, true, true
		}
		p.skipWS()
		t, typeOK := p.parseType()
		if !typeOK {
			return c, false, p.fail()
		}
		return reference.Component{ConversionTarget: t}, true, true
	}

	name, idOK := p.parseIdentifier()
	if !idOK {
		return c, false, p.fail()
	}
	c = reference.Component{Identifier: name}

	save := p.pos
	if p.peekByte() == '<' {
		args, argsOK := p.parseTemplateArgList()
		if argsOK {
			c.TemplateArgs = args
		} else {
			p.pos = save
		}
	}
	return c, false, true
}
