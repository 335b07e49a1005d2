package refparser

import "github.com/oxhq/mrdocs/internal/reference"

// parseTemplateArgList parses "<" template-arg ("," template-arg)* ">".
// Each argument is tried first as a type; if that fails, the raw balanced
// text up to the next top-level comma or closing ">" is captured verbatim
// as a non-type-expression or template-name argument (spec.md 4.B doesn't
// require evaluating these, only counting them for arity matching).
func (p *parser) parseTemplateArgList() ([]reference.TemplateArg, bool) {
	if !p.matchByte('<') {
		return nil, p.fail()
	}
	var args []reference.TemplateArg
	p.skipWS()
	if p.peekByte() == '>' {
		p.pos++
		return args, true
	}
	for {
		arg, ok := p.parseTemplateArg()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		p.skipWS()
		if p.matchByte(',') {
			continue
		}
		break
	}
	p.skipWS()
	if !p.matchByte('>') {
		return nil, p.fail()
	}
	return args, true
}

func (p *parser) parseTemplateArg() (reference.TemplateArg, bool) {
	save := p.pos
	if t, ok := p.parseType(); ok {
		p.skipWS()
		if p.peekByte() == ',' || p.peekByte() == '>' {
			return reference.TemplateArg{Kind: reference.TemplateArgType, Type: t}, true
		}
	}
	p.pos = save
	p.skipWS()

	start := p.pos
	depth := 0
	for !p.eof() {
		switch p.s[p.pos] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			if depth == 0 {
				goto done
			}
			depth--
		case ',':
			if depth == 0 {
				goto done
			}
		}
		p.pos++
	}
done:
	if p.pos == start {
		return reference.TemplateArg{}, p.fail()
	}
	text := p.s[start:p.pos]
	return reference.TemplateArg{Kind: reference.TemplateArgExpr, Text: text}, true
}
