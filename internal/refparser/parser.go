package refparser

import "github.com/oxhq/mrdocs/internal/reference"

// parseReference implements the top-level grammar:
//
//	reference       := ws* "::"? component ( "::" component )* function-tail? qualifiers?
//
// An empty input, or one where no component can be parsed, fails. A
// terminal component (operator, conversion, destructor) may not be
// followed by a further "::component" — spec.md 4.B says each is accepted
// "last component only", and spec.md §8 row 3 treats a further "::" after
// one as a hard parse failure, not merely unconsumed trailing input.
func (p *parser) parseReference() (*reference.ParsedRef, bool) {
	p.skipWS()
	if p.eof() {
		return nil, p.fail()
	}

	ref := &reference.ParsedRef{}
	if p.matchLiteral("::") {
		ref.FullyQualified = true
	}

	comp, terminal, ok := p.parseComponent()
	if !ok {
		return nil, false
	}
	ref.Components = append(ref.Components, comp)

	for {
		save := p.pos
		p.skipWS()
		if !p.matchLiteral("::") {
			p.pos = save
			break
		}
		if terminal {
			// A further "::" after operator/conversion/destructor is a
			// structural error, not acceptable trailing input.
			return nil, p.failAt(save)
		}
		p.skipWS()
		comp, terminal, ok = p.parseComponent()
		if !ok {
			return nil, false
		}
		ref.Components = append(ref.Components, comp)
	}

	tail, ok := p.parseFunctionTail()
	if !ok {
		return nil, false
	}
	ref.Tail = tail

	if tail != nil {
		if !p.applyQualifiers(tail) {
			return nil, false
		}
	}

	return ref, true
}
