package refparser

import "strings"

// parser holds the advancing cursor over the input byte range. failPos
// records the offset of the first offending byte once a production fails;
// it is only ever set once (the first failure wins), since backtracking
// never occurs across non-operator productions.
type parser struct {
	s       string
	pos     int
	failed  bool
	failPos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.s)
}

func (p *parser) peekByte() byte {
	if p.eof() {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) fail() bool {
	if !p.failed {
		p.failed = true
		p.failPos = p.pos
	}
	return false
}

// failAt records a failure position at an offset other than the current
// cursor, for productions that detect the error only after consuming ws.
func (p *parser) failAt(pos int) bool {
	if !p.failed {
		p.failed = true
		p.failPos = pos
	}
	return false
}

func (p *parser) skipWS() {
	for !p.eof() {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// matchByte consumes b at the cursor if present.
func (p *parser) matchByte(b byte) bool {
	if p.peekByte() == b {
		p.pos++
		return true
	}
	return false
}

// matchLiteral consumes lit verbatim if the input at the cursor starts with
// it, without regard to word boundaries — used for punctuation tokens.
func (p *parser) matchLiteral(lit string) bool {
	if strings.HasPrefix(p.s[p.pos:], lit) {
		p.pos += len(lit)
		return true
	}
	return false
}

// matchKeyword consumes lit only if it appears as a whole identifier token
// (not a prefix of a longer identifier) — used for reserved words like
// "const", "operator", "noexcept".
func (p *parser) matchKeyword(lit string) bool {
	if !strings.HasPrefix(p.s[p.pos:], lit) {
		return false
	}
	after := p.pos + len(lit)
	if after < len(p.s) && isIdentByte(p.s[after]) {
		return false
	}
	p.pos += len(lit)
	return true
}

// peekKeyword reports whether lit appears as a whole identifier token at the
// cursor, without consuming it.
func (p *parser) peekKeyword(lit string) bool {
	if !strings.HasPrefix(p.s[p.pos:], lit) {
		return false
	}
	after := p.pos + len(lit)
	return after >= len(p.s) || !isIdentByte(p.s[after])
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentByte(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

// parseIdentifier consumes one identifier token, failing if none is present
// at the cursor.
func (p *parser) parseIdentifier() (string, bool) {
	if p.eof() || !isIdentStart(p.s[p.pos]) {
		return "", p.fail()
	}
	start := p.pos
	p.pos++
	for !p.eof() && isIdentByte(p.s[p.pos]) {
		p.pos++
	}
	return p.s[start:p.pos], true
}

// balancedBrackets consumes a "[" ... "]" span (the opening bracket must be
// at the cursor), tracking nesting, and returns the raw text strictly
// between the outermost pair.
func (p *parser) balancedBrackets() (string, bool) {
	if !p.matchByte('[') {
		return "", p.fail()
	}
	start := p.pos
	depth := 1
	for !p.eof() {
		switch p.s[p.pos] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				text := p.s[start:p.pos]
				p.pos++
				return text, true
			}
		}
		p.pos++
	}
	return "", p.fail()
}

// balancedParens consumes a "(" ... ")" span (the opening paren must be at
// the cursor), tracking nested parens, and returns the raw text strictly
// between the outermost pair.
func (p *parser) balancedParens() (string, bool) {
	if !p.matchByte('(') {
		return "", p.fail()
	}
	start := p.pos
	depth := 1
	for !p.eof() {
		switch p.s[p.pos] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				text := p.s[start:p.pos]
				p.pos++
				return text, true
			}
		}
		p.pos++
	}
	return "", p.fail()
}
