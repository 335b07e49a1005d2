package refparser

import "github.com/oxhq/mrdocs/internal/reference"

// opToken is one entry of the longest-match operator table: a punctuation
// spelling paired with the Operator it denotes. Ordered longest-first so
// "->*" is tried before "->" before "-", per spec.md 4.B.
type opToken struct {
	spelling string
	op       reference.Operator
}

var punctuationOperators = []opToken{
	{"<=>", reference.OpSpaceship},
	{"->*", reference.OpArrowStar},
	{"<<=", reference.OpLeftShiftAssign},
	{">>=", reference.OpRightShiftAssign},
	{"==", reference.OpEqual},
	{"!=", reference.OpNotEqual},
	{"<=", reference.OpLessEqual},
	{">=", reference.OpGreaterEqual},
	{"&&", reference.OpAnd},
	{"||", reference.OpOr},
	{"<<", reference.OpLeftShift},
	{">>", reference.OpRightShift},
	{"++", reference.OpIncrement},
	{"--", reference.OpDecrement},
	{"+=", reference.OpPlusAssign},
	{"-=", reference.OpMinusAssign},
	{"*=", reference.OpStarAssign},
	{"/=", reference.OpSlashAssign},
	{"%=", reference.OpPercentAssign},
	{"&=", reference.OpAmpAssign},
	{"|=", reference.OpPipeAssign},
	{"^=", reference.OpCaretAssign},
	{"->", reference.OpArrow},
	{"+", reference.OpPlus},
	{"-", reference.OpMinus},
	{"*", reference.OpStar},
	{"/", reference.OpSlash},
	{"%", reference.OpPercent},
	{"&", reference.OpAmp},
	{"|", reference.OpPipe},
	{"^", reference.OpCaret},
	{"~", reference.OpTilde},
	{"!", reference.OpNot},
	{"=", reference.OpAssign},
	{"<", reference.OpLess},
	{">", reference.OpGreater},
	{",", reference.OpComma},
	{"?", reference.OpConditional},
}

// matchOperatorToken matches the punctuation/keyword token set recognized
// after "operator", per spec.md 4.B: `()`/`[]` require an exact balanced
// pair with nothing inside, not even whitespace (preserving the source's
// rejection of "operator ( )", spec.md §9); `new`/`delete` and their array
// forms are two-token matches; everything else is the longest punctuation
// token at the cursor. Returns the matched Operator and its exact source
// spelling (for round-tripping "operator +" vs "operator+").
func (p *parser) matchOperatorToken() (reference.Operator, string, bool) {
	start := p.pos
	p.skipWS()

	if p.matchByte('(') {
		if p.matchByte(')') {
			return reference.OpCall, p.s[start:p.pos], true
		}
		p.pos = start
		return reference.OpNone, "", false
	}
	if p.matchByte('[') {
		if p.matchByte(']') {
			return reference.OpSubscript, p.s[start:p.pos], true
		}
		p.pos = start
		return reference.OpNone, "", false
	}
	if p.matchKeyword("new") {
		ws := p.pos
		p.skipWS()
		if p.matchByte('[') && p.matchByte(']') {
			return reference.OpNewArray, p.s[start:p.pos], true
		}
		p.pos = ws
		return reference.OpNew, p.s[start:p.pos], true
	}
	if p.matchKeyword("delete") {
		ws := p.pos
		p.skipWS()
		if p.matchByte('[') && p.matchByte(']') {
			return reference.OpDeleteArray, p.s[start:p.pos], true
		}
		p.pos = ws
		return reference.OpDelete, p.s[start:p.pos], true
	}
	if p.matchKeyword("co_await") {
		return reference.OpCoAwait, p.s[start:p.pos], true
	}

	for _, tok := range punctuationOperators {
		if p.matchLiteral(tok.spelling) {
			return tok.op, p.s[start:p.pos], true
		}
	}

	p.pos = start
	return reference.OpNone, "", false
}
