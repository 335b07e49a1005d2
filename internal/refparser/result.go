// Package refparser implements the hand-written recursive-descent parser
// that turns a textual C++ symbol reference (as written after @ref, inside
// @copydoc, or as a lookup query) into a reference.ParsedRef.
//
// The parser threads an advancing byte cursor; every production returns
// success/failure and advances the cursor only on success. Optional
// productions (template-argument lists, member-pointer prefixes, a template
// argument tried first as a type) backtrack by resetting the cursor to a
// saved offset, matching the "recursive descent with side effects" design
// in the finalizer's own reference grammar.
package refparser

import "github.com/oxhq/mrdocs/internal/reference"

// ParseResult is the outcome of Parse. On success, Ref is non-nil and Pos is
// the offset of the first unconsumed byte — trailing bytes are not
// themselves an error at this layer, the caller decides whether leftover
// input is acceptable. On failure, Ref is nil and Pos is the offset of the
// first offending byte.
type ParseResult struct {
	Ref *reference.ParsedRef
	Pos int
	OK  bool
}

// Parse parses the longest valid reference prefix of s. See the package
// grammar in parser.go for what "valid" means.
func Parse(s string) ParseResult {
	p := &parser{s: s}
	ref, ok := p.parseReference()
	if !ok {
		return ParseResult{Pos: p.failPos}
	}
	return ParseResult{Ref: ref, Pos: p.pos, OK: true}
}
