// Package javadoc defines the Javadoc documentation tree: a tree of block
// and inline nodes extracted from Javadoc-style comments, plus
// the side-channel lists (params, returns, exceptions, ...) that the
// finalizer (internal/jdfinalize) and overload-set brief synthesis consult.
//
// This package holds only tree structure and pure, resolution-independent
// helpers (whitespace trimming, code-block unindent). Anything that needs
// the symbol table or the lookup engine lives in internal/jdfinalize.
package javadoc

import "github.com/oxhq/mrdocs/internal/symbolid"

// BlockKind discriminates top-level and nested block nodes.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockDetails
	BlockBrief
	BlockReturns
	BlockParam
	BlockTParam
	BlockThrows
	BlockSee
	BlockPrecondition
	BlockPostcondition
	BlockAdmonition
	BlockCode
	BlockHeading
	BlockListItem
	BlockUnorderedList
)

// InlineKind discriminates inline (text-level) nodes.
type InlineKind int

const (
	InlineText InlineKind = iota
	InlineStyled
	InlineLink
	InlineReference
	InlineCopied
)

// StyleKind is the style applied to an InlineStyled node.
type StyleKind int

const (
	StyleBold StyleKind = iota
	StyleItalic
	StyleMono
)

// CopyParts selects how much of a copydoc target's documentation a Copied
// node pulls in.
type CopyParts int

const (
	CopyAll CopyParts = iota
	CopyBrief
	CopyDescription
)

// Node is a single element of the documentation tree. It is either a block
// (Kind fields meaningful, Children holds nested blocks/inlines) or an
// inline leaf (Inline fields meaningful). Exactly one of IsBlock/IsInline is
// true.
type Node struct {
	IsBlock  bool
	Block    BlockKind
	IsInline bool
	Inline   InlineKind

	Children []*Node

	// Inline text / styled
	Text  string
	Style StyleKind

	// Inline link
	Href string

	// Inline reference — Target is the raw text as written; ID is filled
	// in by the finalizer's reference-resolution pass.
	// Resolved is false until that pass runs; a failed resolution leaves
	// ID == symbolid.Invalid with Resolved == true.
	Target   string
	ID       symbolid.ID
	Resolved bool

	// Inline copied (@copydoc/@copybrief/@copydetails)
	CopyTarget string
	CopyParts  CopyParts
	CopyID     symbolid.ID

	// Block param/tparam
	ParamName string

	// Block throws
	ExceptionName string

	// Block heading
	HeadingLevel int
}

// ParamDoc is one documented parameter or template parameter.
type ParamDoc struct {
	Name string
	Body []*Node
}

// ExceptionDoc is one documented exception.
type ExceptionDoc struct {
	Name string
	Body []*Node
}

// Doc is the full Javadoc attached to an Info. Brief and
// Description hold the primary prose; the remaining fields are the
// side-channel lists consulted by copydoc merging and overload-set
// synthesis.
type Doc struct {
	Brief       *Node // a BlockBrief node, or nil
	Description []*Node

	Params         []ParamDoc
	TParams        []ParamDoc
	Returns        []*Node
	Exceptions     []ExceptionDoc
	Sees           []*Node
	Preconditions  []*Node
	Postconditions []*Node

	// Relates / Related form the bidirectional @relates edge pair: Relates
	// holds ids this function declared itself related to; Related holds ids
	// of functions that declared themselves related to this symbol.
	Relates []symbolid.ID
	Related []symbolid.ID

	// RelatesRaw holds the unresolved @relates target strings as written;
	// the javadoc finalizer's @relates pass consumes these into Relates and
	// clears this field.
	RelatesRaw []string
}

// HasBrief reports whether d has non-empty brief text.
func (d *Doc) HasBrief() bool {
	return d != nil && d.Brief != nil && len(d.Brief.Children) > 0
}

// IsEmpty reports whether d carries no prose or side-channel content at all.
func (d *Doc) IsEmpty() bool {
	if d == nil {
		return true
	}
	return !d.HasBrief() && len(d.Description) == 0 && len(d.Params) == 0 &&
		len(d.TParams) == 0 && len(d.Returns) == 0 && len(d.Exceptions) == 0 &&
		len(d.Sees) == 0 && len(d.Preconditions) == 0 && len(d.Postconditions) == 0
}

// NewText constructs a plain inline text node.
func NewText(s string) *Node {
	return &Node{IsInline: true, Inline: InlineText, Text: s}
}

// NewParagraph constructs a paragraph block holding children.
func NewParagraph(children ...*Node) *Node {
	return &Node{IsBlock: true, Block: BlockParagraph, Children: children}
}

// Walk visits every node reachable from d — brief, description, and every
// side-channel list — depth first, in a fixed order. Finalizer passes that
// need to touch every InlineReference or BlockCode node in a Doc use this
// instead of repeating the field list.
func (d *Doc) Walk(visit func(*Node)) {
	if d == nil {
		return
	}
	if d.Brief != nil {
		WalkNode(d.Brief, visit)
	}
	for _, n := range d.Description {
		WalkNode(n, visit)
	}
	for _, n := range d.Returns {
		WalkNode(n, visit)
	}
	for _, n := range d.Sees {
		WalkNode(n, visit)
	}
	for _, n := range d.Preconditions {
		WalkNode(n, visit)
	}
	for _, n := range d.Postconditions {
		WalkNode(n, visit)
	}
	for _, p := range d.Params {
		for _, n := range p.Body {
			WalkNode(n, visit)
		}
	}
	for _, p := range d.TParams {
		for _, n := range p.Body {
			WalkNode(n, visit)
		}
	}
	for _, e := range d.Exceptions {
		for _, n := range e.Body {
			WalkNode(n, visit)
		}
	}
}

// WalkNode visits n and every descendant, depth first.
func WalkNode(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		WalkNode(c, visit)
	}
}
