package javadoc

import "strings"

// CollapseWhitespace collapses any run of whitespace in s to a single space,
// mirroring HTML text-node semantics.
func CollapseWhitespace(s string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// TrimBlock collapses internal whitespace in every inline-text descendant of
// n (except inside BlockCode, which is verbatim), left-trims the first
// child's leading text and right-trims the last child's trailing text, and
// drops children that become empty as a result. It returns the mutated node,
// or nil if n itself became empty, recursing into every block. BlockCode
// subtrees are left untouched here and handled separately by UnindentCode.
func TrimBlock(n *Node) *Node {
	if n == nil {
		return nil
	}
	if n.IsInline {
		if n.Inline == InlineText {
			n.Text = CollapseWhitespace(n.Text)
			if n.Text == "" {
				return nil
			}
		}
		return n
	}
	if n.Block == BlockCode {
		return n
	}

	kept := make([]*Node, 0, len(n.Children))
	for _, child := range n.Children {
		c := TrimBlock(child)
		if c != nil {
			kept = append(kept, c)
		}
	}

	// ltrim/rtrim may have emptied the first or last element; once it is
	// dropped, the new edge element is trimmed in turn.
	for {
		ltrimFirstText(kept)
		rtrimLastText(kept)
		before := len(kept)
		kept = dropEmptyEdges(kept)
		if len(kept) == before {
			break
		}
	}

	n.Children = kept
	if len(n.Children) == 0 {
		return nil
	}
	return n
}

func ltrimFirstText(nodes []*Node) {
	if len(nodes) == 0 {
		return
	}
	first := nodes[0]
	if first.IsInline && first.Inline == InlineText {
		first.Text = strings.TrimLeft(first.Text, " ")
	}
}

func rtrimLastText(nodes []*Node) {
	if len(nodes) == 0 {
		return
	}
	last := nodes[len(nodes)-1]
	if last.IsInline && last.Inline == InlineText {
		last.Text = strings.TrimRight(last.Text, " ")
	}
}

func dropEmptyEdges(nodes []*Node) []*Node {
	kept := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n.IsInline && n.Inline == InlineText && n.Text == "" {
			continue
		}
		kept = append(kept, n)
	}
	return kept
}

// UnindentCode finds the minimum left margin across the non-blank text
// children of a BlockCode node and strips that many leading characters from
// every child. It is a no-op for non-code blocks.
func UnindentCode(n *Node) {
	if n == nil || !n.IsBlock || n.Block != BlockCode {
		return
	}

	margin := -1
	for _, child := range n.Children {
		if !child.IsInline || child.Inline != InlineText {
			continue
		}
		for _, line := range strings.Split(child.Text, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			m := leadingMargin(line)
			if margin == -1 || m < margin {
				margin = m
			}
		}
	}
	if margin <= 0 {
		return
	}

	for _, child := range n.Children {
		if !child.IsInline || child.Inline != InlineText {
			continue
		}
		lines := strings.Split(child.Text, "\n")
		for i, line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if len(line) >= margin {
				lines[i] = line[margin:]
			} else {
				lines[i] = ""
			}
		}
		child.Text = strings.Join(lines, "\n")
	}
}

func leadingMargin(line string) int {
	n := 0
	for _, r := range line {
		if r == ' ' || r == '\t' {
			n++
			continue
		}
		break
	}
	return n
}

// RemoveCopiedNodes strips InlineCopied nodes from the tree rooted at n
// in-place, after they have been consumed by copydoc merging.
func RemoveCopiedNodes(n *Node) *Node {
	if n == nil {
		return nil
	}
	if n.IsInline {
		if n.Inline == InlineCopied {
			return nil
		}
		return n
	}
	kept := make([]*Node, 0, len(n.Children))
	for _, child := range n.Children {
		c := RemoveCopiedNodes(child)
		if c != nil {
			kept = append(kept, c)
		}
	}
	n.Children = kept
	return n
}
