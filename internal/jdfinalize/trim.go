package jdfinalize

import "github.com/oxhq/mrdocs/internal/javadoc"

// trim is pass 4: whitespace collapsing and empty-child removal across
// every block in the tree except BlockCode, which TrimBlock leaves verbatim.
func (f *finalizer) trim(d *javadoc.Doc) {
	d.Brief = javadoc.TrimBlock(d.Brief)
	d.Description = mapNodes(d.Description, javadoc.TrimBlock)
	d.Returns = mapNodes(d.Returns, javadoc.TrimBlock)
	d.Sees = mapNodes(d.Sees, javadoc.TrimBlock)
	d.Preconditions = mapNodes(d.Preconditions, javadoc.TrimBlock)
	d.Postconditions = mapNodes(d.Postconditions, javadoc.TrimBlock)
	for i := range d.Params {
		d.Params[i].Body = mapNodes(d.Params[i].Body, javadoc.TrimBlock)
	}
	for i := range d.TParams {
		d.TParams[i].Body = mapNodes(d.TParams[i].Body, javadoc.TrimBlock)
	}
	for i := range d.Exceptions {
		d.Exceptions[i].Body = mapNodes(d.Exceptions[i].Body, javadoc.TrimBlock)
	}
}

// autoBrief is pass 5: when enabled and no brief exists, the first leading
// paragraph or details block in Description is promoted to the brief.
func (f *finalizer) autoBrief(d *javadoc.Doc) {
	if !f.cfg.AutoBrief || d.Brief != nil || len(d.Description) == 0 {
		return
	}
	first := d.Description[0]
	if first.Block != javadoc.BlockParagraph && first.Block != javadoc.BlockDetails {
		return
	}
	first.Block = javadoc.BlockBrief
	d.Brief = first
	d.Description = d.Description[1:]
}

// unindentCode is pass 6: every BlockCode node in the tree has its common
// left margin stripped.
func (f *finalizer) unindentCode(d *javadoc.Doc) {
	d.Walk(func(n *javadoc.Node) {
		if n.IsBlock && n.Block == javadoc.BlockCode {
			javadoc.UnindentCode(n)
		}
	})
}

// removeCopiedNodes is pass 7: InlineCopied nodes, already consumed by
// mergeCopydoc, are erased from every block.
func (f *finalizer) removeCopiedNodes(d *javadoc.Doc) {
	d.Brief = javadoc.RemoveCopiedNodes(d.Brief)
	d.Description = mapNodes(d.Description, javadoc.RemoveCopiedNodes)
	d.Returns = mapNodes(d.Returns, javadoc.RemoveCopiedNodes)
	d.Sees = mapNodes(d.Sees, javadoc.RemoveCopiedNodes)
	d.Preconditions = mapNodes(d.Preconditions, javadoc.RemoveCopiedNodes)
	d.Postconditions = mapNodes(d.Postconditions, javadoc.RemoveCopiedNodes)
	for i := range d.Params {
		d.Params[i].Body = mapNodes(d.Params[i].Body, javadoc.RemoveCopiedNodes)
	}
	for i := range d.TParams {
		d.TParams[i].Body = mapNodes(d.TParams[i].Body, javadoc.RemoveCopiedNodes)
	}
	for i := range d.Exceptions {
		d.Exceptions[i].Body = mapNodes(d.Exceptions[i].Body, javadoc.RemoveCopiedNodes)
	}
}

// mapNodes applies fn to each node in list, dropping any that become nil.
func mapNodes(list []*javadoc.Node, fn func(*javadoc.Node) *javadoc.Node) []*javadoc.Node {
	if len(list) == 0 {
		return list
	}
	out := list[:0]
	for _, n := range list {
		if r := fn(n); r != nil {
			out = append(out, r)
		}
	}
	return out
}
