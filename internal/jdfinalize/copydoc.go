package jdfinalize

import (
	"strings"

	"github.com/oxhq/mrdocs/internal/diag"
	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/javadoc"
)

// mergeCopydoc is pass 3: every InlineCopied node in rec's javadoc is
// resolved, the target is finalized first so nested copydoc chains resolve
// bottom-up, and the target's documentation is merged in according to the
// node's CopyParts. The copied nodes themselves are left in the tree for
// pass 7 to erase.
func (f *finalizer) mergeCopydoc(rec *info.Info) {
	d := rec.Javadoc
	d.Description = f.spliceCopiedList(rec, d.Description)
	for i := range d.Params {
		d.Params[i].Body = f.spliceCopiedList(rec, d.Params[i].Body)
	}
	for i := range d.TParams {
		d.TParams[i].Body = f.spliceCopiedList(rec, d.TParams[i].Body)
	}
	for i := range d.Exceptions {
		d.Exceptions[i].Body = f.spliceCopiedList(rec, d.Exceptions[i].Body)
	}
	d.Returns = f.spliceCopiedList(rec, d.Returns)
	d.Sees = f.spliceCopiedList(rec, d.Sees)
	d.Preconditions = f.spliceCopiedList(rec, d.Preconditions)
	d.Postconditions = f.spliceCopiedList(rec, d.Postconditions)
	if d.Brief != nil {
		d.Brief.Children = f.spliceCopiedList(rec, d.Brief.Children)
	}
}

// spliceCopiedList walks list recursing into block children, replacing each
// InlineCopied node with the nodes its merge produces (possibly none).
func (f *finalizer) spliceCopiedList(rec *info.Info, list []*javadoc.Node) []*javadoc.Node {
	if len(list) == 0 {
		return list
	}
	out := make([]*javadoc.Node, 0, len(list))
	for _, n := range list {
		if n.IsInline && n.Inline == javadoc.InlineCopied {
			out = append(out, f.resolveCopied(rec, n)...)
			out = append(out, n) // kept until pass 7 erases it
			continue
		}
		if len(n.Children) > 0 {
			n.Children = f.spliceCopiedList(rec, n.Children)
		}
		out = append(out, n)
	}
	return out
}

// resolveCopied resolves one InlineCopied node against rec's target and
// returns the description-block nodes to splice in before it (empty for a
// brief-only copy, which has no positional content).
func (f *finalizer) resolveCopied(rec *info.Info, n *javadoc.Node) []*javadoc.Node {
	target, err := f.lookup.Lookup(rec.ID, n.CopyTarget)
	if err != nil {
		f.diags.Emit(diag.Warnf(diag.CodeDocCopyMissingSource, f.locationOf(rec), subjectName(rec),
			"copydoc target %q not found on %s", n.CopyTarget, subjectName(rec)))
		return nil
	}
	n.CopyID = target.ID
	f.finalize(target)
	if target.Javadoc.IsEmpty() {
		f.diags.Emit(diag.Warnf(diag.CodeDocCopyTargetUndocumented, f.locationOf(rec), subjectName(rec),
			"copydoc target %s has no documentation", subjectName(target)))
		return nil
	}

	src := target.Javadoc
	dst := rec.Javadoc
	wantBrief := n.CopyParts == javadoc.CopyAll || n.CopyParts == javadoc.CopyBrief
	wantDescription := n.CopyParts == javadoc.CopyAll || n.CopyParts == javadoc.CopyDescription

	if wantBrief && dst.Brief == nil && src.Brief != nil {
		dst.Brief = cloneNode(src.Brief)
	}
	if !wantDescription {
		return nil
	}

	mergeParams(&dst.Params, src.Params, rec)
	mergeParams(&dst.TParams, src.TParams, rec)
	dst.Returns = mergeNodeUnion(dst.Returns, src.Returns)
	dst.Sees = mergeNodeUnion(dst.Sees, src.Sees)
	dst.Preconditions = mergeNodeUnion(dst.Preconditions, src.Preconditions)
	dst.Postconditions = mergeNodeUnion(dst.Postconditions, src.Postconditions)
	if allowsExceptionMerge(rec) {
		mergeExceptions(&dst.Exceptions, src.Exceptions)
	}

	return cloneNodes(src.Description)
}

// allowsExceptionMerge reports whether rec's noexcept specification permits
// inheriting documented exceptions from a copydoc source: a function
// declared not to throw (bare noexcept, or noexcept(true)) never merges in
// exception documentation from its source.
func allowsExceptionMerge(rec *info.Info) bool {
	if rec.Noexcept == nil {
		return true
	}
	return rec.Noexcept.Operand == "false"
}

// mergeParams appends src entries whose name is not already documented in
// dst and is not empty (an empty name cannot be matched against the
// function's own parameter list by the caller).
func mergeParams(dst *[]javadoc.ParamDoc, src []javadoc.ParamDoc, rec *info.Info) {
	have := make(map[string]bool, len(*dst))
	for _, p := range *dst {
		have[p.Name] = true
	}
	known := knownParamNames(rec)
	for _, p := range src {
		if p.Name == "" || have[p.Name] || (len(known) > 0 && !known[p.Name]) {
			continue
		}
		have[p.Name] = true
		*dst = append(*dst, javadoc.ParamDoc{Name: p.Name, Body: cloneNodes(p.Body)})
	}
}

func knownParamNames(rec *info.Info) map[string]bool {
	if rec.Kind != info.KindFunction {
		return nil
	}
	names := make(map[string]bool, len(rec.Params))
	for _, p := range rec.Params {
		if p.Name != "" {
			names[p.Name] = true
		}
	}
	return names
}

func mergeExceptions(dst *[]javadoc.ExceptionDoc, src []javadoc.ExceptionDoc) {
	have := make(map[string]bool, len(*dst))
	for _, e := range *dst {
		have[e.Name] = true
	}
	for _, e := range src {
		if have[e.Name] {
			continue
		}
		have[e.Name] = true
		*dst = append(*dst, javadoc.ExceptionDoc{Name: e.Name, Body: cloneNodes(e.Body)})
	}
}

// mergeNodeUnion appends cloned src nodes whose rendered text is not already
// present in dst, approximating "dedup by content".
func mergeNodeUnion(dst, src []*javadoc.Node) []*javadoc.Node {
	have := make(map[string]bool, len(dst))
	for _, n := range dst {
		have[nodeText(n)] = true
	}
	for _, n := range src {
		key := nodeText(n)
		if have[key] {
			continue
		}
		have[key] = true
		dst = append(dst, cloneNode(n))
	}
	return dst
}

func nodeText(n *javadoc.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	javadoc.WalkNode(n, func(c *javadoc.Node) {
		if c.IsInline && c.Inline == javadoc.InlineText {
			b.WriteString(c.Text)
		}
	})
	return b.String()
}

func cloneNode(n *javadoc.Node) *javadoc.Node {
	if n == nil {
		return nil
	}
	cp := *n
	cp.Children = cloneNodes(n.Children)
	return &cp
}

func cloneNodes(nodes []*javadoc.Node) []*javadoc.Node {
	if nodes == nil {
		return nil
	}
	out := make([]*javadoc.Node, len(nodes))
	for i, n := range nodes {
		out[i] = cloneNode(n)
	}
	return out
}
