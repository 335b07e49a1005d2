package jdfinalize

import (
	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/javadoc"
	"github.com/oxhq/mrdocs/internal/reference"
)

// synthesizeOverloadBrief is pass 9: an overloads entity without its own
// javadoc gets a brief synthesized from its members — their shared brief
// text if they agree, else a category name — plus a union of their
// side-channel documentation.
func (f *finalizer) synthesizeOverloadBrief(set *info.Info) {
	if !set.Javadoc.IsEmpty() {
		return
	}
	var members []*info.Info
	for _, id := range set.OverloadMembers {
		if m := f.corpus.Find(id); m != nil {
			members = append(members, m)
		}
	}
	if len(members) == 0 {
		return
	}

	brief := sharedBrief(members)
	if brief == "" {
		brief = categoryBrief(members[0])
	}

	doc := &javadoc.Doc{}
	if brief != "" {
		doc.Brief = &javadoc.Node{IsBlock: true, Block: javadoc.BlockBrief,
			Children: []*javadoc.Node{javadoc.NewText(brief)}}
	}
	for _, m := range members {
		if m.Javadoc == nil {
			continue
		}
		mergeParams(&doc.Params, m.Javadoc.Params, set)
		mergeParams(&doc.TParams, m.Javadoc.TParams, set)
		doc.Returns = mergeNodeUnion(doc.Returns, m.Javadoc.Returns)
		doc.Sees = mergeNodeUnion(doc.Sees, m.Javadoc.Sees)
		doc.Preconditions = mergeNodeUnion(doc.Preconditions, m.Javadoc.Preconditions)
		doc.Postconditions = mergeNodeUnion(doc.Postconditions, m.Javadoc.Postconditions)
		mergeExceptions(&doc.Exceptions, m.Javadoc.Exceptions)
	}
	set.Javadoc = doc
}

func sharedBrief(members []*info.Info) string {
	text := ""
	for i, m := range members {
		if m.Javadoc == nil || !m.Javadoc.HasBrief() {
			return ""
		}
		t := nodeText(m.Javadoc.Brief)
		if i == 0 {
			text = t
		} else if t != text {
			return ""
		}
	}
	return text
}

func categoryBrief(m *info.Info) string {
	switch {
	case m.Role == info.RoleConstructor:
		return "Constructors"
	case m.Role == info.RoleDestructor:
		return "Destructors"
	case m.Role == info.RoleConversion:
		return "Conversion operators"
	case m.OperatorKind != reference.OpNone:
		return reference.GetOperatorReadableName(m.OperatorKind, operatorArity(m)) + " operators"
	default:
		return m.Name + " overloads"
	}
}
