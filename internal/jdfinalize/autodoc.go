package jdfinalize

import (
	"fmt"

	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/javadoc"
	"github.com/oxhq/mrdocs/internal/reference"
	"github.com/oxhq/mrdocs/internal/typesystem"
)

// autoSynthesizeFunction is pass 8: a function brief is synthesized from its
// role/operator kind when missing, unnamed parameters are assigned
// conventional names, and undocumented parameters get a synthesized
// description where one can be inferred.
func (f *finalizer) autoSynthesizeFunction(rec *info.Info) {
	assignConventionalParamNames(rec)
	if rec.Javadoc == nil {
		rec.Javadoc = &javadoc.Doc{}
	}
	if !rec.Javadoc.HasBrief() {
		if brief := synthesizeBrief(rec); brief != "" {
			rec.Javadoc.Brief = &javadoc.Node{IsBlock: true, Block: javadoc.BlockBrief,
				Children: []*javadoc.Node{javadoc.NewText(brief)}}
		}
	}
	f.synthesizeParamDescriptions(rec)
}

func synthesizeBrief(rec *info.Info) string {
	switch {
	case rec.Role == info.RoleConstructor:
		switch classifyCopyMove(rec) {
		case copyKind:
			return "Copy constructor"
		case moveKind:
			return "Move constructor"
		}
		if len(rec.Params) == 0 {
			return "Default constructor"
		}
		return ""
	case rec.Role == info.RoleDestructor:
		return "Destructor"
	case rec.Role == info.RoleConversion:
		return "Conversion to " + spellReturnType(rec)
	case rec.OperatorKind == reference.OpAssign:
		switch classifyCopyMove(rec) {
		case copyKind:
			return "Copy assignment operator"
		case moveKind:
			return "Move assignment operator"
		}
		return "Assignment operator"
	case rec.OperatorKind != reference.OpNone:
		return reference.GetOperatorReadableName(rec.OperatorKind, operatorArity(rec)) + " operator"
	default:
		return ""
	}
}

type copyMoveKind int

const (
	notCopyMove copyMoveKind = iota
	copyKind
	moveKind
)

// classifyCopyMove reports whether rec is a single-parameter special member
// whose sole parameter is an lvalue (copy) or rvalue (move) reference.
func classifyCopyMove(rec *info.Info) copyMoveKind {
	if len(rec.Params) != 1 {
		return notCopyMove
	}
	switch rec.Params[0].Type.Tag {
	case typesystem.KindLValueRef:
		return copyKind
	case typesystem.KindRValueRef:
		return moveKind
	}
	return notCopyMove
}

// operatorArity counts operands: a non-static member operator has an
// implicit left operand (the enclosing object) in addition to its
// parameter list; a free function or static operator does not.
func operatorArity(rec *info.Info) int {
	n := len(rec.Params)
	if rec.IsRecordMethod && !rec.IsStatic {
		n++
	}
	return n
}

func spellReturnType(rec *info.Info) string {
	if rec.Return == nil {
		return "T"
	}
	return typeDisplayName(*rec.Return)
}

func typeDisplayName(t typesystem.Type) string {
	switch t.Tag {
	case typesystem.KindNamed:
		return nameDisplayName(t.Name)
	case typesystem.KindBuiltin:
		return t.Builtin
	case typesystem.KindTag:
		return nameDisplayName(t.TagName)
	case typesystem.KindLValueRef:
		return typeDisplayName(derefType(t.Pointee)) + "&"
	case typesystem.KindRValueRef:
		return typeDisplayName(derefType(t.Pointee)) + "&&"
	case typesystem.KindPointer:
		return typeDisplayName(derefType(t.Pointee)) + "*"
	default:
		return "T"
	}
}

func derefType(t *typesystem.Type) typesystem.Type {
	if t == nil {
		return typesystem.Type{}
	}
	return *t
}

func nameDisplayName(n *typesystem.Name) string {
	if n == nil {
		return ""
	}
	if n.Prefix != nil {
		return nameDisplayName(n.Prefix) + "::" + n.Text
	}
	return n.Text
}

// assignConventionalParamNames fills in names for unnamed parameters,
// chosen from the function's role the way a human documenter would.
func assignConventionalParamNames(rec *info.Info) {
	if len(rec.Params) == 0 {
		return
	}
	isSpecial := rec.Role == info.RoleConstructor || rec.OperatorKind == reference.OpAssign
	if isSpecial && len(rec.Params) == 1 && rec.Params[0].Name == "" && classifyCopyMove(rec) != notCopyMove {
		rec.Params[0].Name = "other"
		return
	}
	if rec.OperatorKind == reference.OpLeftShift || rec.OperatorKind == reference.OpRightShift {
		if len(rec.Params) >= 1 && rec.Params[0].Name == "" {
			if rec.OperatorKind == reference.OpLeftShift {
				rec.Params[0].Name = "os"
			} else {
				rec.Params[0].Name = "is"
			}
		}
		if len(rec.Params) >= 2 && rec.Params[1].Name == "" {
			rec.Params[1].Name = "value"
		}
		return
	}
	if reference.IsBinaryOperator(rec.OperatorKind) && len(rec.Params) == 1 && rec.Params[0].Name == "" {
		rec.Params[0].Name = "rhs"
		return
	}
	for i := range rec.Params {
		if rec.Params[i].Name == "" {
			if len(rec.Params) == 1 {
				rec.Params[i].Name = "value"
			} else {
				rec.Params[i].Name = fmt.Sprintf("arg%d", i+1)
			}
		}
	}
}

// synthesizeParamDescriptions adds a ParamDoc entry for every named
// parameter not already documented, inferring text from the function's role
// or, failing that, from the parameter type's own brief.
func (f *finalizer) synthesizeParamDescriptions(rec *info.Info) {
	d := rec.Javadoc
	documented := make(map[string]bool, len(d.Params))
	for _, p := range d.Params {
		documented[p.Name] = true
	}
	kind := classifyCopyMove(rec)
	for _, p := range rec.Params {
		if p.Name == "" || documented[p.Name] {
			continue
		}
		text := conventionalParamText(rec, kind, p)
		if text == "" && p.Type.Tag == typesystem.KindNamed && p.Type.Name != nil {
			if t := f.corpus.Find(p.Type.Name.ID); t != nil && t.Javadoc.HasBrief() {
				text = nodeText(t.Javadoc.Brief)
			}
		}
		if text == "" {
			continue
		}
		d.Params = append(d.Params, javadoc.ParamDoc{
			Name: p.Name,
			Body: []*javadoc.Node{javadoc.NewParagraph(javadoc.NewText(text))},
		})
	}
}

func conventionalParamText(rec *info.Info, kind copyMoveKind, p info.Param) string {
	switch {
	case rec.Role == info.RoleConstructor && kind == copyKind:
		return "The object to copy construct from"
	case rec.Role == info.RoleConstructor && kind == moveKind:
		return "The object to move construct from"
	case rec.OperatorKind == reference.OpAssign && kind == copyKind:
		return "The object to copy assign from"
	case rec.OperatorKind == reference.OpAssign && kind == moveKind:
		return "The object to move assign from"
	}
	return ""
}
