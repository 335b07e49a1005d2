package jdfinalize

import (
	"github.com/oxhq/mrdocs/internal/diag"
	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/typesystem"
)

// emitUndocumentedDiagnostics produces the finalizer's documentation-quality
// diagnostics for rec: undocumented symbols, parameter mismatches, missing
// return/enum-value documentation, and unnamed parameters.
func (f *finalizer) emitUndocumentedDiagnostics(rec *info.Info) {
	if !f.cfg.Warnings {
		return
	}
	loc := f.locationOf(rec)
	subject := subjectName(rec)

	if f.cfg.WarnIfUndocumented && f.corpus.IsUndocumented(rec.ID) {
		f.diags.Emit(diag.Warnf(diag.CodeUndocumented, loc, subject, "%s is undocumented", subject))
	}

	if rec.Kind != info.KindFunction {
		if rec.Kind == info.KindEnum && f.cfg.WarnIfUndocEnumVal {
			f.checkEnumValues(rec)
		}
		return
	}

	documented := make(map[string]bool)
	if rec.Javadoc != nil {
		seen := make(map[string]bool)
		for _, p := range rec.Javadoc.Params {
			documented[p.Name] = true
			if seen[p.Name] && f.cfg.WarnIfDocError {
				f.diags.Emit(diag.Warnf(diag.CodeDuplicateParamDoc, loc, subject,
					"parameter %q documented more than once on %s", p.Name, subject))
			}
			seen[p.Name] = true
			if f.cfg.WarnIfDocError && !hasParamNamed(rec, p.Name) {
				f.diags.Emit(diag.Warnf(diag.CodeDocParamNotFound, loc, subject,
					"documented parameter %q does not exist on %s", p.Name, subject))
			}
		}
	}

	if f.cfg.WarnNoParamDoc {
		for _, p := range rec.Params {
			if p.Name == "" || documented[p.Name] {
				continue
			}
			f.diags.Emit(diag.Warnf(diag.CodeMissingParamDoc, loc, subject,
				"parameter %q of %s has no documentation", p.Name, subject))
		}
	}

	if f.cfg.WarnIfDocError && rec.Return != nil && !isVoid(*rec.Return) {
		if rec.Javadoc == nil || len(rec.Javadoc.Returns) == 0 {
			f.diags.Emit(diag.Warnf(diag.CodeUndocumentedReturn, loc, subject,
				"%s has a non-void return with no documented return value", subject))
		}
	}

	if f.cfg.WarnUnnamedParam {
		for _, p := range rec.Params {
			if p.Name == "" {
				f.diags.Emit(diag.Warnf(diag.CodeUnnamedParameter, loc, subject,
					"%s has an unnamed parameter", subject))
			}
		}
	}
}

func (f *finalizer) checkEnumValues(rec *info.Info) {
	loc := f.locationOf(rec)
	for _, id := range rec.Values {
		v := f.corpus.Find(id)
		if v == nil || v.Javadoc != nil && v.Javadoc.HasBrief() {
			continue
		}
		f.diags.Emit(diag.Warnf(diag.CodeUndocumentedEnumValue, loc, subjectName(v),
			"enum value %s has no documentation", subjectName(v)))
	}
}

func hasParamNamed(rec *info.Info, name string) bool {
	for _, p := range rec.Params {
		if p.Name == name {
			return true
		}
	}
	return false
}

func isVoid(t typesystem.Type) bool {
	return t.Tag == typesystem.KindBuiltin && t.Builtin == "void"
}
