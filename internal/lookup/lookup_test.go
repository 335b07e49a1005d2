package lookup

import (
	"testing"

	"github.com/oxhq/mrdocs/internal/corpus"
	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/reference"
	"github.com/oxhq/mrdocs/internal/symbolid"
	"github.com/oxhq/mrdocs/internal/typesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(b byte) symbolid.ID {
	var out symbolid.ID
	out[0] = b
	return out
}

// fixture builds a small corpus:
//
//	global
//	  namespace ns
//	    record Widget
//	      fn foo()          (public)
//	      fn bar(int)       (public, overloaded with bar(double))
//	      fn bar(double)    (public)
//	      overloads "bar"   (synthetic, public, replaces the two bar ids)
//	      typedef Alias -> Widget
//	    inline namespace detail
//	      fn hidden()
func fixture(t *testing.T) (*corpus.InfoSet, symbolid.ID, symbolid.ID) {
	t.Helper()
	c := corpus.New()

	global := symbolid.Global
	ns := id(2)
	widget := id(3)
	fooID := id(4)
	barIntID := id(5)
	barDoubleID := id(6)
	overloadsID := id(7)
	aliasID := id(8)
	detailID := id(9)
	hiddenID := id(10)

	require.NoError(t, c.Insert(&info.Info{
		ID: global, Kind: info.KindNamespace, Name: "",
		NamespaceMembers: info.Tranche{Namespaces: []symbolid.ID{ns}},
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: ns, Kind: info.KindNamespace, Name: "ns", Parent: global,
		NamespaceMembers: info.Tranche{Records: []symbolid.ID{widget}},
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: widget, Kind: info.KindRecord, Name: "Widget", Parent: ns,
		RecordMembers: []symbolid.ID{fooID, overloadsID, aliasID, detailID},
		Interface: [3]info.Tranche{
			info.AccessPublic: {
				Functions:  []symbolid.ID{fooID, overloadsID},
				Typedefs:   []symbolid.ID{aliasID},
				Namespaces: []symbolid.ID{detailID},
			},
		},
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: fooID, Kind: info.KindFunction, Name: "foo", Parent: widget,
		IsRecordMethod: true,
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: barIntID, Kind: info.KindFunction, Name: "bar", Parent: widget,
		IsRecordMethod: true, Params: []info.Param{{Name: "x", Type: typesystem.Type{Tag: typesystem.KindBuiltin, Builtin: "int"}}},
	}))
	// Deliberately a different arity from barIntID: parameter-list match is
	// arity-only (spec.md 4.D), so two same-arity overloads (e.g. bar(int)
	// vs bar(double)) would be genuinely ambiguous under this algorithm —
	// that case is exercised separately by
	// TestLookup_AmbiguousSignatureMatch.
	require.NoError(t, c.Insert(&info.Info{
		ID: barDoubleID, Kind: info.KindFunction, Name: "bar", Parent: widget,
		IsRecordMethod: true, Params: []info.Param{
			{Name: "x", Type: typesystem.Type{Tag: typesystem.KindBuiltin, Builtin: "double"}},
			{Name: "y", Type: typesystem.Type{Tag: typesystem.KindBuiltin, Builtin: "double"}},
		},
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: overloadsID, Kind: info.KindOverloads, Name: "bar", Parent: widget,
		OverloadMembers: []symbolid.ID{barIntID, barDoubleID},
	}))
	aliasedName := &typesystem.Name{Text: "Widget", ID: widget}
	require.NoError(t, c.Insert(&info.Info{
		ID: aliasID, Kind: info.KindTypedef, Name: "Alias", Parent: widget,
		Aliased: &typesystem.Type{Tag: typesystem.KindNamed, Name: aliasedName},
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: detailID, Kind: info.KindNamespace, Name: "detail", Parent: widget,
		NamespaceInline:  true,
		NamespaceMembers: info.Tranche{Functions: []symbolid.ID{hiddenID}},
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: hiddenID, Kind: info.KindFunction, Name: "hidden", Parent: detailID,
	}))

	return c, global, widget
}

func TestLookup_PlainNameResolvesWithinContext(t *testing.T) {
	c, _, widget := fixture(t)
	e := New(c)
	result, err := e.Lookup(widget, "foo")
	require.NoError(t, err)
	assert.Equal(t, "foo", result.Name)
}

func TestLookup_OverloadedNameWithNoTailResolvesToOverloadSet(t *testing.T) {
	c, _, widget := fixture(t)
	e := New(c)
	result, err := e.Lookup(widget, "bar")
	require.NoError(t, err)
	assert.Equal(t, info.KindOverloads, result.Kind)
}

func TestLookup_SignatureMatchedResolvesToConstituent(t *testing.T) {
	c, _, widget := fixture(t)
	e := New(c)
	result, err := e.Lookup(widget, "bar(int)")
	require.NoError(t, err)
	assert.Equal(t, info.KindFunction, result.Kind)
	require.Len(t, result.Params, 1)
	assert.Equal(t, "int", result.Params[0].Type.Builtin)
}

func TestLookup_TypedefFollowsAlias(t *testing.T) {
	c, _, widget := fixture(t)
	e := New(c)
	result, err := e.Lookup(widget, "Alias")
	require.NoError(t, err)
	assert.Equal(t, "Widget", result.Name)
	assert.Equal(t, info.KindRecord, result.Kind)
}

func TestLookup_RecursesUpParentChain(t *testing.T) {
	c, _, widget := fixture(t)
	e := New(c)
	// "ns" is not visible from inside Widget's own member set, but is
	// visible by walking up to Widget's enclosing namespace's parent
	// (global), which lists ns as a member.
	result, err := e.Lookup(widget, "ns")
	require.NoError(t, err)
	assert.Equal(t, "ns", result.Name)
}

func TestLookup_TransparentInlineNamespaceIsSearchedThrough(t *testing.T) {
	c, _, widget := fixture(t)
	e := New(c)
	result, err := e.Lookup(widget, "hidden")
	require.NoError(t, err)
	assert.Equal(t, "hidden", result.Name)
}

func TestLookup_LeadingScopeRestartsAtGlobal(t *testing.T) {
	c, _, widget := fixture(t)
	e := New(c)
	result, err := e.Lookup(widget, "::ns")
	require.NoError(t, err)
	assert.Equal(t, "ns", result.Name)
}

func TestLookup_UnknownNameFailsAtGlobal(t *testing.T) {
	c, _, widget := fixture(t)
	e := New(c)
	_, err := e.Lookup(widget, "nonexistent")
	require.Error(t, err)
	lerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ReasonNotFound, lerr.Reason)
}

func TestLookup_ParseFailureIsFinal(t *testing.T) {
	c, _, widget := fixture(t)
	e := New(c)
	_, err := e.Lookup(widget, "f(const const int)")
	require.Error(t, err)
	lerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ReasonParseFailed, lerr.Reason)
}

func TestLookup_ContextNotFound(t *testing.T) {
	c, _, _ := fixture(t)
	e := New(c)
	_, err := e.Lookup(id(99), "foo")
	require.Error(t, err)
	lerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ReasonContextNotFound, lerr.Reason)
}

func TestLookup_CachesNegativeResult(t *testing.T) {
	c, _, widget := fixture(t)
	e := New(c)
	_, err1 := e.Lookup(widget, "nonexistent")
	require.Error(t, err1)

	// Insert the symbol after the first (failed, now cached) lookup; the
	// cached negative result must still be returned without re-resolving.
	newID := id(42)
	require.NoError(t, c.Insert(&info.Info{
		ID: newID, Kind: info.KindFunction, Name: "nonexistent", Parent: widget,
	}))
	widgetInfo := c.Find(widget)
	widgetInfo.Interface[info.AccessPublic].Functions = append(widgetInfo.Interface[info.AccessPublic].Functions, newID)
	widgetInfo.RecordMembers = append(widgetInfo.RecordMembers, newID)

	_, err2 := e.Lookup(widget, "nonexistent")
	require.Error(t, err2, "cached negative result must survive a corpus mutation")
}

func TestLookup_AmbiguousSignatureMatch(t *testing.T) {
	c, _, widget := fixture(t)
	// A second arity-1 overload alongside barIntID: parameter-list match is
	// arity-only, so the matcher cannot disambiguate and must report
	// ambiguity rather than silently picking one.
	dupID := id(50)
	require.NoError(t, c.Insert(&info.Info{
		ID: dupID, Kind: info.KindFunction, Name: "bar", Parent: widget,
		Params: []info.Param{{Name: "y", Type: typesystem.Type{Tag: typesystem.KindBuiltin, Builtin: "int"}}},
	}))
	ov := c.Find(id(7))
	ov.OverloadMembers = append(ov.OverloadMembers, dupID)

	e := New(c)
	_, err := e.Lookup(widget, "bar(int)")
	require.Error(t, err)
	lerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ReasonAmbiguous, lerr.Reason)
}

func TestLookup_OperatorComponentMatchesByOperatorKind(t *testing.T) {
	c, _, widget := fixture(t)
	plusID := id(60)
	require.NoError(t, c.Insert(&info.Info{
		ID: plusID, Kind: info.KindFunction, Name: "operator+", Parent: widget,
		OperatorKind: reference.OpPlus,
	}))
	widgetInfo := c.Find(widget)
	widgetInfo.Interface[info.AccessPublic].Functions = append(widgetInfo.Interface[info.AccessPublic].Functions, plusID)
	widgetInfo.RecordMembers = append(widgetInfo.RecordMembers, plusID)

	e := New(c)
	result, err := e.Lookup(widget, "operator+")
	require.NoError(t, err)
	assert.Equal(t, reference.OpPlus, result.OperatorKind)
}
