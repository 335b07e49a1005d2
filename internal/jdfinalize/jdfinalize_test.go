package jdfinalize

import (
	"testing"

	"github.com/oxhq/mrdocs/internal/config"
	"github.com/oxhq/mrdocs/internal/corpus"
	"github.com/oxhq/mrdocs/internal/diag"
	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/javadoc"
	"github.com/oxhq/mrdocs/internal/lookup"
	"github.com/oxhq/mrdocs/internal/symbolid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(b byte) symbolid.ID {
	var out symbolid.ID
	out[0] = b
	return out
}

func textNode(s string) *javadoc.Node {
	return &javadoc.Node{IsInline: true, Inline: javadoc.InlineText, Text: s}
}

func TestRun_ResolvesInlineReference(t *testing.T) {
	c := corpus.New()
	widget, fooID := id(2), id(3)

	require.NoError(t, c.Insert(&info.Info{ID: fooID, Kind: info.KindFunction, Name: "foo", Parent: widget, Access: info.AccessPublic}))
	require.NoError(t, c.Insert(&info.Info{
		ID: widget, Kind: info.KindRecord, Parent: symbolid.Global, Access: info.AccessPublic,
		RecordMembers: []symbolid.ID{fooID},
		Interface:     [3]info.Tranche{info.AccessPublic: {Functions: []symbolid.ID{fooID}}},
		Javadoc: &javadoc.Doc{
			Description: []*javadoc.Node{{
				IsBlock: true, Block: javadoc.BlockParagraph,
				Children: []*javadoc.Node{{IsInline: true, Inline: javadoc.InlineReference, Target: "foo"}},
			}},
		},
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: symbolid.Global, Kind: info.KindNamespace, Parent: symbolid.Global,
		NamespaceMembers: info.Tranche{Records: []symbolid.ID{widget}},
	}))

	engine := lookup.New(c)
	Run(c, engine, config.Default())

	ref := c.Find(widget).Javadoc.Description[0].Children[0]
	assert.True(t, ref.Resolved)
	assert.Equal(t, fooID, ref.ID)
}

func TestRun_UnresolvedReferenceEmitsWarningAndLeavesIDInvalid(t *testing.T) {
	c := corpus.New()
	widget := id(2)

	require.NoError(t, c.Insert(&info.Info{
		ID: widget, Kind: info.KindRecord, Parent: symbolid.Global,
		Javadoc: &javadoc.Doc{
			Description: []*javadoc.Node{{
				IsBlock: true, Block: javadoc.BlockParagraph,
				Children: []*javadoc.Node{{IsInline: true, Inline: javadoc.InlineReference, Target: "nonexistent"}},
			}},
		},
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: symbolid.Global, Kind: info.KindNamespace, Parent: symbolid.Global,
		NamespaceMembers: info.Tranche{Records: []symbolid.ID{widget}},
	}))

	engine := lookup.New(c)
	diags := Run(c, engine, config.Default())

	ref := c.Find(widget).Javadoc.Description[0].Children[0]
	assert.True(t, ref.Resolved)
	assert.Equal(t, symbolid.Invalid, ref.ID)

	found := false
	for _, ev := range diags.Events() {
		if ev.Code == diag.CodeSymbolNotFound {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRun_RelatesCreatesBackReferenceOnTarget(t *testing.T) {
	c := corpus.New()
	fn, target := id(2), id(3)

	require.NoError(t, c.Insert(&info.Info{
		ID: fn, Kind: info.KindFunction, Name: "helper", Parent: symbolid.Global,
		Javadoc: &javadoc.Doc{RelatesRaw: []string{"target"}},
	}))
	require.NoError(t, c.Insert(&info.Info{ID: target, Kind: info.KindRecord, Name: "target", Parent: symbolid.Global}))
	require.NoError(t, c.Insert(&info.Info{
		ID: symbolid.Global, Kind: info.KindNamespace, Parent: symbolid.Global,
		NamespaceMembers: info.Tranche{Functions: []symbolid.ID{fn}, Records: []symbolid.ID{target}},
	}))

	engine := lookup.New(c)
	Run(c, engine, config.Default())

	assert.Equal(t, []symbolid.ID{target}, c.Find(fn).Javadoc.Relates)
	assert.Contains(t, c.Find(target).Javadoc.Related, fn)
	assert.Nil(t, c.Find(fn).Javadoc.RelatesRaw)
}

func TestRun_CopydocMergesBriefFromTarget(t *testing.T) {
	c := corpus.New()
	fn, target := id(2), id(3)

	require.NoError(t, c.Insert(&info.Info{
		ID: target, Kind: info.KindFunction, Name: "target", Parent: symbolid.Global,
		Javadoc: &javadoc.Doc{Brief: &javadoc.Node{IsBlock: true, Block: javadoc.BlockBrief, Children: []*javadoc.Node{textNode("Does the thing.")}}},
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: fn, Kind: info.KindFunction, Name: "fn", Parent: symbolid.Global,
		Javadoc: &javadoc.Doc{
			Description: []*javadoc.Node{{
				IsBlock: true, Block: javadoc.BlockParagraph,
				Children: []*javadoc.Node{{IsInline: true, Inline: javadoc.InlineCopied, CopyTarget: "target", CopyParts: javadoc.CopyBrief}},
			}},
		},
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: symbolid.Global, Kind: info.KindNamespace, Parent: symbolid.Global,
		NamespaceMembers: info.Tranche{Functions: []symbolid.ID{fn, target}},
	}))

	engine := lookup.New(c)
	Run(c, engine, config.Default())

	rec := c.Find(fn)
	require.True(t, rec.Javadoc.HasBrief())
}

func TestRun_AutoSynthesizesConstructorBrief(t *testing.T) {
	c := corpus.New()
	widget, ctor := id(2), id(3)

	require.NoError(t, c.Insert(&info.Info{
		ID: ctor, Kind: info.KindFunction, Name: "Widget", Parent: widget, Role: info.RoleConstructor,
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: widget, Kind: info.KindRecord, Parent: symbolid.Global,
		RecordMembers: []symbolid.ID{ctor},
		Interface:     [3]info.Tranche{info.AccessPublic: {Functions: []symbolid.ID{ctor}}},
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: symbolid.Global, Kind: info.KindNamespace, Parent: symbolid.Global,
		NamespaceMembers: info.Tranche{Records: []symbolid.ID{widget}},
	}))

	engine := lookup.New(c)
	cfg := config.Default()
	cfg.AutoFunctionMetadata = true
	Run(c, engine, cfg)

	rec := c.Find(ctor)
	require.NotNil(t, rec.Javadoc)
	require.True(t, rec.Javadoc.HasBrief())
}

func TestRun_OverloadSetBriefSynthesizedWhenCategoryShared(t *testing.T) {
	c := corpus.New()
	widget, set, ctor1, ctor2 := id(2), id(3), id(4), id(5)

	require.NoError(t, c.Insert(&info.Info{ID: ctor1, Kind: info.KindFunction, Name: "Widget", Parent: widget, Role: info.RoleConstructor}))
	require.NoError(t, c.Insert(&info.Info{ID: ctor2, Kind: info.KindFunction, Name: "Widget", Parent: widget, Role: info.RoleConstructor}))
	require.NoError(t, c.Insert(&info.Info{
		ID: set, Kind: info.KindOverloads, Name: "Widget", Parent: widget,
		OverloadMembers: []symbolid.ID{ctor1, ctor2},
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: widget, Kind: info.KindRecord, Parent: symbolid.Global,
		RecordMembers: []symbolid.ID{set},
		Interface:     [3]info.Tranche{info.AccessPublic: {Functions: []symbolid.ID{set}}},
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: symbolid.Global, Kind: info.KindNamespace, Parent: symbolid.Global,
		NamespaceMembers: info.Tranche{Records: []symbolid.ID{widget}},
	}))

	engine := lookup.New(c)
	Run(c, engine, config.Default())

	group := c.Find(set)
	require.NotNil(t, group.Javadoc)
	assert.True(t, group.Javadoc.HasBrief())
}

func TestRun_EmitsUndocumentedDiagnostic(t *testing.T) {
	c := corpus.New()
	fn := id(2)
	require.NoError(t, c.Insert(&info.Info{ID: fn, Kind: info.KindFunction, Name: "fn", Parent: symbolid.Global}))
	require.NoError(t, c.Insert(&info.Info{
		ID: symbolid.Global, Kind: info.KindNamespace, Parent: symbolid.Global,
		NamespaceMembers: info.Tranche{Functions: []symbolid.ID{fn}},
	}))
	c.MarkUndocumented(corpus.Undocumented{ID: fn, Kind: info.KindFunction, Name: "fn"})

	cfg := config.Default()
	cfg.WarnIfUndocumented = true
	engine := lookup.New(c)
	diags := Run(c, engine, cfg)

	found := false
	for _, ev := range diags.Events() {
		if ev.Code == diag.CodeUndocumented {
			found = true
		}
	}
	assert.True(t, found)
}
