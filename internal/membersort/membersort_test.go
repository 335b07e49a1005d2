package membersort

import (
	"testing"

	"github.com/oxhq/mrdocs/internal/config"
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

func TestRun_ConstructorsAndDestructorSortFirst(t *testing.T) {
	c := corpus.New()
	widget := id(2)
	zebra, ctor, dtor := id(3), id(4), id(5)

	require.NoError(t, c.Insert(&info.Info{ID: zebra, Kind: info.KindFunction, Name: "zebra", Parent: widget}))
	require.NoError(t, c.Insert(&info.Info{ID: ctor, Kind: info.KindFunction, Name: "Widget", Parent: widget, Role: info.RoleConstructor}))
	require.NoError(t, c.Insert(&info.Info{ID: dtor, Kind: info.KindFunction, Name: "~Widget", Parent: widget, Role: info.RoleDestructor}))
	require.NoError(t, c.Insert(&info.Info{
		ID: widget, Kind: info.KindRecord, Parent: symbolid.Global,
		RecordMembers: []symbolid.ID{zebra, ctor, dtor},
		Interface: [3]info.Tranche{
			info.AccessPublic: {Functions: []symbolid.ID{zebra, ctor, dtor}},
		},
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: symbolid.Global, Kind: info.KindNamespace, Parent: symbolid.Global,
		NamespaceMembers: info.Tranche{Records: []symbolid.ID{widget}},
	}))

	Run(c, config.Config{SortMembers: true, SortPolicy: config.DefaultSortPolicy()})

	got := c.Find(widget).Interface[info.AccessPublic].Functions
	assert.Equal(t, []symbolid.ID{ctor, dtor, zebra}, got)
}

func TestRun_RelationalOperatorsSortLastInDefinedOrder(t *testing.T) {
	c := corpus.New()
	widget := id(2)
	eq, ne, lt := id(3), id(4), id(5)

	require.NoError(t, c.Insert(&info.Info{ID: ne, Kind: info.KindFunction, Name: "operator!=", Parent: widget, OperatorKind: reference.OpNotEqual}))
	require.NoError(t, c.Insert(&info.Info{ID: lt, Kind: info.KindFunction, Name: "operator<", Parent: widget, OperatorKind: reference.OpLess}))
	require.NoError(t, c.Insert(&info.Info{ID: eq, Kind: info.KindFunction, Name: "operator==", Parent: widget, OperatorKind: reference.OpEqual}))
	require.NoError(t, c.Insert(&info.Info{
		ID: widget, Kind: info.KindRecord, Parent: symbolid.Global,
		RecordMembers: []symbolid.ID{ne, lt, eq},
		Interface: [3]info.Tranche{
			info.AccessPublic: {Functions: []symbolid.ID{ne, lt, eq}},
		},
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: symbolid.Global, Kind: info.KindNamespace, Parent: symbolid.Global,
		NamespaceMembers: info.Tranche{Records: []symbolid.ID{widget}},
	}))

	Run(c, config.Config{SortMembers: true, SortPolicy: config.DefaultSortPolicy()})

	got := c.Find(widget).Interface[info.AccessPublic].Functions
	assert.Equal(t, []symbolid.ID{eq, ne, lt}, got)
}

func TestRun_DisabledBySortMembersFalse(t *testing.T) {
	c := corpus.New()
	widget := id(2)
	zebra, ctor := id(3), id(4)

	require.NoError(t, c.Insert(&info.Info{ID: zebra, Kind: info.KindFunction, Name: "zebra", Parent: widget}))
	require.NoError(t, c.Insert(&info.Info{ID: ctor, Kind: info.KindFunction, Name: "Widget", Parent: widget, Role: info.RoleConstructor}))
	require.NoError(t, c.Insert(&info.Info{
		ID: widget, Kind: info.KindRecord, Parent: symbolid.Global,
		RecordMembers: []symbolid.ID{zebra, ctor},
		Interface: [3]info.Tranche{
			info.AccessPublic: {Functions: []symbolid.ID{zebra, ctor}},
		},
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: symbolid.Global, Kind: info.KindNamespace, Parent: symbolid.Global,
		NamespaceMembers: info.Tranche{Records: []symbolid.ID{widget}},
	}))

	Run(c, config.Config{SortMembers: false, SortPolicy: config.DefaultSortPolicy()})

	got := c.Find(widget).Interface[info.AccessPublic].Functions
	assert.Equal(t, []symbolid.ID{zebra, ctor}, got)
}

func TestRun_OverloadSetMembersSortedBySignature(t *testing.T) {
	c := corpus.New()
	widget, set := id(2), id(3)
	barInt, barDouble := id(4), id(5)

	require.NoError(t, c.Insert(&info.Info{ID: barDouble, Kind: info.KindFunction, Name: "bar", Parent: widget,
		Params: []info.Param{{Name: "x", Type: typesystem.Type{Tag: typesystem.KindBuiltin, Builtin: "double"}}}}))
	require.NoError(t, c.Insert(&info.Info{ID: barInt, Kind: info.KindFunction, Name: "bar", Parent: widget,
		Params: []info.Param{{Name: "x", Type: typesystem.Type{Tag: typesystem.KindBuiltin, Builtin: "int"}}}}))
	require.NoError(t, c.Insert(&info.Info{
		ID: set, Kind: info.KindOverloads, Name: "bar", Parent: widget,
		OverloadMembers: []symbolid.ID{barInt, barDouble},
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: widget, Kind: info.KindRecord, Parent: symbolid.Global,
		RecordMembers: []symbolid.ID{set},
		Interface: [3]info.Tranche{
			info.AccessPublic: {Functions: []symbolid.ID{set}},
		},
	}))
	require.NoError(t, c.Insert(&info.Info{
		ID: symbolid.Global, Kind: info.KindNamespace, Parent: symbolid.Global,
		NamespaceMembers: info.Tranche{Records: []symbolid.ID{widget}},
	}))

	Run(c, config.Config{SortMembers: true, SortPolicy: config.DefaultSortPolicy()})

	assert.Len(t, c.Find(set).OverloadMembers, 2)
	// SignatureKey spells "bar|builtin:double" before "bar|builtin:int".
	assert.Equal(t, []symbolid.ID{barDouble, barInt}, c.Find(set).OverloadMembers)
}
