package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/symbolid"
)

func TestAllMembersNamespace(t *testing.T) {
	ns := &info.Info{Kind: info.KindNamespace}
	ns.NamespaceMembers.Records = []symbolid.ID{idFor(0x01)}
	ns.NamespaceMembers.Functions = []symbolid.ID{idFor(0x02)}

	members := AllMembers(ns)
	assert.Equal(t, []symbolid.ID{idFor(0x01), idFor(0x02)}, members)
}

func TestAllMembersRecordUsesFlatList(t *testing.T) {
	rec := &info.Info{Kind: info.KindRecord, RecordMembers: []symbolid.ID{idFor(0x03), idFor(0x04)}}
	assert.Equal(t, rec.RecordMembers, AllMembers(rec))
}

func TestAllMembersOtherKindsReturnNil(t *testing.T) {
	fn := &info.Info{Kind: info.KindFunction}
	assert.Nil(t, AllMembers(fn))
}

func TestMemberTrancheRecordSelectsByAccess(t *testing.T) {
	rec := &info.Info{Kind: info.KindRecord}
	pub := MemberTranche(rec, info.AccessPublic)
	priv := MemberTranche(rec, info.AccessPrivate)
	require.NotNil(t, pub)
	require.NotNil(t, priv)
	assert.NotSame(t, pub, priv)
	assert.Nil(t, MemberTranche(rec, info.AccessNone))
}

func TestMemberTrancheNamespaceIgnoresAccess(t *testing.T) {
	ns := &info.Info{Kind: info.KindNamespace}
	tr := MemberTranche(ns, info.AccessPrivate)
	require.NotNil(t, tr)
	assert.Same(t, &ns.NamespaceMembers, tr)
}

func TestParentChainTerminatesAtGlobal(t *testing.T) {
	s := New()
	leaf := idFor(0x01)
	mid := idFor(0x02)
	require.NoError(t, s.Insert(&info.Info{ID: leaf, Parent: mid}))
	require.NoError(t, s.Insert(&info.Info{ID: mid, Parent: symbolid.Global}))

	assert.True(t, ParentChainTerminates(s, leaf))
}

func TestParentChainDetectsCycle(t *testing.T) {
	s := New()
	a := idFor(0x01)
	b := idFor(0x02)
	require.NoError(t, s.Insert(&info.Info{ID: a, Parent: b}))
	require.NoError(t, s.Insert(&info.Info{ID: b, Parent: a}))

	assert.False(t, ParentChainTerminates(s, a))
}

func TestParentChainBrokenLinkFails(t *testing.T) {
	s := New()
	orphan := idFor(0x01)
	require.NoError(t, s.Insert(&info.Info{ID: orphan, Parent: idFor(0x99)}))

	assert.False(t, ParentChainTerminates(s, orphan))
}
