package symbolid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinels(t *testing.T) {
	assert.False(t, Invalid.IsValid())
	assert.True(t, Global.IsValid())
	assert.True(t, Global.IsGlobal())
	assert.False(t, Invalid.IsGlobal())
}

func TestCompareTotalOrder(t *testing.T) {
	a := ID{0x01}
	b := ID{0x02}
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestHexRoundTrip(t *testing.T) {
	id := Derive(Global, ID{0x42})
	s := id.String()
	back, err := FromHex(s)
	require.NoError(t, err)
	assert.Equal(t, id, back)
}

func TestFromHexRejectsWrongLength(t *testing.T) {
	_, err := FromHex("deadbeef")
	assert.Error(t, err)
}

func TestDeriveIsDeterministicAndParentSensitive(t *testing.T) {
	parentA := ID{0x01}
	parentB := ID{0x02}
	source := ID{0xAA}

	first := Derive(parentA, source)
	second := Derive(parentA, source)
	assert.Equal(t, first, second, "synthetic id derivation must be deterministic")

	third := Derive(parentB, source)
	assert.NotEqual(t, first, third, "different parents must not collide")
}
