package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextIsStrictlyIncreasingFromOne(t *testing.T) {
	g := New()
	g.Reconcile(40)
	g.Reset()

	prev := int64(0)
	for i := 1; i <= 50; i++ {
		id := g.Next()
		require.Equal(t, int64(i), id)
		require.Greater(t, id, prev)
		prev = id
	}
	assert.Equal(t, int64(50), g.Current())
}

func TestReconcileOnlyRaises(t *testing.T) {
	var g Generator
	g.Reconcile(10)
	assert.Equal(t, int64(10), g.Current())

	g.Reconcile(3)
	assert.Equal(t, int64(10), g.Current(), "lower id must not lower the counter")

	assert.Equal(t, int64(11), g.Next())
}

func TestRestore(t *testing.T) {
	g := New()
	require.NoError(t, g.Restore(7))
	assert.Equal(t, int64(8), g.Next())

	assert.Error(t, g.Restore(-1))
	assert.Equal(t, int64(8), g.Current())
}
