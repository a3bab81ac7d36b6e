package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet_Stats_Counters(t *testing.T) {
	s := mkSet(t, "Color")

	_, err := s.AddValue("Red", 1)
	require.NoError(t, err)
	_, err = s.AddValue("Green", 2)
	require.NoError(t, err)
	s.Value("Red")
	s.HasValue("Green")
	s.ValueByPayload(1)
	_, err = s.RemoveValue("Green")
	require.NoError(t, err)
	s.Serialize()

	stats := s.Stats()
	require.Equal(t, 2, stats.Creations)
	require.Equal(t, 3, stats.Lookups)
	require.Equal(t, 1, stats.Modifications)
	require.Equal(t, 1, stats.Serializations)
}

func TestSet_Stats_SnapshotCopy(t *testing.T) {
	s := mkColors(t)

	before := s.Stats()
	s.Value("Red")
	require.Equal(t, before.Lookups+1, s.Stats().Lookups)
	require.Zero(t, before.Lookups, "earlier snapshot is detached from the live counters")
}

func TestSet_ResetStats(t *testing.T) {
	s := mkColors(t)
	s.Value("Red")
	s.Serialize()

	s.ResetStats()
	require.Equal(t, Stats{}, s.Stats())
}

func TestSet_Optimize_EmitsEventOnly(t *testing.T) {
	s := mkColors(t)

	var got Event
	s.Watch(func(ev Event) { got = ev })

	s.Optimize()
	require.Equal(t, EventOptimized, got.Type)
	require.Equal(t, 3, s.Len(), "optimize performs no structural work")
}

func TestSet_Cache(t *testing.T) {
	s := mkSet(t, "Color")

	_, ok := s.CacheGet("expensive")
	require.False(t, ok)

	s.CacheSet("expensive", 42)
	got, ok := s.CacheGet("expensive")
	require.True(t, ok)
	require.Equal(t, 42, got)
	require.True(t, s.CacheHas("expensive"))

	s.CacheDelete("expensive")
	require.False(t, s.CacheHas("expensive"))
}

func TestSet_Cache_Clear(t *testing.T) {
	s := mkSet(t, "Color")
	s.CacheSet("a", 1)
	s.CacheSet("b", 2)

	s.CacheClear()
	require.False(t, s.CacheHas("a"))
	require.False(t, s.CacheHas("b"))
}

func TestSet_Cache_SurvivesFreeze(t *testing.T) {
	s := mkColors(t)
	s.CacheSet("a", 1)
	s.Freeze()

	// The cache is scratch space, not structural state: freeze does not
	// block it.
	s.CacheSet("b", 2)
	require.True(t, s.CacheHas("a"))
	require.True(t, s.CacheHas("b"))
}

func TestSet_Cache_ScopedPerInstance(t *testing.T) {
	a := mkSet(t, "A")
	b := mkSet(t, "B")

	a.CacheSet("k", 1)
	require.False(t, b.CacheHas("k"))
}
