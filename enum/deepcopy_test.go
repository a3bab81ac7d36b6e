package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeepCopy_Nil(t *testing.T) {
	require.Nil(t, deepCopy(nil))
}

func TestDeepCopy_Scalars(t *testing.T) {
	require.Equal(t, 42, deepCopy(42))
	require.Equal(t, "hello", deepCopy("hello"))
	require.Equal(t, 3.14, deepCopy(3.14))
	require.Equal(t, true, deepCopy(true))
}

func TestDeepCopy_Map(t *testing.T) {
	src := map[string]any{"nested": map[string]any{"n": 1}}
	dst := deepCopy(src).(map[string]any)

	dst["nested"].(map[string]any)["n"] = 2
	require.Equal(t, 1, src["nested"].(map[string]any)["n"])
}

func TestDeepCopy_Slice(t *testing.T) {
	src := []any{1, []any{2, 3}}
	dst := deepCopy(src).([]any)

	dst[1].([]any)[0] = 99
	require.Equal(t, 2, src[1].([]any)[0])
}

func TestDeepCopy_Pointer(t *testing.T) {
	n := 5
	src := &n
	dst := deepCopy(src).(*int)

	*dst = 6
	require.Equal(t, 5, *src)
}

func TestDeepCopy_NilMapAndSlice(t *testing.T) {
	var m map[string]any
	var sl []any
	require.Nil(t, deepCopy(m))
	require.Nil(t, deepCopy(sl))
}

func TestCopyMetadata_NilInput(t *testing.T) {
	md := copyMetadata(nil)
	require.NotNil(t, md)
	require.Empty(t, md)
}
