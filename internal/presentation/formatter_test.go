package presentation

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/enumium/enum"
)

func buildColors(t *testing.T) *enum.Set {
	t.Helper()
	s, err := enum.New("Color", enum.WithVersion("2.0.0"))
	require.NoError(t, err)
	_, err = s.AddValueWithMetadata("Red", 1, map[string]any{"hex": "#FF0000"})
	require.NoError(t, err)
	_, err = s.AddValue("Green", 2)
	require.NoError(t, err)
	return s
}

func TestFromSet(t *testing.T) {
	dto := FromSet(buildColors(t))

	require.Equal(t, "Color", dto.Name)
	require.Equal(t, "2.0.0", dto.Version)
	require.Equal(t, "public", dto.AccessLevel)
	require.Len(t, dto.Values, 2)
	require.Equal(t, "Red", dto.Values[0].Name)
	require.Equal(t, 1, dto.Values[0].Value)
	require.Equal(t, map[string]any{"hex": "#FF0000"}, dto.Values[0].Metadata)
	require.Nil(t, dto.Values[1].Metadata, "empty metadata is omitted")
}

func TestFormatter_FormatSets(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter(&buf)

	err := formatter.FormatSets(FromSets([]*enum.Set{buildColors(t)}))
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "Color", decoded[0]["name"])
}
