package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testDefinitions = `enums:
  - name: Color
    version: 2.0.0
    metadata:
      theme: primary
    values:
      - name: Red
        value: 1
      - name: Green
        value: 2
      - name: Blue
        value: 3
  - name: Status
    values:
      - name: Active
        value: active
      - name: Inactive
        value: inactive
`

// writeDefinitions writes a definitions file into a temp directory and
// returns its path.
func writeDefinitions(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "enums.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDefinitions), 0o644))
	return path
}

// execute runs the root command with the given args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestLoadSets_MissingFile(t *testing.T) {
	cfg.DefinitionsFile = filepath.Join(t.TempDir(), "nope.yaml")

	_, _, err := loadSets()
	require.Error(t, err, "expected loadSets to fail without a definitions file")
}

func TestLoadSets_ValidFile(t *testing.T) {
	cfg.DefinitionsFile = writeDefinitions(t)

	reg, sets, err := loadSets()
	require.NoError(t, err)
	require.Len(t, sets, 2)

	color, ok := reg.Lookup("Color")
	require.True(t, ok, "Color should be registered")
	require.Equal(t, "2.0.0", color.Version())
	require.Equal(t, 3, color.Len())

	status, ok := reg.Lookup("Status")
	require.True(t, ok, "Status should be registered")
	require.Equal(t, 2, status.Len())
}

func TestListCommand(t *testing.T) {
	defs := writeDefinitions(t)

	out, err := execute(t, "list", "--file", defs)
	require.NoError(t, err)

	var dtos []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &dtos))
	require.Len(t, dtos, 2)
	require.Equal(t, "Color", dtos[0]["name"])
	require.Equal(t, "Status", dtos[1]["name"])
}

func TestExportCommand_JSON(t *testing.T) {
	defs := writeDefinitions(t)

	out, err := execute(t, "export", "Color", "--file", defs, "--format", "json")
	require.NoError(t, err)

	var snap map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	require.Equal(t, "Color", snap["name"])
	require.Equal(t, "2.0.0", snap["version"])
}

func TestExportCommand_Text(t *testing.T) {
	defs := writeDefinitions(t)

	out, err := execute(t, "export", "Color", "--file", defs, "--format", "text")
	require.NoError(t, err)
	require.Contains(t, out, "Enum Color {")
	require.Contains(t, out, "Color.Red = 1")
}

func TestExportCommand_UnknownSet(t *testing.T) {
	defs := writeDefinitions(t)

	_, err := execute(t, "export", "Shape", "--file", defs, "--format", "json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Shape")
}

func TestExportCommand_InvalidFormat(t *testing.T) {
	defs := writeDefinitions(t)

	_, err := execute(t, "export", "Color", "--file", defs, "--format", "xml")
	require.Error(t, err)
}

func TestValidateCommand_Member(t *testing.T) {
	defs := writeDefinitions(t)

	out, err := execute(t, "validate", "Color", "2", "--file", defs)
	require.NoError(t, err)
	require.Contains(t, out, "is a member of Color")
}

func TestValidateCommand_NonMember(t *testing.T) {
	defs := writeDefinitions(t)

	_, err := execute(t, "validate", "Color", "9", "--file", defs)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a member")
}

func TestValidateCommand_Loose(t *testing.T) {
	defs := writeDefinitions(t)

	// Strict comparison sees the string "2" as distinct from the int 2,
	// but parsePayload types it as an int first, so force a string
	// payload through the Status set instead.
	out, err := execute(t, "validate", "Status", "active", "--file", defs, "--loose")
	require.NoError(t, err)
	require.Contains(t, out, "is a member of Status")
}

func TestParsePayload(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{"42", 42},
		{"3.5", 3.5},
		{"true", true},
		{"active", "active"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.Equal(t, tt.want, parsePayload(tt.raw))
		})
	}
}
