package attrfmt_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attrfmt/attrfmt"
)

func TestErrorTableLookup(t *testing.T) {
	t.Parallel()
	table := attrfmt.ErrorTable{
		3: "invalid parameter",
		5: "",
	}

	msg, ok := table.Lookup(3)
	assert.True(t, ok)
	assert.Equal(t, "invalid parameter", msg)

	msg, ok = table.Lookup(-3)
	assert.True(t, ok, "negative codes fold to their absolute value")
	assert.Equal(t, "invalid parameter", msg)

	_, ok = table.Lookup(5)
	assert.False(t, ok, "empty entries are gaps")

	_, ok = table.Lookup(999)
	assert.False(t, ok)
}

func TestDefaultErrors(t *testing.T) {
	t.Parallel()
	msg, ok := attrfmt.DefaultErrors().Lookup(6)
	assert.True(t, ok)
	assert.Equal(t, "segmentation fault", msg)
}

func TestParseErrorTable(t *testing.T) {
	t.Parallel()
	table, err := attrfmt.ParseErrorTable([]byte("3: invalid parameter\n7: bad cookie\n"))
	require.NoError(t, err)

	msg, ok := table.Lookup(7)
	assert.True(t, ok)
	assert.Equal(t, "bad cookie", msg)
}

func TestParseErrorTableNegativeCode(t *testing.T) {
	t.Parallel()
	_, err := attrfmt.ParseErrorTable([]byte("-2: nope\n"))
	assert.ErrorIs(t, err, attrfmt.ErrInvalidArgument)
}

func TestParseErrorTableBadYAML(t *testing.T) {
	t.Parallel()
	_, err := attrfmt.ParseErrorTable([]byte("{not yaml"))
	assert.Error(t, err)
}

func TestLoadErrorTable(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "errors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("9: disk on fire\n"), 0o600))

	table, err := attrfmt.LoadErrorTable(path)
	require.NoError(t, err)

	msg, ok := table.Lookup(9)
	assert.True(t, ok)
	assert.Equal(t, "disk on fire", msg)
}

func TestLoadErrorTableMissingFile(t *testing.T) {
	t.Parallel()
	_, err := attrfmt.LoadErrorTable(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
