package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "; animals\n(instance Mary Human)\n(subclass Human Animal)\n(instance Rex Dog)\n"

func TestSlice(t *testing.T) {
	testCases := []struct {
		Range LineRange
		Out   string
	}{
		{All, sample},
		{LineRange{Start: 1}, sample},
		{LineRange{Start: 2}, "(instance Mary Human)\n(subclass Human Animal)\n(instance Rex Dog)\n"},
		{LineRange{Start: 2, End: 2}, "(instance Mary Human)\n"},
		{LineRange{Start: 2, End: 3}, "(instance Mary Human)\n(subclass Human Animal)\n"},
		{LineRange{End: 1}, "; animals\n"},
		{LineRange{Start: 4, End: 99}, "(instance Rex Dog)\n"},
		{LineRange{Start: 5}, ""},
		{LineRange{Start: -3, End: 1}, "; animals\n"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Out, Slice(sample, tc.Range), "range %v", tc.Range)
	}

	assert.Equal(t, "b", Slice("a\nb", LineRange{Start: 2}))
}

func TestLineRange(t *testing.T) {
	assert.NoError(t, All.Validate())
	assert.NoError(t, LineRange{Start: 3, End: 3}.Validate())
	assert.Error(t, LineRange{Start: 4, End: 3}.Validate())

	assert.Equal(t, "1-$", All.String())
	assert.Equal(t, "2-5", LineRange{Start: 2, End: 5}.String())
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animals.kif")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	{
		text, err := ReadFile(path, LineRange{Start: 3, End: 3})
		require.NoError(t, err)
		assert.Equal(t, "(subclass Human Animal)\n", text)
	}

	{
		_, err := ReadFile(filepath.Join(t.TempDir(), "missing.kif"), All)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "missing.kif")
	}

	{
		_, err := ReadFile(path, LineRange{Start: 3, End: 2})
		assert.Error(t, err)
	}
}
