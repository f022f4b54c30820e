package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveToDisk(t *testing.T) {
	m, err := Parse([]byte(sampleV6))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "versions", "1.21", "1.21.json")
	require.NoError(t, SaveToDisk(m, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, sampleV6, string(data))

	reloaded, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 6, reloaded.ManifestVersion())
	assert.Equal(t, "1.21", reloaded.ID())
}
