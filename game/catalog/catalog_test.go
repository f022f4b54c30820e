package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `{
	"latest": {"release": "1.21", "snapshot": "24w33a"},
	"versions": [
		{"id": "24w33a", "type": "snapshot", "url": "https://example.net/24w33a.json", "time": "2024-08-15T12:39:13+00:00", "releaseTime": "2024-08-15T12:27:19+00:00", "sha1": "d9c5df...a1", "complianceLevel": 1},
		{"id": "1.21", "type": "release", "url": "https://example.net/1.21.json", "time": "2024-06-13T08:32:38+00:00", "releaseTime": "2024-06-13T08:24:03+00:00", "sha1": "1c800c...b2", "complianceLevel": 1},
		{"id": "b1.7.3", "type": "old_beta", "url": "https://example.net/b1.7.3.json", "time": "2011-07-08T22:00:00+00:00", "releaseTime": "2011-07-08T22:00:00+00:00", "sha1": "599bba...c3", "complianceLevel": 0}
	]
}`

func parseCatalog(t *testing.T) *Catalog {
	t.Helper()
	var c Catalog
	require.NoError(t, json.Unmarshal([]byte(sampleCatalog), &c))
	return &c
}

func TestLatestRelease(t *testing.T) {
	c := parseCatalog(t)

	v, err := c.LatestRelease()
	require.NoError(t, err)
	assert.Equal(t, "1.21", v.ID)
	assert.Equal(t, TypeRelease, v.Type)
	assert.False(t, v.IsSnapshot())
}

func TestLatestSnapshot(t *testing.T) {
	c := parseCatalog(t)

	v, err := c.LatestSnapshot()
	require.NoError(t, err)
	assert.Equal(t, "24w33a", v.ID)
	assert.True(t, v.IsSnapshot())
}

func TestFind(t *testing.T) {
	c := parseCatalog(t)

	v, err := c.Find("b1.7.3")
	require.NoError(t, err)
	assert.Equal(t, TypeOldBeta, v.Type)
	assert.Equal(t, 0, v.ComplianceLevel)

	_, err = c.Find("2.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in catalog")
}
