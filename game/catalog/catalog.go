// Package catalog models the upstream version catalog: the list of every
// published game version with the URL and checksum of its manifest.
package catalog

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/craftline/craftline/game/manifest"
	"github.com/craftline/craftline/utils"
)

const VersionCatalogURL = "https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"

type VersionType string

const (
	TypeRelease  VersionType = "release"
	TypeSnapshot VersionType = "snapshot"
	TypeOldAlpha VersionType = "old_alpha"
	TypeOldBeta  VersionType = "old_beta"
)

type Catalog struct {
	Latest   Latest        `json:"latest"`
	Versions []VersionInfo `json:"versions"`
}

type Latest struct {
	Release  string `json:"release"`
	Snapshot string `json:"snapshot"`
}

type VersionInfo struct {
	ID              string      `json:"id"`
	Type            VersionType `json:"type"`
	URL             string      `json:"url"`
	Time            string      `json:"time"`
	ReleaseTime     string      `json:"releaseTime"`
	Sha1            string      `json:"sha1"`
	ComplianceLevel int         `json:"complianceLevel"`
}

func (v VersionInfo) IsSnapshot() bool {
	return v.Type == TypeSnapshot
}

// Fetch downloads the catalog from the upstream metadata service.
func Fetch() (*Catalog, error) {
	var c Catalog
	options := utils.NewRequestOptions[Catalog]("application/json", &c)
	if _, err := utils.DoRequest(http.MethodGet, VersionCatalogURL, options); err != nil {
		return nil, errors.Wrap(err, "fetching version catalog")
	}
	return &c, nil
}

// LatestRelease returns the catalog entry for the latest release.
func (c *Catalog) LatestRelease() (*VersionInfo, error) {
	return c.Find(c.Latest.Release)
}

// LatestSnapshot returns the catalog entry for the latest snapshot,
// which may be the same version as the latest release.
func (c *Catalog) LatestSnapshot() (*VersionInfo, error) {
	return c.Find(c.Latest.Snapshot)
}

func (c *Catalog) Find(id string) (*VersionInfo, error) {
	for i := range c.Versions {
		if c.Versions[i].ID == id {
			return &c.Versions[i], nil
		}
	}
	return nil, errors.Errorf("version %s not in catalog", id)
}

// DownloadManifest fetches the entry's manifest document, verifies it
// against the catalog checksum and resolves its schema generation.
func (v VersionInfo) DownloadManifest() (manifest.Versioned, error) {
	data, err := utils.DoRequest[struct{}](http.MethodGet, v.URL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "downloading manifest for %s", v.ID)
	}

	if v.Sha1 != "" {
		if sum := utils.BytesSHA1(data); sum != v.Sha1 {
			return nil, errors.Errorf("manifest checksum mismatch for %s: got %s, want %s", v.ID, sum, v.Sha1)
		}
	}

	m, err := manifest.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing manifest for %s", v.ID)
	}
	return m, nil
}
