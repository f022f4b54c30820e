package manifest

import "github.com/pkg/errors"

// V3 adds the log4j logging configuration block.
type V3 struct {
	Assets                 string          `json:"assets,omitempty"`
	AssetIndex             *AssetIndex     `json:"assetIndex,omitempty"`
	Downloads              downloadsV2     `json:"downloads"`
	VersionID              string          `json:"id"`
	Libs                   []legacyLibrary `json:"libraries"`
	Logging                *Logging        `json:"logging,omitempty"`
	MainClassName          string          `json:"mainClass"`
	MinecraftArguments     *string         `json:"minecraftArguments,omitempty"`
	MinimumLauncherVersion int             `json:"minimumLauncherVersion"`
	ReleaseTime            string          `json:"releaseTime"`
	Time                   string          `json:"time"`
	Type                   string          `json:"type"`
}

func (m *V3) validate() error {
	if m.VersionID == "" {
		return errors.New("v3: missing id")
	}
	if m.MainClassName == "" {
		return errors.New("v3: missing mainClass")
	}
	if m.AssetIndex == nil {
		return errors.New("v3: missing assetIndex")
	}
	if m.MinecraftArguments == nil {
		return errors.New("v3: missing minecraftArguments")
	}
	if m.Logging == nil {
		return errors.New("v3: missing logging")
	}
	return nil
}

func (m *V3) ManifestVersion() int { return 3 }

func (m *V3) ID() string { return m.VersionID }

func (m *V3) MainClass() string { return m.MainClassName }

func (m *V3) AssetIndexID() string { return m.AssetIndex.ID }

func (m *V3) JavaMajorVersion() int { return DefaultJavaMajorVersion }

func (m *V3) Arguments() ArgumentSet {
	if m.MinecraftArguments == nil {
		return ArgumentSet{}
	}
	return LegacyArguments(*m.MinecraftArguments)
}

func (m *V3) Libraries() []Library { return legacyLibrariesUnified(m.Libs) }
