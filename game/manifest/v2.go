package manifest

import "github.com/pkg/errors"

// V2 introduces the assetIndex object and drops the windows_server
// download. Arguments are still the legacy single string.
type V2 struct {
	Assets                 string          `json:"assets,omitempty"`
	AssetIndex             *AssetIndex     `json:"assetIndex,omitempty"`
	Downloads              downloadsV2     `json:"downloads"`
	VersionID              string          `json:"id"`
	Libs                   []legacyLibrary `json:"libraries"`
	MainClassName          string          `json:"mainClass"`
	MinecraftArguments     *string         `json:"minecraftArguments,omitempty"`
	MinimumLauncherVersion int             `json:"minimumLauncherVersion"`
	ReleaseTime            string          `json:"releaseTime"`
	Time                   string          `json:"time"`
	Type                   string          `json:"type"`
}

type downloadsV2 struct {
	Client DownloadEntry  `json:"client"`
	Server *DownloadEntry `json:"server,omitempty"`
}

func (m *V2) validate() error {
	if m.VersionID == "" {
		return errors.New("v2: missing id")
	}
	if m.MainClassName == "" {
		return errors.New("v2: missing mainClass")
	}
	if m.AssetIndex == nil {
		return errors.New("v2: missing assetIndex")
	}
	if m.MinecraftArguments == nil {
		return errors.New("v2: missing minecraftArguments")
	}
	return nil
}

func (m *V2) ManifestVersion() int { return 2 }

func (m *V2) ID() string { return m.VersionID }

func (m *V2) MainClass() string { return m.MainClassName }

func (m *V2) AssetIndexID() string { return m.AssetIndex.ID }

func (m *V2) JavaMajorVersion() int { return DefaultJavaMajorVersion }

func (m *V2) Arguments() ArgumentSet {
	if m.MinecraftArguments == nil {
		return ArgumentSet{}
	}
	return LegacyArguments(*m.MinecraftArguments)
}

func (m *V2) Libraries() []Library { return legacyLibrariesUnified(m.Libs) }
