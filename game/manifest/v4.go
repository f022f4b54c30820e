package manifest

import "github.com/pkg/errors"

// V4 adds obfuscation mappings to the downloads block. It is the last
// generation to use the legacy single-string arguments.
type V4 struct {
	Assets                 string          `json:"assets,omitempty"`
	AssetIndex             *AssetIndex     `json:"assetIndex,omitempty"`
	Downloads              downloadsV4     `json:"downloads"`
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

type downloadsV4 struct {
	Client         DownloadEntry  `json:"client"`
	Server         *DownloadEntry `json:"server,omitempty"`
	ClientMappings *DownloadEntry `json:"client_mappings,omitempty"`
	ServerMappings *DownloadEntry `json:"server_mappings,omitempty"`
}

func (m *V4) validate() error {
	if m.VersionID == "" {
		return errors.New("v4: missing id")
	}
	if m.MainClassName == "" {
		return errors.New("v4: missing mainClass")
	}
	if m.AssetIndex == nil {
		return errors.New("v4: missing assetIndex")
	}
	if m.MinecraftArguments == nil {
		return errors.New("v4: missing minecraftArguments")
	}
	if m.Logging == nil {
		return errors.New("v4: missing logging")
	}
	if m.Downloads.ClientMappings == nil || m.Downloads.ServerMappings == nil {
		return errors.New("v4: missing mappings downloads")
	}
	return nil
}

func (m *V4) ManifestVersion() int { return 4 }

func (m *V4) ID() string { return m.VersionID }

func (m *V4) MainClass() string { return m.MainClassName }

func (m *V4) AssetIndexID() string { return m.AssetIndex.ID }

func (m *V4) JavaMajorVersion() int { return DefaultJavaMajorVersion }

func (m *V4) Arguments() ArgumentSet {
	if m.MinecraftArguments == nil {
		return ArgumentSet{}
	}
	return LegacyArguments(*m.MinecraftArguments)
}

func (m *V4) Libraries() []Library { return legacyLibrariesUnified(m.Libs) }
