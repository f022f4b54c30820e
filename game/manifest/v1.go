package manifest

import "github.com/pkg/errors"

// V1 is the oldest generation. Launch arguments live in the single
// minecraftArguments string, assets are identified by name only (no asset
// index object yet), and the downloads block may still carry the
// short-lived windows_server entry. Library rules are plain action/OS
// pairs without an arch field.
//
// V1 is also the fallback generation at the end of the resolution chain,
// so it is the only one that tolerates a missing minecraftArguments; the
// argument resolver surfaces that as ErrMissingLegacyArguments.
type V1 struct {
	Assets                 string          `json:"assets,omitempty"`
	Downloads              downloadsV1     `json:"downloads"`
	VersionID              string          `json:"id"`
	Libs                   []legacyLibrary `json:"libraries"`
	MainClassName          string          `json:"mainClass"`
	MinecraftArguments     *string         `json:"minecraftArguments,omitempty"`
	MinimumLauncherVersion int             `json:"minimumLauncherVersion"`
	ReleaseTime            string          `json:"releaseTime"`
	Time                   string          `json:"time"`
	Type                   string          `json:"type"`
}

type downloadsV1 struct {
	Client        DownloadEntry  `json:"client"`
	Server        *DownloadEntry `json:"server,omitempty"`
	WindowsServer *DownloadEntry `json:"windows_server,omitempty"`
}

func (m *V1) validate() error {
	if m.VersionID == "" {
		return errors.New("v1: missing id")
	}
	if m.MainClassName == "" {
		return errors.New("v1: missing mainClass")
	}
	return nil
}

func (m *V1) ManifestVersion() int { return 1 }

func (m *V1) ID() string { return m.VersionID }

func (m *V1) MainClass() string { return m.MainClassName }

func (m *V1) AssetIndexID() string { return m.Assets }

func (m *V1) JavaMajorVersion() int { return DefaultJavaMajorVersion }

func (m *V1) Arguments() ArgumentSet {
	if m.MinecraftArguments == nil {
		return ArgumentSet{}
	}
	return LegacyArguments(*m.MinecraftArguments)
}

func (m *V1) Libraries() []Library { return legacyLibrariesUnified(m.Libs) }
