package manifest

import "github.com/pkg/errors"

// V5 replaces minecraftArguments with the structured arguments block
// (separate game and jvm lists, rule-guarded entries, feature
// predicates) and introduces the optional javaVersion field.
type V5 struct {
	Args                   *structuredArguments `json:"arguments,omitempty"`
	Assets                 string               `json:"assets,omitempty"`
	AssetIndex             *AssetIndex          `json:"assetIndex,omitempty"`
	Downloads              downloadsV4          `json:"downloads"`
	VersionID              string               `json:"id"`
	JavaVersion            *JavaVersionInfo     `json:"javaVersion,omitempty"`
	Libs                   []richLibrary        `json:"libraries"`
	Logging                *Logging             `json:"logging,omitempty"`
	MainClassName          string               `json:"mainClass"`
	MinimumLauncherVersion int                  `json:"minimumLauncherVersion"`
	ReleaseTime            string               `json:"releaseTime"`
	Time                   string               `json:"time"`
	Type                   string               `json:"type"`
}

func (m *V5) validate() error {
	if m.VersionID == "" {
		return errors.New("v5: missing id")
	}
	if m.MainClassName == "" {
		return errors.New("v5: missing mainClass")
	}
	if m.AssetIndex == nil {
		return errors.New("v5: missing assetIndex")
	}
	if m.Args == nil {
		return errors.New("v5: missing arguments")
	}
	if m.Logging == nil {
		return errors.New("v5: missing logging")
	}
	if m.Downloads.ClientMappings == nil || m.Downloads.ServerMappings == nil {
		return errors.New("v5: missing mappings downloads")
	}
	return nil
}

func (m *V5) ManifestVersion() int { return 5 }

func (m *V5) ID() string { return m.VersionID }

func (m *V5) MainClass() string { return m.MainClassName }

func (m *V5) AssetIndexID() string { return m.AssetIndex.ID }

func (m *V5) JavaMajorVersion() int {
	if m.JavaVersion == nil {
		return DefaultJavaMajorVersion
	}
	return m.JavaVersion.MajorVersion
}

func (m *V5) Arguments() ArgumentSet { return m.Args.unified() }

func (m *V5) Libraries() []Library { return richLibrariesUnified(m.Libs) }
