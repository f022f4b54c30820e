package manifest

import "github.com/pkg/errors"

// V6 is the current generation. It adds the required complianceLevel
// field, and native libraries lose their classifier maps: platform
// natives ship as ordinary rule-guarded artifacts instead.
//
// V6 is the first schema tried by Parse, so anything it accepts never
// falls through to an older, less capable representation.
type V6 struct {
	Args                   *structuredArguments `json:"arguments,omitempty"`
	Assets                 string               `json:"assets,omitempty"`
	AssetIndex             *AssetIndex          `json:"assetIndex,omitempty"`
	ComplianceLevel        *int                 `json:"complianceLevel,omitempty"`
	Downloads              downloadsV4          `json:"downloads"`
	VersionID              string               `json:"id"`
	JavaVersion            *JavaVersionInfo     `json:"javaVersion,omitempty"`
	Libs                   []modernLibrary      `json:"libraries"`
	Logging                *Logging             `json:"logging,omitempty"`
	MainClassName          string               `json:"mainClass"`
	MinimumLauncherVersion int                  `json:"minimumLauncherVersion"`
	ReleaseTime            string               `json:"releaseTime"`
	Time                   string               `json:"time"`
	Type                   string               `json:"type"`
}

func (m *V6) validate() error {
	if m.VersionID == "" {
		return errors.New("v6: missing id")
	}
	if m.MainClassName == "" {
		return errors.New("v6: missing mainClass")
	}
	if m.AssetIndex == nil {
		return errors.New("v6: missing assetIndex")
	}
	if m.Args == nil {
		return errors.New("v6: missing arguments")
	}
	if m.Logging == nil {
		return errors.New("v6: missing logging")
	}
	if m.Downloads.ClientMappings == nil || m.Downloads.ServerMappings == nil {
		return errors.New("v6: missing mappings downloads")
	}
	if m.ComplianceLevel == nil {
		return errors.New("v6: missing complianceLevel")
	}
	return nil
}

func (m *V6) ManifestVersion() int { return 6 }

func (m *V6) ID() string { return m.VersionID }

func (m *V6) MainClass() string { return m.MainClassName }

func (m *V6) AssetIndexID() string { return m.AssetIndex.ID }

func (m *V6) JavaMajorVersion() int {
	if m.JavaVersion == nil {
		return DefaultJavaMajorVersion
	}
	return m.JavaVersion.MajorVersion
}

func (m *V6) Arguments() ArgumentSet { return m.Args.unified() }

func (m *V6) Libraries() []Library { return modernLibrariesUnified(m.Libs) }
