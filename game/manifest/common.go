package manifest

// JSON shapes shared by several generations. Fields that appear only in
// some generations live on the per-generation structs in v1.go..v6.go.

type AssetIndex struct {
	ID        string `json:"id"`
	Sha1      string `json:"sha1"`
	Size      int64  `json:"size"`
	TotalSize int64  `json:"totalSize"`
	URL       string `json:"url"`
}

type DownloadEntry struct {
	Sha1 string `json:"sha1"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

type JavaVersionInfo struct {
	Component    string `json:"component"`
	MajorVersion int    `json:"majorVersion"`
}

type Logging struct {
	Client LoggingClient `json:"client"`
}

type LoggingClient struct {
	Argument string      `json:"argument"`
	File     LoggingFile `json:"file"`
	Type     string      `json:"type"`
}

type LoggingFile struct {
	ID   string `json:"id"`
	Sha1 string `json:"sha1"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

type libraryExtract struct {
	Exclude []string `json:"exclude"`
}

// legacyRule is the plain rule shape of generations 1-4: an action with an
// optional OS name/version predicate.
type legacyRule struct {
	Action string        `json:"action"`
	OS     *legacyRuleOS `json:"os,omitempty"`
}

type legacyRuleOS struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

func (r legacyRule) unified() Rule {
	out := Rule{Action: Action(r.Action)}
	if r.OS != nil {
		out.OS = &OSPredicate{Name: r.OS.Name, Version: r.OS.Version}
	}
	return out
}

// fullRule is the richer rule shape introduced with structured arguments:
// the OS predicate gains an arch field and feature predicates appear.
type fullRule struct {
	Action   string          `json:"action"`
	OS       *fullRuleOS     `json:"os,omitempty"`
	Features map[string]bool `json:"features,omitempty"`
}

type fullRuleOS struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
	Arch    string `json:"arch,omitempty"`
}

func (r fullRule) unified() Rule {
	out := Rule{Action: Action(r.Action), Features: r.Features}
	if r.OS != nil {
		out.OS = &OSPredicate{Name: r.OS.Name, Version: r.OS.Version, Arch: r.OS.Arch}
	}
	return out
}

func legacyRulesUnified(rs []legacyRule) []Rule {
	if rs == nil {
		return nil
	}
	out := make([]Rule, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.unified())
	}
	return out
}

func fullRulesUnified(rs []fullRule) []Rule {
	if rs == nil {
		return nil
	}
	out := make([]Rule, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.unified())
	}
	return out
}

// legacyLibrary is the library shape of generations 1-4.
type legacyLibrary struct {
	Downloads classifiedDownloads `json:"downloads"`
	Name      string              `json:"name"`
	Rules     []legacyRule        `json:"rules,omitempty"`
	Natives   map[string]string   `json:"natives,omitempty"`
	Extract   *libraryExtract     `json:"extract,omitempty"`
}

// richLibrary is the generation-5 library shape: same downloads layout as
// the legacy one, but with full rules.
type richLibrary struct {
	Downloads classifiedDownloads `json:"downloads"`
	Name      string              `json:"name"`
	Rules     []fullRule          `json:"rules,omitempty"`
	Natives   map[string]string   `json:"natives,omitempty"`
	Extract   *libraryExtract     `json:"extract,omitempty"`
}

// modernLibrary is the generation-6 library shape; native classifiers are
// gone and native artifacts ship as ordinary artifacts.
type modernLibrary struct {
	Downloads artifactDownloads `json:"downloads"`
	Name      string            `json:"name"`
	Rules     []fullRule        `json:"rules,omitempty"`
}

type classifiedDownloads struct {
	Artifact    *Artifact           `json:"artifact,omitempty"`
	Classifiers map[string]Artifact `json:"classifiers,omitempty"`
}

type artifactDownloads struct {
	Artifact *Artifact `json:"artifact,omitempty"`
}

func (l legacyLibrary) unified() Library {
	out := Library{
		Name:        l.Name,
		Rules:       legacyRulesUnified(l.Rules),
		Artifact:    l.Downloads.Artifact,
		Classifiers: l.Downloads.Classifiers,
		NativeKeys:  l.Natives,
	}
	if l.Extract != nil {
		out.ExtractExclude = l.Extract.Exclude
	}
	return out
}

func (l richLibrary) unified() Library {
	out := Library{
		Name:        l.Name,
		Rules:       fullRulesUnified(l.Rules),
		Artifact:    l.Downloads.Artifact,
		Classifiers: l.Downloads.Classifiers,
		NativeKeys:  l.Natives,
	}
	if l.Extract != nil {
		out.ExtractExclude = l.Extract.Exclude
	}
	return out
}

func (l modernLibrary) unified() Library {
	return Library{
		Name:     l.Name,
		Rules:    fullRulesUnified(l.Rules),
		Artifact: l.Downloads.Artifact,
	}
}

func legacyLibrariesUnified(ls []legacyLibrary) []Library {
	out := make([]Library, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.unified())
	}
	return out
}

func richLibrariesUnified(ls []richLibrary) []Library {
	out := make([]Library, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.unified())
	}
	return out
}

func modernLibrariesUnified(ls []modernLibrary) []Library {
	out := make([]Library, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.unified())
	}
	return out
}
