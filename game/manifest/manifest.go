// Package manifest models the six historical generations of the version
// manifest format and unifies them behind a single accessor surface.
//
// Each generation is a distinct, strictly-decoded schema. Parse tries the
// newest generation first and walks backwards until one accepts the
// document; the parsed value keeps its generation-specific shape so that
// serializing it back produces the same field set it came from.
package manifest

import (
	"github.com/pkg/errors"
)

// Historical default for manifests that predate the javaVersion field.
const DefaultJavaMajorVersion = 8

var (
	// ErrUnrecognizedManifest is returned when a document satisfies none of
	// the six known schema generations.
	ErrUnrecognizedManifest = errors.New("manifest matches no known schema generation")

	// ErrMissingLegacyArguments is returned when a legacy-generation
	// manifest carries neither structured arguments nor the legacy
	// minecraftArguments string.
	ErrMissingLegacyArguments = errors.New("manifest carries neither structured nor legacy arguments")
)

type Action string

const (
	ActionAllow    Action = "allow"
	ActionDisallow Action = "disallow"
)

// OSPredicate narrows a rule to hosts matching the specified fields.
// Empty fields are unspecified and always match.
type OSPredicate struct {
	Name    string
	Version string
	Arch    string
}

// Rule gates whether an argument or library applies to the current launch.
// A nil OS and nil Features means the rule has no predicate.
type Rule struct {
	Action   Action
	OS       *OSPredicate
	Features map[string]bool
}

type Artifact struct {
	Path string `json:"path"`
	Sha1 string `json:"sha1"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

// Library is the unified per-generation view of a manifest library entry.
// Classifiers map native classifier keys (e.g. "natives-linux") to their
// artifacts; NativeKeys maps OS names to the classifier key the library
// declares for that OS. Both are empty for generations without natives.
type Library struct {
	Name           string
	Rules          []Rule
	Artifact       *Artifact
	Classifiers    map[string]Artifact
	NativeKeys     map[string]string
	ExtractExclude []string
}

// Argument is either a plain string or a rule-guarded one-or-many value.
type Argument struct {
	Rules  []Rule
	values []string
}

func PlainArgument(text string) Argument {
	return Argument{values: []string{text}}
}

func ConditionalArgument(rules []Rule, values ...string) Argument {
	if rules == nil {
		rules = []Rule{}
	}
	return Argument{Rules: rules, values: values}
}

// Plain reports whether the argument is emitted unconditionally.
func (a Argument) Plain() bool {
	return a.Rules == nil
}

func (a Argument) Values() []string {
	return a.values
}

// ArgumentSet is the unified argument view: either the legacy single
// string or the structured game/jvm lists. The zero value is empty,
// which resolvers must treat as ErrMissingLegacyArguments.
type ArgumentSet struct {
	legacy    string
	hasLegacy bool
	game      []Argument
	jvm       []Argument
}

func LegacyArguments(line string) ArgumentSet {
	return ArgumentSet{legacy: line, hasLegacy: true}
}

func StructuredArguments(game, jvm []Argument) ArgumentSet {
	if game == nil {
		game = []Argument{}
	}
	if jvm == nil {
		jvm = []Argument{}
	}
	return ArgumentSet{game: game, jvm: jvm}
}

// Legacy returns the pre-structured argument line, if this is a legacy set.
func (s ArgumentSet) Legacy() (string, bool) {
	return s.legacy, s.hasLegacy
}

func (s ArgumentSet) Game() []Argument {
	return s.game
}

func (s ArgumentSet) JVM() []Argument {
	return s.jvm
}

func (s ArgumentSet) Empty() bool {
	return !s.hasLegacy && s.game == nil && s.jvm == nil
}

// Versioned is the capability surface shared by all six generations.
// Values are read-only after Parse and safe to share across goroutines.
type Versioned interface {
	// ManifestVersion returns the schema generation, 1 through 6.
	ManifestVersion() int
	ID() string
	MainClass() string
	// AssetIndexID returns the asset index name ("legacy", "17", ...).
	AssetIndexID() string
	// JavaMajorVersion returns the required Java major version,
	// defaulting to DefaultJavaMajorVersion when the manifest or its
	// generation omits it.
	JavaMajorVersion() int
	Arguments() ArgumentSet
	Libraries() []Library
}
