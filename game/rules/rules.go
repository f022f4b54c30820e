package rules

import (
	"fmt"

	"github.com/craftline/craftline/game/manifest"
)

// windows10Marker is the only Windows version predicate real manifests
// carry; it means "host is Windows 10 or later".
const windows10Marker = `^10\.`

// UnsupportedPredicateError reports a rule value the evaluator does not
// understand. Guessing a default here could silently include a damaging
// argument or omit a required one, so these are fatal.
type UnsupportedPredicateError struct {
	Kind  string
	Value string
}

func (e *UnsupportedPredicateError) Error() string {
	return fmt.Sprintf("unsupported %s predicate: %q", e.Kind, e.Value)
}

// Match reports whether every rule in the list passes against ctx.
// The list is a logical AND; the first failing rule short-circuits.
// An empty list passes.
func Match(rs []manifest.Rule, ctx Context) (bool, error) {
	for _, r := range rs {
		ok, err := Evaluate(r, ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Evaluate decides whether a single rule passes against ctx. A rule with
// no predicate passes. Only the allow action exists in real manifests;
// disallow is rejected rather than given made-up semantics so a future
// schema change cannot be masked.
func Evaluate(r manifest.Rule, ctx Context) (bool, error) {
	if r.Action != manifest.ActionAllow {
		return false, &UnsupportedPredicateError{Kind: "action", Value: string(r.Action)}
	}

	if r.OS != nil {
		ok, err := matchOS(*r.OS, ctx)
		if err != nil || !ok {
			return false, err
		}
	}

	if r.Features != nil {
		ok, err := matchFeatures(r.Features, ctx)
		if err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}

func matchOS(p manifest.OSPredicate, ctx Context) (bool, error) {
	if p.Name != "" {
		want, err := normalizeOS(p.Name)
		if err != nil {
			return false, err
		}
		if want != ctx.OS {
			return false, nil
		}
	}

	if p.Version != "" {
		if p.Version != windows10Marker {
			return false, &UnsupportedPredicateError{Kind: "os.version", Value: p.Version}
		}
		if ctx.OS != OSWindows || !windowsMajorAtLeast(ctx.OSVersion, 10) {
			return false, nil
		}
	}

	if p.Arch != "" {
		want, err := normalizeArch(p.Arch)
		if err != nil {
			return false, err
		}
		if want != ctx.Arch {
			return false, nil
		}
	}

	return true, nil
}

func matchFeatures(features map[string]bool, ctx Context) (bool, error) {
	for name, want := range features {
		got, known := ctx.feature(name)
		if !known {
			return false, &UnsupportedPredicateError{Kind: "feature", Value: name}
		}
		if got != want {
			return false, nil
		}
	}
	return true, nil
}

// Manifests historically say "osx"; newer ones say "macos".
func normalizeOS(name string) (OS, error) {
	switch name {
	case "windows":
		return OSWindows, nil
	case "linux":
		return OSLinux, nil
	case "osx", "macos":
		return OSMac, nil
	}
	return "", &UnsupportedPredicateError{Kind: "os.name", Value: name}
}

func normalizeArch(arch string) (Arch, error) {
	switch arch {
	case "x86", "i386":
		return ArchX86, nil
	case "x86_64", "amd64":
		return ArchX64, nil
	case "arm":
		return ArchArm, nil
	case "arm64", "aarch64":
		return ArchArm64, nil
	}
	return "", &UnsupportedPredicateError{Kind: "os.arch", Value: arch}
}
