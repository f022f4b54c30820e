//go:build !windows

package rules

// Windows version predicates never match off Windows, so no version
// probing is needed elsewhere.
func hostOSVersion() string {
	return ""
}
