// Package rules evaluates manifest inclusion rules against a snapshot of
// host and launch facts.
package rules

import (
	"runtime"
	"strconv"
	"strings"
)

type OS string

const (
	OSWindows OS = "windows"
	OSLinux   OS = "linux"
	OSMac     OS = "osx"
)

type Arch string

const (
	ArchX86   Arch = "x86"
	ArchX64   Arch = "x86_64"
	ArchArm   Arch = "arm"
	ArchArm64 Arch = "arm64"
)

type quickplayKind int

const (
	quickplaySingleplayer quickplayKind = iota + 1
	quickplayMultiplayer
	quickplayRealms
)

// Quickplay selects a world, server or realm to auto-join on startup.
// The variants are mutually exclusive.
type Quickplay struct {
	kind   quickplayKind
	target string
}

// SingleplayerQuickplay joins the named world on startup.
func SingleplayerQuickplay(world string) Quickplay {
	return Quickplay{kind: quickplaySingleplayer, target: world}
}

// MultiplayerQuickplay joins the given server address on startup.
func MultiplayerQuickplay(server string) Quickplay {
	return Quickplay{kind: quickplayMultiplayer, target: server}
}

// RealmsQuickplay joins the given realm ID on startup.
func RealmsQuickplay(realmID string) Quickplay {
	return Quickplay{kind: quickplayRealms, target: realmID}
}

func (q Quickplay) IsSingleplayer() bool { return q.kind == quickplaySingleplayer }

func (q Quickplay) IsMultiplayer() bool { return q.kind == quickplayMultiplayer }

func (q Quickplay) IsRealms() bool { return q.kind == quickplayRealms }

// Target returns the world name, server address or realm ID.
func (q Quickplay) Target() string { return q.target }

// Context is the snapshot of facts rules are evaluated against. It is
// built once per launch attempt and never mutated afterwards, so it may
// be shared freely across goroutines.
type Context struct {
	OS   OS
	Arch Arch
	// OSVersion is the host OS version string; only consulted by
	// Windows version predicates.
	OSVersion string

	IsDemoUser          bool
	Quickplay           *Quickplay
	HasCustomResolution bool
}

// HostContext snapshots the host facts. Launch facts (demo mode,
// quickplay, custom resolution) default to off; callers fill them in
// before first use.
func HostContext() Context {
	hostOS, hostArch := hostPlatform()
	return Context{OS: hostOS, Arch: hostArch, OSVersion: hostOSVersion()}
}

func hostPlatform() (OS, Arch) {
	detectedOS := OSLinux
	switch runtime.GOOS {
	case "windows":
		detectedOS = OSWindows
	case "darwin":
		detectedOS = OSMac
	}

	detectedArch := ArchX64
	switch runtime.GOARCH {
	case "386":
		detectedArch = ArchX86
	case "arm":
		detectedArch = ArchArm
	case "arm64":
		detectedArch = ArchArm64
	}
	return detectedOS, detectedArch
}

// windowsMajorAtLeast parses the leading major component of a Windows
// version string ("10.0.19045").
func windowsMajorAtLeast(version string, major int) bool {
	head, _, _ := strings.Cut(version, ".")
	parsed, err := strconv.Atoi(head)
	if err != nil {
		return false
	}
	return parsed >= major
}

func (c Context) feature(name string) (bool, bool) {
	switch name {
	case "is_demo_user":
		return c.IsDemoUser, true
	case "has_custom_resolution":
		return c.HasCustomResolution, true
	case "has_quick_plays_support":
		return c.Quickplay != nil, true
	case "is_quick_play_singleplayer":
		return c.Quickplay != nil && c.Quickplay.IsSingleplayer(), true
	case "is_quick_play_multiplayer":
		return c.Quickplay != nil && c.Quickplay.IsMultiplayer(), true
	case "is_quick_play_realms":
		return c.Quickplay != nil && c.Quickplay.IsRealms(), true
	}
	return false, false
}
