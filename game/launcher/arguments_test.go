package launcher

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftline/craftline/game/manifest"
	"github.com/craftline/craftline/game/profile"
	"github.com/craftline/craftline/game/rules"
)

const structuredDoc = `{
	"arguments": {
		"game": [
			"--username",
			"${auth_player_name}",
			"--assetsDir",
			"${assets_root}",
			"--assetIndex",
			"${assets_index_name}",
			{"rules": [{"action": "allow", "features": {"is_demo_user": true}}], "value": "--demo"},
			{"rules": [{"action": "allow", "features": {"has_custom_resolution": true}}], "value": ["--width", "${resolution_width}", "--height", "${resolution_height}"]},
			{"rules": [{"action": "allow", "features": {"is_quick_play_singleplayer": true}}], "value": ["--quickPlayPath", "${quickPlayPath}", "--quickPlaySingleplayer", "${quickPlaySingleplayer}"]}
		],
		"jvm": [
			{"rules": [{"action": "allow", "os": {"name": "osx"}}], "value": ["-XstartOnFirstThread"]},
			"-Dlauncher.brand=${launcher_name}",
			"-Djava.library.path=${natives_directory}",
			"-cp",
			"${classpath}"
		]
	},
	"assetIndex": {"id": "1.17", "sha1": "", "size": 0, "totalSize": 0, "url": ""},
	"downloads": {
		"client": {"sha1": "", "size": 0, "url": ""},
		"client_mappings": {"sha1": "", "size": 0, "url": ""},
		"server_mappings": {"sha1": "", "size": 0, "url": ""}
	},
	"id": "1.17.1",
	"libraries": [],
	"logging": {"client": {"argument": "", "file": {"id": "", "sha1": "", "size": 0, "url": ""}, "type": ""}},
	"mainClass": "net.minecraft.client.main.Main",
	"minimumLauncherVersion": 21,
	"releaseTime": "",
	"time": "",
	"type": "release"
}`

func parseManifest(t *testing.T, doc string) manifest.Versioned {
	t.Helper()
	m, err := manifest.Parse([]byte(doc))
	require.NoError(t, err)
	return m
}

func newTestLauncher(t *testing.T, m manifest.Versioned) *Launcher {
	t.Helper()
	l := NewLauncher("craftline", "0.1.0")
	l.GameDirectory = "/games/instance"
	l.AssetsDirectory = "/games/assets"
	l.NativesDirectory = "/games/natives"
	l.Classpath = "client.jar:lib.jar"
	l.SetProfile(profile.NewOfflineProfile("Steve"))
	l.SetJavaPath("java")
	require.NoError(t, l.SetManifest(m))
	return l
}

func testContext() rules.Context {
	return rules.Context{OS: rules.OSLinux, Arch: rules.ArchX64}
}

func legacyManifest(line string) manifest.Versioned {
	return &manifest.V1{
		VersionID:          "1.5.2",
		MainClassName:      "net.minecraft.client.Minecraft",
		Assets:             "legacy",
		MinecraftArguments: &line,
	}
}

func TestResolveLegacyArguments(t *testing.T) {
	m := legacyManifest("--username ${auth_player_name} --version ${version_name} --gameDir ${game_directory}")
	l := newTestLauncher(t, m)

	line, err := NewArgumentResolver(l, testContext()).Resolve()
	require.NoError(t, err)

	assert.Empty(t, line.JVMArgs)
	assert.Equal(t, "", line.JVMLine())
	assert.Equal(t, "net.minecraft.client.Minecraft", line.MainClass)
	assert.Equal(t, []string{
		"--username", "Steve",
		"--version", "1.5.2",
		"--gameDir", "/games/instance",
	}, line.GameArgs)
}

func TestResolveLegacyCollapsesEmptySubstitutions(t *testing.T) {
	// Offline profiles carry no access token; the empty substitution
	// must not leave a doubled separator behind.
	m := legacyManifest("--session ${auth_session} --username ${auth_player_name}")
	l := newTestLauncher(t, m)

	line, err := NewArgumentResolver(l, testContext()).Resolve()
	require.NoError(t, err)
	assert.Equal(t, []string{"--session", "--username", "Steve"}, line.GameArgs)
}

func TestResolveLegacyKeepsSpacedValuesWhole(t *testing.T) {
	m := legacyManifest("--gameDir ${game_directory} --username ${auth_player_name}")
	l := newTestLauncher(t, m)
	l.GameDirectory = "/my games/instance"

	line, err := NewArgumentResolver(l, testContext()).Resolve()
	require.NoError(t, err)
	assert.Equal(t, []string{"--gameDir", "/my games/instance", "--username", "Steve"}, line.GameArgs)
}

func TestResolveMissingLegacyArguments(t *testing.T) {
	m := &manifest.V1{VersionID: "rd-132211", MainClassName: "com.mojang.rubydung.RubyDung"}
	l := newTestLauncher(t, m)

	_, err := NewArgumentResolver(l, testContext()).Resolve()
	require.ErrorIs(t, err, manifest.ErrMissingLegacyArguments)
}

func TestResolveStructuredArguments(t *testing.T) {
	l := newTestLauncher(t, parseManifest(t, structuredDoc))

	line, err := NewArgumentResolver(l, testContext()).Resolve()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"--username", "Steve",
		"--assetsDir", "/games/assets",
		"--assetIndex", "1.17",
	}, line.GameArgs)

	assert.Equal(t, []string{
		"-Dlauncher.brand=craftline",
		"-Djava.library.path=/games/natives",
		"-cp", "client.jar:lib.jar",
	}, line.JVMArgs)

	assert.Equal(t, "net.minecraft.client.main.Main", line.MainClass)
}

func TestResolveOmittedArgumentsLeaveNoGaps(t *testing.T) {
	l := newTestLauncher(t, parseManifest(t, structuredDoc))

	line, err := NewArgumentResolver(l, testContext()).Resolve()
	require.NoError(t, err)

	assert.NotContains(t, line.GameArgs, "")
	assert.NotContains(t, line.GameArgs, "--demo")
	assert.NotContains(t, line.GameArgs, "--width")
	assert.Equal(t, "--username Steve --assetsDir /games/assets --assetIndex 1.17", line.GameLine())
}

func TestResolveDemoAndResolution(t *testing.T) {
	l := newTestLauncher(t, parseManifest(t, structuredDoc))
	l.Profile().IsDemoUser = true
	l.CustomResolution = &CustomResolution{Width: 854, Height: 480}

	ctx := testContext()
	ctx.IsDemoUser = true
	ctx.HasCustomResolution = true

	line, err := NewArgumentResolver(l, ctx).Resolve()
	require.NoError(t, err)

	assert.Contains(t, line.GameArgs, "--demo")
	assert.Equal(t, []string{"--width", "854", "--height", "480"}, line.GameArgs[len(line.GameArgs)-4:])
}

func TestResolveQuickplay(t *testing.T) {
	l := newTestLauncher(t, parseManifest(t, structuredDoc))
	singleplayer := rules.SingleplayerQuickplay("New World")
	l.Quickplay = &singleplayer

	ctx := testContext()
	ctx.Quickplay = &singleplayer

	line, err := NewArgumentResolver(l, ctx).Resolve()
	require.NoError(t, err)

	wantPath := filepath.Join("/games/instance", "quickPlay", "log.json")
	assert.Equal(t, []string{
		"--quickPlayPath", wantPath,
		"--quickPlaySingleplayer", "New World",
	}, line.GameArgs[len(line.GameArgs)-4:])
}

func TestResolveLauncherContextMatchesFlags(t *testing.T) {
	l := newTestLauncher(t, parseManifest(t, structuredDoc))
	singleplayer := rules.SingleplayerQuickplay("New World")
	l.Quickplay = &singleplayer
	l.CustomResolution = &CustomResolution{Width: 1920, Height: 1080}
	l.Profile().IsDemoUser = true

	ctx := l.Context()
	assert.True(t, ctx.IsDemoUser)
	assert.True(t, ctx.HasCustomResolution)
	require.NotNil(t, ctx.Quickplay)
	assert.True(t, ctx.Quickplay.IsSingleplayer())
}

func TestResolveVersionNameSanitized(t *testing.T) {
	m := legacyManifest("--version ${version_name}")
	l := NewLauncher("craftline", "0.1.0")
	l.VersionName = "custom fork:1.5"
	l.SetProfile(profile.NewOfflineProfile("Steve"))
	l.SetJavaPath("java")
	require.NoError(t, l.SetManifest(m))

	line, err := NewArgumentResolver(l, testContext()).Resolve()
	require.NoError(t, err)
	assert.Equal(t, []string{"--version", "custom_fork_1.5"}, line.GameArgs)
}

func TestResolveIdentityPlaceholders(t *testing.T) {
	m := legacyManifest("--uuid ${auth_uuid} --userType ${user_type} --userProperties ${user_properties} --xuid ${auth_xuid} --clientId ${clientid}")
	l := newTestLauncher(t, m)

	line, err := NewArgumentResolver(l, testContext()).Resolve()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"--uuid", l.Profile().UUIDString(),
		"--userType", "msa",
		"--userProperties", "{}",
		"--xuid", "0",
		"--clientId", "0",
	}, line.GameArgs)
}

func TestResolveVersionType(t *testing.T) {
	m := legacyManifest("--versionType ${version_type}")

	l := newTestLauncher(t, m)
	line, err := NewArgumentResolver(l, testContext()).Resolve()
	require.NoError(t, err)
	assert.Equal(t, []string{"--versionType", "release"}, line.GameArgs)

	l.IsSnapshot = true
	line, err = NewArgumentResolver(l, testContext()).Resolve()
	require.NoError(t, err)
	assert.Equal(t, []string{"--versionType", "snapshot"}, line.GameArgs)
}

func TestResolveLeavesNoPlaceholders(t *testing.T) {
	l := newTestLauncher(t, parseManifest(t, structuredDoc))
	singleplayer := rules.SingleplayerQuickplay("New World")
	l.Quickplay = &singleplayer
	l.CustomResolution = &CustomResolution{Width: 854, Height: 480}
	l.Profile().IsDemoUser = true

	line, err := NewArgumentResolver(l, l.Context()).Resolve()
	require.NoError(t, err)

	for _, arg := range append(line.JVMArgs, line.GameArgs...) {
		assert.NotContains(t, arg, "${", "unresolved placeholder in %q", arg)
	}
}

func TestCommandArgsOrder(t *testing.T) {
	line := ResolvedCommandLine{
		JVMArgs:   []string{"-cp", "client.jar"},
		MainClass: "net.minecraft.client.main.Main",
		GameArgs:  []string{"--username", "Steve"},
	}

	assert.Equal(t, []string{
		"-cp", "client.jar",
		"net.minecraft.client.main.Main",
		"--username", "Steve",
	}, line.CommandArgs())
}

func TestSetManifestDefaults(t *testing.T) {
	m := legacyManifest("--username ${auth_player_name}")
	l := NewLauncher("craftline", "0.1.0")
	l.GameDirectory = "/games/instance"
	l.SetJavaPath("java")
	l.SetProfile(profile.NewOfflineProfile("Steve"))
	require.NoError(t, l.SetManifest(m))

	assert.Equal(t, "1.5.2", l.VersionName)
	assert.Equal(t, filepath.Join("/games/instance", "natives"), l.NativesDirectory)
}
