package launcher

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/craftline/craftline/game/manifest"
	"github.com/craftline/craftline/game/rules"
)

/////////////////////////////////////////////////////////////////////
// Argument resolution
/////////////////////////////////////////////////////////////////////

// ResolvedCommandLine is the fully resolved launch command: JVM
// arguments, the main class and game arguments, in manifest order.
// It is built fresh per launch attempt.
type ResolvedCommandLine struct {
	JVMArgs   []string
	MainClass string
	GameArgs  []string
}

func (c *ResolvedCommandLine) JVMLine() string {
	return strings.Join(c.JVMArgs, " ")
}

func (c *ResolvedCommandLine) GameLine() string {
	return strings.Join(c.GameArgs, " ")
}

// CommandArgs returns the full argument vector for the java executable.
func (c *ResolvedCommandLine) CommandArgs() []string {
	args := make([]string, 0, len(c.JVMArgs)+1+len(c.GameArgs))
	args = append(args, c.JVMArgs...)
	args = append(args, c.MainClass)
	args = append(args, c.GameArgs...)
	return args
}

// ArgumentResolver evaluates per-argument rules against the launch
// context and substitutes runtime placeholders.
type ArgumentResolver struct {
	launcher *Launcher
	ctx      rules.Context
}

func NewArgumentResolver(launcher *Launcher, ctx rules.Context) *ArgumentResolver {
	return &ArgumentResolver{launcher: launcher, ctx: ctx}
}

// Resolve produces the final command line. Legacy manifests contribute
// only game arguments: the JVM list did not exist before the structured
// format, and neither did demo/quickplay rule filtering.
func (r *ArgumentResolver) Resolve() (*ResolvedCommandLine, error) {
	set := r.launcher.manifest.Arguments()

	if legacy, ok := set.Legacy(); ok {
		return &ResolvedCommandLine{
			MainClass: r.launcher.manifest.MainClass(),
			GameArgs:  r.resolveLegacy(legacy),
		}, nil
	}

	if set.Empty() {
		return nil, manifest.ErrMissingLegacyArguments
	}

	gameArgs, err := r.resolveList(set.Game(), r.gamePlaceholders())
	if err != nil {
		return nil, err
	}
	jvmArgs, err := r.resolveList(set.JVM(), r.jvmPlaceholders())
	if err != nil {
		return nil, err
	}

	return &ResolvedCommandLine{
		JVMArgs:   jvmArgs,
		MainClass: r.launcher.manifest.MainClass(),
		GameArgs:  gameArgs,
	}, nil
}

func (r *ArgumentResolver) resolveLegacy(line string) []string {
	// Split the template before substituting: a substituted value that
	// contains spaces must stay one argument. Tokens that substitute to
	// nothing are dropped so empty values never leak separators.
	placeholders := r.gamePlaceholders()
	tokens := strings.Fields(line)
	resolved := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if value := substitute(token, placeholders); value != "" {
			resolved = append(resolved, value)
		}
	}
	return resolved
}

func (r *ArgumentResolver) resolveList(args []manifest.Argument, placeholders map[string]string) ([]string, error) {
	resolved := make([]string, 0, len(args))
	for _, arg := range args {
		if !arg.Plain() {
			ok, err := rules.Match(arg.Rules, r.ctx)
			if err != nil {
				return nil, err
			}
			if !ok {
				// Omitted entirely: nothing is appended, so the
				// joined output gains no stray separator.
				continue
			}
		}
		for _, value := range arg.Values() {
			resolved = append(resolved, substitute(value, placeholders))
		}
	}
	return resolved, nil
}

func (r *ArgumentResolver) gamePlaceholders() map[string]string {
	l := r.launcher

	placeholders := map[string]string{
		"auth_player_name":  l.profile.Username,
		"version_name":      sanitizeName(l.VersionName),
		"game_directory":    l.GameDirectory,
		"assets_root":       l.AssetsDirectory,
		"game_assets":       l.AssetsDirectory,
		"assets_index_name": sanitizeName(l.manifest.AssetIndexID()),
		"auth_uuid":         l.profile.UUIDString(),
		"auth_access_token": l.profile.AccessToken,
		"auth_session":      l.profile.AccessToken,
		"clientid":          l.profile.ClientID,
		"auth_xuid":         l.profile.XUID,
		"user_type":         "msa",
		"user_properties":   "{}",
		"version_type":      versionType(l.IsSnapshot),

		"resolution_width":  "",
		"resolution_height": "",

		"quickPlayPath":         "",
		"quickPlaySingleplayer": "",
		"quickPlayMultiplayer":  "",
		"quickPlayRealms":       "",
	}

	if l.CustomResolution != nil {
		placeholders["resolution_width"] = strconv.Itoa(l.CustomResolution.Width)
		placeholders["resolution_height"] = strconv.Itoa(l.CustomResolution.Height)
	}

	if l.Quickplay != nil {
		placeholders["quickPlayPath"] = quickplayLogPath(l.GameDirectory)
		switch {
		case l.Quickplay.IsSingleplayer():
			placeholders["quickPlaySingleplayer"] = l.Quickplay.Target()
		case l.Quickplay.IsMultiplayer():
			placeholders["quickPlayMultiplayer"] = l.Quickplay.Target()
		case l.Quickplay.IsRealms():
			placeholders["quickPlayRealms"] = l.Quickplay.Target()
		}
	}

	return placeholders
}

func (r *ArgumentResolver) jvmPlaceholders() map[string]string {
	l := r.launcher
	return map[string]string{
		"natives_directory": l.NativesDirectory,
		"launcher_name":     l.LauncherName,
		"launcher_version":  l.LauncherVersion,
		"classpath":         l.Classpath,
	}
}

// substitute replaces every ${placeholder} occurrence. Placeholders with
// no data substitute the empty string; surrounding literal text is kept.
func substitute(arg string, placeholders map[string]string) string {
	for placeholder, value := range placeholders {
		arg = strings.ReplaceAll(arg, "${"+placeholder+"}", value)
	}
	return arg
}

var nameSanitizer = strings.NewReplacer(" ", "_", ":", "_")

func sanitizeName(name string) string {
	return nameSanitizer.Replace(name)
}

// quickplayLogPath is where the game writes its quickplay session log.
func quickplayLogPath(gameDir string) string {
	return filepath.Join(gameDir, "quickPlay", "log.json")
}

func versionType(isSnapshot bool) string {
	if isSnapshot {
		return "snapshot"
	}
	return "release"
}
