package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/craftline/craftline/connectors"
	"github.com/craftline/craftline/game/launcher"
	"github.com/craftline/craftline/game/manifest"
	"github.com/craftline/craftline/game/profile"
	"github.com/craftline/craftline/game/rules"
)

var (
	username    string
	demoUser    bool
	snapshot    bool
	gameDir     string
	assetsDir   string
	nativesDir  string
	classpath   string
	width       int
	height      int
	quickWorld  string
	quickServer string
	quickRealm  string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <manifest-uri>",
	Short: "Resolve a version manifest into the launch command line",
	Long: `Resolve loads a version manifest (file, http(s) or sftp URI), detects
its schema generation and prints the fully resolved JVM and game
argument lines without launching anything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := buildLauncher(args[0], false)
		if err != nil {
			return err
		}

		resolver := launcher.NewArgumentResolver(l, l.Context())
		line, err := resolver.Resolve()
		if err != nil {
			return err
		}

		color.Green("Version: %s (schema generation %d)", l.Manifest().ID(), l.Manifest().ManifestVersion())
		color.Green("Java major version: %d", l.Manifest().JavaMajorVersion())
		fmt.Println()
		fmt.Println("JVM arguments: " + line.JVMLine())
		fmt.Println("Main class:    " + line.MainClass)
		fmt.Println("Game arguments: " + line.GameLine())
		fmt.Println()
		fmt.Println(shellquote.Join(append([]string{l.JavaPath}, line.CommandArgs()...)...))
		return nil
	},
}

// buildLauncher loads the manifest from the URI and assembles a launcher
// from the shared flags. Used by both resolve and launch; resolve skips
// probing for a matching java install since nothing gets spawned.
func buildLauncher(uri string, probeJava bool) (*launcher.Launcher, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	connector, err := connectors.FindConnectorFromURI(uri)
	if err != nil {
		return nil, err
	}
	if err := connector.Connect(); err != nil {
		return nil, err
	}
	defer connector.Close()

	data, err := connector.Fetch()
	if err != nil {
		return nil, err
	}

	m, err := manifest.Parse(data)
	if err != nil {
		return nil, err
	}

	gameProfile := profile.NewOfflineProfile(username)
	gameProfile.IsDemoUser = demoUser
	gameProfile.SetMemory(cfg.Xmx, cfg.Xms)

	l := launcher.NewLauncher(cfg.LauncherName, cfg.LauncherVersion)
	l.GameDirectory = gameDir
	l.AssetsDirectory = assetsDir
	l.NativesDirectory = nativesDir
	l.Classpath = classpath
	l.IsSnapshot = snapshot
	l.SetProfile(gameProfile)

	if javaPath != "" {
		l.SetJavaPath(javaPath)
	} else if cfg.JavaPath != "" {
		l.SetJavaPath(cfg.JavaPath)
	} else if !probeJava {
		l.SetJavaPath("java")
	}

	if width > 0 && height > 0 {
		l.CustomResolution = &launcher.CustomResolution{Width: width, Height: height}
	}

	switch {
	case quickWorld != "":
		qp := rules.SingleplayerQuickplay(quickWorld)
		l.Quickplay = &qp
	case quickServer != "":
		qp := rules.MultiplayerQuickplay(quickServer)
		l.Quickplay = &qp
	case quickRealm != "":
		qp := rules.RealmsQuickplay(quickRealm)
		l.Quickplay = &qp
	}

	if err := l.SetManifest(m); err != nil {
		return nil, err
	}
	return l, nil
}

func addLaunchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&username, "username", "u", "steve", "The player name")
	cmd.Flags().BoolVar(&demoUser, "demo", false, "Launch in demo mode")
	cmd.Flags().BoolVar(&snapshot, "snapshot", false, "The version is a snapshot")
	cmd.Flags().StringVar(&gameDir, "game-dir", ".", "The game directory")
	cmd.Flags().StringVar(&assetsDir, "assets-dir", "assets", "The assets directory (download collaborator output)")
	cmd.Flags().StringVar(&nativesDir, "natives-dir", "", "The natives directory (defaults to <game-dir>/natives)")
	cmd.Flags().StringVar(&classpath, "classpath", "", "Precomputed classpath (overrides --libraries-dir)")
	cmd.Flags().IntVar(&width, "width", 0, "Custom resolution width")
	cmd.Flags().IntVar(&height, "height", 0, "Custom resolution height")
	cmd.Flags().StringVar(&quickWorld, "quickplay-world", "", "Auto-join the named singleplayer world")
	cmd.Flags().StringVar(&quickServer, "quickplay-server", "", "Auto-join the given server address")
	cmd.Flags().StringVar(&quickRealm, "quickplay-realm", "", "Auto-join the given realm ID")
	cmd.Flags().StringVarP(&javaPath, "java", "j", "", "The path to the java executable")
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	addLaunchFlags(resolveCmd)
}
