package cmd

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/craftline/craftline/game/launcher"
)

var (
	javaPath     string
	librariesDir string
	jarPath      string
)

var launchCmd = &cobra.Command{
	Use:   "launch <manifest-uri>",
	Short: "Resolve a version manifest and launch the game",
	Long: `Launch loads a version manifest (file, http(s) or sftp URI), resolves
the command line against the host, and spawns the game process. The
libraries and assets directories must already be populated by a
downloader; launch only assembles the classpath from them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := buildLauncher(args[0], true)
		if err != nil {
			return err
		}

		if l.Classpath == "" {
			cp, err := buildClasspath(jarPath, librariesDir)
			if err != nil {
				return err
			}
			l.Classpath = cp
		}
		l.LibrariesDirectory = librariesDir

		options := launcher.RunOptions{}
		if debug {
			options.LogOutput = func(msg string) {
				fmt.Println(msg)
			}
		}
		return l.Run(options)
	},
}

// buildClasspath walks the libraries directory and joins every jar with
// the platform separator, game jar first. Used when no precomputed
// classpath was supplied.
func buildClasspath(jarPath, librariesDir string) (string, error) {
	separator := ":"
	if runtime.GOOS == "windows" {
		separator = ";"
	}

	entries := []string{}
	if jarPath != "" {
		entries = append(entries, jarPath)
	}

	if librariesDir != "" {
		err := filepath.WalkDir(librariesDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".jar") {
				entries = append(entries, path)
			}
			return nil
		})
		if err != nil {
			return "", err
		}
	}

	return strings.Join(entries, separator), nil
}

func init() {
	rootCmd.AddCommand(launchCmd)
	addLaunchFlags(launchCmd)
	launchCmd.Flags().StringVar(&librariesDir, "libraries-dir", "libraries", "The libraries directory (download collaborator output)")
	launchCmd.Flags().StringVar(&jarPath, "jar", "", "The game jar path, prepended to the classpath")
}
