// Package launcher resolves a parsed version manifest into the final
// command line and runs the game process.
package launcher

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"

	"github.com/craftline/craftline/game/manifest"
	"github.com/craftline/craftline/game/profile"
	"github.com/craftline/craftline/game/rules"
)

type CustomResolution struct {
	Width  int
	Height int
}

// Launcher gathers everything a launch attempt needs: the parsed
// manifest, the identity record, the directory layout supplied by the
// download collaborator, and the launch options. Directories and the
// classpath are inputs here; assembling them is not this package's job.
type Launcher struct {
	profile  *profile.GameProfile
	manifest manifest.Versioned

	GameDirectory      string
	AssetsDirectory    string
	LibrariesDirectory string
	NativesDirectory   string

	// Classpath is precomputed by the library-download collaborator.
	Classpath string

	VersionName      string
	IsSnapshot       bool
	JavaPath         string
	LauncherName     string
	LauncherVersion  string
	CustomResolution *CustomResolution
	Quickplay        *rules.Quickplay
	ExtraJavaArgs    []string
}

func NewLauncher(launcherName, launcherVersion string) *Launcher {
	return &Launcher{
		LauncherName:    launcherName,
		LauncherVersion: launcherVersion,
	}
}

func (l *Launcher) SetProfile(p *profile.GameProfile) {
	l.profile = p
}

// SetManifest attaches the parsed manifest and, when no java path was set
// explicitly, locates a java executable matching the manifest's major
// version.
func (l *Launcher) SetManifest(m manifest.Versioned) error {
	l.manifest = m

	if l.VersionName == "" {
		l.VersionName = m.ID()
	}
	if l.NativesDirectory == "" && l.GameDirectory != "" {
		l.NativesDirectory = filepath.Join(l.GameDirectory, "natives")
	}

	if l.JavaPath == "" {
		javaPath, err := FindJavaExecutable(m.JavaMajorVersion())
		if err != nil {
			return errors.Wrapf(err, "locating java %d for version %s", m.JavaMajorVersion(), m.ID())
		}
		l.JavaPath = javaPath
	}
	return nil
}

func (l *Launcher) SetJavaPath(javaPath string) {
	l.JavaPath = javaPath
}

func (l *Launcher) AddJavaArgs(javaArgs ...string) {
	l.ExtraJavaArgs = append(l.ExtraJavaArgs, javaArgs...)
}

func (l *Launcher) Manifest() manifest.Versioned {
	return l.manifest
}

func (l *Launcher) Profile() *profile.GameProfile {
	return l.profile
}

// Context snapshots the launch facts for rule evaluation.
func (l *Launcher) Context() rules.Context {
	ctx := rules.HostContext()
	if l.profile != nil {
		ctx.IsDemoUser = l.profile.IsDemoUser
	}
	ctx.Quickplay = l.Quickplay
	ctx.HasCustomResolution = l.CustomResolution != nil
	return ctx
}

type RunOptions struct {
	LogOutput     func(string)
	Detach        bool
	OnProcessExit func()
}

// Run resolves the command line and spawns the game process.
func (l *Launcher) Run(options ...RunOptions) error {
	var runOptions RunOptions
	if len(options) > 0 {
		runOptions = options[0]
	}

	log := func(msg string) {
		if runOptions.LogOutput != nil {
			runOptions.LogOutput(msg)
		}
	}

	if l.manifest == nil {
		return errors.New("no manifest attached to launcher")
	}
	if l.profile == nil {
		return errors.New("no profile attached to launcher")
	}
	if l.JavaPath == "" {
		return errors.New("java executable not set; call SetManifest or SetJavaPath first")
	}

	resolver := NewArgumentResolver(l, l.Context())
	line, err := resolver.Resolve()
	if err != nil {
		return err
	}

	args := make([]string, 0, len(line.JVMArgs)+len(line.GameArgs)+8)
	args = append(args, l.profile.Memory.ToArgs()...)
	args = append(args, l.ExtraJavaArgs...)
	args = append(args, line.JVMArgs...)
	if !containsPrefix(args, "-Djava.library.path=") {
		args = append(args, "-Djava.library.path="+l.NativesDirectory)
	}
	args = append(args, line.MainClass)
	args = append(args, line.GameArgs...)

	log("Version: " + l.manifest.ID())
	log("Game directory: " + l.GameDirectory)
	log("Command: " + shellquote.Join(append([]string{l.JavaPath}, args...)...))

	cmd := exec.Command(l.JavaPath, args...)
	cmd.Dir = l.GameDirectory

	if runOptions.Detach {
		return l.runDetached(cmd, log, runOptions)
	}
	return l.runAttached(cmd, log)
}

func (l *Launcher) runAttached(cmd *exec.Cmd, log func(string)) error {
	cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		if ee, ok := err.(*exec.ExitError); ok && ee.ProcessState != nil {
			log(errors.Wrapf(err, "game exited with code %d", ee.ExitCode()).Error())
		}
		return errors.Wrap(err, "running game process")
	}
	log("Game process completed")
	return nil
}

func (l *Launcher) runDetached(cmd *exec.Cmd, log func(string), runOptions RunOptions) error {
	setupProcessAttributes(cmd)

	cmd.Stdout = &logWriter{logFunc: log, prefix: "[GAME] "}
	cmd.Stderr = &logWriter{logFunc: log, prefix: "[GAME:ERR] "}

	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "starting game process")
	}
	log("Game process started")

	go func() {
		err := cmd.Wait()
		if err != nil {
			if ee, ok := err.(*exec.ExitError); ok && ee.ProcessState != nil {
				log(errors.Wrapf(err, "game exited with code %d", ee.ExitCode()).Error())
			} else {
				log("game process error: " + err.Error())
			}
		} else {
			log("Game process completed")
		}
		if runOptions.OnProcessExit != nil {
			runOptions.OnProcessExit()
		}
	}()

	return nil
}

func containsPrefix(args []string, prefix string) bool {
	for _, a := range args {
		if strings.HasPrefix(a, prefix) {
			return true
		}
	}
	return false
}

// logWriter feeds process output through the log callback line by line.
type logWriter struct {
	logFunc func(string)
	prefix  string
}

func (lw *logWriter) Write(p []byte) (n int, err error) {
	if lw.logFunc != nil {
		for _, line := range strings.Split(string(p), "\n") {
			if strings.TrimSpace(line) != "" {
				lw.logFunc(lw.prefix + line)
			}
		}
	}
	return len(p), nil
}
