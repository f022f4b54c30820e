package launcher

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"

	"github.com/pkg/errors"
)

var javaVersionPattern = regexp.MustCompile(`version "(\d+)(?:\.(\d+))?`)

// FindJavaExecutable locates a java binary whose major version matches.
// JAVA_HOME wins over PATH. Pre-9 runtimes report "1.8.0_392" style
// versions; the second component carries the major there.
func FindJavaExecutable(major int) (string, error) {
	var candidates []string

	if home := os.Getenv("JAVA_HOME"); home != "" {
		candidates = append(candidates, filepath.Join(home, "bin", javaBinaryName()))
	}
	if fromPath, err := exec.LookPath(javaBinaryName()); err == nil {
		candidates = append(candidates, fromPath)
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if v, err := javaMajorVersion(candidate); err == nil && v == major {
			return candidate, nil
		}
	}

	return "", errors.Errorf("no java %d executable found in JAVA_HOME or PATH", major)
}

func javaBinaryName() string {
	if runtime.GOOS == "windows" {
		return "java.exe"
	}
	return "java"
}

func javaMajorVersion(javaPath string) (int, error) {
	// "java -version" writes to stderr
	out, err := exec.Command(javaPath, "-version").CombinedOutput()
	if err != nil {
		return 0, errors.Wrapf(err, "probing %s", javaPath)
	}

	match := javaVersionPattern.FindSubmatch(out)
	if match == nil {
		return 0, errors.Errorf("could not parse java version from %q", string(out))
	}

	major, err := strconv.Atoi(string(match[1]))
	if err != nil {
		return 0, err
	}
	if major == 1 && len(match[2]) > 0 {
		return strconv.Atoi(string(match[2]))
	}
	return major, nil
}
