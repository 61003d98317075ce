package services

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/mod/semver"
)

// Runner runs a command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

type JavaInstall struct {
	Path    string
	Version string
	Major   int
}

func javaCandidates() []string {
	exe := ""
	if runtime.GOOS == "windows" {
		exe = ".exe"
	}
	candidates := []string{"java", "javaw"}
	if home := os.Getenv("JAVA_HOME"); home != "" {
		candidates = append(candidates,
			filepath.Join(home, "bin", "java"+exe),
			filepath.Join(home, "bin", "javaw"+exe),
		)
	}
	if runtime.GOOS == "windows" {
		candidates = append(candidates,
			"C:/Program Files/Java/jre8/bin/javaw.exe",
			"C:/Program Files/Java/jre17/bin/javaw.exe",
		)
	}
	return candidates
}

// FindJava returns the configured runtime if the file exists, otherwise the
// first well known candidate that answers -version.
func FindJava(ctx context.Context, fs afero.Fs, configured string, runner Runner) (JavaInstall, error) {
	if configured != "" {
		if ok, _ := afero.Exists(fs, configured); ok {
			install := JavaInstall{Path: configured}
			if out, err := runner.Run(ctx, configured, "-version"); err == nil {
				install.Version = JavaVersion(string(out))
				install.Major = JavaMajor(install.Version)
			}
			return install, nil
		}
		log.Warn().Str("path", configured).Msg("configured java not found, searching")
	}

	for _, candidate := range javaCandidates() {
		out, err := runner.Run(ctx, candidate, "-version")
		if err != nil {
			log.Debug().Err(err).Str("candidate", candidate).Msg("java candidate failed")
			continue
		}
		version := JavaVersion(string(out))
		log.Info().Str("path", candidate).Str("version", version).Msg("found java")
		return JavaInstall{Path: candidate, Version: version, Major: JavaMajor(version)}, nil
	}
	return JavaInstall{}, ErrJavaNotFound
}

var javaVersionRe = regexp.MustCompile(`version "([^"]+)"`)

// JavaVersion pulls the quoted version out of java -version output.
func JavaVersion(output string) string {
	m := javaVersionRe.FindStringSubmatch(output)
	if m == nil {
		return ""
	}
	return m[1]
}

// JavaMajor maps a runtime version to its feature release: "1.8.0_391" is 8,
// "17.0.9" is 17. Unknown formats give 0.
func JavaMajor(version string) int {
	if i := strings.IndexAny(version, "_-+"); i >= 0 {
		version = version[:i]
	}
	v := "v" + version
	if !semver.IsValid(v) {
		return 0
	}
	major, err := strconv.Atoi(strings.TrimPrefix(semver.Major(v), "v"))
	if err != nil {
		return 0
	}
	if major == 1 {
		_, minor, _ := strings.Cut(semver.MajorMinor(v), ".")
		major, _ = strconv.Atoi(minor)
	}
	return major
}

var javaRequirements = []struct {
	since string
	major int
}{
	{"1.20.5", 21},
	{"1.18", 17},
	{"1.17", 16},
}

// RequiredJava is the minimum Java feature release for a game version.
func RequiredJava(gameVersion string) int {
	key := ParseVersion(gameVersion)
	for _, r := range javaRequirements {
		if key.AtLeast(ParseVersion(r.since)) {
			return r.major
		}
	}
	return 8
}

// CheckJava warns about a runtime older than the game needs.
func CheckJava(install JavaInstall, gameVersion string) error {
	required := RequiredJava(gameVersion)
	if install.Major != 0 && install.Major < required {
		return fmt.Errorf("java %d is too old for %s, need %d+", install.Major, gameVersion, required)
	}
	return nil
}
