package services

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/mrnavastar/magma/util"
	"github.com/rs/zerolog/log"
)

type LaunchOptions struct {
	GameDir   string
	Version   string
	Modloader string
	Username  string
	UserID    string
	MemoryMax int
}

// BuildLaunchArgs assembles the JVM and game arguments. The version and
// modloader pair is checked again because settings may hold a stale pair.
func BuildLaunchArgs(opts LaunchOptions) ([]string, error) {
	if opts.Version == "" {
		return nil, fmt.Errorf("%w: no version chosen", ErrIncompleteSelection)
	}
	if opts.GameDir == "" {
		return nil, ErrGameDirNotSet
	}
	modloader := opts.Modloader
	if modloader == "" {
		modloader = string(Vanilla)
	}
	if err := ValidateSelection(opts.Version, modloader); err != nil {
		return nil, err
	}

	username := opts.Username
	if username == "" {
		username = util.DefaultUsername
	}
	memory := opts.MemoryMax
	if memory <= 0 {
		memory = util.DefaultSettings().MemoryMax
	}

	args := []string{
		"-Xmx" + strconv.Itoa(memory) + "M",
		"-jar",
		filepath.Join(opts.GameDir, "versions", opts.Version, opts.Version+".jar"),
		"--username", username,
		"--version", opts.Version,
		"--gameDir", opts.GameDir,
		"--assetsDir", filepath.Join(opts.GameDir, "assets"),
		"--assetIndex", opts.Version,
	}
	if opts.UserID != "" {
		args = append(args, "--uuid", opts.UserID)
	}
	return append(args, "--versionType", modloader), nil
}

// Launch starts the game and does not wait for it.
func Launch(javaPath string, args []string, dir string) (int, error) {
	cmd := exec.Command(javaPath, args...)
	cmd.Dir = dir
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start game: %w", err)
	}
	pid := cmd.Process.Pid
	log.Info().Int("pid", pid).Str("java", javaPath).Msg("game started")
	if err := cmd.Process.Release(); err != nil {
		log.Warn().Err(err).Msg("failed to release game process")
	}
	return pid, nil
}
