package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/mrnavastar/magma/services"
	"github.com/mrnavastar/magma/util/fileutils"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func (l *launcher) launchAction(c *cli.Context) error {
	dotMinecraft, err := fileutils.DotMinecraft()
	if err != nil {
		return err
	}

	username := c.String("username")
	if username == "" {
		username = l.settings.Username
	}
	args, err := services.BuildLaunchArgs(services.LaunchOptions{
		GameDir:   dotMinecraft,
		Version:   l.settings.LastVersion,
		Modloader: l.settings.LastModloader,
		Username:  username,
		UserID:    l.settings.UserID,
		MemoryMax: l.settings.MemoryMax,
	})
	if err != nil {
		return fmt.Errorf("%w (run \"magma select\" to pick again)", err)
	}

	progress := startStatus("Looking for Java...")
	install, err := services.FindJava(c.Context, l.fs, l.settings.JavaPath, services.ExecRunner{})
	if err != nil {
		progress.fail(err.Error())
		return err
	}
	if l.settings.JavaPath == "" {
		l.settings.JavaPath = install.Path
		if err := l.save(); err != nil {
			pterm.Warning.Println("Failed to remember java path:", err)
		}
	}
	if err := services.CheckJava(install, l.settings.LastVersion); err != nil {
		pterm.Warning.Println(err)
	}

	if c.Bool("dry-run") {
		progress.success("Ready")
		fmt.Println(install.Path + " " + strings.Join(args, " "))
		return nil
	}

	progress.update("Launching Minecraft...")
	if _, err := fileutils.FolderPath(l.fs, dotMinecraft, "game"); err != nil {
		progress.fail(err.Error())
		return err
	}
	pid, err := services.Launch(install.Path, args, dotMinecraft)
	if err != nil {
		progress.fail(err.Error())
		return err
	}
	progress.success(fmt.Sprintf("Minecraft %s (%s) started, pid %d", l.settings.LastVersion, l.settings.LastModloader, pid))
	return nil
}

// status shows launch progress on a spinner, or as plain lines when the
// spinner can't start.
type status struct {
	spinner *pterm.SpinnerPrinter
}

func startStatus(text string) *status {
	spinner, err := pterm.DefaultSpinner.Start(text)
	if err != nil {
		log.Debug().Err(err).Msg("spinner unavailable")
		pterm.Info.Println(text)
		return &status{}
	}
	return &status{spinner: spinner}
}

func (s *status) update(text string) {
	if s.spinner == nil {
		pterm.Info.Println(text)
		return
	}
	s.spinner.UpdateText(text)
}

func (s *status) success(text string) {
	if s.spinner == nil {
		pterm.Success.Println(text)
		return
	}
	s.spinner.Success(text)
}

func (s *status) fail(text string) {
	if s.spinner == nil {
		pterm.Error.Println(text)
		return
	}
	s.spinner.Fail(text)
}

func openPath(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
