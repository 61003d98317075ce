package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mrnavastar/magma/services"
	"github.com/mrnavastar/magma/util/fileutils"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const (
	backOption   = "< back"
	cancelOption = "cancel"
)

var errCancelled = errors.New("selection cancelled")

// picker is one selection surface: it shows options and returns the one
// the user chose.
type picker interface {
	Pick(title string, options []string) (string, error)
}

type ptermPicker struct{}

func (ptermPicker) Pick(title string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithDefaultText(title).
		WithOptions(options).
		WithMaxHeight(10).
		Show()
}

// versionProvider picks where the version list comes from. dotMinecraft is
// only looked up for installed versions.
func (l *launcher) versionProvider(installed bool, dotMinecraft func() (string, error)) (services.VersionProvider, error) {
	if !installed {
		return services.FallbackVersions{}, nil
	}
	dir, err := dotMinecraft()
	if err != nil {
		return nil, err
	}
	return services.InstalledVersions{Fs: l.fs, DotMinecraft: dir}, nil
}

func (l *launcher) versions(installed bool) ([]string, error) {
	provider, err := l.versionProvider(installed, fileutils.DotMinecraft)
	if err != nil {
		return nil, err
	}
	return provider.Versions()
}

func (l *launcher) selectAction(c *cli.Context) error {
	flow := services.NewFlow()

	var sel services.Selection
	var err error
	if c.IsSet("version") {
		sel, err = selectFromFlags(flow, c.String("version"), c.String("modloader"))
	} else {
		var versions []string
		if versions, err = l.versions(c.Bool("installed")); err != nil {
			return err
		}
		sel, err = runSelection(flow, versions, ptermPicker{}, os.Stdout)
	}
	if errors.Is(err, errCancelled) {
		pterm.Info.Println("Selection cancelled")
		return nil
	} else if err != nil {
		return err
	}

	sel.Apply(&l.settings)
	if err := l.save(); err != nil {
		return err
	}
	l.updateProfile(sel)
	pterm.Success.Printf("Selected %s with %s\n", sel.Version, sel.Modloader)
	return nil
}

func (l *launcher) updateProfile(sel services.Selection) {
	dotMinecraft, err := fileutils.DotMinecraft()
	if err == nil {
		err = fileutils.SaveProfile(l.fs, dotMinecraft, sel.Profile(time.Now(), l.settings.MemoryMax))
	}
	if err != nil {
		log.Warn().Err(err).Msg("failed to update launcher profile")
	}
}

func selectFromFlags(flow services.Selector, version string, modloader string) (services.Selection, error) {
	if err := flow.SelectVersion(version); err != nil {
		return services.Selection{}, err
	}
	if modloader == "" {
		modloader = string(services.Vanilla)
	}
	if err := flow.SelectModloader(modloader); err != nil {
		flow.Cancel()
		return services.Selection{}, err
	}
	return flow.Confirm()
}

// runSelection drives the version surface and then the modloader surface.
// Going back from the modloader surface picks the version again.
func runSelection(flow services.Selector, versions []string, p picker, out io.Writer) (services.Selection, error) {
	if len(versions) == 0 {
		return services.Selection{}, errors.New("no versions to choose from")
	}
	for {
		version, err := p.Pick("Version", append(versions[:len(versions):len(versions)], cancelOption))
		if err != nil {
			flow.Cancel()
			return services.Selection{}, err
		}
		if version == cancelOption {
			flow.Cancel()
			return services.Selection{}, errCancelled
		}
		if err := flow.SelectVersion(version); err != nil {
			return services.Selection{}, err
		}

		snap := flow.Snapshot()
		fmt.Fprintln(out, "Version "+snap.Version)
		printLoaderTable(out, snap.Options)

		options := make([]string, 0, len(snap.Available)+2)
		for _, id := range snap.Available {
			options = append(options, string(id))
		}
		choice, err := p.Pick("Modloader", append(options, backOption, cancelOption))
		if err != nil {
			flow.Cancel()
			return services.Selection{}, err
		}
		switch choice {
		case backOption:
			continue
		case cancelOption:
			flow.Cancel()
			return services.Selection{}, errCancelled
		}
		if err := flow.SelectModloader(choice); err != nil {
			return services.Selection{}, err
		}
		return flow.Confirm()
	}
}
