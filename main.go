package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/text"
	"github.com/mrnavastar/magma/api"
	"github.com/mrnavastar/magma/services"
	"github.com/mrnavastar/magma/util"
	"github.com/mrnavastar/magma/util/fileutils"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

type launcher struct {
	fs       afero.Fs
	store    *fileutils.Store
	settings util.Settings
	logs     io.Closer
}

func (l *launcher) before(c *cli.Context) error {
	l.store = fileutils.NewStore(l.fs, c.String("settings"))
	settings, err := l.store.Load()
	if err != nil {
		pterm.Warning.Println("Error loading settings, using defaults:", err)
	}
	l.settings = settings

	logs, err := util.InitLogging(filepath.Join(filepath.Dir(l.store.Path()), "logs"), c.Bool("debug") || settings.ConsoleEnabled)
	if err != nil {
		return err
	}
	l.logs = logs
	log.Debug().Str("settings", l.store.Path()).Msg("starting")
	return nil
}

func (l *launcher) after(*cli.Context) error {
	if l.logs != nil {
		return l.logs.Close()
	}
	return nil
}

func (l *launcher) save() error {
	return l.store.Save(l.settings)
}

// resetSettings restores the defaults and drops the profile written by select.
func (l *launcher) resetSettings(dotMinecraft string) error {
	settings, err := l.store.Reset()
	if err != nil {
		return err
	}
	l.settings = settings
	if err := fileutils.RemoveProfile(l.fs, dotMinecraft, services.ProfileName); err != nil {
		return fmt.Errorf("failed to remove %s profile: %w", services.ProfileName, err)
	}
	log.Info().Str("profile", services.ProfileName).Msg("settings reset")
	return nil
}

func main() {
	l := &launcher{fs: afero.NewOsFs()}

	app := &cli.App{
		Name:  "magma",
		Usage: "Pick a Minecraft version and modloader, then play",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "settings",
				Usage:   "settings file",
				EnvVars: []string{fileutils.SettingsEnv},
				Value:   fileutils.DefaultSettingsPath(),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log to the console",
			},
		},
		Before: l.before,
		After:  l.after,
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "Set the .minecraft directory",
				ArgsUsage: "[dir]",
				Action: func(c *cli.Context) error {
					if err := fileutils.Setup(l.fs, c.Args().Get(0)); err != nil {
						return err
					}
					dir, err := fileutils.DotMinecraft()
					if err != nil {
						return err
					}
					pterm.Success.Println("Using " + dir)
					return nil
				},
			},
			{
				Name:    "versions",
				Aliases: []string{"ls"},
				Usage:   "List game versions",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "only versions containing this text"},
					&cli.BoolFlag{Name: "installed", Usage: "list versions installed in the game directory"},
				},
				Action: func(c *cli.Context) error {
					versions, err := l.versions(c.Bool("installed"))
					if err != nil {
						return err
					}
					printVersions(os.Stdout, services.FilterVersions(versions, c.String("search")))
					return nil
				},
			},
			{
				Name:      "loaders",
				Usage:     "Show which modloaders work with a version",
				ArgsUsage: "<version>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.ShowSubcommandHelp(c)
					}
					printLoaderTable(os.Stdout, services.LoaderOptions(c.Args().First()))
					return nil
				},
			},
			{
				Name:  "select",
				Usage: "Choose the version and modloader to play",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "version", Aliases: []string{"v"}},
					&cli.StringFlag{Name: "modloader", Aliases: []string{"m"}},
					&cli.BoolFlag{Name: "installed", Usage: "pick from installed versions"},
				},
				Action: l.selectAction,
			},
			{
				Name:  "settings",
				Usage: "Show or change settings",
				Subcommands: []*cli.Command{
					{
						Name:  "show",
						Usage: "Print the current settings",
						Action: func(c *cli.Context) error {
							printSettings(os.Stdout, l.store.Path(), l.settings)
							if err := services.ValidateSelection(l.settings.LastVersion, l.settings.LastModloader); err != nil {
								pterm.Warning.Println(err)
							}
							return nil
						},
					},
					{
						Name:      "set",
						Usage:     "Change one setting",
						ArgsUsage: "<key> <value>",
						Action: func(c *cli.Context) error {
							if c.NArg() != 2 {
								return cli.ShowSubcommandHelp(c)
							}
							key := c.Args().Get(0)
							if util.ContainsFold([]string{"last_version", "last_modloader"}, key) {
								return fmt.Errorf("use \"magma select\" to change %s", key)
							}
							if err := fileutils.SetValue(&l.settings, key, c.Args().Get(1)); err != nil {
								return err
							}
							if err := l.save(); err != nil {
								return err
							}
							pterm.Success.Println("Saved " + key)
							return nil
						},
					},
					{
						Name:  "reset",
						Usage: "Restore the defaults and remove the launcher profile",
						Action: func(c *cli.Context) error {
							dotMinecraft, err := fileutils.DotMinecraft()
							if err != nil {
								return err
							}
							if err := l.resetSettings(dotMinecraft); err != nil {
								return err
							}
							pterm.Success.Println("Settings reset")
							return nil
						},
					},
					{
						Name:  "regen-id",
						Usage: "Generate a new offline user id",
						Action: func(c *cli.Context) error {
							l.settings.RegenerateUserID()
							if err := l.save(); err != nil {
								return err
							}
							pterm.Success.Println("New user id " + l.settings.UserID)
							return nil
						},
					},
				},
			},
			{
				Name:  "news",
				Usage: "Show launcher news",
				Action: func(c *cli.Context) error {
					news, err := api.LoadNews(c.Context)
					if err != nil {
						log.Warn().Err(err).Msg("using fallback news")
						news = api.FallbackNews(err)
					}
					printNews(os.Stdout, services.ParseNews(news))
					return nil
				},
			},
			{
				Name:  "ram",
				Usage: "Show memory available to the game",
				Action: func(c *cli.Context) error {
					info, err := services.SystemRAM()
					if err != nil {
						return err
					}
					fmt.Printf("Total: %d MB\nFree: %d MB\nRecommended max: %d MB\nAllowed: %d-%d MB\n",
						info.Total, info.Free, info.RecommendedMax, info.Min, info.Max)
					return nil
				},
			},
			{
				Name:      "head",
				Usage:     "Look up a player's skin",
				ArgsUsage: "[username]",
				Action: func(c *cli.Context) error {
					username := c.Args().First()
					if username == "" {
						username = l.settings.Username
					}
					url, err := api.PlayerHeadTexture(c.Context, username)
					if err != nil {
						log.Debug().Err(err).Str("username", username).Msg("no skin")
						pterm.Info.Println("Using default player head")
						return nil
					}
					fmt.Println(url)
					return nil
				},
			},
			{
				Name:  "java",
				Usage: "Find the Java runtime used to play",
				Action: func(c *cli.Context) error {
					install, err := services.FindJava(c.Context, l.fs, l.settings.JavaPath, services.ExecRunner{})
					if err != nil {
						return err
					}
					fmt.Println(text.AlignDefault.Apply("PATH:", 10) + install.Path)
					fmt.Println(text.AlignDefault.Apply("VERSION:", 10) + install.Version)
					if err := services.CheckJava(install, l.settings.LastVersion); err != nil {
						pterm.Warning.Println(err)
					}
					return nil
				},
			},
			{
				Name:  "launch",
				Usage: "Start the game with the selected version and modloader",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}},
					&cli.BoolFlag{Name: "dry-run", Usage: "print the command instead of running it"},
				},
				Action: l.launchAction,
			},
			{
				Name:      "open",
				Usage:     "Open a game folder",
				ArgsUsage: "<game|mods|texturepacks>",
				Action: func(c *cli.Context) error {
					dotMinecraft, err := fileutils.DotMinecraft()
					if err != nil {
						return err
					}
					path, err := fileutils.FolderPath(l.fs, dotMinecraft, c.Args().First())
					if err != nil {
						return err
					}
					fmt.Println(path)
					return openPath(path)
				},
			},
		},
	}

	err := app.Run(os.Args)
	util.Fatal(err)
}
