package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
	"github.com/mrnavastar/magma/services"
	"github.com/mrnavastar/magma/util"
)

func printVersions(w io.Writer, versions []string) {
	if len(versions) == 0 {
		fmt.Fprintln(w, "No versions found")
		return
	}
	lversion := len("VERSION:")
	for _, v := range versions {
		if len(v) > lversion {
			lversion = len(v)
		}
	}
	fmt.Fprintln(w, text.AlignDefault.Apply("VERSION:", lversion+2)+"TYPE:")
	for _, v := range versions {
		fmt.Fprintln(w, text.AlignDefault.Apply(v, lversion+2)+string(services.ClassifyVersion(v)))
	}
}

// printLoaderTable lists every loader, greying out the ones that can't be
// used so the minimum version is visible.
func printLoaderTable(w io.Writer, options []services.LoaderOption) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "NAME", "DESCRIPTION", "STATUS"})
	for _, o := range options {
		status := text.FgGreen.Sprint("available")
		row := table.Row{string(o.ID), o.Name, o.Description, status}
		if !o.Available {
			row = table.Row{
				text.FgHiBlack.Sprint(o.ID),
				text.FgHiBlack.Sprint(o.Name),
				text.FgHiBlack.Sprint(o.Description),
				text.FgYellow.Sprint(o.Hint()),
			}
		}
		t.AppendRow(row)
	}
	t.Render()
}

func printSettings(w io.Writer, path string, s util.Settings) {
	fmt.Fprintln(w, text.Bold.Sprint(path))
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendRows([]table.Row{
		{"username", s.Username},
		{"user_id", s.UserID},
		{"java_path", s.JavaPath},
		{"memory_max", strconv.Itoa(s.MemoryMax) + " MB"},
		{"last_version", s.LastVersion},
		{"last_modloader", s.LastModloader},
		{"console_enabled", s.ConsoleEnabled},
		{"background_animation", s.BackgroundAnimation},
		{"current_style", s.CurrentStyle},
	})
	t.Render()
}

func printNews(w io.Writer, blocks []services.NewsBlock) {
	if len(blocks) == 0 {
		fmt.Fprintln(w, "No news")
		return
	}
	n := 0
	for _, b := range blocks {
		if b.Kind != services.NewsNumbered {
			n = 0
		}
		switch b.Kind {
		case services.NewsHeading1:
			fmt.Fprintln(w, text.Colors{text.Bold, text.Underline}.Sprint(b.Text))
		case services.NewsHeading2:
			fmt.Fprintln(w, text.Bold.Sprint(b.Text))
		case services.NewsHeading3:
			fmt.Fprintln(w, text.Italic.Sprint(b.Text))
		case services.NewsBullet:
			fmt.Fprintln(w, "  • "+b.Text)
		case services.NewsNumbered:
			n++
			fmt.Fprintf(w, "  %d. %s\n", n, b.Text)
		case services.NewsBreak:
			fmt.Fprintln(w)
		default:
			fmt.Fprintln(w, b.Text)
		}
	}
}
