package services

import (
	"slices"
	"strings"

	"github.com/mrnavastar/magma/util/fileutils"
	"github.com/spf13/afero"
)

var fallbackVersions = []string{
	"1.20.1", "1.19.2", "1.18.2", "1.17.1", "1.16.5",
	"1.15.2", "1.14.4", "1.13.2", "1.12.2",
}

type VersionProvider interface {
	Versions() ([]string, error)
}

type FallbackVersions struct{}

func (FallbackVersions) Versions() ([]string, error) {
	return slices.Clone(fallbackVersions), nil
}

// InstalledVersions lists release versions installed in a game directory,
// newest first. With nothing installed it returns the fallback list.
type InstalledVersions struct {
	Fs           afero.Fs
	DotMinecraft string
}

func (p InstalledVersions) Versions() ([]string, error) {
	versions, err := fileutils.InstalledVersions(p.Fs, p.DotMinecraft)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return FallbackVersions{}.Versions()
	}
	SortVersions(versions)
	return versions, nil
}

// SortVersions orders newest first. Equal keys keep their order.
func SortVersions(versions []string) {
	slices.SortStableFunc(versions, func(a, b string) int {
		return CompareVersions(b, a)
	})
}

func FilterVersions(versions []string, search string) []string {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return versions
	}
	var filtered []string
	for _, v := range versions {
		if strings.Contains(strings.ToLower(v), search) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
