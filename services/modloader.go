package services

import (
	"fmt"
	"strings"
)

type LoaderID string

const (
	Vanilla  LoaderID = "vanilla"
	Fabric   LoaderID = "fabric"
	Forge    LoaderID = "forge"
	NeoForge LoaderID = "neoforge"
)

// LoaderDescriptor describes one modloader. A nil MinVersion means the loader
// works with every game version.
type LoaderDescriptor struct {
	ID          LoaderID
	Name        string
	Description string
	MinVersion  *VersionKey
}

func (d LoaderDescriptor) Supports(version VersionKey) bool {
	return d.MinVersion == nil || version.AtLeast(*d.MinVersion)
}

func minVersion(raw string) *VersionKey {
	key := ParseVersion(raw)
	return &key
}

// Declaration order is the presentation order.
var loaders = []LoaderDescriptor{
	{
		ID:          Vanilla,
		Name:        "Vanilla",
		Description: "Official release without mods",
	},
	{
		ID:          Fabric,
		Name:        "Fabric",
		Description: "Modern lightweight modloader",
		MinVersion:  minVersion("1.14"),
	},
	{
		ID:          Forge,
		Name:        "Forge",
		Description: "Classic modloader with the largest mod library",
		MinVersion:  minVersion("1.0"),
	},
	{
		ID:          NeoForge,
		Name:        "NeoForge",
		Description: "Forge fork with modern improvements",
		MinVersion:  minVersion("1.20.1"),
	},
}

// Loaders returns a copy of the descriptor table.
func Loaders() []LoaderDescriptor {
	out := make([]LoaderDescriptor, len(loaders))
	for i, d := range loaders {
		out[i] = d
		if d.MinVersion != nil {
			threshold := *d.MinVersion
			out[i].MinVersion = &threshold
		}
	}
	return out
}

func LookupLoader(id string) (LoaderDescriptor, error) {
	for _, d := range Loaders() {
		if string(d.ID) == strings.ToLower(strings.TrimSpace(id)) {
			return d, nil
		}
	}
	return LoaderDescriptor{}, fmt.Errorf("%w: %q", ErrUnknownModloader, id)
}

// AvailableLoaders lists the loaders usable with version in table order.
// Unparseable versions only get vanilla.
func AvailableLoaders(version string) []LoaderID {
	key := ParseVersion(version)
	var available []LoaderID
	for _, d := range loaders {
		if d.Supports(key) {
			available = append(available, d.ID)
		}
	}
	return available
}

type LoaderOption struct {
	LoaderDescriptor
	Available bool
}

// Hint explains why an option can't be picked.
func (o LoaderOption) Hint() string {
	if o.Available || o.MinVersion == nil {
		return ""
	}
	return "available from " + trimVersion(*o.MinVersion) + "+"
}

// LoaderOptions returns the full table with availability for version.
func LoaderOptions(version string) []LoaderOption {
	key := ParseVersion(version)
	descriptors := Loaders()
	options := make([]LoaderOption, len(descriptors))
	for i, d := range descriptors {
		options[i] = LoaderOption{LoaderDescriptor: d, Available: d.Supports(key)}
	}
	return options
}

// ValidateSelection checks a stored (version, modloader) pair.
func ValidateSelection(version string, modloader string) error {
	d, err := LookupLoader(modloader)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}
	if !d.Supports(ParseVersion(version)) {
		return fmt.Errorf("%w: %s requires %s+, got %q",
			ErrInvalidSelection, d.Name, trimVersion(*d.MinVersion), version)
	}
	return nil
}

func trimVersion(k VersionKey) string {
	if k.Patch() == 0 {
		return fmt.Sprintf("%d.%d", k.Major(), k.Minor())
	}
	return k.String()
}
