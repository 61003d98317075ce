package fileutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/buger/jsonparser"
	"github.com/mrnavastar/magma/util"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const ProfilesFile = "launcher_profiles.json"

var ErrUnknownFolder = errors.New("unknown folder")

// SaveProfile adds or replaces a profile in launcher_profiles.json. Other
// profiles and unknown keys are left alone. An existing creation time is kept.
func SaveProfile(fs afero.Fs, dotMinecraft string, profile util.Profile) error {
	path := filepath.Join(dotMinecraft, ProfilesFile)
	profiles, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		profiles = []byte(`{"profiles":{}}`)
	} else if err != nil {
		return err
	}

	if created, err := jsonparser.GetString(profiles, "profiles", profile.Name, "created"); err == nil {
		profile.Created = created
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}

	newProfiles, err := jsonparser.Set(profiles, data, "profiles", profile.Name)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", ProfilesFile, err)
	}
	if err := fs.MkdirAll(dotMinecraft, 0o750); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, newProfiles, 0o644)
}

// RemoveProfile drops a profile from launcher_profiles.json. A missing file
// has nothing to remove.
func RemoveProfile(fs afero.Fs, dotMinecraft string, name string) error {
	path := filepath.Join(dotMinecraft, ProfilesFile)
	profiles, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	newProfiles := jsonparser.Delete(profiles, "profiles", name)
	return afero.WriteFile(fs, path, newProfiles, 0o644)
}

// InstalledVersions lists release versions found under versions/, in
// directory order. Directories without a readable <id>.json are skipped.
func InstalledVersions(fs afero.Fs, dotMinecraft string) ([]string, error) {
	versionsDir := filepath.Join(dotMinecraft, "versions")
	entries, err := afero.ReadDir(fs, versionsDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var versions []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id := entry.Name()
		data, err := afero.ReadFile(fs, filepath.Join(versionsDir, id, id+".json"))
		if err != nil {
			log.Debug().Err(err).Str("version", id).Msg("skipping version without manifest")
			continue
		}
		kind, err := jsonparser.GetString(data, "type")
		if err != nil || kind != "release" {
			continue
		}
		versions = append(versions, id)
	}
	return versions, nil
}

var folders = map[string]string{
	"game":         "",
	"mods":         "mods",
	"texturepacks": "resourcepacks",
}

// FolderPath resolves and creates one of the well known game folders.
func FolderPath(fs afero.Fs, dotMinecraft string, kind string) (string, error) {
	sub, ok := folders[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFolder, kind)
	}
	path := filepath.Join(dotMinecraft, sub)
	if err := fs.MkdirAll(path, 0o750); err != nil {
		return "", err
	}
	return path, nil
}
