package fileutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/mrnavastar/magma/util"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/zalando/go-keyring"
)

const (
	AppName        = "magma-launcher"
	SettingsFile   = "settings.toml"
	SettingsEnv    = "MAGMA_SETTINGS"
	keyringService = "magma"
	keyringUser    = "dot_minecraft"
)

// Setup remembers the .minecraft directory and makes sure it exists.
func Setup(fs afero.Fs, dotMinecraft string) error {
	if dotMinecraft == "" {
		dotMinecraft = DefaultDotMinecraft()
	}
	abs, err := filepath.Abs(dotMinecraft)
	if err != nil {
		return err
	}
	if err := fs.MkdirAll(abs, 0o750); err != nil {
		return fmt.Errorf("failed to create game directory: %w", err)
	}
	if err := keyring.Set(keyringService, keyringUser, abs); err != nil {
		return fmt.Errorf("failed to store game directory: %w", err)
	}
	log.Info().Str("path", abs).Msg("game directory set")
	return nil
}

// DotMinecraft returns the directory stored by Setup, or the platform
// default if Setup was never run.
func DotMinecraft() (string, error) {
	dir, err := keyring.Get(keyringService, keyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return DefaultDotMinecraft(), nil
	} else if err != nil {
		return "", fmt.Errorf("failed to read game directory: %w", err)
	}
	return dir, nil
}

func DefaultDotMinecraft() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, ".minecraft")
		}
		return filepath.Join(home, "AppData", "Roaming", ".minecraft")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "minecraft")
	default:
		return filepath.Join(home, ".minecraft")
	}
}

func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

func DefaultSettingsPath() string {
	return filepath.Join(ConfigDir(), SettingsFile)
}

type Store struct {
	fs       afero.Fs
	path     string
	validate *validator.Validate
}

func NewStore(fs afero.Fs, path string) *Store {
	return &Store{
		fs:       fs,
		path:     path,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *Store) Path() string { return s.path }

// Load reads the settings file over the defaults. A missing file gives the
// defaults. A broken file gives the defaults and the parse error. A new user
// id is saved straight away so every run launches with the same one.
func (s *Store) Load() (util.Settings, error) {
	settings := util.DefaultSettings()

	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug().Str("path", s.path).Msg("no settings file, using defaults")
		s.assignUserID(&settings)
		return settings, nil
	} else if err != nil {
		return defaultsWithID(), fmt.Errorf("failed to read settings: %w", err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("error loading settings")
		return defaultsWithID(), fmt.Errorf("failed to parse settings: %w", err)
	}
	if settings.UserID == "" {
		s.assignUserID(&settings)
	}
	return settings, nil
}

func (s *Store) assignUserID(settings *util.Settings) {
	settings.RegenerateUserID()
	if err := s.Save(*settings); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("failed to save new user id")
	}
}

func defaultsWithID() util.Settings {
	settings := util.DefaultSettings()
	settings.RegenerateUserID()
	return settings
}

func (s *Store) Save(settings util.Settings) error {
	if err := s.validate.Struct(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	log.Debug().Str("path", s.path).Msg("settings saved")
	return nil
}

// Reset saves and returns the defaults.
func (s *Store) Reset() (util.Settings, error) {
	settings := defaultsWithID()
	return settings, s.Save(settings)
}

var ErrUnknownSetting = errors.New("unknown setting")

// SetValue sets one setting by its file key, converting value to the type
// the key already has.
func SetValue(settings *util.Settings, key string, value string) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}
	values := map[string]any{}
	if err := toml.Unmarshal(data, &values); err != nil {
		return err
	}

	current, ok := values[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSetting, key)
	}
	switch current.(type) {
	case int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%s must be a number: %w", key, err)
		}
		values[key] = n
	case bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false: %w", key, err)
		}
		values[key] = b
	default:
		values[key] = value
	}

	if data, err = toml.Marshal(values); err != nil {
		return err
	}
	updated := util.Settings{}
	if err := toml.Unmarshal(data, &updated); err != nil {
		return err
	}
	*settings = updated
	return nil
}
