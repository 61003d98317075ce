package util

import "github.com/google/uuid"

const DefaultUsername = "Player_MGL"

type Settings struct {
	Username            string `toml:"username" validate:"required,max=16"`
	UserID              string `toml:"user_id" validate:"omitempty,uuid"`
	JavaPath            string `toml:"java_path"`
	MemoryMax           int    `toml:"memory_max" validate:"min=512,max=32000"`
	LastVersion         string `toml:"last_version"`
	LastModloader       string `toml:"last_modloader" validate:"omitempty,oneof=vanilla fabric forge neoforge"`
	ConsoleEnabled      bool   `toml:"console_enabled"`
	BackgroundAnimation bool   `toml:"background_animation"`
	BlockColor          string `toml:"block_color"`
	LaunchButtonColor   string `toml:"launch_button_color"`
	TextColor           string `toml:"text_color"`
	AccentColor         string `toml:"accent_color"`
	SecondaryTextColor  string `toml:"secondary_text_color"`
	CurrentStyle        string `toml:"current_style"`
}

func DefaultSettings() Settings {
	return Settings{
		Username:            DefaultUsername,
		MemoryMax:           2048,
		LastVersion:         "1.20.1",
		LastModloader:       "vanilla",
		BackgroundAnimation: true,
		BlockColor:          "rgba(20, 20, 30, 0.9)",
		LaunchButtonColor:   "#0078D7",
		TextColor:           "white",
		AccentColor:         "#00ffff",
		SecondaryTextColor:  "#b5b4b3",
		CurrentStyle:        "default",
	}
}

// Profile is an entry of launcher_profiles.json.
type Profile struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Icon          string `json:"icon"`
	LastVersionId string `json:"lastVersionId"`
	Created       string `json:"created"`
	JavaArgs      string `json:"javaArgs,omitempty"`
	LastUsed      string `json:"lastUsed"`
}

type RamInfo struct {
	Total          uint64
	Free           uint64
	RecommendedMax uint64
	Min            uint64
	Max            uint64
}

func (s *Settings) RegenerateUserID() {
	s.UserID = uuid.NewString()
}
