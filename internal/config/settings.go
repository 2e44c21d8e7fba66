package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/podqueue/ytfeed/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Format preferences
	PreferredFmtID  int   `json:"preferred_fmt_id"`
	PreferredFmtIDs []int `json:"preferred_fmt_ids"`

	// YouTube Data API v3 key, used for username to channel-id lookups.
	APIKeyV3 string `json:"api_key_v3"`

	// Resolution settings
	MaxConcurrentResolves int `json:"max_concurrent_resolves"`

	// Playlist settings
	CreatePlaylist bool   `json:"create_playlist"`
	PlaylistFormat string `json:"playlist_format"` // m3u, pls
	M3UExtended    bool   `json:"m3u_extended"`
	PlaylistPath   string `json:"playlist_path"`

	// Cover art settings
	SaveCoverArt    bool   `json:"save_cover_art"`
	CoverArtPath    string `json:"cover_art_path"`
	CoverArtMaxSize int    `json:"cover_art_max_size"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		PreferredFmtID:        model.DefaultFormatID,
		MaxConcurrentResolves: 4,

		CreatePlaylist: false,
		PlaylistFormat: "m3u",
		M3UExtended:    true,
		PlaylistPath:   filepath.Join(homeDir, "Podcasts"),

		SaveCoverArt:    false,
		CoverArtPath:    filepath.Join(homeDir, "Podcasts"),
		CoverArtMaxSize: 1000,
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// FormatIDs returns the ordered preferred format chain for these settings.
//
// An explicit PreferredFmtIDs list wins. Otherwise the chain is looked up
// from the format table using PreferredFmtID; an unknown id yields nil.
func (s *Settings) FormatIDs() []int {
	if len(s.PreferredFmtIDs) > 0 {
		ids := make([]int, len(s.PreferredFmtIDs))
		copy(ids, s.PreferredFmtIDs)
		return ids
	}

	format, ok := model.FormatByID(s.PreferredFmtID)
	if !ok {
		return nil
	}

	ids := make([]int, len(format.Fallbacks))
	copy(ids, format.Fallbacks)
	return ids
}
