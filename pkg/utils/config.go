package utils

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Snapshot SnapshotConfig
	Access   AccessConfig
	Event    EventConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SnapshotConfig struct {
	Path string
}

// AccessConfig holds the two reserved access codes. Every other code
// in the system belongs to a guest.
type AccessConfig struct {
	AdminCode string
	UsherCode string
}

// EventConfig seeds the settings record when no store has one yet.
// After bootstrap the stored settings win.
type EventConfig struct {
	Name          string
	Date          string
	Venue         string
	MaxSeats      int
	SeatsPerTable int
	ThemeID       string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SNAPSHOT_PATH", "data/snapshot")
	viper.SetDefault("ADMIN_CODE", "ADMIN")
	viper.SetDefault("USHER_CODE", "USHER")
	viper.SetDefault("MAX_SEATS", 100)
	viper.SetDefault("SEATS_PER_TABLE", 10)
	viper.SetDefault("THEME_ID", "classic")

	if err := viper.ReadInConfig(); err != nil {
		// Missing .env is fine; environment variables still apply.
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Snapshot: SnapshotConfig{
			Path: viper.GetString("SNAPSHOT_PATH"),
		},
		Access: AccessConfig{
			AdminCode: strings.ToUpper(viper.GetString("ADMIN_CODE")),
			UsherCode: strings.ToUpper(viper.GetString("USHER_CODE")),
		},
		Event: EventConfig{
			Name:          viper.GetString("EVENT_NAME"),
			Date:          viper.GetString("EVENT_DATE"),
			Venue:         viper.GetString("EVENT_VENUE"),
			MaxSeats:      viper.GetInt("MAX_SEATS"),
			SeatsPerTable: viper.GetInt("SEATS_PER_TABLE"),
			ThemeID:       viper.GetString("THEME_ID"),
		},
	}

	return config, nil
}

// placeholder fragments that mean "nobody filled this in".
var placeholderFragments = []string{"your-", "your_", "changeme", "example", "placeholder"}

// RemoteConfigured reports whether the database settings look like a
// real endpoint and credential. Decided once at startup; the process
// never switches modes afterwards.
func (c DatabaseConfig) RemoteConfigured() bool {
	for _, v := range []string{c.Host, c.Name, c.User} {
		if strings.TrimSpace(v) == "" {
			return false
		}
		lower := strings.ToLower(v)
		for _, frag := range placeholderFragments {
			if strings.Contains(lower, frag) {
				return false
			}
		}
	}
	return true
}
