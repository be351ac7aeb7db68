package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMissing  = errors.New("config file is missing version field")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
	ErrTokenMissing          = errors.New("discord token is not configured")
)

// CurrentVersion is the expected config file version.
const CurrentVersion = 1

// Config represents the entire application configuration.
type Config struct {
	// Version of the config file.
	Version int          `koanf:"version"`
	Bot     BotConfig    `koanf:"bot"`
	Data    DataConfig   `koanf:"data"`
	Web     WebConfig    `koanf:"web"`
	Worker  WorkerConfig `koanf:"worker"`
	Debug   Debug        `koanf:"debug"`
}

// BotConfig contains Discord bot configuration.
type BotConfig struct {
	// Discord bot token for authentication. The DISCORD_TOKEN environment
	// variable takes precedence when set.
	Token string `koanf:"token"`
	// Guild the presence checks operate on. The GUILD_ID environment
	// variable takes precedence when set.
	GuildID string `koanf:"guild_id"`
	// Request timeout in milliseconds.
	RequestTimeout int `koanf:"request_timeout"`
}

// DataConfig contains state snapshot configuration.
type DataConfig struct {
	// Directory holding the JSON state snapshots.
	Dir string `koanf:"dir"`
}

// WebConfig contains the status HTTP server configuration.
type WebConfig struct {
	// Enable the status server.
	Enabled bool `koanf:"enabled"`
	// Listen port for the status server.
	Port int `koanf:"port"`
}

// WorkerConfig contains background worker configuration.
type WorkerConfig struct {
	// Presence sweep interval in milliseconds.
	PresenceSweepInterval int `koanf:"presence_sweep_interval"`
	// Giveaway schedule check interval in milliseconds.
	GiveawayCheckInterval int `koanf:"giveaway_check_interval"`
}

// Debug contains debug-related configuration.
type Debug struct {
	// Log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
	// Maximum log sessions to keep.
	MaxLogsToKeep int `koanf:"max_logs_to_keep"`
	// Maximum lines per log file.
	MaxLogLines int `koanf:"max_log_lines"`
}

// LoadConfig loads the configuration from config.toml. When configDir is
// non-empty it is searched before the standard config paths. A .env file
// alongside the process is honored, and the DISCORD_TOKEN environment
// variable overrides the configured token.
// Returns the config along with the used config directory.
func LoadConfig(configDir string) (*Config, string, error) {
	// Missing .env is fine, environment may be set by the supervisor
	_ = godotenv.Load()

	k := koanf.New(".")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configPaths := []string{
		".genvault",
		homeDir + "/.genvault/config",
		"/etc/genvault/config",
		"/app/config",
		"config",
		".",
	}
	if configDir != "" {
		configPaths = append([]string{configDir}, configPaths...)
	}

	var usedConfigPath string

	for _, path := range configPaths {
		configPath := fmt.Sprintf("%s/config.toml", path)
		if err := k.Load(file.Provider(configPath), toml.Parser()); err == nil {
			usedConfigPath = path
			break
		}
	}

	if usedConfigPath == "" {
		return nil, "", fmt.Errorf("%w: config.toml", ErrConfigFileNotFound)
	}

	config := defaultConfig()
	if err := k.Unmarshal("", &config); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling config: %w", err)
	}

	if token := os.Getenv("DISCORD_TOKEN"); token != "" {
		config.Bot.Token = token
	}

	if guildID := os.Getenv("GUILD_ID"); guildID != "" {
		config.Bot.GuildID = guildID
	}

	if err := checkConfigVersion(config.Version, CurrentVersion); err != nil {
		return nil, "", err
	}

	if config.Bot.Token == "" {
		return nil, "", ErrTokenMissing
	}

	return &config, usedConfigPath, nil
}

// defaultConfig returns the values used for fields the config file omits.
func defaultConfig() Config {
	return Config{
		Bot: BotConfig{
			RequestTimeout: 5000,
		},
		Data: DataConfig{
			Dir: "data",
		},
		Web: WebConfig{
			Enabled: true,
			Port:    3000,
		},
		Worker: WorkerConfig{
			PresenceSweepInterval: 30000,
			GiveawayCheckInterval: 3600000,
		},
		Debug: Debug{
			LogLevel:      "info",
			MaxLogsToKeep: 10,
			MaxLogLines:   5000,
		},
	}
}

// checkConfigVersion checks if the config file version is correct.
func checkConfigVersion(current, expected int) error {
	if current == 0 {
		return fmt.Errorf("%w: config.toml", ErrConfigVersionMissing)
	}

	if current != expected {
		return fmt.Errorf("%w: config.toml (got: %d, expected: %d)",
			ErrConfigVersionMismatch, current, expected)
	}

	return nil
}
