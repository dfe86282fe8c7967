package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvKeyFile overrides Keys.KeyFile.
	EnvKeyFile = "NACLBOX_KEY_FILE"
	// EnvHex overrides Output.Hex.
	EnvHex = "NACLBOX_HEX"

	DefaultExtension = ".box"
)

type Config struct {
	Output Output `toml:"output"`
	Keys   Keys   `toml:"keys"`
	Files  Files  `toml:"files"`
}

type Output struct {
	// Hex makes secretbox print hex text instead of raw bytes by default.
	Hex bool `toml:"hex"`
}

type Keys struct {
	// KeyFile holds a hex-encoded key used when no key flag is given.
	KeyFile string `toml:"key_file"`
}

type Files struct {
	Extension string `toml:"extension"`
}

var GlobalConfig *Config

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Files: Files{Extension: DefaultExtension},
	}
}

// LoadConfig reads config.toml (if present) and applies dotenv and
// environment overrides on top.
func LoadConfig() (*Config, error) {
	config := DefaultConfig()

	configPath := ConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		if err := LoadTOML(configPath, config); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	if config.Files.Extension == "" {
		config.Files.Extension = DefaultExtension
	}
	if !strings.HasPrefix(config.Files.Extension, ".") {
		config.Files.Extension = "." + config.Files.Extension
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig writes config to config.toml.
func SaveConfig(config *Config) error {
	if err := SaveTOML(ConfigPath(), config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// InitConfig loads the effective configuration into GlobalConfig.
func InitConfig() error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	GlobalConfig = config
	return nil
}

// applyEnv overlays values from the dotenv file and the process
// environment. Process environment wins over the dotenv file.
func applyEnv(config *Config) error {
	values := map[string]string{}

	if envFile := UserNaclboxSettings.EnvFile; envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to read %s: %w", envFile, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}

	for _, key := range []string{EnvKeyFile, EnvHex} {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}

	if v, ok := values[EnvKeyFile]; ok {
		config.Keys.KeyFile = v
	}
	if v, ok := values[EnvHex]; ok {
		hex, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvHex, v, err)
		}
		config.Output.Hex = hex
	}

	return nil
}
