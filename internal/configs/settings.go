package configs

import (
	"log"
	"os"
	"path/filepath"
)

type UserSettings struct {
	UserConfigsPath string
	// EnvFile is the dotenv file consulted for overrides, relative to the
	// working directory unless absolute.
	EnvFile string
}

var UserNaclboxSettings *UserSettings

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	UserNaclboxSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "naclbox"),
		EnvFile:         ".env",
	}
}

// ConfigPath returns the location of the user's config.toml.
func ConfigPath() string {
	return filepath.Join(UserNaclboxSettings.UserConfigsPath, "config.toml")
}
