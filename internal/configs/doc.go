// Package configs manages user configuration for naclbox.
//
// Configuration is stored in TOML format at:
//
//	<UserConfigDir>/naclbox/config.toml
//
// with the following layout:
//
//	[output]
//	hex = false          # secretbox prints hex by default
//
//	[keys]
//	key_file = ""        # hex key file used when no key flag is given
//
//	[files]
//	extension = ".box"   # suffix for seal-files output
//
// # Overrides
//
// A .env file in the working directory and the process environment can
// override individual values:
//
//	NACLBOX_KEY_FILE=/path/to/key.hex
//	NACLBOX_HEX=true
//
// Process environment takes precedence over the .env file, which takes
// precedence over config.toml. A missing config file or .env file is not
// an error.
//
// # Settings
//
// UserNaclboxSettings holds the paths used to locate configuration and is
// initialized at startup. Tests point it at temporary directories.
package configs
