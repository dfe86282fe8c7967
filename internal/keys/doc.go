// Package keys locates the secretbox key for a command.
//
// Keys are always stored and passed as hex text. A key is taken from the
// first of these that is set:
//
//  1. --key <hex>
//  2. --key-file <path>
//  3. --key-prompt (read from the terminal without echo)
//  4. keys.key_file in config.toml, or NACLBOX_KEY_FILE
//
// Nothing here generates keys; use `naclbox randombytes 32 --hex` for that.
package keys
