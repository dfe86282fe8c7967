// Package utils provides shared helpers for the naclbox commands.
//
// # I/O Utilities
//
//   - ReadStdin / ReadPiped: read piped input, refusing to block on a TTY
//   - ReadSecret: read a key from the terminal without echo
//   - IsTerminal: reports whether stdout is a terminal
//
// # Filesystem Utilities
//
//   - IsPermissive: detects key files readable by group or others
//   - FormatPaths: formats file paths for status output
package utils
