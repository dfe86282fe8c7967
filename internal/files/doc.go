// Package files seals and opens whole files with a secretbox key.
//
// A sealed file is the flat byte sequence nonce || ciphertext, written
// next to its source with the configured extension (".box" by default):
//
//	notes.txt      ->  notes.txt.box
//	notes.txt.box  ->  notes.txt
//
// Inputs may be literal paths, directories (walked recursively, skipping
// .git) or doublestar globs such as "config/**/*.json".
package files
