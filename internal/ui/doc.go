// Package ui provides semantic text formatting for naclbox status output.
//
// Status lines go to stderr so that stdout carries only command output
// (hex text, ciphertext, plaintext). Formatters colorize when the terminal
// supports it and fall back to text decorations when NO_COLOR is set:
//
//	ui.Code.Sprint("naclbox randombytes 32 --hex") // `backticks` without color
//	ui.Path.Sprint("secrets.json.box")
//	ui.Highlight.Sprint("43 bytes")               // 'quotes' without color
//	ui.Muted.Sprint("optional")                   // (parentheses) without color
//
// Succeeded, Failed and Hint prefix a message with ✓, ✗ and →.
package ui
