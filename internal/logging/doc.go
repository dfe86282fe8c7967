// Package logger provides leveled output for naclbox commands.
//
// Verbosity is controlled by the root command's persistent flags:
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details and errors
//
// Without flags only WarnfAlways output reaches the terminal, which keeps
// stdout clean for ciphertext and plaintext written by the commands.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose or --debug
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Shown with --verbose or --debug
//	Logger.WarnfAlways()    // Always shown
//	Logger.Errorf()         // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the formatted error
//
// Never pass key bytes or message contents to a log method; log sizes.
package logger
