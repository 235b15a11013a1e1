// Package debug provides optional file-based debug logging.
//
// When the TUI_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
// The scroll pipeline logs here because anything written to stdout would
// corrupt the alternate screen.
package debug
