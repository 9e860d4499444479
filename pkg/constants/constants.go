// Package constants provides shared constants used throughout the gobytes codebase.
// This includes message symbols, palette names, file permissions, and other
// configuration values that should be consistent across the library.
package constants

import "time"

// Symbol constants prefix terminal messages with a consistent visual language.
const (
	// SymbolError marks failed operations and fatal messages.
	SymbolError = "✘"

	// SymbolWarning marks warnings and non-critical issues.
	SymbolWarning = "🛆"

	// SymbolInfo marks informational messages.
	SymbolInfo = "✚"

	// SymbolSuccess marks successful completion of an operation.
	SymbolSuccess = "✔"

	// SymbolTip marks hints and suggestions.
	SymbolTip = "★"

	// SymbolImportant marks messages that require the user's attention.
	SymbolImportant = "⚑"
)

// Palette names assign a color to each message kind. The names resolve
// against the msg package's palette.
const (
	// ColorError is the palette name for error messages.
	ColorError = "red"

	// ColorWarning is the palette name for warning messages.
	ColorWarning = "yellow"

	// ColorInfo is the palette name for informational messages.
	ColorInfo = "blue"

	// ColorSuccess is the palette name for success messages.
	ColorSuccess = "green"

	// ColorTip is the palette name for tip messages.
	ColorTip = "cyan"

	// ColorImportant is the palette name for important messages.
	ColorImportant = "magenta"
)

// Layout constants for rendered output
const (
	// RuleWidth is the width of divider and line rules in characters.
	RuleWidth = 68
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for sensitive files (rw-------)
	SecureFilePermissions = 0600
)

// Exit codes used by fatal message helpers
const (
	// DefaultExitCode is the exit code used when none is supplied.
	DefaultExitCode = 1
)

// Path constants
const (
	// DefaultConfigName is the config file name searched for in the home
	// directory and the working directory (without extension).
	DefaultConfigName = ".gobytes"

	// DefaultLogFile is the file the logging package writes to when the
	// configured output is "file" without an explicit path.
	DefaultLogFile = "gobytes.log"
)

// Format constants
const (
	// TimeFormatLog is the format used for timestamps in log files.
	TimeFormatLog = "2006-01-02 15:04:05.000"

	// TimeFormatISO8601 is the ISO 8601 time format.
	TimeFormatISO8601 = time.RFC3339
)

// Environment variable names read by the logging and messaging packages
const (
	// EnvLogLevel selects the minimum log level.
	EnvLogLevel = "LOG_LEVEL"

	// EnvLogFormat selects the log output format (json, console, auto).
	EnvLogFormat = "LOG_FORMAT"

	// EnvLogOutput selects the log destination (stderr, stdout, file path).
	EnvLogOutput = "LOG_OUTPUT"

	// EnvNoColor disables colored output when set (https://no-color.org).
	EnvNoColor = "NO_COLOR"
)
