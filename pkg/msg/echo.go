package msg

import "sync"

// The package-level helpers write through a shared default printer, created
// lazily so that environment detection happens on first use.

var (
	defaultMu      sync.RWMutex
	defaultPrinter *Printer
)

// Default returns the package default printer, creating it on first use.
func Default() *Printer {
	defaultMu.RLock()
	if defaultPrinter != nil {
		p := defaultPrinter
		defaultMu.RUnlock()
		return p
	}
	defaultMu.RUnlock()

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultPrinter == nil {
		defaultPrinter = NewPrinter()
	}
	return defaultPrinter
}

// SetDefault replaces the package default printer.
func SetDefault(p *Printer) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultPrinter = p
}

// Success prints a success message through the default printer.
func Success(text string) error { return Default().Success(text) }

// Info prints an informational message through the default printer.
func Info(text string) error { return Default().Info(text) }

// Warning prints a warning message through the default printer.
func Warning(text string) error { return Default().Warning(text) }

// Tip prints a tip message through the default printer.
func Tip(text string) error { return Default().Tip(text) }

// Important prints an important message through the default printer.
func Important(text string) error { return Default().Important(text) }

// Debug prints a debug message through the default printer.
func Debug(text string) error { return Default().Debug(text) }

// Error prints an error message to stderr through the default printer.
func Error(text string) error { return Default().Error(text) }

// Fatal prints an error message to stderr and exits with the default code.
func Fatal(text string) { Default().Fatal(text) }

// Fatalf formats and prints an error message to stderr, then exits.
func Fatalf(format string, args ...any) { Default().Fatalf(format, args...) }

// FatalCode prints an error message to stderr and exits with code.
func FatalCode(code int, text string) { Default().FatalCode(code, text) }

// Echo prints text in the named palette color through the default printer.
func Echo(color, text string) error { return Default().Echo(color, text) }

// Divider prints a full-width "=" rule through the default printer.
func Divider() error { return Default().Divider() }

// Line prints a full-width "-" rule through the default printer.
func Line() error { return Default().Line() }
