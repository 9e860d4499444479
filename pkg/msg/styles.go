package msg

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/ragdata/gobytes/pkg/constants"
	"github.com/ragdata/gobytes/pkg/errors"
)

// palette maps the library's color names to ANSI colors. The names are the
// historical gobytes palette; gold is the dim yellow, yellow the bright one,
// pink the bright red, purple the bright magenta.
var palette = map[string]lipgloss.Color{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"gold":    lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"magenta": lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"ltgrey":  lipgloss.Color("7"),
	"grey":    lipgloss.Color("8"),
	"pink":    lipgloss.Color("9"),
	"ltgreen": lipgloss.Color("10"),
	"yellow":  lipgloss.Color("11"),
	"ltblue":  lipgloss.Color("12"),
	"purple":  lipgloss.Color("13"),
	"ltcyan":  lipgloss.Color("14"),
	"white":   lipgloss.Color("15"),
}

// Colors returns the sorted names of the palette.
func Colors() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Color resolves a palette name to its lipgloss color.
func Color(name string) (lipgloss.Color, error) {
	color, ok := palette[name]
	if !ok {
		return "", errors.NewColorError(name)
	}
	return color, nil
}

// Kind describes a message kind: its prefix symbol, label, and palette color.
type Kind struct {
	Name   string
	Symbol string
	Label  string
	Color  string
}

// Prefix returns the rendered prefix for the kind, e.g. "✔ SUCCESS:".
func (k Kind) Prefix() string {
	if k.Label == "" {
		return ""
	}
	if k.Symbol == "" {
		return k.Label + ":"
	}
	return k.Symbol + " " + k.Label + ":"
}

// The message kinds mirror the symbol and color pairs in pkg/constants.
var (
	// KindSuccess marks completed operations.
	KindSuccess = Kind{Name: "success", Symbol: constants.SymbolSuccess, Label: "SUCCESS", Color: constants.ColorSuccess}

	// KindInfo marks informational messages.
	KindInfo = Kind{Name: "info", Symbol: constants.SymbolInfo, Label: "INFO", Color: constants.ColorInfo}

	// KindWarning marks non-critical issues.
	KindWarning = Kind{Name: "warning", Symbol: constants.SymbolWarning, Label: "WARNING", Color: constants.ColorWarning}

	// KindTip marks hints and suggestions.
	KindTip = Kind{Name: "tip", Symbol: constants.SymbolTip, Label: "TIP", Color: constants.ColorTip}

	// KindImportant marks messages needing the user's attention.
	KindImportant = Kind{Name: "important", Symbol: constants.SymbolImportant, Label: "IMPORTANT", Color: constants.ColorImportant}

	// KindError marks failures; printed to stderr.
	KindError = Kind{Name: "error", Symbol: constants.SymbolError, Label: "ERROR", Color: constants.ColorError}

	// KindDebug marks debug chatter; plain white with a bare label.
	KindDebug = Kind{Name: "debug", Label: "DEBUG", Color: "white"}
)

// kinds indexes the message kinds by name.
var kinds = map[string]Kind{
	KindSuccess.Name:   KindSuccess,
	KindInfo.Name:      KindInfo,
	KindWarning.Name:   KindWarning,
	KindTip.Name:       KindTip,
	KindImportant.Name: KindImportant,
	KindError.Name:     KindError,
	KindDebug.Name:     KindDebug,
}

// KindByName resolves a kind by its name.
func KindByName(name string) (Kind, error) {
	kind, ok := kinds[name]
	if !ok {
		return Kind{}, errors.NewValidationError("kind", name, "not a message kind")
	}
	return kind, nil
}

// Kinds returns the sorted names of all message kinds.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// boldStyle builds the lipgloss style for a palette color. Messages render
// bold in their kind color.
func boldStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}
