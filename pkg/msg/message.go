// Package msg provides styled terminal messages for gobytes projects.
// Messages carry a palette color, an optional prefix and suffix, and render
// through lipgloss with NO_COLOR and non-terminal handling. A Printer pairs
// a stdout and a stderr writer the way the original console pair did, and
// package-level helpers (Success, Warning, Fatal, Divider, ...) write
// through a default printer.
//
// Example usage:
//
//	msg.Success("configuration written")
//	msg.Warning("registry unreachable, using cache")
//	msg.Fatal("no targets given") // prints to stderr and exits 1
package msg

import (
	"strings"

	"github.com/ragdata/gobytes/pkg/constants"
	"github.com/ragdata/gobytes/pkg/errors"
)

// Special message texts that render as horizontal rules.
const (
	// TextDivider renders as a full-width "=" rule.
	TextDivider = "divider"

	// TextLine renders as a full-width "-" rule.
	TextLine = "line"
)

// Message is a terminal message with optional color, prefix, and suffix.
// The zero value is invalid; Text must be set.
type Message struct {
	// Text is the message body. The specials "divider" and "line" render
	// as horizontal rules instead.
	Text string

	// Color is a palette name. Empty means unstyled.
	Color string

	// Prefix is prepended with a separating space.
	Prefix string

	// Suffix is appended with a separating space.
	Suffix string

	// NoNewline suppresses the trailing newline when printed.
	NoNewline bool
}

// compose resolves specials and joins prefix, text, and suffix.
func (m Message) compose() (string, error) {
	if m.Text == "" {
		return "", errors.ErrEmptyMessage
	}

	switch m.Text {
	case TextDivider:
		return strings.Repeat("=", constants.RuleWidth), nil
	case TextLine:
		return strings.Repeat("-", constants.RuleWidth), nil
	}

	text := m.Text
	if m.Prefix != "" {
		text = m.Prefix + " " + text
	}
	if m.Suffix != "" {
		text = text + " " + m.Suffix
	}
	return text, nil
}

// Render returns the styled message text. With noColor the text is composed
// but left unstyled. Rules and messages without a color are never styled.
func (m Message) Render(noColor bool) (string, error) {
	text, err := m.compose()
	if err != nil {
		return "", err
	}

	if m.Color == "" {
		return text, nil
	}

	// The palette name validates even when styling is disabled, so a bad
	// name fails the same way with and without color.
	color, err := Color(m.Color)
	if err != nil {
		return "", err
	}
	if noColor {
		return text, nil
	}
	return boldStyle(color).Render(text), nil
}
