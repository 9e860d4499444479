package msg

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ragdata/gobytes/pkg/constants"
)

// Printer writes messages to a stdout/stderr writer pair. Kind helpers pick
// the pair member: errors and fatals go to Err, everything else to Out.
type Printer struct {
	// Out receives regular messages. Defaults to os.Stdout.
	Out io.Writer

	// Err receives error and fatal messages. Defaults to os.Stderr.
	Err io.Writer

	// NoColor disables styling regardless of terminal detection.
	NoColor bool

	// exit terminates the process for Fatal helpers. Defaults to os.Exit;
	// replaceable in tests.
	exit func(int)
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithWriters sets the stdout and stderr writers.
func WithWriters(out, err io.Writer) PrinterOption {
	return func(p *Printer) {
		p.Out = out
		p.Err = err
	}
}

// WithNoColor disables styled output.
func WithNoColor(noColor bool) PrinterOption {
	return func(p *Printer) {
		p.NoColor = noColor
	}
}

// WithExitFunc replaces the process-exit function used by Fatal helpers.
func WithExitFunc(exit func(int)) PrinterOption {
	return func(p *Printer) {
		p.exit = exit
	}
}

// NewPrinter creates a Printer writing to stdout and stderr. Styling is
// disabled when NO_COLOR is set or stdout is not a terminal.
func NewPrinter(opts ...PrinterOption) *Printer {
	p := &Printer{
		Out:     os.Stdout,
		Err:     os.Stderr,
		NoColor: os.Getenv(constants.EnvNoColor) != "" || !stdoutIsTerminal(),
		exit:    os.Exit,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print renders the message and writes it to the regular output writer.
func (p *Printer) Print(m Message) error {
	return p.write(p.Out, m)
}

// PrintErr renders the message and writes it to the error writer.
func (p *Printer) PrintErr(m Message) error {
	return p.write(p.Err, m)
}

func (p *Printer) write(w io.Writer, m Message) error {
	text, err := m.Render(p.NoColor)
	if err != nil {
		return err
	}

	if m.NoNewline {
		_, err = fmt.Fprint(w, text)
	} else {
		_, err = fmt.Fprintln(w, text)
	}
	return err
}

// Kind prints a message styled for the given kind.
func (p *Printer) Kind(kind Kind, text string) error {
	m := Message{Text: text, Color: kind.Color, Prefix: kind.Prefix()}
	if kind.Name == KindError.Name {
		return p.PrintErr(m)
	}
	return p.Print(m)
}

// Success prints a success message.
func (p *Printer) Success(text string) error {
	return p.Kind(KindSuccess, text)
}

// Info prints an informational message.
func (p *Printer) Info(text string) error {
	return p.Kind(KindInfo, text)
}

// Warning prints a warning message.
func (p *Printer) Warning(text string) error {
	return p.Kind(KindWarning, text)
}

// Tip prints a tip message.
func (p *Printer) Tip(text string) error {
	return p.Kind(KindTip, text)
}

// Important prints an important message.
func (p *Printer) Important(text string) error {
	return p.Kind(KindImportant, text)
}

// Debug prints a debug message.
func (p *Printer) Debug(text string) error {
	return p.Kind(KindDebug, text)
}

// Error prints an error message to the error writer. It does not exit;
// use Fatal for the exit-on-error behavior.
func (p *Printer) Error(text string) error {
	return p.Kind(KindError, text)
}

// Fatal prints an error message to the error writer and exits with the
// default exit code.
func (p *Printer) Fatal(text string) {
	p.FatalCode(constants.DefaultExitCode, text)
}

// Fatalf formats and prints an error message, then exits with the default
// exit code.
func (p *Printer) Fatalf(format string, args ...any) {
	p.FatalCode(constants.DefaultExitCode, fmt.Sprintf(format, args...))
}

// FatalCode prints an error message to the error writer and exits with code.
func (p *Printer) FatalCode(code int, text string) {
	// Render errors surface as the raw text; exiting still happens.
	if err := p.Error(text); err != nil {
		fmt.Fprintln(p.Err, text)
	}
	p.exit(code)
}

// Echo prints text in the named palette color.
func (p *Printer) Echo(color, text string) error {
	return p.Print(Message{Text: text, Color: color})
}

// Divider prints a full-width "=" rule.
func (p *Printer) Divider() error {
	return p.Print(Message{Text: TextDivider})
}

// Line prints a full-width "-" rule.
func (p *Printer) Line() error {
	return p.Print(Message{Text: TextLine})
}

// stdoutIsTerminal reports whether stdout is attached to a terminal.
func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
