package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	pkgerrors "github.com/ragdata/gobytes/pkg/errors"
	"github.com/ragdata/gobytes/pkg/msg"
)

var (
	echoStyle     string
	echoColor     string
	echoPrefix    string
	echoSuffix    string
	echoNoNewline bool
	echoExitCode  int
)

// echoCmd prints a styled message to the terminal.
var echoCmd = &cobra.Command{
	Use:   "echo [text...]",
	Short: "Print a styled terminal message",
	Long: `Print a message styled with the gobytes visual language.

A message kind (--style) adds the kind's symbol prefix and color; a raw
palette color (--color) styles the text without a prefix. The special
texts "divider" and "line" print full-width rules.

Error-styled messages print to stderr; combined with --code the command
exits with that code.`,
	Example: `  gobytes echo --style success "deploy finished"
  gobytes echo --style error --code 2 "no targets given"
  gobytes echo --color cyan "plain but colored"
  gobytes echo divider`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEcho,
}

func init() {
	echoCmd.Flags().StringVarP(&echoStyle, "style", "s", "",
		"Message kind: success, info, warning, tip, important, error, debug")
	echoCmd.Flags().StringVarP(&echoColor, "color", "c", "",
		"Palette color name (see 'gobytes palette')")
	echoCmd.Flags().StringVar(&echoPrefix, "prefix", "", "Text prepended to the message")
	echoCmd.Flags().StringVar(&echoSuffix, "suffix", "", "Text appended to the message")
	echoCmd.Flags().BoolVarP(&echoNoNewline, "no-newline", "n", false,
		"Suppress the trailing newline")
	echoCmd.Flags().IntVar(&echoExitCode, "code", 0,
		"Exit code for error-styled messages (implies --style error)")
	echoCmd.MarkFlagsMutuallyExclusive("style", "color")

	rootCmd.AddCommand(echoCmd)
}

func runEcho(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	printer := echoPrinter()

	// --code means a fatal error message; any other style contradicts it
	if echoExitCode != 0 {
		if echoStyle != "" && echoStyle != msg.KindError.Name {
			return pkgerrors.NewValidationError("code", echoExitCode,
				"only combines with --style error")
		}
		if echoColor != "" {
			return pkgerrors.NewValidationError("code", echoExitCode,
				"cannot combine with --color")
		}
		printer.FatalCode(echoExitCode, text)
		return nil
	}

	if echoStyle != "" {
		kind, err := msg.KindByName(echoStyle)
		if err != nil {
			return err
		}
		return printer.Kind(kind, text)
	}

	message := msg.Message{
		Text:      text,
		Color:     echoColor,
		Prefix:    echoPrefix,
		Suffix:    echoSuffix,
		NoNewline: echoNoNewline,
	}
	return printer.Print(message)
}

// echoPrinter returns the default printer, with color stripped when the
// global --no-color flag is set.
func echoPrinter() *msg.Printer {
	if globalFlags != nil && globalFlags.NoColor {
		return msg.NewPrinter(msg.WithNoColor(true))
	}
	return msg.Default()
}
