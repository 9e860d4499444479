package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ragdata/gobytes/internal/cmd/output"
	"github.com/ragdata/gobytes/pkg/msg"
)

// paletteCmd lists the palette colors and message kinds.
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List palette colors and message kinds",
	Long: `List the named colors in the gobytes palette and the message kinds
built on top of them, in table, JSON, or YAML form.`,
	Example: `  gobytes palette
  gobytes palette -o json
  gobytes palette -o yaml`,
	RunE: runPalette,
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}

// paletteEntry is one row of the palette listing.
type paletteEntry struct {
	Kind   string `json:"kind" yaml:"kind"`
	Symbol string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Color  string `json:"color" yaml:"color"`
}

func runPalette(cmd *cobra.Command, _ []string) error {
	format, err := output.ParseFormat(globalFlags.Output)
	if err != nil {
		return err
	}

	entries := make([]paletteEntry, 0, len(msg.Kinds()))
	for _, name := range msg.Kinds() {
		kind, err := msg.KindByName(name)
		if err != nil {
			return err
		}
		entries = append(entries, paletteEntry{
			Kind:   kind.Name,
			Symbol: kind.Symbol,
			Color:  kind.Color,
		})
	}

	formatter := output.NewFormatter(format)
	if format == output.FormatTable || format == "" {
		data := output.Data{
			Headers: output.Headers("kind", "symbol", "color"),
		}
		for _, e := range entries {
			data.Rows = append(data.Rows, []string{e.Kind, e.Symbol, e.Color})
		}
		if err := formatter.Format(os.Stdout, data); err != nil {
			return err
		}

		// The full color palette follows the kind table
		colors := output.Data{Headers: output.Headers("color")}
		for _, name := range msg.Colors() {
			colors.Rows = append(colors.Rows, []string{name})
		}
		return formatter.Format(os.Stdout, colors)
	}

	listing := map[string]any{
		"kinds":  entries,
		"colors": msg.Colors(),
	}
	return formatter.Format(os.Stdout, listing)
}
