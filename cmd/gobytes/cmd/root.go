// Package cmd implements the gobytes CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ragdata/gobytes/cmd/gobytes/app"
	"github.com/ragdata/gobytes/internal/cmd/globals"
	"github.com/ragdata/gobytes/internal/cmd/output"
	"github.com/ragdata/gobytes/pkg/constants"
	"github.com/ragdata/gobytes/pkg/logging"
	"github.com/ragdata/gobytes/pkg/msg"
)

var (
	configFile   string
	logLevelFlag string
	globalFlags  *globals.Flags

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gobytes",
	Short: "Foundation utilities CLI",
	Long: `Gobytes is the foundation library behind most ragdata projects.

The CLI exposes the library's building blocks: styled terminal messages
with a consistent symbol and color language, structured logging through
named loggers, and the palette the styles draw from.`,
	PersistentPreRunE: setupCommand,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(version, commit, date string) {
	// Set version information
	Version = version
	Commit = commit
	Date = date

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Pass context to root command
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.gobytes.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: trace, debug, info, warn, error (overrides -v/-q and LOG_LEVEL)")
	globalFlags = globals.AddFlags(rootCmd)

	// Bind flags to viper
	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("Failed to bind verbose flag: %v", err))
	}
	if err := viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet")); err != nil {
		panic(fmt.Sprintf("Failed to bind quiet flag: %v", err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(configFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".gobytes" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(constants.DefaultConfigName)
	}

	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Set up environment variable handling
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && globalFlags != nil && globalFlags.Verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// Configure logging based on verbose flag and environment
	configureLogging()
}

// setupCommand is called before any command runs.
func setupCommand(_ *cobra.Command, _ []string) error {
	// Setup output format based on terminal detection
	if globalFlags.Output == "" {
		globalFlags.Output = string(output.DetectFormat(""))
	}

	// Route messages through a printer honoring --no-color
	if globalFlags.NoColor {
		msg.SetDefault(msg.NewPrinter(msg.WithNoColor(true)))
	}

	return nil
}

// configureLogging sets up the logging system based on configuration.
// Flags beat the LOG_LEVEL environment variable; app.NewLogger documents
// the full precedence.
func configureLogging() {
	config, err := app.LoadConfig()
	if err != nil {
		config = &app.Config{LogFormat: "auto", LogOutput: "stderr"}
	}

	if globalFlags != nil {
		config.UpdateFromFlags(
			globalFlags.Verbose || config.Verbose,
			globalFlags.Quiet || config.Quiet,
			globalFlags.NoColor || config.NoColor,
			logLevelFlag,
			globalFlags.Output,
		)
	}

	logging.SetDefault(app.NewLogger(config))
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// .env.local overrides .env
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			if globalFlags != nil && globalFlags.Verbose {
				fmt.Fprintf(os.Stderr, "Loaded %s\n", envFile)
			}
		}
	}
}
