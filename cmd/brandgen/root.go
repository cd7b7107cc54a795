package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yacobolo/brandgen/internal/logger"
)

// log is configured from the persistent flags before any command runs.
var log = logger.Nop()

var rootCmd = &cobra.Command{
	Use:   "brandgen",
	Short: "Brand style configurations to React + Tailwind component libraries",
	Long: `Turn brand files (colors, font, radius, spacing, personality) into
component style variants and package them as installable libraries.
Every component type gets class strings keyed by variant and size.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return setupLogger(cmd)
	},
	// Default behavior: run generate when no subcommand is given.
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGenerate(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".brandgen.yaml", "Config file path")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error (default: warn)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON instead of console text")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(assembleCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogger builds the process logger. Logs go to stderr and every entry
// carries the run id.
func setupLogger(cmd *cobra.Command) error {
	level := getStringWithFallback("log-level", "log.level", "")
	if level == "" && getBoolWithFallback("verbose", "verbose", false) {
		level = "debug"
	}
	if getBoolWithFallback("quiet", "quiet", false) {
		level = "error"
	}

	l, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: !getBoolWithFallback("log-json", "log.json", false),
		NoColor:       !getBoolWithFallback("color", "color", false),
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	log = l.WithFields(map[string]any{"run": uuid.NewString(), "command": cmd.Name()})
	return nil
}
