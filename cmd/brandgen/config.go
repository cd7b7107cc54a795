package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/brandgen"
	engine "github.com/yacobolo/brandgen/internal/brandgen"
	"github.com/yacobolo/brandgen/internal/export"
)

var k = koanf.New(".")

// configSections are the top level groups of .brandgen.yaml.
var configSections = map[string]bool{
	"generate": true,
	"lint":     true,
	"log":      true,
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	k = koanf.New(".")

	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".brandgen.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (BRANDGEN_* prefix)
	if err := k.Load(env.Provider("BRANDGEN_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key:
//
//	BRANDGEN_GENERATE_OUTPUT_DIR -> generate.output-dir
//	BRANDGEN_LOG_LEVEL           -> log.level
//	BRANDGEN_VERBOSE             -> verbose
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "BRANDGEN_"))
	section, rest, found := strings.Cut(key, "_")
	if found && configSections[section] {
		return section + "." + strings.ReplaceAll(rest, "_", "-")
	}
	return strings.ReplaceAll(key, "_", "-")
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() brandgen.Config {
	config := brandgen.Config{
		SourceDir:   getStringWithFallback("source", "generate.source", "."),
		OutputDir:   getStringWithFallback("output-dir", "generate.output-dir", "dist"),
		Archive:     getBoolWithFallback("archive", "generate.archive", true),
		Concurrency: getIntWithFallback("concurrency", "generate.concurrency", 0),
		Strict:      getBoolWithFallback("strict", "generate.strict", false),
		DryRun:      getBoolWithFallback("dry-run", "generate.dry-run", false),
		Export: export.Options{
			Format:           export.Format(getStringWithFallback("format", "generate.format", string(export.FormatComplete))),
			IncludeStorybook: getBoolWithFallback("storybook", "generate.storybook", true),
			IncludeTests:     getBoolWithFallback("tests", "generate.tests", false),
			Version:          getStringWithFallback("package-version", "generate.package-version", export.DefaultVersion),
		},
		Logger: log,
	}

	// Handle includes: check flag key first, then config key
	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings("generate.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = brandgen.DefaultIncludes
	}

	return config
}

// buildSourceConfig is the discovery part of the config, shared by lint,
// preview and assemble.
func buildSourceConfig(section string) brandgen.Config {
	config := brandgen.Config{
		SourceDir: getStringWithFallback("source", section+".source", "."),
		Strict:    getBoolWithFallback("strict", section+".strict", false),
		Logger:    log,
	}
	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings(section + ".include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = brandgen.DefaultIncludes
	}
	return config
}

// buildLintConfig constructs the engine's LintConfig struct from koanf state.
func buildLintConfig() engine.LintConfig {
	return engine.LintConfig{
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		CheckConflicts:     getBoolWithFallback("check-conflicts", "lint.check-conflicts", true),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
