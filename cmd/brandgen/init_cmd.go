package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/brandgen"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .brandgen.yaml config file",
	Long: `Create a .brandgen.yaml configuration file in the current directory with
sensible defaults. With --example, also write example.brand.yaml.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".brandgen.yaml"); err == nil && !force {
			return fmt.Errorf(".brandgen.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".brandgen.yaml", []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Created .brandgen.yaml")

		example, _ := cmd.Flags().GetBool("example")
		if example {
			cfg := brandgen.DefaultBrandConfig()
			cfg.CompanyName = "Example"
			if err := writeBrandFile("example.brand.yaml", cfg, force); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Created example.brand.yaml")
		}
		return nil
	},
}

const defaultConfig = `# brandgen configuration
# Precedence: flags > BRANDGEN_* environment variables > this file > defaults

# Shared settings
verbose: false
color: false

log:
  level: warn              # debug | info | warn | error
  json: false

# Generation settings
generate:
  source: .
  output-dir: dist
  include:
    - "**/*.brand.yaml"
    - "**/*.brand.yml"
    - "**/*.brand.json"
  archive: true            # false writes one directory per brand
  format: complete         # complete | components-only
  storybook: true
  tests: false
  package-version: 1.0.0
  concurrency: 0           # 0 = GOMAXPROCS
  strict: false

# Linting settings
lint:
  source: .
  stylesheet: ""           # exported globals.css to check
  strict: false
  check-conflicts: true
  output-format: issues    # issues | summary | full | json | markdown
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing files")
	initCmd.Flags().Bool("example", false, "Also write example.brand.yaml")
}
