package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yacobolo/brandgen"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble <brand-file>",
	Short: "Print the assembled component library as JSON or YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssemble,
}

func init() {
	f := assembleCmd.Flags()
	f.StringP("output", "o", "json", "Output format: json|yaml")
	f.Bool("strict", false, "Fail on invalid brand fields")
}

func runAssemble(cmd *cobra.Command, args []string) error {
	cfg, err := loadBrandFile(args[0])
	if err != nil {
		return err
	}
	lib := brandgen.Assemble(cfg)
	w := cmd.OutOrStdout()

	format, _ := cmd.Flags().GetString("output")
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(lib)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(lib); err != nil {
			return fmt.Errorf("encode library: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}
