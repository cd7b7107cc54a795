package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/yacobolo/brandgen"
	engine "github.com/yacobolo/brandgen/internal/brandgen"
	"github.com/yacobolo/brandgen/internal/export"
)

var previewCmd = &cobra.Command{
	Use:   "preview <brand-file>",
	Short: "Show the composed classes of every component for a brand",
	Long: `Print brand color swatches and, per component, every variant composed
with the default size: the class string the rendered element receives.
With --readme, render the package README instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	f := previewCmd.Flags()
	f.StringSlice("component", nil, "Component types to show (default: all)")
	f.Bool("sizes", false, "Also list the size classes")
	f.Bool("readme", false, "Render the generated README.md")
	f.Bool("strict", false, "Fail on invalid brand fields")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadBrandFile(args[0])
	if err != nil {
		return err
	}
	lib := brandgen.Assemble(cfg)
	useColors := engine.ShouldUseColors(getBoolWithFallback("color", "color", false))
	w := cmd.OutOrStdout()

	readme, _ := cmd.Flags().GetBool("readme")
	if readme {
		md, err := export.Readme(lib)
		if err != nil {
			return err
		}
		if !useColors {
			_, err = fmt.Fprint(w, md)
			return err
		}
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err != nil {
			return fmt.Errorf("markdown renderer: %w", err)
		}
		out, err := r.Render(md)
		if err != nil {
			return fmt.Errorf("render README: %w", err)
		}
		_, err = fmt.Fprint(w, out)
		return err
	}

	components, _ := cmd.Flags().GetStringSlice("component")
	sizes, _ := cmd.Flags().GetBool("sizes")
	return engine.WritePreview(w, lib, engine.PreviewOptions{
		UseColors:  useColors,
		Components: components,
		ShowSizes:  sizes,
	})
}

// loadBrandFile loads a single brand file and reports invalid fields as
// warnings, or as an error with --strict.
func loadBrandFile(path string) (brandgen.BrandConfig, error) {
	cfg, err := brandgen.LoadBrandConfig(path)
	if err != nil {
		return cfg, err
	}
	if err := engine.Validate(cfg); err != nil {
		if getBoolWithFallback("strict", "strict", false) {
			return cfg, err
		}
		log.With("file", path).Warn(err.Error())
	}
	return cfg, nil
}
