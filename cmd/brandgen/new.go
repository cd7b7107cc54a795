package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/yacobolo/brandgen"
	engine "github.com/yacobolo/brandgen/internal/brandgen"
	"github.com/yacobolo/brandgen/internal/export"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a brand file interactively",
	Long: `Ask for the company name, brand colors, font and style choices and
write them to a brand file that generate, lint and preview pick up.`,
	RunE: runNew,
}

func init() {
	f := newCmd.Flags()
	f.StringP("output", "o", "", "Brand file to write (default: <company>.brand.yaml)")
	f.Bool("force", false, "Overwrite an existing brand file")
	f.Bool("accessible", false, "Use the screen reader friendly prompt mode")
}

// brandAnswers holds the form state. Selects bind to plain strings.
type brandAnswers struct {
	CompanyName    string
	PrimaryColor   string
	SecondaryColor string
	AccentColor    string
	FontFamily     string
	BorderRadius   string
	Spacing        string
	ButtonStyle    string
	ShadowStyle    string
	Personality    string
}

func answersFrom(cfg brandgen.BrandConfig) *brandAnswers {
	return &brandAnswers{
		CompanyName:    cfg.CompanyName,
		PrimaryColor:   cfg.PrimaryColor,
		SecondaryColor: cfg.SecondaryColor,
		AccentColor:    cfg.AccentColor,
		FontFamily:     cfg.FontFamily,
		BorderRadius:   string(cfg.BorderRadius),
		Spacing:        string(cfg.Spacing),
		ButtonStyle:    string(cfg.ButtonStyle),
		ShadowStyle:    string(cfg.ShadowStyle),
		Personality:    string(cfg.BrandPersonality),
	}
}

func (a *brandAnswers) config() brandgen.BrandConfig {
	return brandgen.BrandConfig{
		CompanyName:      strings.TrimSpace(a.CompanyName),
		PrimaryColor:     strings.ToUpper(a.PrimaryColor),
		SecondaryColor:   strings.ToUpper(a.SecondaryColor),
		AccentColor:      strings.ToUpper(a.AccentColor),
		FontFamily:       a.FontFamily,
		BorderRadius:     engine.BorderRadius(a.BorderRadius),
		Spacing:          engine.Spacing(a.Spacing),
		ButtonStyle:      engine.ButtonStyle(a.ButtonStyle),
		ShadowStyle:      engine.ShadowStyle(a.ShadowStyle),
		BrandPersonality: engine.Personality(a.Personality),
	}
}

func validateCompany(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("company name required")
	}
	return nil
}

func validateColor(s string) error {
	if !engine.IsHexColor(s) {
		return fmt.Errorf("use #RRGGBB")
	}
	return nil
}

func colorInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("#RRGGBB").
		Value(value).
		Validate(validateColor)
}

func choice(title string, value *string, options ...string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(value)
}

// brandForm binds every answer to a form field.
func brandForm(a *brandAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Company name").
				Value(&a.CompanyName).
				Validate(validateCompany),
			colorInput("Primary color", &a.PrimaryColor),
			colorInput("Secondary color", &a.SecondaryColor),
			colorInput("Accent color", &a.AccentColor),
			choice("Font family", &a.FontFamily, engine.FontFamilies...),
		),
		huh.NewGroup(
			choice("Border radius", &a.BorderRadius, "small", "medium", "large"),
			choice("Spacing", &a.Spacing, "tight", "medium", "loose"),
			choice("Button style", &a.ButtonStyle, "rounded", "square", "pill"),
			choice("Shadows", &a.ShadowStyle, "none", "subtle", "prominent"),
			choice("Personality", &a.Personality, "professional", "playful", "minimal", "bold", "magical", "futuristic").
				Description("Magical and futuristic unlock animated gradient variants"),
		),
	)
}

// marshalBrandFile renders cfg as a brand file.
func marshalBrandFile(cfg brandgen.BrandConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode brand file: %w", err)
	}
	header := fmt.Sprintf("# %s brand\n# Generate with: brandgen generate\n", cfg.CompanyName)
	return append([]byte(header), out...), nil
}

// writeBrandFile writes cfg to path, refusing to overwrite unless force.
func writeBrandFile(path string, cfg brandgen.BrandConfig, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	data, err := marshalBrandFile(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing brand file: %w", err)
	}
	return nil
}

func runNew(cmd *cobra.Command, _ []string) error {
	accessible, _ := cmd.Flags().GetBool("accessible")
	if !accessible && !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("brandgen new needs an interactive terminal (or --accessible)")
	}

	answers := answersFrom(brandgen.DefaultBrandConfig())
	if err := brandForm(answers).WithAccessible(accessible).Run(); err != nil {
		return fmt.Errorf("brand form: %w", err)
	}

	cfg := answers.config()
	if err := engine.Validate(cfg); err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		path = export.Slug(cfg.CompanyName) + ".brand.yaml"
	}
	force, _ := cmd.Flags().GetBool("force")
	if err := writeBrandFile(path, cfg, force); err != nil {
		return err
	}

	log.With("file", path).Info("brand file written")
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
