package brandgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// PreviewOptions controls terminal previews of a library
type PreviewOptions struct {
	UseColors  bool
	Components []string // empty means all, in catalog order
	ShowSizes  bool
}

// ContrastColor returns "#000000" or "#ffffff", whichever reads better on
// top of hex. Unparsable colors get white text.
func ContrastColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#ffffff"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}

// Swatch renders label on a block of the given color.
func Swatch(hex, label string, useColors bool) string {
	text := fmt.Sprintf(" %-9s %s ", label, strings.ToLower(hex))
	if !useColors {
		return "[" + strings.TrimSpace(text) + "]"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(ContrastColor(hex))).
		Render(text)
}

// WritePreview prints brand swatches followed by every component's variants
// composed with the default size.
func WritePreview(w io.Writer, lib *ComponentLibrary, opts PreviewOptions) error {
	cfg := lib.BrandConfig
	title := cfg.CompanyName
	if title == "" {
		title = "Brand"
	}
	fmt.Fprintln(w, RenderStyle(StyleCyan, title+" component library", opts.UseColors))
	fmt.Fprintln(w, RenderStyle(StyleGray, fmt.Sprintf("%s · %s radius · %s spacing · %s buttons · %s shadows · %s",
		cfg.FontFamily, cfg.BorderRadius, cfg.Spacing, cfg.ButtonStyle, cfg.ShadowStyle, cfg.BrandPersonality), opts.UseColors))
	fmt.Fprintln(w, "")

	colors := []struct{ name, hex string }{
		{"primary", cfg.PrimaryColor},
		{"secondary", cfg.SecondaryColor},
		{"accent", cfg.AccentColor},
	}
	for _, c := range colors {
		if !IsHexColor(c.hex) {
			fmt.Fprintf(w, "%s %s\n", c.name, RenderStyle(StyleRed, "invalid color "+c.hex, opts.UseColors))
			continue
		}
		fmt.Fprintf(w, "%s %s\n",
			Swatch(c.hex, c.name, opts.UseColors),
			Swatch(Darken(c.hex, HoverDarkenPercent), "hover", opts.UseColors))
	}

	types := opts.Components
	if len(types) == 0 {
		types = lib.Types()
	}

	for _, t := range types {
		data, ok := lib.Components[t]
		if !ok {
			return fmt.Errorf("unknown component %q", t)
		}
		writeComponentPreview(w, t, data, opts)
	}
	return nil
}

func writeComponentPreview(w io.Writer, componentType string, data ComponentData, opts PreviewOptions) {
	vc := data.VariantConfig

	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "%s %s\n",
		RenderStyle(StyleLabel, componentType, opts.UseColors),
		RenderStyle(StyleGray, fmt.Sprintf("(%s, <%s>) %s", data.Category, data.Element, data.Description), opts.UseColors))

	width := 0
	for _, name := range vc.Order.Variants {
		if len(name) > width {
			width = len(name)
		}
	}

	for _, name := range vc.Order.Variants {
		marker := " "
		if name == vc.DefaultVariants.Variant {
			marker = "*"
		}
		label := fmt.Sprintf("%-*s", width, name)
		fmt.Fprintf(w, "  %s %s  %s\n", marker,
			RenderStyle(StyleGreen, label, opts.UseColors),
			Compose(vc, name, vc.DefaultVariants.Size))
		if desc := data.Variants[name].Description; desc != "" {
			fmt.Fprintf(w, "    %*s  %s\n", width, "", RenderStyle(StyleGray, desc, opts.UseColors))
		}
	}

	if opts.ShowSizes && len(vc.Order.Sizes) > 0 {
		fmt.Fprintln(w, RenderStyle(StyleGray, "  sizes:", opts.UseColors))
		for _, size := range vc.Order.Sizes {
			marker := " "
			if size == vc.DefaultVariants.Size {
				marker = "*"
			}
			fmt.Fprintf(w, "  %s %-*s  %s\n", marker, width, size, vc.Variants.Size[size])
		}
	}
}
