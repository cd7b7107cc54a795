// Package brandgen turns brand style configurations into React + Tailwind
// component libraries.
//
// A BrandConfig (three colors, a font and a handful of categorical style
// choices) is resolved into style tokens, substituted into a fixed catalog of
// component templates and rewritten for the brand personality. The result is
// a ComponentLibrary: per component type, class strings keyed by variant and
// size. The transformation is pure and deterministic.
//
// # Assembling a library
//
//	cfg := brandgen.DefaultBrandConfig()
//	cfg.CompanyName = "Acme"
//	lib := brandgen.Assemble(cfg)
//	fmt.Println(brandgen.Compose(lib.Components["Button"].VariantConfig, "primary", "md"))
//
// # Generating packages
//
// Generate discovers brand files below a directory and writes one package
// archive per brand:
//
//	result, err := brandgen.Generate(ctx, brandgen.Config{
//		SourceDir: "brands",
//		OutputDir: "dist",
//		Archive:   true,
//	})
//
// # CLI Tool
//
// brandgen also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/brandgen/cmd/brandgen@latest
package brandgen

import (
	"github.com/yacobolo/brandgen/internal/brandgen"
)

// Public names for the engine types.
type (
	BrandConfig      = brandgen.BrandConfig
	ComponentLibrary = brandgen.ComponentLibrary
	ComponentData    = brandgen.ComponentData
	VariantConfig    = brandgen.VariantConfig
)

// DefaultBrandConfig returns the values brand files are layered over.
func DefaultBrandConfig() BrandConfig {
	return brandgen.DefaultBrandConfig()
}

// Assemble generates the component library for cfg. It never fails; unknown
// option values fall back to the engine defaults.
func Assemble(cfg BrandConfig) *ComponentLibrary {
	return brandgen.Assemble(cfg)
}

// Compose joins base, variant and size classes the way the rendered element
// receives them.
func Compose(vc VariantConfig, variant, size string) string {
	return brandgen.Compose(vc, variant, size)
}
