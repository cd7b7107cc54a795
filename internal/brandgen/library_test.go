package brandgen

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acmeConfig() BrandConfig {
	return BrandConfig{
		CompanyName:      "Acme",
		PrimaryColor:     "#3B82F6",
		SecondaryColor:   "#64748B",
		AccentColor:      "#F59E0B",
		FontFamily:       "Inter",
		BorderRadius:     RadiusMedium,
		Spacing:          SpacingMedium,
		ButtonStyle:      ButtonRounded,
		ShadowStyle:      ShadowSubtle,
		BrandPersonality: PersonalityProfessional,
	}
}

func TestAssembleAcme(t *testing.T) {
	lib := Assemble(acmeConfig())

	require.Len(t, lib.Components, 12)
	assert.Equal(t, acmeConfig(), lib.BrandConfig)

	button := lib.Components["Button"]
	assert.Equal(t, "Button", button.Name)
	assert.Equal(t, CategoryInteractive, button.Category)
	assert.Equal(t, "button", button.Element)

	primary := button.VariantConfig.Variants.Variant["primary"]
	assert.Contains(t, strings.Fields(primary), "rounded-lg")
	assert.Contains(t, strings.Fields(primary), "shadow-sm")
	assert.Contains(t, strings.Fields(primary), "bg-[#3B82F6]")
	assert.Equal(t, DefaultVariants{Variant: "primary", Size: "md"}, button.VariantConfig.DefaultVariants)

	meta, ok := button.Variants["primary"]
	require.True(t, ok)
	assert.Equal(t, "primary", meta.Name)
	assert.NotEmpty(t, meta.Description)
	assert.NotEmpty(t, meta.Props)

	assert.Equal(t,
		"inline-flex items-center justify-center font-['Inter'] font-medium transition-colors duration-200 focus:outline-none focus:ring-2 focus:ring-offset-2 disabled:opacity-50 disabled:cursor-not-allowed rounded-lg bg-[#3B82F6] text-white shadow-sm hover:bg-[#2269dd] focus:ring-[#3B82F6] px-4 py-2 text-base",
		ComposeDefault(button.VariantConfig))
}

func TestAssembleKeySetEqualsCatalog(t *testing.T) {
	for _, p := range []Personality{PersonalityProfessional, PersonalityMagical, PersonalityFuturistic, "unknown"} {
		cfg := acmeConfig()
		cfg.BrandPersonality = p
		lib := Assemble(cfg)

		got := make([]string, 0, len(lib.Components))
		for k := range lib.Components {
			got = append(got, k)
		}
		sort.Strings(got)
		want := ComponentTypes()
		sort.Strings(want)
		assert.Equal(t, want, got, string(p))
		assert.Equal(t, ComponentTypes(), lib.Types())
	}
}

func TestAssembleDefaultsAreMembers(t *testing.T) {
	for _, p := range []Personality{PersonalityProfessional, PersonalityPlayful, PersonalityMinimal, PersonalityBold, PersonalityMagical, PersonalityFuturistic} {
		cfg := acmeConfig()
		cfg.BrandPersonality = p
		lib := Assemble(cfg)

		for name, data := range lib.Components {
			vc := data.VariantConfig
			assert.Contains(t, vc.Variants.Variant, vc.DefaultVariants.Variant, "%s/%s", p, name)
			if vc.Variants.Size != nil {
				assert.Contains(t, vc.Variants.Size, vc.DefaultVariants.Size, "%s/%s", p, name)
			}

			// metadata follows the published names
			assert.Len(t, data.Variants, len(vc.Variants.Variant), "%s/%s", p, name)
			for variant := range vc.Variants.Variant {
				assert.Contains(t, data.Variants, variant, "%s/%s", p, name)
			}
		}
	}
}

func TestAssembleIsDeterministic(t *testing.T) {
	cfg := acmeConfig()
	cfg.BrandPersonality = PersonalityPlayful

	assert.Equal(t, Assemble(cfg), Assemble(cfg))
}

func TestAssembleMinimalDropsShadows(t *testing.T) {
	professional := Assemble(acmeConfig())
	cfg := acmeConfig()
	cfg.BrandPersonality = PersonalityMinimal
	minimal := Assemble(cfg)

	assert.Contains(t, strings.Fields(professional.Components["Button"].VariantConfig.Variants.Variant["primary"]), "shadow-sm")

	for name, data := range minimal.Components {
		for variant, classes := range data.VariantConfig.Variants.Variant {
			for _, class := range strings.Fields(classes) {
				assert.False(t, IsShadowUtility(class), "%s.%s has %q", name, variant, class)
			}
		}
		for _, class := range strings.Fields(data.VariantConfig.BaseClasses) {
			assert.False(t, IsShadowUtility(class), "%s base has %q", name, class)
		}
	}
}

func TestAssemblePersonalities(t *testing.T) {
	t.Run("playful", func(t *testing.T) {
		cfg := acmeConfig()
		cfg.BrandPersonality = PersonalityPlayful
		base := strings.Fields(Assemble(cfg).Components["Button"].VariantConfig.BaseClasses)

		assert.Contains(t, base, "transition-all")
		assert.NotContains(t, base, "transition-colors")
		assert.Contains(t, base, "hover:scale-105")
	})

	t.Run("bold", func(t *testing.T) {
		cfg := acmeConfig()
		cfg.BrandPersonality = PersonalityBold
		button := Assemble(cfg).Components["Button"].VariantConfig

		assert.Contains(t, strings.Fields(button.BaseClasses), "font-bold")
		assert.Contains(t, strings.Fields(button.Variants.Variant["primary"]), "shadow-lg")
	})

	t.Run("futuristic", func(t *testing.T) {
		cfg := acmeConfig()
		cfg.BrandPersonality = PersonalityFuturistic
		lib := Assemble(cfg)

		assert.Contains(t, strings.Fields(lib.Components["Card"].VariantConfig.BaseClasses), "bg-gray-900")
		assert.NotContains(t, lib.Components["Button"].Variants, "magic")
		assert.Contains(t, lib.Components["Badge"].Variants, "magic-dark")
	})
}

func TestCompose(t *testing.T) {
	vc := VariantConfig{
		BaseClasses: "inline-flex",
		Variants: VariantAxes{
			Variant: map[string]string{"a": "bg-white", "empty": ""},
			Size:    map[string]string{"md": "px-4"},
		},
		DefaultVariants: DefaultVariants{Variant: "a", Size: "md"},
	}

	assert.Equal(t, "inline-flex bg-white px-4", ComposeDefault(vc))
	assert.Equal(t, "inline-flex px-4", Compose(vc, "empty", "md"))
	assert.Equal(t, "inline-flex bg-white", Compose(vc, "a", "missing"))

	noSize := GenerateVariantConfig("Unknown", DefaultBrandConfig())
	assert.Equal(t, "inline-flex items-center bg-gray-100 text-gray-900", ComposeDefault(noSize))
}
