package brandgen

import (
	"sort"
	"strings"
)

// Fallback values for component types the catalog does not know.
const (
	FallbackBaseClasses = "inline-flex items-center"
	FallbackVariant     = "default"
	FallbackClasses     = "bg-gray-100 text-gray-900"
)

// substituter fills {{NAME}} placeholders in a single pass.
type substituter struct {
	replacer *strings.Replacer
}

func newSubstituter(tokens ResolvedTokens) substituter {
	values := tokens.Placeholders()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		pairs = append(pairs, Placeholder(name), values[name])
	}
	return substituter{replacer: strings.NewReplacer(pairs...)}
}

// fill substitutes every placeholder and collapses whitespace, so tokens
// that resolve to "" leave no gaps.
func (s substituter) fill(template string) string {
	return strings.Join(strings.Fields(s.replacer.Replace(template)), " ")
}

// Placeholder formats a token name as it appears in templates.
func Placeholder(name string) string {
	return "{{" + name + "}}"
}

// GenerateVariantConfig builds the variant config of componentType for cfg.
// Unknown component types get a single "default" variant and no size axis.
func GenerateVariantConfig(componentType string, cfg BrandConfig) VariantConfig {
	spec, ok := Lookup(componentType)
	if !ok {
		return fallbackVariantConfig()
	}
	vc, _ := generate(spec, cfg)
	return vc
}

func fallbackVariantConfig() VariantConfig {
	return VariantConfig{
		BaseClasses: FallbackBaseClasses,
		Variants: VariantAxes{
			Variant: map[string]string{FallbackVariant: FallbackClasses},
		},
		DefaultVariants: DefaultVariants{Variant: FallbackVariant},
		Order:           VariantOrder{Variants: []string{FallbackVariant}},
	}
}

// generate substitutes and rewrites every template of spec. It also returns
// the variant entries under their published names, for metadata.
func generate(spec ComponentSpec, cfg BrandConfig) (VariantConfig, []Entry) {
	sub := newSubstituter(Resolve(cfg))
	p := cfg.BrandPersonality
	render := func(template string) string {
		return ApplyPersonality(p, sub.fill(template))
	}

	defined := make(map[string]bool, len(spec.Variants))
	for _, e := range spec.Variants {
		defined[e.Name] = true
	}

	vc := VariantConfig{
		BaseClasses: render(spec.Base),
		Variants: VariantAxes{
			Variant: make(map[string]string, len(spec.Variants)),
		},
		DefaultVariants: DefaultVariants{Variant: spec.DefaultVariant},
	}

	published := make([]Entry, 0, len(spec.Variants))
	for _, e := range spec.Variants {
		name, renamed := RenameVariant(p, e.Name)
		if renamed && defined[name] {
			// The catalog's own entry under the target name wins.
			continue
		}
		vc.Variants.Variant[name] = render(e.Template)
		vc.Order.Variants = append(vc.Order.Variants, name)
		published = append(published, Entry{Name: name, Description: e.Description, Template: e.Template})
	}
	if target, renamed := RenameVariant(p, spec.DefaultVariant); renamed {
		vc.DefaultVariants.Variant = target
	}

	if len(spec.Sizes) > 0 {
		vc.Variants.Size = make(map[string]string, len(spec.Sizes))
		for _, e := range spec.Sizes {
			vc.Variants.Size[e.Name] = render(e.Template)
			vc.Order.Sizes = append(vc.Order.Sizes, e.Name)
		}
		vc.DefaultVariants.Size = spec.DefaultSize
	}

	return vc, published
}
