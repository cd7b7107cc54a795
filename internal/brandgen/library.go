package brandgen

import "strings"

// Assemble generates every catalog component for cfg. The result shares no
// mutable state with cfg or the catalog, and always holds exactly the
// catalog's component types.
func Assemble(cfg BrandConfig) *ComponentLibrary {
	lib := &ComponentLibrary{
		Components:  make(map[string]ComponentData, len(catalog)),
		BrandConfig: cfg,
	}

	for _, spec := range Catalog() {
		vc, published := generate(spec, cfg)

		meta := make(map[string]VariantMeta, len(published))
		for _, e := range published {
			meta[e.Name] = VariantMeta{
				Name:        e.Name,
				Description: e.Description,
				Props:       append([]Prop(nil), spec.Props...),
			}
		}

		lib.Components[spec.Type] = ComponentData{
			Name:          spec.Name,
			Description:   spec.Description,
			Category:      spec.Category,
			Element:       spec.Element,
			VariantConfig: vc,
			Variants:      meta,
		}
	}

	return lib
}

// Types returns the library's component types in catalog order.
func (l *ComponentLibrary) Types() []string {
	var types []string
	for _, t := range ComponentTypes() {
		if _, ok := l.Components[t]; ok {
			types = append(types, t)
		}
	}
	return types
}

// Compose joins the base, variant and size classes the way the rendered
// element receives them. Missing or empty parts are skipped.
func Compose(vc VariantConfig, variant, size string) string {
	parts := []string{vc.BaseClasses, vc.Variants.Variant[variant]}
	if vc.Variants.Size != nil {
		parts = append(parts, vc.Variants.Size[size])
	}

	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(part)
	}
	return b.String()
}

// ComposeDefault composes the default variant and size.
func ComposeDefault(vc VariantConfig) string {
	return Compose(vc, vc.DefaultVariants.Variant, vc.DefaultVariants.Size)
}
