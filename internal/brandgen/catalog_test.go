package brandgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentTypesOrder(t *testing.T) {
	assert.Equal(t, []string{
		"Button", "Card", "Badge", "Alert", "Input", "Modal",
		"DatePicker", "ColorPicker", "Checkbox", "Tabs", "Slider", "Switch",
	}, ComponentTypes())
}

func TestLookup(t *testing.T) {
	tests := []struct {
		componentType string
		element       string
		category      Category
		variants      int
		sizes         int
	}{
		{"Button", "button", CategoryInteractive, 8, 4},
		{"Card", "div", CategoryLayout, 7, 4},
		{"Badge", "span", CategoryDisplay, 7, 3},
		{"Alert", "div", CategoryFeedback, 5, 3},
		{"Input", "input", CategoryForms, 4, 3},
		{"Modal", "div", CategoryOverlay, 3, 4},
		{"Tabs", "div", CategoryNavigation, 3, 3},
		{"Switch", "button", CategoryForms, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.componentType, func(t *testing.T) {
			spec, ok := Lookup(tt.componentType)
			require.True(t, ok)
			assert.Equal(t, tt.componentType, spec.Type)
			assert.Equal(t, tt.element, spec.Element)
			assert.Equal(t, tt.category, spec.Category)
			assert.Len(t, spec.Variants, tt.variants)
			assert.Len(t, spec.Sizes, tt.sizes)
			assert.NotEmpty(t, spec.Props)
		})
	}

	_, ok := Lookup("Carousel")
	assert.False(t, ok)
	_, ok = Lookup("button")
	assert.False(t, ok, "lookup is case sensitive")
}

func TestLookupReturnsCopies(t *testing.T) {
	spec, ok := Lookup("Button")
	require.True(t, ok)
	original := spec.Variants[0].Template

	spec.Variants[0].Template = "mutated"
	spec.Props[0].Name = "mutated"
	spec.Sizes = nil

	again, _ := Lookup("Button")
	assert.Equal(t, original, again.Variants[0].Template)
	assert.NotEqual(t, "mutated", again.Props[0].Name)
	assert.Len(t, again.Sizes, 4)

	specs := Catalog()
	specs[1].Base = "mutated"
	card, _ := Lookup("Card")
	assert.NotEqual(t, "mutated", card.Base)
}

func TestCatalogDefaultsAreDefined(t *testing.T) {
	for _, spec := range Catalog() {
		t.Run(spec.Type, func(t *testing.T) {
			names := make(map[string]bool)
			for _, e := range spec.Variants {
				assert.False(t, names[e.Name], "duplicate variant %q", e.Name)
				names[e.Name] = true
				assert.NotEmpty(t, e.Description, "variant %q", e.Name)
			}
			assert.True(t, names[spec.DefaultVariant], "default variant %q", spec.DefaultVariant)

			sizes := make(map[string]bool)
			for _, e := range spec.Sizes {
				sizes[e.Name] = true
			}
			assert.True(t, sizes[spec.DefaultSize], "default size %q", spec.DefaultSize)
		})
	}
}

func TestLintCatalogIsClean(t *testing.T) {
	assert.Empty(t, LintCatalog())
}
