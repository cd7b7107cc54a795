// Package brandgen generates component style variants from brand configurations.
package brandgen

// Entry is one named template of a variant or size axis.
type Entry struct {
	Name        string
	Description string
	Template    string
}

// ComponentSpec is the static definition of one component type.
// Templates reference tokens as {{NAME}}; see KnownTokens.
type ComponentSpec struct {
	Type           string
	Name           string
	Description    string
	Category       Category
	Element        string
	Base           string
	Variants       []Entry
	Sizes          []Entry
	DefaultVariant string
	DefaultSize    string
	Props          []Prop
}

// clone returns a deep copy so callers can never mutate the registry.
func (s ComponentSpec) clone() ComponentSpec {
	out := s
	out.Variants = append([]Entry(nil), s.Variants...)
	out.Sizes = append([]Entry(nil), s.Sizes...)
	out.Props = append([]Prop(nil), s.Props...)
	return out
}

var (
	propClassName = Prop{Name: "className", Type: "string", Description: "Additional CSS classes"}
	propChildren  = Prop{Name: "children", Type: "ReactNode", Description: "Component content"}
)

func sizeProp(names string) Prop {
	return Prop{Name: "size", Type: "string", Description: "Size (" + names + ")"}
}

func variantProp(names string) Prop {
	return Prop{Name: "variant", Type: "string", Description: "Variant (" + names + ")"}
}

const (
	magicShine     = "relative overflow-hidden before:absolute before:inset-0 before:bg-gradient-to-r before:from-transparent before:to-transparent before:translate-x-[-100%]"
	inputFocusBase = "w-full {{BORDER_RADIUS}} {{FONT_FAMILY}} focus:outline-none focus:ring-2 focus:border-transparent transition-colors duration-200"
)

var standardSizes = []Entry{
	{Name: "sm", Description: "Compact", Template: "px-2 py-1 text-sm"},
	{Name: "md", Description: "Default, follows the brand spacing", Template: "{{SPACING_X}} {{SPACING_Y}} text-base"},
	{Name: "lg", Description: "Large", Template: "px-4 py-3 text-lg"},
}

// catalog is the ordered component registry. It is never mutated.
var catalog = []ComponentSpec{
	{
		Type:        "Button",
		Name:        "Button",
		Description: "Interactive button components with various styles and states",
		Category:    CategoryInteractive,
		Element:     "button",
		Base:        "inline-flex items-center justify-center {{FONT_FAMILY}} font-medium transition-colors duration-200 focus:outline-none focus:ring-2 focus:ring-offset-2 disabled:opacity-50 disabled:cursor-not-allowed",
		Variants: []Entry{
			{Name: "primary", Description: "Solid brand color call to action", Template: "{{BUTTON_RADIUS}} {{PRIMARY_COLOR}} text-white {{SHADOW}} {{PRIMARY_HOVER}} {{PRIMARY_FOCUS}}"},
			{Name: "secondary", Description: "White button with secondary brand accents", Template: "{{BUTTON_RADIUS}} bg-white {{SECONDARY_BORDER}} border {{SECONDARY_TEXT}} {{SHADOW}} hover:bg-gray-50 {{SECONDARY_FOCUS}}"},
			{Name: "outline", Description: "Transparent button with a primary border", Template: "{{BUTTON_RADIUS}} bg-transparent {{PRIMARY_BORDER}} border-2 {{PRIMARY_TEXT}} {{PRIMARY_HOVER}} hover:text-white {{PRIMARY_FOCUS}}"},
			{Name: "ghost", Description: "Borderless low emphasis button", Template: "{{BUTTON_RADIUS}} bg-transparent {{PRIMARY_TEXT}} hover:bg-gray-100 {{PRIMARY_FOCUS}}"},
			{Name: "destructive", Description: "Dangerous or irreversible actions", Template: "{{BUTTON_RADIUS}} bg-red-500 text-white hover:bg-red-600 focus:ring-red-500"},
			{Name: "magic", Description: "Animated gradient with a shine sweep", Template: "{{BUTTON_RADIUS}} bg-gradient-to-r from-purple-600 via-pink-600 to-blue-600 text-white shadow-lg hover:shadow-xl focus:ring-purple-500 animate-gradient-x bg-[length:400%_400%] " + magicShine + " before:via-white/20 hover:before:translate-x-[100%] before:transition-transform before:duration-700"},
			{Name: "magic-dark", Description: "Dark cosmic gradient with a cyan shine", Template: "{{BUTTON_RADIUS}} bg-gradient-to-r from-gray-900 via-purple-900 to-indigo-900 text-white shadow-lg hover:shadow-xl focus:ring-indigo-500 animate-pulse " + magicShine + " before:via-cyan-400/30 hover:before:translate-x-[100%] before:transition-transform before:duration-1000"},
			{Name: "magic-rainbow", Description: "Full spectrum animated gradient", Template: "{{BUTTON_RADIUS}} bg-gradient-to-r from-red-500 via-yellow-500 via-green-500 via-blue-500 via-indigo-500 to-purple-500 text-white shadow-lg hover:shadow-2xl focus:ring-pink-500 animate-gradient-xy bg-[length:400%_400%] " + magicShine + " before:via-white/25 before:translate-y-[-100%] hover:before:translate-x-[100%] hover:before:translate-y-[100%] before:transition-transform before:duration-1000"},
		},
		Sizes: []Entry{
			{Name: "sm", Description: "Small", Template: "px-3 py-1.5 text-sm"},
			{Name: "md", Description: "Default, follows the brand spacing", Template: "{{SPACING_X}} {{SPACING_Y}} text-base"},
			{Name: "lg", Description: "Large", Template: "px-6 py-3 text-lg"},
			{Name: "xl", Description: "Extra large", Template: "px-8 py-4 text-xl"},
		},
		DefaultVariant: "primary",
		DefaultSize:    "md",
		Props: []Prop{
			{Name: "children", Type: "ReactNode", Description: "Button content"},
			{Name: "onClick", Type: "function", Description: "Click handler"},
			{Name: "disabled", Type: "boolean", Description: "Disabled state"},
			variantProp("primary, secondary, outline, ghost, destructive, magic, magic-dark, magic-rainbow"),
			sizeProp("sm, md, lg, xl"),
			propClassName,
		},
	},
	{
		Type:        "Card",
		Name:        "Card",
		Description: "Container components for displaying content",
		Category:    CategoryLayout,
		Element:     "div",
		Base:        "bg-white {{BORDER_RADIUS}} border border-gray-200 {{FONT_FAMILY}}",
		Variants: []Entry{
			{Name: "default", Description: "Flat surface with the brand shadow", Template: "{{SHADOW}}"},
			{Name: "elevated", Description: "Raised surface", Template: "{{ELEVATED_SHADOW}}"},
			{Name: "outlined", Description: "Heavier brand colored border", Template: "border-2 {{PRIMARY_BORDER}}"},
			{Name: "interactive", Description: "Clickable card that lifts on hover", Template: "{{SHADOW}} cursor-pointer transition-all duration-200 hover:shadow-lg hover:scale-105"},
			{Name: "magic", Description: "Pastel gradient with a shimmer", Template: "shadow-lg bg-gradient-to-br from-purple-50 via-pink-50 to-blue-50 border-purple-200 " + magicShine + " before:via-purple-200/50 before:animate-shimmer before:duration-2000"},
			{Name: "magic-dark", Description: "Dark gradient with a cyan shimmer", Template: "shadow-xl bg-gradient-to-br from-gray-900 via-purple-900/50 to-indigo-900 border-purple-500/30 text-white " + magicShine + " before:via-cyan-400/20 before:animate-shimmer before:duration-3000"},
			{Name: "magic-glow", Description: "Soft glowing gradient border", Template: "shadow-2xl bg-gradient-to-br from-white via-blue-50 to-purple-50 border-2 border-transparent bg-clip-padding relative overflow-hidden animate-pulse-slow before:absolute before:inset-0 before:bg-gradient-to-45deg before:from-blue-400/20 before:via-purple-400/20 before:to-pink-400/20 before:animate-spin-slow"},
		},
		Sizes: []Entry{
			{Name: "none", Description: "No padding", Template: "p-0"},
			{Name: "sm", Description: "Small padding", Template: "p-4"},
			{Name: "md", Description: "Default padding", Template: "p-6"},
			{Name: "lg", Description: "Large padding", Template: "p-8"},
		},
		DefaultVariant: "default",
		DefaultSize:    "md",
		Props: []Prop{
			{Name: "children", Type: "ReactNode", Description: "Card content"},
			variantProp("default, elevated, outlined, interactive, magic, magic-dark, magic-glow"),
			{Name: "padding", Type: "string", Description: "Card padding (none, sm, md, lg)"},
			{Name: "title", Type: "string", Description: "Optional header title"},
			{Name: "onClick", Type: "function", Description: "Click handler for interactive cards"},
			propClassName,
		},
	},
	{
		Type:        "Badge",
		Name:        "Badge",
		Description: "Small status indicators and labels",
		Category:    CategoryDisplay,
		Element:     "span",
		Base:        "inline-flex items-center {{BORDER_RADIUS}} {{FONT_FAMILY}} font-medium",
		Variants: []Entry{
			{Name: "primary", Description: "Primary brand color", Template: "{{PRIMARY_COLOR}} text-white"},
			{Name: "secondary", Description: "Secondary brand color", Template: "{{SECONDARY_COLOR}} text-white"},
			{Name: "outline", Description: "Outlined label", Template: "border {{PRIMARY_BORDER}} {{PRIMARY_TEXT}} bg-transparent"},
			{Name: "destructive", Description: "Error or removal state", Template: "bg-red-500 text-white"},
			{Name: "success", Description: "Positive state", Template: "bg-green-500 text-white"},
			{Name: "warning", Description: "Needs attention", Template: "bg-yellow-500 text-white"},
			{Name: "magic", Description: "Animated gradient label", Template: "bg-gradient-to-r from-purple-500 via-pink-500 to-indigo-500 text-white animate-gradient-x bg-[length:200%_200%] shadow-lg"},
		},
		Sizes: []Entry{
			{Name: "sm", Description: "Small", Template: "px-2 py-1 text-xs"},
			{Name: "md", Description: "Default, follows the brand spacing", Template: "{{SPACING_X}} {{SPACING_Y}} text-sm"},
			{Name: "lg", Description: "Large", Template: "px-4 py-2 text-base"},
		},
		DefaultVariant: "primary",
		DefaultSize:    "md",
		Props: []Prop{
			{Name: "children", Type: "ReactNode", Description: "Badge content"},
			variantProp("primary, secondary, outline, destructive, success, warning, magic"),
			sizeProp("sm, md, lg"),
			propClassName,
		},
	},
	{
		Type:        "Alert",
		Name:        "Alert",
		Description: "Notification and alert components",
		Category:    CategoryFeedback,
		Element:     "div",
		Base:        "{{BORDER_RADIUS}} border {{FONT_FAMILY}}",
		Variants: []Entry{
			{Name: "default", Description: "Neutral information", Template: "bg-gray-50 border-gray-200 text-gray-800"},
			{Name: "destructive", Description: "Errors", Template: "bg-red-50 border-red-200 text-red-800"},
			{Name: "success", Description: "Confirmations", Template: "bg-green-50 border-green-200 text-green-800"},
			{Name: "warning", Description: "Warnings", Template: "bg-yellow-50 border-yellow-200 text-yellow-800"},
			{Name: "magic", Description: "Gradient notice with a shimmer", Template: "bg-gradient-to-r from-purple-100 via-pink-100 to-blue-100 border-purple-300 text-purple-900 " + magicShine + " before:via-purple-200/50 before:animate-shimmer before:duration-2000"},
		},
		Sizes: []Entry{
			{Name: "sm", Description: "Compact", Template: "p-3 text-sm"},
			{Name: "md", Description: "Default", Template: "p-4 text-base"},
			{Name: "lg", Description: "Spacious", Template: "p-6 text-lg"},
		},
		DefaultVariant: "default",
		DefaultSize:    "md",
		Props: []Prop{
			{Name: "title", Type: "string", Description: "Optional alert title"},
			{Name: "children", Type: "ReactNode", Description: "Alert content"},
			variantProp("default, destructive, success, warning, magic"),
			{Name: "onClose", Type: "function", Description: "Close handler function"},
			propClassName,
		},
	},
	{
		Type:        "Input",
		Name:        "Input",
		Description: "Form input components",
		Category:    CategoryForms,
		Element:     "input",
		Base:        inputFocusBase,
		Variants: []Entry{
			{Name: "default", Description: "Bordered field", Template: "border border-gray-300 bg-white {{PRIMARY_FOCUS}}"},
			{Name: "filled", Description: "Tinted field without a visible border", Template: "border border-transparent bg-gray-100 focus:bg-white {{PRIMARY_FOCUS}}"},
			{Name: "outlined", Description: "Brand colored border", Template: "border-2 {{PRIMARY_BORDER}} bg-transparent {{PRIMARY_FOCUS}}"},
			{Name: "magic", Description: "Gradient field with a focus shimmer", Template: "border-2 border-purple-300 focus:ring-purple-500 bg-gradient-to-r from-purple-50 to-pink-50 focus:from-purple-100 focus:to-pink-100 " + magicShine + " before:via-purple-200/30 focus:before:animate-shimmer before:duration-1500"},
		},
		Sizes:          standardSizes,
		DefaultVariant: "default",
		DefaultSize:    "md",
		Props: []Prop{
			{Name: "label", Type: "string", Description: "Input label"},
			{Name: "error", Type: "string", Description: "Error message"},
			{Name: "placeholder", Type: "string", Description: "Placeholder text"},
			{Name: "value", Type: "string", Description: "Input value"},
			{Name: "onChange", Type: "function", Description: "Change handler"},
			{Name: "required", Type: "boolean", Description: "Required field indicator"},
			variantProp("default, filled, outlined, magic"),
			sizeProp("sm, md, lg"),
			propClassName,
		},
	},
	{
		Type:        "Modal",
		Name:        "Modal",
		Description: "Overlay dialog components",
		Category:    CategoryOverlay,
		Element:     "div",
		Base:        "relative w-full bg-white overflow-hidden text-left align-middle transition-all transform {{SHADOW}} {{FONT_FAMILY}}",
		Variants: []Entry{
			{Name: "default", Description: "Standard dialog", Template: "{{BORDER_RADIUS}} my-8 p-6"},
			{Name: "centered", Description: "Vertically centered dialog", Template: "{{BORDER_RADIUS}} mx-auto my-auto p-6 text-center"},
			{Name: "fullscreen", Description: "Covers the whole viewport", Template: "rounded-none w-screen h-screen p-8"},
		},
		Sizes: []Entry{
			{Name: "sm", Description: "Narrow", Template: "max-w-sm"},
			{Name: "md", Description: "Default width", Template: "max-w-md"},
			{Name: "lg", Description: "Wide", Template: "max-w-lg"},
			{Name: "xl", Description: "Extra wide", Template: "max-w-xl"},
		},
		DefaultVariant: "default",
		DefaultSize:    "md",
		Props: []Prop{
			{Name: "isOpen", Type: "boolean", Description: "Whether the modal is visible"},
			{Name: "onClose", Type: "function", Description: "Close handler"},
			{Name: "title", Type: "string", Description: "Dialog title"},
			propChildren,
			{Name: "footer", Type: "ReactNode", Description: "Optional footer actions"},
			variantProp("default, centered, fullscreen"),
			sizeProp("sm, md, lg, xl"),
		},
	},
	{
		Type:        "DatePicker",
		Name:        "DatePicker",
		Description: "Date selection input components",
		Category:    CategoryForms,
		Element:     "input",
		Base:        inputFocusBase + " cursor-pointer",
		Variants: []Entry{
			{Name: "default", Description: "Bordered field", Template: "border border-gray-300 bg-white {{PRIMARY_FOCUS}}"},
			{Name: "outlined", Description: "Brand colored border", Template: "border-2 {{PRIMARY_BORDER}} bg-white {{PRIMARY_FOCUS}}"},
			{Name: "filled", Description: "Tinted field", Template: "border border-transparent bg-gray-100 focus:bg-white {{PRIMARY_FOCUS}}"},
			{Name: "magic", Description: "Gradient field", Template: "border-2 border-purple-300 focus:ring-purple-500 bg-gradient-to-r from-purple-50 to-pink-50"},
		},
		Sizes:          standardSizes,
		DefaultVariant: "default",
		DefaultSize:    "md",
		Props: []Prop{
			{Name: "label", Type: "string", Description: "Date picker label"},
			{Name: "value", Type: "string", Description: "Selected date value (YYYY-MM-DD)"},
			{Name: "onChange", Type: "function", Description: "Change handler"},
			variantProp("default, outlined, filled, magic"),
			sizeProp("sm, md, lg"),
			propClassName,
		},
	},
	{
		Type:        "ColorPicker",
		Name:        "ColorPicker",
		Description: "Color selection input components",
		Category:    CategoryForms,
		Element:     "input",
		Base:        "{{BORDER_RADIUS}} focus:outline-none focus:ring-2 focus:border-transparent transition-colors duration-200 cursor-pointer",
		Variants: []Entry{
			{Name: "default", Description: "Bordered swatch", Template: "border border-gray-300 {{PRIMARY_FOCUS}}"},
			{Name: "compact", Description: "Tight swatch", Template: "border border-gray-200 p-0.5 {{PRIMARY_FOCUS}}"},
			{Name: "advanced", Description: "Raised swatch with a brand border", Template: "border-2 {{PRIMARY_BORDER}} p-1 {{SHADOW}} {{PRIMARY_FOCUS}}"},
		},
		Sizes: []Entry{
			{Name: "sm", Description: "Small swatch", Template: "w-8 h-8"},
			{Name: "md", Description: "Default swatch", Template: "w-12 h-12"},
			{Name: "lg", Description: "Large swatch", Template: "w-16 h-16"},
		},
		DefaultVariant: "default",
		DefaultSize:    "md",
		Props: []Prop{
			{Name: "label", Type: "string", Description: "Color picker label"},
			{Name: "value", Type: "string", Description: "Selected color value (hex)"},
			{Name: "onChange", Type: "function", Description: "Change handler"},
			{Name: "showHex", Type: "boolean", Description: "Show hex input field"},
			variantProp("default, compact, advanced"),
			sizeProp("sm, md, lg"),
			propClassName,
		},
	},
	{
		Type:        "Checkbox",
		Name:        "Checkbox",
		Description: "Checkbox input components",
		Category:    CategoryForms,
		Element:     "input",
		Base:        "{{BORDER_RADIUS}} border-2 focus:outline-none focus:ring-2 focus:ring-offset-2 transition-colors duration-200",
		Variants: []Entry{
			{Name: "default", Description: "Brand filled when checked", Template: "{{PRIMARY_COLOR}} border-gray-300 text-white {{PRIMARY_FOCUS}}"},
			{Name: "filled", Description: "Solid brand box", Template: "{{PRIMARY_COLOR}} {{PRIMARY_BORDER}} text-white {{PRIMARY_FOCUS}}"},
			{Name: "outlined", Description: "White box with a brand border", Template: "bg-white {{PRIMARY_BORDER}} {{PRIMARY_TEXT}} {{PRIMARY_FOCUS}}"},
		},
		Sizes: []Entry{
			{Name: "sm", Description: "Small", Template: "w-4 h-4"},
			{Name: "md", Description: "Default", Template: "w-5 h-5"},
			{Name: "lg", Description: "Large", Template: "w-6 h-6"},
		},
		DefaultVariant: "default",
		DefaultSize:    "md",
		Props: []Prop{
			{Name: "label", Type: "string", Description: "Checkbox label"},
			{Name: "checked", Type: "boolean", Description: "Checked state"},
			{Name: "onChange", Type: "function", Description: "Change handler"},
			{Name: "disabled", Type: "boolean", Description: "Disabled state"},
			variantProp("default, filled, outlined"),
			sizeProp("sm, md, lg"),
			propClassName,
		},
	},
	{
		Type:        "Tabs",
		Name:        "Tabs",
		Description: "Tab navigation components",
		Category:    CategoryNavigation,
		Element:     "div",
		Base:        "flex {{FONT_FAMILY}} font-medium",
		Variants: []Entry{
			{Name: "default", Description: "Bottom border strip", Template: "border-b border-gray-200"},
			{Name: "pills", Description: "Segmented pill group", Template: "bg-gray-100 {{BORDER_RADIUS}} p-1 {{SPACING_GAP}}"},
			{Name: "underline", Description: "Brand colored underline", Template: "border-b-2 {{PRIMARY_BORDER}} {{PRIMARY_TEXT}}"},
		},
		Sizes: []Entry{
			{Name: "sm", Description: "Small labels", Template: "text-sm"},
			{Name: "md", Description: "Default labels", Template: "text-base"},
			{Name: "lg", Description: "Large labels", Template: "text-lg"},
		},
		DefaultVariant: "default",
		DefaultSize:    "md",
		Props: []Prop{
			{Name: "tabs", Type: "array", Description: "Array of tab objects with label and content"},
			{Name: "defaultTab", Type: "number", Description: "Default active tab index"},
			variantProp("default, pills, underline"),
			sizeProp("sm, md, lg"),
			propClassName,
		},
	},
	{
		Type:        "Slider",
		Name:        "Slider",
		Description: "Range slider input components",
		Category:    CategoryForms,
		Element:     "input",
		Base:        "w-full {{BORDER_RADIUS}} appearance-none cursor-pointer focus:outline-none focus:ring-2 focus:ring-offset-2",
		Variants: []Entry{
			{Name: "default", Description: "Neutral track", Template: "bg-gray-200 {{PRIMARY_FOCUS}}"},
			{Name: "filled", Description: "Brand colored track", Template: "{{PRIMARY_COLOR}} {{PRIMARY_FOCUS}}"},
			{Name: "gradient", Description: "Gradient track", Template: "bg-gradient-to-r from-purple-500 via-pink-500 to-blue-500 {{PRIMARY_FOCUS}}"},
		},
		Sizes: []Entry{
			{Name: "sm", Description: "Thin track", Template: "h-1"},
			{Name: "md", Description: "Default track", Template: "h-2"},
			{Name: "lg", Description: "Thick track", Template: "h-3"},
		},
		DefaultVariant: "default",
		DefaultSize:    "md",
		Props: []Prop{
			{Name: "value", Type: "number", Description: "Current slider value"},
			{Name: "onChange", Type: "function", Description: "Change handler"},
			{Name: "min", Type: "number", Description: "Minimum value"},
			{Name: "max", Type: "number", Description: "Maximum value"},
			{Name: "step", Type: "number", Description: "Step increment"},
			variantProp("default, filled, gradient"),
			sizeProp("sm, md, lg"),
			propClassName,
		},
	},
	{
		Type:        "Switch",
		Name:        "Switch",
		Description: "Toggle switch components",
		Category:    CategoryForms,
		Element:     "button",
		Base:        "relative inline-flex items-center transition-colors duration-200 focus:outline-none focus:ring-2 focus:ring-offset-2 cursor-pointer",
		Variants: []Entry{
			{Name: "default", Description: "Brand colored track", Template: "{{BORDER_RADIUS}} {{PRIMARY_COLOR}} {{PRIMARY_FOCUS}}"},
			{Name: "ios", Description: "Rounded green track", Template: "rounded-full bg-green-500 focus:ring-green-500"},
			{Name: "android", Description: "Rounded brand track with a shadow", Template: "rounded-full {{PRIMARY_COLOR}} {{SHADOW}} {{PRIMARY_FOCUS}}"},
		},
		Sizes: []Entry{
			{Name: "sm", Description: "Small", Template: "h-5 w-9"},
			{Name: "md", Description: "Default", Template: "h-6 w-11"},
			{Name: "lg", Description: "Large", Template: "h-7 w-14"},
		},
		DefaultVariant: "default",
		DefaultSize:    "md",
		Props: []Prop{
			{Name: "checked", Type: "boolean", Description: "Checked state"},
			{Name: "onChange", Type: "function", Description: "Change handler"},
			{Name: "disabled", Type: "boolean", Description: "Disabled state"},
			variantProp("default, ios, android"),
			sizeProp("sm, md, lg"),
			propClassName,
		},
	},
}

var catalogIndex = func() map[string]int {
	idx := make(map[string]int, len(catalog))
	for i, spec := range catalog {
		idx[spec.Type] = i
	}
	return idx
}()

// ComponentTypes returns every registered component type in catalog order.
func ComponentTypes() []string {
	types := make([]string, len(catalog))
	for i, spec := range catalog {
		types[i] = spec.Type
	}
	return types
}

// Lookup returns a copy of the component definition registered for componentType.
func Lookup(componentType string) (ComponentSpec, bool) {
	i, ok := catalogIndex[componentType]
	if !ok {
		return ComponentSpec{}, false
	}
	return catalog[i].clone(), true
}

// Catalog returns copies of every spec in catalog order.
func Catalog() []ComponentSpec {
	specs := make([]ComponentSpec, len(catalog))
	for i, spec := range catalog {
		specs[i] = spec.clone()
	}
	return specs
}
