package brandgen

// BorderRadius selects the corner rounding of the whole library.
type BorderRadius string

// Border radius options.
const (
	RadiusSmall  BorderRadius = "small"
	RadiusMedium BorderRadius = "medium"
	RadiusLarge  BorderRadius = "large"
)

// Spacing selects the padding scale.
type Spacing string

// Spacing options.
const (
	SpacingTight  Spacing = "tight"
	SpacingMedium Spacing = "medium"
	SpacingLoose  Spacing = "loose"
)

// ButtonStyle selects the button corner treatment.
type ButtonStyle string

// Button style options.
const (
	ButtonRounded ButtonStyle = "rounded"
	ButtonSquare  ButtonStyle = "square"
	ButtonPill    ButtonStyle = "pill"
)

// ShadowStyle selects the elevation intensity.
type ShadowStyle string

// Shadow style options.
const (
	ShadowNone      ShadowStyle = "none"
	ShadowSubtle    ShadowStyle = "subtle"
	ShadowProminent ShadowStyle = "prominent"
)

// Personality drives the class rewrite pass applied after substitution.
type Personality string

// Brand personalities.
const (
	PersonalityProfessional Personality = "professional"
	PersonalityPlayful      Personality = "playful"
	PersonalityMinimal      Personality = "minimal"
	PersonalityBold         Personality = "bold"
	PersonalityMagical      Personality = "magical"
	PersonalityFuturistic   Personality = "futuristic"
)

// FontFamilies is the allow-list offered by the brand wizard.
var FontFamilies = []string{
	"Inter",
	"Roboto",
	"Open Sans",
	"Poppins",
	"Montserrat",
	"Lato",
	"Source Sans Pro",
}

// BrandConfig is the user supplied style preference record.
// It is passed by value; generation never retains or mutates it.
type BrandConfig struct {
	CompanyName      string       `json:"companyName" yaml:"companyName" koanf:"companyName" validate:"required,max=100"`
	PrimaryColor     string       `json:"primaryColor" yaml:"primaryColor" koanf:"primaryColor" validate:"required,rrggbb"`
	SecondaryColor   string       `json:"secondaryColor" yaml:"secondaryColor" koanf:"secondaryColor" validate:"required,rrggbb"`
	AccentColor      string       `json:"accentColor" yaml:"accentColor" koanf:"accentColor" validate:"required,rrggbb"`
	FontFamily       string       `json:"fontFamily" yaml:"fontFamily" koanf:"fontFamily" validate:"required"`
	BorderRadius     BorderRadius `json:"borderRadius" yaml:"borderRadius" koanf:"borderRadius" validate:"required,oneof=small medium large"`
	Spacing          Spacing      `json:"spacing" yaml:"spacing" koanf:"spacing" validate:"required,oneof=tight medium loose"`
	ButtonStyle      ButtonStyle  `json:"buttonStyle" yaml:"buttonStyle" koanf:"buttonStyle" validate:"required,oneof=rounded square pill"`
	ShadowStyle      ShadowStyle  `json:"shadowStyle" yaml:"shadowStyle" koanf:"shadowStyle" validate:"required,oneof=none subtle prominent"`
	BrandPersonality Personality  `json:"brandPersonality" yaml:"brandPersonality" koanf:"brandPersonality" validate:"required,oneof=professional playful minimal bold magical futuristic"`
}

// DefaultBrandConfig returns the values the brand wizard starts from.
func DefaultBrandConfig() BrandConfig {
	return BrandConfig{
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

// Category groups components for display and export
type Category string

// Component categories
const (
	CategoryInteractive Category = "Interactive"
	CategoryLayout      Category = "Layout"
	CategoryDisplay     Category = "Display"
	CategoryFeedback    Category = "Feedback"
	CategoryForms       Category = "Forms"
	CategoryOverlay     Category = "Overlay"
	CategoryNavigation  Category = "Navigation"
)

// VariantAxes holds the generated class strings per axis.
// Size is nil for components without a size axis.
type VariantAxes struct {
	Variant map[string]string `json:"variant" yaml:"variant"`
	Size    map[string]string `json:"size,omitempty" yaml:"size,omitempty"`
}

// DefaultVariants names the selections used when a caller picks none.
type DefaultVariants struct {
	Variant string `json:"variant" yaml:"variant"`
	Size    string `json:"size,omitempty" yaml:"size,omitempty"`
}

// VariantOrder keeps the catalog order of the axis keys, which maps lose.
type VariantOrder struct {
	Variants []string
	Sizes    []string
}

// VariantConfig is the generated base/variant/size bundle for one component
type VariantConfig struct {
	BaseClasses     string          `json:"baseClasses" yaml:"baseClasses"`
	Variants        VariantAxes     `json:"variants" yaml:"variants"`
	DefaultVariants DefaultVariants `json:"defaultVariants" yaml:"defaultVariants"`
	Order           VariantOrder    `json:"-" yaml:"-"`
}

// Prop documents a property of an exported component.
type Prop struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
}

// VariantMeta is display metadata for a single variant
type VariantMeta struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Props       []Prop `json:"props,omitempty" yaml:"props,omitempty"`
}

// ComponentData is one entry of the generated library
type ComponentData struct {
	Name          string                 `json:"name" yaml:"name"`
	Description   string                 `json:"description" yaml:"description"`
	Category      Category               `json:"category" yaml:"category"`
	Element       string                 `json:"element" yaml:"element"`
	VariantConfig VariantConfig          `json:"variantConfig" yaml:"variantConfig"`
	Variants      map[string]VariantMeta `json:"variants" yaml:"variants"`
}

// ComponentLibrary is the complete generation output for one BrandConfig
type ComponentLibrary struct {
	Components  map[string]ComponentData `json:"components" yaml:"components"`
	BrandConfig BrandConfig              `json:"brandConfig" yaml:"brandConfig"`
}

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows library statistics only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)
