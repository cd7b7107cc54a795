package brandgen

import "fmt"

// Placeholder names that templates may reference as {{NAME}}.
const (
	TokenPrimaryColor    = "PRIMARY_COLOR"
	TokenSecondaryColor  = "SECONDARY_COLOR"
	TokenAccentColor     = "ACCENT_COLOR"
	TokenPrimaryText     = "PRIMARY_TEXT"
	TokenSecondaryText   = "SECONDARY_TEXT"
	TokenAccentText      = "ACCENT_TEXT"
	TokenPrimaryBorder   = "PRIMARY_BORDER"
	TokenSecondaryBorder = "SECONDARY_BORDER"
	TokenAccentBorder    = "ACCENT_BORDER"
	TokenPrimaryHover    = "PRIMARY_HOVER"
	TokenSecondaryHover  = "SECONDARY_HOVER"
	TokenAccentHover     = "ACCENT_HOVER"
	TokenPrimaryFocus    = "PRIMARY_FOCUS"
	TokenSecondaryFocus  = "SECONDARY_FOCUS"
	TokenAccentFocus     = "ACCENT_FOCUS"
	TokenBorderRadius    = "BORDER_RADIUS"
	TokenButtonRadius    = "BUTTON_RADIUS"
	TokenSpacingX        = "SPACING_X"
	TokenSpacingY        = "SPACING_Y"
	TokenSpacingGap      = "SPACING_GAP"
	TokenShadow          = "SHADOW"
	TokenElevatedShadow  = "ELEVATED_SHADOW"
	TokenFontFamily      = "FONT_FAMILY"
)

// HoverDarkenPercent is how much darker hover backgrounds are than the brand color.
const HoverDarkenPercent = 10

// SpacingTokens is the resolved padding/gap scale.
type SpacingTokens struct {
	X   string
	Y   string
	Gap string
}

// ColorTokens are the utility classes derived from one brand color.
type ColorTokens struct {
	Hex    string
	Bg     string
	Text   string
	Border string
	Hover  string
	Focus  string
}

// ResolvedTokens is the fixed record of semantic tokens for one BrandConfig
type ResolvedTokens struct {
	Radius         string
	ButtonRadius   string
	Spacing        SpacingTokens
	Shadow         string
	ElevatedShadow string
	Font           string
	Primary        ColorTokens
	Secondary      ColorTokens
	Accent         ColorTokens
}

// Radius maps a border radius preference to its class. Unknown values
// resolve like medium.
func Radius(r BorderRadius) string {
	switch r {
	case RadiusSmall:
		return "rounded"
	case RadiusMedium:
		return "rounded-lg"
	case RadiusLarge:
		return "rounded-xl"
	default:
		return "rounded-lg"
	}
}

// SpacingFor maps a spacing preference to padding and gap classes.
func SpacingFor(s Spacing) SpacingTokens {
	switch s {
	case SpacingTight:
		return SpacingTokens{X: "px-3", Y: "py-1.5", Gap: "gap-2"}
	case SpacingMedium:
		return SpacingTokens{X: "px-4", Y: "py-2", Gap: "gap-4"}
	case SpacingLoose:
		return SpacingTokens{X: "px-6", Y: "py-3", Gap: "gap-6"}
	default:
		return SpacingTokens{X: "px-4", Y: "py-2", Gap: "gap-4"}
	}
}

// Shadow maps a shadow preference to its class; none resolves to "".
func Shadow(s ShadowStyle) string {
	switch s {
	case ShadowNone:
		return ""
	case ShadowSubtle:
		return "shadow-sm"
	case ShadowProminent:
		return "shadow-lg"
	default:
		return "shadow-sm"
	}
}

// ElevatedShadow is the shadow one step above Shadow, used by raised surfaces.
func ElevatedShadow(s ShadowStyle) string {
	switch Shadow(s) {
	case "shadow-sm":
		return "shadow-lg"
	case "shadow-lg":
		return "shadow-xl"
	default:
		return "shadow-md"
	}
}

// ButtonRadius maps a button style to its corner class. Rounded and unknown
// styles follow the library radius.
func ButtonRadius(style ButtonStyle, r BorderRadius) string {
	switch style {
	case ButtonSquare:
		return "rounded-none"
	case ButtonPill:
		return "rounded-full"
	default:
		return Radius(r)
	}
}

// FontToken returns the arbitrary-value font family class.
func FontToken(family string) string {
	return fmt.Sprintf("font-['%s']", family)
}

// ColorTokensFor derives the utility classes for one brand color.
func ColorTokensFor(hex string) ColorTokens {
	return ColorTokens{
		Hex:    hex,
		Bg:     arbitrary("bg", hex),
		Text:   arbitrary("text", hex),
		Border: arbitrary("border", hex),
		Hover:  arbitrary("hover:bg", Darken(hex, HoverDarkenPercent)),
		Focus:  arbitrary("focus:ring", hex),
	}
}

func arbitrary(prefix, hex string) string {
	return prefix + "-[" + hex + "]"
}

// Resolve computes every token for cfg. It never fails.
func Resolve(cfg BrandConfig) ResolvedTokens {
	return ResolvedTokens{
		Radius:         Radius(cfg.BorderRadius),
		ButtonRadius:   ButtonRadius(cfg.ButtonStyle, cfg.BorderRadius),
		Spacing:        SpacingFor(cfg.Spacing),
		Shadow:         Shadow(cfg.ShadowStyle),
		ElevatedShadow: ElevatedShadow(cfg.ShadowStyle),
		Font:           FontToken(cfg.FontFamily),
		Primary:        ColorTokensFor(cfg.PrimaryColor),
		Secondary:      ColorTokensFor(cfg.SecondaryColor),
		Accent:         ColorTokensFor(cfg.AccentColor),
	}
}

// Placeholders returns the value of every known token keyed by name.
func (t ResolvedTokens) Placeholders() map[string]string {
	return map[string]string{
		TokenPrimaryColor:    t.Primary.Bg,
		TokenSecondaryColor:  t.Secondary.Bg,
		TokenAccentColor:     t.Accent.Bg,
		TokenPrimaryText:     t.Primary.Text,
		TokenSecondaryText:   t.Secondary.Text,
		TokenAccentText:      t.Accent.Text,
		TokenPrimaryBorder:   t.Primary.Border,
		TokenSecondaryBorder: t.Secondary.Border,
		TokenAccentBorder:    t.Accent.Border,
		TokenPrimaryHover:    t.Primary.Hover,
		TokenSecondaryHover:  t.Secondary.Hover,
		TokenAccentHover:     t.Accent.Hover,
		TokenPrimaryFocus:    t.Primary.Focus,
		TokenSecondaryFocus:  t.Secondary.Focus,
		TokenAccentFocus:     t.Accent.Focus,
		TokenBorderRadius:    t.Radius,
		TokenButtonRadius:    t.ButtonRadius,
		TokenSpacingX:        t.Spacing.X,
		TokenSpacingY:        t.Spacing.Y,
		TokenSpacingGap:      t.Spacing.Gap,
		TokenShadow:          t.Shadow,
		TokenElevatedShadow:  t.ElevatedShadow,
		TokenFontFamily:      t.Font,
	}
}

// KnownTokens returns the set of placeholder names Resolve fills.
func KnownTokens() map[string]bool {
	known := make(map[string]bool)
	for name := range (ResolvedTokens{}).Placeholders() {
		known[name] = true
	}
	return known
}
