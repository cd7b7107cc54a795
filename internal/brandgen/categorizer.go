package brandgen

import (
	"sort"
	"strings"
)

// UtilityCategory groups related utility classes
type UtilityCategory string

// Utility categories for organizing generated classes
const (
	CategoryVisual     UtilityCategory = "Visual"
	CategoryLayoutUtil UtilityCategory = "Layout"
	CategoryTypography UtilityCategory = "Typography"
	CategoryEffects    UtilityCategory = "Effects"
	CategoryState      UtilityCategory = "State"
)

// Utility is a single class split into its state prefix and base utility.
// "hover:bg-[#3b82f6]" has Prefix "hover:" and Base "bg-[#3b82f6]".
type Utility struct {
	Raw    string
	Prefix string
	Base   string
}

// ParseUtility splits a class on its last variant separator. Colons inside
// arbitrary values ("bg-[length:400%_400%]") are not separators.
func ParseUtility(class string) Utility {
	depth := 0
	split := -1
	for i, ch := range class {
		switch ch {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				split = i
			}
		}
	}
	if split < 0 {
		return Utility{Raw: class, Base: class}
	}
	return Utility{Raw: class, Prefix: class[:split+1], Base: class[split+1:]}
}

// utilityPrefixes maps utility prefixes to categories. Longest match wins.
var utilityPrefixes = map[string]UtilityCategory{
	// Visual
	"bg":       CategoryVisual,
	"from":     CategoryVisual,
	"via":      CategoryVisual,
	"to":       CategoryVisual,
	"border":   CategoryVisual,
	"rounded":  CategoryVisual,
	"shadow":   CategoryVisual,
	"ring":     CategoryVisual,
	"outline":  CategoryVisual,
	"opacity":  CategoryVisual,
	"accent":   CategoryVisual,
	"fill":     CategoryVisual,
	"stroke":   CategoryVisual,
	"bg-clip":  CategoryVisual,
	"divide":   CategoryVisual,
	"cursor":   CategoryState,
	"disabled": CategoryState,

	// Layout
	"inline":     CategoryLayoutUtil,
	"block":      CategoryLayoutUtil,
	"flex":       CategoryLayoutUtil,
	"grid":       CategoryLayoutUtil,
	"items":      CategoryLayoutUtil,
	"justify":    CategoryLayoutUtil,
	"gap":        CategoryLayoutUtil,
	"space":      CategoryLayoutUtil,
	"p":          CategoryLayoutUtil,
	"px":         CategoryLayoutUtil,
	"py":         CategoryLayoutUtil,
	"pt":         CategoryLayoutUtil,
	"pb":         CategoryLayoutUtil,
	"m":          CategoryLayoutUtil,
	"mx":         CategoryLayoutUtil,
	"my":         CategoryLayoutUtil,
	"w":          CategoryLayoutUtil,
	"h":          CategoryLayoutUtil,
	"min":        CategoryLayoutUtil,
	"max":        CategoryLayoutUtil,
	"relative":   CategoryLayoutUtil,
	"absolute":   CategoryLayoutUtil,
	"fixed":      CategoryLayoutUtil,
	"inset":      CategoryLayoutUtil,
	"overflow":   CategoryLayoutUtil,
	"z":          CategoryLayoutUtil,
	"appearance": CategoryLayoutUtil,

	// Typography
	"font":     CategoryTypography,
	"text":     CategoryTypography,
	"leading":  CategoryTypography,
	"tracking": CategoryTypography,

	// Effects
	"transition": CategoryEffects,
	"duration":   CategoryEffects,
	"ease":       CategoryEffects,
	"animate":    CategoryEffects,
	"transform":  CategoryEffects,
	"translate":  CategoryEffects,
	"scale":      CategoryEffects,
	"rotate":     CategoryEffects,
	"before":     CategoryEffects,
}

// textColorNames are the palette names that turn a text-* utility into a color.
var textColorNames = []string{
	"white", "black", "transparent", "gray", "red", "green", "blue", "yellow",
	"purple", "pink", "indigo", "cyan", "slate",
}

// CategorizeUtility determines the category of a class
func CategorizeUtility(class string) UtilityCategory {
	u := ParseUtility(class)
	base := strings.TrimPrefix(u.Base, "-")

	if strings.HasPrefix(base, "text-") && isColorSuffix(strings.TrimPrefix(base, "text-")) {
		return CategoryVisual
	}

	best := ""
	for prefix := range utilityPrefixes {
		if base != prefix && !strings.HasPrefix(base, prefix+"-") {
			continue
		}
		if len(prefix) > len(best) {
			best = prefix
		}
	}
	if best != "" {
		return utilityPrefixes[best]
	}

	// Default to Layout for unknown utilities
	return CategoryLayoutUtil
}

func isColorSuffix(s string) bool {
	if strings.HasPrefix(s, "[#") {
		return true
	}
	for _, name := range textColorNames {
		if s == name || strings.HasPrefix(s, name+"-") {
			return true
		}
	}
	return false
}

// IsShadowUtility reports whether class sets a box shadow, in any state.
func IsShadowUtility(class string) bool {
	base := ParseUtility(class).Base
	return base == "shadow" || strings.HasPrefix(base, "shadow-")
}

// IsBorderColorUtility reports whether class sets a border color rather
// than a border width or style.
func IsBorderColorUtility(class string) bool {
	base := ParseUtility(class).Base
	if !strings.HasPrefix(base, "border-") {
		return false
	}
	rest := strings.TrimPrefix(base, "border-")

	// Side selectors: border-b, border-b-2, border-x-4
	for _, side := range []string{"t", "r", "b", "l", "x", "y"} {
		if rest == side {
			return false
		}
		if strings.HasPrefix(rest, side+"-") {
			rest = strings.TrimPrefix(rest, side+"-")
			break
		}
	}

	switch rest {
	case "0", "2", "4", "8", "none", "solid", "dashed", "dotted", "double", "hidden", "collapse", "separate":
		return false
	}
	if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "px]") {
		return false
	}
	return true
}

// conflictGroup returns the property group a utility writes, or "" when
// the utility may legitimately repeat. Two utilities of the same group with
// the same prefix override each other.
func conflictGroup(class string) string {
	u := ParseUtility(class)
	base := u.Base
	switch {
	case base == "rounded" || strings.HasPrefix(base, "rounded-"):
		return u.Prefix + "rounded"
	case IsShadowUtility(class):
		return u.Prefix + "shadow"
	case strings.HasPrefix(base, "font-") && isFontWeight(strings.TrimPrefix(base, "font-")):
		return u.Prefix + "font-weight"
	case strings.HasPrefix(base, "px-"):
		return u.Prefix + "px"
	case strings.HasPrefix(base, "py-"):
		return u.Prefix + "py"
	case strings.HasPrefix(base, "p-"):
		return u.Prefix + "p"
	}
	return ""
}

func isFontWeight(s string) bool {
	switch s {
	case "thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black":
		return true
	}
	return false
}

// CategorizeClasses groups a class string by category
func CategorizeClasses(classes string) map[UtilityCategory][]string {
	result := make(map[UtilityCategory][]string)

	for _, class := range strings.Fields(classes) {
		cat := CategorizeUtility(class)
		result[cat] = append(result[cat], class)
	}

	// Sort classes within each category
	for cat := range result {
		sort.Strings(result[cat])
	}

	return result
}
