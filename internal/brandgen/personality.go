package brandgen

import "strings"

// variantRenames lists the variant renames each personality applies.
var variantRenames = map[Personality]map[string]string{
	PersonalityMagical: {
		"magic": "magic-sparkle",
	},
	PersonalityFuturistic: {
		"magic":         "magic-dark",
		"magic-sparkle": "magic-cosmic",
	},
}

// RenameVariant returns the name a variant is published under for p.
// Renames are single step; "magic" never becomes "magic-cosmic".
func RenameVariant(p Personality, name string) (string, bool) {
	target, ok := variantRenames[p][name]
	if !ok {
		return name, false
	}
	return target, true
}

// ApplyPersonality rewrites a class string for p. Professional and unknown
// personalities return the classes unchanged apart from whitespace.
//
// The rewrite is idempotent: applying it to its own output is a no-op.
func ApplyPersonality(p Personality, classes string) string {
	fields := strings.Fields(classes)
	switch p {
	case PersonalityPlayful:
		fields = energize(fields)
	case PersonalityMinimal:
		fields = flatten(fields)
	case PersonalityBold:
		fields = embolden(fields)
	case PersonalityMagical:
		fields = energize(fields)
		fields = mapBase(fields, map[string]string{"shadow-lg": "shadow-2xl"})
	case PersonalityFuturistic:
		fields = mapBase(fields, map[string]string{
			"bg-white":    "bg-gray-900",
			"bg-gray-50":  "bg-gray-800",
			"bg-gray-100": "bg-gray-800",
		})
	}
	return strings.Join(dedupe(fields), " ")
}

// energize widens color transitions to all properties and adds a hover lift
// wherever something transitions.
func energize(fields []string) []string {
	fields = mapBase(fields, map[string]string{"transition-colors": "transition-all"})
	for _, f := range fields {
		base := ParseUtility(f).Base
		if base == "transition" || strings.HasPrefix(base, "transition-") {
			return append(fields, "transform", "hover:scale-105")
		}
	}
	return fields
}

// flatten drops every shadow and neutralizes border colors. State prefixed
// border colors are dropped since the neutral border never changes.
func flatten(fields []string) []string {
	out := fields[:0:0]
	for _, f := range fields {
		switch {
		case IsShadowUtility(f):
			continue
		case IsBorderColorUtility(f):
			if ParseUtility(f).Prefix != "" {
				continue
			}
			out = append(out, "border-gray-200")
		default:
			out = append(out, f)
		}
	}
	return out
}

func embolden(fields []string) []string {
	return mapBase(fields, map[string]string{
		"font-medium":   "font-bold",
		"font-semibold": "font-bold",
		"shadow-sm":     "shadow-lg",
		"shadow-md":     "shadow-xl",
	})
}

// mapBase replaces utilities whose base matches a key, keeping the state prefix.
func mapBase(fields []string, replacements map[string]string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		u := ParseUtility(f)
		if repl, ok := replacements[u.Base]; ok {
			out[i] = u.Prefix + repl
			continue
		}
		out[i] = f
	}
	return out
}

// dedupe keeps the first occurrence of each class.
func dedupe(fields []string) []string {
	seen := make(map[string]bool, len(fields))
	out := fields[:0:0]
	for _, f := range fields {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}
