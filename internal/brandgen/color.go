package brandgen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether s is a #RRGGBB color.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// AdjustBrightness shifts every channel of a #RRGGBB color by
// round(2.55*percent) and clamps to [0,255]. Positive percent lightens.
//
// The input must be a valid #RRGGBB string. Anything else yields an
// arbitrary (but well-formed) color rather than an error.
func AdjustBrightness(hex string, percent float64) string {
	num, _ := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	amt := jsRound(2.55 * percent)

	r := clampChannel(int(num>>16&0xFF) + amt)
	g := clampChannel(int(num>>8&0xFF) + amt)
	b := clampChannel(int(num&0xFF) + amt)

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Darken returns hex darkened by percent. Positive percent always darkens;
// a negative percent lightens.
func Darken(hex string, percent float64) string {
	return AdjustBrightness(hex, -percent)
}

// jsRound rounds half toward positive infinity.
func jsRound(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
