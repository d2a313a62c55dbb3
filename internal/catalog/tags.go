package catalog

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// TagColor is a background/text/border triple used by the UI
type TagColor struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Border     string `json:"border"`
}

func triple(bg, text, border string) TagColor {
	return TagColor{Background: bg, Text: text, Border: border}
}

// tagColors covers the well-known tags. Unknown tags fall through to a
// deterministic hash-derived HSL triple so the table never has to grow.
var tagColors = map[string]TagColor{
	"fantasy":         triple("#ede9fe", "#6d28d9", "#c4b5fd"),
	"sci-fi":          triple("#e0f2fe", "#0369a1", "#7dd3fc"),
	"science fiction": triple("#e0f2fe", "#0369a1", "#7dd3fc"),
	"horror":          triple("#fee2e2", "#b91c1c", "#fca5a5"),
	"thriller":        triple("#fef3c7", "#b45309", "#fcd34d"),
	"mystery":         triple("#e0e7ff", "#4338ca", "#a5b4fc"),
	"romance":         triple("#fce7f3", "#be185d", "#f9a8d4"),
	"drama":           triple("#fae8ff", "#a21caf", "#f0abfc"),
	"comedy":          triple("#fef9c3", "#a16207", "#fde047"),
	"action":          triple("#ffedd5", "#c2410c", "#fdba74"),
	"adventure":       triple("#dcfce7", "#15803d", "#86efac"),
	"western":         triple("#fef3c7", "#92400e", "#fcd34d"),
	"crime":           triple("#f3f4f6", "#374151", "#d1d5db"),
	"noir":            triple("#e5e7eb", "#1f2937", "#9ca3af"),
	"biography":       triple("#f0fdf4", "#166534", "#bbf7d0"),
	"history":         triple("#fdf4ff", "#86198f", "#f5d0fe"),
	"non-fiction":     triple("#f0f9ff", "#075985", "#bae6fd"),
	"poetry":          triple("#fdf2f8", "#9d174d", "#fbcfe8"),
	"classic":         triple("#fffbeb", "#92400e", "#fde68a"),
	"modern":          triple("#ecfeff", "#155e75", "#a5f3fc"),
	"vintage":         triple("#fef3c7", "#78350f", "#fcd34d"),
	"retro":           triple("#ffe4e6", "#9f1239", "#fda4af"),
	"rare":            triple("#fef9c3", "#854d0e", "#fde047"),
	"limited edition": triple("#fdf4ff", "#701a75", "#f0abfc"),
	"first edition":   triple("#fff7ed", "#9a3412", "#fed7aa"),
	"signed":          triple("#f0fdfa", "#115e59", "#99f6e4"),
	"graded":          triple("#eff6ff", "#1d4ed8", "#93c5fd"),
	"sealed":          triple("#f5f3ff", "#5b21b6", "#c4b5fd"),
	"holographic":     triple("#ecfeff", "#0e7490", "#67e8f9"),
	"foil":            triple("#f0f9ff", "#0c4a6e", "#7dd3fc"),
	"promo":           triple("#fdf2f8", "#be185d", "#f9a8d4"),
	"error card":      triple("#fee2e2", "#991b1b", "#fca5a5"),
	"rookie":          triple("#dcfce7", "#166534", "#86efac"),
	"autographed":     triple("#fefce8", "#a16207", "#fef08a"),
	"japanese":        triple("#fff1f2", "#be123c", "#fda4af"),
	"english":         triple("#eff6ff", "#1e40af", "#93c5fd"),
	"german":          triple("#fefce8", "#854d0e", "#fde047"),
	"french":          triple("#eef2ff", "#3730a3", "#a5b4fc"),
	"silver":          triple("#f8fafc", "#475569", "#cbd5e1"),
	"gold":            triple("#fefce8", "#a16207", "#fde047"),
	"copper":          triple("#fff7ed", "#9a3412", "#fdba74"),
	"proof":           triple("#f0fdfa", "#0f766e", "#5eead4"),
	"uncirculated":    triple("#f0fdf4", "#15803d", "#86efac"),
	"commemorative":   triple("#faf5ff", "#7e22ce", "#d8b4fe"),
	"ancient":         triple("#fefbeb", "#78350f", "#fde68a"),
	"medieval":        triple("#f5f5f4", "#44403c", "#d6d3d1"),
	"ww2":             triple("#f3f4f6", "#1f2937", "#d1d5db"),
	"mint":            triple("#ecfdf5", "#047857", "#6ee7b7"),
	"near mint":       triple("#f0fdf4", "#15803d", "#86efac"),
	"played":          triple("#fef2f2", "#b91c1c", "#fca5a5"),
	"complete":        triple("#ecfdf5", "#065f46", "#6ee7b7"),
	"incomplete":      triple("#fff7ed", "#c2410c", "#fdba74"),
	"wishlist":        triple("#fdf2f8", "#a21caf", "#f0abfc"),
	"trade":           triple("#eff6ff", "#1d4ed8", "#93c5fd"),
	"for sale":        triple("#fefce8", "#a16207", "#fde047"),
	"display":         triple("#f5f3ff", "#6d28d9", "#c4b5fd"),
	"storage":         triple("#f8fafc", "#334155", "#cbd5e1"),
	"childhood":       triple("#fff1f2", "#be123c", "#fda4af"),
	"gift":            triple("#fdf4ff", "#86198f", "#f5d0fe"),
	"inherited":       triple("#fffbeb", "#92400e", "#fde68a"),
	"investment":      triple("#ecfdf5", "#047857", "#6ee7b7"),
	"favorite":        triple("#fef9c3", "#a16207", "#fde047"),
	"new":             triple("#f0f9ff", "#0369a1", "#7dd3fc"),
	"anime":           triple("#fdf2f8", "#be185d", "#f9a8d4"),
	"marvel":          triple("#fee2e2", "#b91c1c", "#fca5a5"),
	"dc":              triple("#eff6ff", "#1e3a8a", "#93c5fd"),
	"star wars":       triple("#fefce8", "#713f12", "#fde047"),
	"nintendo":        triple("#fef2f2", "#dc2626", "#fca5a5"),
	"playstation":     triple("#eef2ff", "#312e81", "#a5b4fc"),
	"xbox":            triple("#f0fdf4", "#166534", "#86efac"),
}

// ColorForTag returns the predefined color triple for a known tag, or a
// deterministic HSL triple derived from an FNV hash of the tag. Same input
// always yields the same triple.
func ColorForTag(tag string) TagColor {
	key := strings.ToLower(strings.TrimSpace(tag))
	if color, ok := tagColors[key]; ok {
		return color
	}

	h := fnv.New32a()
	h.Write([]byte(key))
	hue := h.Sum32() % 360

	return TagColor{
		Background: fmt.Sprintf("hsl(%d, 70%%, 93%%)", hue),
		Text:       fmt.Sprintf("hsl(%d, 60%%, 30%%)", hue),
		Border:     fmt.Sprintf("hsl(%d, 65%%, 75%%)", hue),
	}
}
