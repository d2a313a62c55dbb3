package catalog

import "strings"

// Categories is the closed set of collection categories. Anything that cannot
// be normalized into this list is stored as CategoryOther.
var Categories = []string{
	"Books",
	"Comics",
	"Movies",
	"Music",
	"Video Games",
	"Trading Cards",
	"Sports Cards",
	"Coins",
	"Stamps",
	"Toys",
	"Action Figures",
	"Board Games",
	"Art",
	"Memorabilia",
	"Other",
}

const CategoryOther = "Other"

// categorySynonyms maps common free-text labels to canonical categories.
var categorySynonyms = map[string]string{
	"book":            "Books",
	"novel":           "Books",
	"novels":          "Books",
	"literature":      "Books",
	"manga":           "Comics",
	"comic":           "Comics",
	"comic book":      "Comics",
	"comic books":     "Comics",
	"graphic novel":   "Comics",
	"graphic novels":  "Comics",
	"film":            "Movies",
	"films":           "Movies",
	"movie":           "Movies",
	"dvd":             "Movies",
	"dvds":            "Movies",
	"blu-ray":         "Movies",
	"bluray":          "Movies",
	"vinyl":           "Music",
	"vinyls":          "Music",
	"records":         "Music",
	"vinyl record":    "Music",
	"vinyl records":   "Music",
	"cd":              "Music",
	"cds":             "Music",
	"album":           "Music",
	"albums":          "Music",
	"game":            "Video Games",
	"games":           "Video Games",
	"videogame":       "Video Games",
	"videogames":      "Video Games",
	"video game":      "Video Games",
	"tcg":             "Trading Cards",
	"card":            "Trading Cards",
	"cards":           "Trading Cards",
	"trading card":    "Trading Cards",
	"pokemon":         "Trading Cards",
	"mtg":             "Trading Cards",
	"magic the gathering": "Trading Cards",
	"yugioh":          "Trading Cards",
	"sports card":     "Sports Cards",
	"baseball cards":  "Sports Cards",
	"football cards":  "Sports Cards",
	"coin":            "Coins",
	"numismatics":     "Coins",
	"currency":        "Coins",
	"stamp":           "Stamps",
	"philately":       "Stamps",
	"toy":             "Toys",
	"lego":            "Toys",
	"plush":           "Toys",
	"figure":          "Action Figures",
	"figures":         "Action Figures",
	"action figure":   "Action Figures",
	"figurine":        "Action Figures",
	"figurines":       "Action Figures",
	"funko":           "Action Figures",
	"boardgame":       "Board Games",
	"boardgames":      "Board Games",
	"board game":      "Board Games",
	"tabletop":        "Board Games",
	"painting":        "Art",
	"paintings":       "Art",
	"prints":          "Art",
	"art print":       "Art",
	"art prints":      "Art",
	"poster":          "Art",
	"posters":         "Art",
	"autograph":       "Memorabilia",
	"autographs":      "Memorabilia",
	"souvenirs":       "Memorabilia",
	"misc":            "Other",
	"miscellaneous":   "Other",
}

// NormalizeCategory maps free text to a canonical category. Resolution order:
// exact case-insensitive match, synonym table, substring containment in both
// directions. Returns "" when nothing matches; callers default to "Other".
func NormalizeCategory(input string) string {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return ""
	}

	for _, cat := range Categories {
		if strings.ToLower(cat) == needle {
			return cat
		}
	}

	if cat, ok := categorySynonyms[needle]; ok {
		return cat
	}

	for _, cat := range Categories {
		lower := strings.ToLower(cat)
		if strings.Contains(needle, lower) || strings.Contains(lower, needle) {
			return cat
		}
	}

	return ""
}

// IsValidCategory reports membership in the closed category list
func IsValidCategory(input string) bool {
	for _, cat := range Categories {
		if cat == input {
			return true
		}
	}
	return false
}

// IsCategoryLabel reports whether a tag duplicates a category label (those
// belong in Collection.Category, not in tags)
func IsCategoryLabel(tag string) bool {
	needle := strings.ToLower(strings.TrimSpace(tag))
	for _, cat := range Categories {
		if strings.ToLower(cat) == needle {
			return true
		}
	}
	_, ok := categorySynonyms[needle]
	return ok
}
