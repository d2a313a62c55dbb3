package catalog

// FieldType enumerates the supported custom field widgets
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldTextarea FieldType = "textarea"
)

// TemplateField is one typed field in an item template
type TemplateField struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required,omitempty"`
	Min      *float64  `json:"min,omitempty"`
	Max      *float64  `json:"max,omitempty"`
	Options  []string  `json:"options,omitempty"`
}

// Template is a named schema of custom fields for one collecting domain
type Template struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Fields []TemplateField `json:"fields"`
}

func fptr(v float64) *float64 { return &v }

var conditionOptions = []string{"Mint", "Near Mint", "Very Good", "Good", "Fair", "Poor"}

// Templates is the closed registry of item templates. "custom" carries no
// fields of its own; its schema lives on the collection.
var Templates = []Template{
	{
		ID:   "comic-book",
		Name: "Comic Book",
		Fields: []TemplateField{
			{ID: "publisher", Label: "Publisher", Type: FieldText},
			{ID: "issue", Label: "Issue #", Type: FieldNumber, Min: fptr(0)},
			{ID: "writer", Label: "Writer", Type: FieldText},
			{ID: "artist", Label: "Artist", Type: FieldText},
			{ID: "releaseDate", Label: "Release Date", Type: FieldDate},
			{ID: "grade", Label: "Grade", Type: FieldNumber, Min: fptr(0), Max: fptr(10)},
			{ID: "variant", Label: "Variant Cover", Type: FieldText},
		},
	},
	{
		ID:   "trading-card",
		Name: "Trading Card",
		Fields: []TemplateField{
			{ID: "set", Label: "Set", Type: FieldText, Required: true},
			{ID: "cardNumber", Label: "Card Number", Type: FieldText},
			{ID: "rarity", Label: "Rarity", Type: FieldSelect, Options: []string{"Common", "Uncommon", "Rare", "Holo Rare", "Ultra Rare", "Secret Rare"}},
			{ID: "language", Label: "Language", Type: FieldText},
			{ID: "condition", Label: "Condition", Type: FieldSelect, Options: conditionOptions},
			{ID: "graded", Label: "Grading Company", Type: FieldText},
			{ID: "grade", Label: "Grade", Type: FieldNumber, Min: fptr(1), Max: fptr(10)},
		},
	},
	{
		ID:   "book",
		Name: "Book",
		Fields: []TemplateField{
			{ID: "author", Label: "Author", Type: FieldText, Required: true},
			{ID: "isbn", Label: "ISBN", Type: FieldText},
			{ID: "publisher", Label: "Publisher", Type: FieldText},
			{ID: "publishYear", Label: "Publication Year", Type: FieldNumber, Min: fptr(0)},
			{ID: "edition", Label: "Edition", Type: FieldText},
			{ID: "format", Label: "Format", Type: FieldSelect, Options: []string{"Hardcover", "Paperback", "Leather-bound", "Ebook"}},
		},
	},
	{
		ID:   "vinyl-record",
		Name: "Vinyl Record",
		Fields: []TemplateField{
			{ID: "artist", Label: "Artist", Type: FieldText, Required: true},
			{ID: "label", Label: "Label", Type: FieldText},
			{ID: "releaseYear", Label: "Release Year", Type: FieldNumber, Min: fptr(1900)},
			{ID: "speed", Label: "Speed", Type: FieldSelect, Options: []string{"33 RPM", "45 RPM", "78 RPM"}},
			{ID: "pressing", Label: "Pressing", Type: FieldText},
			{ID: "mediaCondition", Label: "Media Condition", Type: FieldSelect, Options: conditionOptions},
			{ID: "sleeveCondition", Label: "Sleeve Condition", Type: FieldSelect, Options: conditionOptions},
		},
	},
	{
		ID:   "video-game",
		Name: "Video Game",
		Fields: []TemplateField{
			{ID: "platform", Label: "Platform", Type: FieldText, Required: true},
			{ID: "publisher", Label: "Publisher", Type: FieldText},
			{ID: "releaseYear", Label: "Release Year", Type: FieldNumber, Min: fptr(1970)},
			{ID: "region", Label: "Region", Type: FieldSelect, Options: []string{"NTSC", "PAL", "NTSC-J", "Region Free"}},
			{ID: "completeness", Label: "Completeness", Type: FieldSelect, Options: []string{"CIB", "Loose", "Sealed", "Box Only", "Manual Only"}},
		},
	},
	{
		ID:   "film",
		Name: "Film",
		Fields: []TemplateField{
			{ID: "director", Label: "Director", Type: FieldText},
			{ID: "releaseYear", Label: "Release Year", Type: FieldNumber, Min: fptr(1880)},
			{ID: "format", Label: "Format", Type: FieldSelect, Options: []string{"DVD", "Blu-ray", "4K UHD", "VHS", "LaserDisc"}},
			{ID: "edition", Label: "Edition", Type: FieldText},
			{ID: "runtime", Label: "Runtime (min)", Type: FieldNumber, Min: fptr(0)},
		},
	},
	{
		ID:   "tv-show",
		Name: "TV Show",
		Fields: []TemplateField{
			{ID: "season", Label: "Season", Type: FieldNumber, Min: fptr(0)},
			{ID: "network", Label: "Network", Type: FieldText},
			{ID: "format", Label: "Format", Type: FieldSelect, Options: []string{"DVD", "Blu-ray", "4K UHD", "VHS"}},
			{ID: "episodes", Label: "Episodes", Type: FieldNumber, Min: fptr(0)},
		},
	},
	{
		ID:   "music",
		Name: "Music",
		Fields: []TemplateField{
			{ID: "artist", Label: "Artist", Type: FieldText, Required: true},
			{ID: "format", Label: "Format", Type: FieldSelect, Options: []string{"CD", "Cassette", "Vinyl", "Digital"}},
			{ID: "releaseYear", Label: "Release Year", Type: FieldNumber, Min: fptr(1900)},
			{ID: "genre", Label: "Genre", Type: FieldText},
		},
	},
	{
		ID:   "board-game",
		Name: "Board Game",
		Fields: []TemplateField{
			{ID: "designer", Label: "Designer", Type: FieldText},
			{ID: "publisher", Label: "Publisher", Type: FieldText},
			{ID: "playerCount", Label: "Player Count", Type: FieldText},
			{ID: "playTime", Label: "Play Time (min)", Type: FieldNumber, Min: fptr(0)},
			{ID: "completeness", Label: "Completeness", Type: FieldSelect, Options: []string{"Complete", "Missing Pieces", "Sealed"}},
		},
	},
	{
		ID:   "sports-card",
		Name: "Sports Card",
		Fields: []TemplateField{
			{ID: "player", Label: "Player", Type: FieldText, Required: true},
			{ID: "team", Label: "Team", Type: FieldText},
			{ID: "year", Label: "Year", Type: FieldNumber, Min: fptr(1850)},
			{ID: "brand", Label: "Brand", Type: FieldText},
			{ID: "cardNumber", Label: "Card Number", Type: FieldText},
			{ID: "rookie", Label: "Rookie Card", Type: FieldSelect, Options: []string{"Yes", "No"}},
			{ID: "grade", Label: "Grade", Type: FieldNumber, Min: fptr(1), Max: fptr(10)},
		},
	},
	{
		ID:   "toy",
		Name: "Toy",
		Fields: []TemplateField{
			{ID: "manufacturer", Label: "Manufacturer", Type: FieldText},
			{ID: "series", Label: "Series", Type: FieldText},
			{ID: "year", Label: "Year", Type: FieldNumber, Min: fptr(1900)},
			{ID: "packaging", Label: "Packaging", Type: FieldSelect, Options: []string{"Sealed", "Opened", "Loose"}},
		},
	},
	{
		ID:   "action-figure",
		Name: "Action Figure",
		Fields: []TemplateField{
			{ID: "line", Label: "Toy Line", Type: FieldText},
			{ID: "manufacturer", Label: "Manufacturer", Type: FieldText},
			{ID: "scale", Label: "Scale", Type: FieldText},
			{ID: "year", Label: "Year", Type: FieldNumber, Min: fptr(1900)},
			{ID: "packaging", Label: "Packaging", Type: FieldSelect, Options: []string{"MIB", "MOC", "Loose", "Sealed"}},
			{ID: "accessories", Label: "Accessories", Type: FieldTextarea},
		},
	},
	{
		ID:   "art",
		Name: "Art",
		Fields: []TemplateField{
			{ID: "artist", Label: "Artist", Type: FieldText},
			{ID: "medium", Label: "Medium", Type: FieldText},
			{ID: "year", Label: "Year", Type: FieldNumber},
			{ID: "dimensions", Label: "Dimensions", Type: FieldText},
			{ID: "provenance", Label: "Provenance", Type: FieldTextarea},
		},
	},
	{
		ID:   "collectible",
		Name: "Collectible",
		Fields: []TemplateField{
			{ID: "maker", Label: "Maker", Type: FieldText},
			{ID: "year", Label: "Year", Type: FieldNumber},
			{ID: "material", Label: "Material", Type: FieldText},
			{ID: "condition", Label: "Condition", Type: FieldSelect, Options: conditionOptions},
		},
	},
	{
		ID:   "coin",
		Name: "Coin",
		Fields: []TemplateField{
			{ID: "country", Label: "Country", Type: FieldText, Required: true},
			{ID: "year", Label: "Year", Type: FieldNumber},
			{ID: "denomination", Label: "Denomination", Type: FieldText},
			{ID: "composition", Label: "Composition", Type: FieldText},
			{ID: "mintMark", Label: "Mint Mark", Type: FieldText},
			{ID: "grade", Label: "Grade", Type: FieldText},
		},
	},
	{
		ID:   "stamp",
		Name: "Stamp",
		Fields: []TemplateField{
			{ID: "country", Label: "Country", Type: FieldText, Required: true},
			{ID: "year", Label: "Year", Type: FieldNumber},
			{ID: "denomination", Label: "Denomination", Type: FieldText},
			{ID: "perforation", Label: "Perforation", Type: FieldText},
			{ID: "cancelled", Label: "Cancelled", Type: FieldSelect, Options: []string{"Mint", "Used", "CTO"}},
		},
	},
	{
		ID:   "poster",
		Name: "Poster",
		Fields: []TemplateField{
			{ID: "title", Label: "Title", Type: FieldText},
			{ID: "year", Label: "Year", Type: FieldNumber},
			{ID: "dimensions", Label: "Dimensions", Type: FieldText},
			{ID: "originality", Label: "Originality", Type: FieldSelect, Options: []string{"Original", "Reprint", "Reproduction"}},
		},
	},
	{
		ID:   "art-print",
		Name: "Art Print",
		Fields: []TemplateField{
			{ID: "artist", Label: "Artist", Type: FieldText},
			{ID: "printNumber", Label: "Print Number", Type: FieldText},
			{ID: "editionSize", Label: "Edition Size", Type: FieldNumber, Min: fptr(1)},
			{ID: "signed", Label: "Signed", Type: FieldSelect, Options: []string{"Yes", "No"}},
			{ID: "dimensions", Label: "Dimensions", Type: FieldText},
		},
	},
	{
		ID:   "other",
		Name: "Other",
		Fields: []TemplateField{
			{ID: "details", Label: "Details", Type: FieldTextarea},
			{ID: "acquired", Label: "Acquired", Type: FieldDate},
		},
	},
	{
		ID:     "custom",
		Name:   "Custom",
		Fields: []TemplateField{},
	},
}

var templateIndex = func() map[string]Template {
	idx := make(map[string]Template, len(Templates))
	for _, t := range Templates {
		idx[t.ID] = t
	}
	return idx
}()

// TemplateByID returns the template and whether it exists
func TemplateByID(id string) (Template, bool) {
	t, ok := templateIndex[id]
	return t, ok
}

// TemplateFields returns the field list for a template id, or an empty slice
// for unknown ids and for "custom" (whose schema lives on the collection)
func TemplateFields(id string) []TemplateField {
	t, ok := templateIndex[id]
	if !ok {
		return []TemplateField{}
	}
	return t.Fields
}

// IsValidTemplate reports membership in the template registry
func IsValidTemplate(id string) bool {
	_, ok := templateIndex[id]
	return ok
}
