package services

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/colletro/colletro-backend/internal/catalog"
	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/pkg/jsonx"
	"github.com/colletro/colletro-backend/pkg/utils"
)

// ImportResult reports a best-effort batch: one bad collection never aborts
// the rest, it just lands in Errors.
type ImportResult struct {
	Created int      `json:"created"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

// importedCollection is the tolerant intermediate shape both parsers produce
type importedCollection struct {
	Name        string
	Description string
	Category    string
	Template    string
	Tags        []string
	Items       []importedItem
}

type importedItem struct {
	Name         string
	Number       *int
	IsOwned      bool
	Image        string
	Notes        string
	Wear         string
	Rating       int
	CustomFields map[string]interface{}
}

// ImportJSON accepts three shapes: a multi-collection export
// {"collections":[...]}, a single-collection export {"name":...,"items":[...]},
// or a bare array of collections.
func ImportJSON(userID string, data []byte) *ImportResult {
	result := &ImportResult{Errors: []string{}}

	var parsed []importedCollection

	var multi struct {
		Collections []json.RawMessage `json:"collections"`
	}
	if err := json.Unmarshal(data, &multi); err == nil && multi.Collections != nil {
		for i, raw := range multi.Collections {
			col, err := parseCollectionJSON(raw)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("collection %d: %v", i+1, err))
				continue
			}
			parsed = append(parsed, col)
		}
	} else {
		var bare []json.RawMessage
		if err := json.Unmarshal(data, &bare); err == nil {
			for i, raw := range bare {
				col, err := parseCollectionJSON(raw)
				if err != nil {
					result.Errors = append(result.Errors, fmt.Sprintf("collection %d: %v", i+1, err))
					continue
				}
				parsed = append(parsed, col)
			}
		} else {
			col, err := parseCollectionJSON(data)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("collection 1: %v", err))
				result.Failed = len(result.Errors)
				return result
			}
			parsed = append(parsed, col)
		}
	}

	persistImported(userID, parsed, result)
	result.Failed = len(result.Errors)
	return result
}

func parseCollectionJSON(raw json.RawMessage) (importedCollection, error) {
	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return importedCollection{}, fmt.Errorf("not a JSON object")
	}

	col := importedCollection{
		Name:        coerceString(obj["name"]),
		Description: coerceString(obj["description"]),
		Category:    coerceString(obj["category"]),
		Template:    coerceString(obj["template"]),
	}
	if col.Name == "" {
		return importedCollection{}, fmt.Errorf("missing collection name")
	}

	if tags, ok := obj["tags"].([]interface{}); ok {
		for _, t := range tags {
			if s := coerceString(t); s != "" {
				col.Tags = append(col.Tags, s)
			}
		}
	}

	if items, ok := obj["items"].([]interface{}); ok {
		for _, entry := range items {
			itemObj, ok := entry.(map[string]interface{})
			if !ok {
				// Tolerated: skip non-object entries rather than failing the collection
				continue
			}
			col.Items = append(col.Items, parseItemObject(itemObj))
		}
	}

	return col, nil
}

func parseItemObject(obj map[string]interface{}) importedItem {
	item := importedItem{
		Name:  coerceString(obj["name"]),
		Image: coerceString(obj["image"]),
		Notes: coerceString(obj["notes"]),
		Wear:  coerceString(obj["wear"]),
	}
	if item.Name == "" {
		item.Name = "Unnamed Item"
	}

	item.Number = coerceNumber(obj["number"])
	item.IsOwned = coerceOwned(obj["isOwned"])

	if rating := coerceNumber(obj["personalRating"]); rating != nil {
		item.Rating = *rating
	}

	if fields, ok := obj["customFields"].(map[string]interface{}); ok {
		item.CustomFields = fields
	}

	return item
}

// coerceOwned treats bool true, "true" and "yes" (any case) as owned;
// everything else, including absence, is not owned
func coerceOwned(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		lower := strings.ToLower(strings.TrimSpace(t))
		return lower == "true" || lower == "yes"
	}
	return false
}

func coerceString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

func coerceNumber(v interface{}) *int {
	switch t := v.(type) {
	case float64:
		n := int(t)
		return &n
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return &n
		}
	}
	return nil
}

// csvItemHeader marks the start of an item table inside a CSV section
const csvItemHeader = "number,name,owned"

// ImportCSV parses the sectioned export format: `Collection:`,
// `Description:`, `Category:` prefix lines, then a `Number,Name,Owned,...`
// header introducing item rows. Fields beyond column 8 are ignored.
func ImportCSV(userID string, data []byte) *ImportResult {
	result := &ImportResult{Errors: []string{}}

	var parsed []importedCollection
	var current *importedCollection
	inItems := false

	flush := func() {
		if current != nil {
			parsed = append(parsed, *current)
			current = nil
		}
		inItems = false
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "Collection:"):
			flush()
			name := strings.TrimSpace(strings.TrimPrefix(trimmed, "Collection:"))
			current = &importedCollection{Name: name}
		case strings.HasPrefix(trimmed, "Description:"):
			if current != nil {
				current.Description = strings.TrimSpace(strings.TrimPrefix(trimmed, "Description:"))
			}
			inItems = false
		case strings.HasPrefix(trimmed, "Category:"):
			if current != nil {
				current.Category = strings.TrimSpace(strings.TrimPrefix(trimmed, "Category:"))
			}
			inItems = false
		case strings.HasPrefix(strings.ToLower(trimmed), csvItemHeader):
			inItems = true
		default:
			if current == nil || !inItems {
				continue
			}
			item, err := parseCSVItemRow(trimmed)
			if err != nil {
				// Malformed row: skip it, keep the collection
				continue
			}
			current.Items = append(current.Items, item)
		}
	}
	flush()

	if len(parsed) == 0 {
		result.Errors = append(result.Errors, "no collections found in CSV")
		result.Failed = 1
		return result
	}

	persistImported(userID, parsed, result)
	result.Failed = len(result.Errors)
	return result
}

func parseCSVItemRow(line string) (importedItem, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	fields, err := reader.Read()
	if err != nil {
		return importedItem{}, err
	}

	// Columns: Number, Name, Owned, Image, Notes, Wear, Rating, LogDate.
	// Anything past column 8 is ignored.
	get := func(i int) string {
		if i < len(fields) {
			return strings.TrimSpace(fields[i])
		}
		return ""
	}

	item := importedItem{
		Name:    get(1),
		IsOwned: coerceOwned(get(2)),
		Image:   get(3),
		Notes:   get(4),
		Wear:    get(5),
	}
	if item.Name == "" {
		item.Name = "Unnamed Item"
	}
	if n, err := strconv.Atoi(get(0)); err == nil {
		item.Number = &n
	}
	if r, err := strconv.Atoi(get(6)); err == nil {
		item.Rating = r
	}

	return item, nil
}

// persistImported writes parsed collections, isolating per-collection
// failures into result.Errors
func persistImported(userID string, parsed []importedCollection, result *ImportResult) {
	for _, col := range parsed {
		if err := createImportedCollection(userID, col); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("collection %q: %v", col.Name, err))
			continue
		}
		result.Created++
	}
}

func createImportedCollection(userID string, col importedCollection) error {
	var category *string
	if col.Category != "" {
		normalized := catalog.NormalizeCategory(col.Category)
		if normalized == "" {
			normalized = catalog.CategoryOther
		}
		category = &normalized
	}

	// Category labels live in Category, never in tags
	tags := make([]string, 0, len(col.Tags))
	for _, tag := range col.Tags {
		if !catalog.IsCategoryLabel(tag) {
			tags = append(tags, tag)
		}
	}

	template := col.Template
	if !catalog.IsValidTemplate(template) {
		template = "other"
	}

	collection := models.Collection{
		ID:          utils.GenerateID(),
		UserID:      userID,
		Name:        col.Name,
		Description: col.Description,
		Category:    category,
		Template:    template,
		Tags:        jsonx.MarshalStringArray(tags),
		ShareToken:  utils.GenerateShareToken(),
	}
	if err := database.DB.Create(&collection).Error; err != nil {
		return err
	}

	now := time.Now()
	for _, it := range col.Items {
		item := models.Item{
			ID:             utils.GenerateID(),
			CollectionID:   collection.ID,
			Name:           it.Name,
			Number:         it.Number,
			IsOwned:        it.IsOwned,
			Image:          it.Image,
			Notes:          it.Notes,
			Wear:           it.Wear,
			PersonalRating: it.Rating,
			CustomFields:   jsonx.MarshalObjectMap(it.CustomFields),
		}
		if it.IsOwned {
			item.LogDate = &now
		}
		if err := database.DB.Create(&item).Error; err != nil {
			return err
		}
	}

	return nil
}
