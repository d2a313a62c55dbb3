package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/pkg/jsonx"
)

type exportItem struct {
	Name           string                 `json:"name"`
	Number         *int                   `json:"number,omitempty"`
	IsOwned        bool                   `json:"isOwned"`
	Image          string                 `json:"image,omitempty"`
	Notes          string                 `json:"notes,omitempty"`
	Wear           string                 `json:"wear,omitempty"`
	PersonalRating int                    `json:"personalRating,omitempty"`
	CustomFields   map[string]interface{} `json:"customFields,omitempty"`
}

type exportCollection struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Category    string       `json:"category,omitempty"`
	Template    string       `json:"template,omitempty"`
	Tags        []string     `json:"tags"`
	Items       []exportItem `json:"items"`
}

func loadExportCollections(userID string) ([]exportCollection, error) {
	var collections []models.Collection
	if err := database.DB.Preload("Items").Where("user_id = ?", userID).
		Order("created_at asc").Find(&collections).Error; err != nil {
		return nil, err
	}

	out := make([]exportCollection, 0, len(collections))
	for _, col := range collections {
		ec := exportCollection{
			Name:        col.Name,
			Description: col.Description,
			Template:    col.Template,
			Tags:        jsonx.StringArray(col.Tags),
			Items:       []exportItem{},
		}
		if col.Category != nil {
			ec.Category = *col.Category
		}
		for _, item := range col.Items {
			ei := exportItem{
				Name:           item.Name,
				Number:         item.Number,
				IsOwned:        item.IsOwned,
				Image:          item.Image,
				Notes:          item.Notes,
				Wear:           item.Wear,
				PersonalRating: item.PersonalRating,
			}
			if fields := jsonx.ObjectMap(item.CustomFields); len(fields) > 0 {
				ei.CustomFields = fields
			}
			ec.Items = append(ec.Items, ei)
		}
		out = append(out, ec)
	}
	return out, nil
}

// ExportJSON renders all of a user's collections in the multi-collection
// shape the importer accepts
func ExportJSON(userID string) ([]byte, error) {
	collections, err := loadExportCollections(userID)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(map[string]interface{}{"collections": collections}, "", "  ")
}

// ExportCSV renders the sectioned CSV format the importer accepts
func ExportCSV(userID string) ([]byte, error) {
	collections, err := loadExportCollections(userID)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	for i, col := range collections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Collection: %s\n", col.Name)
		if col.Description != "" {
			fmt.Fprintf(&b, "Description: %s\n", col.Description)
		}
		if col.Category != "" {
			fmt.Fprintf(&b, "Category: %s\n", col.Category)
		}
		b.WriteString("Number,Name,Owned,Image,Notes,Wear,Rating,LogDate\n")
		for _, item := range col.Items {
			number := ""
			if item.Number != nil {
				number = strconv.Itoa(*item.Number)
			}
			owned := "false"
			if item.IsOwned {
				owned = "true"
			}
			rating := ""
			if item.PersonalRating > 0 {
				rating = strconv.Itoa(item.PersonalRating)
			}
			fmt.Fprintf(&b, "%s,%s,%s,%s,%s,%s,%s,\n",
				csvField(number), csvField(item.Name), owned,
				csvField(item.Image), csvField(item.Notes), csvField(item.Wear), rating)
		}
	}
	return []byte(b.String()), nil
}

func csvField(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
	}
	return s
}
