package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplates_Complete(t *testing.T) {
	assert.Len(t, Templates, 20)

	seen := map[string]bool{}
	for _, tmpl := range Templates {
		assert.NotEmpty(t, tmpl.ID)
		assert.NotEmpty(t, tmpl.Name)
		assert.False(t, seen[tmpl.ID], "duplicate template id %s", tmpl.ID)
		seen[tmpl.ID] = true
	}
	assert.True(t, seen["comic-book"])
	assert.True(t, seen["other"])
	assert.True(t, seen["custom"])
}

func TestTemplateByID(t *testing.T) {
	tmpl, ok := TemplateByID("vinyl-record")
	assert.True(t, ok)
	assert.Equal(t, "vinyl-record", tmpl.ID)

	_, ok = TemplateByID("does-not-exist")
	assert.False(t, ok)
}

func TestTemplateFields(t *testing.T) {
	fields := TemplateFields("comic-book")
	assert.NotEmpty(t, fields)

	// Unknown and custom templates both resolve to an empty, non-nil slice
	assert.NotNil(t, TemplateFields("does-not-exist"))
	assert.Empty(t, TemplateFields("does-not-exist"))
	assert.Empty(t, TemplateFields("custom"))
}

func TestIsValidTemplate(t *testing.T) {
	assert.True(t, IsValidTemplate("other"))
	assert.True(t, IsValidTemplate("custom"))
	assert.False(t, IsValidTemplate(""))
	assert.False(t, IsValidTemplate("Comic-Book"))
}
