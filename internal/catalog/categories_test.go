package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory_ExactMatch(t *testing.T) {
	assert.Equal(t, "Comics", NormalizeCategory("Comics"))
	assert.Equal(t, "Comics", NormalizeCategory("comics"))
	assert.Equal(t, "Video Games", NormalizeCategory("  video games  "))
}

func TestNormalizeCategory_Synonyms(t *testing.T) {
	assert.Equal(t, "Comics", NormalizeCategory("manga"))
	assert.Equal(t, "Music", NormalizeCategory("Vinyl"))
	assert.Equal(t, "Movies", NormalizeCategory("blu-ray"))
	assert.Equal(t, "Books", NormalizeCategory("novels"))
}

func TestNormalizeCategory_Substring(t *testing.T) {
	// Input containing a category
	assert.Equal(t, "Coins", NormalizeCategory("Ancient Coins"))
	// Category containing the input
	assert.Equal(t, "Stamps", NormalizeCategory("stamp"))
}

func TestNormalizeCategory_Unknown(t *testing.T) {
	assert.Equal(t, "", NormalizeCategory("rubber ducks"))
	assert.Equal(t, "", NormalizeCategory(""))
}

func TestIsValidCategory(t *testing.T) {
	for _, cat := range Categories {
		assert.True(t, IsValidCategory(cat), cat)
	}
	assert.False(t, IsValidCategory("comics")) // membership is exact
	assert.False(t, IsValidCategory("Gadgets"))
}

func TestIsCategoryLabel(t *testing.T) {
	assert.True(t, IsCategoryLabel("Comics"))
	assert.True(t, IsCategoryLabel("comics"))
	assert.True(t, IsCategoryLabel("manga"))
	assert.False(t, IsCategoryLabel("fantasy"))
	assert.False(t, IsCategoryLabel(""))
}
