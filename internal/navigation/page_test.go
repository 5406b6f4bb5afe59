package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackTable(t *testing.T) {
	tests := []struct {
		from Page
		want Page
	}{
		{Page{Kind: PageProductDetail}, Home},
		{Category("Books"), Home},
		{Subcategory("Poetry"), Home},
		{Page{Kind: PageRecommended}, Home},
		{Page{Kind: PageTerms}, Cover},
		{Page{Kind: PageCreateAccount}, Cover},
		{Page{Kind: PageSearch}, Home},
		{Page{Kind: PageSettings}, Home},
		{Home, Home},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, backTarget(tt.from), "back from %s", tt.from.Kind)
	}
}

func TestValidPage(t *testing.T) {
	assert.True(t, ValidPage(Home))
	assert.True(t, ValidPage(Category("Tech")))
	assert.True(t, ValidPage(Generic("about")))

	assert.False(t, ValidPage(Page{Kind: "lobby"}))
	assert.False(t, ValidPage(Page{Kind: PageCategory}), "category needs a name")
	assert.False(t, ValidPage(Page{Kind: PageHome, Name: "x"}), "home carries no name")
}
