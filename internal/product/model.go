package product

import "time"

// Product is one catalog item. The catalog is read-only from the
// application's perspective; rows are seeded at startup.
type Product struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Name        string  `gorm:"index" json:"name"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	AmazonLink  string  `json:"amazon_link"`
	Category    string  `gorm:"index" json:"category"`
	Subcategory string  `gorm:"index" json:"subcategory"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`

	CreatedAt time.Time `json:"created_at"`
}

// MainCategories is the fixed set of top-level catalog categories shown
// in the navigation bar. A section title outside this list is treated
// as a subcategory.
var MainCategories = []string{
	"Trending", "Books", "Accessories", "DIY / Art", "Tech",
	"Cups / Drinks", "Stationary", "Music", "Figurines / Plushies",
	"Gift Cards", "Blooms",
}

// IsMainCategory reports whether a title names a top-level category.
func IsMainCategory(title string) bool {
	for _, c := range MainCategories {
		if c == title {
			return true
		}
	}
	return false
}
