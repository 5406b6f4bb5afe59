package navigation

// PageKind identifies a screen of the app shell.
type PageKind string

const (
	PageSplash         PageKind = "splash"
	PageCover          PageKind = "cover"
	PageCreateAccount  PageKind = "create-account"
	PageHome           PageKind = "home"
	PageSearch         PageKind = "search"
	PageBookmarks      PageKind = "bookmarks"
	PageSettings       PageKind = "settings"
	PageProfile        PageKind = "profile"
	PageCategory       PageKind = "category"
	PageSubcategory    PageKind = "subcategory"
	PageProductDetail  PageKind = "product-detail"
	PageRecommended    PageKind = "recommended"
	PageTerms          PageKind = "terms-conditions"
	PageGeneric        PageKind = "generic"
)

// Page is a tagged page value. Name carries the category or subcategory
// name, or the generic page's topic; it is empty for every other kind.
type Page struct {
	Kind PageKind `json:"kind"`
	Name string   `json:"name,omitempty"`
}

// Home is the post-login landing page.
var Home = Page{Kind: PageHome}

// Cover is the signed-out landing page.
var Cover = Page{Kind: PageCover}

// Splash is the initial page of every session.
var Splash = Page{Kind: PageSplash}

// Category builds a category page.
func Category(name string) Page {
	return Page{Kind: PageCategory, Name: name}
}

// Subcategory builds a subcategory page.
func Subcategory(name string) Page {
	return Page{Kind: PageSubcategory, Name: name}
}

// Generic builds an informational page for a topic (about, help, ...).
func Generic(topic string) Page {
	return Page{Kind: PageGeneric, Name: topic}
}

var pageKinds = map[PageKind]bool{
	PageSplash:        true,
	PageCover:         true,
	PageCreateAccount: true,
	PageHome:          true,
	PageSearch:        true,
	PageBookmarks:     true,
	PageSettings:      true,
	PageProfile:       true,
	PageCategory:      true,
	PageSubcategory:   true,
	PageProductDetail: true,
	PageRecommended:   true,
	PageTerms:         true,
	PageGeneric:       true,
}

// ValidPage reports whether the page is well formed: a known kind, with
// a name exactly when the kind carries one.
func ValidPage(p Page) bool {
	if !pageKinds[p.Kind] {
		return false
	}
	named := p.Kind == PageCategory || p.Kind == PageSubcategory || p.Kind == PageGeneric
	if named {
		return p.Name != ""
	}
	return p.Name == ""
}

// backTarget is the fixed back table. Back never pushes history; it
// resolves purely from the current page.
func backTarget(current Page) Page {
	switch current.Kind {
	case PageProductDetail:
		return Home
	case PageCategory, PageSubcategory, PageRecommended:
		return Home
	case PageTerms:
		return Cover
	case PageCreateAccount:
		return Cover
	default:
		return Home
	}
}
