package navigation

// Decision is the outcome of the recommended-access policy: either a
// page to land on or an overlay to open, never both.
type Decision struct {
	NavigateTo  *Page
	OpenOverlay OverlayKind
}

// DecideRecommended is the access policy for the recommended page. It
// is pure; callers evaluate the inputs fresh on every dispatch, never
// from a cached snapshot.
func DecideRecommended(loggedIn, hasTakenQuiz, hasContactsWithIdeas bool) Decision {
	if !loggedIn {
		return Decision{NavigateTo: &Cover}
	}
	if !hasTakenQuiz && !hasContactsWithIdeas {
		return Decision{OpenOverlay: OverlayQuizPrompt}
	}
	page := Page{Kind: PageRecommended}
	return Decision{NavigateTo: &page}
}
