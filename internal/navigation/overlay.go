package navigation

// OverlayKind identifies one of the independent overlays. Any subset
// may be open at once.
type OverlayKind string

const (
	OverlaySidebar       OverlayKind = "sidebar"
	OverlayQuiz          OverlayKind = "quiz"
	OverlayHint          OverlayKind = "hint"
	OverlayFeedback      OverlayKind = "feedback"
	OverlayQuizPrompt    OverlayKind = "quiz-prompt"
	OverlayConfirmation  OverlayKind = "confirmation"
	OverlayWishlistToast OverlayKind = "wishlist-toast"
)

var overlayKinds = map[OverlayKind]bool{
	OverlaySidebar:       true,
	OverlayQuiz:          true,
	OverlayHint:          true,
	OverlayFeedback:      true,
	OverlayQuizPrompt:    true,
	OverlayConfirmation:  true,
	OverlayWishlistToast: true,
}

// ValidOverlay reports whether the kind is known.
func ValidOverlay(k OverlayKind) bool {
	return overlayKinds[k]
}
