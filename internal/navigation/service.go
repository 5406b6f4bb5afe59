package navigation

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/contact"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/preferences"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/user"
)

// donateMessage mirrors the placeholder shown while donations are not
// built out.
const donateMessage = "Thank you for your interest in donating! Donation features are coming soon."

// Category action labels with special handling. Anything else is a
// plain category navigation.
const (
	ActionQuizMe      = "Quiz Me"
	ActionDonate      = "Donate"
	ActionRecommended = "Recommended"
)

// Service holds one Controller per session and evaluates the dispatch
// rules that need data from other modules.
type Service struct {
	users    *user.Repository
	contacts *contact.Service
	prefs    *preferences.Service
	log      *logrus.Logger

	mu          sync.Mutex
	controllers map[string]*Controller
	resetHooks  map[OverlayKind]func(sessionID string)
}

// NewService wires the navigation service.
func NewService(users *user.Repository, contacts *contact.Service, prefs *preferences.Service, log *logrus.Logger) *Service {
	return &Service{
		users:       users,
		contacts:    contacts,
		prefs:       prefs,
		log:         log,
		controllers: make(map[string]*Controller),
		resetHooks:  make(map[OverlayKind]func(string)),
	}
}

// RegisterResetHook runs fn whenever the overlay goes from open to
// closed for any session. Used to flush quiz progress and similar
// overlay-scoped state so a reopen starts fresh.
func (s *Service) RegisterResetHook(kind OverlayKind, fn func(sessionID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetHooks[kind] = fn
}

// ControllerFor returns the session's controller, creating it on first
// use. New sessions start on the splash page.
func (s *Service) ControllerFor(sessionKey string, session *user.Session) *Controller {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ctl, ok := s.controllers[sessionKey]; ok {
		return ctl
	}

	prefSession := session
	if prefSession == nil {
		prefSession = &user.Session{UserID: sessionKey, IsGuest: true}
	}
	ctl := newController(func(page Page) {
		s.prefs.SetLastPage(prefSession, pageLabel(page))
	})
	s.controllers[sessionKey] = ctl
	return ctl
}

// Forget drops a session's controller, e.g. on sign-out.
func (s *Service) Forget(sessionKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.controllers, sessionKey)
}

// CloseOverlay closes the overlay and fires its reset hook when the
// close was observed, i.e. the overlay was actually open.
func (s *Service) CloseOverlay(sessionKey string, session *user.Session, kind OverlayKind) Snapshot {
	ctl := s.ControllerFor(sessionKey, session)
	snap, wasOpen := ctl.CloseOverlay(kind)
	if wasOpen {
		s.mu.Lock()
		hook := s.resetHooks[kind]
		s.mu.Unlock()
		if hook != nil {
			hook(sessionKey)
		}
	}
	return snap
}

// DispatchCategoryAction routes a category bar label. Most labels
// navigate to that category; three labels are actions.
func (s *Service) DispatchCategoryAction(sessionKey string, session *user.Session, label string) (Snapshot, string) {
	ctl := s.ControllerFor(sessionKey, session)

	switch label {
	case ActionQuizMe:
		return ctl.OpenOverlay(OverlayQuiz), ""
	case ActionDonate:
		s.log.WithField("session", sessionKey).Info("donate action requested")
		return ctl.State(), donateMessage
	case ActionRecommended:
		return s.applyRecommended(ctl, session), ""
	default:
		return ctl.NavigateTo(Category(label)), ""
	}
}

// applyRecommended evaluates the access policy fresh and applies its
// decision to the controller.
func (s *Service) applyRecommended(ctl *Controller, session *user.Session) Snapshot {
	loggedIn := session != nil
	hasTakenQuiz := false
	hasIdeas := false

	if loggedIn && !session.IsGuest {
		if profile, err := s.users.ByID(session.UserID); err == nil && profile != nil {
			hasTakenQuiz = profile.HasTakenQuiz
		}
		var err error
		hasIdeas, err = s.contacts.HasContactsWithIdeas(session.UserID)
		if err != nil {
			s.log.WithError(err).Warn("unable to check contact ideas; treating as none")
		}
	}

	decision := DecideRecommended(loggedIn, hasTakenQuiz, hasIdeas)
	if decision.OpenOverlay != "" {
		return ctl.OpenOverlay(decision.OpenOverlay)
	}
	return ctl.NavigateTo(*decision.NavigateTo)
}

// pageLabel flattens a page for last-page bookkeeping.
func pageLabel(page Page) string {
	if page.Name != "" {
		return string(page.Kind) + ":" + page.Name
	}
	return string(page.Kind)
}
