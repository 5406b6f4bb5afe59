package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/genai"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/metrics"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/user"
)

// ErrUnknownQuestion is returned for an answer to a question id outside
// the fixture.
var ErrUnknownQuestion = errors.New("unknown question")

// ErrNotReady is returned when submit is called before the last answer
// was validated.
var ErrNotReady = errors.New("quiz is not ready to submit")

// promptHeader opens every generation prompt; answered questions follow
// as "question: answer" lines.
const promptHeader = "Generate 3-5 unique and creative gift ideas based on the following preferences, considering common product categories like Books, Accessories, Tech, DIY/Art, Cups/Drinks, Stationary, Music, Figurines/Plushies, Gift Cards, Blooms. For each idea, provide a brief reason why it's a good fit. Format the output as a numbered list.\n\n"

// Service owns the quiz flows, one per session, and the generated idea
// records.
type Service struct {
	db    *gorm.DB
	users *user.Repository
	gen   genai.Generator
	log   *logrus.Logger

	mu    sync.Mutex
	flows map[string]*Flow
}

// NewService wires the quiz service.
func NewService(db *gorm.DB, users *user.Repository, gen genai.Generator, log *logrus.Logger) *Service {
	return &Service{
		db:    db,
		users: users,
		gen:   gen,
		log:   log,
		flows: make(map[string]*Flow),
	}
}

// Open returns the session's flow, creating it from persisted progress
// when none is open. The flow resumes at the first unanswered question.
func (s *Service) Open(session *user.Session) *Flow {
	s.mu.Lock()
	defer s.mu.Unlock()

	if flow, ok := s.flows[session.UserID]; ok {
		return flow
	}

	saved := s.loadAnswers(session)
	flow := newFlow(saved, s.persistFunc(session))
	s.flows[session.UserID] = flow
	return flow
}

// Close flushes the session's flow and discards it. Reopening starts
// from persisted progress. Registered as the quiz overlay's reset hook.
func (s *Service) Close(sessionID string) {
	s.mu.Lock()
	flow, ok := s.flows[sessionID]
	delete(s.flows, sessionID)
	s.mu.Unlock()

	if ok {
		flow.Flush()
	}
}

// SetAnswer records an answer on the session's flow.
func (s *Service) SetAnswer(session *user.Session, questionID string, a Answer) (*Snapshot, error) {
	if questionByID(questionID) == nil {
		return nil, ErrUnknownQuestion
	}
	return s.Open(session).SetAnswer(questionID, a), nil
}

// Advance moves the session's flow forward.
func (s *Service) Advance(session *user.Session) *Snapshot {
	return s.Open(session).Advance()
}

// Submit generates gift ideas from the flow's answers. A generator
// failure leaves the flow resubmittable with an inline error; the
// overlay stays open either way.
func (s *Service) Submit(ctx context.Context, session *user.Session, contactID *uint) (*Snapshot, error) {
	flow := s.Open(session)

	flow.mu.Lock()
	if flow.state != StateSubmitting {
		flow.mu.Unlock()
		return nil, ErrNotReady
	}
	prompt := buildPrompt(flow.answers)
	answers := make(Answers, len(flow.answers))
	for k, v := range flow.answers {
		answers[k] = v
	}
	flow.mu.Unlock()

	text, err := s.gen.Generate(ctx, prompt)

	flow.mu.Lock()
	defer flow.mu.Unlock()
	if err != nil {
		metrics.QuizSubmissions.WithLabelValues("error").Inc()
		s.log.WithError(err).Warn("gift idea generation failed")
		flow.state = StateSubmitting
		flow.inlineError = "Failed to generate ideas. Please try again."
		return flow.snapshotLocked(), nil
	}

	metrics.QuizSubmissions.WithLabelValues("ok").Inc()
	flow.state = StateShowingResults
	flow.results = text
	flow.inlineError = ""

	s.recordResult(session, answers, text, contactID)
	return flow.snapshotLocked(), nil
}

// AssociateLatest attaches the session's newest gift idea to a contact.
func (s *Service) AssociateLatest(userID string, contactID uint) error {
	var idea GiftIdea
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&idea).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("no generated ideas yet")
		}
		return fmt.Errorf("unable to load gift idea: %w", err)
	}
	return s.db.Model(&idea).Update("contact_id", contactID).Error
}

// IdeasForUser lists the user's generated ideas, newest first.
func (s *Service) IdeasForUser(userID string) ([]GiftIdea, error) {
	var ideas []GiftIdea
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ideas).Error
	if err != nil {
		return nil, fmt.Errorf("unable to load gift ideas: %w", err)
	}
	return ideas, nil
}

func buildPrompt(answers Answers) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	for _, q := range questions {
		a, ok := answers[q.ID]
		if !ok || !answered(a) {
			continue
		}
		b.WriteString(q.Text)
		b.WriteString(": ")
		b.WriteString(a.Value)
		b.WriteString("\n")
	}
	return b.String()
}

// loadAnswers reads persisted progress from the profile row. Guests and
// missing profiles start empty.
func (s *Service) loadAnswers(session *user.Session) Answers {
	if session.IsGuest {
		return nil
	}
	profile, err := s.users.ByID(session.UserID)
	if err != nil || profile == nil || profile.QuizAnswers == "" {
		return nil
	}
	var saved Answers
	if err := json.Unmarshal([]byte(profile.QuizAnswers), &saved); err != nil {
		s.log.WithError(err).Warn("discarding unreadable quiz progress")
		return nil
	}
	return saved
}

// persistFunc builds the flow's autosave target. Guest progress lives
// only in the open flow.
func (s *Service) persistFunc(session *user.Session) func(Answers) {
	if session.IsGuest {
		return nil
	}
	userID := session.UserID
	return func(answers Answers) {
		raw, err := json.Marshal(answers)
		if err != nil {
			return
		}
		err = s.users.UpdateFields(userID, map[string]interface{}{"quiz_answers": string(raw)})
		if err != nil {
			s.log.WithError(err).Warn("unable to save quiz progress")
		}
	}
}

// recordResult persists the outcome: the profile snapshot plus a gift
// idea row. Failures are logged, never surfaced; the user already has
// their results.
func (s *Service) recordResult(session *user.Session, answers Answers, text string, contactID *uint) {
	raw, err := json.Marshal(answers)
	if err != nil {
		return
	}

	if !session.IsGuest {
		err = s.users.UpdateFields(session.UserID, map[string]interface{}{
			"quiz_answers":   string(raw),
			"has_taken_quiz": true,
		})
		if err != nil {
			s.log.WithError(err).Error("unable to save quiz answers to profile")
		}
	}

	idea := GiftIdea{
		UserID:             session.UserID,
		ContactID:          contactID,
		QuizAnswers:        string(raw),
		GeneratedIdeasText: text,
	}
	if err := s.db.Create(&idea).Error; err != nil {
		s.log.WithError(err).Error("unable to save generated gift ideas")
	}
}
