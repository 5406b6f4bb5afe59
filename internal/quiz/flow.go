package quiz

import (
	"strings"
	"sync"
	"time"
)

// Flow states.
const (
	StateAsking         = "asking"
	StateSubmitting     = "submitting"
	StateShowingResults = "showingResults"
)

// autosaveDelay is how long after the last answer change progress is
// persisted.
const autosaveDelay = time.Second

// Flow is one open quiz, owned by a session. All fields are guarded by
// mu; the autosave timer re-acquires it when it fires.
type Flow struct {
	mu          sync.Mutex
	state       string
	index       int
	answers     Answers
	results     string
	inlineError string

	saveTimer *time.Timer
	persist   func(Answers)
}

// Snapshot is the flow state returned to the client.
type Snapshot struct {
	State         string  `json:"state"`
	QuestionIndex int     `json:"questionIndex"`
	Answers       Answers `json:"answers"`
	Results       string  `json:"results,omitempty"`
	Error         string  `json:"error,omitempty"`
}

func newFlow(saved Answers, persist func(Answers)) *Flow {
	if saved == nil {
		saved = Answers{}
	}
	return &Flow{
		state:   StateAsking,
		index:   resumeIndex(saved),
		answers: saved,
		persist: persist,
	}
}

// resumeIndex is the first unanswered question, or the last question
// when every one has an answer.
func resumeIndex(answers Answers) int {
	for i, q := range questions {
		if !answered(answers[q.ID]) {
			return i
		}
	}
	return len(questions) - 1
}

func answered(a Answer) bool {
	return strings.TrimSpace(a.Value) != ""
}

// validFor reports whether the answer satisfies the question's type.
func validFor(q Question, a Answer) bool {
	if !answered(a) {
		return false
	}
	switch q.Type {
	case TypeRadio:
		for _, opt := range q.Options {
			if a.Value == opt {
				return true
			}
		}
		return false
	case TypeRadioWithOther:
		if a.Kind == KindOther {
			return true
		}
		for _, opt := range q.Options {
			if a.Value == opt {
				return true
			}
		}
		return false
	default:
		return true
	}
}

func (f *Flow) snapshotLocked() *Snapshot {
	copied := make(Answers, len(f.answers))
	for k, v := range f.answers {
		copied[k] = v
	}
	return &Snapshot{
		State:         f.state,
		QuestionIndex: f.index,
		Answers:       copied,
		Results:       f.results,
		Error:         f.inlineError,
	}
}

// Snapshot returns a copy of the current flow state.
func (f *Flow) Snapshot() *Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// SetAnswer records an answer and arms the autosave timer. Every change
// restarts the one-second window.
func (f *Flow) SetAnswer(questionID string, a Answer) *Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.answers[questionID] = a
	f.inlineError = ""
	f.scheduleSaveLocked()
	return f.snapshotLocked()
}

func (f *Flow) scheduleSaveLocked() {
	if f.persist == nil {
		return
	}
	if f.saveTimer != nil {
		f.saveTimer.Stop()
	}
	f.saveTimer = time.AfterFunc(autosaveDelay, f.flushSave)
}

func (f *Flow) flushSave() {
	f.mu.Lock()
	persist := f.persist
	copied := make(Answers, len(f.answers))
	for k, v := range f.answers {
		copied[k] = v
	}
	f.mu.Unlock()

	if persist != nil {
		persist(copied)
	}
}

// Flush cancels any pending autosave and persists immediately.
func (f *Flow) Flush() {
	f.mu.Lock()
	if f.saveTimer != nil {
		f.saveTimer.Stop()
		f.saveTimer = nil
	}
	f.mu.Unlock()
	f.flushSave()
}

// Advance validates the current answer and moves to the next question.
// On the last question it parks the flow in the submitting state; the
// submit call does the generation. A missing or invalid answer keeps
// the index and sets an inline message.
func (f *Flow) Advance() *Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateAsking {
		return f.snapshotLocked()
	}

	q := questions[f.index]
	if !validFor(q, f.answers[q.ID]) {
		f.inlineError = "Please provide an answer before proceeding."
		return f.snapshotLocked()
	}

	f.inlineError = ""
	if f.index < len(questions)-1 {
		f.index++
	} else {
		f.state = StateSubmitting
	}
	return f.snapshotLocked()
}
