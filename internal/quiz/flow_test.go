package quiz

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeIndex(t *testing.T) {
	assert.Equal(t, 0, resumeIndex(Answers{}))

	partial := Answers{
		"recipient": {Kind: KindOption, Value: "Friend"},
		"occasion":  {Kind: KindOther, Value: "Housewarming"},
	}
	assert.Equal(t, 2, resumeIndex(partial), "resume at first unanswered")

	full := Answers{
		"recipient":   {Kind: KindOption, Value: "Friend"},
		"occasion":    {Kind: KindOption, Value: "Birthday"},
		"interests":   {Kind: KindOption, Value: "Reading"},
		"budget":      {Kind: KindOption, Value: "Under $25"},
		"personality": {Kind: KindOption, Value: "Cozy"},
	}
	assert.Equal(t, len(questions)-1, resumeIndex(full), "all answered lands on the last question")
}

func TestAdvanceRequiresValidAnswer(t *testing.T) {
	flow := newFlow(nil, nil)

	snap := flow.Advance()
	assert.Equal(t, 0, snap.QuestionIndex)
	assert.NotEmpty(t, snap.Error)

	flow.SetAnswer("recipient", Answer{Kind: KindOther, Value: "   "})
	snap = flow.Advance()
	assert.Equal(t, 0, snap.QuestionIndex, "whitespace-only other answer is rejected")
	assert.NotEmpty(t, snap.Error)

	flow.SetAnswer("recipient", Answer{Kind: KindOption, Value: "Friend"})
	snap = flow.Advance()
	assert.Equal(t, 1, snap.QuestionIndex)
	assert.Empty(t, snap.Error)
}

func TestRadioAnswerMustMatchAnOption(t *testing.T) {
	q := *questionByID("budget")
	assert.False(t, validFor(q, Answer{Kind: KindOption, Value: "one million"}))
	assert.True(t, validFor(q, Answer{Kind: KindOption, Value: "Over $100"}))
}

func TestRadioWithOtherAcceptsFreeForm(t *testing.T) {
	q := *questionByID("occasion")
	assert.True(t, validFor(q, Answer{Kind: KindOther, Value: "Promotion"}))
	assert.True(t, validFor(q, Answer{Kind: KindOption, Value: "Birthday"}))
	assert.False(t, validFor(q, Answer{Kind: KindOption, Value: "Promotion"}))
}

func TestAdvanceThroughAllQuestionsParksForSubmit(t *testing.T) {
	flow := newFlow(nil, nil)

	answers := []Answer{
		{Kind: KindOption, Value: "Friend"},
		{Kind: KindOption, Value: "Birthday"},
		{Kind: KindOption, Value: "Reading"},
		{Kind: KindOption, Value: "Under $25"},
		{Kind: KindOption, Value: "Cozy"},
	}
	for i, q := range questions {
		flow.SetAnswer(q.ID, answers[i])
		flow.Advance()
	}

	snap := flow.Snapshot()
	assert.Equal(t, StateSubmitting, snap.State)
}

func TestAutosaveDebounce(t *testing.T) {
	var mu sync.Mutex
	var saves []Answers
	persist := func(a Answers) {
		mu.Lock()
		saves = append(saves, a)
		mu.Unlock()
	}

	flow := newFlow(nil, persist)
	flow.SetAnswer("recipient", Answer{Kind: KindOption, Value: "Friend"})
	time.Sleep(200 * time.Millisecond)
	flow.SetAnswer("recipient", Answer{Kind: KindOther, Value: "My neighbor"})

	mu.Lock()
	assert.Empty(t, saves, "nothing persists inside the debounce window")
	mu.Unlock()

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(saves) == 1
	}, 3*time.Second, 20*time.Millisecond)

	mu.Lock()
	require.Len(t, saves, 1, "a rapid change sequence collapses to one save")
	assert.Equal(t, "My neighbor", saves[0]["recipient"].Value)
	mu.Unlock()
}

func TestFlushPersistsImmediately(t *testing.T) {
	var mu sync.Mutex
	var saves []Answers
	persist := func(a Answers) {
		mu.Lock()
		saves = append(saves, a)
		mu.Unlock()
	}

	flow := newFlow(nil, persist)
	flow.SetAnswer("interests", Answer{Kind: KindOption, Value: "Gaming"})
	flow.Flush()

	mu.Lock()
	require.Len(t, saves, 1)
	assert.Equal(t, "Gaming", saves[0]["interests"].Value)
	mu.Unlock()
}

func TestBuildPrompt(t *testing.T) {
	answers := Answers{
		"recipient": {Kind: KindOption, Value: "Friend"},
		"budget":    {Kind: KindOption, Value: "Under $25"},
	}

	prompt := buildPrompt(answers)
	assert.Contains(t, prompt, "numbered list")
	assert.Contains(t, prompt, "Who are you shopping for?: Friend\n")
	assert.Contains(t, prompt, "What is your approximate budget?: Under $25\n")
	assert.NotContains(t, prompt, "occasion", "unanswered questions stay out of the prompt")
}
