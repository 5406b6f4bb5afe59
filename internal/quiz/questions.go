package quiz

// Question types. "radio-with-other" renders options plus a free-form
// "other" input; "radio" is options only; "text" is free-form only.
const (
	TypeRadio          = "radio"
	TypeRadioWithOther = "radio-with-other"
	TypeText           = "text"
)

// Question is one step of the gift idea quiz.
type Question struct {
	ID               string   `json:"id"`
	Text             string   `json:"text"`
	Type             string   `json:"type"`
	Options          []string `json:"options,omitempty"`
	Placeholder      string   `json:"placeholder,omitempty"`
	OtherPlaceholder string   `json:"otherPlaceholder,omitempty"`
}

// questions is the fixed quiz, in presentation order.
var questions = []Question{
	{
		ID:               "recipient",
		Text:             "Who are you shopping for?",
		Type:             TypeRadioWithOther,
		Options:          []string{"Friend", "Family Member", "Partner", "Colleague", "Child"},
		OtherPlaceholder: "e.g., My neighbor, My pet",
	},
	{
		ID:               "occasion",
		Text:             "What is the occasion?",
		Type:             TypeRadioWithOther,
		Options:          []string{"Birthday", "Anniversary", "Holiday", "Graduation", "Just Because"},
		OtherPlaceholder: "e.g., Housewarming, Promotion",
	},
	{
		ID:          "interests",
		Text:        "What are their main interests or hobbies?",
		Type:        TypeText,
		Placeholder: "e.g., Reading, Gaming, Cooking, Art, Outdoors",
	},
	{
		ID:      "budget",
		Text:    "What is your approximate budget?",
		Type:    TypeRadio,
		Options: []string{"Under $25", "$25 - $50", "$50 - $100", "Over $100"},
	},
	{
		ID:          "personality",
		Text:        "Describe their personality in a few words:",
		Type:        TypeText,
		Placeholder: "e.g., Creative, Adventurous, Cozy, Practical, Humorous",
	},
}

// Questions returns the quiz fixture.
func Questions() []Question {
	return questions
}

func questionByID(id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}
