package quiz

import "time"

// Answer kinds. An "option" answer picked one of the question's
// options; an "other" answer is free-form text.
const (
	KindOption = "option"
	KindOther  = "other"
)

// Answer is one tagged quiz answer. The JSON shape matches the persisted
// quiz_answers column.
type Answer struct {
	Kind  string `json:"type"`
	Value string `json:"value"`
}

// Answers maps question id to answer.
type Answers map[string]Answer

// GiftIdea is one generated result, with the answers that produced it
// and an optional contact association.
type GiftIdea struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	UserID             string    `gorm:"type:varchar(36);index" json:"user_id"`
	ContactID          *uint     `gorm:"index" json:"contact_id"`
	QuizAnswers        string    `gorm:"column:quiz_answers_snapshot;type:text" json:"quiz_answers_snapshot"`
	GeneratedIdeasText string    `gorm:"type:text" json:"generated_ideas_text"`
	CreatedAt          time.Time `json:"created_at"`
}
