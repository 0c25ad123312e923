package entity

import "github.com/evandrarf/words7000-bot/internal/pkg/textnorm"

// CollectionCapacity is the maximum number of words a user can save.
const CollectionCapacity = 70

// QuestionDescriptor is a rendered-agnostic question. Options holds the raw
// answer-field values, already shuffled; it is empty for audio questions.
type QuestionDescriptor struct {
	Tier    Tier      `json:"tier"`
	Target  WordEntry `json:"target"`
	Prompt  string    `json:"prompt"`
	Options []string  `json:"options,omitempty"`
}

// Labels returns the options as they are shown on buttons.
func (q QuestionDescriptor) Labels() []string {
	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = textnorm.StripPOS(o)
	}
	return labels
}

// Answer is the correct option value.
func (q QuestionDescriptor) Answer() string {
	return q.Tier.Answer(q.Target)
}

type UserProgress struct {
	UserID      string `json:"user_id"`
	Point       int    `json:"point"`
	WrongAnswer int    `json:"wrong_answer"`
}

func (p UserProgress) Score() int {
	return p.Point - p.WrongAnswer
}

func (p UserProgress) Stars() int {
	return StarRating(p.Score())
}

// StarRating maps a net score to 1..5 stars.
func StarRating(score int) int {
	switch {
	case score >= 2500:
		return 5
	case score >= 1000:
		return 4
	case score >= 500:
		return 3
	case score >= 100:
		return 2
	default:
		return 1
	}
}
