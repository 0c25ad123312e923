package entity

import (
	"fmt"
	"strings"
)

type Tier string

const (
	TierEnglish        Tier = "english"
	TierChinese        Tier = "chinese"
	TierEnglishAdvance Tier = "english_advance"
	TierChineseAdvance Tier = "chinese_advance"
	TierAudio          Tier = "audio"
)

var AllTiers = []Tier{TierEnglish, TierChinese, TierAudio, TierEnglishAdvance, TierChineseAdvance}

func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TierEnglish, TierChinese, TierEnglishAdvance, TierChineseAdvance, TierAudio:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

func (t Tier) Advanced() bool {
	return t == TierEnglishAdvance || t == TierChineseAdvance
}

// Level reports which catalog the tier samples. Audio questions always use
// the standard catalog.
func (t Tier) Level() Level {
	if t.Advanced() {
		return LevelAdvanced
	}
	return LevelStandard
}

func (t Tier) MultipleChoice() bool {
	return t != TierAudio
}

// DistractorCount is the number of wrong options shown next to the answer.
func (t Tier) DistractorCount() int {
	switch {
	case t == TierAudio:
		return 0
	case t.Advanced():
		return 5
	default:
		return 3
	}
}

func (t Tier) asksWord() bool {
	return t == TierEnglish || t == TierEnglishAdvance
}

// Prompt returns the field of w shown as the question.
func (t Tier) Prompt(w WordEntry) string {
	if t.asksWord() {
		return w.Word
	}
	return w.Translate
}

// Answer returns the field of w the user has to pick.
func (t Tier) Answer(w WordEntry) string {
	switch {
	case t.asksWord():
		return w.Translate
	default:
		return w.Word
	}
}
