package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/evandrarf/words7000-bot/internal/pkg/textnorm"
)

// WordID is the canonical, string form of a catalog identifier. Catalog files
// mix numeric and string ids, so both decode to the same WordID.
type WordID string

func NewWordID(raw string) WordID {
	return WordID(strings.TrimSpace(raw))
}

func (id WordID) String() string { return string(id) }

func (id *WordID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = NewWordID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("word id must be a string or number: %w", err)
	}
	*id = NewWordID(n.String())
	return nil
}

type Level string

const (
	LevelStandard Level = "standard"
	LevelAdvanced Level = "advanced"
)

type WordEntry struct {
	ID        WordID `json:"id" validate:"required"`
	Word      string `json:"word" validate:"required"`
	Translate string `json:"translate" validate:"required"`
}

// DisplayWord is the word without its part-of-speech annotation.
func (w WordEntry) DisplayWord() string {
	return textnorm.StripPOS(w.Word)
}
