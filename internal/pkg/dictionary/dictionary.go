// Package dictionary looks up phonetic transcriptions and glosses for
// catalog words. Lookups are best effort; callers fall back to the catalog
// translation on any error.
package dictionary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evandrarf/words7000-bot/internal/pkg/llm"
	"github.com/tidwall/gjson"
)

var ErrDefinitionNotFound = errors.New("definition not found")

type Definition struct {
	Word     string `json:"word"`
	Phonetic string `json:"phonetic"`
	Gloss    string `json:"gloss"`
}

type Dictionary interface {
	Lookup(ctx context.Context, word string) (*Definition, error)
}

// Noop never finds anything, which makes every card use the catalog gloss.
type Noop struct{}

func (Noop) Lookup(context.Context, string) (*Definition, error) {
	return nil, ErrDefinitionNotFound
}

type llmDictionary struct {
	gen     llm.TextGenerator
	timeout time.Duration
}

func NewLLMDictionary(gen llm.TextGenerator, timeout time.Duration) Dictionary {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &llmDictionary{gen: gen, timeout: timeout}
}

func (d *llmDictionary) Lookup(ctx context.Context, word string) (*Definition, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, ErrDefinitionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	text, err := d.gen.GenerateText(ctx, strings.ReplaceAll(lookupPrompt, "{{word}}", word))
	if err != nil {
		return nil, fmt.Errorf("dictionary lookup %q: %w", word, err)
	}
	return parseDefinition(word, text)
}

func parseDefinition(word, text string) (*Definition, error) {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	if !gjson.Valid(clean) {
		return nil, fmt.Errorf("dictionary output is not valid json")
	}
	res := gjson.Parse(clean)
	if found := res.Get("found"); found.Exists() && !found.Bool() {
		return nil, ErrDefinitionNotFound
	}
	def := &Definition{
		Word:     word,
		Phonetic: strings.TrimSpace(res.Get("phonetic").String()),
		Gloss:    strings.TrimSpace(res.Get("definition").String()),
	}
	if def.Gloss == "" {
		return nil, ErrDefinitionNotFound
	}
	return def, nil
}

const lookupPrompt = `You are an English-Traditional Chinese learner's dictionary.

Word: {{word}}

Return the KK or IPA phonetic transcription and a short definition in
Traditional Chinese listing each part of speech with one example sentence.
If the word does not exist, return {"found": false}.

IMPORTANT: Return ONLY valid JSON, NO markdown, NO code blocks.
JSON format:
{"found":true,"phonetic":"KK: [ˋæp!] IPA: [ˈæpl]","definition":"n. 蘋果\nAn apple a day keeps the doctor away."}
`
