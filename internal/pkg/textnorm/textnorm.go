// Package textnorm holds the string clean-ups applied to catalog words before
// they are displayed, compared or looked up.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	// "word (n.)" -> "word"
	posAnnotation = regexp.MustCompile(`(\w+)\s(\(\w+\.\))`)
	// "word (n.) something" -> "word"; applied to dictation answers
	trailingSuffix = regexp.MustCompile(`(\w+)\s.+`)
	spellingNoise  = regexp.MustCompile(`[-.\s]`)
)

// StripPOS removes parenthetical part-of-speech annotations.
func StripPOS(s string) string {
	return posAnnotation.ReplaceAllString(s, "$1")
}

// Spelling normalizes a word for dictation grading. It is idempotent.
func Spelling(s string) string {
	s = strings.ReplaceAll(s, "é", "e")
	s = trailingSuffix.ReplaceAllString(s, "$1")
	s = spellingNoise.ReplaceAllString(s, "")
	return strings.ToLower(s)
}

// LookupKey is the form a word is sent to the dictionary in.
func LookupKey(s string) string {
	s = strings.ReplaceAll(s, "é", "e")
	s = StripPOS(s)
	return spellingNoise.ReplaceAllString(s, "")
}

// Aliases maps catalog strings to the form used in lookups, e.g.
// "BBQ" -> "barbecue". Keys loaded through viper arrive lower-cased, so an
// exact match is tried first and then a case-insensitive one.
type Aliases map[string]string

func (a Aliases) Resolve(s string) string {
	if v, ok := a[s]; ok && v != "" {
		return v
	}
	if v, ok := a[strings.ToLower(s)]; ok && v != "" {
		return v
	}
	return s
}
