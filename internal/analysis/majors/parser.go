package majors

import (
	"regexp"
	"strings"
)

// ListLength is the number of majors a well-formed generated list must contain.
const ListLength = 4

// ordinalPrefix matches leading numbering such as "1." or "2)".
var ordinalPrefix = regexp.MustCompile(`^\d+[.)]\s*`)

// trimCutset covers bullet punctuation the generator likes to decorate list
// items with.
const trimCutset = " \t-•*.[]\"'"

// preambleWords flags conversational lead-ins the generator sometimes emits
// instead of pure list content ("Here are four majors...").
var preambleWords = []string{"here", "the", "this", "certainly"}

// Parse normalizes loosely formatted generated text into at most ListLength
// major names. It accepts comma- or newline-delimited input, strips bullets,
// quotes and ordinal prefixes, and drops fragments too short or too generic
// to be a major name. Parse never fails; the worst case is an empty slice.
func Parse(raw string) []string {
	if raw == "" {
		return []string{}
	}

	candidates := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	out := make([]string, 0, ListLength)
	for _, candidate := range candidates {
		item := strings.Trim(candidate, trimCutset)
		item = ordinalPrefix.ReplaceAllString(item, "")
		item = strings.Trim(item, trimCutset)

		if len(item) <= 2 || isPreamble(item) {
			continue
		}

		out = append(out, item)
		if len(out) == ListLength {
			break
		}
	}
	return out
}

func isPreamble(item string) bool {
	words := strings.Fields(strings.ToLower(item))
	if len(words) == 0 {
		return true
	}
	for _, stop := range preambleWords {
		if words[0] == stop {
			return true
		}
	}
	return false
}
