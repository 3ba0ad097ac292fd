package response

import "regexp"

// fencedJSON matches the first ```json fenced block, shortest interior, across newlines.
var fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// ExtractJSON returns the interior of the first ```json fenced block in text.
func ExtractJSON(text string) (string, bool) {
	matches := fencedJSON.FindStringSubmatch(text)
	if len(matches) < 2 {
		return "", false
	}
	return matches[1], true
}

// CandidateJSON is the text to parse as JSON: the fenced block interior when
// there is one, otherwise the whole reply unmodified.
func CandidateJSON(text string) string {
	if inner, ok := ExtractJSON(text); ok {
		return inner
	}
	return text
}
