package dictionary

import (
	"regexp"
	"strings"
)

var (
	// trailingDigits matches confidence-adjacent numeric suffixes the
	// classifier appends to labels, e.g. "Granny Smith 12".
	trailingDigits = regexp.MustCompile(`\s*\d+\s*$`)

	// annotationSpan matches the API's non-nested {..} markup spans.
	annotationSpan = regexp.MustCompile(`\{[^}]+\}`)

	// sentenceBoundary splits on a period and any following whitespace.
	sentenceBoundary = regexp.MustCompile(`\.\s*`)
)

// NormalizeWord derives the dictionary lookup word from a raw
// classifier label: the trailing digit run is stripped and the first
// whitespace-delimited token is returned. A label that is empty after
// stripping yields ""; callers are expected to guard against that.
func NormalizeWord(label string) string {
	label = trailingDigits.ReplaceAllString(label, "")
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// parseDefinitionText strips annotation markup from a defining-text
// blob and picks one sentence out of it. When two or more sentences
// survive, the second is returned: the first is usually a usage label
// or cross-reference rather than the definition proper. The reported
// bool is false when nothing survives.
func parseDefinitionText(text string) (string, bool) {
	text = strings.TrimSpace(annotationSpan.ReplaceAllString(text, ""))

	var sentences []string
	for _, s := range sentenceBoundary.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}

	switch {
	case len(sentences) >= 2:
		return sentences[1] + ".", true
	case len(sentences) == 1:
		return sentences[0] + ".", true
	}
	return "", false
}
