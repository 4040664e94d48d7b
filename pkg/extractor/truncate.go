package extractor

import "unicode"

// Truncate shortens text to at most maxLen characters.
//
// A cut after the last sentence end (. ! ?) is used when it keeps at least half
// the budget. Otherwise the text is cut at the last word boundary, or mid-word
// as a last resort, and "..." is appended within the budget.
func Truncate(text string, maxLen int) (string, bool) {
	if maxLen <= 0 {
		return "", text != ""
	}

	runes := []rune(text)
	if len(runes) <= maxLen {
		return text, false
	}

	if end := lastSentenceEnd(runes, maxLen); end > 0 && end >= maxLen/2 {
		return string(runes[:end]), true
	}

	window := maxLen - len(ellipsis)
	if window <= 0 {
		return string(runes[:maxLen]), true
	}

	if cut := lastWordBoundary(runes, window); cut > 0 {
		return string(runes[:cut]) + ellipsis, true
	}
	return string(runes[:window]) + ellipsis, true
}

// lastSentenceEnd returns the length of the longest prefix of at most limit runes
// that ends with sentence punctuation followed by a space, or 0.
func lastSentenceEnd(runes []rune, limit int) int {
	for i := limit - 1; i > 0; i-- {
		switch runes[i] {
		case '.', '!', '?':
			if i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				return i + 1
			}
		}
	}
	return 0
}

// lastWordBoundary returns the length of the longest prefix of at most limit
// runes that ends right before a space, with trailing spaces dropped, or 0.
func lastWordBoundary(runes []rune, limit int) int {
	for i := limit; i > 0; i-- {
		if i < len(runes) && unicode.IsSpace(runes[i]) {
			end := i
			for end > 0 && unicode.IsSpace(runes[end-1]) {
				end--
			}
			return end
		}
	}
	return 0
}
