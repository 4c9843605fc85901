package emotion

import (
	"strings"
	"unicode"
)

// Normalize cleans raw user text into the canonical form the classifier works
// on. It is pure and never fails; empty input yields empty output. Each step
// is idempotent, so normalizing twice gives the same result.
//
// Steps, in order: trim, strip emoji and pictographs, strip digits, drop
// anything that is not an Arabic/Latin letter, whitespace or basic
// punctuation, unify alef/yaa/taa-marbuta variants, strip Arabic diacritics,
// collapse whitespace runs.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = stripEmoji(s)
	s = stripDigits(s)
	s = filterAllowed(s)
	s = unifyArabicLetters(s)
	s = stripDiacritics(s)
	return collapseWhitespace(s)
}

// MapDialect substitutes Egyptian colloquial tokens with standard-register
// equivalents, on exact whitespace-token match only. The substitution loses
// dialect nuance, so it is opt-in and never part of Normalize.
func MapDialect(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		if std, ok := dialectToStandard[w]; ok {
			words[i] = std
		}
	}
	return strings.Join(words, " ")
}

func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // pictographs, emoticons, transport, supplemental
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	case r == 0xFE0F || r == 0x200D: // variation selector, ZWJ
		return true
	}
	return false
}

func stripEmoji(s string) string {
	return strings.Map(func(r rune) rune {
		if isEmoji(r) {
			return -1
		}
		return r
	}, s)
}

func stripDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, s)
}

// allowedPunct is the punctuation kept by the character filter.
const allowedPunct = ".,!?؛،"

// isArabicDiacritic reports whether r is in the Arabic diacritics range.
// These are combining marks with script Inherited, so they need an explicit
// carve-out in the letter filter to survive until stripDiacritics.
func isArabicDiacritic(r rune) bool {
	return r >= 0x064B && r <= 0x065F
}

func filterAllowed(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return r
		case strings.ContainsRune(allowedPunct, r):
			return r
		case isArabicDiacritic(r):
			return r
		case unicode.IsLetter(r) && (unicode.Is(unicode.Arabic, r) || unicode.Is(unicode.Latin, r)):
			return r
		}
		return -1
	}, s)
}

var arabicLetterUnifier = strings.NewReplacer(
	"إ", "ا",
	"أ", "ا",
	"آ", "ا",
	"ى", "ي",
	"ة", "ه",
)

func unifyArabicLetters(s string) string {
	return arabicLetterUnifier.Replace(s)
}

func stripDiacritics(s string) string {
	return strings.Map(func(r rune) rune {
		if isArabicDiacritic(r) {
			return -1
		}
		return r
	}, s)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
