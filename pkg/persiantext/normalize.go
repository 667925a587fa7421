// Package persiantext normalizes Persian strings for search matching.
//
// User-entered text mixes Arabic and Persian codepoints for the same letters
// (ي vs ی, ك vs ک), Arabic-Indic and Persian digits, and half-spaces (ZWNJ).
// Substring search must not care about any of that.
package persiantext

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldRunes = map[rune]rune{
	'ي': 'ی', // ARABIC YEH -> FARSI YEH
	'ى': 'ی', // ALEF MAKSURA -> FARSI YEH
	'ك': 'ک', // ARABIC KAF -> KEHEH
	'ة': 'ه', // TEH MARBUTA -> HEH
	'أ': 'ا', // ALEF WITH HAMZA ABOVE -> ALEF
	'إ': 'ا', // ALEF WITH HAMZA BELOW -> ALEF
	'آ': 'ا', // ALEF WITH MADDA -> ALEF
	'ؤ': 'و', // WAW WITH HAMZA -> WAW
}

func foldRune(r rune) rune {
	if m, ok := foldRunes[r]; ok {
		return m
	}
	// Persian (U+06F0..U+06F9) and Arabic-Indic (U+0660..U+0669) digits -> ASCII
	if r >= '۰' && r <= '۹' {
		return '0' + (r - '۰')
	}
	if r >= '٠' && r <= '٩' {
		return '0' + (r - '٠')
	}
	return unicode.ToLower(r)
}

var foldTransformer = transform.Chain(
	norm.NFKC,
	runes.Remove(runes.Predicate(func(r rune) bool {
		return r == '‌' || r == '‏' || r == '‎' // ZWNJ and direction marks
	})),
	runes.Map(foldRune),
)

// Fold returns s normalized for comparison: NFKC form, Arabic letter variants
// folded to their Persian equivalents, Persian/Arabic digits folded to ASCII,
// ZWNJ and direction marks removed, Latin lowercased.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Transform only fails on invalid UTF-8; fall back to lowercasing.
		return strings.ToLower(s)
	}
	return out
}

// Contains reports whether haystack contains needle after folding both sides.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
