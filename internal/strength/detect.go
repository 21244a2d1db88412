package strength

import (
	"strings"
	"unicode"
)

// DefaultWindow is the substring length the detectors scan for.
const DefaultWindow = 3

// DetectSequences reports whether password contains an ascending run of
// digits ("123") or letters ("abc") of the given window length. The check
// is case-insensitive; descending runs ("321", "cba") are not flagged.
// Passwords shorter than the window never match.
func DetectSequences(password string, window int) bool {
	runes := []rune(strings.ToLower(password))
	if len(runes) < window {
		return false
	}

	for i := 0; i+window <= len(runes); i++ {
		sub := runes[i : i+window]
		if isAscendingRun(sub, unicode.IsDigit) || isAscendingRun(sub, unicode.IsLetter) {
			return true
		}
	}
	return false
}

// isAscendingRun reports whether every rune satisfies class and each rune
// is exactly one code point above its predecessor.
func isAscendingRun(sub []rune, class func(rune) bool) bool {
	for i, r := range sub {
		if !class(r) {
			return false
		}
		if i > 0 && r != sub[i-1]+1 {
			return false
		}
	}
	return true
}

// DetectRepetitions reports whether password contains a run of identical
// characters of the given window length ("aaa", "111"). Unlike the
// sequence check this is case-sensitive: "AaA" does not match. Passwords
// shorter than the window never match.
func DetectRepetitions(password string, window int) bool {
	runes := []rune(password)
	if len(runes) < window {
		return false
	}

	for i := 0; i+window <= len(runes); i++ {
		repeated := true
		for j := i + 1; j < i+window; j++ {
			if runes[j] != runes[i] {
				repeated = false
				break
			}
		}
		if repeated {
			return true
		}
	}
	return false
}
