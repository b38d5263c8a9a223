// Package text provides utilities for text measurement.
// Character counts reported in logs, metrics, and length targets are rune
// counts, so multi-byte content is measured the same way a reader would.
package text

// CountRunes counts the number of Unicode characters (runes) in the given
// text. Post titles, meta descriptions, and bodies are measured with this
// function so byte length never leaks into length accounting.
//
// Examples:
//
//	CountRunes("hello")     // returns 5 (ASCII text)
//	CountRunes("こんにちは")   // returns 5 (Japanese text)
//	CountRunes("Hello👋")    // returns 6 (text with emoji)
//	CountRunes("")          // returns 0 (empty string)
func CountRunes(text string) int {
	return len([]rune(text))
}
