package http

import "unicode"

// capitalizeFirst upper-cases the first rune so service-level error
// strings read as sentences in the plain-text responses.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
