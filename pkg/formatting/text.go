// Package formatting provides small text formatting helpers shared by
// event payloads and analytics output.
package formatting

// PreviewLength is the character budget for review text previews in live
// events and analytics examples.
const PreviewLength = 100

// Preview truncates s to limit characters, appending an ellipsis when
// anything was cut. Truncation counts runes so multi-byte text is never
// split mid-character.
func Preview(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
