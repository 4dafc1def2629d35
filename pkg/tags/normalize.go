// Package tags canonicalizes free-text tag names before they reach
// storage.
package tags

import "strings"

// Normalize trims, lowercases and deduplicates names, dropping entries
// that are empty after trimming. First-occurrence order is preserved so
// responses stay stable for a given input.
func Normalize(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))

	for _, name := range names {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	return result
}
