package domain

import (
	"strings"
)

// NormalizeText prepares free text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
//
// Diacritics are preserved; use analytics.MedicationKey for clinical matching.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// NormalizeLocations normalizes pain location tags, dropping empties and
// duplicates while keeping first-seen order.
func NormalizeLocations(locations []string) []string {
	if len(locations) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(locations))
	out := make([]string, 0, len(locations))
	for _, l := range locations {
		n := NormalizeText(l)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
