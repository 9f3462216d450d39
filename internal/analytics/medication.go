package analytics

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// acuteClassStem is the substring shared by every triptan generic name
// (sumatriptan, rizatriptan, zolmitriptan, ...).
const acuteClassStem = "triptan"

// acuteClassBrands are brand names that do not contain the stem.
// Entries are stored normalized (see MedicationKey).
var acuteClassBrands = []string{
	"imigran",
	"imitrex",
	"maxalt",
	"ascotop",
	"zomig",
	"relpax",
	"naramig",
	"amerge",
	"almogran",
	"axert",
	"allegro",
	"frova",
	"formigran",
	"treximet",
	"tosymra",
	"onzetra",
	"zembrace",
}

// MedicationKey normalizes a medication name for matching and grouping:
// lowercase, diacritics removed, every non-alphanumeric rune dropped.
// "Suma-Triptan 50 mg" and "sumatriptan50mg" share a key.
func MedicationKey(name string) string {
	if name == "" {
		return ""
	}

	// transform.Chain keeps state, so it is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsAcuteClass reports whether name is an acute-class (triptan) medication.
// Matching is an exact substring test on the normalized name, never fuzzy.
// Empty or unknown names are not acute-class.
func IsAcuteClass(name string) bool {
	key := MedicationKey(name)
	if key == "" {
		return false
	}
	if strings.Contains(key, acuteClassStem) {
		return true
	}
	for _, brand := range acuteClassBrands {
		if strings.Contains(key, brand) {
			return true
		}
	}
	return false
}
