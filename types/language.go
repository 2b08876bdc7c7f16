package types

import "strings"

var languageCodes = []struct {
	code     string
	keywords []string
}{
	{"en", []string{"english", "anglais"}},
	{"de", []string{"german", "deutsch", "allemand"}},
	{"es", []string{"spanish", "español", "espagnol"}},
	{"it", []string{"italian", "italiano", "italien"}},
	{"zh", []string{"chinese", "中文", "chinois"}},
	{"ar", []string{"arabic", "العربية", "arabe"}},
}

// ContentLanguageCode maps a free-text content language to an ISO 639-1 code.
// Anything unrecognized is treated as French.
func ContentLanguageCode(contentLanguage string) string {
	normalized := strings.ToLower(contentLanguage)
	for _, entry := range languageCodes {
		for _, k := range entry.keywords {
			if strings.Contains(normalized, k) {
				return entry.code
			}
		}
	}
	return "fr"
}
