// Package i18n picks the language of user-facing suggestion messages.
package i18n

import "golang.org/x/text/language"

type Key int

const (
	GoalRequired Key = iota
	NoResponse
	InvalidFormat
	ParseFailed
	GenerateFailed
)

// supported languages; the first is the fallback.
var supported = []language.Tag{language.English, language.Indonesian}

var matcher = language.NewMatcher(supported)

var messages = map[language.Tag]map[Key]string{
	language.English: {
		GoalRequired:   "Goal is required",
		NoResponse:     "No response from AI",
		InvalidFormat:  "Invalid AI response format",
		ParseFailed:    "Failed to parse AI suggestions",
		GenerateFailed: "Failed to generate todo suggestions",
	},
	language.Indonesian: {
		GoalRequired:   "Tujuan wajib diisi",
		NoResponse:     "Tidak ada respons dari AI",
		InvalidFormat:  "Format respons AI tidak valid",
		ParseFailed:    "Gagal memparse saran AI",
		GenerateFailed: "Gagal menghasilkan saran todo",
	},
}

// Match returns the supported language closest to an Accept-Language header.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return supported[0]
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// T returns the message for key in lang, falling back to English.
func T(lang language.Tag, key Key) string {
	if m, ok := messages[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return messages[supported[0]][key]
}
