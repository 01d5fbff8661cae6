package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		header string
		want   language.Tag
	}{
		{header: "", want: language.English},
		{header: "id-ID,id;q=0.9,en;q=0.8", want: language.Indonesian},
		{header: "en-US", want: language.English},
		{header: "fr-FR", want: language.English},
		{header: "fr;q=0.9, id;q=0.5", want: language.Indonesian},
		{header: "@@@", want: language.English},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := Match(tt.header); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}

func TestT(t *testing.T) {
	if got := T(language.Indonesian, InvalidFormat); got != "Format respons AI tidak valid" {
		t.Errorf("T(id) = %q", got)
	}
	if got := T(language.French, NoResponse); got != "No response from AI" {
		t.Errorf("T(fr) = %q", got)
	}
}
