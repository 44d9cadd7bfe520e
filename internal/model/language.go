package model

// translationLanguages is the fixed supported-language set for the translate
// control, in display order. The backend's translator accepts more, but the
// client only offers these ten.
var translationLanguages = []string{
	"English",
	"Spanish",
	"French",
	"German",
	"Italian",
	"Portuguese",
	"Russian",
	"Chinese",
	"Japanese",
	"Korean",
}

// TranslationSupported reports whether lang is a supported translation target.
// The translation endpoint takes the display name itself; locale codes only
// exist on the synthesis side, in the voice table.
func TranslationSupported(lang string) bool {
	for _, l := range translationLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// NextLanguage returns the language after lang in display order, wrapping
// around. Unknown languages restart at the beginning of the list.
func NextLanguage(lang string) string {
	for i, l := range translationLanguages {
		if l == lang {
			return translationLanguages[(i+1)%len(translationLanguages)]
		}
	}
	return translationLanguages[0]
}
