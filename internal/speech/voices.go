package speech

// Voice identifies a synthesis voice and its locale code as the
// text-to-speech endpoint expects them.
type Voice struct {
	Name         string
	LanguageCode string
}

// voices maps display languages to synthesis voices. Not every translation
// target has one; languages absent here cannot be played aloud.
var voices = map[string]Voice{
	"English":    {Name: "en-US-Standard-A", LanguageCode: "en-US"},
	"Spanish":    {Name: "es-ES-Standard-A", LanguageCode: "es-ES"},
	"French":     {Name: "fr-FR-Standard-A", LanguageCode: "fr-FR"},
	"German":     {Name: "de-DE-Standard-A", LanguageCode: "de-DE"},
	"Italian":    {Name: "it-IT-Standard-A", LanguageCode: "it-IT"},
	"Portuguese": {Name: "pt-BR-Standard-A", LanguageCode: "pt-BR"},
	"Japanese":   {Name: "ja-JP-Standard-A", LanguageCode: "ja-JP"},
	"Korean":     {Name: "ko-KR-Standard-A", LanguageCode: "ko-KR"},
}

// VoiceFor returns the synthesis voice for a display language.
func VoiceFor(language string) (Voice, bool) {
	v, ok := voices[language]
	return v, ok
}

// Supported reports whether a display language has a synthesis voice.
func Supported(language string) bool {
	_, ok := voices[language]
	return ok
}
