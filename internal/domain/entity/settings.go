package entity

// Settings holds practice-wide preferences persisted alongside the
// patient store.
type Settings struct {
	Language      string `json:"language"`
	SanskritTerms bool   `json:"sanskritTerms"`
	DarkMode      bool   `json:"darkMode"`
	GeminiAPIKey  string `json:"geminiApiKey,omitempty"`
}

// Supported interface languages
const (
	LanguageEnglish  = "en"
	LanguageHindi    = "hi"
	LanguageSanskrit = "sa"
)

// DefaultSettings returns the settings used when nothing has been saved yet.
func DefaultSettings() Settings {
	return Settings{Language: LanguageEnglish}
}
