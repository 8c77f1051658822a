package dto

// SettingsResponse returns practice settings with the API key masked.
type SettingsResponse struct {
	Language            string `json:"language"`
	SanskritTerms       bool   `json:"sanskritTerms"`
	DarkMode            bool   `json:"darkMode"`
	GeminiAPIKey        string `json:"geminiApiKey,omitempty"`
	GeminiKeyConfigured bool   `json:"geminiKeyConfigured"`
}

// SettingsUpdateRequest patches settings; nil fields are left untouched.
type SettingsUpdateRequest struct {
	Language      *string `json:"language,omitempty" validate:"omitempty,oneof=en hi sa"`
	SanskritTerms *bool   `json:"sanskritTerms,omitempty"`
	DarkMode      *bool   `json:"darkMode,omitempty"`
	GeminiAPIKey  *string `json:"geminiApiKey,omitempty"`
}
