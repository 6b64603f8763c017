package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalization_DefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "Merge PDFs", l.GetText(KeyMergePDFs))
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("it")
	assert.Equal(t, "it", l.GetCurrentLanguage())
	assert.Equal(t, "Droppa qui i file", l.GetText(KeyDropHere))

	// Unknown languages are ignored
	l.SetLanguage("xx")
	assert.Equal(t, "it", l.GetCurrentLanguage())

	// System maps to English
	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage())
}

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	assert.Equal(t, "missing_key", l.GetText("missing_key"))
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		texts, exists := l.texts[lang]
		if !assert.True(t, exists, "missing texts for %s", lang) {
			continue
		}
		for key := range l.texts["en"] {
			_, found := texts[key]
			assert.True(t, found, "language %s is missing key %s", lang, key)
		}
	}
}
