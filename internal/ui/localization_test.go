package ui

import "testing"

func TestLocalization_Defaults(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected en, got %s", l.GetCurrentLanguage())
	}
	if l.GetText(KeyStop) != "Stop" {
		t.Errorf("Unexpected text: %s", l.GetText(KeyStop))
	}
	if l.GetText("missing_key") != "missing_key" {
		t.Error("Unknown keys should fall back to the key itself")
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if l.GetText(KeyPause) != "Пауза" {
		t.Errorf("Unexpected Russian text: %s", l.GetText(KeyPause))
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Error("Unsupported language should be ignored")
	}
}

func TestLocalization_Format(t *testing.T) {
	l := NewLocalization()

	got := l.Format(KeyBatchProgress, 3, 5, 1)
	if got != "3/5 done (failed: 1)" {
		t.Errorf("Unexpected formatted text: %s", got)
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("No texts for %s", code)
			continue
		}
		for key := range l.texts["en"] {
			if _, found := texts[key]; !found {
				t.Errorf("%s is missing %s", code, key)
			}
		}
	}
}
