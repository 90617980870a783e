package i18n

import (
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestNewTranslations(t *testing.T) {
	t.Run("Should successfully create translations with valid language", func(t *testing.T) {
		// act
		trans, err := NewTranslations("es")

		// assert
		if err != nil {
			t.Errorf("NewTranslations() should not return an error, got: %v", err)
		}

		if trans == nil {
			t.Error("NewTranslations() should not return nil")
		}
	})

	t.Run("Should fail with empty language", func(t *testing.T) {
		// act
		trans, err := NewTranslations("")

		// assert
		if err == nil {
			t.Error("NewTranslations() should return an error for an empty language")
		}

		if trans != nil {
			t.Error("NewTranslations() should return nil when it fails")
		}
	})

	t.Run("Should fall back to English for an unknown but valid language", func(t *testing.T) {
		// arrange
		trans, err := NewTranslations("fr")
		if err != nil {
			t.Fatal("test setup failed:", err)
		}

		// act
		result := trans.GetMessage("flag.list", 0, nil)

		// assert
		if result != "List the available devmojis" {
			t.Errorf("GetMessage() = %v, want the English message", result)
		}
	})
}

func TestSetLanguage(t *testing.T) {
	t.Run("Should change to a valid language", func(t *testing.T) {
		// arrange
		trans, err := NewTranslations("en")
		if err != nil {
			t.Fatal("test setup failed:", err)
		}

		// act
		err = trans.SetLanguage("es")

		// assert
		if err != nil {
			t.Errorf("SetLanguage() should not return an error, got: %v", err)
		}
		if got := trans.GetMessage("flag.no_color", 0, nil); got != "Desactivar los colores" {
			t.Errorf("GetMessage() = %v after switching to es", got)
		}
	})

	t.Run("Should fail with unsupported language", func(t *testing.T) {
		// arrange
		trans, err := NewTranslations("es")
		if err != nil {
			t.Fatal("test setup failed:", err)
		}

		// act
		err = trans.SetLanguage("fr")

		// asssert
		if err == nil {
			t.Error("SetLanguage() should return an error for an unsupported language")
		}
	})
}

func TestGetMessage(t *testing.T) {
	trans, err := NewTranslations("es")
	if err != nil {
		t.Fatal("test setup failed:", err)
	}

	t.Run("Should get singular message correctly", func(t *testing.T) {
		result := trans.GetMessage("list.count", 1, map[string]interface{}{"Count": 1})

		if result != "1 devmoji" {
			t.Errorf("GetMessage() = %v, want %v", result, "1 devmoji")
		}
	})

	t.Run("Should get plural message correctly", func(t *testing.T) {
		result := trans.GetMessage("list.count", 11, map[string]interface{}{"Count": 11})

		if result != "11 devmojis" {
			t.Errorf("GetMessage() = %v, want %v", result, "11 devmojis")
		}
	})

	t.Run("Should handle templates correctly", func(t *testing.T) {
		result := trans.GetMessage("warning.unsupported_lang", 0, map[string]interface{}{"Lang": "fr"})

		if result != "El idioma fr no está soportado, se mantiene el predeterminado" {
			t.Errorf("GetMessage() = %v", result)
		}
	})

	t.Run("Should handle missing messages", func(t *testing.T) {
		result := trans.GetMessage("NonExistent", 1, nil)

		expected := "Translation missing: NonExistent"
		if result != expected {
			t.Errorf("GetMessage() = %v, want %v", result, expected)
		}
	})
}

func TestLocalesHaveSameKeys(t *testing.T) {
	keys := func(lang string) map[string]bool {
		data, err := localeFS.ReadFile("locales/active." + lang + ".toml")
		if err != nil {
			t.Fatal(err)
		}
		var m map[string]interface{}
		if err := toml.Unmarshal(data, &m); err != nil {
			t.Fatal(err)
		}
		out := map[string]bool{}
		var walk func(prefix string, v map[string]interface{})
		walk = func(prefix string, v map[string]interface{}) {
			for k, child := range v {
				if sub, ok := child.(map[string]interface{}); ok {
					if _, leaf := sub["other"]; leaf {
						out[prefix+k] = true
						continue
					}
					walk(prefix+k+".", sub)
				}
			}
		}
		walk("", m)
		return out
	}

	en, es := keys("en"), keys("es")
	for k := range en {
		if !es[k] {
			t.Errorf("es locale is missing %s", k)
		}
	}
	for k := range es {
		if !en[k] {
			t.Errorf("en locale has no %s", k)
		}
	}
	if len(en) == 0 || !strings.Contains(strings.Join(keysOf(en), ","), "flag.") {
		t.Error("expected flag messages in the en locale")
	}
}

func keysOf(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestLanguages(t *testing.T) {
	trans, err := NewTranslations("en")
	if err != nil {
		t.Fatal(err)
	}

	langs := strings.Join(trans.Languages(), ",")
	if !strings.Contains(langs, "en") || !strings.Contains(langs, "es") {
		t.Errorf("Languages() = %v, want en and es", langs)
	}
}
