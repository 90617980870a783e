package devmoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmojify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare name", "sparkles", "✨"},
		{"with colons", ":sparkles:", "✨"},
		{"unknown name keeps its text", "nope_nope_nope", ":nope_nope_nope:"},
		{"literal glyph", "🦄", "🦄"},
		{"emoji 14 alias", "saluting_face", "\U0001fae1"},
		{"emoji 14 alias with colons", ":melting_face:", "\U0001fae0"},
		{"gemoji alias keeps its canonical glyph", "construction_worker", "\U0001f477"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Emojify(tt.input))
		})
	}
}

func TestShortcodeOf(t *testing.T) {
	name, ok := ShortcodeOf("✨")
	assert.True(t, ok)
	assert.Equal(t, "sparkles", name)

	name, ok = ShortcodeOf("♻")
	assert.True(t, ok, "a glyph without its variation selector is still known")
	assert.Equal(t, "recycle", name)

	_, ok = ShortcodeOf("x")
	assert.False(t, ok)
}

func TestDemojify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single glyph", "ship it ✨", "ship it :sparkles:"},
		{"several glyphs", "🐛✨ fix", ":bug::sparkles: fix"},
		{"variation selector is consumed", "♻️ tidy", ":recycle: tidy"},
		{"bare glyph without selector", "♻ tidy", ":recycle: tidy"},
		{"emoji 14 glyph", "\U0001fae1 done", ":saluting_face: done"},
		{"plain text symbols are kept", "Acme™ © 2024", "Acme™ © 2024"},
		{"no emoji", "plain text", "plain text"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Demojify(tt.input))
		})
	}
}
