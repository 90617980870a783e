package devmoji

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/enescakir/emoji"
	kyokomi "github.com/kyokomi/emoji/v2"
	"github.com/thomas-vilte/devmoji/internal/regex"
)

// IsShortcode reports whether s looks like a github emoji shortcode, with or
// without the surrounding colons.
func IsShortcode(s string) bool {
	return regex.Shortcode.MatchString(s)
}

// Emojify resolves a github emoji shortcode to its glyph. Unknown shortcodes
// resolve to their ":name:" text, and values that are not shortcode shaped
// are returned unchanged since they are taken to be literal glyphs.
func Emojify(s string) string {
	if !IsShortcode(s) {
		return s
	}
	name := strings.Trim(s, ":")
	if glyph, ok := LookupShortcode(name); ok {
		return glyph
	}
	return ":" + name + ":"
}

// LookupShortcode returns the glyph of a github shortcode name given without
// colons. The gemoji aliases win; newer aliases come from the unicode 15 table.
func LookupShortcode(name string) (string, bool) {
	if glyph, ok := emoji.Find(":" + name + ":"); ok {
		return glyph, true
	}
	glyph, ok := aliases().byName[name]
	return glyph, ok
}

type aliasIndex struct {
	byName   map[string]string
	byGlyph  map[string]string
	maxRunes int
}

var (
	aliasOnce sync.Once
	index     aliasIndex
)

func aliases() *aliasIndex {
	aliasOnce.Do(func() {
		index.byName = make(map[string]string)
		for code, glyph := range kyokomi.CodeMap() {
			index.byName[strings.Trim(code, ":")] = strings.TrimSpace(glyph)
		}

		index.byGlyph = make(map[string]string)
		add := func(name, glyph string) {
			if glyph == "" {
				return
			}
			for _, g := range []string{glyph, strings.ReplaceAll(glyph, "\ufe0f", "")} {
				if g == "" || isTextSymbol(g) {
					continue
				}
				// Shortest name wins, then alphabetical, so the result is stable.
				if cur, ok := index.byGlyph[g]; ok && (len(cur) < len(name) || len(cur) == len(name) && cur < name) {
					continue
				}
				index.byGlyph[g] = name
				if n := utf8.RuneCountInString(g); n > index.maxRunes {
					index.maxRunes = n
				}
			}
		}
		for name, glyph := range index.byName {
			// Skip names the gemoji aliases resolve to another glyph.
			if g, ok := emoji.Find(":" + name + ":"); ok && g != glyph {
				continue
			}
			add(name, glyph)
		}
		for code, glyph := range emoji.Map() {
			add(strings.Trim(code, ":"), glyph)
		}
	})
	return &index
}

// isTextSymbol reports whether g is a lone symbol such as © or ™ that only
// reads as an emoji with a variation selector.
func isTextSymbol(g string) bool {
	r, size := utf8.DecodeRuneInString(g)
	return size == len(g) && r < 0x2300
}

// ShortcodeOf returns the github shortcode name of glyph.
func ShortcodeOf(glyph string) (string, bool) {
	idx := aliases()
	if name, ok := idx.byGlyph[glyph]; ok {
		return name, true
	}
	name, ok := idx.byGlyph[strings.ReplaceAll(glyph, "\ufe0f", "")]
	return name, ok
}

// Demojify replaces every known emoji glyph in text with its ":shortcode:".
// The longest glyph sequence is matched first so ZWJ sequences stay whole.
func Demojify(text string) string {
	idx := aliases()
	runes := []rune(text)

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(runes); {
		matched := false
		for n := min(idx.maxRunes, len(runes)-i); n > 0; n-- {
			name, ok := idx.byGlyph[string(runes[i:i+n])]
			if !ok {
				continue
			}
			b.WriteString(":" + name + ":")
			i += n
			if i < len(runes) && runes[i] == '\ufe0f' {
				i++
			}
			matched = true
			break
		}
		if !matched {
			b.WriteRune(runes[i])
			i++
		}
	}
	return b.String()
}
