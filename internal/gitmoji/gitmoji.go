// Package gitmoji bundles the gitmoji shortcode table used as a fallback
// glyph source for devmoji entries.
package gitmoji

import "strings"

type Gitmoji struct {
	Code        string
	Emoji       string
	Description string
}

var byCode = func() map[string]int {
	m := make(map[string]int, len(gitmojis))
	for i, g := range gitmojis {
		m[g.Code] = i
	}
	return m
}()

// Resolve looks up a gitmoji by its shortcode. Surrounding colons are ignored.
func Resolve(code string) (Gitmoji, bool) {
	idx, ok := byCode[strings.Trim(code, ":")]
	if !ok {
		return Gitmoji{}, false
	}
	return gitmojis[idx], true
}
