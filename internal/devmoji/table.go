// Package devmoji builds the table that maps conventional commit type codes
// to emoji glyphs.
package devmoji

import (
	"sort"
	"strings"

	"github.com/thomas-vilte/devmoji/internal/config"
	"github.com/thomas-vilte/devmoji/internal/gitmoji"
)

// Source records which layer of the merge produced an entry.
type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceTypes   Source = "types"
	SourceConfig  Source = "config"
)

// Entry is a resolved table row. Glyph is empty for codes that are known but
// carry no emoji.
type Entry struct {
	Code        string
	Glyph       string
	Shortcode   string
	Description string
	Source      Source
}

// Table is the merged code to emoji mapping for one invocation.
type Table struct {
	entries map[string]Entry
}

// NewTable merges the built-in types, cfg.Types and cfg.Devmoji, in that order.
// A devmoji entry replaces any existing row with the same code as a whole.
func NewTable(cfg *config.Config) *Table {
	t := &Table{entries: make(map[string]Entry, len(builtins))}

	for _, b := range builtins {
		t.entries[b.Code] = resolveEntry(b, SourceBuiltin)
	}

	if cfg == nil {
		return t
	}

	for _, code := range cfg.Types {
		if _, ok := t.entries[code]; !ok {
			t.entries[code] = Entry{Code: code, Source: SourceTypes}
		}
	}

	for _, e := range cfg.Devmoji {
		t.entries[e.Code] = resolveEntry(e, SourceConfig)
	}

	return t
}

func resolveEntry(e config.DevmojiEntry, src Source) Entry {
	out := Entry{
		Code:        e.Code,
		Description: e.Description,
		Source:      src,
	}

	switch {
	case e.Emoji != "":
		out.Glyph = Emojify(e.Emoji)
		if IsShortcode(e.Emoji) {
			out.Shortcode = strings.Trim(e.Emoji, ":")
		} else if name, ok := ShortcodeOf(e.Emoji); ok {
			out.Shortcode = name
		}
	case e.Gitmoji != "":
		if g, ok := gitmoji.Resolve(e.Gitmoji); ok {
			out.Glyph = g.Emoji
			out.Shortcode = g.Code
			if out.Description == "" {
				out.Description = g.Description
			}
		}
	}

	return out
}

// Lookup returns the entry for code. Matching is case sensitive.
func (t *Table) Lookup(code string) (Entry, bool) {
	e, ok := t.entries[code]
	return e, ok
}

// Resolve returns the glyph and description for code. ok is false for unknown
// codes; a known code may still have an empty glyph.
func (t *Table) Resolve(code string) (glyph, description string, ok bool) {
	e, ok := t.entries[code]
	if !ok {
		return "", "", false
	}
	return e.Glyph, e.Description, true
}

// Entries returns all rows sorted by code.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Code < out[j].Code
	})
	return out
}

func (t *Table) Len() int {
	return len(t.entries)
}
