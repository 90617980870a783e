// Package commits parses conventional commit headers and inserts the devmoji
// for their type.
package commits

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/thomas-vilte/devmoji/internal/devmoji"
	"github.com/thomas-vilte/devmoji/internal/regex"
)

// Format selects how the emoji is written into the header.
type Format string

const (
	FormatUnicode   Format = "unicode"
	FormatShortcode Format = "shortcode"
	FormatDevmoji   Format = "devmoji"
	FormatStrip     Format = "strip"
)

// Formats lists the accepted values for --format.
var Formats = []Format{FormatUnicode, FormatShortcode, FormatDevmoji, FormatStrip}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Rewriter inserts the emoji of a header's type code into commit messages.
type Rewriter struct {
	table  *devmoji.Table
	format Format
	color  bool
}

type Option func(*Rewriter)

func WithFormat(f Format) Option {
	return func(r *Rewriter) {
		r.format = f
	}
}

// WithColor highlights the type and scope for terminal output.
func WithColor(enabled bool) Option {
	return func(r *Rewriter) {
		r.color = enabled
	}
}

func NewRewriter(table *devmoji.Table, opts ...Option) *Rewriter {
	r := &Rewriter{
		table:  table,
		format: FormatUnicode,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rewrite rewrites the first line of message. Everything after the first line
// break is returned untouched. Messages whose first line is not a header, or
// whose type is unknown, are returned as is.
func (r *Rewriter) Rewrite(message string) string {
	header, rest := splitHeader(message)

	out, ok := r.rewriteLine(header)
	if !ok {
		return message
	}
	return out + rest
}

// RewriteLog rewrites every line that holds a header, such as the output of
// git log --oneline where the header follows the abbreviated hash.
func (r *Rewriter) RewriteLog(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, line := range strings.SplitAfter(text, "\n") {
		content, eol := cutEOL(line)

		if out, ok := r.rewriteLine(content); ok {
			b.WriteString(out)
		} else if m := regex.LogPrefix.FindStringSubmatch(content); m != nil {
			if out, ok := r.rewriteLine(m[2]); ok {
				b.WriteString(m[1] + out)
			} else {
				b.WriteString(content)
			}
		} else {
			b.WriteString(content)
		}

		b.WriteString(eol)
	}
	return b.String()
}

// Convert rewrites every emoji in text to the configured format without
// looking for a commit header. Glyphs, github shortcodes and devmoji codes are
// all recognized; unknown ":words:" are left alone.
func (r *Rewriter) Convert(text string) string {
	text = devmoji.Demojify(text)
	if r.format == FormatShortcode {
		return text
	}

	return regex.ShortcodeText.ReplaceAllStringFunc(text, func(m string) string {
		code := strings.TrimLeftFunc(m, unicode.IsSpace)
		lead := m[:len(m)-len(code)]

		glyph, ok := r.resolve(strings.Trim(code, ":"))
		if !ok {
			return m
		}
		switch r.format {
		case FormatStrip:
			return ""
		case FormatDevmoji:
			if e, ok := r.entryFor(glyph); ok {
				return lead + ":" + e.Code + ":"
			}
			return m
		default:
			return lead + glyph
		}
	})
}

// resolve returns the glyph of a devmoji code or github shortcode name.
func (r *Rewriter) resolve(name string) (string, bool) {
	if e, ok := r.table.Lookup(name); ok && e.Glyph != "" && !strings.HasPrefix(e.Glyph, ":") {
		return e.Glyph, true
	}
	return devmoji.LookupShortcode(name)
}

// entryFor returns the first entry, in code order, whose glyph is glyph.
func (r *Rewriter) entryFor(glyph string) (devmoji.Entry, bool) {
	want := strings.ReplaceAll(glyph, "\ufe0f", "")
	for _, e := range r.table.Entries() {
		if e.Glyph != "" && strings.ReplaceAll(e.Glyph, "\ufe0f", "") == want {
			return e, true
		}
	}
	return devmoji.Entry{}, false
}

func (r *Rewriter) rewriteLine(line string) (string, bool) {
	h, ok := Parse(line)
	if !ok {
		return "", false
	}

	e, ok := r.table.Lookup(h.Type)
	if !ok {
		return "", false
	}

	return r.render(h, e), true
}

func (r *Rewriter) render(h Header, e devmoji.Entry) string {
	prefix := r.prefix(h)
	if e.Glyph == "" {
		return prefix + h.Description
	}

	rest, sep, found := cutMarkers(h.Description, e)
	if r.format == FormatStrip {
		if !found {
			return prefix + h.Description
		}
		if rest == "" {
			return strings.TrimRight(prefix, " ")
		}
		return prefix + rest
	}

	if !found {
		rest, sep = h.Description, " "
	}
	return prefix + r.marker(e) + sep + rest
}

func (r *Rewriter) marker(e devmoji.Entry) string {
	switch r.format {
	case FormatShortcode:
		if e.Shortcode != "" {
			return ":" + e.Shortcode + ":"
		}
		return e.Glyph
	case FormatDevmoji:
		return ":" + e.Code + ":"
	default:
		return e.Glyph
	}
}

func (r *Rewriter) prefix(h Header) string {
	if !r.color {
		return h.Prefix()
	}

	var b strings.Builder
	b.WriteString(color.BlueString(h.Type))
	if h.HasScope {
		b.WriteString("(")
		b.WriteString(color.New(color.Bold).Sprint(h.Scope))
		b.WriteString(")")
	}
	if h.Breaking {
		b.WriteString(color.RedString("!"))
	}
	b.WriteString(": ")
	return b.String()
}

// cutMarkers removes every leading emoji marker of e, in any of its written
// forms, from desc. sep is the space that followed the last marker, empty when
// the description ended with a bare marker.
func cutMarkers(desc string, e devmoji.Entry) (rest, sep string, found bool) {
	rest = desc
	for {
		r, s, ok := cutMarker(rest, e)
		if !ok {
			return rest, sep, found
		}
		rest, sep, found = r, s, true
	}
}

func cutMarker(desc string, e devmoji.Entry) (rest, sep string, found bool) {
	for _, m := range markers(e) {
		if desc == m {
			return "", "", true
		}
		if strings.HasPrefix(desc, m+" ") {
			return desc[len(m)+1:], " ", true
		}
	}
	return desc, "", false
}

func markers(e devmoji.Entry) []string {
	ms := []string{e.Glyph}
	if bare := strings.ReplaceAll(e.Glyph, "\ufe0f", ""); bare != e.Glyph && bare != "" {
		ms = append(ms, bare)
	}
	if e.Shortcode != "" {
		ms = append(ms, ":"+e.Shortcode+":")
	}
	return append(ms, ":"+e.Code+":")
}

func cutEOL(line string) (content, eol string) {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2], "\r\n"
	case strings.HasSuffix(line, "\n"):
		return line[:len(line)-1], "\n"
	default:
		return line, ""
	}
}
