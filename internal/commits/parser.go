package commits

import (
	"strings"

	"github.com/thomas-vilte/devmoji/internal/regex"
)

// Header is the parsed first line of a conventional commit.
type Header struct {
	Type        string
	Scope       string
	HasScope    bool
	Breaking    bool
	Description string
}

// Parse parses a single header line. It reports false when the line does not
// follow the type(scope)!: description grammar.
func Parse(line string) (Header, bool) {
	m := regex.ConventionalHeader.FindStringSubmatch(line)
	if m == nil {
		return Header{}, false
	}

	return Header{
		Type:        m[1],
		Scope:       m[3],
		HasScope:    m[2] != "",
		Breaking:    m[4] == "!",
		Description: m[5],
	}, true
}

// Prefix renders everything up to and including the ": " separator.
func (h Header) Prefix() string {
	var b strings.Builder
	b.WriteString(h.Type)
	if h.HasScope {
		b.WriteString("(")
		b.WriteString(h.Scope)
		b.WriteString(")")
	}
	if h.Breaking {
		b.WriteString("!")
	}
	b.WriteString(": ")
	return b.String()
}

func (h Header) String() string {
	return h.Prefix() + h.Description
}

// splitHeader separates the first line from the rest of the message. The rest
// keeps its line break, including a carriage return belonging to the header line.
func splitHeader(message string) (header, rest string) {
	idx := strings.IndexByte(message, '\n')
	if idx < 0 {
		return message, ""
	}
	header, rest = message[:idx], message[idx:]
	if strings.HasSuffix(header, "\r") {
		header, rest = header[:len(header)-1], "\r"+rest
	}
	return header, rest
}
