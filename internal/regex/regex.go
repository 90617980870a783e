package regex

import "regexp"

var (
	// Conventional commit header: type, optional (scope), optional !, then ": " and the description.
	ConventionalHeader = regexp.MustCompile(`^([^ \t(:!]+)(\(([^)]*)\))?(!)?: (.*)$`)

	// Emoji shortcodes
	Shortcode = regexp.MustCompile(`^:?([a-zA-Z0-9_+\-]+):?$`)

	// Shortcodes inside free text, with the whitespace before them
	ShortcodeText = regexp.MustCompile(`\s?:[a-zA-Z0-9_+\-]+:`)

	// Log lines such as "a1b2c3d feat: ..." produced by git log --oneline
	LogPrefix = regexp.MustCompile(`^(\S+\s+)(.*)$`)
)
