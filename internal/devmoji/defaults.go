package devmoji

import "github.com/thomas-vilte/devmoji/internal/config"

// builtins are the conventional commit types known without any configuration.
var builtins = []config.DevmojiEntry{
	{Code: "feat", Emoji: "sparkles", Description: "a new feature"},
	{Code: "fix", Emoji: "bug", Description: "a bug fix"},
	{Code: "docs", Emoji: "books", Description: "documentation only changes"},
	{Code: "style", Emoji: "art", Description: "changes that do not affect the meaning of the code"},
	{Code: "refactor", Emoji: "recycle", Description: "a code change that neither fixes a bug nor adds a feature"},
	{Code: "perf", Emoji: "zap", Description: "a code change that improves performance"},
	{Code: "test", Emoji: "rotating_light", Description: "adding missing or correcting existing tests"},
	{Code: "chore", Emoji: "wrench", Description: "changes to the build process or auxiliary tools"},
	{Code: "build", Emoji: "package", Description: "changes related to build processes"},
	{Code: "ci", Emoji: "construction_worker", Description: "updates to the continuous integration system"},
}

// Builtins returns a copy of the built-in entries.
func Builtins() []config.DevmojiEntry {
	out := make([]config.DevmojiEntry, len(builtins))
	copy(out, builtins)
	return out
}
