package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/devmoji/internal/config"
	domainErrors "github.com/thomas-vilte/devmoji/internal/errors"
	"github.com/thomas-vilte/devmoji/internal/i18n"
)

type testEnv struct {
	workDir    string
	stdin      string
	terminal   bool
	evaluator  config.Evaluator
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	translator *i18n.Translations
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	trans, err := i18n.NewTranslations("en")
	require.NoError(t, err)
	return &testEnv{
		workDir:    t.TempDir(),
		translator: trans,
	}
}

func (e *testEnv) run(args ...string) error {
	root := NewRootCommand(e.translator, Options{
		Stdin:      strings.NewReader(e.stdin),
		Stdout:     &e.stdout,
		Stderr:     &e.stderr,
		WorkDir:    e.workDir,
		IsTerminal: func(io.Reader) bool { return e.terminal },
		Evaluator:  e.evaluator,
	})
	return root.CreateCommand().Run(context.Background(), append([]string{"devmoji", "--no-color"}, args...))
}

func (e *testEnv) writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.workDir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const overrideConfig = `{
  "devmoji": [
    { "code": "fix", "emoji": "saluting_face" },
    { "code": "wip", "gitmoji": "construction", "description": "work in progress" }
  ]
}`

func TestRootCommand_Text(t *testing.T) {
	// Arrange
	env := newTestEnv(t)

	// Act
	err := env.run("--text", "feat: add login")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "feat: ✨ add login\n", env.stdout.String())
}

func TestRootCommand_Stdin(t *testing.T) {
	t.Run("rewrites the header and keeps the body", func(t *testing.T) {
		env := newTestEnv(t)
		env.stdin = "fix(api): crash\r\n\r\nDetails\r\n"

		err := env.run()

		require.NoError(t, err)
		assert.Equal(t, "fix(api): 🐛 crash\r\n\r\nDetails\r\n", env.stdout.String())
	})

	t.Run("non header input passes through", func(t *testing.T) {
		env := newTestEnv(t)
		env.stdin = "no colon here"

		err := env.run()

		require.NoError(t, err)
		assert.Equal(t, "no colon here", env.stdout.String())
	})

	t.Run("terminal without text is an input error", func(t *testing.T) {
		env := newTestEnv(t)
		env.terminal = true

		err := env.run()

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrNoInput))
		assert.Empty(t, env.stdout.String())
	})
}

func TestRootCommand_ConfigDiscovery(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	env.writeFile(t, "devmoji.config.json", overrideConfig)
	nested := filepath.Join(env.workDir, "packages", "app")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	env.workDir = nested

	tests := []struct {
		input string
		want  string
	}{
		{"wip: start feature", "wip: 🚧 start feature\n"},
		{"fix: correct bug", "fix: 🫡 correct bug\n"},
		{"feat: still works", "feat: ✨ still works\n"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			env.stdout.Reset()

			// Act
			err := env.run("-t", tt.input)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.want, env.stdout.String())
			assert.NotContains(t, env.stdout.String(), "🐛")
		})
	}
}

func TestRootCommand_ExplicitConfig(t *testing.T) {
	t.Run("yaml file", func(t *testing.T) {
		env := newTestEnv(t)
		path := env.writeFile(t, "conf/custom.yml", "devmoji:\n  - code: feat\n    emoji: rocket\n")

		err := env.run("--config", path, "--text", "feat: launch")

		require.NoError(t, err)
		assert.Equal(t, "feat: 🚀 launch\n", env.stdout.String())
	})

	t.Run("missing file", func(t *testing.T) {
		env := newTestEnv(t)

		err := env.run("-c", filepath.Join(env.workDir, "nope.json"), "--text", "feat: x")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrConfigNotFound))
		assert.Empty(t, env.stdout.String())
	})

	t.Run("malformed file produces no output", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile(t, "devmoji.config.json", `{"devmoji": [`)

		err := env.run("--text", "feat: x")

		require.Error(t, err)
		assert.True(t, domainErrors.IsConfigError(err))
		assert.Empty(t, env.stdout.String())
	})

	t.Run("script config through the evaluator", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile(t, "devmoji.config.ts", "export default {}")
		var evaluated string
		env.evaluator = config.EvaluatorFunc(func(_ context.Context, path string) ([]byte, error) {
			evaluated = path
			return []byte(overrideConfig), nil
		})

		err := env.run("--text", "wip: start feature")

		require.NoError(t, err)
		assert.Equal(t, "devmoji.config.ts", filepath.Base(evaluated))
		assert.Equal(t, "wip: 🚧 start feature\n", env.stdout.String())
	})
}

func TestRootCommand_Edit(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		path := env.writeFile(t, "MSG", "feat: add login\n\n# comment\n")

		// Act
		err := env.run("-e", path)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "✔ feat: ✨ add login\n", env.stdout.String())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "feat: ✨ add login\n\n# comment\n", string(data))
	})

	t.Run("finds COMMIT_EDITMSG in the repository", func(t *testing.T) {
		env := newTestEnv(t)
		path := env.writeFile(t, ".git/COMMIT_EDITMSG", "docs: readme\n")
		sub := filepath.Join(env.workDir, "src")
		require.NoError(t, os.MkdirAll(sub, 0o755))
		env.workDir = sub

		err := env.run("--edit")

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "docs: 📚 readme\n", string(data))
	})

	t.Run("missing file is an IO error", func(t *testing.T) {
		env := newTestEnv(t)

		err := env.run("-e", filepath.Join(env.workDir, "missing"))

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrReadMessageFile))
	})
}

func TestRootCommand_Log(t *testing.T) {
	env := newTestEnv(t)
	env.stdin = "abc1234 feat: one\ndef5678 chore: two\n9abcdef Merge pull request #1\n"

	err := env.run("--log")

	require.NoError(t, err)
	assert.Equal(t,
		"abc1234 feat: ✨ one\ndef5678 chore: 🔧 two\n9abcdef Merge pull request #1\n",
		env.stdout.String())
}

func TestRootCommand_Format(t *testing.T) {
	t.Run("shortcode", func(t *testing.T) {
		env := newTestEnv(t)

		err := env.run("--format", "shortcode", "--text", "feat: ✨ add")

		require.NoError(t, err)
		assert.Equal(t, "feat: :sparkles: add\n", env.stdout.String())
	})

	t.Run("invalid", func(t *testing.T) {
		env := newTestEnv(t)

		err := env.run("-f", "emoji", "--text", "feat: add")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrInvalidFormat))
	})
}

func TestRootCommand_List(t *testing.T) {
	t.Run("built-ins", func(t *testing.T) {
		env := newTestEnv(t)

		err := env.run("--list")

		require.NoError(t, err)
		out := env.stdout.String()
		assert.Contains(t, out, "✨  feat")
		assert.Contains(t, out, "a new feature")
		assert.Contains(t, out, "No config file found")
		assert.Contains(t, out, "10 devmojis")
	})

	t.Run("with config", func(t *testing.T) {
		env := newTestEnv(t)
		path := env.writeFile(t, "devmoji.config.json", overrideConfig)

		err := env.run("-l")

		require.NoError(t, err)
		out := env.stdout.String()
		assert.Contains(t, out, "   Config: "+path+"\n")
		assert.Contains(t, out, "🚧  wip")
		assert.Contains(t, out, "work in progress")
		assert.Contains(t, out, "11 devmojis")

		lines := strings.Split(out, "\n")
		var fixLine string
		for _, l := range lines {
			if strings.Contains(l, " fix ") || strings.HasSuffix(l, " fix") {
				fixLine = l
			}
		}
		assert.NotContains(t, fixLine, "a bug fix")
	})
}

func TestRootCommand_LangFlag(t *testing.T) {
	env := newTestEnv(t)

	err := env.run("--lang", "es", "--list")

	require.NoError(t, err)
	assert.Contains(t, env.stdout.String(), "mostrando los devmojis incluidos")
}

func TestRootCommand_LangFlagUnsupported(t *testing.T) {
	env := newTestEnv(t)

	err := env.run("--lang", "fr", "--text", "feat: add")

	require.NoError(t, err)
	assert.Equal(t, "feat: ✨ add\n", env.stdout.String())
	assert.Contains(t, env.stderr.String(), "! Language fr is not supported, keeping the default")
}

func TestRootCommand_NoCommit(t *testing.T) {
	t.Run("converts the whole text", func(t *testing.T) {
		env := newTestEnv(t)
		env.stdin = "Release notes :rocket:\n\n- :feat: login\n- :fix: crash\n"

		err := env.run("--no-commit")

		require.NoError(t, err)
		assert.Equal(t, "Release notes 🚀\n\n- ✨ login\n- 🐛 crash\n", env.stdout.String())
	})

	t.Run("no header is inserted", func(t *testing.T) {
		env := newTestEnv(t)

		err := env.run("--no-commit", "--text", "feat: add login")

		require.NoError(t, err)
		assert.Equal(t, "feat: add login\n", env.stdout.String())
	})

	t.Run("with a format", func(t *testing.T) {
		env := newTestEnv(t)

		err := env.run("--no-commit", "-f", "devmoji", "--text", "✨ and 🐛 in the body")

		require.NoError(t, err)
		assert.Equal(t, ":feat: and :fix: in the body\n", env.stdout.String())
	})

	t.Run("strip", func(t *testing.T) {
		env := newTestEnv(t)

		err := env.run("--no-commit", "-f", "strip", "--text", "done ✨ :rocket:")

		require.NoError(t, err)
		assert.Equal(t, "done\n", env.stdout.String())
	})

	t.Run("edit rewrites the file in place", func(t *testing.T) {
		env := newTestEnv(t)
		path := env.writeFile(t, "NOTES", "ship it :sparkles:\n")

		err := env.run("--no-commit", "-e", path)

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "ship it ✨\n", string(data))
	})

	t.Run("log takes precedence", func(t *testing.T) {
		env := newTestEnv(t)
		env.stdin = "abc1234 feat: one\n"

		err := env.run("--no-commit", "--log")

		require.NoError(t, err)
		assert.Equal(t, "abc1234 feat: ✨ one\n", env.stdout.String())
	})
}
