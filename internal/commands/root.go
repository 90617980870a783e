// Package commands wires the devmoji CLI.
package commands

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/thomas-vilte/devmoji/internal/commits"
	"github.com/thomas-vilte/devmoji/internal/config"
	"github.com/thomas-vilte/devmoji/internal/devmoji"
	domainErrors "github.com/thomas-vilte/devmoji/internal/errors"
	"github.com/thomas-vilte/devmoji/internal/hook"
	"github.com/thomas-vilte/devmoji/internal/i18n"
	"github.com/thomas-vilte/devmoji/internal/logger"
	"github.com/thomas-vilte/devmoji/internal/ui"
	"github.com/thomas-vilte/devmoji/internal/version"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// Options holds the process dependencies of the root command. Zero values
// fall back to the real process environment.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// WorkDir is where config and repository discovery start.
	WorkDir string

	// IsTerminal reports whether r is an interactive terminal.
	IsTerminal func(r io.Reader) bool

	// Evaluator replaces the Node.js evaluator for script configs.
	Evaluator config.Evaluator
}

type RootCommand struct {
	t    *i18n.Translations
	opts Options
}

func NewRootCommand(t *i18n.Translations, opts Options) *RootCommand {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.IsTerminal == nil {
		opts.IsTerminal = isTerminal
	}
	return &RootCommand{t: t, opts: opts}
}

func (c *RootCommand) CreateCommand() *cli.Command {
	t := c.t
	return &cli.Command{
		Name:        "devmoji",
		Usage:       t.GetMessage("app_usage", 0, nil),
		Description: t.GetMessage("app_description", 0, nil),
		Version:     version.Version,
		ArgsUsage:   "[commit message file]",
		Reader:      c.opts.Stdin,
		Writer:      c.opts.Stdout,
		ErrWriter:   c.opts.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   t.GetMessage("flag.config", 0, nil),
				Sources: cli.EnvVars("DEVMOJI_CONFIG"),
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   t.GetMessage("flag.list", 0, nil),
			},
			&cli.StringFlag{
				Name:    "text",
				Aliases: []string{"t"},
				Usage:   t.GetMessage("flag.text", 0, nil),
			},
			&cli.BoolFlag{
				Name:    "edit",
				Aliases: []string{"e"},
				Usage:   t.GetMessage("flag.edit", 0, nil),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   t.GetMessage("flag.format", 0, nil),
				Value:   string(commits.FormatUnicode),
			},
			&cli.BoolFlag{
				Name:  "log",
				Usage: t.GetMessage("flag.log", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "no-commit",
				Usage: t.GetMessage("flag.no_commit", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: t.GetMessage("flag.color", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: t.GetMessage("flag.no_color", 0, nil),
			},
			&cli.DurationFlag{
				Name:    "config-timeout",
				Usage:   t.GetMessage("flag.config_timeout", 0, nil),
				Value:   config.DefaultEvaluationTimeout,
				Sources: cli.EnvVars("DEVMOJI_CONFIG_TIMEOUT"),
			},
			&cli.BoolFlag{
				Name:  "no-cache",
				Usage: t.GetMessage("flag.no_cache", 0, nil),
			},
			&cli.StringFlag{
				Name:    "lang",
				Usage:   t.GetMessage("flag.lang", 0, nil),
				Sources: cli.EnvVars("DEVMOJI_LANG"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: t.GetMessage("flag.debug", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: t.GetMessage("flag.verbose", 0, nil),
			},
		},
		Action: c.run,
	}
}

func (c *RootCommand) run(ctx context.Context, cmd *cli.Command) error {
	switch {
	case cmd.Bool("no-color"):
		color.NoColor = true
	case cmd.Bool("color"):
		color.NoColor = false
	}

	log := logger.Initialize(c.opts.Stderr, cmd.Bool("debug"), cmd.Bool("verbose"))
	ctx = logger.WithLogger(ctx, log)

	if lang := cmd.String("lang"); lang != "" {
		if err := c.t.SetLanguage(lang); err != nil {
			logger.Debug(ctx, "language not available", "lang", lang, "error", err)
			ui.PrintWarning(c.opts.Stderr, c.t.GetMessage("warning.unsupported_lang", 0, map[string]interface{}{"Lang": lang}))
		}
	}

	format, err := commits.ParseFormat(cmd.String("format"))
	if err != nil {
		return domainErrors.ErrInvalidFormat.WithError(err)
	}

	cfg, err := c.loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	table := devmoji.NewTable(cfg)

	if cmd.Bool("list") {
		return NewListPresenter(c.t, c.opts.Stdout).Present(table, cfg)
	}

	if cmd.Bool("edit") {
		rewriter := commits.NewRewriter(table, commits.WithFormat(format))
		if cmd.Bool("no-commit") {
			return c.edit(ctx, cmd, hook.RewriterFunc(rewriter.Convert))
		}
		return c.edit(ctx, cmd, rewriter)
	}

	rewriter := commits.NewRewriter(table,
		commits.WithFormat(format),
		commits.WithColor(cmd.Bool("color") && !cmd.Bool("no-color")))

	input, err := c.readInput(cmd)
	if err != nil {
		return err
	}

	var out string
	switch {
	case cmd.Bool("log"):
		out = rewriter.RewriteLog(input)
	case cmd.Bool("no-commit"):
		out = rewriter.Convert(input)
	default:
		out = rewriter.Rewrite(input)
	}
	if cmd.IsSet("text") && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	if _, err := io.WriteString(c.opts.Stdout, out); err != nil {
		return domainErrors.ErrWriteOutput.WithError(err)
	}
	return nil
}

func (c *RootCommand) loadConfig(ctx context.Context, cmd *cli.Command) (*config.Config, error) {
	evaluator := c.opts.Evaluator
	if evaluator == nil {
		node := config.NewNodeEvaluator()
		node.Timeout = cmd.Duration("config-timeout")
		node.UseCache = !cmd.Bool("no-cache")
		evaluator = node
	}
	loader := config.NewLoader(config.WithEvaluator(evaluator))

	start := time.Now()
	defer func() {
		logger.Debug(ctx, "config resolved", "duration_ms", time.Since(start).Milliseconds())
	}()

	if path := cmd.String("config"); path != "" {
		return loader.Load(ctx, path)
	}
	return loader.Resolve(ctx, c.workDir())
}

func (c *RootCommand) edit(ctx context.Context, cmd *cli.Command, rewriter hook.Rewriter) error {
	path := cmd.Args().First()
	if path == "" {
		found, err := hook.FindCommitMessageFile(c.workDir())
		if err != nil {
			return err
		}
		path = found
	}

	res, err := hook.NewAdapter(rewriter).Apply(ctx, path)
	if err != nil {
		return err
	}

	logger.Info(ctx, "commit message processed", "path", path, "changed", res.Changed)
	ui.PrintSuccess(c.opts.Stdout, res.FirstLine())
	return nil
}

func (c *RootCommand) readInput(cmd *cli.Command) (string, error) {
	if cmd.IsSet("text") {
		return cmd.String("text"), nil
	}

	if c.opts.IsTerminal(c.opts.Stdin) {
		return "", domainErrors.ErrNoInput
	}

	data, err := io.ReadAll(c.opts.Stdin)
	if err != nil {
		return "", domainErrors.ErrReadInput.WithError(err)
	}
	return string(data), nil
}

func (c *RootCommand) workDir() string {
	if c.opts.WorkDir != "" {
		return c.opts.WorkDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

