package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/thomas-vilte/devmoji/internal/config"
	"github.com/thomas-vilte/devmoji/internal/devmoji"
	domainErrors "github.com/thomas-vilte/devmoji/internal/errors"
	"github.com/thomas-vilte/devmoji/internal/i18n"
	"github.com/thomas-vilte/devmoji/internal/ui"
)

const separator = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// ListPresenter prints the merged devmoji table.
type ListPresenter struct {
	t *i18n.Translations
	w io.Writer
}

func NewListPresenter(t *i18n.Translations, w io.Writer) *ListPresenter {
	return &ListPresenter{t: t, w: w}
}

func (p *ListPresenter) Present(table *devmoji.Table, cfg *config.Config) error {
	entries := table.Entries()
	width := len(p.t.GetMessage("list.code", 0, nil))
	for _, e := range entries {
		width = max(width, len(e.Code))
	}

	var b strings.Builder
	_, _ = ui.Info.Fprintf(&b, "%s\n", p.t.GetMessage("list.title", 0, nil))
	if cfg != nil && cfg.Path != "" {
		ui.PrintKeyValue(&b, p.t.GetMessage("list.config_source", 0, nil), cfg.Path)
	} else {
		_, _ = ui.Dim.Fprintln(&b, p.t.GetMessage("list.builtin_only", 0, nil))
	}
	b.WriteString(separator + "\n")

	for _, e := range entries {
		glyph := e.Glyph
		if glyph == "" {
			glyph = "  "
		}
		code := fmt.Sprintf("%-*s", width, e.Code)
		line := fmt.Sprintf("%s  %s  %s", glyph, ui.Info.Sprint(code), e.Description)
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	b.WriteString(separator + "\n")
	_, _ = ui.Dim.Fprintln(&b, p.t.GetMessage("list.count", len(entries), map[string]interface{}{"Count": len(entries)}))

	if _, err := io.WriteString(p.w, b.String()); err != nil {
		return domainErrors.ErrWriteOutput.WithError(err)
	}
	return nil
}
