package main

import (
	"context"
	"fmt"
	"os"

	"github.com/thomas-vilte/devmoji/internal/commands"
	"github.com/thomas-vilte/devmoji/internal/i18n"
	"github.com/thomas-vilte/devmoji/internal/ui"
)

func main() {
	lang := os.Getenv("DEVMOJI_LANG")
	if lang == "" {
		lang = "en"
	}

	translations, err := i18n.NewTranslations(lang)
	if err != nil {
		translations, err = i18n.NewTranslations("en")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading translations: %v\n", err)
			os.Exit(1)
		}
	}

	app := commands.NewRootCommand(translations, commands.Options{}).CreateCommand()

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.HandleAppError(os.Stderr, err, translations)
		os.Exit(1)
	}
}
