package config

import (
	"fmt"

	domainErrors "github.com/thomas-vilte/devmoji/internal/errors"
)

type (
	// Config is the user configuration merged on top of the built-in devmoji table.
	Config struct {
		Types   []string       `json:"types,omitempty"`
		Devmoji []DevmojiEntry `json:"devmoji,omitempty"`

		// Path is the file the config was loaded from, empty for built-in only.
		Path string `json:"-"`
	}

	// DevmojiEntry maps a type code to an emoji. Emoji wins over Gitmoji when both are set.
	DevmojiEntry struct {
		Code        string `json:"code"`
		Emoji       string `json:"emoji,omitempty"`
		Gitmoji     string `json:"gitmoji,omitempty"`
		Description string `json:"description,omitempty"`
	}
)

// Default returns the built-in only configuration.
func Default() *Config {
	return &Config{}
}

func validateConfig(config *Config) error {
	for i, t := range config.Types {
		if t == "" {
			return domainErrors.ErrConfigShape.
				WithError(fmt.Errorf("types[%d] is empty", i)).
				WithContext("path", config.Path)
		}
	}

	for i, entry := range config.Devmoji {
		if entry.Code == "" {
			return domainErrors.ErrConfigShape.
				WithError(fmt.Errorf("devmoji[%d] has no code", i)).
				WithContext("path", config.Path)
		}
	}
	return nil
}
