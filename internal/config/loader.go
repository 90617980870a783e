package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	domainErrors "github.com/thomas-vilte/devmoji/internal/errors"
	"github.com/thomas-vilte/devmoji/internal/logger"
)

// Loader discovers and decodes devmoji config files. Script configs are
// delegated to its Evaluator.
type Loader struct {
	evaluator Evaluator
}

type LoaderOption func(*Loader)

// WithEvaluator replaces the evaluator used for .js/.mjs/.ts/.mts configs.
func WithEvaluator(e Evaluator) LoaderOption {
	return func(l *Loader) {
		l.evaluator = e
	}
}

func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{evaluator: NewNodeEvaluator()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resolve finds the nearest config file above startDir and loads it. When no
// file exists the built-in only configuration is returned.
func (l *Loader) Resolve(ctx context.Context, startDir string) (*Config, error) {
	log := logger.FromContext(ctx)

	path, found, err := FindConfig(startDir)
	if err != nil {
		return nil, domainErrors.ErrConfigRead.WithError(err).WithContext("path", startDir)
	}
	if !found {
		log.Debug("no config file found, using built-in devmojis", "start_dir", startDir)
		return Default(), nil
	}

	return l.Load(ctx, path)
}

// Load decodes the config file at path. The format is chosen by extension.
func (l *Loader) Load(ctx context.Context, path string) (*Config, error) {
	log := logger.FromContext(ctx)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domainErrors.ErrConfigNotFound.WithError(err).WithContext("path", path)
		}
		return nil, domainErrors.ErrConfigRead.WithError(err).WithContext("path", path)
	}

	var (
		data   []byte
		parser koanf.Parser
		err    error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		parser = json.Parser()
		data, err = file.Provider(path).ReadBytes()
	case ".toml":
		parser = toml.Parser()
		data, err = file.Provider(path).ReadBytes()
	case ".yaml", ".yml":
		parser = yaml.Parser()
		data, err = file.Provider(path).ReadBytes()
	case ".js", ".mjs", ".ts", ".mts":
		parser = json.Parser()
		data, err = l.evaluator.Evaluate(ctx, path)
		if err != nil {
			var appErr *domainErrors.AppError
			if errors.As(err, &appErr) {
				return nil, err
			}
			return nil, domainErrors.ErrConfigEvaluation.WithError(err).WithContext("path", path)
		}
	default:
		return nil, domainErrors.ErrConfigUnsupported.WithContext("path", path)
	}
	if err != nil {
		return nil, domainErrors.ErrConfigRead.WithError(err).WithContext("path", path)
	}

	tree, err := parser.Unmarshal(data)
	if err != nil {
		return nil, domainErrors.ErrConfigDecode.WithError(err).WithContext("path", path)
	}
	// null and empty documents decode to a nil map.
	if tree == nil {
		return nil, domainErrors.ErrConfigShape.WithError(errNotAnObject).WithContext("path", path)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, domainErrors.ErrConfigDecode.WithError(err).WithContext("path", path)
	}

	cfg, err := decode(k)
	if err != nil {
		return nil, domainErrors.ErrConfigShape.WithError(err).WithContext("path", path)
	}
	cfg.Path = path

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Debug("config loaded",
		"path", path,
		"types", len(cfg.Types),
		"devmoji", len(cfg.Devmoji))

	return cfg, nil
}

var errNotAnObject = errors.New("top-level value must be an object")

// decode maps the loaded tree onto Config. Keys must match the field names
// exactly and unknown keys are rejected. There is no weak type conversion, so
// a string where a list is expected fails instead of being coerced.
func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	dc := &mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: false,
		ErrorUnused:      true,
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json", DecoderConfig: dc}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
