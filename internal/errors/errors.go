package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeIO            ErrorType = "IO"
	TypeInput         ErrorType = "INPUT"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if path, ok := e.Context["path"].(string); ok && path != "" {
			msg += fmt.Sprintf(" [%s]", path)
		}
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError of the same type and message, so
// errors derived from a sentinel with WithError or WithContext still match it.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// IsConfigError reports whether err is, or wraps, a configuration error.
func IsConfigError(err error) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == TypeConfiguration
	}
	return false
}

// Configuration errors
var (
	ErrConfigRead = NewAppError(TypeConfiguration, "Failed to read config file", nil).
			WithSuggestion("Check the file exists and is readable")

	ErrConfigNotFound = NewAppError(TypeConfiguration, "Config file not found", nil).
				WithSuggestion("Check the path passed to --config")

	ErrConfigDecode = NewAppError(TypeConfiguration, "Config file is malformed", nil).
			WithSuggestion("Validate the file syntax, e.g. with: jq . devmoji.config.json")

	ErrConfigShape = NewAppError(TypeConfiguration, "Config does not match the expected schema", nil).
			WithSuggestion("Expected: { types?: [string], devmoji?: [{ code, emoji?, gitmoji?, description? }] }")

	ErrConfigUnsupported = NewAppError(TypeConfiguration, "Unsupported config file format", nil).
				WithSuggestion("Use one of: .json, .js, .mjs, .ts, .mts, .toml, .yaml, .yml")

	ErrConfigEvaluation = NewAppError(TypeConfiguration, "Failed to evaluate config script", nil).
				WithSuggestion("Ensure Node.js is on your PATH; TypeScript configs need tsx (npm i -D tsx) or Node.js >= 22.6")

	ErrConfigTimeout = NewAppError(TypeConfiguration, "Config script evaluation timed out", nil).
				WithSuggestion("Increase the bound with --config-timeout or simplify the config module")
)

// IO errors
var (
	ErrReadInput = NewAppError(TypeIO, "Failed to read standard input", nil)

	ErrReadMessageFile = NewAppError(TypeIO, "Failed to read commit message file", nil).
				WithSuggestion("Check the path passed to --edit exists and is readable")

	ErrWriteMessageFile = NewAppError(TypeIO, "Failed to write commit message file", nil).
				WithSuggestion("Check you have write permissions on the file and its directory")

	ErrWriteOutput = NewAppError(TypeIO, "Failed to write output", nil)

	ErrNotInGitRepo = NewAppError(TypeIO, "Not in a git repository", nil).
			WithSuggestion("Pass the commit message file explicitly: devmoji -e <path>")
)

// Input errors
var (
	ErrNoInput = NewAppError(TypeInput, "No input provided", nil).
			WithSuggestion("Use --text, --edit, or pipe input via stdin.\nRun with --help for usage information.")

	ErrInvalidFormat = NewAppError(TypeInput, "Unknown output format", nil).
				WithSuggestion("Use one of: unicode, shortcode, devmoji, strip")
)
