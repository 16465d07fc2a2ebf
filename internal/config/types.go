// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"

	// DefaultPrompt is the prompt used when none is configured.
	DefaultPrompt = "kash> "
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidPrompt is returned for an empty prompt.
	ErrInvalidPrompt = errors.New("invalid prompt")
	// ErrInvalidHistoryLimit is returned for a history limit below -1.
	ErrInvalidHistoryLimit = errors.New("invalid history limit")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError wraps ErrInvalidColorScheme.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// LogLevel is the minimum level written to the log.
	LogLevel string

	// InvalidLogLevelError wraps ErrInvalidLogLevel.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// InvalidHistoryLimitError wraps ErrInvalidHistoryLimit.
	InvalidHistoryLimitError struct {
		Value int
	}

	// InvalidConfigError aggregates every field error found by Validate.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config is the complete kash configuration.
	Config struct {
		// Prompt is written before each read.
		Prompt string `json:"prompt" mapstructure:"prompt"`
		// LineEditor configures interactive line editing.
		LineEditor LineEditorConfig `json:"line_editor" mapstructure:"line_editor"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Log configures diagnostics logging.
		Log LogConfig `json:"log" mapstructure:"log"`
	}

	// LineEditorConfig configures the terminal line editor.
	LineEditorConfig struct {
		// Enabled selects the line editor when stdin is a terminal (default: true)
		Enabled bool `json:"enabled" mapstructure:"enabled"`
		// HistoryFile persists history; empty keeps it in memory only
		HistoryFile string `json:"history_file" mapstructure:"history_file"`
		// HistoryLimit caps history entries; 0 is the editor default, -1 disables
		HistoryLimit int `json:"history_limit" mapstructure:"history_limit"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// LogConfig configures logging.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level"`
	}
)

// DefaultConfig returns the configuration used when no file is loaded.
func DefaultConfig() *Config {
	return &Config{
		Prompt: DefaultPrompt,
		LineEditor: LineEditorConfig{
			Enabled: true,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
		Log: LogConfig{
			Level: LogLevelWarn,
		},
	}
}

// IsValid returns whether the Config has valid fields, and every field error found.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if c.Prompt == "" {
		errs = append(errs, fmt.Errorf("%w: prompt must not be empty", ErrInvalidPrompt))
	}
	if c.LineEditor.HistoryLimit < -1 {
		errs = append(errs, &InvalidHistoryLimitError{Value: c.LineEditor.HistoryLimit})
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Log.Level.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Validate returns nil or an *InvalidConfigError.
func (c Config) Validate() error {
	if valid, errs := c.IsValid(); !valid {
		return errs[0]
	}
	return nil
}

// Error lists every field error.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, fe := range e.FieldErrors {
		msgs = append(msgs, fe.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig and the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

func (e *InvalidHistoryLimitError) Error() string {
	return fmt.Sprintf("invalid history limit %d (must be -1 or greater)", e.Value)
}

func (e *InvalidHistoryLimitError) Unwrap() error { return ErrInvalidHistoryLimit }

func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// MarkdownStyle maps the scheme to a glamour style name. Auto picks
// "dark" or "light" on a terminal and "notty" otherwise.
func (cs ColorScheme) MarkdownStyle(isTerminal bool) string {
	switch {
	case !isTerminal:
		return "notty"
	case cs == ColorSchemeLight:
		return "light"
	default:
		return "dark"
	}
}

func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}
