package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage  = "app_language"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyLogColor  = "log_color"
)

// Default values
const (
	DefaultLanguage  = "system"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
	DefaultLogColor  = true
)

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
	Color  bool
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"console": true, "json": true}
)

// Settings reads application configuration from the Fyne preference store.
// Getters never write: an unset or invalid key yields the default.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	level := strings.ToLower(s.app.Preferences().String(KeyLogLevel))
	if !validLevels[level] {
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, strings.ToLower(level))
}

// GetLogFormat returns the configured log output format
func (s *Settings) GetLogFormat() string {
	format := strings.ToLower(s.app.Preferences().String(KeyLogFormat))
	if !validFormats[format] {
		return DefaultLogFormat
	}
	return format
}

// SetLogFormat sets the log output format
func (s *Settings) SetLogFormat(format string) {
	s.app.Preferences().SetString(KeyLogFormat, strings.ToLower(format))
}

// GetLoggingConfig collects the logging settings
func (s *Settings) GetLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  s.GetLogLevel(),
		Format: s.GetLogFormat(),
		Color:  s.app.Preferences().BoolWithFallback(KeyLogColor, DefaultLogColor),
	}
}
