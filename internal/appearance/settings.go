package appearance

import (
	"fmt"

	"github.com/zam-dot/articleparams/internal/apperr"
)

// Settings is one selection per category. It is a value type: every change
// produces a new Settings through With.
type Settings struct {
	FontFamily      Option
	FontSize        Option
	FontColor       Option
	BackgroundColor Option
	ContentWidth    Option
}

var defaultSettings = Settings{
	FontFamily:      FontFamily.Default(),
	FontSize:        FontSize.Default(),
	FontColor:       FontColor.Default(),
	BackgroundColor: BackgroundColor.Default(),
	ContentWidth:    ContentWidth.Default(),
}

func init() {
	if err := defaultSettings.Validate(); err != nil {
		panic(fmt.Sprintf("appearance: default settings invalid: %v", err))
	}
}

// Default returns the global default settings.
func Default() Settings {
	return defaultSettings
}

// Get returns the option selected for c.
func (s Settings) Get(c Category) Option {
	switch c {
	case FontFamily:
		return s.FontFamily
	case FontSize:
		return s.FontSize
	case FontColor:
		return s.FontColor
	case BackgroundColor:
		return s.BackgroundColor
	case ContentWidth:
		return s.ContentWidth
	}
	return Option{}
}

// With returns a copy of s with the option for c replaced. Options outside
// the category's catalog are rejected and s is returned unchanged.
func (s Settings) With(c Category, o Option) (Settings, error) {
	if !c.Contains(o) {
		return s, apperr.NewForeignOptionError(c.Key(), o.Value)
	}
	switch c {
	case FontFamily:
		s.FontFamily = o
	case FontSize:
		s.FontSize = o
	case FontColor:
		s.FontColor = o
	case BackgroundColor:
		s.BackgroundColor = o
	case ContentWidth:
		s.ContentWidth = o
	}
	return s, nil
}

// FromValues builds settings from machine values keyed by category key.
// Missing keys keep the default.
func FromValues(values map[string]string) (Settings, error) {
	s := Default()
	for key, value := range values {
		c, ok := CategoryByKey(key)
		if !ok {
			return Default(), apperr.NewValidationError(key, "unknown category", nil)
		}
		o, ok := c.Lookup(value)
		if !ok {
			return Default(), apperr.NewForeignOptionError(key, value)
		}
		var err error
		if s, err = s.With(c, o); err != nil {
			return Default(), err
		}
	}
	return s, nil
}
