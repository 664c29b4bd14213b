package appearance

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/zam-dot/articleparams/internal/apperr"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// settingsRecord is the flat form of Settings the validator inspects.
type settingsRecord struct {
	FontFamily      string `validate:"required,catalog=font-family"`
	FontSize        string `validate:"required,catalog=font-size"`
	FontColor       string `validate:"required,catalog=font-color"`
	BackgroundColor string `validate:"required,catalog=background-color"`
	ContentWidth    string `validate:"required,catalog=content-width"`
}

// Validator returns the shared validator with the "catalog" tag registered.
// The tag parameter is a category key; the field must be a machine value of
// that category.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("catalog", func(fl validator.FieldLevel) bool {
			c, ok := CategoryByKey(fl.Param())
			if !ok {
				return false
			}
			value := fl.Field().String()
			for _, o := range c.Options() {
				if o.Value == value {
					return true
				}
			}
			return false
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks that every field holds an option from its own catalog.
func (s Settings) Validate() error {
	record := settingsRecord{
		FontFamily:      s.FontFamily.Value,
		FontSize:        s.FontSize.Value,
		FontColor:       s.FontColor.Value,
		BackgroundColor: s.BackgroundColor.Value,
		ContentWidth:    s.ContentWidth.Value,
	}
	if err := Validator().Struct(record); err != nil {
		return translate(err)
	}

	// Values match; labels and class names must match the catalog entry too.
	for _, c := range Categories() {
		if !c.Contains(s.Get(c)) {
			return apperr.NewValidationError(c.Key(), fmt.Sprintf("option %q does not match the catalog entry", s.Get(c).Label), nil)
		}
	}
	return nil
}

func translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperr.NewValidationError("", err.Error(), err)
	}

	first := fieldErrs[0]
	field := fieldKey(first.Field())
	switch first.Tag() {
	case "required":
		return apperr.NewValidationError(field, "value is required", err)
	case "catalog":
		return apperr.NewValidationError(field, fmt.Sprintf("%q is not a catalog option", first.Value()), err)
	}
	return apperr.NewValidationError(field, first.Error(), err)
}

// fieldKey turns a Go field name such as "BackgroundColor" into "background-color".
func fieldKey(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
