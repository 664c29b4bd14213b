package appearance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zam-dot/articleparams/internal/apperr"
)

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	d := Default()
	assert.Equal(t, "Open Sans", d.FontFamily.Value)
	assert.Equal(t, "18px", d.FontSize.Value)
	assert.Equal(t, "#000000", d.FontColor.Value)
	assert.Equal(t, "#FFFFFF", d.BackgroundColor.Value)
	assert.Equal(t, "White", d.BackgroundColor.Label)
	assert.Equal(t, "1394px", d.ContentWidth.Value)
	require.NoError(t, d.Validate())
}

func TestEveryCategoryHasOptionsAndAMemberDefault(t *testing.T) {
	t.Parallel()

	for _, c := range Categories() {
		c := c
		t.Run(c.Key(), func(t *testing.T) {
			t.Parallel()

			options := c.Options()
			require.NotEmpty(t, options)
			assert.True(t, c.Contains(c.Default()))
			assert.Equal(t, c.Default(), Default().Get(c))
			assert.NotEqual(t, "Unknown", c.Title())

			seen := map[string]bool{}
			for _, o := range options {
				assert.False(t, seen[o.Value], "duplicate value %s", o.Value)
				seen[o.Value] = true
			}
		})
	}
}

func TestOptionsReturnsCopy(t *testing.T) {
	t.Parallel()

	options := FontFamily.Options()
	options[0] = Option{Value: "Comic Sans"}

	assert.Equal(t, "Open Sans", FontFamily.Options()[0].Value)
}

func TestCategoryByKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want Category
		ok   bool
	}{
		{"font-family", FontFamily, true},
		{"font-size", FontSize, true},
		{"font-color", FontColor, true},
		{"background-color", BackgroundColor, true},
		{"content-width", ContentWidth, true},
		{"line-height", 0, false},
	}

	for _, tt := range tests {
		got, ok := CategoryByKey(tt.key)
		assert.Equal(t, tt.ok, ok, tt.key)
		if tt.ok {
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestLookupByValueAndLabel(t *testing.T) {
	t.Parallel()

	byValue, ok := BackgroundColor.Lookup("#000000")
	require.True(t, ok)
	byLabel, ok := BackgroundColor.Lookup("Dark")
	require.True(t, ok)
	assert.Equal(t, byValue, byLabel)

	_, ok = FontFamily.Lookup("Comic Sans")
	assert.False(t, ok)
}

func TestWithReplacesOnlyOneField(t *testing.T) {
	t.Parallel()

	mono, ok := FontFamily.Lookup("Roboto Mono")
	require.True(t, ok)

	base := Default()
	next, err := base.With(FontFamily, mono)
	require.NoError(t, err)

	assert.Equal(t, mono, next.FontFamily)
	assert.Equal(t, base.FontSize, next.FontSize)
	assert.Equal(t, base.FontColor, next.FontColor)
	assert.Equal(t, base.BackgroundColor, next.BackgroundColor)
	assert.Equal(t, base.ContentWidth, next.ContentWidth)
	assert.Equal(t, "Open Sans", base.FontFamily.Value, "original value must not change")
}

func TestWithRejectsForeignOption(t *testing.T) {
	t.Parallel()

	base := Default()
	dark, _ := BackgroundColor.Lookup("Dark")

	next, err := base.With(FontColor, dark)
	var foreignErr *apperr.ForeignOptionError
	require.ErrorAs(t, err, &foreignErr)
	assert.Equal(t, "font-color", foreignErr.Category)
	assert.Equal(t, base, next)

	_, err = base.With(FontFamily, Option{Value: "Comic Sans", Label: "Comic Sans"})
	require.ErrorAs(t, err, &foreignErr)
}

func TestValidateRejectsMissingField(t *testing.T) {
	t.Parallel()

	s := Default()
	s.ContentWidth = Option{}

	err := s.Validate()
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "content-width", validationErr.Field)
}

func TestValidateRejectsInventedValue(t *testing.T) {
	t.Parallel()

	s := Default()
	s.FontSize = Option{Value: "99px", Label: "99px"}

	err := s.Validate()
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "font-size", validationErr.Field)
}

func TestValidateRejectsMismatchedLabel(t *testing.T) {
	t.Parallel()

	s := Default()
	s.BackgroundColor = Option{Value: "#000000", Label: "Midnight", ClassName: "bg-dark"}

	err := s.Validate()
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "background-color", validationErr.Field)
}

func TestFromValues(t *testing.T) {
	t.Parallel()

	s, err := FromValues(map[string]string{
		"font-family":      "Roboto Mono",
		"background-color": "Dark",
	})
	require.NoError(t, err)
	assert.Equal(t, "Roboto Mono", s.FontFamily.Value)
	assert.Equal(t, "#000000", s.BackgroundColor.Value)
	assert.Equal(t, Default().FontSize, s.FontSize)

	_, err = FromValues(map[string]string{"font-size": "99px"})
	var foreignErr *apperr.ForeignOptionError
	require.ErrorAs(t, err, &foreignErr)

	_, err = FromValues(map[string]string{"line-height": "2"})
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestFieldKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "background-color", fieldKey("BackgroundColor"))
	assert.Equal(t, "font-size", fieldKey("FontSize"))
}
