// Package locale maps BCP 47 language tags to document formatting conventions.
package locale

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// ErrUnsupportedLocale indicates a tag that cannot be matched against the
// supported locale set.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// Locale carries the formatting conventions attached to a supported language
// tag: the short date layout and the numeric separators used for money.
type Locale struct {
	Tag        language.Tag
	DateLayout string // Go time layout for the short date form
	DecimalSep string
	GroupSep   string
}

// supported lists the locales the renderer knows how to format.
// The first entry is the default.
var supported = []Locale{
	{Tag: language.MustParse("en-US"), DateLayout: "1/2/2006", DecimalSep: ".", GroupSep: ","},
	{Tag: language.MustParse("en-GB"), DateLayout: "02/01/2006", DecimalSep: ".", GroupSep: ","},
	{Tag: language.MustParse("pt-BR"), DateLayout: "02/01/2006", DecimalSep: ",", GroupSep: "."},
	{Tag: language.MustParse("es-ES"), DateLayout: "2/1/2006", DecimalSep: ",", GroupSep: "."},
	{Tag: language.MustParse("fr-FR"), DateLayout: "02/01/2006", DecimalSep: ",", GroupSep: " "},
	{Tag: language.MustParse("de-DE"), DateLayout: "02.01.2006", DecimalSep: ",", GroupSep: "."},
}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(supported))
	for i, l := range supported {
		tags[i] = l.Tag
	}
	return tags
}

// Default returns the locale used when none is configured.
func Default() Locale {
	return supported[0]
}

// Match resolves tag to the closest supported locale. The empty string
// resolves to Default. Unparsable tags and tags with no plausible match
// return ErrUnsupportedLocale.
func Match(tag string) (Locale, error) {
	if tag == "" {
		return Default(), nil
	}
	desired, err := language.Parse(tag)
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %q: %v", ErrUnsupportedLocale, tag, err)
	}
	_, idx, conf := matcher.Match(desired)
	if conf == language.No {
		return Locale{}, fmt.Errorf("%w: %q", ErrUnsupportedLocale, tag)
	}
	return supported[idx], nil
}

// Names returns the supported tags in canonical form, for help text and
// shell completion.
func Names() []string {
	names := make([]string, len(supported))
	for i, l := range supported {
		names[i] = l.Tag.String()
	}
	return names
}
