package output

import (
	"golang.org/x/text/language"

	"github.com/mh739025250/deltaboard/internal/domain/entities"
)

// Translator exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + templating for a given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}

// Catalog is the read-only registry of locale tables keyed by locale code.
type Catalog interface {
	// Lookup returns the text stored under key for locale, and false when
	// either the locale or the key is unknown.
	Lookup(locale, key string) (string, bool)
	Table(locale string) (entities.Table, bool)
	Locales() []language.Tag
	DefaultLocale() language.Tag
}
