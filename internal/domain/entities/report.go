package entities

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/mh739025250/deltaboard/internal/domain"
)

// CatalogReport is the outcome of comparing every locale table against the
// reference (default) locale. Maps are keyed by locale; slices are sorted.
type CatalogReport struct {
	Reference language.Tag
	Locales   []language.Tag
	// Missing holds reference keys a locale does not define.
	Missing map[language.Tag][]string
	// Extra holds keys a locale defines that the reference does not.
	Extra map[language.Tag][]string
	// Empty holds keys whose text is blank, the reference included.
	Empty map[language.Tag][]string
}

// OK reports whether every locale covers the reference and no text is blank.
// Extra keys are tolerated.
func (r CatalogReport) OK() bool {
	return len(r.Missing) == 0 && len(r.Empty) == 0
}

// Err joins one error per problem, or returns nil when OK.
func (r CatalogReport) Err() error {
	var errs []error
	for _, tag := range r.Locales {
		if keys := r.Missing[tag]; len(keys) > 0 {
			errs = append(errs, fmt.Errorf("%s: %w: %s", tag, domain.ErrMissingKey, strings.Join(keys, ", ")))
		}
		if keys := r.Empty[tag]; len(keys) > 0 {
			errs = append(errs, fmt.Errorf("%s: %w: %s", tag, domain.ErrEmptyMessage, strings.Join(keys, ", ")))
		}
	}
	return errors.Join(errs...)
}
