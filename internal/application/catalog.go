package application

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/mh739025250/deltaboard/internal/domain"
	"github.com/mh739025250/deltaboard/internal/domain/entities"
	"github.com/mh739025250/deltaboard/internal/ports/input"
	"github.com/mh739025250/deltaboard/internal/ports/output"
)

var _ input.CatalogUseCase = (*CatalogService)(nil)

type CatalogService struct {
	catalog output.Catalog
}

func NewCatalogService(catalog output.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Check compares every loaded locale with the default locale's key set.
func (s *CatalogService) Check() entities.CatalogReport {
	ref := s.catalog.DefaultLocale()
	report := entities.CatalogReport{
		Reference: ref,
		Locales:   s.catalog.Locales(),
		Missing:   map[language.Tag][]string{},
		Extra:     map[language.Tag][]string{},
		Empty:     map[language.Tag][]string{},
	}
	refTable, _ := s.catalog.Table(ref.String())

	for _, tag := range report.Locales {
		table, _ := s.catalog.Table(tag.String())
		if blank := table.Blank(); len(blank) > 0 {
			report.Empty[tag] = blank
		}
		if tag == ref {
			continue
		}
		for _, key := range refTable.Keys() {
			if _, ok := table[key]; !ok {
				report.Missing[tag] = append(report.Missing[tag], key)
			}
		}
		for _, key := range table.Keys() {
			if _, ok := refTable[key]; !ok {
				report.Extra[tag] = append(report.Extra[tag], key)
			}
		}
	}
	return report
}

// Lookup is the strict accessor: a miss yields ErrUnknownLocale or
// ErrMessageNotFound instead of a fallback string.
func (s *CatalogService) Lookup(locale, key string) (string, error) {
	if _, ok := s.catalog.Table(locale); !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownLocale, locale)
	}
	v, ok := s.catalog.Lookup(locale, key)
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", domain.ErrMessageNotFound, locale, key)
	}
	return v, nil
}
