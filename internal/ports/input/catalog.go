package input

import "github.com/mh739025250/deltaboard/internal/domain/entities"

type CatalogUseCase interface {
	Check() entities.CatalogReport
	Lookup(locale, key string) (string, error)
}
