package service

import (
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/catalog"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/models"
	"go.uber.org/zap"
)

// CatalogS exposes the loaded catalog to the transport layer: listing,
// lookup and search suggestions. A failed load surfaces on every call
// instead of crashing the process.
type CatalogS struct {
	cat     *catalog.Catalog
	loadErr error
	limit   int
	log     *zap.Logger
}

func NewCatalogService(cat *catalog.Catalog, loadErr error, suggestionLimit int, log *zap.Logger) *CatalogS {
	return &CatalogS{
		cat:     cat,
		loadErr: loadErr,
		limit:   suggestionLimit,
		log:     log,
	}
}

func (s *CatalogS) Verbs() ([]models.VerbEntry, error) {
	if err := available(s.cat, s.loadErr); err != nil {
		return nil, err
	}
	return s.cat.Verbs(), nil
}

func (s *CatalogS) Verb(id string) (models.VerbEntry, error) {
	if err := available(s.cat, s.loadErr); err != nil {
		return models.VerbEntry{}, err
	}
	v, ok := s.cat.ByID(id)
	if !ok {
		return models.VerbEntry{}, ErrVerbNotFound
	}
	return v, nil
}

func (s *CatalogS) Search(query string) ([]models.VerbEntry, error) {
	if err := available(s.cat, s.loadErr); err != nil {
		return nil, err
	}
	return s.cat.Search(query, s.limit), nil
}
