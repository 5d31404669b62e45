package service

import (
	"testing"

	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCatalogService(t *testing.T, cat *catalog.Catalog, loadErr error) *CatalogS {
	t.Helper()
	return NewCatalogService(cat, loadErr, 10, zap.NewNop())
}

func TestCatalogS_Verbs(t *testing.T) {
	t.Parallel()

	s := newCatalogService(t, fixtureVerbs(t), nil)

	verbs, err := s.Verbs()
	require.NoError(t, err)
	assert.Len(t, verbs, 5)
}

func TestCatalogS_Verb(t *testing.T) {
	t.Parallel()

	s := newCatalogService(t, fixtureVerbs(t), nil)

	v, err := s.Verb("kataba")
	require.NoError(t, err)
	assert.Equal(t, "to write", v.Translations.En)

	_, err = s.Verb("missing")
	require.ErrorIs(t, err, ErrVerbNotFound)
}

func TestCatalogS_Search(t *testing.T) {
	t.Parallel()

	s := newCatalogService(t, fixtureVerbs(t), nil)

	verbs, err := s.Search("write")
	require.NoError(t, err)
	require.Len(t, verbs, 1)
	assert.Equal(t, "kataba", verbs[0].ID)
}

func TestCatalogS_LoadErrorSurfaces(t *testing.T) {
	t.Parallel()

	s := newCatalogService(t, catalog.Empty(), assert.AnError)

	_, err := s.Verbs()
	require.ErrorIs(t, err, ErrCatalogUnavailable)

	_, err = s.Verb("kataba")
	require.ErrorIs(t, err, ErrCatalogUnavailable)

	_, err = s.Search("write")
	require.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestCatalogS_EmptyCatalog(t *testing.T) {
	t.Parallel()

	s := newCatalogService(t, catalog.Empty(), nil)

	verbs, err := s.Verbs()
	require.ErrorIs(t, err, ErrCatalogUnavailable)
	assert.Nil(t, verbs)
}
