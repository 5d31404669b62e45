// Package catalog owns the verb dataset: loading it once per process,
// validating it, and answering lookups over the immutable result.
package catalog

import (
	crypto "crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/models"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/pkg/validator"
)

var ErrEmptyCatalog = errors.New("verb catalog is empty")

// Catalog is an immutable, indexed collection of verb entries.
type Catalog struct {
	verbs []models.VerbEntry
	byID  map[string]int
}

// New validates every entry and builds the id index. Entries that fail
// validation reject the whole catalog; a half-loaded dataset would produce
// broken exercises later.
func New(verbs []models.VerbEntry) (*Catalog, error) {
	byID := make(map[string]int, len(verbs))
	for i, v := range verbs {
		if err := validator.ValidateStruct(v); err != nil {
			return nil, fmt.Errorf("invalid verb entry %q: %w", v.ID, err)
		}
		if _, ok := byID[v.ID]; ok {
			return nil, fmt.Errorf("duplicate verb id %q", v.ID)
		}
		byID[v.ID] = i
	}

	return &Catalog{verbs: verbs, byID: byID}, nil
}

// Empty returns a catalog with no entries, used when loading fails.
func Empty() *Catalog {
	return &Catalog{byID: map[string]int{}}
}

func (c *Catalog) Len() int {
	return len(c.verbs)
}

// Verbs returns a copy of the entry list; callers cannot mutate the catalog.
func (c *Catalog) Verbs() []models.VerbEntry {
	out := make([]models.VerbEntry, len(c.verbs))
	copy(out, c.verbs)
	return out
}

func (c *Catalog) ByID(id string) (models.VerbEntry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.VerbEntry{}, false
	}
	return c.verbs[i], true
}

// RandomVerb picks an entry uniformly at random.
func (c *Catalog) RandomVerb() (models.VerbEntry, error) {
	if len(c.verbs) == 0 {
		return models.VerbEntry{}, ErrEmptyCatalog
	}
	return c.verbs[randomIndex(len(c.verbs))], nil
}

func randomIndex(max int) int {
	n, err := crypto.Int(crypto.Reader, big.NewInt(int64(max)))
	if err != nil {
		return rand.Intn(max)
	}
	return int(n.Int64())
}
