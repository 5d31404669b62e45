package catalog

import (
	"strings"

	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/arabic"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/models"
)

// Search matches the normalized query as a substring against a verb's
// translations, root letters, infinitives and masdar. The result list is
// bounded by limit (0 means unbounded). A blank query matches nothing.
func (c *Catalog) Search(query string, limit int) []models.VerbEntry {
	q := arabic.Normalize(query)
	if q == "" {
		return nil
	}

	var out []models.VerbEntry
	for _, v := range c.verbs {
		if !matchesQuery(v, q) {
			continue
		}
		out = append(out, v)
		if limit > 0 && len(out) >= limit {
			break
		}
	}

	return out
}

func matchesQuery(v models.VerbEntry, q string) bool {
	fields := []string{
		v.Translations.En,
		v.Translations.Ru,
		v.RootJoined(""),
		v.InfinitivePast,
		v.InfinitivePresent,
		v.Masdar,
	}

	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(arabic.Normalize(f), q) {
			return true
		}
	}

	return false
}
