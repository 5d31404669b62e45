package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/config"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/models"
	"go.uber.org/zap"
)

// verbRecord matches the published dataset shape: a string id wrapping the
// verb payload. Older exports carry a numeric id inside verb_data as well;
// the outer id wins when the inner one is absent.
type verbRecord struct {
	ID   string           `json:"id"`
	Data models.VerbEntry `json:"verb_data"`
}

// Loader fetches the dataset exactly once per process. A failed load is
// cached the same way a successful one is: the session runs with an empty
// catalog and the retained error, and only a restart retries.
type Loader struct {
	source string
	client *http.Client
	log    *zap.Logger

	once sync.Once
	cat  *Catalog
	err  error
}

func NewLoader(cfg config.CatalogConfig, log *zap.Logger) *Loader {
	return &Loader{
		source: cfg.Source,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

// Load returns the catalog, fetching it on first call. On failure the
// returned catalog is empty, never nil.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	l.once.Do(func() {
		l.cat, l.err = l.load(ctx)
		if l.err != nil {
			l.cat = Empty()
			return
		}
		l.log.Info("verb catalog loaded",
			zap.String("source", l.source),
			zap.Int("verbs", l.cat.Len()),
		)
	})
	return l.cat, l.err
}

func (l *Loader) load(ctx context.Context) (*Catalog, error) {
	var (
		records []verbRecord
		err     error
	)

	if strings.HasPrefix(l.source, "http://") || strings.HasPrefix(l.source, "https://") {
		records, err = l.fetch(ctx)
	} else {
		records, err = l.read()
	}
	if err != nil {
		return nil, err
	}

	verbs := make([]models.VerbEntry, 0, len(records))
	for _, rec := range records {
		v := rec.Data
		if v.ID == "" {
			v.ID = rec.ID
		}
		verbs = append(verbs, v)
	}

	return New(verbs)
}

func (l *Loader) fetch(ctx context.Context) ([]verbRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch verb catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch verb catalog: status %d", resp.StatusCode)
	}

	var records []verbRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse verb catalog: %w", err)
	}

	return records, nil
}

func (l *Loader) read() ([]verbRecord, error) {
	data, err := os.ReadFile(l.source)
	if err != nil {
		return nil, fmt.Errorf("failed to read verb catalog: %w", err)
	}

	var records []verbRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse verb catalog: %w", err)
	}

	return records, nil
}
