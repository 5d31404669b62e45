package service

import (
	"context"
	"errors"

	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/catalog"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/config"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/models"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/storage/cache"
	"go.uber.org/zap"
)

// Sentinel errors the transport layer maps to HTTP statuses.
var (
	ErrCatalogUnavailable  = errors.New("verb catalog unavailable")
	ErrVerbNotFound        = errors.New("verb not found")
	ErrSessionNotFound     = errors.New("practice session not found")
	ErrNoPendingExercise   = errors.New("no pending exercise for session")
	ErrUnknownDrill        = errors.New("unknown drill type")
	ErrInvalidTense        = errors.New("tense must be past or present")
	ErrExerciseExhausted   = errors.New("failed to generate exercise")
	ErrSentenceUnavailable = errors.New("sentence service unavailable")
	ErrBadSentence         = errors.New("sentence service returned malformed content")
)

type SentenceAPII interface {
	GenerateSentence(ctx context.Context, verb, tense string) (models.Sentence, error)
}

type Service struct {
	*CatalogS
	*PracticeS
	*SentenceS
}

func InitServices(api SentenceAPII, cat *catalog.Catalog, loadErr error, c *cache.Cache, app config.AppConfig, log *zap.Logger) *Service {
	return &Service{
		CatalogS:  NewCatalogService(cat, loadErr, app.SuggestionLimit, log),
		PracticeS: NewPracticeService(cat, loadErr, c, app.GenerateAttempts, log),
		SentenceS: NewSentenceService(api, log),
	}
}

// available reports why the catalog cannot serve, if it cannot.
func available(cat *catalog.Catalog, loadErr error) error {
	if loadErr != nil {
		return errors.Join(ErrCatalogUnavailable, loadErr)
	}
	if cat.Len() == 0 {
		return ErrCatalogUnavailable
	}
	return nil
}
