package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/client"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/models"
	"go.uber.org/zap"
)

// SentenceS wraps the hosted text-generation client. It never invents a
// sentence on failure: errors are classified and reported.
type SentenceS struct {
	api SentenceAPII
	log *zap.Logger
}

func NewSentenceService(api SentenceAPII, log *zap.Logger) *SentenceS {
	return &SentenceS{
		api: api,
		log: log,
	}
}

func (s *SentenceS) ExampleSentence(ctx context.Context, verb, tense string) (models.Sentence, error) {
	if tense != tensePast && tense != tensePresent {
		return models.Sentence{}, fmt.Errorf("%w: got %q", ErrInvalidTense, tense)
	}

	sentence, err := s.api.GenerateSentence(ctx, verb, tense)
	if err != nil {
		s.log.Warn("sentence generation failed",
			zap.String("verb", verb),
			zap.String("tense", tense),
			zap.Error(err),
		)
		switch {
		case errors.Is(err, client.ErrBadResponse):
			return models.Sentence{}, fmt.Errorf("%w: %v", ErrBadSentence, err)
		default:
			return models.Sentence{}, fmt.Errorf("%w: %v", ErrSentenceUnavailable, err)
		}
	}

	return sentence, nil
}
