package service

import (
	crypto "crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/arabic"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/catalog"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/models"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/storage/cache"
	"go.uber.org/zap"
)

// PracticeS runs drill sessions: it generates exercises, grades submitted
// answers and keeps the per-session score. Session state is only ever
// mutated by a successful grade or an explicit reset.
type PracticeS struct {
	cat         *catalog.Catalog
	loadErr     error
	cache       *cache.Cache
	maxAttempts int
	log         *zap.Logger
}

func NewPracticeService(cat *catalog.Catalog, loadErr error, c *cache.Cache, generateAttempts int, log *zap.Logger) *PracticeS {
	if generateAttempts <= 0 {
		generateAttempts = 5
	}
	return &PracticeS{
		cat:         cat,
		loadErr:     loadErr,
		cache:       c,
		maxAttempts: generateAttempts,
		log:         log,
	}
}

// StartDrill opens a new session for the drill and returns its first
// exercise.
func (p *PracticeS) StartDrill(drill models.DrillType) (string, models.Exercise, error) {
	if !drill.Valid() {
		return "", models.Exercise{}, fmt.Errorf("%w: %q", ErrUnknownDrill, drill)
	}

	ex, err := p.newExercise(drill)
	if err != nil {
		return "", models.Exercise{}, err
	}

	id, err := newSessionID()
	if err != nil {
		return "", models.Exercise{}, err
	}

	p.cache.SetSession(id, models.SessionState{Drill: drill})
	p.cache.SetExercise(id, ex)

	p.log.Info("practice session started",
		zap.String("session_id", id),
		zap.String("drill", string(drill)),
	)

	return id, ex, nil
}

// Submit grades the session's pending exercise against the raw answer. The
// exercise is consumed whether or not the answer was right.
func (p *PracticeS) Submit(id, answer string) (models.Feedback, error) {
	session, ok := p.cache.GetSession(id)
	if !ok {
		return models.Feedback{}, ErrSessionNotFound
	}

	ex, ok := p.cache.GetExercise(id)
	if !ok {
		return models.Feedback{}, ErrNoPendingExercise
	}
	p.cache.DeleteExercise(id)

	correct := Grade(ex, answer)

	session.Record(models.ExerciseResult{
		Drill:     ex.Drill,
		VerbID:    ex.VerbID,
		Correct:   correct,
		Timestamp: time.Now(),
	})
	p.cache.SetSession(id, session)

	return models.Feedback{
		Correct:       correct,
		CorrectAnswer: ex.CorrectAnswer,
		Stats:         session.Stats(),
	}, nil
}

// Next replaces the session's pending exercise with a fresh one for the same
// drill. An unanswered pending exercise is discarded.
func (p *PracticeS) Next(id string) (models.Exercise, error) {
	session, ok := p.cache.GetSession(id)
	if !ok {
		return models.Exercise{}, ErrSessionNotFound
	}

	ex, err := p.newExercise(session.Drill)
	if err != nil {
		return models.Exercise{}, err
	}

	p.cache.SetExercise(id, ex)

	return ex, nil
}

// Reset clears score, streak and history in one step. The pending exercise,
// if any, stays answerable.
func (p *PracticeS) Reset(id string) error {
	session, ok := p.cache.GetSession(id)
	if !ok {
		return ErrSessionNotFound
	}

	session.Reset()
	p.cache.SetSession(id, session)

	return nil
}

// End discards the session and any pending exercise. The id is invalid
// afterwards.
func (p *PracticeS) End(id string) error {
	if _, ok := p.cache.GetSession(id); !ok {
		return ErrSessionNotFound
	}

	p.cache.DeleteSession(id)

	p.log.Info("practice session ended", zap.String("session_id", id))

	return nil
}

func (p *PracticeS) Stats(id string) (models.SessionStats, error) {
	session, ok := p.cache.GetSession(id)
	if !ok {
		return models.SessionStats{}, ErrSessionNotFound
	}
	return session.Stats(), nil
}

// Grade is pure: the same exercise and input always produce the same
// verdict. Both sides go through normalization, so answers differing only
// in diacritics, case or surrounding whitespace count as correct.
func Grade(ex models.Exercise, submitted string) bool {
	return arabic.Normalize(submitted) == arabic.Normalize(ex.CorrectAnswer)
}

func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := crypto.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
