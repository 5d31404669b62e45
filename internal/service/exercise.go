package service

import (
	crypto "crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/models"
	"go.uber.org/zap"
)

// practicePronouns is the fixed set of persons drilled by the app. Every
// catalog entry is expected to carry a conjugation for each of them.
var practicePronouns = []string{"أَنَا", "أَنْتَ", "أَنْتِ", "هُوَ", "هِيَ", "نَحْنُ"}

// formPatterns maps the derivational form label to its canonical template,
// used when an entry does not carry an explicit pattern.
var formPatterns = map[string]string{
	"I":    "فَعَلَ",
	"II":   "فَعَّلَ",
	"III":  "فَاعَلَ",
	"IV":   "أَفْعَلَ",
	"V":    "تَفَعَّلَ",
	"VI":   "تَفَاعَلَ",
	"VII":  "انْفَعَلَ",
	"VIII": "افْتَعَلَ",
	"IX":   "افْعَلَّ",
	"X":    "اسْتَفْعَلَ",
}

var verbForms = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

const (
	tensePast    = "past"
	tensePresent = "present"

	distractorCount = 3
	rootSeparator   = "-"
)

// newExercise builds one exercise for the drill. The conjugation lookup can
// miss on inconsistent data, so selection retries a bounded number of times
// instead of recursing.
func (p *PracticeS) newExercise(drill models.DrillType) (models.Exercise, error) {
	if err := available(p.cat, p.loadErr); err != nil {
		return models.Exercise{}, err
	}

	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		ex, ok, err := p.buildExercise(drill)
		if err != nil {
			return models.Exercise{}, err
		}
		if ok {
			return ex, nil
		}
	}

	p.log.Warn("exercise generation exhausted retries",
		zap.String("drill", string(drill)),
		zap.Int("attempts", p.maxAttempts),
	)

	return models.Exercise{}, fmt.Errorf("%w after %d attempts", ErrExerciseExhausted, p.maxAttempts)
}

func (p *PracticeS) buildExercise(drill models.DrillType) (models.Exercise, bool, error) {
	verb, err := p.cat.RandomVerb()
	if err != nil {
		return models.Exercise{}, false, errors.Join(ErrCatalogUnavailable, err)
	}

	switch drill {
	case models.DrillRandomMix, models.DrillRootRecognition,
		models.DrillTenseIdentification, models.DrillTranslationMatching:
		return p.buildConjugationExercise(drill, verb)
	case models.DrillForm:
		return p.buildFormExercise(verb), true, nil
	case models.DrillMeaning:
		return p.buildMeaningExercise(verb), true, nil
	case models.DrillPattern:
		return p.buildPatternExercise(verb), true, nil
	default:
		return models.Exercise{}, false, ErrUnknownDrill
	}
}

func (p *PracticeS) buildConjugationExercise(drill models.DrillType, verb models.VerbEntry) (models.Exercise, bool, error) {
	pronoun := practicePronouns[p.randomPick(len(practicePronouns))]

	conj, ok := verb.ConjugationFor(pronoun)
	if !ok {
		// Data inconsistency, let the caller retry with a fresh pick.
		return models.Exercise{}, false, nil
	}

	tense := tensePast
	surface := conj.PastAr
	if p.randomPick(2) == 1 {
		tense = tensePresent
		surface = conj.PresentAr
	}

	switch drill {
	case models.DrillRootRecognition:
		return models.Exercise{
			Drill:         drill,
			AnswerKind:    models.AnswerRoot,
			VerbID:        verb.ID,
			Prompt:        fmt.Sprintf("What is the root of %s?", surface),
			CorrectAnswer: verb.RootJoined(rootSeparator),
		}, true, nil

	case models.DrillTenseIdentification:
		return models.Exercise{
			Drill:         drill,
			AnswerKind:    models.AnswerTense,
			VerbID:        verb.ID,
			Prompt:        fmt.Sprintf("Is the verb %s past or present tense?", surface),
			CorrectAnswer: tense,
			Options:       []string{tensePast, tensePresent},
		}, true, nil

	case models.DrillTranslationMatching:
		options := p.shuffled(append(
			p.translationDistractors(conj.TranslationEn, distractorCount),
			conj.TranslationEn,
		))
		return models.Exercise{
			Drill:         drill,
			AnswerKind:    models.AnswerTranslation,
			VerbID:        verb.ID,
			Prompt:        fmt.Sprintf("What is the meaning of %s?", surface),
			CorrectAnswer: conj.TranslationEn,
			Options:       options,
		}, true, nil

	default: // random_mix
		return models.Exercise{
			Drill:         drill,
			AnswerKind:    models.AnswerConjugation,
			VerbID:        verb.ID,
			Prompt:        fmt.Sprintf("Conjugate %s for %s in the %s tense.", verb.InfinitivePast, pronoun, tense),
			CorrectAnswer: surface,
		}, true, nil
	}
}

func (p *PracticeS) buildFormExercise(verb models.VerbEntry) models.Exercise {
	options := p.shuffled(append(
		p.poolDistractors(verbForms, verb.Form, distractorCount),
		verb.Form,
	))
	return models.Exercise{
		Drill:         models.DrillForm,
		AnswerKind:    models.AnswerForm,
		VerbID:        verb.ID,
		Prompt:        fmt.Sprintf("Which form is the verb %s (%s)?", verb.InfinitivePast, verb.Translations.En),
		CorrectAnswer: verb.Form,
		Options:       options,
	}
}

func (p *PracticeS) buildMeaningExercise(verb models.VerbEntry) models.Exercise {
	options := p.shuffled(append(
		p.meaningDistractors(verb, distractorCount),
		verb.Translations.En,
	))
	return models.Exercise{
		Drill:         models.DrillMeaning,
		AnswerKind:    models.AnswerTranslation,
		VerbID:        verb.ID,
		Prompt:        fmt.Sprintf("What does %s mean?", verb.InfinitivePast),
		CorrectAnswer: verb.Translations.En,
		Options:       options,
	}
}

func (p *PracticeS) buildPatternExercise(verb models.VerbEntry) models.Exercise {
	correct := verbPattern(verb)

	pool := make([]string, 0, len(formPatterns))
	for _, pattern := range formPatterns {
		pool = append(pool, pattern)
	}

	options := p.shuffled(append(
		p.poolDistractors(pool, correct, distractorCount),
		correct,
	))
	return models.Exercise{
		Drill:         models.DrillPattern,
		AnswerKind:    models.AnswerPattern,
		VerbID:        verb.ID,
		Prompt:        fmt.Sprintf("Which pattern does the verb %s (%s) follow?", verb.InfinitivePast, verb.Translations.En),
		CorrectAnswer: correct,
		Options:       options,
	}
}

func verbPattern(verb models.VerbEntry) string {
	if verb.Pattern != "" {
		return verb.Pattern
	}
	return formPatterns[verb.Form]
}

// translationDistractors samples wrong answers from other verbs'
// conjugations. Sampling is bounded: a tiny catalog yields fewer than n
// distractors rather than looping forever.
func (p *PracticeS) translationDistractors(correct string, n int) []string {
	seen := map[string]bool{correct: true}
	out := make([]string, 0, n)

	for attempt := 0; attempt < n*10 && len(out) < n; attempt++ {
		verb, err := p.cat.RandomVerb()
		if err != nil {
			break
		}
		conj := verb.Conjugations[p.randomPick(len(verb.Conjugations))]
		if conj.TranslationEn == "" || seen[conj.TranslationEn] {
			continue
		}
		seen[conj.TranslationEn] = true
		out = append(out, conj.TranslationEn)
	}

	return out
}

// meaningDistractors samples wrong answers from the other verbs' primary
// translations: collect, shuffle, then cut to n so every candidate has an
// equal chance of appearing.
func (p *PracticeS) meaningDistractors(verb models.VerbEntry, n int) []string {
	seen := map[string]bool{verb.Translations.En: true}
	pool := make([]string, 0, p.cat.Len())

	for _, other := range p.cat.Verbs() {
		if other.ID == verb.ID || other.Translations.En == "" || seen[other.Translations.En] {
			continue
		}
		seen[other.Translations.En] = true
		pool = append(pool, other.Translations.En)
	}

	p.shuffle(pool)
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}

// poolDistractors picks n values from a fixed pool, excluding the correct one.
func (p *PracticeS) poolDistractors(pool []string, correct string, n int) []string {
	out := make([]string, 0, len(pool))
	for _, v := range pool {
		if v != correct {
			out = append(out, v)
		}
	}
	p.shuffle(out)
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func (p *PracticeS) shuffled(values []string) []string {
	p.shuffle(values)
	return values
}

func (p *PracticeS) shuffle(values []string) {
	rand.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
}

// randomPick prefers crypto/rand and falls back to math/rand.
func (p *PracticeS) randomPick(max int) int {
	n, err := randomPosition(int64(max))
	if err != nil {
		p.log.Warn("crypto/rand failed, using math/rand fallback", zap.Error(err))
		return rand.Intn(max)
	}
	return n
}

func randomPosition(max int64) (int, error) {
	if max <= 0 {
		return 0, errors.New("max must be greater than 0")
	}

	n, err := crypto.Int(crypto.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}

	return int(n.Int64()), nil
}
