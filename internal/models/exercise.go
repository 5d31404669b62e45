package models

import "time"

type DrillType string

const (
	DrillRandomMix           DrillType = "random_mix"
	DrillRootRecognition     DrillType = "root_recognition"
	DrillTenseIdentification DrillType = "tense_identification"
	DrillTranslationMatching DrillType = "translation_matching"
	DrillForm                DrillType = "form"
	DrillMeaning             DrillType = "meaning"
	DrillPattern             DrillType = "pattern"
)

func (d DrillType) Valid() bool {
	switch d {
	case DrillRandomMix, DrillRootRecognition, DrillTenseIdentification,
		DrillTranslationMatching, DrillForm, DrillMeaning, DrillPattern:
		return true
	}
	return false
}

// AnswerKind tags what kind of value an exercise expects back.
type AnswerKind string

const (
	AnswerConjugation AnswerKind = "conjugation"
	AnswerRoot        AnswerKind = "root"
	AnswerTense       AnswerKind = "tense"
	AnswerTranslation AnswerKind = "translation"
	AnswerForm        AnswerKind = "form"
	AnswerPattern     AnswerKind = "pattern"
)

// Exercise is a single generated question. It lives from generation until the
// one submit that consumes it. Options is nil for free-text drills; the correct
// answer is never serialized to the client.
type Exercise struct {
	Drill         DrillType  `json:"drill"`
	AnswerKind    AnswerKind `json:"answer_kind"`
	VerbID        string     `json:"verb_id"`
	Prompt        string     `json:"prompt"`
	CorrectAnswer string     `json:"-"`
	Options       []string   `json:"options,omitempty"`
}

func (e Exercise) MultipleChoice() bool {
	return len(e.Options) > 0
}

type ExerciseResult struct {
	Drill     DrillType `json:"drill"`
	VerbID    string    `json:"verb_id"`
	Correct   bool      `json:"correct"`
	Timestamp time.Time `json:"timestamp"`
}

// Feedback is the verdict returned for one submitted answer.
type Feedback struct {
	Correct       bool         `json:"correct"`
	CorrectAnswer string       `json:"correct_answer"`
	Stats         SessionStats `json:"stats"`
}

type SessionStats struct {
	Score    int              `json:"score"`
	Streak   int              `json:"streak"`
	Total    int              `json:"total"`
	Accuracy float64          `json:"accuracy"`
	History  []ExerciseResult `json:"history,omitempty"`
}

// SessionState accumulates graded results for one practice session.
// Score counts correct answers since the last reset; streak counts consecutive
// correct answers and drops to zero on any miss. Incorrect answers never
// decrement the score.
type SessionState struct {
	Drill   DrillType
	Score   int
	Streak  int
	History []ExerciseResult
}

func (s *SessionState) Record(r ExerciseResult) {
	s.History = append(s.History, r)
	if r.Correct {
		s.Score++
		s.Streak++
	} else {
		s.Streak = 0
	}
}

func (s *SessionState) Reset() {
	s.Score = 0
	s.Streak = 0
	s.History = nil
}

// Accuracy is derived on demand, in percent. Empty history counts as 0.
func (s *SessionState) Accuracy() float64 {
	if len(s.History) == 0 {
		return 0
	}
	return float64(s.Score) * 100 / float64(len(s.History))
}

func (s *SessionState) Stats() SessionStats {
	return SessionStats{
		Score:    s.Score,
		Streak:   s.Streak,
		Total:    len(s.History),
		Accuracy: s.Accuracy(),
		History:  s.History,
	}
}
