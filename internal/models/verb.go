package models

import "strings"

type Translation struct {
	En string `json:"en" validate:"required"`
	Ru string `json:"ru,omitempty"`
}

type ExampleSentence struct {
	Ar       string `json:"ar" validate:"required"`
	Translit string `json:"translit"`
	En       string `json:"en"`
	Ru       string `json:"ru,omitempty"`
}

type Conjugation struct {
	PronounAr       string `json:"pronoun_ar" validate:"required"`
	PronounTranslit string `json:"pronoun_translit"`
	PastAr          string `json:"past_verb_ar" validate:"required"`
	PastTranslit    string `json:"past_verb_translit"`
	PresentAr       string `json:"present_verb_ar" validate:"required"`
	PresentTranslit string `json:"present_verb_translit"`
	TranslationEn   string `json:"translation_en" validate:"required"`
	TranslationRu   string `json:"translation_ru,omitempty"`
}

// VerbEntry is one verb in the catalog. Entries are immutable once loaded.
type VerbEntry struct {
	ID                        string            `json:"id" validate:"required"`
	Root                      []string          `json:"root" validate:"min=3"`
	Form                      string            `json:"form" validate:"required"`
	Pattern                   string            `json:"pattern,omitempty"`
	InfinitivePast            string            `json:"infinitive_past" validate:"required"`
	InfinitivePastTranslit    string            `json:"infinitive_past_translit,omitempty"`
	InfinitivePresent         string            `json:"infinitive_present" validate:"required"`
	InfinitivePresentTranslit string            `json:"infinitive_present_translit,omitempty"`
	Masdar                    string            `json:"masdar"`
	VerbTypeAr                string            `json:"verb_type_ar"`
	VerbTypeEn                string            `json:"verb_type_en"`
	Translations              Translation       `json:"translations"`
	ExampleSentences          []ExampleSentence `json:"example_sentences"`
	Conjugations              []Conjugation     `json:"conjugations" validate:"min=1"`
}

// ConjugationFor returns the conjugation entry for the given Arabic pronoun.
func (v VerbEntry) ConjugationFor(pronounAr string) (Conjugation, bool) {
	for _, c := range v.Conjugations {
		if c.PronounAr == pronounAr {
			return c, true
		}
	}
	return Conjugation{}, false
}

func (v VerbEntry) RootJoined(sep string) string {
	return strings.Join(v.Root, sep)
}
