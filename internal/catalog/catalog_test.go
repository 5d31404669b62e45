package catalog

import (
	"testing"

	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVerb(id, en string) models.VerbEntry {
	return models.VerbEntry{
		ID:                id,
		Root:              []string{"ك", "ت", "ب"},
		Form:              "I",
		InfinitivePast:    "كَتَبَ",
		InfinitivePresent: "يَكْتُبُ",
		Translations:      models.Translation{En: en},
		Conjugations: []models.Conjugation{
			{
				PronounAr:     "هُوَ",
				PastAr:        "كَتَبَ",
				PresentAr:     "يَكْتُبُ",
				TranslationEn: "he writes",
			},
		},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbs   []models.VerbEntry
		wantErr bool
	}{
		{
			name:    "success",
			verbs:   []models.VerbEntry{testVerb("kataba", "to write")},
			wantErr: false,
		},
		{
			name:    "success: empty",
			verbs:   nil,
			wantErr: false,
		},
		{
			name: "error: missing root",
			verbs: func() []models.VerbEntry {
				v := testVerb("kataba", "to write")
				v.Root = []string{"ك"}
				return []models.VerbEntry{v}
			}(),
			wantErr: true,
		},
		{
			name: "error: no conjugations",
			verbs: func() []models.VerbEntry {
				v := testVerb("kataba", "to write")
				v.Conjugations = nil
				return []models.VerbEntry{v}
			}(),
			wantErr: true,
		},
		{
			name: "error: duplicate id",
			verbs: []models.VerbEntry{
				testVerb("kataba", "to write"),
				testVerb("kataba", "to write again"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cat, err := New(tt.verbs)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, len(tt.verbs), cat.Len())
		})
	}
}

func TestCatalog_ByID(t *testing.T) {
	t.Parallel()

	cat, err := New([]models.VerbEntry{
		testVerb("kataba", "to write"),
		testVerb("darasa", "to study"),
	})
	require.NoError(t, err)

	v, ok := cat.ByID("darasa")
	require.True(t, ok)
	assert.Equal(t, "to study", v.Translations.En)

	_, ok = cat.ByID("missing")
	assert.False(t, ok)
}

func TestCatalog_RandomVerb(t *testing.T) {
	t.Parallel()

	cat, err := New([]models.VerbEntry{
		testVerb("kataba", "to write"),
		testVerb("darasa", "to study"),
	})
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		v, err := cat.RandomVerb()
		require.NoError(t, err)
		assert.Contains(t, []string{"kataba", "darasa"}, v.ID)
	}
}

func TestCatalog_RandomVerb_Empty(t *testing.T) {
	t.Parallel()

	_, err := Empty().RandomVerb()
	require.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestCatalog_VerbsIsCopy(t *testing.T) {
	t.Parallel()

	cat, err := New([]models.VerbEntry{testVerb("kataba", "to write")})
	require.NoError(t, err)

	verbs := cat.Verbs()
	verbs[0].ID = "mutated"

	v, ok := cat.ByID("kataba")
	require.True(t, ok)
	assert.Equal(t, "kataba", v.ID)
}
