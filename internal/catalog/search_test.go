package catalog

import (
	"fmt"
	"testing"

	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture(t *testing.T) *Catalog {
	t.Helper()

	kataba := testVerb("kataba", "to write")
	kataba.Masdar = "كِتَابَة"

	darasa := testVerb("darasa", "to study")
	darasa.Root = []string{"د", "ر", "س"}
	darasa.InfinitivePast = "دَرَسَ"
	darasa.InfinitivePresent = "يَدْرُسُ"
	darasa.Translations.Ru = "учиться"

	cat, err := New([]models.VerbEntry{kataba, darasa})
	require.NoError(t, err)
	return cat
}

func TestCatalog_Search(t *testing.T) {
	t.Parallel()

	cat := searchFixture(t)

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{
			name:    "by english translation",
			query:   "write",
			wantIDs: []string{"kataba"},
		},
		{
			name:    "by russian translation",
			query:   "учиться",
			wantIDs: []string{"darasa"},
		},
		{
			name:    "by root letters",
			query:   "درس",
			wantIDs: []string{"darasa"},
		},
		{
			name:    "by vocalized infinitive with bare query",
			query:   "يكتب",
			wantIDs: []string{"kataba"},
		},
		{
			name:    "by vocalized query against vocalized field",
			query:   "دَرَسَ",
			wantIDs: []string{"darasa"},
		},
		{
			name:    "by masdar",
			query:   "كتابة",
			wantIDs: []string{"kataba"},
		},
		{
			name:    "case insensitive",
			query:   "To Study",
			wantIDs: []string{"darasa"},
		},
		{
			name:    "no match",
			query:   "xyz",
			wantIDs: nil,
		},
		{
			name:    "blank query matches nothing",
			query:   "   ",
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := cat.Search(tt.query, 10)

			var ids []string
			for _, v := range got {
				ids = append(ids, v.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCatalog_SearchLimit(t *testing.T) {
	t.Parallel()

	verbs := make([]models.VerbEntry, 0, 8)
	for i := 0; i < 8; i++ {
		verbs = append(verbs, testVerb(fmt.Sprintf("verb-%d", i), "to write"))
	}
	cat, err := New(verbs)
	require.NoError(t, err)

	assert.Len(t, cat.Search("write", 3), 3)
	assert.Len(t, cat.Search("write", 0), 8)
}
