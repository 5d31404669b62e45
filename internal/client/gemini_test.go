package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/config"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateBody(text string) string {
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func newTestAPI(t *testing.T, handler http.HandlerFunc) *GeminiAPI {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewGeminiAPI(config.AIConfig{
		BaseURL: srv.URL,
		Model:   "gemini-2.5-flash",
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})
}

func TestGeminiAPI_GenerateSentence(t *testing.T) {
	t.Parallel()

	sentence := models.Sentence{
		Ar:       "كَتَبَ الوَلَدُ رِسَالَةً",
		Translit: "kataba al-waladu risaalatan",
		En:       "The boy wrote a letter.",
	}
	payload, err := json.Marshal(sentence)
	require.NoError(t, err)

	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Contains(t, r.URL.Path, "gemini-2.5-flash")
				assert.Equal(t, "test-key", r.URL.Query().Get("key"))

				var req models.GenerateContentRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				require.Len(t, req.Contents, 1)
				assert.Contains(t, req.Contents[0].Parts[0].Text, "كَتَبَ")
				assert.Contains(t, req.Contents[0].Parts[0].Text, "past")

				fmt.Fprint(w, candidateBody(string(payload)))
			},
		},
		{
			name: "success: markdown fences stripped",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, candidateBody("```json\n"+string(payload)+"\n```"))
			},
		},
		{
			name: "error: upstream status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "quota exceeded", http.StatusTooManyRequests)
			},
			wantErr: ErrUnavailable,
		},
		{
			name: "error: api error payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
			},
			wantErr: ErrUnavailable,
		},
		{
			name: "error: no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"candidates":[]}`)
			},
			wantErr: ErrBadResponse,
		},
		{
			name: "error: candidate is not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, candidateBody("Sure! Here is a sentence."))
			},
			wantErr: ErrBadResponse,
		},
		{
			name: "error: missing required field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, candidateBody(`{"ar":"كتب","translit":"kataba"}`))
			},
			wantErr: ErrBadResponse,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := newTestAPI(t, tt.handler)

			got, err := api.GenerateSentence(context.Background(), "كَتَبَ", "past")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, sentence, got)
		})
	}
}

func TestGeminiAPI_MissingAPIKey(t *testing.T) {
	t.Parallel()

	api := NewGeminiAPI(config.AIConfig{
		BaseURL: "https://example.com",
		Model:   "gemini-2.5-flash",
		Timeout: time.Second,
	})

	_, err := api.GenerateSentence(context.Background(), "كَتَبَ", "past")
	require.ErrorIs(t, err, ErrUnavailable)
}
