package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/config"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/models"
	"github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/pkg/validator"
)

var (
	// ErrUnavailable covers transport failures, non-200 statuses and a
	// missing API key: the upstream call itself did not succeed.
	ErrUnavailable = errors.New("sentence generation unavailable")
	// ErrBadResponse covers a successful call whose payload is not the
	// expected {ar, translit, en} object.
	ErrBadResponse = errors.New("sentence response malformed")
)

// fenceRe strips markdown code fences the model sometimes wraps around its
// JSON despite being told not to.
var fenceRe = regexp.MustCompile("(?s)^```(?:[a-zA-Z]*)?\\s*\\n?(.*?)\\n?\\s*```$")

type GeminiAPI struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

func NewGeminiAPI(cfg config.AIConfig) *GeminiAPI {
	return &GeminiAPI{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// GenerateSentence asks the model for one beginner-level example sentence
// using the given verb and tense, and parses the structured reply.
func (g *GeminiAPI) GenerateSentence(ctx context.Context, verb, tense string) (models.Sentence, error) {
	if g.apiKey == "" {
		return models.Sentence{}, fmt.Errorf("%w: api key not configured", ErrUnavailable)
	}

	body, err := json.Marshal(models.GenerateContentRequest{
		Contents: []models.Content{
			{Parts: []models.Part{{Text: sentencePrompt(verb, tense)}}},
		},
		GenerationConfig: &models.GenerationConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.8,
		},
	})
	if err != nil {
		return models.Sentence{}, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return models.Sentence{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return models.Sentence{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Sentence{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var data models.GenerateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.Sentence{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if data.Error != nil {
		return models.Sentence{}, fmt.Errorf("%w: %s", ErrUnavailable, data.Error.Message)
	}

	text := strings.TrimSpace(data.Text())
	if text == "" {
		return models.Sentence{}, fmt.Errorf("%w: empty candidate text", ErrBadResponse)
	}
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}

	var sentence models.Sentence
	if err := json.Unmarshal([]byte(text), &sentence); err != nil {
		return models.Sentence{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if err := validator.ValidateStruct(sentence); err != nil {
		return models.Sentence{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	return sentence, nil
}

func sentencePrompt(verb, tense string) string {
	var sb strings.Builder

	sb.WriteString("Create a simple, single example sentence in Arabic for a beginner learner.\n")
	sb.WriteString(fmt.Sprintf("Use the verb %q in the %s tense.\n", verb, tense))
	sb.WriteString("Return ONLY a single, valid JSON object with the following keys: \"ar\", \"translit\", and \"en\".\n")
	sb.WriteString("- \"ar\": The Arabic sentence.\n")
	sb.WriteString("- \"translit\": An accurate English transliteration of the sentence.\n")
	sb.WriteString("- \"en\": The English translation.\n")
	sb.WriteString("Do not include any other text, explanations, or markdown fences in your response.")

	return sb.String()
}
