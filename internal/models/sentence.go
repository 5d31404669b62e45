package models

// Sentence is one AI-generated example sentence. All three fields are required;
// a response missing any of them is rejected as malformed.
type Sentence struct {
	Ar       string `json:"ar" validate:"required"`
	Translit string `json:"translit" validate:"required"`
	En       string `json:"en" validate:"required"`
}

// GenerateContentRequest is the wire shape of the hosted text-generation call.
type GenerateContentRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type GenerationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
}

type GenerateContentResponse struct {
	Candidates []struct {
		Content Content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// Text returns the first candidate's text, if any.
func (r GenerateContentResponse) Text() string {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return r.Candidates[0].Content.Parts[0].Text
}
