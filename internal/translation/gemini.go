package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiTranslator implements Translator using a Gemini model
type GeminiTranslator struct {
	models contentGenerator
	model  string
}

// NewGeminiTranslator creates a Gemini translator using the Gemini API backend
func NewGeminiTranslator(ctx context.Context, config *Config) (*GeminiTranslator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.GeminiModel
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GeminiTranslator{models: client.Models, model: model}, nil
}

// Translate asks the model for a bare translation
func (g *GeminiTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	temperature := float32(0.3)
	resp, err := g.models.GenerateContent(ctx, g.model,
		genai.Text(translatePrompt(text, sourceLang, targetLang)),
		&genai.GenerateContentConfig{Temperature: &temperature})
	if err != nil {
		return "", &TranslationError{Provider: g.Name(), Message: "failed to generate content with Gemini", Err: err}
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", &TranslationError{Provider: g.Name(), Message: "no response candidates from Gemini"}
	}

	return strings.TrimSpace(resp.Text()), nil
}

// Name returns the provider name
func (g *GeminiTranslator) Name() string {
	return "gemini"
}
