package label

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// contentGenerator is the subset of genai.Models used here
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiDetector implements Detector using a Gemini multimodal model
type GeminiDetector struct {
	models contentGenerator
	model  string
}

// NewGeminiDetector creates a Gemini detector using the Gemini API backend
func NewGeminiDetector(ctx context.Context, config *Config) (*GeminiDetector, error) {
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

	return &GeminiDetector{
		models: client.Models,
		model:  model,
	}, nil
}

// DetectLabels sends the image bytes inline with the labeling prompt
func (g *GeminiDetector) DetectLabels(ctx context.Context, image []byte) ([]Label, error) {
	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText(labelPrompt),
		genai.NewPartFromBytes(image, imageMIMEType(image)),
	}, genai.RoleUser)

	temperature := float32(0.2)
	resp, err := g.models.GenerateContent(ctx, g.model, []*genai.Content{content}, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      &temperature,
	})
	if err != nil {
		return nil, &DetectionError{Provider: g.Name(), Message: "failed to generate content with Gemini", Err: err}
	}

	text := geminiText(resp)
	if text == "" {
		return nil, &DetectionError{Provider: g.Name(), Message: "no response candidates from Gemini"}
	}

	labels, err := parseLLMLabels(text)
	if err != nil {
		return nil, &DetectionError{Provider: g.Name(), Message: "invalid labels response", Err: err}
	}

	return labels, nil
}

// Name returns the provider name
func (g *GeminiDetector) Name() string {
	return "gemini"
}

// geminiText concatenates the text parts of the first candidate
func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var result strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			result.WriteString(part.Text)
		}
	}
	return result.String()
}
