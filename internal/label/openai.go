package label

import (
	"context"
	"encoding/base64"

	"github.com/sashabaranov/go-openai"
)

// chatCompleter is the subset of the OpenAI client used here
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIDetector implements Detector using an OpenAI vision-capable chat model
type OpenAIDetector struct {
	client chatCompleter
	model  string
}

// NewOpenAIDetector creates a new OpenAI label detector
func NewOpenAIDetector(config *Config) *OpenAIDetector {
	model := config.OpenAIModel
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIDetector{
		client: openai.NewClient(config.OpenAIKey),
		model:  model,
	}
}

// DetectLabels sends the image inline as a data URL
func (o *OpenAIDetector) DetectLabels(ctx context.Context, image []byte) ([]Label, error) {
	dataURL := "data:" + imageMIMEType(image) + ";base64," + base64.StdEncoding.EncodeToString(image)

	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an image labeling service. You only answer with JSON.",
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: labelPrompt},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailLow,
						},
					},
				},
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		MaxTokens:   500,
		Temperature: 0.2,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, &DetectionError{Provider: o.Name(), Message: "OpenAI API error", Err: err}
	}

	if len(resp.Choices) == 0 {
		return nil, &DetectionError{Provider: o.Name(), Message: "no labels returned"}
	}

	labels, err := parseLLMLabels(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, &DetectionError{Provider: o.Name(), Message: "invalid labels response", Err: err}
	}

	return labels, nil
}

// Name returns the provider name
func (o *OpenAIDetector) Name() string {
	return "openai"
}
