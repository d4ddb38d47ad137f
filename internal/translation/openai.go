package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAITranslator implements Translator using an OpenAI chat model
type OpenAITranslator struct {
	client chatCompleter
	model  string
}

// NewOpenAITranslator creates a new OpenAI translator
func NewOpenAITranslator(config *Config) *OpenAITranslator {
	model := config.OpenAIModel
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAITranslator{
		client: openai.NewClient(config.OpenAIKey),
		model:  model,
	}
}

// Translate asks the model for a bare translation
func (o *OpenAITranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: translatePrompt(text, sourceLang, targetLang),
			},
		},
		MaxTokens:   200,
		Temperature: 0.3,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", &TranslationError{Provider: o.Name(), Message: "OpenAI API error", Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &TranslationError{Provider: o.Name(), Message: "no translation returned"}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Name returns the provider name
func (o *OpenAITranslator) Name() string {
	return "openai"
}

// translatePrompt is shared by the LLM backends
func translatePrompt(text, sourceLang, targetLang string) string {
	return fmt.Sprintf("Translate the %s text '%s' to %s. Keep the word 'and' between items as its %s equivalent. Respond with only the translation, nothing else.",
		languageName(sourceLang), text, languageName(targetLang), languageName(targetLang))
}

// languageName renders an ISO code as an English language name, e.g. "pt" -> "Portuguese"
func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
