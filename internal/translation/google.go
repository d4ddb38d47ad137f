package translation

import (
	"context"
	"fmt"

	gtranslate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

type googleTranslateAPI interface {
	Translate(ctx context.Context, inputs []string, target language.Tag, opts *gtranslate.Options) ([]gtranslate.Translation, error)
}

// GoogleTranslator implements Translator using Google Cloud Translation
type GoogleTranslator struct {
	client googleTranslateAPI
}

// NewGoogleTranslator creates a Cloud Translation client
func NewGoogleTranslator(ctx context.Context, config *Config) (*GoogleTranslator, error) {
	var opts []option.ClientOption
	if len(config.GoogleCredentialsJSON) > 0 {
		opts = append(opts, option.WithCredentialsJSON(config.GoogleCredentialsJSON))
	}

	client, err := gtranslate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Translation client: %w", err)
	}

	return &GoogleTranslator{client: client}, nil
}

// Translate sends the text as plain text so no HTML entities come back
func (g *GoogleTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	source, err := language.Parse(sourceLang)
	if err != nil {
		return "", &TranslationError{Provider: g.Name(), Message: "invalid source language", Err: err}
	}
	target, err := language.Parse(targetLang)
	if err != nil {
		return "", &TranslationError{Provider: g.Name(), Message: "invalid target language", Err: err}
	}

	resp, err := g.client.Translate(ctx, []string{text}, target, &gtranslate.Options{
		Source: source,
		Format: gtranslate.Text,
	})
	if err != nil {
		return "", &TranslationError{Provider: g.Name(), Message: "Translate failed", Err: err}
	}

	if len(resp) == 0 {
		return "", nil
	}
	return resp[0].Text, nil
}

// Name returns the provider name
func (g *GoogleTranslator) Name() string {
	return "google"
}
