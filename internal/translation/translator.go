package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	SourceLanguage = "en"
	TargetLanguage = "pt"

	// SourceConnective joins names before translation
	SourceConnective = " and "
	// TargetConnective is what SourceConnective becomes in Portuguese
	TargetConnective = " e "
)

// Translator translates free text between two ISO 639-1 languages
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
	Name() string
}

// TranslationError reports a failed or empty translation
type TranslationError struct {
	Provider string
	Message  string
	Err      error
}

func (e *TranslationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("translation (%s): %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("translation (%s): %s", e.Provider, e.Message)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}

// TranslateNames translates all names with one backend call.
// The result is positional; its length is not guaranteed to match names.
func TranslateNames(ctx context.Context, t Translator, names []string) ([]string, error) {
	if len(names) == 0 {
		return []string{}, nil
	}

	joined := strings.Join(names, SourceConnective)

	translated, err := translate(ctx, t, joined)
	if err != nil {
		return nil, err
	}

	return SplitTranslated(translated), nil
}

// TranslateEach translates every name with its own backend call,
// so the result always pairs one to one with names.
func TranslateEach(ctx context.Context, t Translator, names []string) ([]string, error) {
	result := make([]string, 0, len(names))
	for _, name := range names {
		translated, err := translate(ctx, t, name)
		if err != nil {
			return nil, err
		}
		result = append(result, strings.TrimSpace(translated))
	}
	return result, nil
}

// SplitTranslated splits a translated sentence on TargetConnective and trims each item
func SplitTranslated(text string) []string {
	parts := strings.Split(text, TargetConnective)

	result := make([]string, 0, len(parts))
	for _, p := range parts {
		result = append(result, strings.TrimSpace(p))
	}
	return result
}

func translate(ctx context.Context, t Translator, text string) (string, error) {
	translated, err := t.Translate(ctx, text, SourceLanguage, TargetLanguage)
	if err != nil {
		var te *TranslationError
		if errors.As(err, &te) {
			return "", err
		}
		return "", &TranslationError{Provider: t.Name(), Message: "translate failed", Err: err}
	}

	if strings.TrimSpace(translated) == "" {
		return "", &TranslationError{Provider: t.Name(), Message: "empty translation"}
	}

	return translated, nil
}
