package translation

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"codeberg.org/snonux/imagelabel/internal/breaker"
)

// Config holds configuration for translation providers
type Config struct {
	Provider string // "aws", "google", "openai" or "gemini"

	// AWS settings
	AWSRegion  string
	AWSProfile string

	// Google Cloud settings
	GoogleCredentialsJSON []byte

	// OpenAI settings
	OpenAIKey   string
	OpenAIModel string

	// Gemini settings
	GeminiKey   string
	GeminiModel string

	Breaker *breaker.Config
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    "aws",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
		Breaker:     breaker.DefaultConfig(),
	}
}

// NewTranslator creates the appropriate translator based on configuration
func NewTranslator(ctx context.Context, config *Config, log *zap.Logger) (Translator, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var (
		t   Translator
		err error
	)

	switch config.Provider {
	case "aws", "":
		t, err = NewAWSTranslator(ctx, config)
	case "google":
		t, err = NewGoogleTranslator(ctx, config)
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		t = NewOpenAITranslator(config)
	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		t, err = NewGeminiTranslator(ctx, config)
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}
	if err != nil {
		return nil, err
	}

	if config.Breaker != nil && config.Breaker.Enabled {
		t = WithBreaker(t, breaker.New("translate-"+t.Name(), config.Breaker, log))
	}

	return t, nil
}

type breakerTranslator struct {
	next Translator
	cb   *gobreaker.CircuitBreaker
}

// WithBreaker wraps a translator with a circuit breaker
func WithBreaker(t Translator, cb *gobreaker.CircuitBreaker) Translator {
	return &breakerTranslator{next: t, cb: cb}
}

func (b *breakerTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	out, err := breaker.Do(b.cb, func() (string, error) {
		return b.next.Translate(ctx, text, sourceLang, targetLang)
	})
	if breaker.IsOpen(err) {
		return "", &TranslationError{Provider: b.next.Name(), Message: "circuit breaker open", Err: err}
	}
	return out, err
}

func (b *breakerTranslator) Name() string {
	return b.next.Name()
}
