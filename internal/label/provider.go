package label

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"codeberg.org/snonux/imagelabel/internal/breaker"
)

// Config holds configuration for label detection providers
type Config struct {
	Provider  string // "rekognition", "vision", "openai" or "gemini"
	MaxLabels int    // Upper bound on labels requested from the provider (0 = provider default)

	// AWS settings
	AWSRegion  string
	AWSProfile string

	// Google Cloud settings
	GoogleCredentialsJSON []byte // Service account JSON; empty uses Application Default Credentials

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
		Provider:    "rekognition",
		MaxLabels:   0,
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
		Breaker:     breaker.DefaultConfig(),
	}
}

// NewDetector creates the appropriate detector based on configuration
func NewDetector(ctx context.Context, config *Config, log *zap.Logger) (Detector, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var (
		d   Detector
		err error
	)

	switch config.Provider {
	case "rekognition", "":
		d, err = NewRekognitionDetector(ctx, config)
	case "vision":
		d, err = NewVisionDetector(ctx, config)
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		d = NewOpenAIDetector(config)
	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		d, err = NewGeminiDetector(ctx, config)
	default:
		return nil, fmt.Errorf("unknown label provider: %s", config.Provider)
	}
	if err != nil {
		return nil, err
	}

	if config.Breaker != nil && config.Breaker.Enabled {
		d = WithBreaker(d, breaker.New("label-"+d.Name(), config.Breaker, log))
	}

	return d, nil
}

// breakerDetector fails fast while the provider's breaker is open
type breakerDetector struct {
	next Detector
	cb   *gobreaker.CircuitBreaker
}

// WithBreaker wraps a detector with a circuit breaker
func WithBreaker(d Detector, cb *gobreaker.CircuitBreaker) Detector {
	return &breakerDetector{next: d, cb: cb}
}

func (b *breakerDetector) DetectLabels(ctx context.Context, image []byte) ([]Label, error) {
	labels, err := breaker.Do(b.cb, func() ([]Label, error) {
		return b.next.DetectLabels(ctx, image)
	})
	if breaker.IsOpen(err) {
		return nil, &DetectionError{Provider: b.next.Name(), Message: "circuit breaker open", Err: err}
	}
	return labels, err
}

func (b *breakerDetector) Name() string {
	return b.next.Name()
}
