package analyzer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"codeberg.org/snonux/imagelabel/internal/breaker"
	"codeberg.org/snonux/imagelabel/internal/cli"
	"codeberg.org/snonux/imagelabel/internal/fetch"
	"codeberg.org/snonux/imagelabel/internal/label"
	"codeberg.org/snonux/imagelabel/internal/translation"
)

// NewFromFlags wires the configured backends into an Analyzer
func NewFromFlags(ctx context.Context, flags *cli.Flags, log *zap.Logger) (*Analyzer, error) {
	googleCreds, err := cli.GetGoogleCredentials()
	if err != nil {
		return nil, err
	}

	breakerCfg := &breaker.Config{
		Enabled:             flags.Breaker,
		ConsecutiveFailures: flags.BreakerFailures,
		OpenTimeout:         flags.BreakerTimeout,
	}

	detector, err := label.NewDetector(ctx, &label.Config{
		Provider:              flags.LabelProvider,
		MaxLabels:             flags.MaxLabels,
		AWSRegion:             flags.AWSRegion,
		AWSProfile:            flags.AWSProfile,
		GoogleCredentialsJSON: googleCreds,
		OpenAIKey:             cli.GetOpenAIKey(),
		OpenAIModel:           flags.OpenAIModel,
		GeminiKey:             cli.GetGeminiKey(),
		GeminiModel:           flags.GeminiModel,
		Breaker:               breakerCfg,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create label detector: %w", err)
	}

	translator, err := translation.NewTranslator(ctx, &translation.Config{
		Provider:              flags.TranslationProvider,
		AWSRegion:             flags.AWSRegion,
		AWSProfile:            flags.AWSProfile,
		GoogleCredentialsJSON: googleCreds,
		OpenAIKey:             cli.GetOpenAIKey(),
		OpenAIModel:           flags.OpenAIModel,
		GeminiKey:             cli.GetGeminiKey(),
		GeminiModel:           flags.GeminiModel,
		Breaker:               breakerCfg,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create translator: %w", err)
	}

	fetcher := fetch.NewFetcher(&fetch.Options{
		Timeout:      flags.FetchTimeout,
		MaxSizeBytes: flags.MaxImageBytes,
		UserAgent:    fetch.DefaultOptions().UserAgent,
	})

	log.Info("Analyzer ready",
		zap.String("label_provider", detector.Name()),
		zap.String("translation_provider", translator.Name()),
		zap.Bool("strict", flags.StrictAlignment),
		zap.Bool("per_label", flags.PerLabel),
		zap.Bool("breaker", flags.Breaker))

	return New(fetcher, detector, translator, &Options{
		StrictAlignment:     flags.StrictAlignment,
		PerLabelTranslation: flags.PerLabel,
	}, log), nil
}
