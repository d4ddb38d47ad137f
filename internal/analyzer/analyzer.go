package analyzer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"codeberg.org/snonux/imagelabel/internal"
	"codeberg.org/snonux/imagelabel/internal/format"
	"codeberg.org/snonux/imagelabel/internal/label"
	"codeberg.org/snonux/imagelabel/internal/translation"
)

// Stage names a step of the pipeline
type Stage string

const (
	StageFetching    Stage = "fetching"
	StageDetecting   Stage = "detecting"
	StageTranslating Stage = "translating"
	StageFormatting  Stage = "formatting"
	StageDone        Stage = "done"
	StageFailed      Stage = "failed"
)

// StageError records the stage an analysis failed in
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Fetcher retrieves image bytes
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Options changes how translated names are paired with labels
type Options struct {
	StrictAlignment     bool // Fail on a count mismatch instead of truncating
	PerLabelTranslation bool // One translation call per label
}

// Result is a successful analysis
type Result struct {
	RequestID string
	Labels    []label.Label
	Names     []string
	Summary   string
	Body      string
}

// Analyzer runs the pipeline
type Analyzer struct {
	fetcher    Fetcher
	detector   label.Detector
	translator translation.Translator
	opts       Options
	log        *zap.Logger
}

// New creates an analyzer from its collaborators
func New(fetcher Fetcher, detector label.Detector, translator translation.Translator, opts *Options, log *zap.Logger) *Analyzer {
	if opts == nil {
		opts = &Options{}
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Analyzer{
		fetcher:    fetcher,
		detector:   detector,
		translator: translator,
		opts:       *opts,
		log:        log,
	}
}

// Analyze fetches the image at imageURL and returns its Portuguese label summary
func (a *Analyzer) Analyze(ctx context.Context, imageURL string) (*Result, error) {
	result := &Result{RequestID: internal.GenerateRequestID(imageURL)}
	log := a.log.With(zap.String("request_id", result.RequestID))

	log.Info("Fetching image", zap.String("stage", string(StageFetching)), zap.String("url", internal.TruncateForLog(imageURL, 120)))
	image, err := a.fetcher.Fetch(ctx, imageURL)
	if err != nil {
		return nil, a.fail(log, StageFetching, err)
	}

	log.Info("Detecting labels", zap.String("stage", string(StageDetecting)),
		zap.String("provider", a.detector.Name()), zap.Int("bytes", len(image)))
	labels, err := label.DetectConfident(ctx, a.detector, image)
	if err != nil {
		return nil, a.fail(log, StageDetecting, err)
	}
	result.Labels = labels

	if len(labels) == 0 {
		log.Info("No labels above threshold, skipping translation", zap.Float64("threshold", label.ConfidenceThreshold))
		result.Names = []string{}
		result.Body = format.Body("")
		log.Info("Analysis complete", zap.String("stage", string(StageDone)), zap.Int("labels", 0))
		return result, nil
	}

	log.Info("Translating labels", zap.String("stage", string(StageTranslating)),
		zap.String("provider", a.translator.Name()), zap.Strings("names", label.Names(labels)))
	names, err := a.translate(ctx, labels)
	if err != nil {
		return nil, a.fail(log, StageTranslating, err)
	}
	result.Names = names

	log.Info("Formatting result", zap.String("stage", string(StageFormatting)), zap.Strings("translated", names))
	summary, err := a.format(names, labels)
	if err != nil {
		return nil, a.fail(log, StageFormatting, err)
	}
	if len(names) != len(labels) {
		log.Warn("Translated names do not match labels, extra items dropped",
			zap.Int("names", len(names)), zap.Int("labels", len(labels)))
	}
	result.Summary = summary
	result.Body = format.Body(summary)

	log.Info("Analysis complete", zap.String("stage", string(StageDone)), zap.Int("labels", len(labels)))
	return result, nil
}

func (a *Analyzer) translate(ctx context.Context, labels []label.Label) ([]string, error) {
	names := label.Names(labels)
	if a.opts.PerLabelTranslation {
		return translation.TranslateEach(ctx, a.translator, names)
	}
	return translation.TranslateNames(ctx, a.translator, names)
}

func (a *Analyzer) format(names []string, labels []label.Label) (string, error) {
	if a.opts.StrictAlignment {
		return format.Strict(names, labels)
	}
	return format.Lines(names, labels), nil
}

func (a *Analyzer) fail(log *zap.Logger, stage Stage, err error) error {
	log.Warn("Analysis failed", zap.String("stage", string(StageFailed)),
		zap.String("failed_stage", string(stage)), zap.Error(err))
	return &StageError{Stage: stage, Err: err}
}
