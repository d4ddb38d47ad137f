package label

import (
	"context"
	"errors"
	"fmt"
)

// Detector defines the interface for label detection providers
type Detector interface {
	// DetectLabels returns the labels found in the image in the provider's order
	DetectLabels(ctx context.Context, image []byte) ([]Label, error)

	// Name returns the name of the detection provider
	Name() string
}

// DetectionError represents an error from a label detection provider
type DetectionError struct {
	Provider string
	Message  string
	Err      error
}

func (e *DetectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Err)
	}
	return e.Provider + ": " + e.Message
}

func (e *DetectionError) Unwrap() error {
	return e.Err
}

// DetectConfident runs the detector and keeps only the confident labels
func DetectConfident(ctx context.Context, d Detector, image []byte) ([]Label, error) {
	labels, err := d.DetectLabels(ctx, image)
	if err != nil {
		var detErr *DetectionError
		if errors.As(err, &detErr) {
			return nil, err
		}
		return nil, &DetectionError{Provider: d.Name(), Message: "label detection failed", Err: err}
	}

	return FilterConfident(labels), nil
}
