package label

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"codeberg.org/snonux/imagelabel/internal"
)

// rekognitionAPI is the subset of the Rekognition client used here
type rekognitionAPI interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

// RekognitionDetector implements Detector using AWS Rekognition
type RekognitionDetector struct {
	client    rekognitionAPI
	maxLabels int
}

// NewRekognitionDetector creates a detector from the default AWS credential chain
func NewRekognitionDetector(ctx context.Context, config *Config) (*RekognitionDetector, error) {
	cfg, err := internal.LoadAWSConfig(ctx, config.AWSRegion, config.AWSProfile)
	if err != nil {
		return nil, err
	}

	return &RekognitionDetector{
		client:    rekognition.NewFromConfig(cfg),
		maxLabels: config.MaxLabels,
	}, nil
}

// DetectLabels sends the image bytes to Rekognition
func (r *RekognitionDetector) DetectLabels(ctx context.Context, image []byte) ([]Label, error) {
	input := &rekognition.DetectLabelsInput{
		Image: &types.Image{Bytes: image},
	}
	if r.maxLabels > 0 {
		input.MaxLabels = aws.Int32(int32(r.maxLabels))
	}

	out, err := r.client.DetectLabels(ctx, input)
	if err != nil {
		return nil, &DetectionError{Provider: r.Name(), Message: "DetectLabels failed", Err: err}
	}

	// A missing Labels field is an empty result
	labels := make([]Label, 0, len(out.Labels))
	for _, l := range out.Labels {
		labels = append(labels, Label{
			Name:       aws.ToString(l.Name),
			Confidence: float64(aws.ToFloat32(l.Confidence)),
		})
	}

	return labels, nil
}

// Name returns the provider name
func (r *RekognitionDetector) Name() string {
	return "rekognition"
}
