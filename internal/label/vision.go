package label

import (
	"context"
	"fmt"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
)

// visionAPI is the subset of the Cloud Vision client used here
type visionAPI interface {
	BatchAnnotateImages(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest, opts ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error)
}

// VisionDetector implements Detector using Google Cloud Vision label detection
type VisionDetector struct {
	client    visionAPI
	maxLabels int
}

// NewVisionDetector creates a Cloud Vision detector
func NewVisionDetector(ctx context.Context, config *Config) (*VisionDetector, error) {
	var opts []option.ClientOption
	if len(config.GoogleCredentialsJSON) > 0 {
		opts = append(opts, option.WithCredentialsJSON(config.GoogleCredentialsJSON))
	}

	client, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Vision client: %w", err)
	}

	return &VisionDetector{
		client:    client,
		maxLabels: config.MaxLabels,
	}, nil
}

// DetectLabels runs LABEL_DETECTION on the image. Scores are scaled to percent.
func (v *VisionDetector) DetectLabels(ctx context.Context, image []byte) ([]Label, error) {
	feature := &visionpb.Feature{Type: visionpb.Feature_LABEL_DETECTION}
	if v.maxLabels > 0 {
		feature.MaxResults = int32(v.maxLabels)
	}

	resp, err := v.client.BatchAnnotateImages(ctx, &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image:    &visionpb.Image{Content: image},
				Features: []*visionpb.Feature{feature},
			},
		},
	})
	if err != nil {
		return nil, &DetectionError{Provider: v.Name(), Message: "BatchAnnotateImages failed", Err: err}
	}

	if len(resp.GetResponses()) == 0 {
		return []Label{}, nil
	}

	annotated := resp.GetResponses()[0]
	if st := annotated.GetError(); st != nil && st.GetCode() != 0 {
		return nil, &DetectionError{Provider: v.Name(), Message: st.GetMessage()}
	}

	labels := make([]Label, 0, len(annotated.GetLabelAnnotations()))
	for _, a := range annotated.GetLabelAnnotations() {
		labels = append(labels, Label{
			Name:       a.GetDescription(),
			Confidence: float64(a.GetScore()) * 100,
		})
	}

	return labels, nil
}

// Name returns the provider name
func (v *VisionDetector) Name() string {
	return "vision"
}
