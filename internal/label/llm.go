package label

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// labelPrompt asks a multimodal model for Rekognition-style labels
const labelPrompt = `List the objects, scenes and concepts visible in this image.
Respond with a JSON object of the form {"labels":[{"name":"Cat","confidence":97.5}]}.
Use short English nouns with an initial capital letter for "name" and a confidence
between 0 and 100. Order the labels from most to least prominent.`

type llmLabels struct {
	Labels []struct {
		Name       string  `json:"name"`
		Confidence float64 `json:"confidence"`
	} `json:"labels"`
}

// parseLLMLabels decodes the JSON answer of a multimodal model.
// Markdown code fences around the JSON are tolerated.
func parseLLMLabels(text string) ([]Label, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if text == "" {
		return nil, fmt.Errorf("empty response")
	}

	var parsed llmLabels
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode labels: %w", err)
	}

	labels := make([]Label, 0, len(parsed.Labels))
	for _, l := range parsed.Labels {
		name := strings.TrimSpace(l.Name)
		if name == "" {
			continue
		}
		labels = append(labels, Label{Name: name, Confidence: clampConfidence(l.Confidence)})
	}

	return labels, nil
}

func clampConfidence(c float64) float64 {
	switch {
	case c < 0:
		return 0
	case c > 100:
		return 100
	default:
		return c
	}
}

// imageMIMEType sniffs the content type, defaulting to JPEG for unknown data
func imageMIMEType(image []byte) string {
	mime := http.DetectContentType(image)
	if !strings.HasPrefix(mime, "image/") {
		return "image/jpeg"
	}
	return mime
}
