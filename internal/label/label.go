package label

// ConfidenceThreshold is the minimum confidence (exclusive) a label needs to be reported
const ConfidenceThreshold = 80.0

// Label is a named visual concept detected in an image
type Label struct {
	Name       string  // Label name as returned by the detection service (English)
	Confidence float64 // Confidence in percent, 0 to 100
}

// FilterConfident keeps labels whose confidence is strictly above ConfidenceThreshold.
// The input order is preserved.
func FilterConfident(labels []Label) []Label {
	confident := make([]Label, 0, len(labels))
	for _, l := range labels {
		if l.Confidence > ConfidenceThreshold {
			confident = append(confident, l)
		}
	}
	return confident
}

// Names returns the label names in order
func Names(labels []Label) []string {
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.Name
	}
	return names
}
