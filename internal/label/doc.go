// Package label detects visual concepts in image bytes. Rekognition, Cloud
// Vision, OpenAI and Gemini backends share the Detector interface, and only
// labels above the confidence threshold are reported.
package label
