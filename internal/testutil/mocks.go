package testutil

import (
	"context"
	"fmt"

	"codeberg.org/snonux/imagelabel/internal/label"
)

// MockFetcher mocks the image fetcher
type MockFetcher struct {
	Images map[string][]byte
	Errors map[string]error
	Calls  []string
}

// Fetch returns the configured image or error for url
func (m *MockFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	m.Calls = append(m.Calls, url)

	if err, ok := m.Errors[url]; ok {
		return nil, err
	}

	if data, ok := m.Images[url]; ok {
		return data, nil
	}

	return nil, fmt.Errorf("no image for %s", url)
}

// MockDetector mocks a label detection backend
type MockDetector struct {
	Labels []label.Label
	Err    error
	Calls  int
}

// DetectLabels returns the configured labels
func (m *MockDetector) DetectLabels(ctx context.Context, image []byte) ([]label.Label, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Labels, nil
}

// Name returns the provider name
func (m *MockDetector) Name() string {
	return "mock"
}

// MockTranslator mocks translation service
type MockTranslator struct {
	Translations map[string]string
	Errors       map[string]error
	Calls        []string
}

// Translate mocks translating text
func (m *MockTranslator) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	call := fmt.Sprintf("Translate: %s (%s->%s)", text, fromLang, toLang)
	m.Calls = append(m.Calls, call)

	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	// Default mock translation
	return fmt.Sprintf("mock translation of %s", text), nil
}

// Name returns the provider name
func (m *MockTranslator) Name() string {
	return "mock"
}
