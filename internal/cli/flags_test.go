package cli

import (
	"reflect"
	"testing"
	"time"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"LogLevel", flags.LogLevel, "info"},
		{"LogFormat", flags.LogFormat, "json"},
		{"LabelProvider", flags.LabelProvider, "rekognition"},
		{"TranslationProvider", flags.TranslationProvider, "aws"},
		{"FetchTimeout", flags.FetchTimeout, 30 * time.Second},
		{"RequestTimeout", flags.RequestTimeout, 60 * time.Second},
		{"MaxImageBytes", flags.MaxImageBytes, int64(10 << 20)},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o-mini"},
		{"GeminiModel", flags.GeminiModel, "gemini-2.0-flash"},
		{"BreakerFailures", flags.BreakerFailures, uint32(5)},
		{"BreakerTimeout", flags.BreakerTimeout, 30 * time.Second},
		{"Addr", flags.Addr, ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"StrictAlignment", flags.StrictAlignment},
		{"PerLabel", flags.PerLabel},
		{"Breaker", flags.Breaker},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"AWSRegion", flags.AWSRegion},
		{"AWSProfile", flags.AWSProfile},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}
