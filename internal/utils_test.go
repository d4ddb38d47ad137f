package internal

import (
	"strings"
	"testing"
)

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID("https://example.com/cat.jpg")

	parts := strings.Split(id, "_")
	if len(parts) != 2 {
		t.Fatalf("Expected format millis_hash, got %s", id)
	}
	if len(parts[1]) != 8 {
		t.Errorf("Expected 8 char hash suffix, got %q", parts[1])
	}

	other := GenerateRequestID("https://example.com/dog.jpg")
	if strings.Split(other, "_")[1] == parts[1] {
		t.Error("Different URLs produced the same hash suffix")
	}
}

func TestTruncateForLog(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"a longer string", 8, "a longer..."},
		{"Pássaro", 3, "Pás..."},
		{"anything", 0, "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := TruncateForLog(tt.in, tt.max); got != tt.want {
				t.Errorf("TruncateForLog(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
