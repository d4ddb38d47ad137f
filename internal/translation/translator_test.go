package translation

import (
	"context"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
)

type stubTranslator struct {
	responses map[string]string
	err       error
	calls     []string
}

func (s *stubTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	s.calls = append(s.calls, text)
	if s.err != nil {
		return "", s.err
	}
	return s.responses[text], nil
}

func (s *stubTranslator) Name() string { return "stub" }

func TestTranslateNames(t *testing.T) {
	tests := []struct {
		name      string
		names     []string
		responses map[string]string
		want      []string
		wantCall  string
	}{
		{
			name:      "two labels",
			names:     []string{"Cat", "Dog"},
			responses: map[string]string{"Cat and Dog": "Gato e Cachorro"},
			want:      []string{"Gato", "Cachorro"},
			wantCall:  "Cat and Dog",
		},
		{
			name:      "single label has no connective",
			names:     []string{"Cat"},
			responses: map[string]string{"Cat": "Gato"},
			want:      []string{"Gato"},
			wantCall:  "Cat",
		},
		{
			name:      "merged translation is positional",
			names:     []string{"Pet", "Animal", "Cat"},
			responses: map[string]string{"Pet and Animal and Cat": "Animal de estimação e gato"},
			want:      []string{"Animal de estimação", "gato"},
			wantCall:  "Pet and Animal and Cat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubTranslator{responses: tt.responses}

			got, err := TranslateNames(context.Background(), stub, tt.names)
			if err != nil {
				t.Fatalf("TranslateNames() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TranslateNames() = %q, want %q", got, tt.want)
			}
			if len(stub.calls) != 1 || stub.calls[0] != tt.wantCall {
				t.Errorf("calls = %q, want one call with %q", stub.calls, tt.wantCall)
			}
		})
	}
}

func TestTranslateNames_Empty(t *testing.T) {
	stub := &stubTranslator{}

	got, err := TranslateNames(context.Background(), stub, nil)
	if err != nil {
		t.Fatalf("TranslateNames() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no names, got %q", got)
	}
	if len(stub.calls) != 0 {
		t.Errorf("translator should not be called, got %d calls", len(stub.calls))
	}
}

func TestTranslateNames_Errors(t *testing.T) {
	cause := errors.New("throttled")

	t.Run("backend error is wrapped", func(t *testing.T) {
		_, err := TranslateNames(context.Background(), &stubTranslator{err: cause}, []string{"Cat"})

		var te *TranslationError
		if !errors.As(err, &te) || te.Provider != "stub" || !errors.Is(err, cause) {
			t.Errorf("expected wrapped TranslationError, got %v", err)
		}
	})

	t.Run("typed error passes through", func(t *testing.T) {
		orig := &TranslationError{Provider: "aws", Message: "TranslateText failed", Err: cause}
		_, err := TranslateNames(context.Background(), &stubTranslator{err: orig}, []string{"Cat"})
		if err != orig {
			t.Errorf("expected original error, got %v", err)
		}
	})

	t.Run("blank translation", func(t *testing.T) {
		stub := &stubTranslator{responses: map[string]string{"Cat": "  "}}
		_, err := TranslateNames(context.Background(), stub, []string{"Cat"})
		if err == nil || !strings.Contains(err.Error(), "empty translation") {
			t.Errorf("expected empty translation error, got %v", err)
		}
	})
}

func TestTranslateEach(t *testing.T) {
	stub := &stubTranslator{responses: map[string]string{
		"Pet":    "Animal de estimação",
		"Animal": " Animal ",
		"Cat":    "Gato",
	}}

	got, err := TranslateEach(context.Background(), stub, []string{"Pet", "Animal", "Cat"})
	if err != nil {
		t.Fatalf("TranslateEach() error = %v", err)
	}

	want := []string{"Animal de estimação", "Animal", "Gato"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TranslateEach() = %q, want %q", got, want)
	}
	if len(stub.calls) != 3 {
		t.Errorf("expected one call per name, got %d", len(stub.calls))
	}
}

func TestTranslateEach_StopsOnError(t *testing.T) {
	stub := &stubTranslator{err: errors.New("boom")}

	_, err := TranslateEach(context.Background(), stub, []string{"Cat", "Dog"})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(stub.calls) != 1 {
		t.Errorf("expected to stop after first failure, got %d calls", len(stub.calls))
	}
}

func TestSplitTranslated(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Gato e Cachorro", []string{"Gato", "Cachorro"}},
		{"Gato", []string{"Gato"}},
		{"Elefante e Esquilo", []string{"Elefante", "Esquilo"}},
		{"Gato e  Cachorro e Pássaro ", []string{"Gato", "Cachorro", "Pássaro"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SplitTranslated(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitTranslated(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTranslationError(t *testing.T) {
	err := &TranslationError{Provider: "aws", Message: "TranslateText failed", Err: errors.New("denied")}
	if err.Error() != "translation (aws): TranslateText failed: denied" {
		t.Errorf("unexpected message: %s", err.Error())
	}

	err = &TranslationError{Provider: "aws", Message: "empty translation"}
	if err.Error() != "translation (aws): empty translation" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestTranslateNames_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	translator := NewOpenAITranslator(&Config{OpenAIKey: apiKey})

	got, err := TranslateNames(context.Background(), translator, []string{"Cat", "Dog"})
	if err != nil {
		t.Fatalf("TranslateNames failed: %v", err)
	}

	t.Logf("Translation of 'Cat and Dog': %q", got)
}
