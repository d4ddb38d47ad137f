package analyzer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"codeberg.org/snonux/imagelabel/internal/cli"
	"codeberg.org/snonux/imagelabel/internal/fetch"
	"codeberg.org/snonux/imagelabel/internal/format"
	"codeberg.org/snonux/imagelabel/internal/label"
	"codeberg.org/snonux/imagelabel/internal/testutil"
	"codeberg.org/snonux/imagelabel/internal/translation"
)

const imageURL = "https://example.com/cat.jpg"

func newFetcher() *testutil.MockFetcher {
	return &testutil.MockFetcher{Images: map[string][]byte{imageURL: testutil.JPEGData}}
}

func TestAnalyze_RoundTrip(t *testing.T) {
	detector := &testutil.MockDetector{Labels: []label.Label{
		{Name: "Cat", Confidence: 95.5},
		{Name: "Blanket", Confidence: 42},
		{Name: "Dog", Confidence: 81.2},
	}}
	translator := &testutil.MockTranslator{Translations: map[string]string{"Cat and Dog": "Gato e Cachorro"}}
	log, logs := testutil.NewObservedLogger()

	a := New(newFetcher(), detector, translator, nil, log)

	result, err := a.Analyze(context.Background(), imageURL)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	want := "A imagem tem\n95.50% de ser do tipo Gato\n81.20% de ser do tipo Cachorro"
	if result.Body != want {
		t.Errorf("Body = %q, want %q", result.Body, want)
	}
	if len(translator.Calls) != 1 || translator.Calls[0] != "Translate: Cat and Dog (en->pt)" {
		t.Errorf("unexpected translator calls %q", translator.Calls)
	}
	if result.RequestID == "" {
		t.Error("RequestID not set")
	}

	for _, msg := range []string{"Fetching image", "Detecting labels", "Translating labels", "Formatting result", "Analysis complete"} {
		testutil.AssertLogged(t, logs, msg)
	}
	for _, e := range logs.All() {
		if e.ContextMap()["request_id"] != result.RequestID {
			t.Errorf("log %q missing request id", e.Message)
		}
	}
}

func TestAnalyze_SingleLabel(t *testing.T) {
	detector := &testutil.MockDetector{Labels: []label.Label{{Name: "Cat", Confidence: 99.9}}}
	translator := &testutil.MockTranslator{Translations: map[string]string{"Cat": "Gato"}}

	result, err := New(newFetcher(), detector, translator, nil, nil).Analyze(context.Background(), imageURL)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.Summary != "99.90% de ser do tipo Gato" {
		t.Errorf("Summary = %q", result.Summary)
	}
}

func TestAnalyze_FetchFailureSkipsBackends(t *testing.T) {
	notFound := &fetch.FetchError{URL: imageURL, StatusCode: 404}
	fetcher := &testutil.MockFetcher{Errors: map[string]error{imageURL: notFound}}
	detector := &testutil.MockDetector{}
	translator := &testutil.MockTranslator{}

	_, err := New(fetcher, detector, translator, nil, nil).Analyze(context.Background(), imageURL)

	var se *StageError
	if !errors.As(err, &se) || se.Stage != StageFetching {
		t.Fatalf("expected fetching StageError, got %v", err)
	}
	var fe *fetch.FetchError
	if !errors.As(err, &fe) || fe.StatusCode != 404 {
		t.Errorf("expected wrapped FetchError, got %v", err)
	}
	if detector.Calls != 0 || len(translator.Calls) != 0 {
		t.Errorf("backends called after fetch failure: detect=%d translate=%d", detector.Calls, len(translator.Calls))
	}
}

func TestAnalyze_EmptyLabelSet(t *testing.T) {
	detector := &testutil.MockDetector{Labels: []label.Label{{Name: "Blur", Confidence: 30}}}
	translator := &testutil.MockTranslator{}

	result, err := New(newFetcher(), detector, translator, nil, nil).Analyze(context.Background(), imageURL)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.Body != format.Header {
		t.Errorf("Body = %q, want header only", result.Body)
	}
	if len(translator.Calls) != 0 {
		t.Errorf("translator called for empty label set: %q", translator.Calls)
	}
}

func TestAnalyze_StageErrors(t *testing.T) {
	tests := []struct {
		name       string
		detector   *testutil.MockDetector
		translator *testutil.MockTranslator
		opts       *Options
		wantStage  Stage
		inChain    func(error) bool
	}{
		{
			name:       "detection",
			detector:   &testutil.MockDetector{Err: errors.New("access denied")},
			translator: &testutil.MockTranslator{},
			wantStage:  StageDetecting,
			inChain: func(err error) bool {
				var de *label.DetectionError
				return errors.As(err, &de)
			},
		},
		{
			name:       "translation",
			detector:   &testutil.MockDetector{Labels: []label.Label{{Name: "Cat", Confidence: 90}}},
			translator: &testutil.MockTranslator{Errors: map[string]error{"Cat": errors.New("throttled")}},
			wantStage:  StageTranslating,
			inChain: func(err error) bool {
				var te *translation.TranslationError
				return errors.As(err, &te)
			},
		},
		{
			name: "strict alignment",
			detector: &testutil.MockDetector{Labels: []label.Label{
				{Name: "Pet", Confidence: 85}, {Name: "Cat", Confidence: 95},
			}},
			translator: &testutil.MockTranslator{Translations: map[string]string{"Pet and Cat": "Gato de estimação"}},
			opts:       &Options{StrictAlignment: true},
			wantStage:  StageFormatting,
			inChain: func(err error) bool {
				var ae *format.AlignmentError
				return errors.As(err, &ae)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(newFetcher(), tt.detector, tt.translator, tt.opts, zap.NewNop()).Analyze(context.Background(), imageURL)

			var se *StageError
			if !errors.As(err, &se) {
				t.Fatalf("expected StageError, got %v", err)
			}
			if se.Stage != tt.wantStage {
				t.Errorf("Stage = %s, want %s", se.Stage, tt.wantStage)
			}
			if !tt.inChain(err) {
				t.Errorf("expected typed stage error in chain, got %v", err)
			}
			if !strings.HasPrefix(err.Error(), string(tt.wantStage)+" stage failed") {
				t.Errorf("unexpected message %q", err.Error())
			}
		})
	}
}

func TestAnalyze_LenientTruncates(t *testing.T) {
	detector := &testutil.MockDetector{Labels: []label.Label{
		{Name: "Pet", Confidence: 85}, {Name: "Cat", Confidence: 95},
	}}
	translator := &testutil.MockTranslator{Translations: map[string]string{"Pet and Cat": "Gato de estimação"}}
	log, logs := testutil.NewObservedLogger()

	result, err := New(newFetcher(), detector, translator, nil, log).Analyze(context.Background(), imageURL)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.Summary != "85.00% de ser do tipo Gato de estimação" {
		t.Errorf("Summary = %q", result.Summary)
	}
	testutil.AssertLogged(t, logs, "Translated names do not match labels, extra items dropped")
}

func TestAnalyze_PerLabelTranslation(t *testing.T) {
	detector := &testutil.MockDetector{Labels: []label.Label{
		{Name: "Pet", Confidence: 85}, {Name: "Cat", Confidence: 95},
	}}
	translator := &testutil.MockTranslator{Translations: map[string]string{
		"Pet": "Animal de estimação",
		"Cat": "Gato",
	}}

	result, err := New(newFetcher(), detector, translator, &Options{PerLabelTranslation: true, StrictAlignment: true}, nil).
		Analyze(context.Background(), imageURL)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	want := "85.00% de ser do tipo Animal de estimação\n95.00% de ser do tipo Gato"
	if result.Summary != want {
		t.Errorf("Summary = %q, want %q", result.Summary, want)
	}
	if len(translator.Calls) != 2 {
		t.Errorf("expected one call per label, got %d", len(translator.Calls))
	}
}

func TestAnalyze_WithImageServer(t *testing.T) {
	srv := testutil.NewImageServer(t)
	fetcher := fetch.NewFetcher(nil)
	detector := &testutil.MockDetector{Labels: []label.Label{{Name: "Cat", Confidence: 99.9}}}
	translator := &testutil.MockTranslator{Translations: map[string]string{"Cat": "Gato"}}
	a := New(fetcher, detector, translator, nil, nil)

	result, err := a.Analyze(context.Background(), srv.URL+"/cat.jpg")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.Body != "A imagem tem\n99.90% de ser do tipo Gato" {
		t.Errorf("Body = %q", result.Body)
	}

	detector.Calls = 0
	_, err = a.Analyze(context.Background(), srv.URL+"/missing.jpg")
	var fe *fetch.FetchError
	if !errors.As(err, &fe) || fe.StatusCode != 404 {
		t.Errorf("expected 404 FetchError, got %v", err)
	}
	if detector.Calls != 0 {
		t.Error("detector called after 404")
	}
}

func TestNewFromFlags(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GOOGLE_CREDENTIALS", "")

	flags := cli.NewFlags()
	flags.LabelProvider = "openai"
	flags.TranslationProvider = "openai"
	flags.StrictAlignment = true

	a, err := NewFromFlags(context.Background(), flags, zap.NewNop())
	if err != nil {
		t.Fatalf("NewFromFlags() error = %v", err)
	}
	if a.detector.Name() != "openai" || a.translator.Name() != "openai" {
		t.Errorf("unexpected backends %s / %s", a.detector.Name(), a.translator.Name())
	}
	if !a.opts.StrictAlignment || a.opts.PerLabelTranslation {
		t.Errorf("unexpected options %+v", a.opts)
	}
}

func TestNewFromFlags_UnknownProvider(t *testing.T) {
	flags := cli.NewFlags()
	flags.LabelProvider = "tesseract"

	if _, err := NewFromFlags(context.Background(), flags, zap.NewNop()); err == nil {
		t.Error("expected error for unknown provider")
	}
}
