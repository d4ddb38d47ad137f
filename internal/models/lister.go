package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// visionPrefixes are model families that accept image input
var visionPrefixes = []string{"gpt-4o", "gpt-4.1", "gpt-4-turbo", "gpt-5", "o1", "o3", "o4"}

type modelLister interface {
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client modelLister
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// Categories groups model ids by what imagelabel can use them for
type Categories struct {
	Vision []string // --label-provider openai and --translation-provider openai
	Chat   []string // --translation-provider openai only
}

// Categorize sorts model ids into vision-capable and text-only chat models.
// Audio, realtime and search variants are skipped.
func Categorize(ids []string) Categories {
	var c Categories
	for _, id := range ids {
		if strings.Contains(id, "audio") || strings.Contains(id, "realtime") ||
			strings.Contains(id, "tts") || strings.Contains(id, "transcribe") || strings.Contains(id, "search") {
			continue
		}

		switch {
		case hasAnyPrefix(id, visionPrefixes):
			c.Vision = append(c.Vision, id)
		case strings.Contains(id, "gpt") || strings.Contains(id, "chat"):
			c.Chat = append(c.Chat, id)
		}
	}

	sort.Strings(c.Vision)
	sort.Strings(c.Chat)
	return c
}

// ListAvailableModels writes the categorized models to w
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer) error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .imagelabel.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}
	c := Categorize(ids)

	fmt.Fprintln(w, "Available OpenAI Models:")

	fmt.Fprintln(w, "\nVision Models (labeling and translation):")
	printModels(w, c.Vision, "No vision models found")

	fmt.Fprintln(w, "\nChat Models (translation only):")
	printModels(w, c.Chat, "No chat models found")

	return nil
}

func printModels(w io.Writer, ids []string, empty string) {
	if len(ids) == 0 {
		fmt.Fprintf(w, "  %s\n", empty)
		return
	}
	for _, id := range ids {
		fmt.Fprintf(w, "  %s\n", id)
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
