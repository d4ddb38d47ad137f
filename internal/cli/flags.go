package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	LogLevel  string
	LogFormat string

	// Pipeline flags
	LabelProvider       string
	TranslationProvider string
	MaxLabels           int
	StrictAlignment     bool
	PerLabel            bool

	// Timeouts and limits
	FetchTimeout   time.Duration
	RequestTimeout time.Duration
	MaxImageBytes  int64

	// AWS flags
	AWSRegion  string
	AWSProfile string

	// Model flags
	OpenAIModel string
	GeminiModel string

	// Circuit breaker flags
	Breaker         bool
	BreakerFailures uint32
	BreakerTimeout  time.Duration

	// Server flags
	Addr string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogLevel:            "info",
		LogFormat:           "json",
		LabelProvider:       "rekognition",
		TranslationProvider: "aws",
		FetchTimeout:        30 * time.Second,
		RequestTimeout:      60 * time.Second,
		MaxImageBytes:       10 << 20,
		OpenAIModel:         "gpt-4o-mini",
		GeminiModel:         "gemini-2.0-flash",
		BreakerFailures:     5,
		BreakerTimeout:      30 * time.Second,
		Addr:                ":8080",
	}
}
