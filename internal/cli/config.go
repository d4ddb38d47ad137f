package cli

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InitConfig loads .env and the optional config file into viper
func InitConfig(cfgFile string) {
	// A missing .env file is normal outside development
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment from .env")
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".imagelabel" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".imagelabel")
	}

	// Environment variables
	// Nested keys map to IMAGELABEL_LABEL_PROVIDER and friends
	viper.SetEnvPrefix("IMAGELABEL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ApplyConfig copies config file and environment values into flags the
// user did not set on the command line
func (f *Flags) ApplyConfig() {
	f.LogLevel = viper.GetString("log.level")
	f.LogFormat = viper.GetString("log.format")
	f.LabelProvider = viper.GetString("label.provider")
	f.MaxLabels = viper.GetInt("label.max_labels")
	f.TranslationProvider = viper.GetString("translation.provider")
	f.StrictAlignment = viper.GetBool("translation.strict")
	f.PerLabel = viper.GetBool("translation.per_label")
	f.FetchTimeout = viper.GetDuration("fetch.timeout")
	f.MaxImageBytes = viper.GetInt64("fetch.max_bytes")
	f.RequestTimeout = viper.GetDuration("request.timeout")
	f.AWSRegion = viper.GetString("aws.region")
	f.AWSProfile = viper.GetString("aws.profile")
	f.OpenAIModel = viper.GetString("openai.model")
	f.GeminiModel = viper.GetString("gemini.model")
	f.Breaker = viper.GetBool("breaker.enabled")
	f.BreakerFailures = viper.GetUint32("breaker.failures")
	f.BreakerTimeout = viper.GetDuration("breaker.timeout")
	if viper.IsSet("server.addr") {
		f.Addr = viper.GetString("server.addr")
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("gemini.api_key")
}

// GetGoogleCredentials decodes the base64 service account JSON in
// GOOGLE_CREDENTIALS. Empty means Application Default Credentials.
func GetGoogleCredentials() ([]byte, error) {
	encodedCreds := os.Getenv("GOOGLE_CREDENTIALS")
	if encodedCreds == "" {
		encodedCreds = viper.GetString("google.credentials")
	}
	if encodedCreds == "" {
		return nil, nil
	}

	creds, err := base64.StdEncoding.DecodeString(encodedCreds)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Google credentials: %w", err)
	}
	return creds, nil
}
