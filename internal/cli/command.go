package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/imagelabel/internal"
)

// RunFunc is the body of a subcommand
type RunFunc func(cmd *cobra.Command, args []string) error

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "imagelabel",
		Short: "Describe images in Portuguese",
		Long: `imagelabel detects labels in an image, translates them to Portuguese
and prints how likely the image is to contain each of them.

Examples:
  imagelabel analyze https://example.com/cat.jpg   # One-shot analysis
  imagelabel serve --addr :8080                    # HTTP server
  imagelabel lambda                                # AWS Lambda runtime
  imagelabel models                                # List OpenAI models`,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

// NewAnalyzeCommand creates the one-shot analyze subcommand
func NewAnalyzeCommand(run RunFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <image-url>",
		Short: "Analyze a single image and print the summary",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
}

// NewServeCommand creates the HTTP server subcommand
func NewServeCommand(flags *Flags, run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve GET /analyze?imageUrl= over HTTP",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
	cmd.Flags().StringVar(&flags.Addr, "addr", flags.Addr, "Listen address")
	viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	return cmd
}

// NewLambdaCommand creates the AWS Lambda runtime subcommand
func NewLambdaCommand(run RunFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "lambda",
		Short: "Run as an AWS Lambda function behind API Gateway",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
}

// NewModelsCommand creates the model listing subcommand
func NewModelsCommand(run RunFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List OpenAI models usable for labeling and translation",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	pf := cmd.PersistentFlags()

	// Global flags
	pf.StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.imagelabel.yaml)")
	pf.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	pf.StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: json or console")

	// Pipeline flags
	pf.StringVar(&flags.LabelProvider, "label-provider", flags.LabelProvider, "Label detection backend: rekognition, vision, openai, gemini")
	pf.StringVar(&flags.TranslationProvider, "translation-provider", flags.TranslationProvider, "Translation backend: aws, google, openai, gemini")
	pf.IntVar(&flags.MaxLabels, "max-labels", 0, "Maximum labels requested from the backend (0 = backend default)")
	pf.BoolVar(&flags.StrictAlignment, "strict", false, "Fail when translated names and labels differ in count")
	pf.BoolVar(&flags.PerLabel, "per-label", false, "Translate each label with its own call")

	// Timeouts and limits
	pf.DurationVar(&flags.FetchTimeout, "fetch-timeout", flags.FetchTimeout, "Timeout for downloading the image")
	pf.DurationVar(&flags.RequestTimeout, "request-timeout", flags.RequestTimeout, "Deadline for a whole analysis")
	pf.Int64Var(&flags.MaxImageBytes, "max-image-bytes", flags.MaxImageBytes, "Maximum image size in bytes (0 = unlimited)")

	// AWS flags
	pf.StringVar(&flags.AWSRegion, "aws-region", "", "AWS region (default from the AWS config chain)")
	pf.StringVar(&flags.AWSProfile, "aws-profile", "", "AWS shared config profile")

	// Model flags
	pf.StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI model for the openai backends")
	pf.StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for the gemini backends")

	// Circuit breaker flags
	pf.BoolVar(&flags.Breaker, "breaker", false, "Fail fast while a backend keeps failing")
	pf.Uint32Var(&flags.BreakerFailures, "breaker-failures", flags.BreakerFailures, "Consecutive failures that open the breaker")
	pf.DurationVar(&flags.BreakerTimeout, "breaker-timeout", flags.BreakerTimeout, "How long an open breaker rejects calls")

	// Bind flags to viper
	bindFlagsToViper(pf)
}

func bindFlagsToViper(pf *pflag.FlagSet) {
	viper.BindPFlag("log.level", pf.Lookup("log-level"))
	viper.BindPFlag("log.format", pf.Lookup("log-format"))
	viper.BindPFlag("label.provider", pf.Lookup("label-provider"))
	viper.BindPFlag("label.max_labels", pf.Lookup("max-labels"))
	viper.BindPFlag("translation.provider", pf.Lookup("translation-provider"))
	viper.BindPFlag("translation.strict", pf.Lookup("strict"))
	viper.BindPFlag("translation.per_label", pf.Lookup("per-label"))
	viper.BindPFlag("fetch.timeout", pf.Lookup("fetch-timeout"))
	viper.BindPFlag("fetch.max_bytes", pf.Lookup("max-image-bytes"))
	viper.BindPFlag("request.timeout", pf.Lookup("request-timeout"))
	viper.BindPFlag("aws.region", pf.Lookup("aws-region"))
	viper.BindPFlag("aws.profile", pf.Lookup("aws-profile"))
	viper.BindPFlag("openai.model", pf.Lookup("openai-model"))
	viper.BindPFlag("gemini.model", pf.Lookup("gemini-model"))
	viper.BindPFlag("breaker.enabled", pf.Lookup("breaker"))
	viper.BindPFlag("breaker.failures", pf.Lookup("breaker-failures"))
	viper.BindPFlag("breaker.timeout", pf.Lookup("breaker-timeout"))
}
