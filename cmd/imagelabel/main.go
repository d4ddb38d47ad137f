package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codeberg.org/snonux/imagelabel/internal/analyzer"
	"codeberg.org/snonux/imagelabel/internal/cli"
	"codeberg.org/snonux/imagelabel/internal/logger"
	"codeberg.org/snonux/imagelabel/internal/models"
	"codeberg.org/snonux/imagelabel/internal/server"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
		flags.ApplyConfig()
	})

	rootCmd.AddCommand(
		cli.NewAnalyzeCommand(func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), args[0], flags)
		}),
		cli.NewServeCommand(flags, func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), flags)
		}),
		cli.NewLambdaCommand(func(cmd *cobra.Command, args []string) error {
			return runLambda(cmd.Context(), flags)
		}),
		cli.NewModelsCommand(func(cmd *cobra.Command, args []string) error {
			return models.NewLister(cli.GetOpenAIKey()).ListAvailableModels(cmd.Context(), cmd.OutOrStdout())
		}),
	)

	// The Lambda runtime starts the binary without arguments
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" && len(os.Args) == 1 {
		rootCmd.SetArgs([]string{"lambda"})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newHandler(ctx context.Context, flags *cli.Flags) (*server.Handler, *zap.Logger, error) {
	log, err := logger.NewLogger(&logger.Config{Level: flags.LogLevel, Format: flags.LogFormat})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a, err := analyzer.NewFromFlags(ctx, flags, log)
	if err != nil {
		return nil, nil, err
	}

	return server.NewHandler(a, flags.RequestTimeout, log), log, nil
}

// runAnalyze prints the body and exits non-zero on the generic failure
func runAnalyze(ctx context.Context, imageURL string, flags *cli.Flags) error {
	h, log, err := newHandler(ctx, flags)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	resp := h.Handle(ctx, imageURL)
	fmt.Println(resp.Body)

	if resp.StatusCode != 200 {
		return fmt.Errorf("analysis failed with status %d", resp.StatusCode)
	}
	return nil
}

func runServe(ctx context.Context, flags *cli.Flags) error {
	h, log, err := newHandler(ctx, flags)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	gin.SetMode(gin.ReleaseMode)
	return server.Run(ctx, flags.Addr, server.Setup(h, log), flags.RequestTimeout, log)
}

func runLambda(ctx context.Context, flags *cli.Flags) error {
	h, log, err := newHandler(ctx, flags)
	if err != nil {
		return err
	}

	log.Info("Starting Lambda runtime")
	_ = log.Sync()

	// lambda.Start never returns
	h.StartLambda()
	return nil
}
