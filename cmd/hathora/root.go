package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	hathora "github.com/hathora/hathora-go"
	"github.com/hathora/hathora-go/internal/platform/logger"
	"github.com/hathora/hathora-go/internal/platform/otel"
)

var (
	flagAPIKey    string
	flagEndpoints map[string]string
	flagDebug     bool
	flagTrace     bool

	log          *zap.Logger
	shutdownOTel func(context.Context) error
)

var rootCmd = &cobra.Command{
	Use:           "hathora",
	Short:         "Client for the Hathora Voice AI API",
	Long:          "Speech-to-text, text-to-speech and chat completion against the Hathora Voice AI backends.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := logger.DefaultConfig()
		if flagDebug {
			cfg.Level = "debug"
		}
		log = logger.Must(cfg)

		if flagTrace {
			shutdown, err := otel.InitTracer("hathora-cli", log, os.Stderr)
			if err != nil {
				return err
			}
			shutdownOTel = shutdown
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if shutdownOTel != nil {
			return shutdownOTel(cmd.Context())
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "API key (defaults to HATHORA_API_KEY)")
	rootCmd.PersistentFlags().StringToStringVar(&flagEndpoints, "endpoint", nil, "endpoint override, model=url (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagTrace, "trace", false, "emit OpenTelemetry spans to stderr")
}

func newClient() (*hathora.Client, error) {
	opts := []hathora.Option{hathora.WithLogger(log)}
	if flagAPIKey != "" {
		opts = append(opts, hathora.WithAPIKey(flagAPIKey))
	}
	for model, endpoint := range flagEndpoints {
		opts = append(opts, hathora.WithEndpoint(model, endpoint))
	}
	return hathora.New(opts...)
}

// parseParams converts repeated name=value flags into the parameter map the
// SDK validates. Values parse as bool, then number, then fall back to string.
func parseParams(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	params := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected name=value", pair)
		}
		switch {
		case value == "true" || value == "false":
			params[name] = value == "true"
		default:
			if n, err := strconv.ParseFloat(value, 64); err == nil {
				params[name] = n
			} else {
				params[name] = value
			}
		}
	}
	return params, nil
}
