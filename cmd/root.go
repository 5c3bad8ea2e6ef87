package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/ethplorer/config"
	"github.com/s0up4200/ethplorer/ethplorer"
	"github.com/s0up4200/ethplorer/filter"
)

var (
	cfgFile   string
	cfg       *config.Config
	logger    zerolog.Logger
	client    *ethplorer.Client
	filters   *filter.Manager
	formatter = ethplorer.NewConsoleFormatter()

	// Global flags
	apiKey       string
	jsonOutput   bool
	printRequest bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ethplorer",
	Short: "Query the Ethplorer API for Ethereum addresses and tokens",
	Long: `ethplorer is a CLI for the Ethplorer API. It looks up address balances,
token details, holders, operation history and prices, and tolerates the
inconsistent JSON the API returns.

Without an API key the public free key is used.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Ethplorer API key (overrides api.key)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print the decoded response as JSON")
	rootCmd.PersistentFlags().BoolVar(&printRequest, "print-request", false, "print the request that would be sent and exit")
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging, os.Stderr)

	// Override the key from the command line if specified
	if cmd.Flags().Changed("api-key") {
		cfg.API.Key = apiKey
	}

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filter); err != nil {
		return fmt.Errorf("failed to load filters: %w", err)
	}

	opts := []ethplorer.Option{
		ethplorer.WithBaseURL(cfg.API.BaseURL),
		ethplorer.WithTimeout(cfg.API.Timeout),
	}
	if cfg.API.UserAgent != "" {
		opts = append(opts, ethplorer.WithUserAgent(cfg.API.UserAgent))
	} else {
		opts = append(opts, ethplorer.WithUserAgent("ethplorer-cli/"+version))
	}

	client, err = ethplorer.NewClient(cfg.API.Key, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Ethplorer client: %w", err)
	}

	if cfg.API.Key == "" {
		logger.Debug().Msg("No API key configured, using the free key")
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out *os.File) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	// Console format, colored only on a terminal
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(out),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
