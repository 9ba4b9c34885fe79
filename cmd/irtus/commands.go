package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/irtus/advisory/internal/advisor"
	"github.com/irtus/advisory/internal/ai"
	"github.com/irtus/advisory/internal/banner"
	"github.com/irtus/advisory/internal/cli"
	"github.com/irtus/advisory/internal/config"
	"github.com/irtus/advisory/internal/exitcode"
	"github.com/irtus/advisory/internal/logging"
	"github.com/irtus/advisory/internal/metrics"
	"github.com/irtus/advisory/internal/model"
	sighandler "github.com/irtus/advisory/internal/signal"
	"github.com/irtus/advisory/internal/site"
	"github.com/irtus/advisory/internal/venture"
)

// newRootCmd assembles the irtus command tree.
func newRootCmd() *cobra.Command {
	cfg := config.NewDefaultConfig()

	rootCmd := &cobra.Command{
		Use:           "irtus",
		Short:         "Irtus Business advisory site and AI pitch deck generator",
		Long:          "Irtus serves the Irtus Business advisory site and generates investor pitch decks from a venture description.",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cli.BindFlags(rootCmd, cfg)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site and the pitch deck tool over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFlags(cmd, cfg); err != nil {
				return exitcode.New(exitcode.InputInvalid, err)
			}
			finalCfg, err := loadConfig(cmd, cfg)
			if err != nil {
				return err
			}
			return runServe(finalCfg, cmd.OutOrStdout())
		},
	}
	cli.BindServeFlags(serveCmd, cfg)

	gf := &cli.GenerateFlags{}
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one pitch deck and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFlags(cmd, cfg); err != nil {
				return exitcode.New(exitcode.InputInvalid, err)
			}
			in, err := gf.ResolveInput(cmd)
			if err != nil {
				return exitcode.New(exitcode.InputInvalid, err)
			}
			finalCfg, err := loadConfig(cmd, cfg)
			if err != nil {
				return err
			}
			return runGenerate(finalCfg, in, cmd.OutOrStdout())
		},
	}
	cli.BindGenerateFlags(generateCmd, cfg, gf)

	rootCmd.AddCommand(serveCmd, generateCmd)
	cli.SetCustomHelp(rootCmd)
	return rootCmd
}

// loadConfig layers the dotenv file, the environment, the explicit config
// file and the changed flags, then validates the result.
func loadConfig(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	finalCfg, err := config.LoadWithPrecedence(cfg.EnvFile, cfg.ConfigFile, cli.Overrides(cmd, cfg))
	if err != nil {
		return nil, exitcode.New(exitcode.InputInvalid, fmt.Errorf("load config: %w", err))
	}

	// CLI-only flags
	finalCfg.Format = cfg.Format

	if err := finalCfg.Validate(); err != nil {
		return nil, exitcode.New(exitcode.InputInvalid, err)
	}

	logging.SetVerbose(finalCfg.Verbose)
	return finalCfg, nil
}

// newCompleter builds the client for the configured provider.
func newCompleter(cfg *config.Config) ai.Completer {
	provider, modelName := model.Resolve(cfg.AIProvider, cfg.Model())

	if provider == model.OpenAI {
		return ai.NewOpenAIClient(ai.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   modelName,
		})
	}
	return ai.NewGeminiClient(ai.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   modelName,
	})
}

func newAdvisor(cfg *config.Config, m *metrics.Metrics) *advisor.Advisor {
	return advisor.New(newCompleter(cfg), advisor.Options{
		Retry:   cfg.RetryConfig(),
		Metrics: m,
		Timeout: cfg.Timeout(),
	})
}

func startupInfo(cfg *config.Config, addr string) banner.StartupInfo {
	return banner.StartupInfo{
		Addr:       addr,
		Provider:   cfg.AIProvider,
		Model:      cfg.Model(),
		APIKey:     config.MaskSecret(cfg.APIKey()),
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  cfg.BaseDelay(),
		Timeout:    cfg.Timeout(),
	}
}

func runServe(cfg *config.Config, out io.Writer) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := sighandler.SetupSignalHandler(ctx, cancel, func(sig os.Signal) {
		logging.Warn(fmt.Sprintf("received %s, shutting down", sig))
	})

	m := metrics.New()
	srv, err := site.NewServer(newAdvisor(cfg, m), m)
	if err != nil {
		return err
	}

	banner.PrintStartupBanner(out, startupInfo(cfg, cfg.ListenAddr))
	logging.Phase("Serving Irtus Business site on " + cfg.ListenAddr)
	start := time.Now()

	if err := srv.ListenAndServe(ctx, cfg.ListenAddr); err != nil {
		return err
	}

	reason := "stopped"
	if sig := h.Signal(); sig != nil {
		reason = sig.String()
	}
	banner.PrintShutdownBanner(out, reason, int(time.Since(start).Seconds()))
	return nil
}

func runGenerate(cfg *config.Config, in venture.VentureInput, out io.Writer) error {
	if !in.Ready() {
		return exitcode.New(exitcode.InputInvalid, fmt.Errorf("missing required fields: %v", in.MissingFields()))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := sighandler.SetupSignalHandler(ctx, cancel, func(sig os.Signal) {
		logging.Warn(fmt.Sprintf("received %s, abandoning generation", sig))
	})

	if cfg.Format == cli.FormatText {
		banner.PrintStartupBanner(out, startupInfo(cfg, ""))
	} else {
		// Keep stdout for the document itself.
		prevOut, errOut := logging.Writers()
		logging.SetOutput(errOut, errOut)
		defer logging.SetOutput(prevOut, errOut)
	}
	logging.Phase(fmt.Sprintf("Generating pitch deck for %q", in.CompanyName))

	start := time.Now()
	deck, err := newAdvisor(cfg, nil).GenerateDeck(ctx, in)
	if err != nil {
		if h.Interrupted() {
			return exitcode.New(exitcode.Interrupted, err)
		}
		logging.Error(err.Error())
		banner.PrintFailureBanner(out, advisor.GenericFailureMessage, int(time.Since(start).Seconds()))
		return exitcode.New(exitcode.GenerationFailed, nil)
	}

	return writeDeck(out, cfg.Format, in.CompanyName, deck)
}

// writeDeck prints deck in the requested format.
func writeDeck(out io.Writer, format, companyName string, deck *venture.GeneratedDeck) error {
	switch format {
	case cli.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(deck)
	case cli.FormatMarkdown:
		_, err := io.WriteString(out, deck.Markdown(companyName))
		return err
	default:
		banner.PrintDeck(out, companyName, deck)
		return nil
	}
}
