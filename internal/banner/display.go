// Package banner provides colored banner display functions for the irtus CLI.
//
// Banners frame the server startup summary, generated decks printed to the
// terminal, generation failures and shutdown.
package banner

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/irtus/advisory/internal/logging"
	"github.com/irtus/advisory/internal/venture"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	errorColor   = color.New(color.FgRed, color.Bold).SprintFunc()
	warnColor    = color.New(color.FgYellow, color.Bold).SprintFunc()
	accentColor  = color.New(color.FgMagenta).SprintFunc()
)

const rule = "═══════════════════════════════════════════════════"

// StartupInfo is the summary shown when the server starts.
type StartupInfo struct {
	Addr       string
	Provider   string
	Model      string
	APIKey     string // already masked
	MaxRetries int
	BaseDelay  time.Duration
	Timeout    time.Duration
}

// PrintStartupBanner displays the startup banner with server settings.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  irtus - Business Advisory & Pitch Deck Engine
//	═══════════════════════════════════════════════════
//	  Listen:     :8080
//	  Provider:   gemini
//	  Model:      gemini-2.5-flash-preview-09-2025
//	  API key:    ********wxyz
//	  Retries:    5 (base delay 1s)
//	  Timeout:    none
//	═══════════════════════════════════════════════════
func PrintStartupBanner(w io.Writer, info StartupInfo) {
	sep := headerColor(rule)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, headerColor("  irtus - Business Advisory & Pitch Deck Engine"))
	fmt.Fprintln(w, sep)
	if info.Addr != "" {
		fmt.Fprintf(w, "  Listen:     %s\n", info.Addr)
	}
	fmt.Fprintf(w, "  Provider:   %s\n", info.Provider)
	fmt.Fprintf(w, "  Model:      %s\n", info.Model)
	fmt.Fprintf(w, "  API key:    %s\n", info.APIKey)
	fmt.Fprintf(w, "  Retries:    %d (base delay %s)\n", info.MaxRetries, info.BaseDelay)
	timeout := "none"
	if info.Timeout > 0 {
		timeout = info.Timeout.String()
	}
	fmt.Fprintf(w, "  Timeout:    %s\n", timeout)
	fmt.Fprintln(w, sep)
}

// PrintDeck renders a generated deck for the terminal.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ✓ EcoWatt: Pitch Deck (6 slides)
//	═══════════════════════════════════════════════════
//	  1. Problem
//	     Power outages cost SMEs
//	     - 40% of revenue lost
//	     ▸ Insight: grid reliability is a wedge
//	  ...
//	───────────────────────────────────────────────────
//	  Advisory summary:
//	  Strong wedge, validate unit economics.
//	═══════════════════════════════════════════════════
func PrintDeck(w io.Writer, companyName string, deck *venture.GeneratedDeck) {
	sep := successColor(rule)
	title := "Pitch Deck"
	if name := strings.TrimSpace(companyName); name != "" {
		title = name + ": Pitch Deck"
	}

	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, successColor(fmt.Sprintf("  ✓ %s (%d slides)", title, len(deck.Slides))))
	fmt.Fprintln(w, sep)
	for i, s := range deck.Slides {
		fmt.Fprintf(w, "  %s\n", headerColor(fmt.Sprintf("%d. %s", i+1, s.Title)))
		if s.Subtitle != "" {
			fmt.Fprintf(w, "     %s\n", s.Subtitle)
		}
		for _, b := range s.BulletPoints {
			fmt.Fprintf(w, "     - %s\n", b)
		}
		if s.StrategicInsight != "" {
			fmt.Fprintf(w, "     %s %s\n", accentColor("▸ Insight:"), s.StrategicInsight)
		}
	}
	if deck.AdvisorySummary != "" {
		fmt.Fprintln(w, strings.Repeat("─", 51))
		fmt.Fprintln(w, "  Advisory summary:")
		fmt.Fprintf(w, "  %s\n", deck.AdvisorySummary)
	}
	fmt.Fprintln(w, sep)
}

// PrintFailureBanner displays the user-facing generation failure.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ✗ Generation failed after 31s
//	═══════════════════════════════════════════════════
//	  We encountered an error while synthesizing ...
//	═══════════════════════════════════════════════════
func PrintFailureBanner(w io.Writer, message string, durationSecs int) {
	sep := errorColor(rule)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, errorColor("  ✗ Generation failed after "+logging.FormatDuration(durationSecs)))
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "  %s\n", message)
	fmt.Fprintln(w, sep)
}

// PrintShutdownBanner displays when the server stops.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ⚠ Shutting down (interrupt)
//	  Uptime: 1h 2m 3s
//	═══════════════════════════════════════════════════
func PrintShutdownBanner(w io.Writer, reason string, uptimeSecs int) {
	sep := warnColor(rule)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, warnColor("  ⚠ Shutting down ("+reason+")"))
	fmt.Fprintf(w, "  Uptime: %s\n", logging.FormatDuration(uptimeSecs))
	fmt.Fprintln(w, sep)
}
