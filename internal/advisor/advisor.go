// Package advisor orchestrates pitch deck generation: it builds the prompt
// from a venture input, sends it through a provider under the retry policy
// and decodes the constrained JSON reply.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/irtus/advisory/internal/ai"
	"github.com/irtus/advisory/internal/logging"
	"github.com/irtus/advisory/internal/metrics"
	"github.com/irtus/advisory/internal/prompt"
	"github.com/irtus/advisory/internal/venture"
)

// GenericFailureMessage is the only failure text a visitor ever sees.
const GenericFailureMessage = "We encountered an error while synthesizing your strategy. Please check your network or try again."

var (
	// ErrNotReady is returned when a required field is empty. No request is
	// sent in that case.
	ErrNotReady = errors.New("company name and problem are required")
	// ErrInProgress is returned when a session already has a generation in
	// flight.
	ErrInProgress = errors.New("a generation is already in progress for this session")
)

// Options tunes an Advisor. The zero value uses the default retry policy,
// no metrics and no overall timeout.
type Options struct {
	Retry   ai.RetryConfig
	Metrics *metrics.Metrics
	// Timeout bounds a whole generation sequence, backoff included.
	// Zero means no bound.
	Timeout time.Duration
}

// Advisor turns venture inputs into generated decks.
type Advisor struct {
	client  ai.Completer
	retry   ai.RetryConfig
	metrics *metrics.Metrics
	timeout time.Duration
}

// New returns an Advisor that sends requests through client.
func New(client ai.Completer, opts Options) *Advisor {
	retry := opts.Retry
	if retry.MaxRetries == 0 && retry.BaseDelay == 0 && retry.Backoff == nil {
		defaults := ai.DefaultRetryConfig()
		retry.MaxRetries = defaults.MaxRetries
		retry.BaseDelay = defaults.BaseDelay
	}
	return &Advisor{
		client:  client,
		retry:   retry,
		metrics: opts.Metrics,
		timeout: opts.Timeout,
	}
}

// Provider names the backing provider.
func (a *Advisor) Provider() string {
	return a.client.Name()
}

// GenerateDeck produces a deck for in. The provider is called at most
// MaxRetries+1 times; every failure kind is retried unless the retry
// configuration says otherwise. The returned error keeps the last
// attempt's typed error in its chain.
func (a *Advisor) GenerateDeck(ctx context.Context, in venture.VentureInput) (*venture.GeneratedDeck, error) {
	provider := a.client.Name()
	if !in.Ready() {
		a.metrics.ObserveRejected(provider)
		return nil, fmt.Errorf("%w: missing %s", ErrNotReady, strings.Join(in.MissingFields(), ", "))
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	req := ai.Request{
		SystemInstruction: prompt.BuildSystemInstruction(),
		Prompt:            prompt.BuildDeckPrompt(in),
	}

	done := a.metrics.StartGeneration(provider)
	start := time.Now()

	cfg := a.retry
	userOnRetry := cfg.OnRetry
	cfg.OnRetry = func(attempt int, delay time.Duration, err error) {
		logging.Warn(fmt.Sprintf("%s attempt %d failed (%s), retrying in %s",
			provider, attempt+1, ai.Kind(err), delay))
		logging.Debug(err.Error())
		if userOnRetry != nil {
			userOnRetry(attempt, delay, err)
		}
	}

	deck, err := ai.Retry(ctx, cfg, func(ctx context.Context) (*venture.GeneratedDeck, error) {
		return a.attempt(ctx, provider, req)
	})
	elapsed := int(time.Since(start).Seconds())
	if err != nil {
		done(metrics.OutcomeFailure)
		logging.Error(fmt.Sprintf("deck generation for %q failed after %s (%s): %v",
			in.CompanyName, logging.FormatDuration(elapsed), ai.Kind(err), err))
		return nil, fmt.Errorf("generate deck: %w", err)
	}

	done(metrics.OutcomeSuccess)
	logging.Success(fmt.Sprintf("deck for %q generated with %d slides in %s",
		in.CompanyName, len(deck.Slides), logging.FormatDuration(elapsed)))
	return deck, nil
}

// attempt performs one request and decodes its reply.
func (a *Advisor) attempt(ctx context.Context, provider string, req ai.Request) (*venture.GeneratedDeck, error) {
	a.metrics.ObserveAttempt(provider)

	text, err := a.client.Complete(ctx, req)
	if err == nil {
		var deck *venture.GeneratedDeck
		deck, err = ai.DecodeDeck(text)
		if err == nil {
			return deck, nil
		}
	}

	a.metrics.ObserveAttemptFailure(provider, ai.Kind(err))
	return nil, err
}

// Submit runs a generation for the session's input and records the outcome
// on the session. A session that is not ready or already loading is left
// untouched. On failure the session carries GenericFailureMessage and the
// detailed error is returned to the caller for logging.
func (a *Advisor) Submit(ctx context.Context, s *venture.Session) error {
	if s.Loading {
		return ErrInProgress
	}
	if !s.Ready() {
		a.metrics.ObserveRejected(a.client.Name())
		return fmt.Errorf("%w: missing %s", ErrNotReady, strings.Join(s.Input.MissingFields(), ", "))
	}

	logging.Info(fmt.Sprintf("session %s: generating deck for %q via %s", s.ID, s.Input.CompanyName, a.client.Name()))
	s.Begin()

	deck, err := a.GenerateDeck(ctx, s.Input)
	if err != nil {
		s.Fail(GenericFailureMessage)
		return err
	}

	s.Complete(deck)
	return nil
}
