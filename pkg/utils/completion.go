package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"ait/pkg/metrics"
)

// Completer is the one call every generative provider has to support.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type BackendState int

const (
	BackendUnconfigured BackendState = iota
	BackendConfigured
)

func (s BackendState) String() string {
	if s == BackendConfigured {
		return "configured"
	}
	return "unconfigured"
}

type CompletionStatus int

const (
	CompletionOK CompletionStatus = iota
	CompletionEmpty
	CompletionUnavailable
	CompletionFailed
)

func (s CompletionStatus) String() string {
	switch s {
	case CompletionOK:
		return "ok"
	case CompletionEmpty:
		return "empty"
	case CompletionUnavailable:
		return "unavailable"
	default:
		return "failed"
	}
}

// CompletionResult is what callers get back instead of an error: Text is only set for CompletionOK.
type CompletionResult struct {
	Status CompletionStatus
	Text   string
	Err    error
}

func (r CompletionResult) OK() bool {
	return r.Status == CompletionOK
}

type BackendOptions struct {
	Timeout           time.Duration
	RequestsPerSecond int
}

// Backend wraps a provider Completer with a timeout, a client-side rate limit, logging and
// metrics. A Backend built by UnconfiguredBackend answers every call with CompletionUnavailable.
type Backend struct {
	name      string
	provider  string
	state     BackendState
	completer Completer
	timeout   time.Duration
	limiter   *rate.Limiter
	logger    *zap.Logger
}

func NewBackend(name, provider string, completer Completer, opts BackendOptions, logger *zap.Logger) *Backend {
	if completer == nil {
		return UnconfiguredBackend(name, provider, logger)
	}
	b := &Backend{
		name:      name,
		provider:  provider,
		state:     BackendConfigured,
		completer: completer,
		timeout:   opts.Timeout,
		logger:    logger.Named(name),
	}
	if opts.RequestsPerSecond > 0 {
		b.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.RequestsPerSecond)
	}
	return b
}

func UnconfiguredBackend(name, provider string, logger *zap.Logger) *Backend {
	return &Backend{
		name:     name,
		provider: provider,
		state:    BackendUnconfigured,
		logger:   logger.Named(name),
	}
}

func (b *Backend) Name() string        { return b.name }
func (b *Backend) Provider() string    { return b.provider }
func (b *Backend) State() BackendState { return b.state }
func (b *Backend) Configured() bool    { return b.state == BackendConfigured }

func (b *Backend) Complete(ctx context.Context, system, user string) CompletionResult {
	if b.state == BackendUnconfigured {
		metrics.ObserveBackend(b.name, CompletionUnavailable.String(), 0)
		return CompletionResult{Status: CompletionUnavailable, Err: ErrBackendUnconfigured}
	}

	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	start := time.Now()
	result := b.call(ctx, system, user)
	metrics.ObserveBackend(b.name, result.Status.String(), time.Since(start))

	switch result.Status {
	case CompletionOK:
		b.logger.Debug("completion succeeded",
			zap.String("provider", b.provider),
			zap.Int("chars", len(result.Text)),
			zap.Duration("latency", time.Since(start)))
	case CompletionEmpty:
		b.logger.Warn("completion returned no text", zap.String("provider", b.provider))
	default:
		b.logger.Error("completion failed",
			zap.String("provider", b.provider),
			zap.Duration("latency", time.Since(start)),
			zap.Error(result.Err))
	}
	return result
}

func (b *Backend) call(ctx context.Context, system, user string) (result CompletionResult) {
	defer func() {
		if r := recover(); r != nil {
			result = CompletionResult{Status: CompletionFailed, Err: fmt.Errorf("%w: panic: %v", ErrBackendFailure, r)}
		}
	}()

	if b.limiter != nil {
		if err := b.limiter.Wait(ctx); err != nil {
			return CompletionResult{Status: CompletionFailed, Err: fmt.Errorf("%w: rate limit: %v", ErrBackendFailure, err)}
		}
	}

	text, err := b.completer.Complete(ctx, system, user)
	if err != nil {
		if errors.Is(err, ErrEmptyCompletion) {
			return CompletionResult{Status: CompletionEmpty, Err: err}
		}
		return CompletionResult{Status: CompletionFailed, Err: fmt.Errorf("%w: %w", ErrBackendFailure, err)}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return CompletionResult{Status: CompletionEmpty, Err: ErrEmptyCompletion}
	}
	return CompletionResult{Status: CompletionOK, Text: text}
}
