// Package breaker wraps sony/gobreaker for the external label and translation
// services. A tripped breaker fails calls immediately; it never retries.
package breaker

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Config holds circuit breaker thresholds
type Config struct {
	Enabled             bool
	ConsecutiveFailures uint32        // Failures in a row that open the breaker
	OpenTimeout         time.Duration // How long the breaker stays open before probing
}

// DefaultConfig returns the thresholds used when the breaker is enabled without tuning
func DefaultConfig() *Config {
	return &Config{
		Enabled:             false,
		ConsecutiveFailures: 5,
		OpenTimeout:         30 * time.Second,
	}
}

// New creates a named circuit breaker that logs state changes
func New(name string, cfg *Config, log *zap.Logger) *gobreaker.CircuitBreaker {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}

	threshold := cfg.ConsecutiveFailures
	if threshold == 0 {
		threshold = 5
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		// A caller that went away says nothing about the backend. A
		// deadline still counts since a hung backend shows up that way.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
}

// Do runs fn through cb and returns its typed result
func Do[T any](cb *gobreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var zero T

	result, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil || result == nil {
		return zero, err
	}

	return result.(T), nil
}

// IsOpen reports whether err was produced by a breaker refusing the call
func IsOpen(err error) bool {
	return err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests
}
