package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hardhatlabs/hardhat/internal/service"
)

func TestWithRetry_EventualSuccess(t *testing.T) {
	attempts := 0
	err := WithRetry(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	}, service.RetryOptions{MaxAttempts: 5, InitialDelay: time.Millisecond})

	if err != nil {
		t.Fatalf("WithRetry failed: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	attempts := 0
	err := WithRetry(context.Background(), func() error {
		attempts++
		return errors.New("still broken")
	}, service.RetryOptions{MaxAttempts: 2, InitialDelay: time.Millisecond})

	if !errors.Is(err, ErrMaxRetries) {
		t.Errorf("error = %v, want ErrMaxRetries", err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestWithRetry_NonRetryableStopsImmediately(t *testing.T) {
	attempts := 0
	err := WithRetry(context.Background(), func() error {
		attempts++
		return &RetryableError{Err: errors.New("bad request"), Retryable: false}
	}, service.RetryOptions{MaxAttempts: 5, InitialDelay: time.Millisecond})

	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limit", ErrRateLimit, true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"retryable wrapper", &RetryableError{Err: errors.New("x"), Retryable: true}, true},
		{"non-retryable wrapper", &RetryableError{Err: errors.New("x"), Retryable: false}, false},
		{"plain error", errors.New("nope"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{"defaults", "", "", false},
		{"debug json", "debug", "json", false},
		{"bad level", "loud", "console", true},
		{"bad format", "info", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetupLogger(tt.level, tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetupLogger(%q, %q) error = %v, wantErr %v", tt.level, tt.format, err, tt.wantErr)
			}
		})
	}
}
