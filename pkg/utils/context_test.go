package utils_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/genvault/genvault/pkg/utils"
)

func TestContextSleep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		duration       time.Duration
		cancelAfter    time.Duration
		expectedResult utils.SleepResult
	}{
		{
			name:           "sleep completes normally",
			duration:       10 * time.Millisecond,
			cancelAfter:    0, // no cancellation
			expectedResult: utils.SleepCompleted,
		},
		{
			name:           "context cancelled before sleep completes",
			duration:       100 * time.Millisecond,
			cancelAfter:    10 * time.Millisecond,
			expectedResult: utils.SleepCancelled,
		},
		{
			name:           "zero duration sleep",
			duration:       0,
			cancelAfter:    0,
			expectedResult: utils.SleepCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithCancel(t.Context())
			defer cancel()

			if tt.cancelAfter > 0 {
				go func() {
					time.Sleep(tt.cancelAfter)
					cancel()
				}()
			}

			assert.Equal(t, tt.expectedResult, utils.ContextSleep(ctx, tt.duration))
		})
	}
}

func TestContextSleepWithLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		duration       time.Duration
		cancelAfter    time.Duration
		cancelMessage  string
		expectedResult utils.SleepResult
	}{
		{
			name:           "sleep completes with logging",
			duration:       10 * time.Millisecond,
			cancelAfter:    0,
			cancelMessage:  "test message",
			expectedResult: utils.SleepCompleted,
		},
		{
			name:           "context cancelled with logging",
			duration:       100 * time.Millisecond,
			cancelAfter:    10 * time.Millisecond,
			cancelMessage:  "cancelled message",
			expectedResult: utils.SleepCancelled,
		},
		{
			name:           "context cancelled with empty message",
			duration:       100 * time.Millisecond,
			cancelAfter:    10 * time.Millisecond,
			cancelMessage:  "",
			expectedResult: utils.SleepCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithCancel(t.Context())
			defer cancel()

			if tt.cancelAfter > 0 {
				go func() {
					time.Sleep(tt.cancelAfter)
					cancel()
				}()
			}

			result := utils.ContextSleepWithLog(ctx, tt.duration, zap.NewNop(), tt.cancelMessage)
			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestContextGuardWithLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		cancelContext  bool
		cancelMessage  string
		expectedResult bool
	}{
		{
			name:           "context not cancelled with message",
			cancelContext:  false,
			cancelMessage:  "test message",
			expectedResult: false,
		},
		{
			name:           "context cancelled with message",
			cancelContext:  true,
			cancelMessage:  "cancelled message",
			expectedResult: true,
		},
		{
			name:           "context cancelled with empty message",
			cancelContext:  true,
			cancelMessage:  "",
			expectedResult: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithCancel(t.Context())
			defer cancel()

			if tt.cancelContext {
				cancel()
			}

			result := utils.ContextGuardWithLog(ctx, zap.NewNop(), tt.cancelMessage)
			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestIntervalSleep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		duration       time.Duration
		cancelAfter    time.Duration
		expectedResult bool
	}{
		{
			name:           "interval sleep completes",
			duration:       10 * time.Millisecond,
			cancelAfter:    0,
			expectedResult: true,
		},
		{
			name:           "interval sleep cancelled",
			duration:       100 * time.Millisecond,
			cancelAfter:    10 * time.Millisecond,
			expectedResult: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithCancel(t.Context())
			defer cancel()

			if tt.cancelAfter > 0 {
				go func() {
					time.Sleep(tt.cancelAfter)
					cancel()
				}()
			}

			result := utils.IntervalSleep(ctx, tt.duration, zap.NewNop(), "test worker")
			assert.Equal(t, tt.expectedResult, result)
		})
	}
}
