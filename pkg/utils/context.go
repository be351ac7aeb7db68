package utils

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// SleepResult represents the outcome of a context-aware sleep operation.
type SleepResult int

const (
	// SleepCompleted indicates the sleep duration completed normally.
	SleepCompleted SleepResult = iota
	// SleepCancelled indicates the context was cancelled during sleep.
	SleepCancelled
)

// ContextSleep sleeps for the specified duration while respecting context
// cancellation.
func ContextSleep(ctx context.Context, duration time.Duration) SleepResult {
	select {
	case <-time.After(duration):
		return SleepCompleted
	case <-ctx.Done():
		return SleepCancelled
	}
}

// ContextSleepWithLog sleeps for the specified duration while respecting
// context cancellation, logging a message if the context is cancelled.
func ContextSleepWithLog(ctx context.Context, duration time.Duration, logger *zap.Logger, cancelMessage string) SleepResult {
	select {
	case <-time.After(duration):
		return SleepCompleted
	case <-ctx.Done():
		if logger != nil && cancelMessage != "" {
			logger.Info(cancelMessage)
		}
		return SleepCancelled
	}
}

// ContextGuardWithLog checks if the context is cancelled and logs a message
// if so. Returns true if context is cancelled, false otherwise.
func ContextGuardWithLog(ctx context.Context, logger *zap.Logger, cancelMessage string) bool {
	select {
	case <-ctx.Done():
		if logger != nil && cancelMessage != "" {
			logger.Info(cancelMessage)
		}
		return true
	default:
		return false
	}
}

// IntervalSleep sleeps between worker iterations, respecting context
// cancellation. Returns true if the worker should continue, false if it
// should stop.
func IntervalSleep(ctx context.Context, duration time.Duration, logger *zap.Logger, workerName string) bool {
	result := ContextSleepWithLog(ctx, duration, logger,
		"Context cancelled during pause, stopping "+workerName)
	return result == SleepCompleted
}
