package video

import (
	"context"
	"time"
)

// RetryPolicy - ограниченный опрос с фиксированным интервалом.
type RetryPolicy struct {
	MaxAttempts int
	Interval    time.Duration
}

// DefaultRetryPolicy - до 60 попыток раз в секунду (около минуты ожидания).
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 60, Interval: time.Second}
}

// Wait ждет один интервал или отмену контекста.
func (p RetryPolicy) Wait(ctx context.Context) error {
	if p.Interval <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.Interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
