package redis

import (
	"context"
	"testing"
	"time"

	"github.com/MrSnakeDoc/envf/internal/logger"
)

func validOptions() ConnectOptions {
	return ConnectOptions{
		Addr:           "127.0.0.1:6379",
		ConnectTimeout: time.Second,
		RetryInterval:  100 * time.Millisecond,
		MaxWait:        400 * time.Millisecond,
		PingTimeout:    100 * time.Millisecond,
		WarnThreshold:  2,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConnectOptions)
		wantErr bool
	}{
		{"valid", func(*ConnectOptions) {}, false},
		{"empty addr", func(o *ConnectOptions) { o.Addr = "" }, true},
		{"zero connect timeout", func(o *ConnectOptions) { o.ConnectTimeout = 0 }, true},
		{"zero retry interval", func(o *ConnectOptions) { o.RetryInterval = 0 }, true},
		{"zero max wait", func(o *ConnectOptions) { o.MaxWait = 0 }, true},
		{"zero ping timeout", func(o *ConnectOptions) { o.PingTimeout = 0 }, true},
		{"negative warn threshold", func(o *ConnectOptions) { o.WarnThreshold = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)
			if err := opts.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBackoffIsCapped(t *testing.T) {
	opts := validOptions()

	wait := opts.RetryInterval
	var got []time.Duration
	for i := 0; i < 4; i++ {
		wait = opts.backoff(wait)
		got = append(got, wait)
	}

	want := []time.Duration{200 * time.Millisecond, 400 * time.Millisecond, 400 * time.Millisecond, 400 * time.Millisecond}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("backoff step %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	opts := validOptions()
	opts.PingTimeout = 0

	if _, err := New(context.Background(), opts, logger.NewNop()); err == nil {
		t.Error("New() with invalid options should fail")
	}
}
