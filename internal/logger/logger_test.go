package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   zapcore.Level
		wantOK bool
	}{
		{"debug", zapcore.DebugLevel, true},
		{"INFO", zapcore.InfoLevel, true},
		{" warn ", zapcore.WarnLevel, true},
		{"error", zapcore.ErrorLevel, true},
		{"verbose", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseLevel(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("parseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNewAndWith(t *testing.T) {
	for _, pretty := range []bool{true, false} {
		log := New("debug", pretty)
		if log == nil {
			t.Fatal("New() returned nil")
		}
		child := log.With(String("request_id", "abc"))
		child.Debug("debug entry", Int("n", 1), Bool("ok", true))
		child.Infof("formatted %s", "entry")
	}

	NewNop().Error("discarded", Error(nil))
}
