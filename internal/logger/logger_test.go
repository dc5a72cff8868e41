package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input  string
		want   zapcore.Level
		wantOK bool
	}{
		{input: "debug", want: zapcore.DebugLevel, wantOK: true},
		{input: "warn", want: zapcore.WarnLevel, wantOK: true},
		{input: "error", want: zapcore.ErrorLevel, wantOK: true},
		{input: "verbose", want: zapcore.InfoLevel, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLevel(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNopWith(t *testing.T) {
	log := Nop().With(String("component", "test"))
	log.Info("discarded", Int("n", 1), Bool("ok", true))
}
