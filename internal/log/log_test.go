// SPDX-License-Identifier: Unlicense OR MIT

package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{" WARN ", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"chatty", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestSetLogger(t *testing.T) {
	prev := L()
	defer SetLogger(prev)

	l := zap.NewExample()
	SetLogger(l)
	assert.Same(t, l, L())

	SetLogger(nil)
	assert.NotNil(t, L())
}
