package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		log     func(l *Logger)
		want    string
	}{
		{name: "info", log: func(l *Logger) { l.Infof("reading %s", "repo") }, want: "reading repo\n"},
		{name: "warn", log: func(l *Logger) { l.Warnf("slow") }, want: "warning: slow\n"},
		{name: "error", log: func(l *Logger) { l.Errorf("boom: %d", 1) }, want: "error: boom: 1\n"},
		{name: "debug suppressed", log: func(l *Logger) { l.Debugf("detail") }, want: ""},
		{name: "debug verbose", verbose: true, log: func(l *Logger) { l.Debugf("detail") }, want: "detail\n"},
		{name: "keeps trailing newline", log: func(l *Logger) { l.Infof("done\n") }, want: "done\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(New(&buf, tt.verbose))
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Run("returns attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, true)
		ctx := WithLogger(context.Background(), l)
		if got := FromContext(ctx); got != l {
			t.Errorf("FromContext returned %p, want %p", got, l)
		}
	})

	t.Run("returns discard logger when none attached", func(t *testing.T) {
		l := FromContext(context.Background())
		if l == nil {
			t.Fatal("FromContext returned nil")
		}
		l.Infof("goes nowhere")
		if l.Verbose() {
			t.Error("discard logger should not be verbose")
		}
	})
}
