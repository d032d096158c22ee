package logging_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"todoist/internal/logging"
)

func TestNew_LevelGating(t *testing.T) {
	ctx := context.Background()

	quiet := logging.New(false)
	if quiet.Enabled(ctx, slog.LevelDebug) {
		t.Error("debug records should be suppressed without --debug")
	}
	if !quiet.Enabled(ctx, slog.LevelWarn) {
		t.Error("warnings should always be emitted")
	}

	verbose := logging.New(true)
	if !verbose.Enabled(ctx, slog.LevelDebug) {
		t.Error("debug records should be emitted with --debug")
	}
}

func TestAttrs(t *testing.T) {
	tests := []struct {
		attr      slog.Attr
		wantKey   string
		wantValue string
	}{
		{logging.Operation("GET /tasks"), logging.KeyOperation, "GET /tasks"},
		{logging.Status("200 OK"), logging.KeyStatus, "200 OK"},
		{logging.Error(errors.New("boom")), logging.KeyError, "boom"},
	}

	for _, tt := range tests {
		if tt.attr.Key != tt.wantKey {
			t.Errorf("expected key %q, got %q", tt.wantKey, tt.attr.Key)
		}
		if tt.attr.Value.String() != tt.wantValue {
			t.Errorf("%s: expected value %q, got %q", tt.wantKey, tt.wantValue, tt.attr.Value.String())
		}
	}
}
