package logx

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestContextHandler(t *testing.T) {
	var buff bytes.Buffer

	logger := slog.New(ContextHandler{
		Handler: slog.NewTextHandler(&buff, &slog.HandlerOptions{Level: slog.LevelDebug}),
	})

	ctx := WithAttrs(context.Background(), slog.String("query", "golang"))
	ctx = WithAttrs(ctx, slog.Int("limit", 10))

	logger.InfoContext(ctx, "executing search")

	line := buff.String()

	for _, expected := range []string{"query=golang", "limit=10", `msg="executing search"`} {
		if !strings.Contains(line, expected) {
			t.Errorf("expected %q in log line, got %q", expected, line)
		}
	}
}

func TestContextHandlerWithoutAttrs(t *testing.T) {
	var buff bytes.Buffer

	logger := slog.New(ContextHandler{Handler: slog.NewTextHandler(&buff, nil)}).With(slog.String("component", "bing"))

	logger.InfoContext(context.Background(), "done")

	if !strings.Contains(buff.String(), "component=bing") {
		t.Errorf("expected logger attributes to be kept, got %q", buff.String())
	}
}
