package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	appctx "github.com/shelbymodels/auth-service/internal/pkg/context"
)

func TestWithCtx_StampsRequestID(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "info")
	InitWithWriter(&buf)

	ctx := appctx.WithRequestID(context.Background(), "req-7")
	WithCtx(ctx).Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-7"`) {
		t.Fatalf("request id missing: %s", out)
	}
	if !strings.Contains(out, `"hello"`) {
		t.Fatalf("message missing: %s", out)
	}
}

func TestWithCtx_NoRequestID(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("LOG_FORMAT", "json")
	InitWithWriter(&buf)

	WithCtx(context.Background()).Info().Msg("plain")

	if strings.Contains(buf.String(), "request_id") {
		t.Fatalf("unexpected request id: %s", buf.String())
	}
}
