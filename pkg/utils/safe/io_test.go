package safe_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/datedmemo/pkg/utils/logging"
	"github.com/secmon-lab/datedmemo/pkg/utils/safe"
)

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("close failed") }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestClose(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.With(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	safe.Close(ctx, nil)
	gt.Value(t, buf.Len()).Equal(0)

	safe.Close(ctx, failingCloser{})
	gt.String(t, buf.String()).Contains("close failed")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.With(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	var out bytes.Buffer
	safe.Write(ctx, &out, []byte("hello"))
	gt.Value(t, out.String()).Equal("hello")

	safe.Write(ctx, failingWriter{}, []byte("hello"))
	gt.String(t, buf.String()).Contains("write failed")
}
