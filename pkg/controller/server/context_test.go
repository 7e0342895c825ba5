package server_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repostream/pkg/controller/server"
	"github.com/m-mizutani/repostream/pkg/utils/logging"
)

func TestDetachContext(t *testing.T) {
	fixed := time.Date(2024, 12, 25, 10, 30, 0, 0, time.UTC)
	logger := slog.Default().With("component", "webhook")

	reqCtx, cancel := context.WithCancel(context.Background())
	reqCtx = logging.With(reqCtx, logger)
	reqCtx = logging.CtxWithTime(reqCtx, func() time.Time { return fixed })
	reqID, reqCtx := logging.CtxRequestID(reqCtx)

	bgCtx := server.DetachContext(reqCtx)
	cancel()

	t.Run("survives cancellation of request", func(t *testing.T) {
		gt.V(t, reqCtx.Err()).Equal(context.Canceled)
		gt.NoError(t, bgCtx.Err())
	})

	t.Run("inherits logger", func(t *testing.T) {
		gt.V(t, logging.From(bgCtx)).Equal(logger)
	})

	t.Run("inherits request ID", func(t *testing.T) {
		id, _ := logging.CtxRequestID(bgCtx)
		gt.V(t, id).Equal(reqID)
	})

	t.Run("inherits time function", func(t *testing.T) {
		gt.V(t, logging.CtxTime(bgCtx)).Equal(fixed)
	})
}
