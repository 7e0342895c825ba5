package errutil_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repostream/pkg/domain/types"
	"github.com/m-mizutani/repostream/pkg/utils/errutil"
	"github.com/m-mizutani/repostream/pkg/utils/logging"
)

func TestHandleError(t *testing.T) {
	t.Run("handle error with context", func(t *testing.T) {
		ctx := context.Background()
		err := errors.New("test error")

		// Should not panic
		errutil.HandleError(ctx, "test message", err)
	})

	t.Run("handle nil error", func(t *testing.T) {
		var buf bytes.Buffer
		logger := gt.R1(logging.New("json", "info", &buf)).NoError(t)
		ctx := logging.With(context.Background(), logger)

		errutil.HandleError(ctx, "test message", nil)
		gt.V(t, buf.Len()).Equal(0)
	})

	t.Run("log goerr values", func(t *testing.T) {
		var buf bytes.Buffer
		logger := gt.R1(logging.New("json", "info", &buf)).NoError(t)
		ctx := logging.With(context.Background(), logger)

		err := goerr.Wrap(types.ErrNotFound, "updater not found", goerr.V("updater", "lint"))
		errutil.HandleError(ctx, "Updater not found", err)

		gt.S(t, buf.String()).Contains("Updater not found")
		gt.S(t, buf.String()).Contains("lint")
	})
}
