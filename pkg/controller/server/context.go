package server

import (
	"context"

	"github.com/m-mizutani/repostream/pkg/utils/logging"
)

// DetachContext returns a context that outlives the webhook request. Logger, request ID and
// time function of ctx are carried over so that a background update is logged with the ID of
// the delivery that triggered it.
func DetachContext(ctx context.Context) context.Context {
	detached := logging.With(context.Background(), logging.From(ctx))
	return logging.InheritContextValues(detached, ctx)
}
