package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repostream/pkg/domain/interfaces"
	"github.com/m-mizutani/repostream/pkg/domain/model"
	"github.com/m-mizutani/repostream/pkg/utils/logging"
)

const defaultQueueSize = 64

type updateJob struct {
	ctx   context.Context
	input *model.UpdateRepoInput
}

// updateWorker runs webhook-triggered updates one at a time in arrival order.
type updateWorker struct {
	uc    interfaces.UseCase
	queue chan updateJob
	done  chan struct{}

	abortCtx context.Context
	abort    context.CancelFunc

	mutex  sync.Mutex
	closed bool
}

func newUpdateWorker(uc interfaces.UseCase, queueSize int) *updateWorker {
	if queueSize < 1 {
		queueSize = 1
	}
	abortCtx, abort := context.WithCancel(context.Background())
	w := &updateWorker{
		uc:       uc,
		queue:    make(chan updateJob, queueSize),
		done:     make(chan struct{}),
		abortCtx: abortCtx,
		abort:    abort,
	}
	go w.run()
	return w
}

func (x *updateWorker) run() {
	defer close(x.done)

	for job := range x.queue {
		if x.abortCtx.Err() != nil {
			logging.From(job.ctx).Warn("Drop queued update on shutdown", slog.String("repo", job.input.Repo.FullName()))
			continue
		}

		ctx, cancel := context.WithCancel(job.ctx)
		stop := context.AfterFunc(x.abortCtx, cancel)
		runUpdateRepository(ctx, x.uc, job.input)
		stop()
		cancel()
	}
}

// enqueue returns false when the queue is full or the worker is shut down.
func (x *updateWorker) enqueue(ctx context.Context, input *model.UpdateRepoInput) bool {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	if x.closed {
		return false
	}

	select {
	case x.queue <- updateJob{ctx: ctx, input: input}:
		return true
	default:
		return false
	}
}

// shutdown stops accepting jobs and waits for queued and running updates. When ctx expires the
// running update is cancelled so that its clone is still cleaned up, and the rest are dropped.
func (x *updateWorker) shutdown(ctx context.Context) error {
	x.mutex.Lock()
	if !x.closed {
		x.closed = true
		close(x.queue)
	}
	x.mutex.Unlock()

	select {
	case <-x.done:
		return nil
	case <-ctx.Done():
		x.abort()
		<-x.done
		return goerr.Wrap(ctx.Err(), "updates were aborted by shutdown timeout")
	}
}
