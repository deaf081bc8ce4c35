package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Task represents a unit of work executed by the pool. The context is
// cancelled when the pool stops.
type Task func(ctx context.Context)

// Pool runs background tasks off the request path.
type Pool interface {
	Submit(Task) bool
	Stop()
}

// NewPool creates a pool with n workers and a queue of size queue.
// n<=0 defaults to 1, queue<0 defaults to 0; with no queue a task is only
// accepted when a worker is idle.
func NewPool(n, queue int, logger *zap.Logger) Pool {
	if n <= 0 {
		n = 1
	}
	if queue < 0 {
		queue = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &pool{jobs: make(chan Task, queue), ctx: ctx, cancel: cancel, logger: logger}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.run(job)
			}
		}()
	}
	return p
}

type pool struct {
	mu      sync.RWMutex
	stopped bool
	jobs    chan Task
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	logger  *zap.Logger
}

func (p *pool) run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("worker task panicked", zap.Any("panic", r))
		}
	}()
	job(p.ctx)
}

// Submit queues t without blocking and reports whether it was accepted.
// It returns false when the queue is full or once Stop has been called.
func (p *pool) Submit(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	select {
	case p.jobs <- t:
		return true
	default:
		p.logger.Warn("worker queue full, task dropped")
		return false
	}
}

// Stop waits for queued tasks to finish, then cancels the task context.
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
	p.cancel()
}
