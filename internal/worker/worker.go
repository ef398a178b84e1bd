package worker

import "sync"

// Task is a unit of background work, e.g. a cache invalidation after
// a committed state change.
type Task func()

// Pool runs tasks off the request path. Submit never blocks: when the
// queue is full the task is dropped, which is acceptable for the
// best-effort side effects routed through here.
type Pool interface {
	Submit(Task) bool
	Stop()
}

// NewPool creates a pool with n workers and a queue of depth queue.
// Non-positive arguments fall back to 1 worker / depth 16.
func NewPool(n, queue int) Pool {
	if n <= 0 {
		n = 1
	}
	if queue <= 0 {
		queue = 16
	}
	p := &pool{jobs: make(chan Task, queue)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs    chan Task
	wg      sync.WaitGroup
	mu      sync.Mutex
	stopped bool
}

func (p *pool) Submit(t Task) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return false
	}
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

func (p *pool) Stop() {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.jobs)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
