package worker

import "sync"

// Task is a unit of deferred work.
type Task func()

// Pool runs submitted tasks on a fixed set of goroutines. Work that
// should not sit on a request path (audit logging after account
// creation) goes through here.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool starts a pool with n workers. n <= 0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{tasks: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

type pool struct {
	tasks chan Task
	wg    sync.WaitGroup
}

func (p *pool) work() {
	defer p.wg.Done()
	for t := range p.tasks {
		if t != nil {
			t()
		}
	}
}

func (p *pool) Submit(t Task) {
	p.tasks <- t
}

// Stop closes the queue and waits for in-progress tasks to finish.
func (p *pool) Stop() {
	close(p.tasks)
	p.wg.Wait()
}
