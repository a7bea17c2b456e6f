package screen

import (
	"context"
	"log"
	"sync"
)

type job struct {
	name string
	run  func(ctx context.Context) error
}

// outbox runs jobs one at a time in push order. It never blocks the pusher.
type outbox struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []job
	closed  bool
	pending sync.WaitGroup
	done    chan struct{} // closed when the worker exits
}

func newOutbox() *outbox {
	o := &outbox{done: make(chan struct{})}
	o.cond = sync.NewCond(&o.mu)
	go o.run()
	return o
}

func (o *outbox) push(j job) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return false
	}
	o.pending.Add(1)
	o.queue = append(o.queue, j)
	o.cond.Signal()
	return true
}

func (o *outbox) run() {
	defer close(o.done)
	for {
		o.mu.Lock()
		for len(o.queue) == 0 && !o.closed {
			o.cond.Wait()
		}
		if len(o.queue) == 0 {
			// closed and drained
			o.mu.Unlock()
			return
		}
		j := o.queue[0]
		o.queue[0] = job{}
		o.queue = o.queue[1:]
		o.mu.Unlock()

		if err := j.run(context.Background()); err != nil {
			log.Printf("⚠️ %s: %v", j.name, err)
		}
		o.pending.Done()
	}
}

func (o *outbox) wait() {
	o.pending.Wait()
}

func (o *outbox) close() {
	o.mu.Lock()
	o.closed = true
	o.cond.Broadcast()
	o.mu.Unlock()
}
