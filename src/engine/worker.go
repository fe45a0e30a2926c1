package engine

import (
	"log"
	"sync"
)

// Task is the work for the Worker, the returned message (if not nil) is sent back to the Game
type Task func() Message

// dispatcher accepts the tasks without blocking
type dispatcher interface {
	Submit(t Task)
}

// Worker executes the submitted tasks one by one in FIFO order
type Worker struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []Task
	stopped bool
	send    func(Message)
	logger  *log.Logger
}

// NewWorker creates the Worker, send is called with the result of each task
func NewWorker(send func(Message), logger *log.Logger) *Worker {
	w := &Worker{send: send, logger: logger}
	w.cond = sync.NewCond(&w.mu)
	return w
}

// Submit queues the task, returns immediately
func (w *Worker) Submit(t Task) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		w.logger.Panicln("worker: the task is submitted after stop")
	}
	w.queue = append(w.queue, t)
	w.cond.Signal()
}

// Stop asks the worker to exit, the queued tasks are not executed
func (w *Worker) Stop() {
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()
	w.cond.Broadcast()
}

// Pending returns the count of queued tasks
func (w *Worker) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.queue)
}

// Run is the worker loop, should start as a goroutine
// returns when Stop is called
func (w *Worker) Run() error {
	for {
		t, ok := w.next()
		if !ok {
			return nil
		}
		if msg := t(); msg != nil {
			w.send(msg)
		}
	}
}

// next waits for the task, stop has the priority over the queued tasks
func (w *Worker) next() (Task, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for !w.stopped && len(w.queue) == 0 {
		w.cond.Wait()
	}
	if w.stopped {
		return nil, false
	}
	t := w.queue[0]
	w.queue[0] = nil
	w.queue = w.queue[1:]
	return t, true
}
