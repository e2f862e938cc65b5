package osier

// ScheduledTask is one queued piece of deferred work. Cancel before the task
// runs and it never will.
type ScheduledTask struct {
	fn        func()
	cancelled bool
	done      bool
}

// Cancel prevents the task from running. Cancelling an already-run task does
// nothing.
func (t *ScheduledTask) Cancel() {
	t.cancelled = true
}

// Cancelled reports whether Cancel was called before the task ran.
func (t *ScheduledTask) Cancelled() bool {
	return t.cancelled
}

// Done reports whether the task has run.
func (t *ScheduledTask) Done() bool {
	return t.done
}

// Scheduler defers work to the host's next scheduler turn. Transitions use
// it to start entering animations after the current render pass has finished
// its layout and measure work.
type Scheduler interface {
	Schedule(fn func()) *ScheduledTask
}

// TurnQueue is the in-process Scheduler. Tasks queued during a turn are
// consumed on the next RunTurn, never the current one, so work scheduled
// from inside a running task still lands a full turn later. Like the rest of
// the package it is single-threaded: queue and pump from the same goroutine,
// typically the host's frame loop.
type TurnQueue struct {
	tasks []*ScheduledTask
}

// NewTurnQueue returns an empty queue.
func NewTurnQueue() *TurnQueue {
	return &TurnQueue{}
}

// Schedule queues fn for the next turn and returns its task handle.
func (q *TurnQueue) Schedule(fn func()) *ScheduledTask {
	if fn == nil {
		panic("osier: Schedule requires a function")
	}
	task := &ScheduledTask{fn: fn}
	q.tasks = append(q.tasks, task)
	return task
}

// Len returns the number of queued tasks, cancelled ones included.
func (q *TurnQueue) Len() int {
	return len(q.tasks)
}

// RunTurn runs every task queued before this call and reports how many ran.
// Tasks run in the order they were scheduled; cancelled tasks are skipped.
// Tasks scheduled by a running task wait for the next turn.
func (q *TurnQueue) RunTurn() int {
	due := q.tasks
	q.tasks = nil

	ran := 0
	for _, task := range due {
		if task.cancelled {
			continue
		}
		task.done = true
		task.fn()
		ran++
	}
	return ran
}

// defaultScheduler backs transitions that were not given their own queue.
// Hosts pump it once per frame; ebitenview's Stage does this automatically.
var defaultScheduler = NewTurnQueue()

// DefaultScheduler returns the package-wide turn queue.
func DefaultScheduler() *TurnQueue {
	return defaultScheduler
}
