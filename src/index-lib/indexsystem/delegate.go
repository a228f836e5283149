package indexsystem

import (
	"sync"
	"time"

	"github.com/dreampiggy/indexstore-db/src/index-lib/model"
	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"go.uber.org/zap"
)

const _delegateQueueName = "indexsystem.async-delegate"

// asyncDelegate forwards delegate events to the wrapped Delegate serially and
// asynchronously on a dedicated worker, so collaborators can report events
// without blocking on user code. A nil wrapped delegate turns every method
// into a no-op.
type asyncDelegate struct {
	other  Delegate
	logger *zap.SugaredLogger

	events tally.Counter
	panics tally.Counter

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool
	done   sync.WaitGroup
}

func newAsyncDelegate(other Delegate, logger *zap.SugaredLogger, stats tally.Scope) *asyncDelegate {
	token := uuid.Must(uuid.NewV4())
	d := &asyncDelegate{
		other:  other,
		logger: logger.Named("async-delegate").With("queue", _delegateQueueName+"."+token.String()[:8]),
		events: stats.Counter("delegate_events"),
		panics: stats.Counter("delegate_panics"),
	}
	d.cond = sync.NewCond(&d.mu)
	d.done.Add(1)
	go d.run()
	return d
}

// dispatch appends task to the serial queue. It never blocks on user delegate
// execution. Returns false if the queue has already been closed.
func (d *asyncDelegate) dispatch(task func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return false
	}
	d.queue = append(d.queue, task)
	d.cond.Signal()
	return true
}

func (d *asyncDelegate) run() {
	defer d.done.Done()
	for {
		d.mu.Lock()
		for len(d.queue) == 0 && !d.closed {
			d.cond.Wait()
		}
		if len(d.queue) == 0 {
			// Closed and fully drained.
			d.mu.Unlock()
			return
		}
		task := d.queue[0]
		d.queue = d.queue[1:]
		d.mu.Unlock()

		d.invoke(task)
	}
}

// invoke runs one delegate callback. A panic in user code must not take down
// the worker; subsequent events are still delivered.
func (d *asyncDelegate) invoke(task func()) {
	defer func() {
		if r := recover(); r != nil {
			d.panics.Inc(1)
			d.logger.Errorw("delegate callback panicked", "panic", r)
		}
	}()
	task()
}

// drain submits a no-op task and waits for it to execute, establishing a
// happens-before barrier with every previously dispatched event. For testing
// and PollForUnitChangesAndWait.
func (d *asyncDelegate) drain() {
	barrier := make(chan struct{})
	if !d.dispatch(func() { close(barrier) }) {
		return
	}
	<-barrier
}

// close stops accepting new events and joins the worker after it has
// delivered everything already enqueued.
func (d *asyncDelegate) close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.done.Wait()
		return
	}
	d.closed = true
	d.cond.Signal()
	d.mu.Unlock()
	d.done.Wait()
}

func (d *asyncDelegate) ProcessingAddedPending(numActions int) {
	if d.other == nil {
		return
	}
	d.events.Inc(1)
	other := d.other
	d.dispatch(func() {
		other.ProcessingAddedPending(numActions)
	})
}

func (d *asyncDelegate) ProcessingCompleted(numActions int) {
	if d.other == nil {
		return
	}
	d.events.Inc(1)
	other := d.other
	d.dispatch(func() {
		other.ProcessingCompleted(numActions)
	})
}

func (d *asyncDelegate) ProcessedStoreUnit(unitInfo model.StoreUnitInfo) {
	if d.other == nil {
		return
	}
	d.events.Inc(1)
	other := d.other
	d.dispatch(func() {
		other.ProcessedStoreUnit(unitInfo)
	})
}

// UnitIsOutOfDate reports a stale unit. With synchronous set, the wrapped
// delegate runs inline on the calling thread and this method does not return
// until it does; the reporter uses this when it needs immediate
// acknowledgement.
func (d *asyncDelegate) UnitIsOutOfDate(unitInfo model.StoreUnitInfo, outOfDateModTime time.Time, hint model.OutOfDateTriggerHint, synchronous bool) {
	if d.other == nil {
		return
	}
	d.events.Inc(1)

	if synchronous {
		d.other.UnitIsOutOfDate(unitInfo, outOfDateModTime, hint, true)
		return
	}

	other := d.other
	d.dispatch(func() {
		other.UnitIsOutOfDate(unitInfo, outOfDateModTime, hint, false)
	})
}

var _ Delegate = (*asyncDelegate)(nil)
