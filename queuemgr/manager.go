package queuemgr

import (
	"github.com/sttelite/queue-manager/region"
)

// Manager wraps a region.Region with structured diagnostics. It forwards
// every operation to region, logging one Debug event per call and a Warn
// event immediately before either fault hook fires, logged first so a
// terminating hook's non-return can never swallow the diagnostic.
type Manager struct {
	r      *region.Region
	hooks  region.Hooks
	logger Logger
}

// New returns a Manager over a freshly allocated Region. hooks supplies the
// host's fault collaborators (§6 of the spec); logger receives structured
// lifecycle and fault events. A nil logger is replaced with NopLogger.
func New(hooks region.Hooks, logger Logger) *Manager {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Manager{r: region.NewRegion(), hooks: wrapHooks(hooks, logger), logger: logger}
}

// wrapHooks interposes a Warn log immediately ahead of each host hook, so
// the diagnostic is emitted even if the hook terminates the process.
func wrapHooks(hooks region.Hooks, logger Logger) region.Hooks {
	oom := hooks.OnOutOfMemory
	illegal := hooks.OnIllegalOperation
	return region.Hooks{
		OnOutOfMemory: func() {
			logger.Warn("fault", Field{"kind", "out_of_memory"})
			if oom != nil {
				oom()
			}
		},
		OnIllegalOperation: func() {
			logger.Warn("fault", Field{"kind", "illegal_operation"})
			if illegal != nil {
				illegal()
			}
		},
	}
}

// CreateQueue allocates a new, empty queue.
func (m *Manager) CreateQueue() region.Handle {
	q := m.r.CreateQueue(m.hooks)
	m.logger.Debug("create_queue")
	return q
}

// DestroyQueue releases q's blocks and slot.
func (m *Manager) DestroyQueue(q region.Handle) {
	m.r.DestroyQueue(m.hooks, q)
	m.logger.Debug("destroy_queue")
}

// Enqueue appends b to q.
func (m *Manager) Enqueue(q region.Handle, b byte) {
	m.r.Enqueue(m.hooks, q, b)
	m.logger.Debug("enqueue_byte", Field{"value", b})
}

// Dequeue removes and returns the oldest byte of q.
func (m *Manager) Dequeue(q region.Handle) byte {
	b := m.r.Dequeue(m.hooks, q)
	m.logger.Debug("dequeue_byte", Field{"value", b})
	return b
}

// Verify runs a non-mutating structural scan of the underlying region.
func (m *Manager) Verify() (region.Stats, []region.Inconsistency) {
	return m.r.Verify()
}
