package uploads

import (
	"sync"

	"github.com/google/uuid"
)

// Tracker is the in-memory registry of in-flight upload tasks, keyed by the
// task id the client polls with.
type Tracker struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]*Task
}

func NewTracker() *Tracker {
	return &Tracker{tasks: make(map[uuid.UUID]*Task)}
}

func (tr *Tracker) Begin(taskID, ownerID uuid.UUID, fileName string) *Task {
	t := newTask(taskID, ownerID, fileName)

	tr.mu.Lock()
	tr.tasks[taskID] = t
	tr.mu.Unlock()

	return t
}

// Status reports a task's current state. A terminal task is forgotten after
// the report, so the next poll sees no task — the idle state.
func (tr *Tracker) Status(taskID uuid.UUID) (Status, bool) {
	tr.mu.RLock()
	t, ok := tr.tasks[taskID]
	tr.mu.RUnlock()
	if !ok {
		return Status{}, false
	}

	st := t.Status()
	if t.terminal() {
		tr.mu.Lock()
		delete(tr.tasks, taskID)
		tr.mu.Unlock()
	}
	return st, true
}
