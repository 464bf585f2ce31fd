// Package uploads implements the upload lifecycle:
//
//	uploading --transport error--> failed
//	uploading --transfer done----> committing
//	committing --record write----> done (or failed with the object orphaned)
//
// "Idle" is the absence of a task: a task is created when a transfer starts
// and forgotten once its terminal state has been observed, which resets the
// upload affordance for the next file.
package uploads

import (
	"sync"

	"github.com/google/uuid"
)

type State string

const (
	StateUploading  State = "uploading"
	StateCommitting State = "committing"
	StateDone       State = "done"
	StateFailed     State = "failed"
)

type Status struct {
	TaskID   uuid.UUID `json:"task_id"`
	FileName string    `json:"file_name"`
	State    State     `json:"state"`
	Progress int       `json:"progress"`
	Error    string    `json:"error,omitempty"`
}

type Task struct {
	id       uuid.UUID
	ownerID  uuid.UUID
	fileName string

	mu       sync.Mutex
	state    State
	progress int
	errMsg   string
}

func newTask(id, ownerID uuid.UUID, fileName string) *Task {
	return &Task{
		id:       id,
		ownerID:  ownerID,
		fileName: fileName,
		state:    StateUploading,
	}
}

// SetProgress records a percentage in [0,100]. Values below the maximum seen
// so far are dropped: the transport does not promise in-order progress
// events, the observer contract does.
func (t *Task) SetProgress(pct int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateUploading {
		return
	}
	if pct > t.progress {
		t.progress = pct
	}
}

// ToCommitting marks the transfer complete; progress is pinned to 100 so the
// final reported value before success is always 100, a 0-byte transfer
// included.
func (t *Task) ToCommitting() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateCommitting
	t.progress = 100
}

func (t *Task) Done() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateDone
}

func (t *Task) Fail(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateFailed
	t.errMsg = msg
}

func (t *Task) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Status{
		TaskID:   t.id,
		FileName: t.fileName,
		State:    t.state,
		Progress: t.progress,
		Error:    t.errMsg,
	}
}

func (t *Task) terminal() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == StateDone || t.state == StateFailed
}
