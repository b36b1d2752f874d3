package service

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rickm/huffzip"
)

// Status is the lifecycle state of an operation record.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Progress is a point-in-time snapshot of an operation.
type Progress struct {
	OperationID string
	FileName    string
	Status      Status
	Phase       string
	Percent     int
	TotalBytes  int
	StartedAt   time.Time
	UpdatedAt   time.Time
	Error       string
}

// Done reports whether the operation reached a terminal state.
func (p Progress) Done() bool {
	return p.Status == StatusCompleted || p.Status == StatusFailed
}

// operation is one registry entry. The codec's progress callback and
// registry readers may touch it concurrently, hence the mutex.
type operation struct {
	mu       sync.Mutex
	progress Progress
	result   *Result
}

// observe is handed to the codec as its progress sink.
func (op *operation) observe(phase huffzip.Phase, percent int) {
	op.mu.Lock()
	defer op.mu.Unlock()
	if op.progress.Done() {
		return
	}
	op.progress.Phase = string(phase)
	op.progress.Percent = percent
	op.progress.UpdatedAt = time.Now()
}

func (op *operation) complete(res Result) {
	op.mu.Lock()
	defer op.mu.Unlock()
	op.progress.Status = StatusCompleted
	op.progress.Phase = "completed"
	op.progress.Percent = 100
	op.progress.UpdatedAt = time.Now()
	op.result = &res
}

func (op *operation) fail(res Result) {
	op.mu.Lock()
	defer op.mu.Unlock()
	op.progress.Status = StatusFailed
	op.progress.Phase = "failed"
	op.progress.Error = res.Err.Error()
	op.progress.UpdatedAt = time.Now()
	op.result = &res
}

// registry is a bounded concurrent store of operation records keyed by
// operation id. The LRU bound keeps abandoned records from accumulating
// without limit; explicit removal remains the expected path.
type registry struct {
	ops *lru.Cache[string, *operation]
}

func newRegistry(capacity int) *registry {
	ops, err := lru.New[string, *operation](capacity)
	if err != nil {
		// lru.New only fails for non-positive sizes, which Service guards
		panic(err)
	}
	return &registry{ops: ops}
}

func (r *registry) create(id, fileName string, totalBytes int) *operation {
	now := time.Now()
	op := &operation{
		progress: Progress{
			OperationID: id,
			FileName:    fileName,
			Status:      StatusRunning,
			Phase:       "queued",
			TotalBytes:  totalBytes,
			StartedAt:   now,
			UpdatedAt:   now,
		},
	}
	r.ops.Add(id, op)
	return op
}

func (r *registry) progress(id string) (Progress, bool) {
	op, ok := r.ops.Get(id)
	if !ok {
		return Progress{}, false
	}
	op.mu.Lock()
	defer op.mu.Unlock()
	return op.progress, true
}

func (r *registry) result(id string) (Result, bool) {
	op, ok := r.ops.Get(id)
	if !ok {
		return Result{}, false
	}
	op.mu.Lock()
	defer op.mu.Unlock()
	if op.result == nil {
		return Result{}, false
	}
	return *op.result, true
}

func (r *registry) remove(id string) {
	r.ops.Remove(id)
}
