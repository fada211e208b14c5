package jobs

import (
	"fmt"
	"sync"
	"time"

	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/parser"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/pkg/debug"
)

// Registry is the concurrent job table. Supervisors write their own
// entries, status queries read snapshots, and the retention sweep
// removes expired terminal jobs. All access goes through the mutex so
// no reader ever sees a torn Job.
type Registry struct {
	mu        sync.RWMutex
	jobs      map[string]*Job
	retention time.Duration
}

// NewRegistry creates a registry purging terminal jobs after the given
// retention window.
func NewRegistry(retention time.Duration) *Registry {
	return &Registry{
		jobs:      make(map[string]*Job),
		retention: retention,
	}
}

// Insert adds a new job. Ids are unique: inserting a duplicate fails.
func (r *Registry) Insert(job *Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[job.ID]; exists {
		return fmt.Errorf("job %s already registered", job.ID)
	}
	r.jobs[job.ID] = job
	return nil
}

// Get returns a snapshot of one job.
func (r *Registry) Get(id string) (Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, exists := r.jobs[id]
	if !exists {
		return Job{}, false
	}
	return job.snapshot(), true
}

// SetStatus applies a forward-only status transition. It refuses to
// move a job backward or out of a terminal state and reports whether
// the transition was applied.
func (r *Registry) SetStatus(id string, status Status, reason string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, exists := r.jobs[id]
	if !exists {
		return false
	}
	if job.Status.Terminal() || statusRank[status] <= statusRank[job.Status] {
		return false
	}

	job.Status = status
	job.Reason = reason
	job.UpdatedAt = time.Now()
	return true
}

// RecordProgress stores the latest event for a job and touches its
// update time. Key-found events also populate the job result.
func (r *Registry) RecordProgress(id string, ev parser.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, exists := r.jobs[id]
	if !exists {
		return
	}
	event := ev
	job.Progress = &event
	job.UpdatedAt = time.Now()
	if ev.Kind == parser.KindKeyFound && ev.Value != "" {
		job.Result = ev.Value
	}
}

// Update applies an arbitrary mutation under the lock. The update time
// is left to the caller; tests use this to backdate entries.
func (r *Registry) Update(id string, fn func(*Job)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, exists := r.jobs[id]
	if !exists {
		return false
	}
	fn(job)
	return true
}

// Active returns snapshots of all non-terminal jobs.
func (r *Registry) Active() []Job {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active []Job
	for _, job := range r.jobs {
		if !job.Status.Terminal() {
			active = append(active, job.snapshot())
		}
	}
	return active
}

// Len returns the number of registered jobs, terminal included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs)
}

// Sweep removes terminal jobs whose last update is older than the
// retention window and returns how many were removed. Active jobs are
// never touched.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-r.retention)
	removed := 0
	for id, job := range r.jobs {
		if job.Status.Terminal() && job.UpdatedAt.Before(cutoff) {
			delete(r.jobs, id)
			removed++
		}
	}
	if removed > 0 {
		debug.Info("Swept %d expired terminal jobs", removed)
	}
	return removed
}
