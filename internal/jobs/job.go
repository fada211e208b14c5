// Package jobs holds the job lifecycle: the job model, the concurrent
// registry, and the per-job supervisor that owns the child process.
package jobs

import (
	"time"

	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/command"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/parser"
	"github.com/google/uuid"
)

// Status is a job lifecycle state. Transitions run forward only:
// pending -> running -> one terminal state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusStopped   Status = "stopped"
	StatusTimedOut  Status = "timed_out"
)

// statusRank orders states so backward transitions can be refused.
var statusRank = map[Status]int{
	StatusPending:   0,
	StatusRunning:   1,
	StatusCompleted: 2,
	StatusFailed:    2,
	StatusStopped:   2,
	StatusTimedOut:  2,
}

// Terminal reports whether s is final.
func (s Status) Terminal() bool {
	return statusRank[s] == 2
}

// Job is one supervised invocation of an external tool.
type Job struct {
	ID     string
	Family command.Family
	Spec   command.Spec

	Status Status
	// Reason explains a failed, stopped or timed_out terminal state.
	Reason string

	StartedAt time.Time
	UpdatedAt time.Time

	// Progress is the latest parsed event, if any.
	Progress *parser.Event
	// Result holds a recovered value (key, passphrase, MAC) or a
	// produced file path once the job completes.
	Result string
	// ErrorTail is the last few stderr lines of a failed job.
	ErrorTail []string
}

// snapshot returns a copy safe to hand outside the registry lock.
func (j *Job) snapshot() Job {
	copied := *j
	if j.Progress != nil {
		ev := *j.Progress
		copied.Progress = &ev
	}
	if j.ErrorTail != nil {
		copied.ErrorTail = append([]string(nil), j.ErrorTail...)
	}
	return copied
}

// NewID generates a registry-unique job id: the family tag plus a UUID
// discriminator, so two jobs started within the same clock tick can
// never collide.
func NewID(family command.Family) string {
	return string(family) + "-" + uuid.New().String()
}

// EventFunc consumes progress events for a job. Implementations must
// not block; events are delivered in read order from the supervisor
// goroutine.
type EventFunc func(jobID string, ev parser.Event)
