package jobs

import (
	"fmt"
	"sync"
	"time"

	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/command"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/parser"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/process"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/pkg/debug"
)

// Supervisor drives one job: it is the sole owner of the process handle
// from launch until the terminal transition. The monitor loop reads
// output lines, feeds the parser, and records events; a per-job timeout
// and an explicit stop request both escalate terminate -> grace ->
// force-kill.
type Supervisor struct {
	registry *Registry
	jobID    string
	family   command.Family
	handle   *process.Handle

	timeout time.Duration
	grace   time.Duration
	stream  bool
	onEvent EventFunc

	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewSupervisor wires a supervisor for an already-launched handle.
// onEvent may be nil.
func NewSupervisor(registry *Registry, jobID string, spec command.Spec, handle *process.Handle, grace time.Duration, onEvent EventFunc) *Supervisor {
	return &Supervisor{
		registry: registry,
		jobID:    jobID,
		family:   command.Family(spec.Tool),
		handle:   handle,
		timeout:  spec.Timeout,
		grace:    grace,
		stream:   spec.Stream,
		onEvent:  onEvent,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run executes the monitor loop. Callers run it on its own goroutine;
// Done is closed when the job has reached a terminal state and the
// process handle is released.
func (s *Supervisor) Run() {
	defer close(s.done)

	s.registry.SetStatus(s.jobID, StatusRunning, "")

	var timeoutC <-chan time.Time
	if s.timeout > 0 {
		timer := time.NewTimer(s.timeout)
		defer timer.Stop()
		timeoutC = timer.C
	}

	var buffered []process.Line
	lines := s.handle.Lines()
	stopC := s.stopCh

	for lines != nil {
		select {
		case line, ok := <-lines:
			if !ok {
				lines = nil
				continue
			}
			if s.stream {
				s.dispatchLine(line)
			} else {
				buffered = append(buffered, line)
			}

		case <-timeoutC:
			timeoutC = nil
			s.interrupt(StatusTimedOut, "job timeout exceeded")

		case <-stopC:
			stopC = nil
			s.interrupt(StatusStopped, "stopped by request")
		}
	}

	code := s.handle.Wait()

	// Captured-mode jobs are parsed after exit, in line order.
	for _, line := range buffered {
		s.dispatchLine(line)
	}

	s.finish(code)
}

// Stop requests termination. It reports false when the job is already
// terminal; stopping a finished job is a no-op, not an error.
func (s *Supervisor) Stop() bool {
	job, ok := s.registry.Get(s.jobID)
	if !ok || job.Status.Terminal() {
		return false
	}
	s.stopOnce.Do(func() { close(s.stopCh) })
	return true
}

// Done is closed once the job is terminal and the handle released.
func (s *Supervisor) Done() <-chan struct{} {
	return s.done
}

// interrupt applies a terminal status and begins the terminate ->
// grace -> kill escalation. The monitor loop keeps draining output
// while the child winds down.
func (s *Supervisor) interrupt(status Status, reason string) {
	if !s.registry.SetStatus(s.jobID, status, reason) {
		return
	}
	debug.Info("Job %s: %s", s.jobID, reason)

	if status == StatusTimedOut {
		s.dispatch(parser.TimedOut())
	}

	if err := s.handle.Terminate(); err != nil {
		debug.Warning("Job %s: terminate failed: %v", s.jobID, err)
	}
	go func(handle *process.Handle, grace time.Duration) {
		select {
		case <-handle.Exited():
		case <-time.After(grace):
			debug.Warning("Job %s: grace period expired, force killing", s.jobID)
			if err := handle.Kill(); err != nil {
				debug.Error("Job %s: kill failed: %v", s.jobID, err)
			}
		}
	}(s.handle, s.grace)
}

// finish applies the exit-based terminal transition. It is a no-op
// when a stop or timeout already made the job terminal.
func (s *Supervisor) finish(code int) {
	exit := parser.Exit(s.family, code)

	status := StatusCompleted
	reason := ""
	if !exit.Success {
		status = StatusFailed
		reason = fmt.Sprintf("process exited with code %d", code)
	}

	if !s.registry.SetStatus(s.jobID, status, reason) {
		return
	}

	s.registry.Update(s.jobID, func(job *Job) {
		job.UpdatedAt = time.Now()
		if status == StatusFailed {
			job.ErrorTail = s.handle.StderrTail()
		} else if job.Result == "" && job.Spec.ResultFile != "" {
			job.Result = job.Spec.ResultFile
		}
	})
	s.dispatch(exit)
	debug.Info("Job %s finished: %s (exit %d)", s.jobID, status, code)
}

func (s *Supervisor) dispatchLine(line process.Line) {
	ev, ok := parser.Parse(s.family, line.Text, line.Stderr)
	if !ok {
		return
	}
	s.registry.RecordProgress(s.jobID, ev)
	s.dispatch(ev)
}

func (s *Supervisor) dispatch(ev parser.Event) {
	if s.onEvent != nil {
		s.onEvent(s.jobID, ev)
	}
}
