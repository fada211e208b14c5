// Package orchestrator composes the probe, command builders, launcher,
// parser and job registry into the facade external callers use:
// start / status / stop / list-active / sweep.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/command"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/config"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/jobs"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/metrics"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/process"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/tools"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/pkg/debug"
)

// ErrToolUnavailable marks a start request for a tool whose probe
// failed. Refused before any process is spawned.
var ErrToolUnavailable = errors.New("tool unavailable")

// Snapshot is a job snapshot enriched with a host load sample.
type Snapshot struct {
	jobs.Job
	Host *metrics.SystemMetrics
}

// Controller is the orchestration facade. Tool availability is probed
// once at construction and never refreshed; build a new controller to
// re-probe.
type Controller struct {
	cfg      *config.Config
	avail    tools.Availability
	registry *jobs.Registry
	sampler  *metrics.Collector

	mu          sync.Mutex
	supervisors map[string]*jobs.Supervisor
}

// New builds a controller, probing the full tool set under the
// configured timeout.
func New(cfg *config.Config) *Controller {
	avail := tools.ProbeAll(context.Background(), tools.Known, cfg.ProbeTimeout, cfg.ToolPaths)
	for name, ok := range avail {
		if !ok {
			debug.Warning("Tool %s is not available", name)
		}
	}

	return &Controller{
		cfg:         cfg,
		avail:       avail,
		registry:    jobs.NewRegistry(cfg.RetentionWindow),
		sampler:     metrics.New(),
		supervisors: make(map[string]*jobs.Supervisor),
	}
}

// Registry exposes the job table for the retention service.
func (c *Controller) Registry() *jobs.Registry {
	return c.registry
}

// Available reports the cached probe result for a tool.
func (c *Controller) Available(tool string) bool {
	return c.avail.Available(tool)
}

// Availability returns a copy of the probe cache.
func (c *Controller) Availability() tools.Availability {
	copied := make(tools.Availability, len(c.avail))
	for name, ok := range c.avail {
		copied[name] = ok
	}
	return copied
}

// Start validates, launches and registers a job, returning its id
// without waiting for the job to progress. Availability, option and
// launch errors are returned synchronously and leave no job behind;
// everything after a successful launch is recorded asynchronously on
// the job. onEvent may be nil.
func (c *Controller) Start(builder command.Builder, onEvent jobs.EventFunc) (string, error) {
	spec, err := builder.Build()
	if err != nil {
		return "", err
	}
	if spec.Timeout == 0 {
		spec.Timeout = c.cfg.JobTimeout
	}

	if !c.avail.Available(spec.Tool) {
		return "", fmt.Errorf("%w: %s", ErrToolUnavailable, spec.Tool)
	}

	handle, err := process.Launch(spec, c.cfg.ToolPath(spec.Tool))
	if err != nil {
		return "", err
	}

	id := jobs.NewID(builder.Family())
	now := time.Now()
	job := &jobs.Job{
		ID:        id,
		Family:    builder.Family(),
		Spec:      spec,
		Status:    jobs.StatusPending,
		StartedAt: now,
		UpdatedAt: now,
	}
	if err := c.registry.Insert(job); err != nil {
		// Registry ids are UUID-backed; a collision here means
		// something is deeply wrong. Don't leak the child.
		handle.Kill()
		return "", err
	}

	supervisor := jobs.NewSupervisor(c.registry, id, spec, handle, c.cfg.GracePeriod, onEvent)
	c.mu.Lock()
	c.supervisors[id] = supervisor
	c.mu.Unlock()

	go func() {
		supervisor.Run()
		c.mu.Lock()
		delete(c.supervisors, id)
		c.mu.Unlock()
	}()

	debug.Info("Started job %s: %s %v", id, spec.Tool, spec.Args)
	return id, nil
}

// Status returns a snapshot of one job, stamped with current host
// load. ok is false for unknown ids.
func (c *Controller) Status(id string) (Snapshot, bool) {
	job, ok := c.registry.Get(id)
	if !ok {
		return Snapshot{}, false
	}

	snap := Snapshot{Job: job}
	if sample, err := c.sampler.Collect(); err == nil {
		snap.Host = sample
	} else {
		debug.Debug("Host metrics unavailable: %v", err)
	}
	return snap, true
}

// Stop requests termination of a job. It returns true when the job is
// known — including jobs that already finished, for which it is a
// no-op — and false for unknown ids.
func (c *Controller) Stop(id string) bool {
	c.mu.Lock()
	supervisor, active := c.supervisors[id]
	c.mu.Unlock()

	if active {
		supervisor.Stop()
		return true
	}

	// No supervisor: either unknown, or already terminal ("already
	// finished").
	_, known := c.registry.Get(id)
	return known
}

// ListActive returns snapshots of all non-terminal jobs.
func (c *Controller) ListActive() []jobs.Job {
	return c.registry.Active()
}

// Sweep removes expired terminal jobs on demand and reports how many
// were purged.
func (c *Controller) Sweep() int {
	return c.registry.Sweep()
}

// Close stops every active job and waits for the supervisors to
// release their handles, bounded by the context.
func (c *Controller) Close(ctx context.Context) error {
	c.mu.Lock()
	active := make([]*jobs.Supervisor, 0, len(c.supervisors))
	for _, supervisor := range c.supervisors {
		active = append(active, supervisor)
	}
	c.mu.Unlock()

	for _, supervisor := range active {
		supervisor.Stop()
	}
	for _, supervisor := range active {
		select {
		case <-supervisor.Done():
		case <-ctx.Done():
			return fmt.Errorf("controller shutdown: %w", ctx.Err())
		}
	}
	debug.Info("Controller closed, %d jobs stopped", len(active))
	return nil
}
