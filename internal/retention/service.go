// Package retention periodically purges the job registry and deletes
// stale generated files from the work directory.
package retention

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/jobs"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/pkg/debug"
)

// sweepExtensions are the file types jobs generate into the work
// directory. Other files are never touched.
var sweepExtensions = []string{".txt", ".lst", ".cap", ".csv", ".pmk"}

// Service sweeps the registry and the work directory on a fixed
// interval.
type Service struct {
	registry      *jobs.Registry
	workDir       string
	fileRetention time.Duration
	interval      time.Duration

	ticker *time.Ticker
	stop   chan struct{}
	wg     sync.WaitGroup

	mu        sync.Mutex
	sweeping  bool
	lastSweep time.Time
}

// NewService creates a retention service for a registry and work
// directory.
func NewService(registry *jobs.Registry, workDir string, fileRetention, interval time.Duration) *Service {
	return &Service{
		registry:      registry,
		workDir:       workDir,
		fileRetention: fileRetention,
		interval:      interval,
		stop:          make(chan struct{}),
	}
}

// Start begins periodic sweeping until Stop is called or the context
// ends.
func (s *Service) Start(ctx context.Context) {
	s.ticker = time.NewTicker(s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-ctx.Done():
				debug.Info("Retention service stopping: context cancelled")
				return
			case <-s.stop:
				debug.Info("Retention service stopping")
				return
			case <-s.ticker.C:
				s.SweepNow()
			}
		}
	}()

	debug.Info("Retention service started: interval %s, file retention %s", s.interval, s.fileRetention)
}

// Stop halts the periodic sweep.
func (s *Service) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	close(s.stop)
	s.wg.Wait()
}

// SweepNow runs one sweep synchronously. Overlapping sweeps are
// skipped.
func (s *Service) SweepNow() {
	s.mu.Lock()
	if s.sweeping {
		s.mu.Unlock()
		debug.Debug("Sweep already running, skipping")
		return
	}
	s.sweeping = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.sweeping = false
		s.lastSweep = time.Now()
		s.mu.Unlock()
	}()

	purged := s.registry.Sweep()
	deleted := s.sweepFiles()
	if purged > 0 || deleted > 0 {
		debug.Info("Sweep: purged %d jobs, deleted %d files", purged, deleted)
	}
}

// LastSweep returns when the last sweep finished.
func (s *Service) LastSweep() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSweep
}

// sweepFiles deletes generated files older than the file retention
// period.
func (s *Service) sweepFiles() int {
	if s.workDir == "" {
		return 0
	}

	cutoff := time.Now().Add(-s.fileRetention)
	deleted := 0

	err := filepath.Walk(s.workDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			debug.Debug("Error accessing %s: %v", path, err)
			return nil
		}
		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(info.Name()))
		matched := false
		for _, valid := range sweepExtensions {
			if ext == valid {
				matched = true
				break
			}
		}
		if !matched || info.ModTime().After(cutoff) {
			return nil
		}

		if err := os.Remove(path); err != nil {
			debug.Error("Failed to delete %s: %v", path, err)
		} else {
			debug.Debug("Deleted stale file %s (age %s)", path, time.Since(info.ModTime()))
			deleted++
		}
		return nil
	})
	if err != nil {
		debug.Error("Error walking work directory: %v", err)
	}

	return deleted
}
