package jobs

import (
	"strings"
	"testing"
	"time"

	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/command"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJob(id string) *Job {
	now := time.Now()
	return &Job{
		ID:        id,
		Family:    command.FamilyDictionary,
		Status:    StatusPending,
		StartedAt: now,
		UpdatedAt: now,
	}
}

func TestInsertAndGet(t *testing.T) {
	r := NewRegistry(300 * time.Second)
	require.NoError(t, r.Insert(newTestJob("job-1")))

	job, ok := r.Get("job-1")
	require.True(t, ok)
	assert.Equal(t, StatusPending, job.Status)

	_, ok = r.Get("job-2")
	assert.False(t, ok)
}

func TestInsertDuplicateFails(t *testing.T) {
	r := NewRegistry(300 * time.Second)
	require.NoError(t, r.Insert(newTestJob("job-1")))
	assert.Error(t, r.Insert(newTestJob("job-1")))
}

func TestStatusTransitionsForwardOnly(t *testing.T) {
	r := NewRegistry(300 * time.Second)
	require.NoError(t, r.Insert(newTestJob("job-1")))

	assert.True(t, r.SetStatus("job-1", StatusRunning, ""))
	assert.False(t, r.SetStatus("job-1", StatusPending, ""), "backward transition must be refused")
	assert.True(t, r.SetStatus("job-1", StatusCompleted, ""))

	// Terminal states are immutable.
	assert.False(t, r.SetStatus("job-1", StatusFailed, "late failure"))
	assert.False(t, r.SetStatus("job-1", StatusStopped, ""))

	job, _ := r.Get("job-1")
	assert.Equal(t, StatusCompleted, job.Status)
}

func TestStopAndFinishRace(t *testing.T) {
	// Whichever terminal transition lands first wins; the loser is a
	// no-op. Exercised directly here, end to end in the supervisor
	// tests.
	r := NewRegistry(300 * time.Second)
	require.NoError(t, r.Insert(newTestJob("job-1")))
	r.SetStatus("job-1", StatusRunning, "")

	assert.True(t, r.SetStatus("job-1", StatusStopped, "stop requested"))
	assert.False(t, r.SetStatus("job-1", StatusCompleted, ""))

	job, _ := r.Get("job-1")
	assert.Equal(t, StatusStopped, job.Status)
	assert.Equal(t, "stop requested", job.Reason)
}

func TestRecordProgress(t *testing.T) {
	r := NewRegistry(300 * time.Second)
	require.NoError(t, r.Insert(newTestJob("job-1")))

	r.RecordProgress("job-1", parser.Event{Kind: parser.KindProgress, Percent: 42})
	job, _ := r.Get("job-1")
	require.NotNil(t, job.Progress)
	assert.Equal(t, 42, job.Progress.Percent)
	assert.Empty(t, job.Result)

	r.RecordProgress("job-1", parser.Event{Kind: parser.KindKeyFound, Field: "passphrase", Value: "hunter22"})
	job, _ = r.Get("job-1")
	assert.Equal(t, "hunter22", job.Result)
}

func TestSnapshotIsolation(t *testing.T) {
	r := NewRegistry(300 * time.Second)
	require.NoError(t, r.Insert(newTestJob("job-1")))
	r.RecordProgress("job-1", parser.Event{Kind: parser.KindProgress, Percent: 10})

	snap, _ := r.Get("job-1")
	snap.Progress.Percent = 99

	fresh, _ := r.Get("job-1")
	assert.Equal(t, 10, fresh.Progress.Percent)
}

func TestActive(t *testing.T) {
	r := NewRegistry(300 * time.Second)
	require.NoError(t, r.Insert(newTestJob("job-1")))
	require.NoError(t, r.Insert(newTestJob("job-2")))
	r.SetStatus("job-2", StatusRunning, "")
	r.SetStatus("job-2", StatusCompleted, "")

	active := r.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "job-1", active[0].ID)
	assert.Equal(t, 2, r.Len())
}

func TestSweepRetentionBoundary(t *testing.T) {
	r := NewRegistry(300 * time.Second)

	for _, id := range []string{"fresh", "expired", "active-old"} {
		require.NoError(t, r.Insert(newTestJob(id)))
	}
	r.SetStatus("fresh", StatusRunning, "")
	r.SetStatus("fresh", StatusCompleted, "")
	r.SetStatus("expired", StatusRunning, "")
	r.SetStatus("expired", StatusCompleted, "")
	r.SetStatus("active-old", StatusRunning, "")

	// Backdate: one terminal job just inside the window, one just
	// outside, and a long-running active job well past it.
	r.Update("fresh", func(j *Job) { j.UpdatedAt = time.Now().Add(-299 * time.Second) })
	r.Update("expired", func(j *Job) { j.UpdatedAt = time.Now().Add(-301 * time.Second) })
	r.Update("active-old", func(j *Job) { j.UpdatedAt = time.Now().Add(-3600 * time.Second) })

	removed := r.Sweep()
	assert.Equal(t, 1, removed)

	_, ok := r.Get("fresh")
	assert.True(t, ok)
	_, ok = r.Get("expired")
	assert.False(t, ok)
	_, ok = r.Get("active-old")
	assert.True(t, ok, "active jobs are never swept")
}

func TestNewID(t *testing.T) {
	id := NewID(command.FamilyWordlist)
	assert.True(t, strings.HasPrefix(id, "crunch-"))
	assert.NotEqual(t, id, NewID(command.FamilyWordlist))
}
