package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/command"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/config"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/jobs"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig points every tool at a missing binary, then overrides the
// named ones with mock scripts. Probing the missing ones fails fast.
func testConfig(t *testing.T, scripts map[string]string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.WorkDirectory = t.TempDir()
	cfg.GracePeriod = 2 * time.Second
	cfg.ProbeTimeout = 5 * time.Second

	missing := filepath.Join(t.TempDir(), "no-such-tool")
	for _, name := range []string{
		"cowpatty", "genpmk", "crunch", "mdk4",
		"aireplay-ng", "airodump-ng", "macchanger", "wifite",
	} {
		cfg.ToolPaths[name] = missing
	}
	for name, script := range scripts {
		cfg.ToolPaths[name] = script
	}
	return cfg
}

func writeMockTool(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mock_tool.sh")
	require.NoError(t, os.WriteFile(path, []byte(content), 0755))
	return path
}

func waitTerminal(t *testing.T, ctrl *Controller, id string) Snapshot {
	t.Helper()
	var snap Snapshot
	require.Eventually(t, func() bool {
		s, ok := ctrl.Status(id)
		if !ok {
			return false
		}
		snap = s
		return s.Status.Terminal()
	}, 10*time.Second, 20*time.Millisecond)
	return snap
}

func TestControllerProbesOnConstruction(t *testing.T) {
	script := writeMockTool(t, "#!/bin/bash\nexit 0\n")
	ctrl := New(testConfig(t, map[string]string{"crunch": script}))

	assert.True(t, ctrl.Available("crunch"))
	assert.False(t, ctrl.Available("cowpatty"))

	avail := ctrl.Availability()
	assert.Len(t, avail, 8)
	assert.True(t, avail.Available("crunch"))
}

func TestStartUnavailableTool(t *testing.T) {
	ctrl := New(testConfig(t, nil))

	_, err := ctrl.Start(command.DictionaryAttackOptions{
		CaptureFile: "/tmp/handshake.cap",
		SSID:        "HomeNet",
		Wordlist:    "/tmp/words.txt",
	}, nil)
	assert.ErrorIs(t, err, ErrToolUnavailable)
	assert.Zero(t, ctrl.Registry().Len(), "refused starts must leave no job behind")
}

func TestStartInvalidOptions(t *testing.T) {
	script := writeMockTool(t, "#!/bin/bash\nexit 0\n")
	ctrl := New(testConfig(t, map[string]string{"cowpatty": script}))

	_, err := ctrl.Start(command.DictionaryAttackOptions{SSID: "HomeNet"}, nil)
	assert.ErrorIs(t, err, command.ErrInvalidOption)
	assert.Zero(t, ctrl.Registry().Len())
}

func TestWordlistEndToEnd(t *testing.T) {
	// A crunch stand-in that writes its output file like the real tool.
	script := writeMockTool(t, `#!/bin/bash
if [ "$1" == "-h" ]; then exit 0; fi
out=""
prev=""
for arg in "$@"; do
  if [ "$prev" == "-o" ]; then out="$arg"; fi
  prev="$arg"
done
echo "Crunch will now generate 3 lines"
printf "1234\n5678\n9999\n" > "$out"
echo "100%" >&2
exit 0
`)
	ctrl := New(testConfig(t, map[string]string{"crunch": script}))
	outFile := filepath.Join(t.TempDir(), "digits.txt")

	var mu sync.Mutex
	var percents []int
	id, err := ctrl.Start(command.WordlistOptions{
		MinLength:  4,
		MaxLength:  4,
		Charset:    command.CharsetDigits,
		OutputFile: outFile,
	}, func(_ string, ev parser.Event) {
		if ev.Kind == parser.KindProgress {
			mu.Lock()
			percents = append(percents, ev.Percent)
			mu.Unlock()
		}
	})
	require.NoError(t, err)

	snap := waitTerminal(t, ctrl, id)
	assert.Equal(t, jobs.StatusCompleted, snap.Status)
	assert.Equal(t, outFile, snap.Result)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1234")

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, percents, 100)
}

func TestConcurrentStartsGetUniqueIDs(t *testing.T) {
	script := writeMockTool(t, "#!/bin/bash\nexit 0\n")
	ctrl := New(testConfig(t, map[string]string{"crunch": script}))

	const n = 8
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := ctrl.Start(command.WordlistOptions{
				MinLength:  4,
				MaxLength:  4,
				Charset:    command.CharsetDigits,
				OutputFile: fmt.Sprintf("/tmp/out-%d.txt", i),
			}, nil)
			assert.NoError(t, err)
			ids <- id
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate job id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestStopSemantics(t *testing.T) {
	script := writeMockTool(t, `#!/bin/bash
if [ "$1" == "--help" ]; then exit 0; fi
echo "running"
exec sleep 30
`)
	ctrl := New(testConfig(t, map[string]string{"wifite": script}))

	id, err := ctrl.Start(command.AutomatedOptions{Interface: "wlan0"}, nil)
	require.NoError(t, err)

	assert.False(t, ctrl.Stop("no-such-job"), "unknown ids report false")

	require.Eventually(t, func() bool {
		snap, ok := ctrl.Status(id)
		return ok && snap.Status == jobs.StatusRunning
	}, 5*time.Second, 10*time.Millisecond)

	assert.True(t, ctrl.Stop(id))
	snap := waitTerminal(t, ctrl, id)
	assert.Equal(t, jobs.StatusStopped, snap.Status)

	// Stopping a finished but still retained job is a no-op success.
	assert.True(t, ctrl.Stop(id))
}

func TestListActive(t *testing.T) {
	script := writeMockTool(t, `#!/bin/bash
if [ "$1" == "--help" ]; then exit 0; fi
exec sleep 30
`)
	ctrl := New(testConfig(t, map[string]string{"wifite": script}))

	id, err := ctrl.Start(command.AutomatedOptions{Interface: "wlan0"}, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(ctrl.ListActive()) == 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, id, ctrl.ListActive()[0].ID)

	ctrl.Stop(id)
	waitTerminal(t, ctrl, id)
	assert.Empty(t, ctrl.ListActive())
}

func TestClose(t *testing.T) {
	script := writeMockTool(t, `#!/bin/bash
if [ "$1" == "--help" ]; then exit 0; fi
exec sleep 30
`)
	ctrl := New(testConfig(t, map[string]string{"wifite": script}))

	id, err := ctrl.Start(command.AutomatedOptions{Interface: "wlan0"}, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		snap, ok := ctrl.Status(id)
		return ok && snap.Status == jobs.StatusRunning
	}, 5*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, ctrl.Close(ctx))

	snap, ok := ctrl.Status(id)
	require.True(t, ok)
	assert.Equal(t, jobs.StatusStopped, snap.Status)
}

func TestStatusUnknownJob(t *testing.T) {
	ctrl := New(testConfig(t, nil))
	_, ok := ctrl.Status("nope")
	assert.False(t, ok)
}
