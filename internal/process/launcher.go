// Package process spawns and owns external tool processes. A Handle
// exposes the child's output as an ordered line channel plus the
// terminate / kill / wait operations a supervisor needs. Exactly one
// goroutine (the job's supervisor) may drive a Handle.
package process

import (
	"bufio"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"syscall"

	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/command"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/pkg/debug"
	"golang.org/x/sync/errgroup"
)

// ErrLaunchFailure marks a spawn that failed outright. Distinct from
// "tool unavailable", which the controller checks before launching.
var ErrLaunchFailure = errors.New("launch failure")

// stderrTailLen bounds the retained error-stream tail.
const stderrTailLen = 10

// Line is one line of child output, tagged with its source stream.
type Line struct {
	Text   string
	Stderr bool
}

// Handle is an owned, running child process.
type Handle struct {
	cmd   *exec.Cmd
	lines chan Line

	tailMu sync.Mutex
	tail   []string

	exited   chan struct{}
	exitCode int
}

// Launch spawns the tool named by spec using the given binary path,
// with stdout and stderr captured. The returned handle's line channel
// closes when both streams are drained; Wait then yields the exit code.
func Launch(spec command.Spec, binary string) (*Handle, error) {
	cmd := exec.Command(binary, spec.Args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdout pipe: %v", ErrLaunchFailure, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stderr pipe: %v", ErrLaunchFailure, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLaunchFailure, spec.Tool, err)
	}
	debug.Debug("Spawned %s (pid %d) args=%v", spec.Tool, cmd.Process.Pid, spec.Args)

	h := &Handle{
		cmd:    cmd,
		lines:  make(chan Line, 64),
		exited: make(chan struct{}),
	}

	var g errgroup.Group
	g.Go(func() error {
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			h.lines <- Line{Text: scanner.Text()}
		}
		return scanner.Err()
	})
	g.Go(func() error {
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			text := scanner.Text()
			h.appendTail(text)
			h.lines <- Line{Text: text, Stderr: true}
		}
		return scanner.Err()
	})

	go func() {
		if err := g.Wait(); err != nil {
			debug.Debug("Stream read for %s ended with: %v", spec.Tool, err)
		}
		close(h.lines)

		h.exitCode = exitCode(cmd.Wait())
		close(h.exited)
	}()

	return h, nil
}

// Lines returns the merged, ordered output channel. It closes when the
// child's streams are exhausted.
func (h *Handle) Lines() <-chan Line {
	return h.lines
}

// Terminate asks the child to exit (SIGTERM).
func (h *Handle) Terminate() error {
	return h.cmd.Process.Signal(syscall.SIGTERM)
}

// Kill forcibly ends the child.
func (h *Handle) Kill() error {
	return h.cmd.Process.Kill()
}

// Wait blocks until the child has exited and both streams are drained,
// then returns the exit code (-1 when killed by signal).
func (h *Handle) Wait() int {
	<-h.exited
	return h.exitCode
}

// Exited is closed once the child has exited and its streams are
// drained.
func (h *Handle) Exited() <-chan struct{} {
	return h.exited
}

// Running reports whether the child is still alive.
func (h *Handle) Running() bool {
	select {
	case <-h.exited:
		return false
	default:
		return true
	}
}

// StderrTail returns the last few error-stream lines for diagnostics.
func (h *Handle) StderrTail() []string {
	h.tailMu.Lock()
	defer h.tailMu.Unlock()
	tail := make([]string, len(h.tail))
	copy(tail, h.tail)
	return tail
}

func (h *Handle) appendTail(line string) {
	h.tailMu.Lock()
	defer h.tailMu.Unlock()
	h.tail = append(h.tail, line)
	if len(h.tail) > stderrTailLen {
		h.tail = h.tail[len(h.tail)-stderrTailLen:]
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
