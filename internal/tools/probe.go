// Package tools checks which external security tools are installed and
// runnable. Probing is bounded and cached: a controller probes once at
// construction and the result never changes for its lifetime.
package tools

import (
	"context"
	"os/exec"
	"time"

	"github.com/Anish932-hash/FERN-WIFI-CRACKER/pkg/debug"
)

// Tool describes how to probe one external binary.
type Tool struct {
	Name    string
	HelpArg string
	// AnyExit accepts any exit code as proof of presence. Several of the
	// wrapped tools exit nonzero from their usage screen.
	AnyExit bool
}

// Known is the closed set of tools this module can orchestrate.
var Known = []Tool{
	{Name: "cowpatty", HelpArg: "-h", AnyExit: true},
	{Name: "genpmk", HelpArg: "-h", AnyExit: true},
	{Name: "crunch", HelpArg: "-h", AnyExit: true},
	{Name: "mdk4", HelpArg: "--help", AnyExit: true},
	{Name: "aireplay-ng", HelpArg: "--help", AnyExit: true},
	{Name: "airodump-ng", HelpArg: "--help", AnyExit: true},
	{Name: "macchanger", HelpArg: "--help"},
	{Name: "wifite", HelpArg: "--help"},
}

// Availability maps tool name to installed state.
type Availability map[string]bool

// Available reports whether a tool probed as present.
func (a Availability) Available(name string) bool {
	return a[name]
}

// ProbeAll probes every tool in the given set. paths overrides the
// binary location per tool name; unlisted tools resolve from PATH.
func ProbeAll(ctx context.Context, set []Tool, timeout time.Duration, paths map[string]string) Availability {
	avail := make(Availability, len(set))
	for _, tool := range set {
		binary := tool.Name
		if p, ok := paths[tool.Name]; ok {
			binary = p
		}
		avail[tool.Name] = Probe(ctx, tool, binary, timeout)
	}
	return avail
}

// Probe runs one tool with its help flag under a bounded timeout. A
// missing binary or a hung invocation means "unavailable", never an
// error.
func Probe(ctx context.Context, tool Tool, binary string, timeout time.Duration) bool {
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var args []string
	if tool.HelpArg != "" {
		args = append(args, tool.HelpArg)
	}

	cmd := exec.CommandContext(probeCtx, binary, args...)
	err := cmd.Run()
	if probeCtx.Err() != nil {
		debug.Warning("Probe of %s timed out after %s", tool.Name, timeout)
		return false
	}
	if err == nil {
		return true
	}
	if _, isExit := err.(*exec.ExitError); isExit && tool.AnyExit {
		return true
	}
	debug.Debug("Tool %s unavailable: %v", tool.Name, err)
	return false
}
