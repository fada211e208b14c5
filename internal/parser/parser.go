// Package parser extracts structured progress events from the text
// output of the wrapped tools. Each family carries an ordered list of
// matchers; the first match on a line wins, and unmatched lines are
// dropped silently. The tables are a best-effort, versioned contract
// with the tools' output formats — a tool upgrade that changes its
// wording is expected to land as a table edit here, not as new parsing
// code.
package parser

import (
	"regexp"
	"strconv"

	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/command"
)

// Kind discriminates the progress event union.
type Kind string

const (
	KindProgress Kind = "progress"
	KindCount    Kind = "count"
	KindKeyFound Kind = "key_found"
	KindTarget   Kind = "attacking_target"
	KindComplete Kind = "completed"
	KindTimedOut Kind = "timed_out"
)

// Event is one structured fact extracted from a tool's output. Only the
// fields relevant to its Kind are set.
type Event struct {
	Kind Kind

	// KindProgress
	Percent int

	// KindCount
	Metric string
	Count  int64

	// KindKeyFound: Field names what was recovered (passphrase,
	// wpa_key, wep_key, wps_pin, mac), Value carries it.
	Field string
	Value string

	// KindTarget
	Target string

	// KindComplete
	ExitCode int
	Success  bool
}

// stream restricts a matcher to one output stream.
type stream int

const (
	streamAny stream = iota
	streamStdout
	streamStderr
)

type matcher struct {
	re     *regexp.Regexp
	stream stream
	build  func(groups []string) Event
}

// Parse applies the family's matcher table to one line. ok is false
// when no matcher matched; that is not an error.
func Parse(family command.Family, line string, stderr bool) (ev Event, ok bool) {
	for _, m := range tables[family] {
		if m.stream == streamStdout && stderr {
			continue
		}
		if m.stream == streamStderr && !stderr {
			continue
		}
		groups := m.re.FindStringSubmatch(line)
		if groups == nil {
			continue
		}
		return m.build(groups), true
	}
	return Event{}, false
}

// Exit maps a process exit observation to the terminal event for a
// family. Exit code zero is success for every wrapped tool; a key
// search that exhausts its dictionary still exits zero and is a
// completed job, not a failed one.
func Exit(family command.Family, exitCode int) Event {
	return Event{
		Kind:     KindComplete,
		ExitCode: exitCode,
		Success:  exitCode == 0,
	}
}

// TimedOut is the event emitted when a supervisor expires a job.
func TimedOut() Event {
	return Event{Kind: KindTimedOut}
}

func atoi(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func progress(groups []string) Event {
	return Event{Kind: KindProgress, Percent: int(atoi(groups[1]))}
}

func count(metric string) func([]string) Event {
	return func(groups []string) Event {
		return Event{Kind: KindCount, Metric: metric, Count: atoi(groups[1])}
	}
}

func keyFound(field string) func([]string) Event {
	return func(groups []string) Event {
		return Event{Kind: KindKeyFound, Field: field, Value: groups[len(groups)-1]}
	}
}
