package parser

import (
	"regexp"

	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/command"
)

// tables holds the per-family matcher lists, evaluated in order.
// Ordering matters: more specific patterns (counts, keys) come before
// the bare percentage catch-all.
var tables = map[command.Family][]matcher{
	command.FamilyDictionary: {
		{
			// e.g. `The PSK is: key found [ 3 ] "secretpass"` variants
			re:     regexp.MustCompile(`(?i)key\s*found\s*\[\s*\d+\s*\]\s*"?([^"\s]*)"?`),
			stream: streamStdout,
			build:  keyFound("passphrase"),
		},
		{
			re:     regexp.MustCompile(`(?i)(\d+)\s+passphrases?\s+tested`),
			stream: streamAny,
			build:  count("passphrases"),
		},
		{
			re:     regexp.MustCompile(`(\d+)%`),
			stream: streamAny,
			build:  progress,
		},
	},

	command.FamilyPMK: {
		{
			re:     regexp.MustCompile(`(?i)(\d+)\s+passphrases?\s+(?:tested|processed)`),
			stream: streamAny,
			build:  count("passphrases"),
		},
	},

	command.FamilyWordlist: {
		{
			re:     regexp.MustCompile(`(?i)(\d+)\s+(?:words|lines)`),
			stream: streamAny,
			build:  count("words"),
		},
		{
			// crunch reports percentages on stderr only
			re:     regexp.MustCompile(`(\d+)%`),
			stream: streamStderr,
			build:  progress,
		},
	},

	command.FamilyStress: {
		{
			re:     regexp.MustCompile(`(?i)(\d+)\s+packets`),
			stream: streamAny,
			build:  count("packets"),
		},
		{
			re:     regexp.MustCompile(`(?i)(\d+)\s+beacons`),
			stream: streamAny,
			build:  count("beacons"),
		},
		{
			re:     regexp.MustCompile(`(?i)(\d+)\s+APs`),
			stream: streamAny,
			build:  count("aps"),
		},
		{
			re:     regexp.MustCompile(`(?i)(\d+)\s+clients`),
			stream: streamAny,
			build:  count("clients"),
		},
	},

	command.FamilyInjection: {
		{
			re:     regexp.MustCompile(`(?i)sending\s+(\d+)\s+(?:directed\s+)?deauth`),
			stream: streamAny,
			build:  count("deauths"),
		},
		{
			re:     regexp.MustCompile(`(?i)(\d+)\s+packets`),
			stream: streamAny,
			build:  count("packets"),
		},
		{
			re:     regexp.MustCompile(`(?i)injection is working`),
			stream: streamAny,
			build: func([]string) Event {
				return Event{Kind: KindCount, Metric: "injection", Count: 1}
			},
		},
	},

	command.FamilyCapture: {
		{
			re:     regexp.MustCompile(`(?i)(\d+)\s+beacons`),
			stream: streamAny,
			build:  count("beacons"),
		},
	},

	command.FamilyMACSpoof: {
		{
			re:     regexp.MustCompile(`(?i)new mac:\s*([0-9a-f:]{17})`),
			stream: streamStdout,
			build:  keyFound("mac"),
		},
	},

	command.FamilyAutomated: {
		{
			re:     regexp.MustCompile(`(?i)wps pin found:\s*(\d+)`),
			stream: streamStdout,
			build:  keyFound("wps_pin"),
		},
		{
			re:     regexp.MustCompile(`(?i)wpa key found:\s*(\S+)`),
			stream: streamStdout,
			build:  keyFound("wpa_key"),
		},
		{
			re:     regexp.MustCompile(`(?i)wep key found:\s*(\S+)`),
			stream: streamStdout,
			build:  keyFound("wep_key"),
		},
		{
			re:     regexp.MustCompile(`(?i)(\d+)\s+target\(?s?\)?\s+found`),
			stream: streamStdout,
			build:  count("targets"),
		},
		{
			re:     regexp.MustCompile(`(\d+)%\s+complete`),
			stream: streamStdout,
			build:  progress,
		},
		{
			re:     regexp.MustCompile(`(?i)attacking\s+(.{1,80})`),
			stream: streamStdout,
			build: func(groups []string) Event {
				return Event{Kind: KindTarget, Target: groups[1]}
			},
		},
	},
}
