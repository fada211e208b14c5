package parser

import (
	"testing"

	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryKeyFound(t *testing.T) {
	ev, ok := Parse(command.FamilyDictionary, `key found [ 3 ] "hunter22"`, false)
	require.True(t, ok)
	assert.Equal(t, KindKeyFound, ev.Kind)
	assert.Equal(t, "passphrase", ev.Field)
	assert.Equal(t, "hunter22", ev.Value)
}

func TestDictionaryKeyFoundIgnoredOnStderr(t *testing.T) {
	_, ok := Parse(command.FamilyDictionary, `key found [ 3 ] "hunter22"`, true)
	assert.False(t, ok)
}

func TestDictionaryPassphraseCount(t *testing.T) {
	ev, ok := Parse(command.FamilyDictionary, "1024 passphrases tested in 2.03 seconds", false)
	require.True(t, ok)
	assert.Equal(t, KindCount, ev.Kind)
	assert.Equal(t, "passphrases", ev.Metric)
	assert.Equal(t, int64(1024), ev.Count)
}

func TestDictionaryPercent(t *testing.T) {
	ev, ok := Parse(command.FamilyDictionary, "42% done", false)
	require.True(t, ok)
	assert.Equal(t, KindProgress, ev.Kind)
	assert.Equal(t, 42, ev.Percent)
}

func TestDictionaryOrderingCountBeatsPercent(t *testing.T) {
	// A line with both a count and a percentage resolves to the count
	// because the table is ordered most-specific first.
	ev, ok := Parse(command.FamilyDictionary, "512 passphrases tested (50%)", false)
	require.True(t, ok)
	assert.Equal(t, KindCount, ev.Kind)
	assert.Equal(t, int64(512), ev.Count)
}

func TestWordlistPercentStderrOnly(t *testing.T) {
	ev, ok := Parse(command.FamilyWordlist, "crunch: 37% completed generating output", true)
	require.True(t, ok)
	assert.Equal(t, KindProgress, ev.Kind)
	assert.Equal(t, 37, ev.Percent)

	_, ok = Parse(command.FamilyWordlist, "crunch: 37% completed generating output", false)
	assert.False(t, ok)
}

func TestWordlistLineCount(t *testing.T) {
	ev, ok := Parse(command.FamilyWordlist, "Crunch will now generate 10000 lines", false)
	require.True(t, ok)
	assert.Equal(t, "words", ev.Metric)
	assert.Equal(t, int64(10000), ev.Count)
}

func TestStressPacketCount(t *testing.T) {
	ev, ok := Parse(command.FamilyStress, "Packets sent: 1337 packets", false)
	require.True(t, ok)
	assert.Equal(t, "packets", ev.Metric)
	assert.Equal(t, int64(1337), ev.Count)
}

func TestInjectionDeauthBurst(t *testing.T) {
	ev, ok := Parse(command.FamilyInjection,
		"12:00:00  Sending 64 directed DeAuth (code 7). STMAC: [11:22:33:44:55:66]", false)
	require.True(t, ok)
	assert.Equal(t, "deauths", ev.Metric)
	assert.Equal(t, int64(64), ev.Count)
}

func TestInjectionWorking(t *testing.T) {
	ev, ok := Parse(command.FamilyInjection, "Injection is working!", false)
	require.True(t, ok)
	assert.Equal(t, KindCount, ev.Kind)
	assert.Equal(t, "injection", ev.Metric)
}

func TestMACSpoofNewMAC(t *testing.T) {
	ev, ok := Parse(command.FamilyMACSpoof, "New MAC:       02:11:22:33:44:55 (unknown)", false)
	require.True(t, ok)
	assert.Equal(t, KindKeyFound, ev.Kind)
	assert.Equal(t, "mac", ev.Field)
	assert.Equal(t, "02:11:22:33:44:55", ev.Value)
}

func TestAutomatedEvents(t *testing.T) {
	ev, ok := Parse(command.FamilyAutomated, "WPA key found: supersecret", false)
	require.True(t, ok)
	assert.Equal(t, "wpa_key", ev.Field)
	assert.Equal(t, "supersecret", ev.Value)

	ev, ok = Parse(command.FamilyAutomated, "3 targets found", false)
	require.True(t, ok)
	assert.Equal(t, "targets", ev.Metric)
	assert.Equal(t, int64(3), ev.Count)

	ev, ok = Parse(command.FamilyAutomated, "65% complete", false)
	require.True(t, ok)
	assert.Equal(t, 65, ev.Percent)

	ev, ok = Parse(command.FamilyAutomated, "attacking CoffeeShopWiFi (aa:bb:cc:dd:ee:ff)", false)
	require.True(t, ok)
	assert.Equal(t, KindTarget, ev.Kind)
	assert.Equal(t, "CoffeeShopWiFi (aa:bb:cc:dd:ee:ff)", ev.Target)
}

func TestUnmatchedLinesDropped(t *testing.T) {
	for _, line := range []string{
		"",
		"Starting attack...",
		"some unrelated chatter",
	} {
		_, ok := Parse(command.FamilyDictionary, line, false)
		assert.False(t, ok, "line %q should not match", line)
	}
}

func TestUnknownFamilyNeverMatches(t *testing.T) {
	_, ok := Parse(command.Family("unknown"), "42%", false)
	assert.False(t, ok)
}

func TestExit(t *testing.T) {
	ev := Exit(command.FamilyDictionary, 0)
	assert.Equal(t, KindComplete, ev.Kind)
	assert.True(t, ev.Success)
	assert.Zero(t, ev.ExitCode)

	ev = Exit(command.FamilyDictionary, 2)
	assert.False(t, ev.Success)
	assert.Equal(t, 2, ev.ExitCode)
}

func TestTimedOut(t *testing.T) {
	assert.Equal(t, KindTimedOut, TimedOut().Kind)
}
