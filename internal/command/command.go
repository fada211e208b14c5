// Package command turns enumerated, validated option structures into
// argument vectors for the wrapped tools. Arguments are always passed as
// a vector to the launcher; nothing in this package ever builds a shell
// string, and options outside the enumerated set for an operation are
// rejected before any process is spawned.
package command

import (
	"crypto/rand"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrInvalidOption marks options outside the enumerated set for an
// operation. Returned before any process is spawned.
var ErrInvalidOption = errors.New("invalid option")

// Family identifies one wrapped tool. The family tag doubles as the
// default binary name.
type Family string

const (
	FamilyDictionary Family = "cowpatty"
	FamilyPMK        Family = "genpmk"
	FamilyWordlist   Family = "crunch"
	FamilyStress     Family = "mdk4"
	FamilyInjection  Family = "aireplay-ng"
	FamilyCapture    Family = "airodump-ng"
	FamilyMACSpoof   Family = "macchanger"
	FamilyAutomated  Family = "wifite"
)

// Spec is a fully built invocation: tool name, argument vector, overall
// timeout and whether output is monitored live or captured and parsed
// after exit.
type Spec struct {
	Tool    string
	Args    []string
	Timeout time.Duration
	Stream  bool

	// ResultFile, when set, becomes the job result on successful
	// completion (e.g. a generated wordlist path).
	ResultFile string
}

// Builder is implemented by every per-family options structure.
type Builder interface {
	Family() Family
	Build() (Spec, error)
}

var macPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}$`)

// ValidMAC reports whether s is a colon- or dash-separated MAC address.
func ValidMAC(s string) bool {
	return macPattern.MatchString(s)
}

// RandomMAC generates a random unicast, locally administered MAC
// address. vendorPrefix, when non-empty, must be the first three octets
// in "XX:XX:XX" form.
func RandomMAC(vendorPrefix string) (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate MAC: %w", err)
	}

	if vendorPrefix != "" {
		var oui [3]byte
		if _, err := fmt.Sscanf(vendorPrefix, "%02x:%02x:%02x", &oui[0], &oui[1], &oui[2]); err != nil {
			return "", fmt.Errorf("%w: vendor prefix %q", ErrInvalidOption, vendorPrefix)
		}
		copy(buf[:3], oui[:])
	} else {
		// Clear the multicast bit, set the locally administered bit.
		buf[0] &= 0xFE
		buf[0] |= 0x02
	}

	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		buf[0], buf[1], buf[2], buf[3], buf[4], buf[5]), nil
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidOption, fmt.Sprintf(format, args...))
}

func requireMAC(field, value string) error {
	if !ValidMAC(value) {
		return invalidf("%s %q is not a MAC address", field, value)
	}
	return nil
}
