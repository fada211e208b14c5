package command

import (
	"strconv"
	"time"
)

// InjectionMode enumerates the aireplay-ng operations this module
// drives.
type InjectionMode string

const (
	InjectDeauth        InjectionMode = "deauth"
	InjectFakeAuth      InjectionMode = "fake-auth"
	InjectARPReplay     InjectionMode = "arp-replay"
	InjectChopChop      InjectionMode = "chopchop"
	InjectFragmentation InjectionMode = "fragmentation"
	InjectTest          InjectionMode = "injection-test"
)

// InjectionOptions configures an aireplay-ng packet injection job.
type InjectionOptions struct {
	Interface string
	Mode      InjectionMode
	BSSID     string
	ClientMAC string
	ESSID     string

	// Count is the number of deauth bursts to send; zero defaults to 5.
	Count int

	Timeout time.Duration
}

func (o InjectionOptions) Family() Family { return FamilyInjection }

func (o InjectionOptions) Build() (Spec, error) {
	if o.Interface == "" {
		return Spec{}, invalidf("interface is required")
	}
	if o.BSSID != "" {
		if err := requireMAC("bssid", o.BSSID); err != nil {
			return Spec{}, err
		}
	}
	if o.ClientMAC != "" {
		if err := requireMAC("client mac", o.ClientMAC); err != nil {
			return Spec{}, err
		}
	}
	if o.Count < 0 {
		return Spec{}, invalidf("count must be non-negative")
	}

	var args []string

	switch o.Mode {
	case InjectDeauth:
		if o.BSSID == "" || o.ClientMAC == "" {
			return Spec{}, invalidf("deauth requires bssid and client mac")
		}
		count := o.Count
		if count == 0 {
			count = 5
		}
		args = []string{"-0", strconv.Itoa(count), "-a", o.BSSID, "-c", o.ClientMAC}

	case InjectFakeAuth:
		if o.BSSID == "" {
			return Spec{}, invalidf("fake-auth requires a bssid")
		}
		args = []string{"-1", "0", "-a", o.BSSID}
		if o.ESSID != "" {
			args = append(args, "-e", o.ESSID)
		}

	case InjectARPReplay:
		if o.BSSID == "" {
			return Spec{}, invalidf("arp-replay requires a bssid")
		}
		args = []string{"-3", "-b", o.BSSID}

	case InjectChopChop:
		args = []string{"-4", "-F"}

	case InjectFragmentation:
		if o.BSSID == "" {
			return Spec{}, invalidf("fragmentation requires a bssid")
		}
		args = []string{"-5", "-F", "-b", o.BSSID}

	case InjectTest:
		args = []string{"-9"}

	default:
		return Spec{}, invalidf("unknown injection mode %q", o.Mode)
	}

	args = append(args, o.Interface)

	return Spec{
		Tool:    string(FamilyInjection),
		Args:    args,
		Timeout: o.Timeout,
		Stream:  true,
	}, nil
}
