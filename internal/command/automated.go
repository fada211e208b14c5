package command

import (
	"strconv"
	"time"
)

// AutomatedOptions configures a wifite automated attack run.
type AutomatedOptions struct {
	Interface string

	// At most one of the protocol filters may be set.
	WPAOnly bool
	WEPOnly bool
	WPSOnly bool

	// Dictionary overrides wifite's default wordlist for WPA cracking.
	Dictionary string
	// BSSID and ESSID narrow the run to one target.
	BSSID string
	ESSID string
	// Channel locks scanning to one channel; zero scans all.
	Channel int

	Timeout time.Duration
}

func (o AutomatedOptions) Family() Family { return FamilyAutomated }

func (o AutomatedOptions) Build() (Spec, error) {
	if o.Interface == "" {
		return Spec{}, invalidf("interface is required")
	}

	filters := 0
	for _, set := range []bool{o.WPAOnly, o.WEPOnly, o.WPSOnly} {
		if set {
			filters++
		}
	}
	if filters > 1 {
		return Spec{}, invalidf("at most one protocol filter may be set")
	}
	if o.BSSID != "" {
		if err := requireMAC("bssid", o.BSSID); err != nil {
			return Spec{}, err
		}
	}
	if o.Channel < 0 || o.Channel > 14 {
		return Spec{}, invalidf("channel %d is out of range", o.Channel)
	}

	args := []string{"-i", o.Interface}
	if o.WPAOnly {
		args = append(args, "--wpa-only")
	}
	if o.WEPOnly {
		args = append(args, "--wep-only")
	}
	if o.WPSOnly {
		args = append(args, "--wps-only")
	}
	if o.Dictionary != "" {
		args = append(args, "-dict", o.Dictionary)
	}
	if o.BSSID != "" {
		args = append(args, "-b", o.BSSID)
	}
	if o.ESSID != "" {
		args = append(args, "-e", o.ESSID)
	}
	if o.Channel > 0 {
		args = append(args, "-c", strconv.Itoa(o.Channel))
	}

	return Spec{
		Tool:    string(FamilyAutomated),
		Args:    args,
		Timeout: o.Timeout,
		Stream:  true,
	}, nil
}
