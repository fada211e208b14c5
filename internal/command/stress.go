package command

import (
	"strconv"
	"time"
)

// StressMode enumerates the mdk4 attack modes this module drives.
type StressMode string

const (
	StressDeauth      StressMode = "deauth"
	StressBeaconFlood StressMode = "beacon-flood"
	StressAuthDoS     StressMode = "auth-dos"
	StressEAPOLFlood  StressMode = "eapol-flood"
)

// StressOptions configures an mdk4 stress-test job.
type StressOptions struct {
	Interface string
	Mode      StressMode

	// BSSID targets a specific access point. Required for auth-dos and
	// eapol-flood.
	BSSID string
	// ClientMAC narrows a deauth run to one station.
	ClientMAC string
	// SSID names the network advertised by a beacon flood.
	SSID string

	// Speed is the packet rate in packets per second; zero keeps the
	// tool default.
	Speed int
	// PacketCount bounds a deauth run; zero means unbounded.
	PacketCount int

	Timeout time.Duration
}

func (o StressOptions) Family() Family { return FamilyStress }

func (o StressOptions) Build() (Spec, error) {
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
	if o.Speed < 0 || o.PacketCount < 0 {
		return Spec{}, invalidf("speed and packet count must be non-negative")
	}

	args := []string{o.Interface}

	switch o.Mode {
	case StressDeauth:
		args = append(args, "d")
		if o.BSSID != "" {
			args = append(args, "-B", o.BSSID)
		}
		if o.ClientMAC != "" {
			args = append(args, "-C", o.ClientMAC)
		}
		if o.Speed > 0 {
			args = append(args, "-S", strconv.Itoa(o.Speed))
		}
		if o.PacketCount > 0 {
			args = append(args, "-c", strconv.Itoa(o.PacketCount))
		}

	case StressBeaconFlood:
		args = append(args, "b")
		if o.SSID != "" {
			args = append(args, "-n", o.SSID)
		}
		if o.Speed > 0 {
			args = append(args, "-s", strconv.Itoa(o.Speed))
		}

	case StressAuthDoS:
		if o.BSSID == "" {
			return Spec{}, invalidf("auth-dos requires a bssid")
		}
		args = append(args, "a", "-a", o.BSSID)
		if o.Speed > 0 {
			args = append(args, "-s", strconv.Itoa(o.Speed))
		}

	case StressEAPOLFlood:
		if o.BSSID == "" {
			return Spec{}, invalidf("eapol-flood requires a bssid")
		}
		args = append(args, "e", "-t", o.BSSID)
		if o.Speed > 0 {
			args = append(args, "-s", strconv.Itoa(o.Speed))
		}

	default:
		return Spec{}, invalidf("unknown stress mode %q", o.Mode)
	}

	return Spec{
		Tool:    string(FamilyStress),
		Args:    args,
		Timeout: o.Timeout,
		Stream:  true,
	}, nil
}
