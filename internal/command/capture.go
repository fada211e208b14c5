package command

import (
	"strconv"
	"time"
)

// CaptureOptions configures an airodump-ng packet capture job. Captured
// networks are written as CSV next to the output prefix.
type CaptureOptions struct {
	Interface string
	// Channel locks the capture to one 2.4GHz channel; zero hops.
	Channel int
	// BSSID filters the capture to one access point.
	BSSID string
	// OutputPrefix enables file output; airodump appends "-01.csv".
	OutputPrefix string
	// WriteInterval is the CSV flush interval in seconds; zero
	// defaults to 1.
	WriteInterval int

	Timeout time.Duration
}

func (o CaptureOptions) Family() Family { return FamilyCapture }

func (o CaptureOptions) Build() (Spec, error) {
	if o.Interface == "" {
		return Spec{}, invalidf("interface is required")
	}
	if o.Channel < 0 || o.Channel > 14 {
		return Spec{}, invalidf("channel %d is out of range", o.Channel)
	}
	if o.BSSID != "" {
		if err := requireMAC("bssid", o.BSSID); err != nil {
			return Spec{}, err
		}
	}
	if o.WriteInterval < 0 {
		return Spec{}, invalidf("write interval must be non-negative")
	}

	interval := o.WriteInterval
	if interval == 0 {
		interval = 1
	}

	args := []string{
		"--write-interval", strconv.Itoa(interval),
		"--output-format", "csv",
	}
	if o.Channel > 0 {
		args = append(args, "--channel", strconv.Itoa(o.Channel))
	}
	if o.BSSID != "" {
		args = append(args, "--bssid", o.BSSID)
	}

	var resultFile string
	if o.OutputPrefix != "" {
		args = append(args, "--write", o.OutputPrefix)
		resultFile = o.OutputPrefix + "-01.csv"
	}
	args = append(args, o.Interface)

	return Spec{
		Tool:       string(FamilyCapture),
		Args:       args,
		Timeout:    o.Timeout,
		Stream:     true,
		ResultFile: resultFile,
	}, nil
}
