package command

import (
	"time"
)

// DictionaryAttackOptions configures a cowpatty WPA-PSK dictionary
// attack against a captured handshake. Exactly one of Wordlist or
// PMKFile must be set.
type DictionaryAttackOptions struct {
	CaptureFile string
	SSID        string
	Wordlist    string
	PMKFile     string

	// NonStrict relaxes cowpatty's frame ordering checks (-2), useful
	// for captures with interleaved handshakes.
	NonStrict bool

	Timeout time.Duration
}

func (o DictionaryAttackOptions) Family() Family { return FamilyDictionary }

func (o DictionaryAttackOptions) Build() (Spec, error) {
	if o.CaptureFile == "" {
		return Spec{}, invalidf("capture file is required")
	}
	if o.SSID == "" {
		return Spec{}, invalidf("ssid is required")
	}
	if (o.Wordlist == "") == (o.PMKFile == "") {
		return Spec{}, invalidf("exactly one of wordlist or pmk file must be set")
	}

	args := []string{"-r", o.CaptureFile, "-s", o.SSID}
	if o.Wordlist != "" {
		args = append(args, "-f", o.Wordlist)
	} else {
		args = append(args, "-d", o.PMKFile)
	}
	if o.NonStrict {
		args = append(args, "-2")
	}

	return Spec{
		Tool:    string(FamilyDictionary),
		Args:    args,
		Timeout: o.Timeout,
		Stream:  true,
	}, nil
}

// PMKPrecomputeOptions configures a genpmk run that precomputes pairwise
// master keys for a given SSID, producing a file usable by the
// dictionary attack's PMKFile option. Output is short and parsed after
// exit rather than streamed.
type PMKPrecomputeOptions struct {
	Wordlist   string
	SSID       string
	OutputFile string
	Timeout    time.Duration
}

func (o PMKPrecomputeOptions) Family() Family { return FamilyPMK }

func (o PMKPrecomputeOptions) Build() (Spec, error) {
	if o.Wordlist == "" || o.SSID == "" || o.OutputFile == "" {
		return Spec{}, invalidf("wordlist, ssid and output file are all required")
	}

	timeout := o.Timeout
	if timeout == 0 {
		timeout = 300 * time.Second
	}

	return Spec{
		Tool:       string(FamilyPMK),
		Args:       []string{"-f", o.Wordlist, "-d", o.OutputFile, "-s", o.SSID},
		Timeout:    timeout,
		Stream:     false,
		ResultFile: o.OutputFile,
	}, nil
}
