package command

import (
	"time"
)

// MACSpoofOptions configures a macchanger invocation. Exactly one of
// MAC, Random or VendorPrefix selects the new address. macchanger runs
// briefly; its output is captured and parsed after exit.
type MACSpoofOptions struct {
	Interface string
	// MAC sets an explicit address.
	MAC string
	// Random picks a fresh locally administered address.
	Random bool
	// VendorPrefix picks a random address under a fixed "XX:XX:XX" OUI.
	VendorPrefix string

	Timeout time.Duration
}

func (o MACSpoofOptions) Family() Family { return FamilyMACSpoof }

func (o MACSpoofOptions) Build() (Spec, error) {
	if o.Interface == "" {
		return Spec{}, invalidf("interface is required")
	}

	selected := 0
	if o.MAC != "" {
		selected++
	}
	if o.Random {
		selected++
	}
	if o.VendorPrefix != "" {
		selected++
	}
	if selected != 1 {
		return Spec{}, invalidf("exactly one of mac, random or vendor prefix must be set")
	}

	mac := o.MAC
	if mac != "" {
		if err := requireMAC("mac", mac); err != nil {
			return Spec{}, err
		}
	} else {
		var err error
		mac, err = RandomMAC(o.VendorPrefix)
		if err != nil {
			return Spec{}, err
		}
	}

	timeout := o.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return Spec{
		Tool:    string(FamilyMACSpoof),
		Args:    []string{"-m", mac, o.Interface},
		Timeout: timeout,
		Stream:  false,
	}, nil
}
