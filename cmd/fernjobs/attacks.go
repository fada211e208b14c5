package main

import (
	"time"

	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/command"
	"github.com/spf13/cobra"
)

// runJob builds the controller, launches one job for the given builder
// and follows it to completion.
func runJob(builder command.Builder) error {
	ctrl, cfg, err := newController()
	if err != nil {
		return err
	}
	id, err := ctrl.Start(builder, printEvent)
	if err != nil {
		return err
	}
	return follow(ctrl, cfg, id)
}

func crackCmd() *cobra.Command {
	var opts command.DictionaryAttackOptions
	var timeout int

	cmd := &cobra.Command{
		Use:   "crack",
		Short: "Run a cowpatty dictionary attack against a WPA handshake capture",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Timeout = time.Duration(timeout) * time.Second
			return runJob(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.CaptureFile, "capture", "r", "", "handshake capture file")
	cmd.Flags().StringVarP(&opts.SSID, "ssid", "s", "", "target network SSID")
	cmd.Flags().StringVarP(&opts.Wordlist, "wordlist", "f", "", "dictionary file")
	cmd.Flags().StringVarP(&opts.PMKFile, "pmk", "d", "", "precomputed PMK table")
	cmd.Flags().BoolVar(&opts.NonStrict, "non-strict", false, "relax frame ordering checks")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "job timeout in seconds (0 uses the configured default)")
	return cmd
}

func pmkCmd() *cobra.Command {
	var opts command.PMKPrecomputeOptions
	var timeout int

	cmd := &cobra.Command{
		Use:   "pmk",
		Short: "Precompute a PMK table with genpmk for later cowpatty runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Timeout = time.Duration(timeout) * time.Second
			return runJob(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Wordlist, "wordlist", "f", "", "dictionary file")
	cmd.Flags().StringVarP(&opts.SSID, "ssid", "s", "", "target network SSID")
	cmd.Flags().StringVarP(&opts.OutputFile, "out", "d", "", "PMK table output file")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "job timeout in seconds")
	return cmd
}

func wordlistCmd() *cobra.Command {
	var opts command.WordlistOptions
	var charset string
	var timeout int

	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Generate a wordlist with crunch",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Charset = command.Charset(charset)
			opts.Timeout = time.Duration(timeout) * time.Second
			return runJob(opts)
		},
	}
	cmd.Flags().IntVar(&opts.MinLength, "min", 8, "minimum word length")
	cmd.Flags().IntVar(&opts.MaxLength, "max", 8, "maximum word length")
	cmd.Flags().StringVar(&charset, "charset", string(command.CharsetLowerDigits), "character set (lower, upper, mixed, digits, lower-digits, upper-digits, alnum, custom)")
	cmd.Flags().StringVar(&opts.CustomCharset, "chars", "", "literal characters for the custom charset")
	cmd.Flags().StringVarP(&opts.Pattern, "pattern", "t", "", "crunch pattern template")
	cmd.Flags().StringVarP(&opts.OutputFile, "out", "o", "", "output file")
	cmd.Flags().BoolVar(&opts.Permute, "permute", false, "permute the charset instead of iterating")
	cmd.Flags().BoolVar(&opts.Invert, "invert", false, "invert generation order")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "job timeout in seconds")
	return cmd
}

func deauthCmd() *cobra.Command {
	var opts command.StressOptions
	var mode string
	var timeout int

	cmd := &cobra.Command{
		Use:   "deauth",
		Short: "Run an mdk4 stress attack (deauth, beacon flood, auth DoS, EAPOL flood)",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Mode = command.StressMode(mode)
			opts.Timeout = time.Duration(timeout) * time.Second
			return runJob(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Interface, "iface", "i", "", "monitor mode interface")
	cmd.Flags().StringVar(&mode, "mode", string(command.StressDeauth), "attack mode (deauth, beacon-flood, auth-dos, eapol-flood)")
	cmd.Flags().StringVarP(&opts.BSSID, "bssid", "b", "", "target access point MAC")
	cmd.Flags().StringVarP(&opts.ClientMAC, "client", "c", "", "target station MAC")
	cmd.Flags().StringVar(&opts.SSID, "ssid", "", "SSID to advertise in a beacon flood")
	cmd.Flags().IntVar(&opts.Speed, "speed", 0, "packet rate in packets per second")
	cmd.Flags().IntVar(&opts.PacketCount, "count", 0, "packet count limit")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "job timeout in seconds")
	return cmd
}

func injectCmd() *cobra.Command {
	var opts command.InjectionOptions
	var mode string
	var timeout int

	cmd := &cobra.Command{
		Use:   "inject",
		Short: "Run an aireplay-ng injection operation",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Mode = command.InjectionMode(mode)
			opts.Timeout = time.Duration(timeout) * time.Second
			return runJob(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Interface, "iface", "i", "", "monitor mode interface")
	cmd.Flags().StringVar(&mode, "mode", string(command.InjectDeauth), "operation (deauth, fake-auth, arp-replay, chopchop, fragmentation, injection-test)")
	cmd.Flags().StringVarP(&opts.BSSID, "bssid", "b", "", "target access point MAC")
	cmd.Flags().StringVarP(&opts.ClientMAC, "client", "c", "", "target station MAC")
	cmd.Flags().StringVarP(&opts.ESSID, "essid", "e", "", "target network name for fake auth")
	cmd.Flags().IntVar(&opts.Count, "count", 0, "deauth burst count")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "job timeout in seconds")
	return cmd
}

func captureCmd() *cobra.Command {
	var opts command.CaptureOptions
	var timeout int

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Capture wireless traffic with airodump-ng",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Timeout = time.Duration(timeout) * time.Second
			return runJob(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Interface, "iface", "i", "", "monitor mode interface")
	cmd.Flags().IntVarP(&opts.Channel, "channel", "c", 0, "channel to lock to (0 hops)")
	cmd.Flags().StringVarP(&opts.BSSID, "bssid", "b", "", "access point MAC filter")
	cmd.Flags().StringVarP(&opts.OutputPrefix, "write", "w", "", "output file prefix")
	cmd.Flags().IntVar(&opts.WriteInterval, "write-interval", 0, "CSV flush interval in seconds")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "job timeout in seconds")
	return cmd
}

func spoofCmd() *cobra.Command {
	var opts command.MACSpoofOptions
	var timeout int

	cmd := &cobra.Command{
		Use:   "spoof",
		Short: "Change an interface MAC address with macchanger",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Timeout = time.Duration(timeout) * time.Second
			return runJob(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Interface, "iface", "i", "", "network interface")
	cmd.Flags().StringVarP(&opts.MAC, "mac", "m", "", "explicit MAC address")
	cmd.Flags().BoolVarP(&opts.Random, "random", "r", false, "generate a random locally administered address")
	cmd.Flags().StringVar(&opts.VendorPrefix, "vendor", "", "random address under a fixed XX:XX:XX prefix")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "job timeout in seconds")
	return cmd
}

func autoCmd() *cobra.Command {
	var opts command.AutomatedOptions
	var timeout int

	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Run a wifite automated audit",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Timeout = time.Duration(timeout) * time.Second
			return runJob(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Interface, "iface", "i", "", "wireless interface")
	cmd.Flags().BoolVar(&opts.WPAOnly, "wpa", false, "attack WPA networks only")
	cmd.Flags().BoolVar(&opts.WEPOnly, "wep", false, "attack WEP networks only")
	cmd.Flags().BoolVar(&opts.WPSOnly, "wps", false, "attack WPS networks only")
	cmd.Flags().StringVar(&opts.Dictionary, "dict", "", "wordlist for WPA cracking")
	cmd.Flags().StringVarP(&opts.BSSID, "bssid", "b", "", "target access point MAC")
	cmd.Flags().StringVarP(&opts.ESSID, "essid", "e", "", "target network name")
	cmd.Flags().IntVarP(&opts.Channel, "channel", "c", 0, "channel to scan")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "job timeout in seconds")
	return cmd
}
