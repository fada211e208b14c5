// fernjobs drives the orchestration core from the command line: probe
// installed tools, start an attack or generation job, and follow its
// progress until it reaches a terminal state.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/config"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/jobs"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/orchestrator"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/parser"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/retention"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/internal/tools"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/pkg/console"
	"github.com/Anish932-hash/FERN-WIFI-CRACKER/pkg/debug"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "fernjobs",
		Short:         "Supervise external wireless security tools as tracked jobs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		probeCmd(),
		crackCmd(),
		pmkCmd(),
		wordlistCmd(),
		deauthCmd(),
		injectCmd(),
		captureCmd(),
		spoofCmd(),
		autoCmd(),
	)

	if err := root.Execute(); err != nil {
		console.Error("%v", err)
		os.Exit(1)
	}
}

func newController() (*orchestrator.Controller, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return orchestrator.New(cfg), cfg, nil
}

func probeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check which wrapped tools are installed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, _, err := newController()
			if err != nil {
				return err
			}
			for _, tool := range tools.Known {
				if ctrl.Available(tool.Name) {
					console.Success("%-12s available", tool.Name)
				} else {
					console.Warning("%-12s not found", tool.Name)
				}
			}
			return nil
		},
	}
}

// follow starts the retention service, streams events to the console
// and blocks until the job is terminal. SIGINT stops the job cleanly.
func follow(ctrl *orchestrator.Controller, cfg *config.Config, id string) error {
	svc := retention.NewService(ctrl.Registry(), cfg.WorkDirectory, cfg.FileRetention, cfg.SweepInterval)
	svc.Start(context.Background())
	defer svc.Stop()

	console.Status("Job %s started", id)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-interrupt:
			console.Status("Stopping job %s", id)
			ctrl.Stop(id)

		case <-ticker.C:
			snap, ok := ctrl.Status(id)
			if !ok {
				console.Error("Job %s vanished from the registry", id)
				return nil
			}
			if !snap.Status.Terminal() {
				continue
			}

			switch snap.Status {
			case jobs.StatusCompleted:
				console.Success("Job %s completed", id)
				if snap.Result != "" {
					console.Success("Result: %s", snap.Result)
				}
			case jobs.StatusStopped:
				console.Status("Job %s stopped", id)
			case jobs.StatusTimedOut:
				console.Warning("Job %s timed out", id)
			default:
				console.Error("Job %s failed: %s", id, snap.Reason)
				for _, line := range snap.ErrorTail {
					console.Error("  %s", line)
				}
			}
			return nil
		}
	}
}

// printEvent renders one progress event on the console.
func printEvent(id string, ev parser.Event) {
	switch ev.Kind {
	case parser.KindProgress:
		console.Progress(fmt.Sprintf("%s: %d%%", id, ev.Percent))
	case parser.KindCount:
		console.Progress(fmt.Sprintf("%s: %d %s", id, ev.Count, ev.Metric))
	case parser.KindKeyFound:
		console.Success("Found %s: %s", ev.Field, ev.Value)
	case parser.KindTarget:
		console.Info("Attacking %s", ev.Target)
	default:
		debug.Debug("Unhandled event kind %s for job %s", ev.Kind, id)
	}
}
