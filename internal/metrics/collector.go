// Package metrics samples host CPU and memory load so job status
// snapshots can report what the wrapped tools are costing the machine.
package metrics

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// SystemMetrics holds one host load sample.
type SystemMetrics struct {
	CPUUsage    float64
	MemoryUsage float64
}

// Collector gathers host metrics on demand.
type Collector struct{}

// New creates a collector.
func New() *Collector {
	return &Collector{}
}

// Collect gathers the current CPU and memory usage percentages.
func (c *Collector) Collect() (*SystemMetrics, error) {
	percentages, err := cpu.Percent(0, false)
	if err != nil {
		return nil, fmt.Errorf("failed to collect CPU metrics: %w", err)
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to collect memory metrics: %w", err)
	}

	metrics := &SystemMetrics{MemoryUsage: vm.UsedPercent}
	if len(percentages) > 0 {
		metrics.CPUUsage = percentages[0]
	}
	return metrics, nil
}
