// Package sysmon samples host-wide CPU and memory load so comparison timings
// can be read against what else the machine was doing.
package sysmon

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// String renders the snapshot as "CPU 12.5% | Memory 40.1%".
func (s Stats) String() string {
	return fmt.Sprintf("CPU %.1f%% | Memory %.1f%%", s.CPUPercent, s.MemPercent)
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since the previous call, so the first call in a
// process reports the average since boot). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Load pairs the host samples taken before and after a comparison run.
type Load struct {
	Before Stats
	After  Stats
}

// Sampler takes host snapshots. It is a variable so tests can pin values.
var Sampler = Sample

// Track samples the host, runs fn, and samples again.
func Track(fn func()) Load {
	l := Load{Before: Sampler()}
	fn()
	l.After = Sampler()
	return l
}
