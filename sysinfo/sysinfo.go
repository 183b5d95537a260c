// Package sysinfo collects the machine and runtime description printed
// in the startup banner.
package sysinfo

import (
	"fmt"
	"runtime"

	gcpu "github.com/shirou/gopsutil/v4/cpu"
	ghost "github.com/shirou/gopsutil/v4/host"
	gmem "github.com/shirou/gopsutil/v4/mem"
)

// Banner holds the startup banner fields.
type Banner struct {
	Platform     string
	CPUModel     string
	LogicalCores int
	MemoryTotal  uint64
	GoRuntime    string
}

// Collect gathers the banner fields. It never fails the run; any field
// that cannot be retrieved degrades to a placeholder.
func Collect() Banner {
	info := Banner{
		GoRuntime:    fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
		LogicalCores: runtime.NumCPU(),
		Platform:     "unknown",
		CPUModel:     "unknown",
	}

	if hi, err := ghost.Info(); err == nil {
		info.Platform = fmt.Sprintf("%s %s (kernel %s)", hi.Platform, hi.PlatformVersion, hi.KernelVersion)
	}

	if cpuInfo, err := gcpu.Info(); err == nil && len(cpuInfo) > 0 {
		info.CPUModel = cpuInfo[0].ModelName
	}
	if cores, err := gcpu.Counts(true); err == nil && cores > 0 {
		info.LogicalCores = cores
	}

	if vm, err := gmem.VirtualMemory(); err == nil {
		info.MemoryTotal = vm.Total
	}
	return info
}
