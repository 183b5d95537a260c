//go:build linux

package worker

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// pin locks the calling goroutine to its OS thread and binds that
// thread to one CPU core chosen by worker id. The returned cleanup
// releases the thread lock.
func pin(id int) (func(), error) {
	runtime.LockOSThread()
	var set unix.CPUSet
	set.Set(id % runtime.NumCPU())
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	return runtime.UnlockOSThread, nil
}
