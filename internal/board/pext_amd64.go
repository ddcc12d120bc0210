//go:build amd64

package board

import "golang.org/x/sys/cpu"

// hardwarePEXT is the BMI2 PEXT instruction, or nil when the CPU lacks it.
// It is set before any init function runs.
var hardwarePEXT = detectPEXT()

func detectPEXT() func(src, mask uint64) uint64 {
	if cpu.X86.HasBMI2 {
		return pextAsm
	}
	return nil
}

// pextAsm executes PEXTQ. Only call it when cpu.X86.HasBMI2 is set.
//
//go:noescape
func pextAsm(src, mask uint64) uint64
