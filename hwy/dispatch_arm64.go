//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ASIMD (NEON) is mandatory on arm64, but honour the flag anyway.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16
		currentName = "neon"
		return
	}
	setScalarMode()
}

// HasFMA reports whether fused multiply-add is available in hardware.
func HasFMA() bool {
	return cpu.ARM64.HasFP
}
