//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures use the portable scalar path.
	setScalarMode()
}

// HasFMA returns false on architectures without a dispatch target.
func HasFMA() bool {
	return false
}
