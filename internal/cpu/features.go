// Package cpu detects the processor capabilities the kernel dispatch layer
// cares about.
package cpu

import (
	"runtime"

	xcpu "golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool
	HasRVV  bool

	// ForceGeneric pins every transform to the portable engines.
	ForceGeneric bool

	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      xcpu.X86.HasSSE2,
		HasAVX2:      xcpu.X86.HasAVX2,
		HasNEON:      xcpu.ARM64.HasASIMD,
		HasRVV:       xcpu.RISCV64.HasV,
		Architecture: runtime.GOARCH,
	}
}
