package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeatures(t *testing.T) {
	t.Parallel()

	feat := DetectFeatures()
	if feat.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", feat.Architecture, runtime.GOARCH)
	}
	if feat.ForceGeneric {
		t.Error("ForceGeneric should default to false")
	}
}
