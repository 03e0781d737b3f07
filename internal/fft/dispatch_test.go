package fft

import (
	"testing"

	"github.com/dspkit/qdsp/internal/cpu"
)

func TestSelectEnginesComplete(t *testing.T) {
	t.Parallel()

	for _, feat := range []cpu.Features{
		cpu.DetectFeatures(),
		{ForceGeneric: true},
	} {
		eng := SelectEngines(feat)
		if eng.Q31 == nil || eng.Q15 == nil || eng.F32 == nil || eng.F64 == nil {
			t.Errorf("SelectEngines(%+v) returned a nil engine", feat)
		}
	}
}
