package fft

// Direction selects the butterfly sign convention. The forward and inverse
// transforms share one routine per format; the direction value is the sign
// applied to every twiddle cross term and cross combination, so the inverse
// is the exact algebraic mirror of the forward rather than a conjugated
// twiddle table.
type Direction int

const (
	Forward Direction = 1
	Inverse Direction = -1
)

// Sample is the set of scalar types the interleaved complex buffers use.
type Sample interface {
	~int16 | ~int32 | ~float32 | ~float64
}

// Float is the set of floating-point sample types.
type Float interface {
	~float32 | ~float64
}

// Supported length bounds for the radix-4 engines. Lengths must be powers
// of 4; MaxLen is also the generation length of the shared twiddle tables.
const (
	MinLen = 16
	MaxLen = 4096
)
