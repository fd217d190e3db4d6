package connectivity

import "errors"

// Construction errors. New returns them (possibly several joined with
// errors.Join) and never returns a partially built Engine.
var (
	ErrTooFewSeries     = errors.New("connectivity: at least two series are required")
	ErrTooFewTimePoints = errors.New("connectivity: at least two time points are required")
	ErrInvalidStride    = errors.New("connectivity: stride must be at least one")
	ErrNilData          = errors.New("connectivity: nil data buffer")
	ErrShortBuffer      = errors.New("connectivity: buffer too short for layout")
	ErrRaggedParcels    = errors.New("connectivity: parcels differ in length")
	ErrInvalidMode      = errors.New("connectivity: invalid mode")
	ErrNilLayout        = errors.New("connectivity: nil layout")
)

// Usage errors. Queries that fail with one of these still return a
// zero-filled output of the engine's series count.
var (
	ErrLengthMismatch  = errors.New("connectivity: query length does not match series length")
	ErrEmptyROI        = errors.New("connectivity: empty region of interest")
	ErrIndexOutOfRange = errors.New("connectivity: series index out of range")
)
