// interpolate.go - Evenly spaced integer samples between two bounds.
package gradient

import "fmt"

// MaxSample bounds the magnitude of start and stop. Together with count at
// most MaxExtent it keeps start*count + i*(stop-start) within 53 bits.
const MaxSample = 1 << 20

// Interpolate returns count+1 evenly spaced samples from start to stop
// inclusive. Sample i is start + i/count*(stop-start) rounded half to even.
//
// The quotient is computed exactly in integer arithmetic, so both endpoints
// are reproduced without error and ties never depend on float precision.
// Samples are not clamped to any range.
//
// count must be in 1..MaxExtent and start, stop in -MaxSample..MaxSample.
func Interpolate(start, stop, count int) ([]int, error) {
	if count < 1 || count > MaxExtent {
		return nil, fmt.Errorf("%w: %d outside 1..%d", ErrInvalidCount, count, MaxExtent)
	}
	if start < -MaxSample || start > MaxSample || stop < -MaxSample || stop > MaxSample {
		return nil, fmt.Errorf("%w: %d..%d exceeds ±%d", ErrSampleRange, start, stop, MaxSample)
	}

	out := make([]int, count+1)
	span := stop - start
	for i := range out {
		out[i] = roundHalfEven(start*count+i*span, count)
	}
	return out, nil
}

// roundHalfEven returns num/den rounded to the nearest integer, ties to even.
// den must be positive.
func roundHalfEven(num, den int) int {
	q, r := num/den, num%den
	if r < 0 {
		q--
		r += den
	}
	switch twice := 2 * r; {
	case twice > den:
		q++
	case twice == den && q%2 != 0:
		q++
	}
	return q
}
