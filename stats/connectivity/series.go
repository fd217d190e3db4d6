package connectivity

// Series is a read-only view of one series inside caller-owned memory.
// Views never copy, modify or retain ownership of the values they read;
// the backing buffers must outlive every Engine built over them.
type Series interface {
	// Len returns the number of values (time points).
	Len() int
	// At returns value i, 0 <= i < Len().
	At(i int) float64
	// Contiguous returns the values as one packed slice when the view has
	// unit stride.
	Contiguous() ([]float64, bool)
}

// Strided reads n values from data at indices 0, stride, 2*stride, ...
type Strided struct {
	data   []float64
	n      int
	stride int
}

// NewStrided returns a strided view. It fails if data is nil, n < 1,
// stride < 1 or data is too short to hold n values at that stride.
func NewStrided(data []float64, n, stride int) (Strided, error) {
	if err := checkStrided(data, n, stride); err != nil {
		return Strided{}, err
	}
	return Strided{data: data, n: n, stride: stride}, nil
}

// Values returns a contiguous view over all of values.
func Values(values []float64) Strided {
	return Strided{data: values, n: len(values), stride: 1}
}

// Len implements Series.
func (s Strided) Len() int { return s.n }

// Stride returns the element offset between consecutive values.
func (s Strided) Stride() int { return s.stride }

// At implements Series.
func (s Strided) At(i int) float64 { return s.data[i*s.stride] }

// Contiguous implements Series.
func (s Strided) Contiguous() ([]float64, bool) {
	if s.stride != 1 {
		return nil, false
	}
	return s.data[:s.n], true
}

// Gathered reads one series out of time-major storage: value t lives at
// points[t][offset].
type Gathered struct {
	points [][]float64
	offset int
}

// Len implements Series.
func (g Gathered) Len() int { return len(g.points) }

// At implements Series.
func (g Gathered) At(i int) float64 { return g.points[i][g.offset] }

// Contiguous implements Series. Time-major series are never packed.
func (g Gathered) Contiguous() ([]float64, bool) { return nil, false }

// gather copies s into buf (resized to s.Len()).
func gather(buf []float64, s Series) []float64 {
	n := s.Len()
	if cap(buf) < n {
		buf = make([]float64, n)
	}
	buf = buf[:n]
	if v, ok := s.Contiguous(); ok {
		copy(buf, v)
		return buf
	}
	if st, ok := s.(Strided); ok {
		off := 0
		for i := range buf {
			buf[i] = st.data[off]
			off += st.stride
		}
		return buf
	}
	for i := range buf {
		buf[i] = s.At(i)
	}
	return buf
}
