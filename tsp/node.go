package tsp

// node is one partial tour in the search tree. It is never mutated after
// push: expansion always builds fresh children.
type node struct {
	bound float64   // cost + reduction of w; admissible estimate
	cost  float64   // sum of processed-matrix weights along path
	path  []int     // visit order, path[0] == 0
	w     []float64 // private reduced working matrix, n×n row-major
	seq   uint64    // insertion order, used for the tie-break
}

// last returns the current city (tail of the partial path).
func (nd *node) last() int { return nd.path[len(nd.path)-1] }

// extendPath returns path + [next] in a fresh slice; siblings never share
// the backing array.
func extendPath(path []int, next int) []int {
	out := make([]int, len(path)+1)
	copy(out, path)
	out[len(path)] = next

	return out
}

// bufferPool hands out n×n working buffers and takes back the buffers of
// consumed nodes, so a long search allocates roughly peak-frontier buffers
// instead of one per generated child.
//
// A buffer is returned to the pool only once its node has left the frontier
// for good, which keeps every live node's matrix exclusively owned.
type bufferPool struct {
	size int
	free [][]float64
}

func newBufferPool(n int) *bufferPool {
	return &bufferPool{size: n * n}
}

// cloneOf returns a buffer holding a copy of src.
func (p *bufferPool) cloneOf(src []float64) []float64 {
	var b []float64
	if k := len(p.free); k > 0 {
		b = p.free[k-1]
		p.free[k-1] = nil
		p.free = p.free[:k-1]
	} else {
		b = make([]float64, p.size)
	}
	copy(b, src)

	return b
}

// release recycles b. b must no longer be referenced by any live node.
func (p *bufferPool) release(b []float64) {
	if len(b) != p.size {
		return
	}
	p.free = append(p.free, b)
}
