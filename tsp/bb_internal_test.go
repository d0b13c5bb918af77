package tsp

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspbb/matrix"
)

// completion returns the cheapest cost of extending path (from 0) into a
// full tour over w, or +Inf. Brute force; small n only.
func completion(w []float64, n int, path []int, cost float64) float64 {
	if len(path) == n {
		return cost + w[path[n-1]*n]
	}
	var (
		best = math.Inf(1)
		seen = make([]bool, n)
		last = path[len(path)-1]
	)
	for _, v := range path {
		seen[v] = true
	}
	for v := 0; v < n; v++ {
		if seen[v] || math.IsInf(w[last*n+v], 1) {
			continue
		}
		if c := completion(w, n, extendPath(path, v), cost+w[last*n+v]); c < best {
			best = c
		}
	}

	return best
}

// newTestEngine prepares an engine with its root pushed, as SolveContext does.
func newTestEngine(t *testing.T, rows [][]float64, kind FrontierKind) *bbEngine {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	proc, err := processMatrix(d)
	require.NoError(t, err)

	e := &bbEngine{
		n:          proc.Rows(),
		w:          proc.Data(),
		open:       newFrontier(kind),
		pool:       newBufferPool(proc.Rows()),
		bestCost:   math.Inf(1),
		ctx:        context.Background(),
		checkEvery: DefaultCheckEvery,
	}
	root := e.pool.cloneOf(e.w)
	e.push(&node{bound: reduceFlat(root, e.n), path: []int{0}, w: root})

	return e
}

func TestBound_AdmissibleForEveryGeneratedNode(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for rep := 0; rep < 12; rep++ {
		n := 5 + rep%2
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
			for j := range rows[i] {
				if i != j {
					rows[i][j] = float64(rng.Intn(30))
					if rng.Float64() < 0.15 {
						rows[i][j] = math.Inf(1)
					}
				}
			}
		}

		// Expand every node without an incumbent: the whole tree is visited.
		e := newTestEngine(t, rows, FrontierScan)
		var nd *node
		for e.open.len() > 0 {
			nd = e.open.pop()
			opt := completion(e.w, e.n, nd.path, nd.cost)
			require.LessOrEqual(t, nd.bound, opt, "rep=%d path=%v", rep, nd.path)
			if len(nd.path) < e.n {
				e.expand(nd)
			}
		}
	}
}

func TestExpand_ChildrenOwnTheirMatrices(t *testing.T) {
	e := newTestEngine(t, [][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	}, FrontierScan)
	root := e.open.pop()
	snapshot := append([]float64(nil), root.w...)
	e.expand(root)
	require.Equal(t, snapshot, root.w, "expansion must not mutate the parent")

	kids := make([]*node, 0, 3)
	for e.open.len() > 0 {
		kids = append(kids, e.open.pop())
	}
	require.Len(t, kids, 3)
	for i := range kids {
		for j := i + 1; j < len(kids); j++ {
			require.NotSame(t, &kids[i].w[0], &kids[j].w[0])
		}
		// Row 0 and the entered column are closed, and so is the reverse edge.
		next := kids[i].path[1]
		for k := 0; k < e.n; k++ {
			require.True(t, math.IsInf(kids[i].w[k], 1))
			require.True(t, math.IsInf(kids[i].w[k*e.n+next], 1))
		}
		require.True(t, math.IsInf(kids[i].w[next*e.n], 1))
	}
}

func TestFrontier_TieBreakEarliestInserted(t *testing.T) {
	for _, kind := range []FrontierKind{FrontierScan, FrontierTree} {
		f := newFrontier(kind)
		bounds := []float64{5, 3, 7, 3, 3, 1, 7}
		for i, b := range bounds {
			f.push(&node{bound: b, seq: uint64(i)})
		}
		var order []uint64
		for f.len() > 0 {
			order = append(order, f.pop().seq)
		}
		require.Equal(t, []uint64{5, 1, 3, 4, 0, 2, 6}, order, "kind=%s", kind)
		require.Nil(t, f.pop())
	}
}

func TestBufferPool_Recycles(t *testing.T) {
	p := newBufferPool(2)
	src := []float64{1, 2, 3, 4}
	a := p.cloneOf(src)
	require.Equal(t, src, a)
	p.release(a)
	b := p.cloneOf([]float64{5, 6, 7, 8})
	require.Same(t, &a[0], &b[0])
	require.Equal(t, []float64{5, 6, 7, 8}, b)

	// Foreign-sized buffers are ignored.
	p.release(make([]float64, 3))
	require.Empty(t, p.free)
}

func TestEliminate(t *testing.T) {
	w := make([]float64, 9)
	eliminate(w, 3, 0, 2)
	inf := math.Inf(1)
	require.Equal(t, []float64{
		inf, inf, inf,
		0, 0, inf,
		inf, 0, inf,
	}, w)
}
