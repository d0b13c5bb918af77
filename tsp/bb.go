// Package tsp: best-first Branch-and-Bound with Little's reduction bound.
//
// Solve enumerates partial tours from city 0 in order of their lower bound.
//
//  1. The processed matrix is the input with the diagonal forced to +Inf.
//     Reducing a copy gives the root bound and the root working matrix.
//  2. Loop while the frontier is non-empty:
//     - pop the minimum-bound node (earliest inserted on ties);
//     - prune it if bound ≥ incumbent;
//     - if it holds all n cities, close the cycle with w[last→0] from the
//     processed matrix and keep it if strictly cheaper; never expand it;
//     - otherwise, for every unvisited next with a finite working entry
//     (last, next): clone the working matrix, close row last, column next
//     and (next, last), reduce, and push the child iff
//     cost + w[last→next] + reduction < incumbent.
//  3. An incumbent of +Inf at the end means no finite Hamiltonian cycle.
//
// All state (frontier, buffers, incumbent) lives in one bbEngine per call, so
// concurrent Solve calls share nothing and need no locking.
//
// Complexity:
//   - Worst case exponential in n (exact search). Pruning does the real work.
//   - Per expansion: O(n²) per child for the matrix copy and reduction.
//   - Memory: O(n²) per open node.
package tsp

import (
	"context"
	"math"
	"time"

	"github.com/katalvlaran/tspbb/matrix"
)

// bbEngine holds all search data for a single solve.
type bbEngine struct {
	n int
	w []float64 // processed matrix (diagonal = +Inf), row-major

	open frontier
	pool *bufferPool
	seq  uint64

	// Incumbent.
	bestCost float64
	bestTour []int

	// Limits.
	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	maxNodes    int
	checkEvery  int
	steps       int // loop iterations, drives sparse checks
	onIncumbent func(cost float64, tour []int)

	stats Stats
}

// at is a fast accessor into the processed matrix.
func (e *bbEngine) at(u, v int) float64 { return e.w[u*e.n+v] }

// push assigns the insertion sequence and inserts nd into the frontier.
func (e *bbEngine) push(nd *node) {
	nd.seq = e.seq
	e.seq++
	e.open.push(nd)
	e.stats.Pushed++
	if k := e.open.len(); k > e.stats.MaxFrontier {
		e.stats.MaxFrontier = k
	}
}

// interrupted reports a tripped limit. The node budget is exact; context
// and deadline are tested only every checkEvery loop steps.
func (e *bbEngine) interrupted() error {
	if e.maxNodes > 0 && e.stats.Expanded >= e.maxNodes {
		return ErrNodeBudget
	}
	e.steps++
	if e.steps%e.checkEvery != 0 {
		return nil
	}
	if err := e.ctx.Err(); err != nil {
		return err
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		return ErrTimeLimit
	}

	return nil
}

// record commits a strictly cheaper complete tour as the new incumbent.
func (e *bbEngine) record(path []int, total float64) {
	tour := make([]int, len(path)+1)
	copy(tour, path)
	tour[len(path)] = 0
	e.bestCost = total
	e.bestTour = tour
	if e.onIncumbent != nil {
		e.onIncumbent(total, tour)
	}
}

// complete handles a node holding all n cities: it closes the cycle back to 0.
func (e *bbEngine) complete(nd *node) {
	e.stats.Completed++
	total := nd.cost + e.at(nd.last(), 0)
	if total < e.bestCost {
		e.record(nd.path, total)
	}
}

// expand generates the children of nd in ascending city order.
func (e *bbEngine) expand(nd *node) {
	e.stats.Expanded++

	var (
		n       = e.n
		cur     = nd.last()
		visited = make([]bool, n)
		next    int
		child   []float64
		cost    float64
		bound   float64
	)
	for _, v := range nd.path {
		visited[v] = true
	}

	for next = 0; next < n; next++ {
		if visited[next] || !matrix.IsEdge(nd.w[cur*n+next]) {
			continue
		}
		child = e.pool.cloneOf(nd.w)
		eliminate(child, n, cur, next)
		cost = nd.cost + e.at(cur, next)
		bound = cost + reduceFlat(child, n)
		if bound >= e.bestCost {
			e.stats.Rejected++
			e.pool.release(child)
			continue
		}
		e.push(&node{
			bound: bound,
			cost:  cost,
			path:  extendPath(nd.path, next),
			w:     child,
		})
	}
}

// run drives the best-first loop until the frontier empties or a limit trips.
func (e *bbEngine) run() error {
	var nd *node
	for e.open.len() > 0 {
		if err := e.interrupted(); err != nil {
			return err
		}
		nd = e.open.pop()

		if nd.bound >= e.bestCost {
			e.stats.Pruned++
			e.pool.release(nd.w)
			continue
		}

		if len(nd.path) == e.n {
			e.complete(nd)
		} else {
			e.expand(nd)
		}
		e.pool.release(nd.w)
	}

	return nil
}

// result packages the incumbent.
func (e *bbEngine) result(optimal bool) Result {
	res := noSolution()
	if !math.IsInf(e.bestCost, 1) {
		res.Tour = e.bestTour
		res.Cost = e.bestCost
		res.Found = true
	}
	res.Optimal = optimal
	res.Stats = e.stats

	return res
}

// Solve runs the exact best-first branch-and-bound search on dist.
//
// It is SolveContext with context.Background(); with the zero or default
// Options it always runs to completion and Result.Optimal is true.
//
// Errors: ErrNonSquare, ErrDimensionMismatch (nil or n < 2),
// ErrNegativeWeight, ErrNaNWeight; with limits set also ErrTimeLimit and
// ErrNodeBudget. An instance without any finite tour is not an error:
// Result.Found is false.
func Solve(dist matrix.Matrix, opts Options) (Result, error) {
	return SolveContext(context.Background(), dist, opts)
}

// SolveContext is Solve with cooperative cancellation. Every opts.CheckEvery
// loop steps it checks ctx and opts.TimeLimit; opts.MaxNodes is checked on
// every step. When one of
// them trips, it returns the best incumbent found so far (Optimal=false)
// together with ctx.Err(), ErrTimeLimit or ErrNodeBudget.
func SolveContext(ctx context.Context, dist matrix.Matrix, opts Options) (Result, error) {
	start := time.Now()

	// Stage 1: validation and the processed matrix.
	proc, err := processMatrix(dist)
	if err != nil {
		return noSolution(), err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err = ctx.Err(); err != nil {
		return noSolution(), err
	}

	// Stage 2: engine.
	var e bbEngine
	e.n = proc.Rows()
	e.w = proc.Data()
	e.open = newFrontier(opts.Frontier)
	e.pool = newBufferPool(e.n)
	e.bestCost = math.Inf(1)
	e.ctx = ctx
	e.maxNodes = opts.MaxNodes
	e.checkEvery = opts.CheckEvery
	if e.checkEvery <= 0 {
		e.checkEvery = DefaultCheckEvery
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = start.Add(opts.TimeLimit)
	}
	e.onIncumbent = opts.OnIncumbent

	// Stage 3: root node.
	root := e.pool.cloneOf(e.w)
	rootBound := reduceFlat(root, e.n)
	e.stats.RootBound = rootBound
	e.push(&node{bound: rootBound, path: []int{0}, w: root})

	// Stage 4: search.
	err = e.run()
	e.stats.Elapsed = time.Since(start)

	return e.result(err == nil), err
}
