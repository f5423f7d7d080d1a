package nullspace

import (
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"gonum.org/v1/gonum/mat"
)

// Memo is a lazily populated store of null-space bases, keyed by edge
// count. The zero value is ready for use. A Memo is safe for concurrent
// use by multiple goroutines.
//
// Bases handed out by a Memo are shared between all callers and must be
// treated as read-only.
type Memo struct {
	mu    sync.Mutex
	bases *treemap.Map // edge count -> *mat.Dense
}

// Basis returns the basis for numEdges, computing and caching it on first
// request.
func (m *Memo) Basis(numEdges int) (*mat.Dense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bases == nil {
		m.bases = treemap.NewWithIntComparator()
	}
	if b, ok := m.bases.Get(numEdges); ok {
		return b.(*mat.Dense), nil
	}
	b, err := Basis(numEdges)
	if err != nil {
		return nil, err
	}
	m.bases.Put(numEdges, b)
	tracer().Infof("memoized null-space basis for %d edges", numEdges)
	return b, nil
}

// Sizes returns the edge counts with a cached basis, in ascending order.
func (m *Memo) Sizes() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bases == nil {
		return nil
	}
	keys := m.bases.Keys()
	sizes := make([]int, len(keys))
	for i, k := range keys {
		sizes[i] = k.(int)
	}
	return sizes
}

var shared Memo

// Shared returns the process-wide memoized basis for numEdges. Spline
// descriptors with equal segment counts share one basis matrix this way.
func Shared(numEdges int) (*mat.Dense, error) {
	return shared.Basis(numEdges)
}
