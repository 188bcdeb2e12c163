package cover

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/viant/conduit/index/bruteforce"
	"github.com/viant/conduit/vector"
)

// Magic prefixes serialized cover indexes.
var Magic = []byte("VPT1")

// Index implements a Euclidean kNN index using a VP-tree to prune search.
type Index struct {
	ids  []string
	vecs [][]float32
	dim  int
	root *node
}

type node struct {
	idx   int // index into ids/vecs
	thr   float64
	left  *node
	right *node
}

// tolerance absorbs float32 rounding in the triangle inequality.
const tolerance = 1e-5

type cand struct {
	idx  int
	dist float64
}

// before orders candidates by distance, then insertion order.
func (c cand) before(o cand) bool {
	if c.dist != o.dist {
		return c.dist < o.dist
	}
	return c.idx < o.idx
}

// Build constructs the VP-tree.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("cover: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	i.ids = append([]string(nil), ids...)
	i.vecs = append([][]float32(nil), vectors...)
	if len(vectors) == 0 {
		i.dim = 0
		i.root = nil
		return nil
	}
	i.dim = len(vectors[0])
	for j := range vectors {
		if len(vectors[j]) != i.dim {
			return fmt.Errorf("cover: inconsistent vector dims %d vs %d", len(vectors[j]), i.dim)
		}
	}
	idxs := make([]int, len(vectors))
	for k := range idxs {
		idxs[k] = k
	}
	i.root = i.buildVP(idxs)
	return nil
}

// Len reports the number of indexed vectors.
func (i *Index) Len() int { return len(i.ids) }

func (i *Index) distance(a, b []float32) float64 {
	d, _ := vector.L2Distance(a, b)
	return d
}

func (i *Index) buildVP(idxs []int) *node {
	if len(idxs) == 0 {
		return nil
	}
	// last element is the vantage point; keeps builds deterministic
	vp := idxs[len(idxs)-1]
	idxs = idxs[:len(idxs)-1]
	if len(idxs) == 0 {
		return &node{idx: vp}
	}
	dists := make([]float64, len(idxs))
	for k, j := range idxs {
		dists[k] = i.distance(i.vecs[vp], i.vecs[j])
	}
	mid := len(dists) / 2
	order := make([]int, len(idxs))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool { return dists[order[a]] < dists[order[b]] })
	thr := dists[order[mid]]
	leftIdxs := make([]int, 0, mid+1)
	rightIdxs := make([]int, 0, len(idxs)-(mid+1))
	for rank, k := range order {
		if rank <= mid {
			leftIdxs = append(leftIdxs, idxs[k])
		} else {
			rightIdxs = append(rightIdxs, idxs[k])
		}
	}
	return &node{
		idx:   vp,
		thr:   thr,
		left:  i.buildVP(leftIdxs),
		right: i.buildVP(rightIdxs),
	}
}

// Query returns up to k ids ordered by ascending Euclidean distance.
func (i *Index) Query(query []float32, k int) ([]string, []float64, error) {
	if i.dim == 0 || len(i.vecs) == 0 {
		return nil, nil, nil
	}
	if len(query) != i.dim {
		return nil, nil, fmt.Errorf("cover: query dim %d != index dim %d", len(query), i.dim)
	}
	if k <= 0 || k > len(i.vecs) {
		k = len(i.vecs)
	}
	best := make([]cand, 0, k)
	bound := math.Inf(1)
	worst := func() int {
		w := 0
		for t := 1; t < len(best); t++ {
			if best[w].before(best[t]) {
				w = t
			}
		}
		return w
	}
	var search func(n *node)
	search = func(n *node) {
		if n == nil {
			return
		}
		c := cand{idx: n.idx, dist: i.distance(query, i.vecs[n.idx])}
		if len(best) < k {
			best = append(best, c)
			if len(best) == k {
				bound = best[worst()].dist
			}
		} else if w := worst(); c.before(best[w]) {
			best[w] = c
			bound = best[worst()].dist
		}
		// inclusive bounds with slack keep equal-distance entries reachable
		d := c.dist
		r := bound + tolerance
		if d < n.thr {
			if d-r <= n.thr {
				search(n.left)
			}
			if d+r >= n.thr {
				search(n.right)
			}
		} else {
			if d+r >= n.thr {
				search(n.right)
			}
			if d-r <= n.thr {
				search(n.left)
			}
		}
	}
	search(i.root)
	sort.Slice(best, func(a, b int) bool { return best[a].before(best[b]) })
	ids := make([]string, len(best))
	dists := make([]float64, len(best))
	for n, c := range best {
		ids[n] = i.ids[c.idx]
		dists[n] = c.dist
	}
	return ids, dists, nil
}

// MarshalBinary writes Magic followed by the brute-force format.
func (i *Index) MarshalBinary() ([]byte, error) {
	body := bruteforce.Encode(i.ids, i.vecs, i.dim)
	return append(append([]byte(nil), Magic...), body...), nil
}

// UnmarshalBinary decodes the format written by MarshalBinary and rebuilds
// the tree.
func (i *Index) UnmarshalBinary(data []byte) error {
	if !bytes.HasPrefix(data, Magic) {
		return errors.New("cover: missing magic prefix")
	}
	ids, vecs, err := bruteforce.Decode(data[len(Magic):])
	if err != nil {
		return err
	}
	return i.Build(ids, vecs)
}
