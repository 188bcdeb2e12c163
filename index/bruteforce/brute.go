package bruteforce

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/viant/conduit/vector"
)

// Index is a simple brute-force Euclidean vector index.
type Index struct {
	ids  []string
	vecs [][]float32
	dim  int
}

// Build loads ids and vectors, preserving their order.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("bruteforce: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	if len(ids) == 0 {
		i.ids, i.vecs, i.dim = nil, nil, 0
		return nil
	}
	dim := len(vectors[0])
	for j := range vectors {
		if len(vectors[j]) != dim {
			return fmt.Errorf("bruteforce: inconsistent vector dims %d vs %d", len(vectors[j]), dim)
		}
	}
	i.ids = append([]string(nil), ids...)
	i.vecs = append([][]float32(nil), vectors...)
	i.dim = dim
	return nil
}

// Len reports the number of indexed vectors.
func (i *Index) Len() int { return len(i.ids) }

// Query returns the k nearest entries by Euclidean distance.
func (i *Index) Query(query []float32, k int) ([]string, []float64, error) {
	if i.dim == 0 || len(i.vecs) == 0 {
		return nil, nil, nil
	}
	if len(query) != i.dim {
		return nil, nil, fmt.Errorf("bruteforce: query dim %d != index dim %d", len(query), i.dim)
	}
	type scored struct {
		idx  int
		dist float64
	}
	scoreds := make([]scored, 0, len(i.vecs))
	for j := range i.vecs {
		d, err := vector.L2Distance(query, i.vecs[j])
		if err != nil {
			return nil, nil, err
		}
		if math.IsNaN(d) {
			continue
		}
		scoreds = append(scoreds, scored{idx: j, dist: d})
	}
	sort.SliceStable(scoreds, func(a, b int) bool { return scoreds[a].dist < scoreds[b].dist })
	if k <= 0 || k > len(scoreds) {
		k = len(scoreds)
	}
	outIDs := make([]string, k)
	outDists := make([]float64, k)
	for n := 0; n < k; n++ {
		outIDs[n] = i.ids[scoreds[n].idx]
		outDists[n] = scoreds[n].dist
	}
	return outIDs, outDists, nil
}

// MarshalBinary stores: dim(uint32), n(uint32), then for each item:
// idLen(uint32), id bytes, vec(float32[dim]).
func (i *Index) MarshalBinary() ([]byte, error) {
	return Encode(i.ids, i.vecs, i.dim), nil
}

// UnmarshalBinary restores the index from bytes.
func (i *Index) UnmarshalBinary(data []byte) error {
	ids, vecs, err := Decode(data)
	if err != nil {
		return err
	}
	return i.Build(ids, vecs)
}

// Encode writes ids and vectors in the brute-force binary format. Other
// index kinds reuse it for persistence.
func Encode(ids []string, vecs [][]float32, dim int) []byte {
	if dim == 0 || len(vecs) == 0 {
		buf := make([]byte, 8)
		return buf
	}
	size := 8
	for _, id := range ids {
		size += 4 + len(id) + 4*dim
	}
	out := make([]byte, 0, size)
	out = binary.LittleEndian.AppendUint32(out, uint32(dim))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(ids)))
	for idx, id := range ids {
		out = binary.LittleEndian.AppendUint32(out, uint32(len(id)))
		out = append(out, id...)
		for _, v := range vecs[idx][:dim] {
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
		}
	}
	return out
}

// Decode parses the brute-force binary format.
func Decode(data []byte) ([]string, [][]float32, error) {
	if len(data) < 8 {
		return nil, nil, errors.New("bruteforce: invalid data")
	}
	off := 0
	getU32 := func() uint32 { v := binary.LittleEndian.Uint32(data[off : off+4]); off += 4; return v }
	dim := int(getU32())
	n := int(getU32())
	ids := make([]string, n)
	vecs := make([][]float32, n)
	for idx := 0; idx < n; idx++ {
		if off+4 > len(data) {
			return nil, nil, errors.New("bruteforce: truncated")
		}
		idlen := int(getU32())
		if off+idlen > len(data) {
			return nil, nil, errors.New("bruteforce: truncated id")
		}
		ids[idx] = string(data[off : off+idlen])
		off += idlen
		if off+4*dim > len(data) {
			return nil, nil, errors.New("bruteforce: truncated vec")
		}
		vec := make([]float32, dim)
		for j := 0; j < dim; j++ {
			vec[j] = math.Float32frombits(getU32())
		}
		vecs[idx] = vec
	}
	return ids, vecs, nil
}
