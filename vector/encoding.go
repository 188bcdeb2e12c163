package vector

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeEmbedding packs float32 values into a little-endian BLOB without a
// length prefix; DecodeEmbedding derives the length from the BLOB size.
func EncodeEmbedding(vec []float32) ([]byte, error) {
	if len(vec) == 0 {
		return nil, nil
	}
	out := make([]byte, 0, 4*len(vec))
	for _, v := range vec {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
	}
	return out, nil
}

// DecodeEmbedding reverses EncodeEmbedding.
func DecodeEmbedding(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("vector: invalid embedding blob length %d (not multiple of 4)", len(b))
	}
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return out, nil
}

// EncodeVector stores the indexed coordinates of v as an embedding BLOB.
func EncodeVector(v Vector) []byte {
	b, _ := EncodeEmbedding(v.Embedding())
	return b
}

// DecodeVector rebuilds a Vector from a BLOB written by EncodeVector. The
// coordinates come back at float32 precision and must lie in [0, 1].
func DecodeVector(b []byte) (Vector, error) {
	coords, err := DecodeEmbedding(b)
	if err != nil {
		return Vector{}, err
	}
	if len(coords) != Indexed {
		return Vector{}, fmt.Errorf("vector: embedding has %d coordinates, want %d", len(coords), Indexed)
	}
	return Encode(float64(coords[Phi]), float64(coords[Tau]), float64(coords[Rho]), float64(coords[Entropy]))
}
