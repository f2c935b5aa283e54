package bench

import (
	"math/rand"
)

// DatasetGenerator produces the deterministic keysets the benchmarks
// run against. Two generators with the same Seed and Size yield the
// same data.
type DatasetGenerator struct {
	Seed int64
	Size int
}

// Random returns Size unique keys sampled without replacement from
// [0, 10*Size). Rejection sampling against a seen-set keeps memory at
// O(Size); with a 10x range the retry rate stays low.
func (g DatasetGenerator) Random() []int64 {
	rng := rand.New(rand.NewSource(g.Seed))
	limit := int64(g.Size) * 10

	seen := make(map[int64]struct{}, g.Size)
	keys := make([]int64, 0, g.Size)
	for len(keys) < g.Size {
		k := rng.Int63n(limit)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// Sequential returns the keys [0, Size) in ascending order.
func (g DatasetGenerator) Sequential() []int64 {
	keys := make([]int64, g.Size)
	for i := range keys {
		keys[i] = int64(i)
	}
	return keys
}

// SampleKeys returns n distinct keys drawn uniformly from data.
func SampleKeys(rng *rand.Rand, data []int64, n int) []int64 {
	if n > len(data) {
		n = len(data)
	}
	keys := make([]int64, n)
	for i, j := range rng.Perm(len(data))[:n] {
		keys[i] = data[j]
	}
	return keys
}

// SkewedSearchKeys resamples n keys from data with Zipfian rank
// weights, so a few keys dominate the stream. skew must be > 1; closer
// to 1 means heavier skew.
func SkewedSearchKeys(rng *rand.Rand, data []int64, n int, skew float64) []int64 {
	zipf := rand.NewZipf(rng, skew, 1, uint64(len(data)-1))
	keys := make([]int64, n)
	for i := range keys {
		keys[i] = data[zipf.Uint64()]
	}
	return keys
}

type OpKind uint8

const (
	OpInsert OpKind = iota
	OpSearch
	OpDelete
)

func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpSearch:
		return "search"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Op is a single step of a mixed workload.
type Op struct {
	Kind OpKind
	Key  int64
}

// MixedWorkload builds an operation stream over values with a 60%
// insert, 30% search, 10% delete split. Searches and deletes target
// keys from the earlier part of the value stream, so absent-key no-ops
// stay rare.
func MixedWorkload(rng *rand.Rand, values []int64) []Op {
	ops := make([]Op, 0, len(values))
	for i, v := range values {
		switch r := rng.Float64(); {
		case r < 0.6:
			ops = append(ops, Op{Kind: OpInsert, Key: v})
		case r < 0.9:
			if i > 0 {
				ops = append(ops, Op{Kind: OpSearch, Key: values[rng.Intn(i)]})
			}
		default:
			if i > 0 {
				ops = append(ops, Op{Kind: OpDelete, Key: values[rng.Intn(i)]})
			}
		}
	}
	return ops
}

// sampleCount is the number of search/delete keys used for a dataset
// of the given size: a tenth of the dataset capped at 10k, at least 1.
func sampleCount(size int) int {
	n := size / 10
	if n > 10_000 {
		n = 10_000
	}
	if n < 1 {
		n = 1
	}
	return n
}
