package bench

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/dina-adel/Advanced-Data-Structures-Analysis/core"
)

const progressInterval = 100_000

// DefaultSkew is the Zipf parameter for skewed search workloads.
const DefaultSkew = 1.1

// Runner drives the three engines through generated workloads and
// records elapsed wall time per engine, operation, pattern, and size.
type Runner struct {
	Log        zerolog.Logger
	Seed       int64
	SkewFactor float64

	// optional instrumentation, wired by the binary
	MetricOpCount  prometheus.Counter
	MetricTreeSize prometheus.Gauge

	Results Results
}

// Run dispatches one benchmark suite. op is one of insert, search,
// delete, mixed; pattern is random, sequential, or skewed (search
// only). Mixed ignores the pattern.
func (r *Runner) Run(op, pattern string, sizes []int) error {
	switch op {
	case "insert":
		if pattern != "random" && pattern != "sequential" {
			return fmt.Errorf("unknown insert pattern %q", pattern)
		}
		return r.RunInsert(pattern, sizes)
	case "search":
		if pattern != "random" && pattern != "sequential" && pattern != "skewed" {
			return fmt.Errorf("unknown search pattern %q", pattern)
		}
		return r.RunSearch(pattern, sizes)
	case "delete":
		if pattern != "random" && pattern != "sequential" {
			return fmt.Errorf("unknown delete pattern %q", pattern)
		}
		return r.RunDelete(pattern, sizes)
	case "mixed":
		return r.RunMixed(sizes)
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
}

// buildData returns the keyset the tree is populated from. Skewed
// search workloads run against random base data, like random ones.
func (r *Runner) buildData(pattern string, size int) []int64 {
	gen := DatasetGenerator{Seed: r.Seed, Size: size}
	if pattern == "sequential" {
		return gen.Sequential()
	}
	return gen.Random()
}

func (r *Runner) skew() float64 {
	if r.SkewFactor > 1 {
		return r.SkewFactor
	}
	return DefaultSkew
}

// RunInsert times inserting the full dataset into an empty tree.
func (r *Runner) RunInsert(pattern string, sizes []int) error {
	for _, size := range sizes {
		data := r.buildData(pattern, size)
		for _, kind := range TreeKinds {
			tree, err := NewTree(kind)
			if err != nil {
				return err
			}
			elapsed := r.timeInserts(tree, data)
			r.finishPass(tree, kind, "insert", pattern, size, len(data), elapsed)
		}
	}
	return nil
}

// RunSearch populates the tree untimed, then times the search pass.
func (r *Runner) RunSearch(pattern string, sizes []int) error {
	for _, size := range sizes {
		data := r.buildData(pattern, size)
		rng := rand.New(rand.NewSource(r.Seed))

		var searchKeys []int64
		if pattern == "skewed" {
			searchKeys = SkewedSearchKeys(rng, data, sampleCount(size), r.skew())
		} else {
			searchKeys = SampleKeys(rng, data, sampleCount(size))
		}

		for _, kind := range TreeKinds {
			tree, err := NewTree(kind)
			if err != nil {
				return err
			}
			for _, k := range data {
				tree.Insert(k)
			}

			start := time.Now()
			for i, k := range searchKeys {
				tree.Search(k)
				r.tick("search", i)
			}
			r.finishPass(tree, kind, "search", pattern, size, len(searchKeys), time.Since(start))
		}
	}
	return nil
}

// RunDelete populates the tree untimed, then times the delete pass.
func (r *Runner) RunDelete(pattern string, sizes []int) error {
	for _, size := range sizes {
		data := r.buildData(pattern, size)
		rng := rand.New(rand.NewSource(r.Seed))
		deleteKeys := SampleKeys(rng, data, sampleCount(size))

		for _, kind := range TreeKinds {
			tree, err := NewTree(kind)
			if err != nil {
				return err
			}
			for _, k := range data {
				tree.Insert(k)
			}

			start := time.Now()
			for i, k := range deleteKeys {
				tree.Delete(k)
				r.tick("delete", i)
			}
			r.finishPass(tree, kind, "delete", pattern, size, len(deleteKeys), time.Since(start))
		}
	}
	return nil
}

// RunMixed times a 60/30/10 insert/search/delete stream over random
// values; the same stream is replayed against every engine.
func (r *Runner) RunMixed(sizes []int) error {
	for _, size := range sizes {
		values := DatasetGenerator{Seed: r.Seed, Size: size}.Random()
		ops := MixedWorkload(rand.New(rand.NewSource(r.Seed)), values)

		for _, kind := range TreeKinds {
			tree, err := NewTree(kind)
			if err != nil {
				return err
			}

			start := time.Now()
			for i, op := range ops {
				switch op.Kind {
				case OpInsert:
					tree.Insert(op.Key)
				case OpSearch:
					tree.Search(op.Key)
				case OpDelete:
					tree.Delete(op.Key)
				}
				r.tick("mixed", i)
			}
			r.finishPass(tree, kind, "mixed", "mixed", size, len(ops), time.Since(start))
		}
	}
	return nil
}

func (r *Runner) timeInserts(tree core.Tree[int64], keys []int64) time.Duration {
	start := time.Now()
	for i, k := range keys {
		tree.Insert(k)
		r.tick("insert", i)
	}
	return time.Since(start)
}

func (r *Runner) tick(op string, i int) {
	if r.MetricOpCount != nil {
		r.MetricOpCount.Inc()
	}
	if (i+1)%progressInterval == 0 {
		r.Log.Debug().Str("op", op).Msgf("processed %s ops", humanize.Comma(int64(i+1)))
	}
}

// finishPass records the elapsed time and logs throughput plus
// allocation stats, matching what the plots are built from.
func (r *Runner) finishPass(tree core.Tree[int64], kind, op, pattern string, size, n int, elapsed time.Duration) {
	if r.Results != nil {
		r.Results.record(kind, op, pattern, size, elapsed.Seconds())
	}
	if r.MetricTreeSize != nil {
		r.MetricTreeSize.Set(float64(tree.Size()))
	}

	opsPerSec := int64(0)
	if elapsed > 0 {
		opsPerSec = int64(float64(n) / elapsed.Seconds())
	}
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	r.Log.Info().
		Str("tree", kind).
		Str("op", op).
		Str("case", fmt.Sprintf("%s_%d", pattern, size)).
		Dur("duration", elapsed).
		Str("ops_per_sec", humanize.Comma(opsPerSec)).
		Int("tree_size", tree.Size()).
		Str("mem_alloc", humanize.Bytes(memStats.Alloc)).
		Str("mem_sys", humanize.Bytes(memStats.Sys)).
		Str("mem_num_gc", humanize.Comma(int64(memStats.NumGC))).
		Msg("pass complete")
}
