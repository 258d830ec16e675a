// SPDX-License-Identifier: MIT

// Package rng centralizes deterministic random generation for the solver,
// the input generator and the CLI.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: one RNG factory; no time-based or process-wide sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; use Derive to split independent streams.
package rng

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// OrDefault returns r, or a DefaultSeed stream when r is nil.
func OrDefault(r *rand.Rand) *rand.Rand {
	if r == nil {
		return FromSeed(0)
	}
	return r
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent deterministic stream from base and a stream
// id. base.Int63() is consumed once, so deriving twice with the same id
// still yields different children. A nil base uses DefaultSeed as parent.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// SampleWithReplacement draws k indices independently and uniformly from
// [0, n). Repeats are expected: this is sampling, not a permutation.
// Returns nil when n <= 0 or k <= 0.
//
// Complexity: O(k) time and space.
func SampleWithReplacement(r *rand.Rand, n, k int) []int {
	if n <= 0 || k <= 0 {
		return nil
	}
	r = OrDefault(r)
	out := make([]int, k)
	for i := range out {
		out[i] = r.Intn(n)
	}
	return out
}

// Uniform fills a fresh slice of length n with draws from [0, 1).
//
// Complexity: O(n).
func Uniform(r *rand.Rand, n int) []float64 {
	if n <= 0 {
		return nil
	}
	r = OrDefault(r)
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Float64()
	}
	return out
}
