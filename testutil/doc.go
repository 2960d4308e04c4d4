// Package testutil provides testing utilities for dynbitset.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source and generators for
// bit strings, bool models and raw blocks, plus a storage invariant check.
//
// # Random Inputs
//
//	rng := testutil.NewRNG(testutil.DefaultConfig.Seed)
//	s := rng.BitString(100)              // "0110...", MSB first
//	bits := rng.Bools(100)               // bit i at index i
//	blocks := testutil.Blocks[uint16](rng, 4)
//
// # Invariants
//
//	err := testutil.CheckConsistency(b) // block count and zero padding
package testutil
