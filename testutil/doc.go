// Package testutil provides testing utilities for Embedgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random vectors and for rendering
// them as embedding tables in the text format the loader reads.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vec := make([]float32, 128)
//	rng.FillUniform(vec) // uniform [0, 1)
//
// # Embedding Tables
//
//	vectors := rng.UniformRangeVectors(100, 32)
//	table := testutil.Table(vectors) // "key0 ...\nkey1 ...\n"
package testutil
