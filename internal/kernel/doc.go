// Package kernel provides block-slice operations shared by the bitset engine.
//
// Every kernel is generic over the block width (uint8, uint16, uint32,
// uint64) and works on equal-length slices. The binary kernels write into
// dst and never allocate.
//
// # Operations
//
//   - Boolean: And, AndNot, Or, Xor, Not
//   - Bulk: Fill
//   - Queries: Popcount, FirstNonZero
//
// # Popcount Strategies
//
// Popcount dispatches to one of two strategies selected once at package
// init:
//
//   - Hardware: math/bits population count, lowered to POPCNT (x86-64) or
//     CNT (ARM64) by the compiler
//   - Table: byte lookup table, used when the CPU reports no population
//     count instruction
//
// Set DYNBITSET_POPCOUNT=hardware|table to force a strategy. Both produce
// identical results; the choice only affects speed.
package kernel
