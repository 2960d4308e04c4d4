// Package conv provides checked integer conversions.
//
// The bitset engine indexes bits with int. Interop boundaries speak other
// widths: roaring bitmaps use uint32 positions and bits-and-blooms uses uint
// lengths. These helpers reject values that do not fit instead of wrapping.
package conv
