package dynbitset

import (
	"errors"
	"fmt"
)

var (
	// ErrDigitsCollide is returned when the zero and one digits are the same rune.
	ErrDigitsCollide = errors.New("zero and one digits must differ")
)

// ErrInvalidCharacter indicates a rune that is neither the zero nor the
// one digit. Index counts runes from the start of the input.
type ErrInvalidCharacter struct {
	Index int
	Char  rune
}

func (e *ErrInvalidCharacter) Error() string {
	return fmt.Sprintf("invalid character %q at index %d", e.Char, e.Index)
}

// ErrOffsetOutOfRange indicates a parse offset beyond the input length.
type ErrOffsetOutOfRange struct {
	Offset int
	Length int
}

func (e *ErrOffsetOutOfRange) Error() string {
	return fmt.Sprintf("offset %d out of range for input of length %d", e.Offset, e.Length)
}

// ErrIndexOutOfRange indicates a bit position outside [0, Size).
//
// Bit accessors panic with this value; interop constructors return it.
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range for bitset of size %d", e.Index, e.Size)
}

// ErrRangeOutOfBounds indicates a bit range [Pos, Pos+Len) that does not
// fit a bitset of Size bits.
type ErrRangeOutOfBounds struct {
	Pos  int
	Len  int
	Size int
}

func (e *ErrRangeOutOfBounds) Error() string {
	return fmt.Sprintf("range [%d, %d) out of bounds for bitset of size %d", e.Pos, e.Pos+e.Len, e.Size)
}

// ErrSizeMismatch indicates a binary operation on bitsets of different sizes.
type ErrSizeMismatch struct {
	Left  int
	Right int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("size mismatch: %d != %d", e.Left, e.Right)
}

// ErrInvalidArgument indicates a negative size, length or shift count.
type ErrInvalidArgument struct {
	Name  string
	Value int
}

func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid %s: %d", e.Name, e.Value)
}

// ErrTooLarge indicates a bitset that does not fit the index space of
// another representation.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrTooLarge struct {
	Size  uint64
	Limit uint64
	cause error
}

func (e *ErrTooLarge) Error() string {
	return fmt.Sprintf("bitset of %d bits exceeds limit of %d", e.Size, e.Limit)
}

func (e *ErrTooLarge) Unwrap() error { return e.cause }
