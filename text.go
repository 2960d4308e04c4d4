package dynbitset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Text renders the bitset most-significant bit first: the first rune is
// bit Len()-1 and the last rune is bit 0.
func (b *Bitset[B]) Text(zero, one rune) string {
	if b.n == 0 {
		return ""
	}

	if zero < utf8.RuneSelf && one < utf8.RuneSelf && zero >= 0 && one >= 0 {
		buf := bytes.Repeat([]byte{byte(zero)}, b.n)
		b.ForEach(func(pos int) bool {
			buf[b.n-1-pos] = byte(one)
			return true
		})
		return string(buf)
	}

	runes := make([]rune, b.n)
	for i := range runes {
		runes[i] = zero
	}
	b.ForEach(func(pos int) bool {
		runes[b.n-1-pos] = one
		return true
	})
	return string(runes)
}

// String renders the bitset with '0' and '1', most-significant bit first.
func (b *Bitset[B]) String() string {
	return b.Text('0', '1')
}

// MarshalText implements encoding.TextMarshaler.
func (b *Bitset[B]) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On error b is unchanged.
func (b *Bitset[B]) UnmarshalText(text []byte) error {
	parsed, err := Parse[B](string(text))
	if err != nil {
		return err
	}
	b.blocks, b.n = parsed.blocks, parsed.n
	return nil
}

// WriteTo writes the String form of b to w.
func (b *Bitset[B]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// Parse builds a bitset from s, read most-significant bit first.
//
// WithOffset and WithLength select a rune window of s. The window's last
// rune becomes bit 0. An empty window yields an empty bitset.
func Parse[B Block](s string, opts ...Option) (*Bitset[B], error) {
	o := applyOptions(opts)
	if o.zero == o.one {
		return nil, ErrDigitsCollide
	}

	runes := []rune(s)
	if o.offset < 0 || o.offset > len(runes) {
		err := &ErrOffsetOutOfRange{Offset: o.offset, Length: len(runes)}
		o.logger.LogParse(len(runes), err)
		return nil, err
	}

	window := runes[o.offset:]
	if o.length >= 0 && o.length < len(window) {
		window = window[:o.length]
	}

	m := len(window)
	b := NewSized[B](m)
	w := BlockBits[B]()
	for k, r := range window {
		switch r {
		case o.one:
			pos := m - 1 - k
			b.blocks[pos/w] |= bitMask[B](pos)
		case o.zero:
		default:
			err := &ErrInvalidCharacter{Index: o.offset + k, Char: r}
			o.logger.LogParse(m, err)
			return nil, err
		}
	}

	o.logger.LogParse(m, nil)
	return b, nil
}

// MustParse is like Parse but panics on error.
func MustParse[B Block](s string, opts ...Option) *Bitset[B] {
	b, err := Parse[B](s, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Read replaces the contents of b with the longest run of digits read
// from r, most-significant bit first. The first non-digit rune is unread
// and ends the run.
//
// Read returns the number of bits read. It returns io.EOF only when r is
// exhausted before any digit; a non-digit first rune yields (0, nil) and
// an empty b. Only WithDigits and WithLogger apply.
func Read[B Block](r io.RuneScanner, b *Bitset[B], opts ...Option) (int, error) {
	o := applyOptions(opts)
	if o.zero == o.one {
		return 0, ErrDigitsCollide
	}

	n, stop, err := readDigits(r, b, o)
	o.logger.LogRead(n, stop, err)
	return n, err
}

// Scan implements fmt.Scanner. It accepts the verbs %v, %s and %b and
// fails if no digit is found after leading space.
func (b *Bitset[B]) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'v', 's', 'b':
	default:
		return fmt.Errorf("dynbitset: unsupported scan verb %%%c", verb)
	}

	state.SkipSpace()
	o := applyOptions(nil)
	n, stop, err := readDigits(state, b, o)
	if err == nil && n == 0 {
		err = &ErrInvalidCharacter{Index: 0, Char: stop}
	}
	o.logger.LogRead(n, stop, err)
	return err
}

// readDigits consumes digits from r into b. stop is the rune that ended
// the run, or zero at end of input.
func readDigits[B Block](r io.RuneScanner, b *Bitset[B], o options) (int, rune, error) {
	var digits []bool
	var stop rune
	var err error

	for {
		ch, _, rerr := r.ReadRune()
		if rerr != nil {
			if !errors.Is(rerr, io.EOF) || len(digits) == 0 {
				err = rerr
			}
			break
		}
		if ch == o.one || ch == o.zero {
			digits = append(digits, ch == o.one)
			continue
		}
		stop = ch
		err = r.UnreadRune()
		break
	}

	m := len(digits)
	b.Clear()
	b.Resize(m)
	w := BlockBits[B]()
	for k, one := range digits {
		if one {
			pos := m - 1 - k
			b.blocks[pos/w] |= bitMask[B](pos)
		}
	}
	return m, stop, err
}
