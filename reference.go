package dynbitset

// Reference is a handle to a single bit of a Bitset.
//
// A Reference is invalidated by any operation that reallocates the
// bitset's storage (Resize, PushBack, Append, ShrinkToFit, ...).
type Reference[B Block] struct {
	block *B
	mask  B
}

// Ref returns a reference to the bit at pos.
func (b *Bitset[B]) Ref(pos int) Reference[B] {
	b.checkIndex(pos)
	return Reference[B]{
		block: &b.blocks[pos/BlockBits[B]()],
		mask:  bitMask[B](pos),
	}
}

// Get reports whether the referenced bit is set.
func (r Reference[B]) Get() bool {
	return *r.block&r.mask != 0
}

// Not returns the negation of the referenced bit.
func (r Reference[B]) Not() bool {
	return !r.Get()
}

// Set sets the referenced bit.
func (r Reference[B]) Set() Reference[B] {
	*r.block |= r.mask
	return r
}

// Reset clears the referenced bit.
func (r Reference[B]) Reset() Reference[B] {
	*r.block &^= r.mask
	return r
}

// Flip toggles the referenced bit.
func (r Reference[B]) Flip() Reference[B] {
	*r.block ^= r.mask
	return r
}

// Assign sets the referenced bit to v.
func (r Reference[B]) Assign(v bool) Reference[B] {
	if v {
		return r.Set()
	}
	return r.Reset()
}

// AssignRef copies the value of another referenced bit.
func (r Reference[B]) AssignRef(other Reference[B]) Reference[B] {
	return r.Assign(other.Get())
}

// And sets the referenced bit to bit AND v.
func (r Reference[B]) And(v bool) Reference[B] {
	if !v {
		r.Reset()
	}
	return r
}

// Or sets the referenced bit to bit OR v.
func (r Reference[B]) Or(v bool) Reference[B] {
	if v {
		r.Set()
	}
	return r
}

// Xor sets the referenced bit to bit XOR v.
func (r Reference[B]) Xor(v bool) Reference[B] {
	if v {
		r.Flip()
	}
	return r
}

// Sub sets the referenced bit to bit AND NOT v.
func (r Reference[B]) Sub(v bool) Reference[B] {
	if v {
		r.Reset()
	}
	return r
}
