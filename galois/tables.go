package galois

// Table construction. Grounded on the teacher's server/infectious
// table generation (tables.go: mul_for_table/GentableNPIO build a
// fixed-generator GF(2^16)/GF(2^32) exp/log table pair by repeated
// polynomial multiplication by the generator) generalized to
// arbitrary (p, k, g) per §4.A, plus the p != 2 "wide slot" packing
// and normalise table described in §3/§9.

// buildBinaryTables implements the p == 2 construction of §4.A:
// addition is XOR, negation is the identity, and multiplying the
// running power of alpha by alpha is a left shift with a conditional
// XOR against the packed generator when the top bit is set.
func (f *Field) buildBinaryTables(g []uint32) error {
	k := f.k
	q := f.q
	mask := Element(q - 1)

	var generator Element
	for i := uint32(0); i < k; i++ {
		if g[i] != 0 {
			generator |= 1 << i
		}
	}

	f.logToPoly = make([]Element, 2*(q-1))
	f.polyToLog = make([]uint32, q)
	f.polyToLog[0] = q - 1 // impossible log of zero, guarded at every call site

	poly := Element(1)
	for j := uint32(0); j < q-1; j++ {
		f.logToPoly[j] = poly
		f.polyToLog[poly] = j

		top := (poly >> (k - 1)) & 1
		poly = (poly << 1) & mask
		if top != 0 {
			poly ^= generator
		}
	}
	f.duplicateLogTable()
	return nil
}

// buildGeneralTables implements the p != 2 construction: a normalise
// table rebalances sums of two canonical "wide slot" packed values,
// then the same alpha-power walk as the binary case, except that
// multiplying by alpha scales the shifted-out top slot's contribution
// by the field's scalar multiplication instead of XOR.
func (f *Field) buildGeneralTables(g []uint32) error {
	p, k := f.p, f.k
	f.slotWidth = slotWidthFor(p)
	f.slotMask = (1 << f.slotWidth) - 1

	rawBits := k * f.slotWidth
	if rawBits >= 31 {
		return ErrFieldTooLarge
	}
	rawSize := uint32(1) << rawBits

	f.normalise = make([]Element, rawSize)
	for v := uint32(0); v < rawSize; v++ {
		canonical, ok := f.canonicalizeRaw(v)
		if !ok {
			f.normalise[v] = 0 // unreachable slot pattern; value never consulted
			continue
		}
		f.normalise[v] = canonical
	}

	genDigits := make([]uint32, k)
	copy(genDigits, g[:k])
	generator := f.Negate(f.packSlots(genDigits))

	q := f.q
	f.logToPoly = make([]Element, 2*(q-1))
	f.polyToLog = make([]uint32, rawSize)
	f.polyToLog[0] = q - 1

	fullMask := f.slotFullValueMask()
	poly := Element(1)
	for j := uint32(0); j < q-1; j++ {
		f.logToPoly[j] = poly
		f.polyToLog[poly] = j

		top := f.getSlot(poly, k-1)
		shifted := (poly << f.slotWidth) & fullMask
		if top != 0 {
			contribution := f.scaleSlots(generator, top)
			poly = f.normalise[shifted+contribution]
		} else {
			poly = shifted
		}
	}
	f.duplicateLogTable()
	return nil
}

func (f *Field) duplicateLogTable() {
	q := f.q
	for i := uint32(0); i+q-1 < uint32(len(f.logToPoly)); i++ {
		f.logToPoly[q-1+i] = f.logToPoly[i]
	}
}

// slotWidthFor returns ceil(log2(2p)), the slot width in bits needed
// so that the sum of two canonical digits in [0, p) never carries
// into the neighboring slot.
func slotWidthFor(p uint32) uint32 {
	limit := uint32(2 * p)
	w := uint32(0)
	for (uint32(1) << w) < limit {
		w++
	}
	return w
}

// packSlots packs k digits (low to high, each expected in [0, p)) into
// a single Element using the field's slot width.
func (f *Field) packSlots(digits []uint32) Element {
	var v Element
	for i, d := range digits {
		v |= Element(d) << (uint32(i) * f.slotWidth)
	}
	return v
}

// getSlot extracts digit i (0-indexed) from a packed raw value.
func (f *Field) getSlot(v Element, i uint32) uint32 {
	return uint32(v>>(i*f.slotWidth)) & f.slotMask
}

// scaleSlots multiplies every digit of v by scalar, mod p, without
// carrying between slots — the field's notion of "multiply a vector
// of 𝔽_p coefficients by a scalar", distinct from multiplying the
// raw packed integers together.
func (f *Field) scaleSlots(v Element, scalar uint32) Element {
	digits := make([]uint32, f.k)
	for i := uint32(0); i < f.k; i++ {
		digits[i] = (f.getSlot(v, i) * scalar) % f.p
	}
	return f.packSlots(digits)
}

// canonicalizeRaw decomposes a raw (possibly inconsistent) packed
// value into its k slots, rejects it if any slot holds a value that
// could never arise from summing two canonical digits (>= 2p), and
// otherwise reduces every slot mod p.
func (f *Field) canonicalizeRaw(v uint32) (Element, bool) {
	digits := make([]uint32, f.k)
	for i := uint32(0); i < f.k; i++ {
		slot := (v >> (i * f.slotWidth)) & f.slotMask
		if slot >= 2*f.p {
			return 0, false
		}
		if slot >= f.p {
			slot -= f.p
		}
		digits[i] = slot
	}
	return f.packSlots(digits), true
}

// slotFullMask returns M, the packed value with a 1 in the low bit of
// every slot (used to build p*M, the all-p packed value, in Negate).
func (f *Field) slotFullMask() Element {
	var m Element
	for i := uint32(0); i < f.k; i++ {
		m |= 1 << (i * f.slotWidth)
	}
	return m
}

// slotFullValueMask returns the mask covering exactly k slots (used
// to drop the slot that shifts out past the top during the alpha
// multiplication walk).
func (f *Field) slotFullValueMask() Element {
	return (Element(1) << (f.k * f.slotWidth)) - 1
}
