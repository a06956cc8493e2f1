package core

// Bond represents a chemical bond strictly between two atoms; it does
// not cater to multi-center bonding.
type Bond struct {
	mol *Molecule

	id int // stable, unique within the molecule

	a1, a2 *Atom
	order  BondOrder
	stereo BondStereo

	aromatic bool
	rings    []*Ring

	pairHash int
}

// pairHash computes the precomputed lookup hash for a bond between
// two atoms: 10000*min(id1,id2) + max(id1,id2), a function of the
// endpoints' input-ids only.
func pairHash(a1, a2 *Atom) int {
	if a1.inputID < a2.inputID {
		return 10000*a1.inputID + a2.inputID
	}
	return 10000*a2.inputID + a1.inputID
}

func newBond(mol *Molecule, id int, a1, a2 *Atom, order BondOrder) *Bond {
	return &Bond{
		mol:      mol,
		id:       id,
		a1:       a1,
		a2:       a2,
		order:    order,
		pairHash: pairHash(a1, a2),
	}
}

// ID returns the bond's stable, molecule-unique id.
func (b *Bond) ID() int { return b.id }

// Molecule returns the containing molecule.
func (b *Bond) Molecule() *Molecule { return b.mol }

// Atom1 returns the first endpoint.
func (b *Bond) Atom1() *Atom { return b.a1 }

// Atom2 returns the second endpoint.
func (b *Bond) Atom2() *Atom { return b.a2 }

// OtherAtom returns the endpoint of the bond that is not the given
// atom. Given any atom not in the bond, the second endpoint is
// returned (the core's internal scan loops rely on this bond always
// being looked up by an atom known, from context, to be one of its
// two endpoints).
func (b *Bond) OtherAtom(a *Atom) *Atom {
	if b.a2 == a {
		return b.a1
	}
	return b.a2
}

// Binds reports whether this bond connects exactly the given pair of
// atoms, in either order.
func (b *Bond) Binds(a1, a2 *Atom) bool {
	return (b.a1 == a1 && b.a2 == a2) || (b.a1 == a2 && b.a2 == a1)
}

// Order returns the bond's order tag.
func (b *Bond) Order() BondOrder { return b.order }

// Stereo returns the bond's stereo tag.
func (b *Bond) Stereo() BondStereo { return b.stereo }

// SetStereo sets the bond's stereo tag. Stereochemistry is stored
// passively; the core never derives or validates it.
func (b *Bond) SetStereo(s BondStereo) { b.stereo = s }

// IsAromatic reports whether the bond belongs to a ring that
// ring-aromaticity classification found aromatic.
func (b *Bond) IsAromatic() bool { return b.aromatic }

// IsCyclic reports whether the bond participates in at least one
// ring.
func (b *Bond) IsCyclic() bool { return len(b.rings) > 0 }

// NumberOfRings returns the number of rings this bond participates
// in.
func (b *Bond) NumberOfRings() int { return len(b.rings) }

// Rings returns a read-only snapshot of the rings this bond
// participates in.
func (b *Bond) Rings() []*Ring {
	out := make([]*Ring, len(b.rings))
	copy(out, b.rings)
	return out
}

// Hash returns the precomputed pair-hash for this bond's endpoints.
func (b *Bond) Hash() int { return b.pairHash }

func (b *Bond) resetRingState() {
	b.rings = b.rings[:0]
	b.aromatic = false
}

func (b *Bond) addRingRef(r *Ring) {
	for _, existing := range b.rings {
		if existing == r {
			return
		}
	}
	b.rings = append(b.rings, r)
}

func (b *Bond) removeRingRef(r *Ring) {
	for i, existing := range b.rings {
		if existing == r {
			b.rings = append(b.rings[:i], b.rings[i+1:]...)
			return
		}
	}
}
