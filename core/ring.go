package core

import "github.com/arborchem/molcore/bitset"

// Ring represents a simple cycle in a molecule: an ordered sequence of
// atoms and the bonds connecting consecutive atoms, including the
// closing bond back to the first atom. A ring is created bound to a
// molecule and cannot be re-bound. It is built incrementally via
// appendAtom and frozen by complete; every method other than those two
// is only meaningful on a completed ring.
type Ring struct {
	mol *Molecule
	id  int

	atoms []*Atom
	bonds []*Bond
	nbrs  []*Ring

	aromatic       bool
	heteroAromatic bool
	completed      bool

	atomBits *bitset.Set
	bondBits *bitset.Set

	ringSystemID int
}

func newRing(mol *Molecule) *Ring {
	return &Ring{
		mol:      mol,
		atomBits: bitset.New(mol.numberOfAtomSlots()),
		bondBits: bitset.New(mol.numberOfBondSlots()),
	}
}

// Molecule returns the containing molecule.
func (r *Ring) Molecule() *Molecule { return r.mol }

// ID returns the ring's unique id within its molecule.
func (r *Ring) ID() int { return r.id }

// Size returns the number of atoms (equivalently, bonds) in the ring.
func (r *Ring) Size() int { return len(r.atoms) }

// IsAromatic reports whether the ring is aromatic in its current
// configuration.
func (r *Ring) IsAromatic() bool { return r.aromatic }

// IsHeteroAromatic reports whether the ring is aromatic and involves
// at least one hetero atom. Implies IsAromatic.
func (r *Ring) IsHeteroAromatic() bool { return r.heteroAromatic }

// IsCompleted reports whether the ring has been frozen by complete.
func (r *Ring) IsCompleted() bool { return r.completed }

// RingSystemID returns the id of the ring system this ring belongs
// to, or 0 if it has not yet been grouped into one.
func (r *Ring) RingSystemID() int { return r.ringSystemID }

func (r *Ring) setRingSystemID(id int) { r.ringSystemID = id }

// Atom returns the atom in this ring with the given normalised id, or
// nil if no such atom participates.
func (r *Ring) Atom(id int) *Atom {
	for _, a := range r.atoms {
		if a.id == id {
			return a
		}
	}
	return nil
}

// Bond returns the bond in this ring with the given id, or nil if no
// such bond participates.
func (r *Ring) Bond(id int) *Bond {
	for _, b := range r.bonds {
		if b.id == id {
			return b
		}
	}
	return nil
}

// Atoms returns a read-only snapshot of the ring's atoms, in order.
func (r *Ring) Atoms() []*Atom {
	out := make([]*Atom, len(r.atoms))
	copy(out, r.atoms)
	return out
}

// Bonds returns a read-only snapshot of the ring's bonds, in order.
func (r *Ring) Bonds() []*Bond {
	out := make([]*Bond, len(r.bonds))
	copy(out, r.bonds)
	return out
}

// Neighbours returns the rings sharing at least one bond with this
// ring.
func (r *Ring) Neighbours() []*Ring {
	out := make([]*Ring, len(r.nbrs))
	copy(out, r.nbrs)
	return out
}

func (r *Ring) addNeighbourRef(o *Ring) {
	for _, existing := range r.nbrs {
		if existing == o {
			return
		}
	}
	r.nbrs = append(r.nbrs, o)
}

// AtomBitSet returns a clone of the bit set of input-ids of the atoms
// in this ring.
func (r *Ring) AtomBitSet() *bitset.Set { return r.atomBits.Clone() }

// BondBitSet returns a clone of the bit set of ids of the bonds in
// this ring.
func (r *Ring) BondBitSet() *bitset.Set { return r.bondBits.Clone() }

// appendAtom extends the ring by one atom. The atom is ignored if
// already a member. Every atom after the first must be bonded to the
// most-recently-appended atom; violating this is a state
// inconsistency, and appending to a completed ring is an immutability
// error.
func (r *Ring) appendAtom(a *Atom) error {
	if r.completed {
		return immutabilityf("ring %d in molecule %d is already completed", r.id, r.mol.id)
	}
	for _, existing := range r.atoms {
		if existing == a {
			return nil
		}
	}
	if len(r.atoms) > 0 {
		prev := r.atoms[len(r.atoms)-1]
		b := prev.BondTo(a)
		if b == nil {
			return stateInconsistencyf(
				"ring %d in molecule %d: no bond between atoms %d and %d",
				r.id, r.mol.id, prev.inputID, a.inputID)
		}
		r.bonds = append(r.bonds, b)
	}
	r.atoms = append(r.atoms, a)
	return nil
}

// complete closes the ring by linking its last atom back to its
// first, and freezes its composition.
func (r *Ring) complete() error {
	if r.completed {
		return nil
	}
	if len(r.atoms) < 3 {
		return stateInconsistencyf(
			"ring %d in molecule %d: smallest possible ring size is 3, got %d",
			r.id, r.mol.id, len(r.atoms))
	}

	first, last := r.atoms[0], r.atoms[len(r.atoms)-1]
	b := last.BondTo(first)
	if b == nil {
		return stateInconsistencyf(
			"ring %d in molecule %d: no closing bond between atoms %d and %d",
			r.id, r.mol.id, first.inputID, last.inputID)
	}
	r.bonds = append(r.bonds, b)

	for _, a := range r.atoms {
		r.atomBits.Set(a.inputID)
	}
	for _, b := range r.bonds {
		r.bondBits.Set(b.id)
	}
	r.completed = true
	return nil
}

// normaliseRotation rotates the ring's atom and bond order so that
// the atom with the lowest normalised id comes first.
func (r *Ring) normaliseRotation() {
	if len(r.atoms) == 0 {
		return
	}
	idx := 0
	min := r.atoms[0].id
	for i, a := range r.atoms {
		if a.id < min {
			min = a.id
			idx = i
		}
	}
	if idx == 0 {
		return
	}
	r.atoms = rotateLeft(r.atoms, idx)
	// The bond list is anchored on "bond[i] connects atoms[i] and
	// atoms[i+1]" with the last bond the closing one back to atoms[0];
	// rotating the atoms by idx rotates the bonds by the same amount.
	r.bonds = rotateLeft(r.bonds, idx)
}

func rotateLeft[T any](s []T, k int) []T {
	n := len(s)
	out := make([]T, n)
	for i := range s {
		out[i] = s[(i+k)%n]
	}
	return out
}

// determineAromaticity applies Huckel's 4n+2 rule to the ring's total
// pi-electron count, setting the ring's and its atoms'/bonds'
// aromatic flags on success.
func (r *Ring) determineAromaticity() {
	n, ok := r.NumberOfPiElectrons()
	if !ok {
		return
	}
	n -= 2
	if n%4 != 0 {
		return
	}
	r.aromatic = true
	for _, a := range r.atoms {
		a.inAromaticRing = true
		a.unsaturation = UnsaturationAromatic
		if a.element.Number != 6 {
			r.heteroAromatic = true
		}
	}
	for _, b := range r.bonds {
		b.aromatic = true
	}
}

// NumberOfPiElectrons returns the total pi-electron contribution of
// every atom in the ring, and false if any atom's contribution is
// indeterminate.
func (r *Ring) NumberOfPiElectrons() (int, bool) {
	total := 0
	for _, a := range r.atoms {
		n, ok := a.numberOfPiElectrons()
		if !ok {
			return 0, false
		}
		total += n
	}
	return total, true
}

// CommonAtoms returns the bit set of atoms shared between this ring
// and other.
func (r *Ring) CommonAtoms(other *Ring) *bitset.Set {
	return bitset.Intersect(r.atomBits, other.atomBits)
}

// CommonBonds returns the bit set of bonds shared between this ring
// and other.
func (r *Ring) CommonBonds(other *Ring) *bitset.Set {
	return bitset.Intersect(r.bondBits, other.bondBits)
}

// DistanceBetween returns the shorter in-ring distance, measured in
// bonds, between the atoms with the given input ids.
func (r *Ring) DistanceBetween(inputID1, inputID2 int) (int, error) {
	idx1, idx2, found := -1, -1, 0
	for i, a := range r.atoms {
		if a.inputID == inputID1 || a.inputID == inputID2 {
			if found == 0 {
				idx1 = i
			} else {
				idx2 = i
			}
			found++
			if found == 2 {
				break
			}
		}
	}
	if found < 2 {
		return 0, invalidArgumentf(
			"ring %d in molecule %d: atoms %d, %d do not both participate",
			r.id, r.mol.id, inputID1, inputID2)
	}
	d1 := idx2 - idx1
	d2 := len(r.atoms) - d1
	if d1 < d2 {
		return d1, nil
	}
	return d2, nil
}

// IsAromaticOfSize6 reports whether the ring has six members and is
// aromatic.
func (r *Ring) IsAromaticOfSize6() bool {
	return len(r.atoms) == 6 && r.aromatic
}

// IsSemiAromaticOfSize6 reports whether a non-aromatic six-membered
// ring nonetheless satisfies the pi-electron bookkeeping identity used
// to flag borderline cases such as cyclopentadiene-fused systems:
// 6 == numAromaticAtoms + 2*numDoubleBonds + numNH + numExocyclicCHeteroDoubleBonds,
// with numNH == numExocyclicCHeteroDoubleBonds.
func (r *Ring) IsSemiAromaticOfSize6() bool {
	if len(r.atoms) != 6 || r.aromatic {
		return false
	}

	nAro := r.numberOfAromaticAtoms()
	nDoubly := r.numberOfDoubleBonds() * 2

	nNH := 0
	nDblExoCHetero := 0
	for _, a := range r.atoms {
		if a.element.Number == 7 && a.numH == 1 {
			nNH++
			continue
		}
		if a.element.Number != 6 {
			continue
		}
		t := a.firstDoublyBondedNeighbour()
		if t == nil || t.element.Number == 6 {
			continue
		}
		if r.Atom(t.id) == nil {
			nDblExoCHetero++
		}
	}

	sum := nAro + nDoubly + nNH + nDblExoCHetero
	return sum == 6 && nNH == nDblExoCHetero
}

func (r *Ring) numberOfAromaticAtoms() int {
	n := 0
	for _, a := range r.atoms {
		if a.unsaturation == UnsaturationAromatic {
			n++
		}
	}
	return n
}

func (r *Ring) numberOfDoubleBonds() int {
	n := 0
	for _, b := range r.bonds {
		if b.order == BondOrderDouble {
			n++
		}
	}
	return n
}

// Equal reports whether this ring and other are completed, belong to
// the same molecule, and share exactly the same set of bonds.
func (r *Ring) Equal(other *Ring) bool {
	if !r.completed || other == nil || !other.completed {
		return false
	}
	if r == other {
		return true
	}
	if r.mol.id != other.mol.id {
		return false
	}
	return r.bondBits.Equal(other.bondBits)
}
