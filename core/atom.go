package core

import (
	"sort"

	"github.com/arborchem/molcore/element"
)

// Coordinate is an optional 3-D position. The core stores it passively
// and never derives or validates it (3-D geometry is out of scope).
type Coordinate struct {
	X, Y, Z float64
}

// Atom represents a chemical atom. It is always arena-owned by exactly
// one Molecule once added: the molecule is the sole holder of the
// backing slice, and every cross-reference out of an Atom (its bonds,
// its rings) is a pointer into that same molecule's arenas, never into
// a different molecule's.
type Atom struct {
	mol *Molecule

	element element.Element

	inputID int // 1-based, assigned at AddAtom time, stable for the atom's life
	id      int // 1-based normalised id; equals inputID until a future renumbering pass, if any, reassigns it

	coord    Coordinate
	hasCoord bool

	numH   int
	charge int

	chirality Chirality
	radical   Radical

	bonds []*Bond
	nbrs  []*Atom // expanded: one entry per bond-order unit
	rings []*Ring

	inAromaticRing bool
	benzylic       bool
	bridgehead     bool
	spiro          bool

	unsaturation Unsaturation
	hash         int
}

func newAtom(mol *Molecule, inputID int, e element.Element) *Atom {
	return &Atom{mol: mol, inputID: inputID, id: inputID, element: e}
}

// normaliseLocal sorts this atom's bonds and neighbours by the other
// endpoint's normalised id, then recomputes the spiro flag by
// intersecting the atom bit-sets of every ring it belongs to. Must run
// only after ring detection has populated a.rings for every atom in
// the molecule.
func (a *Atom) normaliseLocal() {
	a.sortByNormalisedID()
	if len(a.rings) < 2 {
		return
	}
	as := a.rings[0].AtomBitSet().Clone()
	for _, r := range a.rings[1:] {
		as.And(r.AtomBitSet())
	}
	a.spiro = as.Cardinality() == 1
}

// Molecule returns the containing molecule.
func (a *Atom) Molecule() *Molecule { return a.mol }

// InputID returns the 1-based id assigned when the atom was added,
// stable for the atom's lifetime.
func (a *Atom) InputID() int { return a.inputID }

// ID returns the 1-based normalised id. It equals InputID from the
// moment the atom is added; it is the id every ring- and
// aromaticity-ordering invariant is defined in terms of.
func (a *Atom) ID() int { return a.id }

// Element returns the atom's element record.
func (a *Atom) Element() element.Element { return a.element }

// SetCoordinate records an optional 3-D position for the atom.
func (a *Atom) SetCoordinate(c Coordinate) {
	a.coord = c
	a.hasCoord = true
}

// Coordinate returns the atom's recorded position and whether one was
// ever set.
func (a *Atom) Coordinate() (Coordinate, bool) { return a.coord, a.hasCoord }

// Charge returns the net residual charge on the atom.
func (a *Atom) Charge() int { return a.charge }

// SetCharge sets the net residual charge on the atom.
func (a *Atom) SetCharge(c int) { a.charge = c }

// Valence returns the atom's valence ceiling (the element's natural
// valence).
func (a *Atom) Valence() int { return a.element.Valence }

// Chirality returns the atom's chirality tag.
func (a *Atom) Chirality() Chirality { return a.chirality }

// SetChirality sets the atom's chirality tag.
func (a *Atom) SetChirality(c Chirality) { a.chirality = c }

// Radical returns the atom's radical tag.
func (a *Atom) Radical() Radical { return a.radical }

// SetRadical sets the atom's radical tag.
func (a *Atom) SetRadical(r Radical) { a.radical = r }

// NumberOfHydrogens returns the number of hydrogens attached to this
// atom, explicit or implicit.
func (a *Atom) NumberOfHydrogens() int { return a.numH }

// SetNumberOfHydrogens sets the implicit-hydrogen count.
func (a *Atom) SetNumberOfHydrogens(n int) { a.numH = n }

// AddHydrogen increments the implicit-hydrogen count by one, provided
// doing so would not exceed the valence ceiling.
func (a *Atom) AddHydrogen() {
	if len(a.nbrs)+a.numH+1 <= a.Valence() {
		a.numH++
	}
}

// NumberOfBonds returns the number of bonds (distinct neighbours) this
// atom participates in.
func (a *Atom) NumberOfBonds() int { return len(a.bonds) }

// NumberOfNeighbours returns the size of the expanded neighbour list
// (one entry per bond-order unit).
func (a *Atom) NumberOfNeighbours() int { return len(a.nbrs) }

// Bonds returns a read-only snapshot of the atom's bonds.
func (a *Atom) Bonds() []*Bond {
	out := make([]*Bond, len(a.bonds))
	copy(out, a.bonds)
	return out
}

// Neighbours returns a read-only snapshot of the expanded neighbour
// list.
func (a *Atom) Neighbours() []*Atom {
	out := make([]*Atom, len(a.nbrs))
	copy(out, a.nbrs)
	return out
}

// BondTo returns the bond binding this atom to other, if one exists.
func (a *Atom) BondTo(other *Atom) *Bond {
	for _, b := range a.bonds {
		if b.OtherAtom(a) == other {
			return b
		}
	}
	return nil
}

func (a *Atom) numberOfSingleBonds() int { return a.countBonds(BondOrderSingle) }
func (a *Atom) numberOfDoubleBonds() int { return a.countBonds(BondOrderDouble) }
func (a *Atom) numberOfTripleBonds() int { return a.countBonds(BondOrderTriple) }

func (a *Atom) countBonds(order BondOrder) int {
	n := 0
	for _, b := range a.bonds {
		if b.order == order {
			n++
		}
	}
	return n
}

// numberOfPiElectrons returns this atom's pi-electron contribution
// toward ring aromaticity, restricted to C/N/O/S, keyed on
// 100*numDoubleBonds + 10*numSingleBonds + charge. The second return
// value is false when the contribution is indeterminate (a ring
// containing such an atom cannot be judged aromatic by electron
// counting at all).
func (a *Atom) numberOfPiElectrons() (int, bool) {
	wtSum := 100*a.numberOfDoubleBonds() + 10*a.numberOfSingleBonds() + a.charge

	switch a.element.Number {
	case 6:
		switch wtSum {
		case 19:
			return 2, true
		case 110:
			return 1, true
		case 120:
			n := a.firstDoublyBondedNeighbour()
			if n != nil && n.IsCyclic() {
				return 1, true
			}
			return 0, true
		default:
			return 0, true
		}
	case 7:
		switch wtSum {
		case 20, 30:
			return 2, true
		case 110, 121:
			return 1, true
		default:
			return 0, true
		}
	case 8:
		if wtSum == 20 {
			return 2, true
		}
		return 0, true
	case 16:
		switch wtSum {
		case 20:
			return 2, true
		case 111:
			return 1, true
		case 120:
			n := a.firstDoublyBondedNeighbour()
			if n != nil && n.element.Number == 8 && !n.IsCyclic() {
				return 2, true
			}
			return 0, true
		default:
			return 0, true
		}
	default:
		return 0, true
	}
}

// firstDoublyBondedNeighbour returns the first double-bonded
// neighbour in the atom's bond-list order. That order is insertion
// order until Normalise sorts the bonds by the other endpoint's
// normalised id (which it does after aromaticity has been
// classified). Returns nil if the atom has no double bond or its
// unsaturation tag is not one of the double-bond tags.
func (a *Atom) firstDoublyBondedNeighbour() *Atom {
	if a.unsaturation < UnsaturationDBondC || a.unsaturation > UnsaturationDBondXX {
		return nil
	}
	for _, b := range a.bonds {
		if b.order == BondOrderDouble {
			return b.OtherAtom(a)
		}
	}
	return nil
}

// firstMultiplyBondedNeighbour returns the first neighbour bonded by
// more than a single bond, in the same bond-list order as
// firstDoublyBondedNeighbour.
func (a *Atom) firstMultiplyBondedNeighbour() *Atom {
	if a.unsaturation < UnsaturationDBondC {
		return nil
	}
	for _, b := range a.bonds {
		if b.order > BondOrderSingle {
			return b.OtherAtom(a)
		}
	}
	return nil
}

// sortByNormalisedID sorts this atom's bonds and expanded neighbours
// by the other endpoint's normalised id. Must run only after the
// molecule has assigned normalised ids to every atom.
func (a *Atom) sortByNormalisedID() {
	sort.SliceStable(a.bonds, func(i, j int) bool {
		return a.bonds[i].OtherAtom(a).id < a.bonds[j].OtherAtom(a).id
	})
	sort.SliceStable(a.nbrs, func(i, j int) bool { return a.nbrs[i].id < a.nbrs[j].id })
}

// NumberOfRings returns the number of rings this atom participates
// in.
func (a *Atom) NumberOfRings() int { return len(a.rings) }

// IsCyclic reports whether the atom participates in at least one
// ring.
func (a *Atom) IsCyclic() bool { return len(a.rings) > 0 }

// Rings returns a read-only snapshot of the rings this atom
// participates in.
func (a *Atom) Rings() []*Ring {
	out := make([]*Ring, len(a.rings))
	copy(out, a.rings)
	return out
}

// InRing reports whether this atom participates in the given ring.
func (a *Atom) InRing(r *Ring) bool {
	for _, ar := range a.rings {
		if ar == r {
			return true
		}
	}
	return false
}

// InRingOfSize reports whether this atom participates in at least one
// ring of the given size.
func (a *Atom) InRingOfSize(n int) bool {
	for _, r := range a.rings {
		if r.Size() == n {
			return true
		}
	}
	return false
}

// SmallestRing returns the smallest ring this atom participates in.
// It returns a STATE-INCONSISTENCY error if more than one ring is
// tied for smallest.
func (a *Atom) SmallestRing() (*Ring, error) {
	if len(a.rings) == 0 {
		return nil, nil
	}

	min := a.rings[0].Size()
	count := 0
	var ret *Ring
	for _, r := range a.rings {
		s := r.Size()
		if s < min {
			min = s
		}
	}
	for _, r := range a.rings {
		if r.Size() == min {
			count++
			ret = r
		}
	}
	if count > 1 {
		return nil, stateInconsistencyf(
			"molecule %d, atom %d: smallest ring size %d has %d tied rings",
			a.mol.id, a.inputID, min, count)
	}
	return ret, nil
}

// IsAromatic reports whether the atom participates in an aromatic
// ring.
func (a *Atom) IsAromatic() bool { return a.inAromaticRing }

// IsBenzylic reports whether the atom is directly bonded to an
// aromatic-ring atom, is itself not in an aromatic ring, and carries
// at least one hydrogen.
func (a *Atom) IsBenzylic() bool { return a.benzylic }

// IsBridgehead reports whether the atom is a junction atom shared by
// two basis rings of a bridged ring-system.
func (a *Atom) IsBridgehead() bool { return a.bridgehead }

// IsSpiro reports whether the atom is the unique atom shared between
// two rings of the same ring-system.
func (a *Atom) IsSpiro() bool { return a.spiro }

// Unsaturation returns the atom's current unsaturation tag.
func (a *Atom) Unsaturation() Unsaturation { return a.unsaturation }

// Hash returns the compact fingerprint hash:
// 1000*atomic_number + 10*unsaturation_value + implicit_H_count.
func (a *Atom) Hash() int { return a.hash }

func (a *Atom) computeHash() {
	a.hash = 1000*a.element.Number + 10*a.unsaturation.Value() + a.numH
}

// resetRingState clears every per-normalise-pass derived flag, ready
// to be recomputed by the next Normalise call.
func (a *Atom) resetRingState() {
	a.rings = a.rings[:0]
	a.inAromaticRing = false
	a.benzylic = false
	a.bridgehead = false
	a.spiro = false
}

func (a *Atom) addBondRef(b *Bond) {
	for _, existing := range a.bonds {
		if existing == b {
			return
		}
	}
	a.bonds = append(a.bonds, b)
	other := b.OtherAtom(a)
	units := b.order.Value()
	for i := 0; i < units; i++ {
		a.nbrs = append(a.nbrs, other)
	}
}

func (a *Atom) removeBondRef(b *Bond) {
	for i, existing := range a.bonds {
		if existing == b {
			a.bonds = append(a.bonds[:i], a.bonds[i+1:]...)
			break
		}
	}
	other := b.OtherAtom(a)
	filtered := a.nbrs[:0]
	for _, n := range a.nbrs {
		if n != other {
			filtered = append(filtered, n)
		}
	}
	a.nbrs = filtered
}

func (a *Atom) addRingRef(r *Ring) {
	for _, existing := range a.rings {
		if existing == r {
			return
		}
	}
	a.rings = append(a.rings, r)
}

func (a *Atom) removeRingRef(r *Ring) {
	for i, existing := range a.rings {
		if existing == r {
			a.rings = append(a.rings[:i], a.rings[i+1:]...)
			return
		}
	}
}
