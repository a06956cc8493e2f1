package core

import "github.com/arborchem/molcore/bitset"

// RingSystem groups together the rings of a molecule that share at
// least one atom or bond, directly or transitively. A lone ring with
// no fused/bridged/spiro neighbours still forms a ring system of size
// one.
type RingSystem struct {
	mol *Molecule
	id  int

	rings []*Ring

	atomBits *bitset.Set
	bondBits *bitset.Set
}

func newRingSystem(mol *Molecule, id int) *RingSystem {
	return &RingSystem{
		mol:      mol,
		id:       id,
		atomBits: bitset.New(mol.numberOfAtomSlots()),
		bondBits: bitset.New(mol.numberOfBondSlots()),
	}
}

// Molecule returns the containing molecule.
func (rs *RingSystem) Molecule() *Molecule { return rs.mol }

// ID returns the ring system's unique id within its molecule.
func (rs *RingSystem) ID() int { return rs.id }

// Size returns the number of rings in this system.
func (rs *RingSystem) Size() int { return len(rs.rings) }

// Rings returns a read-only snapshot of this system's rings.
func (rs *RingSystem) Rings() []*Ring {
	out := make([]*Ring, len(rs.rings))
	copy(out, rs.rings)
	return out
}

// AtomBitSet returns a clone of the aggregate bit set of the
// input-ids of every atom across the rings of this system.
func (rs *RingSystem) AtomBitSet() *bitset.Set { return rs.atomBits.Clone() }

// BondBitSet returns a clone of the aggregate bit set of the ids of
// every bond across the rings of this system.
func (rs *RingSystem) BondBitSet() *bitset.Set { return rs.bondBits.Clone() }

// AddRing adds a ring to this system. The ring must belong to the same
// molecule, and, unless this is the first ring added, must share at
// least one atom or bond with the system so far.
func (rs *RingSystem) AddRing(r *Ring) error {
	if r.mol != rs.mol {
		return invalidArgumentf("ring %d does not belong to molecule %d", r.id, rs.mol.id)
	}
	for _, existing := range rs.rings {
		if existing == r {
			return nil
		}
	}
	if len(rs.rings) > 0 {
		if !rs.atomBits.Intersects(r.atomBits) && !rs.bondBits.Intersects(r.bondBits) {
			return stateInconsistencyf(
				"ring %d shares no atom or bond with ring system %d of molecule %d",
				r.id, rs.id, rs.mol.id)
		}
	}
	rs.rings = append(rs.rings, r)
	rs.atomBits.Or(r.atomBits)
	rs.bondBits.Or(r.bondBits)
	r.setRingSystemID(rs.id)
	return nil
}

// RemoveRing removes a ring from this system and recomputes the
// aggregate bit sets.
func (rs *RingSystem) RemoveRing(r *Ring) {
	for i, existing := range rs.rings {
		if existing == r {
			rs.rings = append(rs.rings[:i], rs.rings[i+1:]...)
			break
		}
	}
	rs.rebuildBitSets()
}

func (rs *RingSystem) rebuildBitSets() {
	rs.atomBits.ClearAll()
	rs.bondBits.ClearAll()
	for _, r := range rs.rings {
		rs.atomBits.Or(r.atomBits)
		rs.bondBits.Or(r.bondBits)
	}
}

// Equal reports whether this ring system and other belong to the same
// molecule and cover exactly the same atoms and bonds.
func (rs *RingSystem) Equal(other *RingSystem) bool {
	if other == nil || rs.mol.id != other.mol.id {
		return false
	}
	if rs == other {
		return true
	}
	return rs.atomBits.Equal(other.atomBits) && rs.bondBits.Equal(other.bondBits)
}
