package core

import (
	"sync/atomic"

	"github.com/arborchem/molcore/element"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var nextMoleculeID int64

// Molecule represents a chemical molecule: a connected multigraph of
// atoms and bonds, together with the rings and ring systems derived
// from it by Normalise. A molecule is the sole arena owner of every
// Atom, Bond, Ring and RingSystem it holds; nothing outside the
// molecule's own slices keeps these alive once the molecule is
// discarded.
type Molecule struct {
	id int64

	atoms       []*Atom
	bonds       []*Bond
	rings       []*Ring
	ringSystems []*RingSystem

	peakBID int
	peakRID int
	peakSID int

	attrNames  []string
	attrValues []string

	vendorMoleculeID string
	vendorName       string

	dists *distanceMatrix

	log *zap.Logger
}

// NewMolecule creates a new, empty molecule with a freshly allocated,
// process-wide-unique id.
func NewMolecule() *Molecule {
	return newMoleculeWithLogger(zap.NewNop())
}

// NewMoleculeWithLogger creates a new, empty molecule that logs
// normalisation diagnostics through the given logger.
func NewMoleculeWithLogger(log *zap.Logger) *Molecule {
	if log == nil {
		log = zap.NewNop()
	}
	return newMoleculeWithLogger(log)
}

func newMoleculeWithLogger(log *zap.Logger) *Molecule {
	return &Molecule{
		id:    atomic.AddInt64(&nextMoleculeID, 1),
		dists: newDistanceMatrix(0),
		log:   log,
	}
}

// ID returns the molecule's globally unique id.
func (m *Molecule) ID() int64 { return m.id }

// VendorMoleculeID returns the caller-attached external-registry
// identifier, if any. The core never interprets this value.
func (m *Molecule) VendorMoleculeID() string { return m.vendorMoleculeID }

// SetVendorMoleculeID sets the caller-attached external-registry
// identifier.
func (m *Molecule) SetVendorMoleculeID(id string) { m.vendorMoleculeID = id }

// GenerateVendorMoleculeID mints a fresh random external-registry
// identifier, assigns it to this molecule, and returns it. For callers
// who want a vendor id but have none of their own to supply.
func (m *Molecule) GenerateVendorMoleculeID() string {
	id := uuid.NewString()
	m.vendorMoleculeID = id
	return id
}

// VendorName returns the caller-attached vendor name, if any.
func (m *Molecule) VendorName() string { return m.vendorName }

// SetVendorName sets the caller-attached vendor name.
func (m *Molecule) SetVendorName(name string) { m.vendorName = name }

// numberOfAtomSlots returns the bit-set capacity needed to address every
// atom by its 1-based input-id, i.e. one more than the highest input-id
// in use.
func (m *Molecule) numberOfAtomSlots() int {
	n := 0
	for _, a := range m.atoms {
		if a.inputID > n {
			n = a.inputID
		}
	}
	return n + 1
}

// numberOfBondSlots returns the bit-set capacity needed to address every
// bond by its 1-based id, i.e. one more than the highest bond id in use.
func (m *Molecule) numberOfBondSlots() int {
	n := 0
	for _, b := range m.bonds {
		if b.id > n {
			n = b.id
		}
	}
	return n + 1
}

// AtomByID returns the atom with the given normalised id, in O(1).
func (m *Molecule) AtomByID(id int) *Atom {
	if id < 1 || id > len(m.atoms) {
		return nil
	}
	return m.atoms[id-1]
}

// AtomByInputID returns the atom with the given input-order id, in
// O(n).
func (m *Molecule) AtomByInputID(id int) *Atom {
	for _, a := range m.atoms {
		if a.inputID == id {
			return a
		}
	}
	return nil
}

// Bond returns the bond with the given id, if any.
func (m *Molecule) Bond(id int) *Bond {
	for _, b := range m.bonds {
		if b.id == id {
			return b
		}
	}
	return nil
}

// BondBetween returns the bond connecting a1 and a2, if one exists.
// Both atoms must belong to this molecule.
func (m *Molecule) BondBetween(a1, a2 *Atom) (*Bond, error) {
	if a1.mol != m || a2.mol != m {
		return nil, invalidArgumentf(
			"molecule %d: at least one given atom does not belong to it", m.id)
	}
	return m.unsafeBondBetween(a1, a2), nil
}

func (m *Molecule) unsafeBondBetween(a1, a2 *Atom) *Bond {
	if len(m.bonds) == 0 {
		return nil
	}
	h := pairHash(a1, a2)
	for _, b := range m.bonds {
		if b.pairHash == h {
			return b
		}
	}
	return nil
}

// Ring returns the ring with the given id, if any.
func (m *Molecule) Ring(id int) *Ring {
	for _, r := range m.rings {
		if r.id == id {
			return r
		}
	}
	return nil
}

// RingSystem returns the ring system with the given id, if any.
func (m *Molecule) RingSystem(id int) *RingSystem {
	for _, rs := range m.ringSystems {
		if rs.id == id {
			return rs
		}
	}
	return nil
}

// NumberOfAtoms returns the number of atoms in this molecule.
func (m *Molecule) NumberOfAtoms() int { return len(m.atoms) }

// NumberOfBonds returns the number of bonds in this molecule.
func (m *Molecule) NumberOfBonds() int { return len(m.bonds) }

// NumberOfDoubleBonds returns the number of double bonds.
func (m *Molecule) NumberOfDoubleBonds() int { return m.countBondsOfOrder(BondOrderDouble) }

// NumberOfTripleBonds returns the number of triple bonds.
func (m *Molecule) NumberOfTripleBonds() int { return m.countBondsOfOrder(BondOrderTriple) }

func (m *Molecule) countBondsOfOrder(o BondOrder) int {
	n := 0
	for _, b := range m.bonds {
		if b.order == o {
			n++
		}
	}
	return n
}

// NumberOfRings returns the number of rings found by the most recent
// Normalise.
func (m *Molecule) NumberOfRings() int { return len(m.rings) }

// NumberOfRingSystems returns the number of ring systems found by the
// most recent Normalise.
func (m *Molecule) NumberOfRingSystems() int { return len(m.ringSystems) }

// NumberOfAromaticRings returns the number of rings currently flagged
// aromatic. It does not itself determine aromaticity.
func (m *Molecule) NumberOfAromaticRings() int {
	n := 0
	for _, r := range m.rings {
		if r.aromatic {
			n++
		}
	}
	return n
}

// Atoms returns a read-only snapshot of the molecule's atoms.
func (m *Molecule) Atoms() []*Atom {
	out := make([]*Atom, len(m.atoms))
	copy(out, m.atoms)
	return out
}

// Bonds returns a read-only snapshot of the molecule's bonds.
func (m *Molecule) Bonds() []*Bond {
	out := make([]*Bond, len(m.bonds))
	copy(out, m.bonds)
	return out
}

// Rings returns a read-only snapshot of the molecule's rings.
func (m *Molecule) Rings() []*Ring {
	out := make([]*Ring, len(m.rings))
	copy(out, m.rings)
	return out
}

// RingSystems returns a read-only snapshot of the molecule's ring
// systems.
func (m *Molecule) RingSystems() []*RingSystem {
	out := make([]*RingSystem, len(m.ringSystems))
	copy(out, m.ringSystems)
	return out
}

// AddAtom creates a new atom of the given element, assigns it the
// next input-id, and appends it to this molecule.
func (m *Molecule) AddAtom(e element.Element) *Atom {
	a := newAtom(m, len(m.atoms)+1, e)
	m.atoms = append(m.atoms, a)
	return a
}

// AddBond adds a bond of the given order between a1 and a2. If such a
// bond already exists, it is returned unchanged. Only single, double,
// triple and aromatic orders may be used to create a bond; any other
// order, a cross-molecule atom, or a valence-exceeding bond is
// rejected.
func (m *Molecule) AddBond(a1, a2 *Atom, order BondOrder) (*Bond, error) {
	if a1 == nil || a2 == nil || a1.mol != m || a2.mol != m {
		return nil, invalidArgumentf(
			"molecule %d: at least one given atom does not belong to it", m.id)
	}
	if !order.Creatable() {
		return nil, invalidArgumentf(
			"molecule %d: bond order %s cannot be used to create a bond", m.id, order)
	}

	if tb := m.unsafeBondBetween(a1, a2); tb != nil {
		return tb, nil
	}

	if len(a1.nbrs)+order.Value() > a1.Valence() || len(a2.nbrs)+order.Value() > a2.Valence() {
		return nil, valenceViolationf(
			"molecule %d: bond order %s between atoms %d and %d would exceed valence",
			m.id, order, a1.inputID, a2.inputID)
	}

	m.peakBID++
	b := newBond(m, m.peakBID, a1, a2, order)
	a1.addBondRef(b)
	a2.addBondRef(b)
	m.bonds = append(m.bonds, b)
	return b, nil
}

// BreakBond removes b from this molecule, detaching it from both its
// endpoints and destroying every ring that contains it.
func (m *Molecule) BreakBond(b *Bond) error {
	idx := -1
	for i, existing := range m.bonds {
		if existing == b {
			idx = i
			break
		}
	}
	if idx == -1 {
		return invalidArgumentf("molecule %d: given bond %d does not belong to it", m.id, b.id)
	}

	b.a1.removeBondRef(b)
	b.a2.removeBondRef(b)
	for _, r := range b.Rings() {
		m.removeRing(r)
	}
	m.bonds = append(m.bonds[:idx], m.bonds[idx+1:]...)
	return nil
}

func (m *Molecule) removeRing(r *Ring) {
	for _, a := range r.atoms {
		a.removeRingRef(r)
	}
	for _, b := range r.bonds {
		b.removeRingRef(r)
	}
	for i, existing := range m.rings {
		if existing == r {
			m.rings = append(m.rings[:i], m.rings[i+1:]...)
			break
		}
	}
}

// RemoveAtom breaks every bond a participates in, then removes it
// from this molecule.
func (m *Molecule) RemoveAtom(a *Atom) error {
	idx := -1
	for i, existing := range m.atoms {
		if existing == a {
			idx = i
			break
		}
	}
	if idx == -1 {
		return invalidArgumentf("molecule %d: given atom %d does not belong to it", m.id, a.inputID)
	}

	for _, b := range a.Bonds() {
		if err := m.BreakBond(b); err != nil {
			return err
		}
	}
	m.atoms = append(m.atoms[:idx], m.atoms[idx+1:]...)
	return nil
}

// AddAttribute attaches a named string attribute to this molecule.
// Fails if name already exists, or if name or value is empty.
func (m *Molecule) AddAttribute(name, value string) error {
	if name == "" || value == "" {
		return invalidArgumentf("molecule %d: attribute name and value must be non-empty", m.id)
	}
	for _, n := range m.attrNames {
		if n == name {
			return duplicateAttributef("molecule %d: attribute %q already exists", m.id, name)
		}
	}
	m.attrNames = append(m.attrNames, name)
	m.attrValues = append(m.attrValues, value)
	return nil
}

// Attribute returns the value of the named attribute.
func (m *Molecule) Attribute(name string) (string, error) {
	for i, n := range m.attrNames {
		if n == name {
			return m.attrValues[i], nil
		}
	}
	return "", invalidArgumentf("molecule %d: attribute %q does not exist", m.id, name)
}

// SetAttribute updates the value of an existing attribute.
func (m *Molecule) SetAttribute(name, value string) error {
	for i, n := range m.attrNames {
		if n == name {
			m.attrValues[i] = value
			return nil
		}
	}
	return invalidArgumentf("molecule %d: attribute %q does not exist", m.id, name)
}

// RemoveAttribute removes a named attribute, if present.
func (m *Molecule) RemoveAttribute(name string) error {
	for i, n := range m.attrNames {
		if n == name {
			m.attrNames = append(m.attrNames[:i], m.attrNames[i+1:]...)
			m.attrValues = append(m.attrValues[:i], m.attrValues[i+1:]...)
			return nil
		}
	}
	return invalidArgumentf("molecule %d: attribute %q does not exist", m.id, name)
}

// HasAttribute reports whether a named attribute is present.
func (m *Molecule) HasAttribute(name string) bool {
	for _, n := range m.attrNames {
		if n == name {
			return true
		}
	}
	return false
}

// Attributes returns a read-only snapshot of the molecule's attribute
// names, in input order.
func (m *Molecule) Attributes() []string {
	out := make([]string, len(m.attrNames))
	copy(out, m.attrNames)
	return out
}

// Normalise (re)computes every derived property of the molecule:
// inter-atomic distances, ring perception, ring-system grouping,
// aromaticity, per-atom unsaturation and hash, and the
// bridgehead/spiro/benzylic flags. It is idempotent.
func (m *Molecule) Normalise() error {
	m.computeAtomicDistances()
	m.resetRingInformation()

	for _, a := range m.atoms {
		if err := a.determineUnsaturation(); err != nil {
			return err
		}
	}

	f := m.frerejacque()
	if f > 0 && f <= maxRings {
		rd := newRingDetector(m)
		rings, err := rd.detectRings()
		if err != nil {
			return err
		}
		for _, r := range rings {
			if err := m.addRing(r); err != nil {
				return err
			}
		}
		for i, r1 := range m.rings {
			for _, r2 := range m.rings[i+1:] {
				if r1.bondBits.Intersects(r2.bondBits) {
					r1.addNeighbourRef(r2)
					r2.addNeighbourRef(r1)
				}
			}
		}
		for _, r := range m.rings {
			r.normaliseRotation()
		}
		for _, r := range m.rings {
			r.determineAromaticity()
		}
		m.groupRingSystems()
		m.markDerivedFlags(rd.bridgeheads)
	} else {
		m.markDerivedFlags(nil)
	}

	for _, a := range m.atoms {
		a.computeHash()
	}

	m.log.Debug("normalised molecule",
		zap.Int64("molecule_id", m.id),
		zap.Int("atoms", len(m.atoms)),
		zap.Int("bonds", len(m.bonds)),
		zap.Int("rings", len(m.rings)),
		zap.Int("ring_systems", len(m.ringSystems)),
	)
	return nil
}

func (m *Molecule) resetRingInformation() {
	for _, a := range m.atoms {
		a.resetRingState()
	}
	for _, b := range m.bonds {
		b.resetRingState()
	}
	m.rings = nil
	m.ringSystems = nil
	m.peakRID = 0
	m.peakSID = 0
}

func (m *Molecule) addRing(r *Ring) error {
	if r.mol != m {
		return invalidArgumentf("molecule %d: given ring has a different parent molecule", m.id)
	}
	if !r.completed {
		return invalidArgumentf("molecule %d: given ring is not completed", m.id)
	}
	m.peakRID++
	r.id = m.peakRID
	m.rings = append(m.rings, r)
	for _, a := range r.atoms {
		a.addRingRef(r)
	}
	for _, b := range r.bonds {
		b.addRingRef(r)
	}
	return nil
}

// groupRingSystems partitions m.rings into maximal sets sharing an
// atom or bond, recording each ring's ring-system id and appending a
// fresh RingSystem per partition.
func (m *Molecule) groupRingSystems() {
	for _, r := range m.rings {
		var target *RingSystem
		for _, rs := range m.ringSystems {
			if rs.atomBits.Intersects(r.atomBits) || rs.bondBits.Intersects(r.bondBits) {
				target = rs
				break
			}
		}
		if target == nil {
			m.peakSID++
			target = newRingSystem(m, m.peakSID)
			m.ringSystems = append(m.ringSystems, target)
		}
		_ = target.AddRing(r)
	}
}
