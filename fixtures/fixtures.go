// Package fixtures builds small, well-known molecules programmatically
// for use in tests and the CLI demo, since SDF parsing is out of scope
// for the core.
package fixtures

import (
	"github.com/arborchem/molcore/core"
	"github.com/arborchem/molcore/element"
)

func mustElement(symbol string) element.Element {
	return element.MustLookup(symbol)
}

func mustBond(mol *core.Molecule, a1, a2 *core.Atom, order core.BondOrder) {
	if _, err := mol.AddBond(a1, a2, order); err != nil {
		panic(err)
	}
}

// Benzene builds an aromatic six-membered carbocycle, each carbon
// carrying one hydrogen, alternating formal double bonds.
func Benzene() *core.Molecule {
	mol := core.NewMolecule()
	c := make([]*core.Atom, 6)
	for i := range c {
		c[i] = mol.AddAtom(mustElement("C"))
		c[i].SetNumberOfHydrogens(1)
	}
	for i := 0; i < 6; i++ {
		order := core.BondOrderSingle
		if i%2 == 0 {
			order = core.BondOrderDouble
		}
		mustBond(mol, c[i], c[(i+1)%6], order)
	}
	return mol
}

// Cyclohexane builds a fully saturated six-membered carbocycle.
func Cyclohexane() *core.Molecule {
	mol := core.NewMolecule()
	c := make([]*core.Atom, 6)
	for i := range c {
		c[i] = mol.AddAtom(mustElement("C"))
		c[i].SetNumberOfHydrogens(2)
	}
	for i := 0; i < 6; i++ {
		mustBond(mol, c[i], c[(i+1)%6], core.BondOrderSingle)
	}
	return mol
}

// Cubane builds the eight-carbon cube: every vertex bonded to its
// three geometric neighbours by single bonds.
func Cubane() *core.Molecule {
	mol := core.NewMolecule()
	c := make([]*core.Atom, 8)
	for i := range c {
		c[i] = mol.AddAtom(mustElement("C"))
		c[i].SetNumberOfHydrogens(1)
	}
	// Vertices 0-3 form the bottom face, 4-7 the top face, matched by
	// index (i, i+4) for the vertical edges.
	for i := 0; i < 4; i++ {
		mustBond(mol, c[i], c[(i+1)%4], core.BondOrderSingle)
		mustBond(mol, c[4+i], c[4+(i+1)%4], core.BondOrderSingle)
		mustBond(mol, c[i], c[4+i], core.BondOrderSingle)
	}
	return mol
}

// Pyridine builds the six-membered aromatic ring with one ring
// nitrogen in place of a CH.
func Pyridine() *core.Molecule {
	mol := core.NewMolecule()
	n := mol.AddAtom(mustElement("N"))
	c := make([]*core.Atom, 5)
	for i := range c {
		c[i] = mol.AddAtom(mustElement("C"))
		c[i].SetNumberOfHydrogens(1)
	}
	ring := []*core.Atom{n, c[0], c[1], c[2], c[3], c[4]}
	for i := 0; i < len(ring); i++ {
		order := core.BondOrderSingle
		if i%2 == 0 {
			order = core.BondOrderDouble
		}
		mustBond(mol, ring[i], ring[(i+1)%len(ring)], order)
	}
	return mol
}

// Pyrrole builds the five-membered aromatic heterocycle with one
// N-H contributing its lone pair to the pi system.
func Pyrrole() *core.Molecule {
	mol := core.NewMolecule()
	n := mol.AddAtom(mustElement("N"))
	n.SetNumberOfHydrogens(1)
	c := make([]*core.Atom, 4)
	for i := range c {
		c[i] = mol.AddAtom(mustElement("C"))
		c[i].SetNumberOfHydrogens(1)
	}
	ring := []*core.Atom{n, c[0], c[1], c[2], c[3]}
	orders := []core.BondOrder{
		core.BondOrderSingle, core.BondOrderDouble,
		core.BondOrderSingle, core.BondOrderDouble, core.BondOrderSingle,
	}
	for i := 0; i < len(ring); i++ {
		mustBond(mol, ring[i], ring[(i+1)%len(ring)], orders[i])
	}
	return mol
}

// Furan builds the five-membered aromatic heterocycle with a ring
// oxygen contributing its lone pair to the pi system.
func Furan() *core.Molecule {
	mol := core.NewMolecule()
	o := mol.AddAtom(mustElement("O"))
	c := make([]*core.Atom, 4)
	for i := range c {
		c[i] = mol.AddAtom(mustElement("C"))
		c[i].SetNumberOfHydrogens(1)
	}
	ring := []*core.Atom{o, c[0], c[1], c[2], c[3]}
	orders := []core.BondOrder{
		core.BondOrderSingle, core.BondOrderDouble,
		core.BondOrderSingle, core.BondOrderDouble, core.BondOrderSingle,
	}
	for i := 0; i < len(ring); i++ {
		mustBond(mol, ring[i], ring[(i+1)%len(ring)], orders[i])
	}
	return mol
}

// Thiophene builds the five-membered aromatic heterocycle with a ring
// sulphur contributing its lone pair to the pi system.
func Thiophene() *core.Molecule {
	mol := core.NewMolecule()
	s := mol.AddAtom(mustElement("S"))
	c := make([]*core.Atom, 4)
	for i := range c {
		c[i] = mol.AddAtom(mustElement("C"))
		c[i].SetNumberOfHydrogens(1)
	}
	ring := []*core.Atom{s, c[0], c[1], c[2], c[3]}
	orders := []core.BondOrder{
		core.BondOrderSingle, core.BondOrderDouble,
		core.BondOrderSingle, core.BondOrderDouble, core.BondOrderSingle,
	}
	for i := 0; i < len(ring); i++ {
		mustBond(mol, ring[i], ring[(i+1)%len(ring)], orders[i])
	}
	return mol
}

// Toluene builds an aromatic benzene ring with one ring carbon
// carrying a methyl substituent, for exercising the benzylic flag.
func Toluene() *core.Molecule {
	mol := core.NewMolecule()
	c := make([]*core.Atom, 6)
	for i := range c {
		c[i] = mol.AddAtom(mustElement("C"))
	}
	for i := 0; i < 6; i++ {
		order := core.BondOrderSingle
		if i%2 == 0 {
			order = core.BondOrderDouble
		}
		mustBond(mol, c[i], c[(i+1)%6], order)
	}
	methyl := mol.AddAtom(mustElement("C"))
	methyl.SetNumberOfHydrogens(3)
	mustBond(mol, c[0], methyl, core.BondOrderSingle)
	c[0].SetNumberOfHydrogens(0)
	for i := 1; i < 6; i++ {
		c[i].SetNumberOfHydrogens(1)
	}
	return mol
}

// Decalin builds the fused bicyclic two-six-membered-ring system
// (bicyclo[4.4.0]decane), sharing one bond between the two rings.
func Decalin() *core.Molecule {
	mol := core.NewMolecule()
	c := make([]*core.Atom, 10)
	for i := range c {
		c[i] = mol.AddAtom(mustElement("C"))
	}
	ring1 := []int{0, 1, 2, 3, 4, 5}
	for i := 0; i < len(ring1); i++ {
		mustBond(mol, c[ring1[i]], c[ring1[(i+1)%len(ring1)]], core.BondOrderSingle)
	}
	ring2 := []int{0, 5, 6, 7, 8, 9}
	for i := 1; i < len(ring2); i++ {
		mustBond(mol, c[ring2[i-1]], c[ring2[i]], core.BondOrderSingle)
	}
	mustBond(mol, c[9], c[0], core.BondOrderSingle)
	for i, a := range c {
		switch i {
		case 0, 5:
			a.SetNumberOfHydrogens(1)
		default:
			a.SetNumberOfHydrogens(2)
		}
	}
	return mol
}

// SpiroPentane builds two cyclopropane rings sharing exactly one
// atom (spiro[2.2]pentane).
func SpiroPentane() *core.Molecule {
	mol := core.NewMolecule()
	c := make([]*core.Atom, 5)
	for i := range c {
		c[i] = mol.AddAtom(mustElement("C"))
	}
	mustBond(mol, c[0], c[1], core.BondOrderSingle)
	mustBond(mol, c[1], c[2], core.BondOrderSingle)
	mustBond(mol, c[2], c[0], core.BondOrderSingle)
	mustBond(mol, c[0], c[3], core.BondOrderSingle)
	mustBond(mol, c[3], c[4], core.BondOrderSingle)
	mustBond(mol, c[4], c[0], core.BondOrderSingle)
	for i, a := range c {
		if i == 0 {
			continue
		}
		a.SetNumberOfHydrogens(2)
	}
	return mol
}

// Bicyclopropenylidene builds two cyclopropene rings joined by a
// single exocyclic C=C double bond (triafulvalene): the bridging
// carbon on each ring has one double bond and two ring single bonds,
// exercising the carbon pi-electron case whose double-bonded partner
// belongs to a ring other than the one being scored.
func Bicyclopropenylidene() *core.Molecule {
	mol := core.NewMolecule()
	a := make([]*core.Atom, 3)
	b := make([]*core.Atom, 3)
	for i := range a {
		a[i] = mol.AddAtom(mustElement("C"))
		b[i] = mol.AddAtom(mustElement("C"))
	}
	mustBond(mol, a[0], a[1], core.BondOrderDouble)
	mustBond(mol, a[1], a[2], core.BondOrderSingle)
	mustBond(mol, a[2], a[0], core.BondOrderSingle)
	mustBond(mol, b[0], b[1], core.BondOrderDouble)
	mustBond(mol, b[1], b[2], core.BondOrderSingle)
	mustBond(mol, b[2], b[0], core.BondOrderSingle)
	mustBond(mol, a[2], b[2], core.BondOrderDouble)
	for _, atom := range append(append([]*core.Atom{}, a[:2]...), b[:2]...) {
		atom.SetNumberOfHydrogens(1)
	}
	return mol
}

// Norbornane builds bicyclo[2.2.1]heptane: a fused six-membered ring
// bridged by a one-carbon methylene, contributing two bridgeheads.
func Norbornane() *core.Molecule {
	mol := core.NewMolecule()
	c := make([]*core.Atom, 7)
	for i := range c {
		c[i] = mol.AddAtom(mustElement("C"))
	}
	// 0,1,2,3,4,5 form the six-membered ring; 6 bridges 0 and 3.
	ring := []int{0, 1, 2, 3, 4, 5}
	for i := 0; i < len(ring); i++ {
		mustBond(mol, c[ring[i]], c[ring[(i+1)%len(ring)]], core.BondOrderSingle)
	}
	mustBond(mol, c[0], c[6], core.BondOrderSingle)
	mustBond(mol, c[6], c[3], core.BondOrderSingle)
	for i, a := range c {
		switch i {
		case 0, 3:
			a.SetNumberOfHydrogens(1)
		case 6:
			a.SetNumberOfHydrogens(2)
		default:
			a.SetNumberOfHydrogens(2)
		}
	}
	return mol
}

// Adamantane builds the tricyclic diamondoid cage
// tricyclo[3.3.1.1^3,7]decane: four bridgehead methines at the
// corners of a tetrahedron, each of the six edges subdivided by one
// methylene bridge. Every edge of the tetrahedron is shared by
// exactly two of its four triangular faces, so all four of the
// resulting six-membered rings are the same size and none is
// redundant with the others: the basis/pruning stage never finds a
// smaller size tier to fold them into, and all four survive.
func Adamantane() *core.Molecule {
	mol := core.NewMolecule()
	bridgeheads := make([]*core.Atom, 4)
	for i := range bridgeheads {
		bridgeheads[i] = mol.AddAtom(mustElement("C"))
		bridgeheads[i].SetNumberOfHydrogens(1)
	}
	type edge struct{ i, j int }
	for _, e := range []edge{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}} {
		bridge := mol.AddAtom(mustElement("C"))
		bridge.SetNumberOfHydrogens(2)
		mustBond(mol, bridgeheads[e.i], bridge, core.BondOrderSingle)
		mustBond(mol, bridge, bridgeheads[e.j], core.BondOrderSingle)
	}
	return mol
}

// Triptycene builds the three-bladed benzo-bridged cage
// (9,10-dihydroanthracene with its central ring replaced by a
// bicyclo[2.2.2]octane bridge carried three times over): two sp3
// bridgehead methines joined by three aromatic ortho-phenylene
// blades. Besides the three benzo rings, each pair of blades closes
// an extra six-membered ring through the two bridgeheads, so the
// ring system carries six rings total though only three are
// aromatic.
func Triptycene() *core.Molecule {
	mol := core.NewMolecule()
	bridgeheads := make([]*core.Atom, 2)
	for i := range bridgeheads {
		bridgeheads[i] = mol.AddAtom(mustElement("C"))
		bridgeheads[i].SetNumberOfHydrogens(1)
	}
	for blade := 0; blade < 3; blade++ {
		ring := make([]*core.Atom, 6)
		for i := range ring {
			ring[i] = mol.AddAtom(mustElement("C"))
		}
		for i := 0; i < 6; i++ {
			order := core.BondOrderSingle
			if i%2 == 0 {
				order = core.BondOrderDouble
			}
			mustBond(mol, ring[i], ring[(i+1)%6], order)
		}
		mustBond(mol, bridgeheads[0], ring[0], core.BondOrderSingle)
		mustBond(mol, bridgeheads[1], ring[1], core.BondOrderSingle)
		for _, a := range ring[2:] {
			a.SetNumberOfHydrogens(1)
		}
	}
	return mol
}

// Imidazole builds the five-membered 1,3-diazole: a pyrrole-type
// N-H donating its lone pair alongside a pyridine-type ring nitrogen
// that does not.
func Imidazole() *core.Molecule {
	mol := core.NewMolecule()
	n1 := mol.AddAtom(mustElement("N"))
	n1.SetNumberOfHydrogens(1)
	c2 := mol.AddAtom(mustElement("C"))
	c2.SetNumberOfHydrogens(1)
	n3 := mol.AddAtom(mustElement("N"))
	c4 := mol.AddAtom(mustElement("C"))
	c4.SetNumberOfHydrogens(1)
	c5 := mol.AddAtom(mustElement("C"))
	c5.SetNumberOfHydrogens(1)
	ring := []*core.Atom{n1, c2, n3, c4, c5}
	orders := []core.BondOrder{
		core.BondOrderSingle, core.BondOrderDouble,
		core.BondOrderSingle, core.BondOrderDouble, core.BondOrderSingle,
	}
	for i := 0; i < len(ring); i++ {
		mustBond(mol, ring[i], ring[(i+1)%len(ring)], orders[i])
	}
	return mol
}

// Pyrazole builds the five-membered 1,2-diazole: the lone-pair-donor
// N-H sits adjacent to, rather than across from, the pyridine-type
// ring nitrogen.
func Pyrazole() *core.Molecule {
	mol := core.NewMolecule()
	n1 := mol.AddAtom(mustElement("N"))
	n1.SetNumberOfHydrogens(1)
	n2 := mol.AddAtom(mustElement("N"))
	c3 := mol.AddAtom(mustElement("C"))
	c3.SetNumberOfHydrogens(1)
	c4 := mol.AddAtom(mustElement("C"))
	c4.SetNumberOfHydrogens(1)
	c5 := mol.AddAtom(mustElement("C"))
	c5.SetNumberOfHydrogens(1)
	ring := []*core.Atom{n1, n2, c3, c4, c5}
	orders := []core.BondOrder{
		core.BondOrderSingle, core.BondOrderDouble,
		core.BondOrderSingle, core.BondOrderDouble, core.BondOrderSingle,
	}
	for i := 0; i < len(ring); i++ {
		mustBond(mol, ring[i], ring[(i+1)%len(ring)], orders[i])
	}
	return mol
}

// Oxazole builds the five-membered 1,3-oxazole: Furan's ring oxygen
// with one of the ring carbons replaced by a pyridine-type nitrogen.
func Oxazole() *core.Molecule {
	mol := core.NewMolecule()
	o1 := mol.AddAtom(mustElement("O"))
	c2 := mol.AddAtom(mustElement("C"))
	c2.SetNumberOfHydrogens(1)
	n3 := mol.AddAtom(mustElement("N"))
	c4 := mol.AddAtom(mustElement("C"))
	c4.SetNumberOfHydrogens(1)
	c5 := mol.AddAtom(mustElement("C"))
	c5.SetNumberOfHydrogens(1)
	ring := []*core.Atom{o1, c2, n3, c4, c5}
	orders := []core.BondOrder{
		core.BondOrderSingle, core.BondOrderDouble,
		core.BondOrderSingle, core.BondOrderDouble, core.BondOrderSingle,
	}
	for i := 0; i < len(ring); i++ {
		mustBond(mol, ring[i], ring[(i+1)%len(ring)], orders[i])
	}
	return mol
}

// Thiazole builds the five-membered 1,3-thiazole: Oxazole's skeleton
// with the ring oxygen replaced by sulphur.
func Thiazole() *core.Molecule {
	mol := core.NewMolecule()
	s1 := mol.AddAtom(mustElement("S"))
	c2 := mol.AddAtom(mustElement("C"))
	c2.SetNumberOfHydrogens(1)
	n3 := mol.AddAtom(mustElement("N"))
	c4 := mol.AddAtom(mustElement("C"))
	c4.SetNumberOfHydrogens(1)
	c5 := mol.AddAtom(mustElement("C"))
	c5.SetNumberOfHydrogens(1)
	ring := []*core.Atom{s1, c2, n3, c4, c5}
	orders := []core.BondOrder{
		core.BondOrderSingle, core.BondOrderDouble,
		core.BondOrderSingle, core.BondOrderDouble, core.BondOrderSingle,
	}
	for i := 0; i < len(ring); i++ {
		mustBond(mol, ring[i], ring[(i+1)%len(ring)], orders[i])
	}
	return mol
}

// Isoxazole builds the five-membered 1,2-oxazole: the ring oxygen sits
// adjacent to the pyridine-type nitrogen rather than across from it.
func Isoxazole() *core.Molecule {
	mol := core.NewMolecule()
	o1 := mol.AddAtom(mustElement("O"))
	n2 := mol.AddAtom(mustElement("N"))
	c3 := mol.AddAtom(mustElement("C"))
	c3.SetNumberOfHydrogens(1)
	c4 := mol.AddAtom(mustElement("C"))
	c4.SetNumberOfHydrogens(1)
	c5 := mol.AddAtom(mustElement("C"))
	c5.SetNumberOfHydrogens(1)
	ring := []*core.Atom{o1, n2, c3, c4, c5}
	orders := []core.BondOrder{
		core.BondOrderSingle, core.BondOrderDouble,
		core.BondOrderSingle, core.BondOrderDouble, core.BondOrderSingle,
	}
	for i := 0; i < len(ring); i++ {
		mustBond(mol, ring[i], ring[(i+1)%len(ring)], orders[i])
	}
	return mol
}

// Isothiazole builds the five-membered 1,2-thiazole: Isoxazole's
// skeleton with the ring oxygen replaced by sulphur.
func Isothiazole() *core.Molecule {
	mol := core.NewMolecule()
	s1 := mol.AddAtom(mustElement("S"))
	n2 := mol.AddAtom(mustElement("N"))
	c3 := mol.AddAtom(mustElement("C"))
	c3.SetNumberOfHydrogens(1)
	c4 := mol.AddAtom(mustElement("C"))
	c4.SetNumberOfHydrogens(1)
	c5 := mol.AddAtom(mustElement("C"))
	c5.SetNumberOfHydrogens(1)
	ring := []*core.Atom{s1, n2, c3, c4, c5}
	orders := []core.BondOrder{
		core.BondOrderSingle, core.BondOrderDouble,
		core.BondOrderSingle, core.BondOrderDouble, core.BondOrderSingle,
	}
	for i := 0; i < len(ring); i++ {
		mustBond(mol, ring[i], ring[(i+1)%len(ring)], orders[i])
	}
	return mol
}

// Cyclopentadiene builds the five-membered carbocycle with one sp3
// methylene breaking the conjugation: two isolated double bonds, not
// a closed aromatic sextet.
func Cyclopentadiene() *core.Molecule {
	mol := core.NewMolecule()
	c := make([]*core.Atom, 5)
	for i := range c {
		c[i] = mol.AddAtom(mustElement("C"))
		c[i].SetNumberOfHydrogens(1)
	}
	c[0].SetNumberOfHydrogens(2)
	orders := []core.BondOrder{
		core.BondOrderSingle, core.BondOrderDouble,
		core.BondOrderSingle, core.BondOrderDouble, core.BondOrderSingle,
	}
	for i := 0; i < len(c); i++ {
		mustBond(mol, c[i], c[(i+1)%len(c)], orders[i])
	}
	return mol
}

// CyclopentadienylAnion builds Cyclopentadiene's conjugate base: the
// methylene carbon loses a proton and carries the negative charge,
// its remaining lone pair completing a six-pi-electron aromatic ring.
func CyclopentadienylAnion() *core.Molecule {
	mol := core.NewMolecule()
	c := make([]*core.Atom, 5)
	for i := range c {
		c[i] = mol.AddAtom(mustElement("C"))
		c[i].SetNumberOfHydrogens(1)
	}
	c[0].SetNumberOfHydrogens(0)
	c[0].SetCharge(-1)
	orders := []core.BondOrder{
		core.BondOrderSingle, core.BondOrderDouble,
		core.BondOrderSingle, core.BondOrderDouble, core.BondOrderSingle,
	}
	for i := 0; i < len(c); i++ {
		mustBond(mol, c[i], c[(i+1)%len(c)], orders[i])
	}
	return mol
}

// Annulene builds a fully conjugated monocyclic carbocycle of the
// given even size, alternating single and double ring bonds the same
// way Benzene does at size 6. 4n+2 holds for size 14 and size 18, so
// both annulenes built by this are Huckel-aromatic despite the real
// molecules' well-known non-planarity, which this bond-graph model
// has no way to represent.
func Annulene(size int) *core.Molecule {
	mol := core.NewMolecule()
	c := make([]*core.Atom, size)
	for i := range c {
		c[i] = mol.AddAtom(mustElement("C"))
		c[i].SetNumberOfHydrogens(1)
	}
	for i := 0; i < size; i++ {
		order := core.BondOrderSingle
		if i%2 == 0 {
			order = core.BondOrderDouble
		}
		mustBond(mol, c[i], c[(i+1)%size], order)
	}
	return mol
}

// Annulene14 builds [14]annulene: 14 pi electrons, 4(3)+2, aromatic.
func Annulene14() *core.Molecule { return Annulene(14) }

// Annulene18 builds [18]annulene: 18 pi electrons, 4(4)+2, aromatic.
func Annulene18() *core.Molecule { return Annulene(18) }

// Phenalene builds 1H-phenalene: three benzo-sized rings fused pairwise
// around one shared central carbon, each pair sharing a full spoke
// bond to that centre. One peripheral carbon is the sp3 methylene that
// gives 1H-phenalene its name; the ring built across it never reaches
// a 4n+2 total, while the other two rings do.
func Phenalene() *core.Molecule {
	mol := core.NewMolecule()
	center := mol.AddAtom(mustElement("C"))
	spoke := make([]*core.Atom, 3)
	for i := range spoke {
		spoke[i] = mol.AddAtom(mustElement("C"))
	}
	arm := make([][]*core.Atom, 3)
	for i := range arm {
		arm[i] = make([]*core.Atom, 3)
		for j := range arm[i] {
			arm[i][j] = mol.AddAtom(mustElement("C"))
			arm[i][j].SetNumberOfHydrogens(1)
		}
	}
	arm[0][0].SetNumberOfHydrogens(2)

	mustBond(mol, center, spoke[0], core.BondOrderDouble)
	mustBond(mol, center, spoke[1], core.BondOrderSingle)
	mustBond(mol, center, spoke[2], core.BondOrderSingle)

	mustBond(mol, spoke[0], arm[0][0], core.BondOrderSingle)
	mustBond(mol, arm[0][0], arm[0][1], core.BondOrderSingle)
	mustBond(mol, arm[0][1], arm[0][2], core.BondOrderDouble)
	mustBond(mol, arm[0][2], spoke[1], core.BondOrderSingle)

	mustBond(mol, spoke[1], arm[1][0], core.BondOrderDouble)
	mustBond(mol, arm[1][0], arm[1][1], core.BondOrderSingle)
	mustBond(mol, arm[1][1], arm[1][2], core.BondOrderDouble)
	mustBond(mol, arm[1][2], spoke[2], core.BondOrderSingle)

	mustBond(mol, spoke[2], arm[2][0], core.BondOrderDouble)
	mustBond(mol, arm[2][0], arm[2][1], core.BondOrderSingle)
	mustBond(mol, arm[2][1], arm[2][2], core.BondOrderDouble)
	mustBond(mol, arm[2][2], spoke[0], core.BondOrderSingle)

	return mol
}

// Citalopram builds the SSRI of the same name: a 1,3-dihydroisobenzo-
// furan core (a non-aromatic five-membered ring fused to an aromatic
// benzo ring, carrying a nitrile) whose quaternary carbon also bears
// an isolated 4-fluorophenyl ring and a dimethylaminopropyl chain.
func Citalopram() *core.Molecule {
	mol := core.NewMolecule()

	c1 := mol.AddAtom(mustElement("C"))
	o2 := mol.AddAtom(mustElement("O"))
	c3 := mol.AddAtom(mustElement("C"))
	c3.SetNumberOfHydrogens(2)
	c3a := mol.AddAtom(mustElement("C"))
	c4 := mol.AddAtom(mustElement("C"))
	c4.SetNumberOfHydrogens(1)
	c5 := mol.AddAtom(mustElement("C"))
	c6 := mol.AddAtom(mustElement("C"))
	c6.SetNumberOfHydrogens(1)
	c7 := mol.AddAtom(mustElement("C"))
	c7.SetNumberOfHydrogens(1)
	c7a := mol.AddAtom(mustElement("C"))

	mustBond(mol, c1, o2, core.BondOrderSingle)
	mustBond(mol, o2, c3, core.BondOrderSingle)
	mustBond(mol, c3, c3a, core.BondOrderSingle)
	benzo := []*core.Atom{c3a, c4, c5, c6, c7, c7a}
	for i := 0; i < len(benzo); i++ {
		order := core.BondOrderSingle
		if i%2 == 0 {
			order = core.BondOrderDouble
		}
		mustBond(mol, benzo[i], benzo[(i+1)%len(benzo)], order)
	}
	mustBond(mol, c7a, c1, core.BondOrderSingle)

	nitrileC := mol.AddAtom(mustElement("C"))
	nitrileN := mol.AddAtom(mustElement("N"))
	mustBond(mol, c5, nitrileC, core.BondOrderSingle)
	mustBond(mol, nitrileC, nitrileN, core.BondOrderTriple)

	fc := make([]*core.Atom, 6)
	for i := range fc {
		fc[i] = mol.AddAtom(mustElement("C"))
	}
	for i := 0; i < 6; i++ {
		order := core.BondOrderSingle
		if i%2 == 0 {
			order = core.BondOrderDouble
		}
		mustBond(mol, fc[i], fc[(i+1)%6], order)
	}
	fc[1].SetNumberOfHydrogens(1)
	fc[2].SetNumberOfHydrogens(1)
	fc[4].SetNumberOfHydrogens(1)
	fc[5].SetNumberOfHydrogens(1)
	f := mol.AddAtom(mustElement("F"))
	mustBond(mol, fc[3], f, core.BondOrderSingle)
	mustBond(mol, c1, fc[0], core.BondOrderSingle)

	chain := make([]*core.Atom, 3)
	for i := range chain {
		chain[i] = mol.AddAtom(mustElement("C"))
		chain[i].SetNumberOfHydrogens(2)
	}
	mustBond(mol, c1, chain[0], core.BondOrderSingle)
	mustBond(mol, chain[0], chain[1], core.BondOrderSingle)
	mustBond(mol, chain[1], chain[2], core.BondOrderSingle)
	amineN := mol.AddAtom(mustElement("N"))
	mustBond(mol, chain[2], amineN, core.BondOrderSingle)
	methyl1 := mol.AddAtom(mustElement("C"))
	methyl1.SetNumberOfHydrogens(3)
	methyl2 := mol.AddAtom(mustElement("C"))
	methyl2.SetNumberOfHydrogens(3)
	mustBond(mol, amineN, methyl1, core.BondOrderSingle)
	mustBond(mol, amineN, methyl2, core.BondOrderSingle)

	return mol
}

// EightSpiroHexanes builds a linear chain of eight cyclohexane rings,
// each pair of neighbours sharing exactly one spiro atom and no bond.
// Every ring is edge-disjoint from the rest of the chain, so none of
// the bridge- or fusion-induced extra rings seen in Norbornane or
// Adamantane arise here: ring detection reduces to the eight
// independent hexagons, one ring system, no pruning.
func EightSpiroHexanes() *core.Molecule {
	mol := core.NewMolecule()
	const numRings = 8
	var shared *core.Atom
	for r := 0; r < numRings; r++ {
		ring := make([]*core.Atom, 6)
		for i := range ring {
			if i == 0 && shared != nil {
				ring[i] = shared
			} else {
				ring[i] = mol.AddAtom(mustElement("C"))
			}
		}
		for i := 0; i < 6; i++ {
			mustBond(mol, ring[i], ring[(i+1)%6], core.BondOrderSingle)
		}
		shared = ring[3]
	}
	for _, a := range mol.Atoms() {
		a.SetNumberOfHydrogens(4 - a.NumberOfBonds())
	}
	return mol
}
