package core

import "github.com/arborchem/molcore/bitset"

// maxRings caps the Frerejacque number beyond which ring detection is
// skipped outright, as a safeguard against pathologically fused
// systems. There is no principled derivation for this figure beyond
// "large enough for any naturally occurring molecule"; 15 is the
// value carried over from the original detector.
const maxRings = 15

// ringDetector runs the exhaustive ring-perception pipeline over a
// molecule's current bond graph: terminal-chain pruning, exhaustive
// candidate-path enumeration, ring-system grouping, and spurious-ring
// pruning against a size-ascending basis set.
type ringDetector struct {
	mol *Molecule

	atoms []*Atom   // scratch copy, shrinks as terminal chains are pruned
	nbrs  [][]*Atom // parallel neighbour lists, shrink in lockstep with atoms

	candidates [][]*Atom // FIFO queue of in-progress candidate paths

	rings []*Ring

	ringSystems     [][]*Ring
	ringSystemAtoms []*bitset.Set
	ringSystemBonds []*bitset.Set

	bridgeheads map[int]bool // atom input-ids identified as bridgeheads during spurious-ring pruning
}

func newRingDetector(mol *Molecule) *ringDetector {
	rd := &ringDetector{
		mol:   mol,
		atoms: make([]*Atom, 0, len(mol.atoms)),
		nbrs:  make([][]*Atom, 0, len(mol.atoms)),
	}
	for _, a := range mol.atoms {
		rd.atoms = append(rd.atoms, a)
		nbrs := make([]*Atom, 0, len(a.bonds))
		for _, b := range a.bonds {
			nbrs = append(nbrs, b.OtherAtom(a))
		}
		rd.nbrs = append(rd.nbrs, nbrs)
	}
	return rd
}

func (rd *ringDetector) indexOfAtom(a *Atom) int {
	for i, t := range rd.atoms {
		if t == a {
			return i
		}
	}
	return -1
}

func indexOfAtomIn(path []*Atom, a *Atom) int {
	for i, t := range path {
		if t == a {
			return i
		}
	}
	return -1
}

// detectRings runs the full pipeline and returns the rings found, not
// yet attached to the molecule.
func (rd *ringDetector) detectRings() ([]*Ring, error) {
	rd.pruneTerminalChains()

	if rd.noAtomsWithGT2Bonds() {
		if err := rd.detectTheOnlyRing(); err != nil {
			return nil, err
		}
		return rd.rings, nil
	}

	if err := rd.detectMultipleRings(); err != nil {
		return nil, err
	}
	rd.sortRings()
	rd.detectRingSystems()
	rd.pruneSpuriousRings()
	return rd.rings, nil
}

// pruneTerminalChains repeatedly removes atoms with exactly one
// neighbour; removing one may expose another, so this cascades until
// no terminal atoms remain.
func (rd *ringDetector) pruneTerminalChains() {
	for {
		pruned := false
		for i := 0; i < len(rd.atoms); i++ {
			if len(rd.nbrs[i]) == 1 {
				rd.pruneTerminalAtom(i)
				pruned = true
				break
			}
		}
		if !pruned {
			return
		}
	}
}

func (rd *ringDetector) pruneTerminalAtom(i int) {
	a := rd.atoms[i]
	nbr := rd.nbrs[i][0]
	nbrIdx := rd.indexOfAtom(nbr)
	if nbrIdx >= 0 {
		filtered := rd.nbrs[nbrIdx][:0]
		removed := false
		for _, n := range rd.nbrs[nbrIdx] {
			if n == a && !removed {
				removed = true
				continue
			}
			filtered = append(filtered, n)
		}
		rd.nbrs[nbrIdx] = filtered
	}
	rd.atoms = append(rd.atoms[:i], rd.atoms[i+1:]...)
	rd.nbrs = append(rd.nbrs[:i], rd.nbrs[i+1:]...)
}

func (rd *ringDetector) noAtomsWithGT2Bonds() bool {
	for _, l := range rd.nbrs {
		if len(l) > 2 {
			return false
		}
	}
	return true
}

// detectTheOnlyRing handles the degenerate case where every remaining
// atom has exactly two neighbours, meaning the pruned graph is itself
// a single cycle.
func (rd *ringDetector) detectTheOnlyRing() error {
	if len(rd.atoms) == 0 {
		return nil
	}
	start := rd.atoms[0]
	path := []*Atom{start}

	prev, curr := start, start
	for {
		i := rd.indexOfAtom(curr)
		nbrs := rd.nbrs[i]
		next := nbrs[0]
		if next == prev {
			next = nbrs[1]
		}
		if next == start {
			break
		}
		path = append(path, next)
		prev, curr = curr, next
	}
	return rd.makeRingFrom(path)
}

// detectMultipleRings seeds the candidate queue with a single-atom
// path and exhaustively extends candidates, FIFO, until every lead
// has either closed into a ring or dead-ended.
func (rd *ringDetector) detectMultipleRings() error {
	var seed *Atom
	for _, a := range rd.atoms {
		if !a.isJunction() {
			seed = a
			break
		}
	}
	if seed == nil && len(rd.atoms) > 0 {
		seed = rd.atoms[0]
	}
	if seed == nil {
		return nil
	}
	rd.candidates = append(rd.candidates, []*Atom{seed})

	for len(rd.candidates) > 0 {
		path := rd.candidates[0]
		rd.candidates = rd.candidates[1:]
		if err := rd.tryPath(path); err != nil {
			return err
		}
	}
	return nil
}

func (a *Atom) isJunction() bool { return len(a.bonds) >= 3 }

func (rd *ringDetector) tryPath(path []*Atom) error {
	size := len(path)
	start := path[0]
	curr := path[size-1]
	var prev *Atom
	if size > 1 {
		prev = path[size-2]
	} else {
		prev = curr
	}

	i := rd.indexOfAtom(curr)
	for _, next := range rd.nbrs[i] {
		if next == prev {
			continue
		}
		if next == start {
			if rd.validatePath(path) {
				if err := rd.makeRingFrom(path); err != nil {
					return err
				}
			}
			continue
		}

		if idx := indexOfAtomIn(path, next); idx != -1 {
			sub := path[idx:]
			if rd.validatePath(sub) {
				if err := rd.makeRingFrom(sub); err != nil {
					return err
				}
			}
			continue
		}

		newPath := make([]*Atom, size+1)
		copy(newPath, path)
		newPath[size] = next
		rd.candidates = append(rd.candidates, newPath)
	}
	return nil
}

func (rd *ringDetector) validatePath(path []*Atom) bool {
	if len(path) == 3 {
		return true
	}
	return rd.isValidPath(path)
}

// isValidPath rejects a candidate path that wraps around an outer
// shell rather than closing a genuine inner ring: any atom with three
// or more neighbours may have at most two of them inside the path.
func (rd *ringDetector) isValidPath(path []*Atom) bool {
	for _, a := range path {
		idx := rd.indexOfAtom(a)
		if idx == -1 {
			continue
		}
		anbrs := rd.nbrs[idx]
		if len(anbrs) < 3 {
			continue
		}
		found := 0
		for _, n := range anbrs {
			if indexOfAtomIn(path, n) > -1 {
				found++
				if found > 2 {
					break
				}
			}
		}
		if found > 2 {
			return false
		}
	}
	return true
}

func (rd *ringDetector) makeRingFrom(path []*Atom) error {
	r := newRing(rd.mol)
	for _, a := range path {
		if err := r.appendAtom(a); err != nil {
			return err
		}
	}
	if err := r.complete(); err != nil {
		return err
	}
	for _, existing := range rd.rings {
		if existing.Equal(r) {
			return nil
		}
	}
	rd.rings = append(rd.rings, r)
	return nil
}

func (rd *ringDetector) sortRings() {
	// Insertion sort ascending on size; ring counts are small, and
	// this keeps the already-discovered relative order stable for
	// same-sized rings.
	for i := 1; i < len(rd.rings); i++ {
		for j := i; j > 0 && rd.rings[j-1].Size() > rd.rings[j].Size(); j-- {
			rd.rings[j-1], rd.rings[j] = rd.rings[j], rd.rings[j-1]
		}
	}
}

// detectRingSystems groups rings sharing a bond (fused) or a single
// atom (spiro) into the same ring system.
func (rd *ringDetector) detectRingSystems() {
	rsid := 0
	for _, r := range rd.rings {
		ras := r.AtomBitSet()
		rbs := r.BondBitSet()

		placed := false
		for i := range rd.ringSystems {
			if bitset.Intersect(rd.ringSystemBonds[i], rbs).Cardinality() > 0 ||
				bitset.Intersect(rd.ringSystemAtoms[i], ras).Cardinality() > 0 {
				r.setRingSystemID(rsid)
				rd.ringSystems[i] = append(rd.ringSystems[i], r)
				rd.ringSystemAtoms[i].Or(ras)
				rd.ringSystemBonds[i].Or(rbs)
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		rsid++
		r.setRingSystemID(rsid)
		rd.ringSystems = append(rd.ringSystems, []*Ring{r})
		rd.ringSystemAtoms = append(rd.ringSystemAtoms, ras)
		rd.ringSystemBonds = append(rd.ringSystemBonds, rbs)
	}
}

// pruneSpuriousRings reduces each ring system to a basis set of the
// smallest rings needed to account for every bond, discarding larger
// rings that are redundant unions of the basis (spurious) while
// keeping any that genuinely add coverage.
func (rd *ringDetector) pruneSpuriousRings() {
	for i := range rd.ringSystems {
		rs := rd.ringSystems[i]
		rsbs := rd.ringSystemBonds[i]

		lastIncluded := rd.indexOfLastRingInBasis(rs, rsbs)
		if lastIncluded < len(rs)-1 {
			rd.ringSystems[i] = rd.pruneLargerRings(rs, lastIncluded)
		}
	}
}

// indexOfLastRingInBasis scans the size-ascending ring system and
// returns the index of the last ring needed so that the union of
// included rings' bonds exactly equals the ring system's bonds.
func (rd *ringDetector) indexOfLastRingInBasis(rs []*Ring, rsbs *bitset.Set) int {
	prevSize, lastIncluded := -1, -1
	bs := bitset.New(rsbs.Len())

	for _, r := range rs {
		currSize := r.Size()
		if currSize != prevSize {
			if bitset.SymmetricDifference(bs, rsbs).Cardinality() == 0 {
				return lastIncluded
			}
		}
		bs.Or(r.bondBits)
		lastIncluded++
		prevSize = currSize
	}
	return lastIncluded
}

// pruneLargerRings removes, from the tail of rs past lastIncluded,
// every ring judged spurious by shouldPrune; survivors are moved
// forward into the basis range in place, growing it by one each time.
func (rd *ringDetector) pruneLargerRings(rs []*Ring, lastIncluded int) []*Ring {
	running := true
	for running {
		running = false
		for j := lastIncluded + 1; j < len(rs); j++ {
			r := rs[j]
			if rd.shouldPrune(rs, r, lastIncluded) {
				rd.removeRing(r)
				rs = removeAt(rs, j)
				running = true
				break
			}
			rs = removeAt(rs, j)
			lastIncluded++
			rs = insertAt(rs, lastIncluded, r)
		}
	}
	return rs
}

func removeAt(rs []*Ring, i int) []*Ring {
	return append(rs[:i:i], rs[i+1:]...)
}

func insertAt(rs []*Ring, i int, r *Ring) []*Ring {
	rs = append(rs, nil)
	copy(rs[i+1:], rs[i:])
	rs[i] = r
	return rs
}

func (rd *ringDetector) removeRing(r *Ring) {
	for i, existing := range rd.rings {
		if existing == r {
			rd.rings = append(rd.rings[:i], rd.rings[i+1:]...)
			return
		}
	}
}

// shouldPrune judges a larger candidate ring r spurious when its bond
// set equals the union of the bond sets of two already-included basis
// rings and a shorter cross-basis path through alternative
// junction atoms beats r's own internal distance between those
// junctions; otherwise it keeps r if it still contributes at least
// one bond not already double-covered by the basis.
func (rd *ringDetector) shouldPrune(rs []*Ring, r *Ring, lastIncluded int) bool {
	ras := r.AtomBitSet()
	rbs := r.BondBitSet()

	for i := 0; i < lastIncluded; i++ {
		ri := rs[i]
		as1 := ri.AtomBitSet()
		bs1 := ri.BondBitSet()

		for j := i + 1; j <= lastIncluded; j++ {
			rj := rs[j]
			as2 := rj.AtomBitSet()
			bs2 := rj.BondBitSet()

			union := bitset.Union(bs1, bs2)
			if bitset.SymmetricDifference(union, rbs).Cardinality() != 0 {
				continue
			}

			shared := bitset.Intersect(bitset.Intersect(as1, as2), ras)
			if shared.Cardinality() > 2 {
				continue
			}
			if shared.Cardinality() == 2 {
				if rd.bridgeheads == nil {
					rd.bridgeheads = make(map[int]bool)
				}
				for _, id := range shared.Slice() {
					rd.bridgeheads[id] = true
				}
			}

			var junctions []*Atom
			rem := ras.Clone()
			rem.AndNot(shared)
			for _, id := range rem.Slice() {
				for m := 0; m < len(rd.atoms); m++ {
					ta := rd.atoms[m]
					if ta.inputID == id && len(rd.nbrs[m]) > 2 {
						junctions = append(junctions, ta)
					}
				}
			}

			switch len(junctions) {
			case 0, 1:
				return false
			case 2:
				a1id, a2id := junctions[0].inputID, junctions[1].inputID
				dr, err := r.DistanceBetween(a1id, a2id)
				if err != nil {
					return false
				}
				dm := rd.mol.DistanceBetween(a1id, a2id)
				return dm >= 0 && dm < dr
			default:
				for l := 0; l < len(junctions)-1; l++ {
					for m := l + 1; m < len(junctions); m++ {
						a1id, a2id := junctions[l].inputID, junctions[m].inputID
						dr, err := r.DistanceBetween(a1id, a2id)
						if err != nil {
							continue
						}
						dm := rd.mol.DistanceBetween(a1id, a2id)
						if dm >= 0 && dm < dr {
							return true
						}
					}
				}
			}
		}
	}

	for _, id := range rbs.Slice() {
		count := 0
		for j := 0; j <= lastIncluded; j++ {
			if rs[j].bondBits.Test(id) {
				count++
			}
		}
		if count < 2 {
			return false
		}
	}
	return true
}
