package core

// determineUnsaturation derives the atom's unsaturation tag from its
// current bonds and charge. An uncharged atom whose expanded-neighbour
// count plus implicit-hydrogen count does not equal its valence
// ceiling is a state inconsistency: every bond affecting it should
// have been specified by this point.
func (a *Atom) determineUnsaturation() error {
	nb := len(a.bonds)
	nn := len(a.nbrs)

	if a.charge != 0 {
		a.unsaturation = UnsaturationCharged
		return nil
	}

	if nn+a.numH != a.Valence() {
		return stateInconsistencyf(
			"molecule %d, atom %d: neighbours(%d)+H(%d) != valence(%d); bonds incomplete or charge unset",
			a.mol.id, a.inputID, nn, a.numH, a.Valence())
	}

	if nb == nn {
		a.unsaturation = UnsaturationNone
		return nil
	}

	ndb, nhdb, ntb, nhtb := 0, 0, 0, 0
	for _, b := range a.bonds {
		switch b.order {
		case BondOrderDouble:
			ndb++
			if b.OtherAtom(a).element.Number != 6 {
				nhdb++
			}
		case BondOrderTriple:
			ntb++
			if b.OtherAtom(a).element.Number != 6 {
				nhtb++
			}
		}
	}

	switch {
	case ntb > 0:
		if nhtb == 0 {
			a.unsaturation = UnsaturationTBondC
		} else {
			a.unsaturation = UnsaturationTBondX
		}
	case ndb == 1:
		if nhdb == 0 {
			a.unsaturation = UnsaturationDBondC
		} else {
			a.unsaturation = UnsaturationDBondX
		}
	case ndb == 2:
		switch nhdb {
		case 0:
			a.unsaturation = UnsaturationDBondCC
		case 1:
			a.unsaturation = UnsaturationDBondCX
		default:
			a.unsaturation = UnsaturationDBondXX
		}
	}
	return nil
}

// markDerivedFlags sets benzylic, bridgehead and spiro status for
// every atom in the molecule, given that ring detection and
// aromaticity classification have already run. bridgeheads is the set
// of atom input-ids identified as bridgeheads by the ring detector's
// spurious-ring pruning pass.
func (m *Molecule) markDerivedFlags(bridgeheads map[int]bool) {
	for _, a := range m.atoms {
		a.normaliseLocal()
		a.bridgehead = bridgeheads[a.inputID]
	}
	for _, a := range m.atoms {
		a.benzylic = a.computeBenzylic()
	}
}

// computeBenzylic reports whether this atom sits directly outside an
// aromatic ring, bonded to a member of one, and itself carries at
// least one hydrogen.
func (a *Atom) computeBenzylic() bool {
	if a.inAromaticRing || a.numH == 0 {
		return false
	}
	for _, b := range a.bonds {
		if b.OtherAtom(a).inAromaticRing {
			return true
		}
	}
	return false
}
