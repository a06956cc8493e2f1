package core

// BondOrder enumerates the kinds of bond tags the core understands.
// Only Single, Double, Triple and Aromatic may be used to create a
// bond via Molecule.AddBond; the remaining tags exist purely for input
// tolerance (a reader may have recorded an ambiguous order before the
// core ever sees the molecule) and are rejected by AddBond.
type BondOrder int

const (
	BondOrderUnspecified BondOrder = iota
	BondOrderSingle
	BondOrderDouble
	BondOrderTriple
	BondOrderAromatic
	BondOrderSingleOrDouble
	BondOrderSingleOrAromatic
	BondOrderDoubleOrAromatic
)

// Value returns the numeric tag of the order.
func (o BondOrder) Value() int { return int(o) }

// Creatable reports whether o may be used to create a new bond.
func (o BondOrder) Creatable() bool {
	switch o {
	case BondOrderSingle, BondOrderDouble, BondOrderTriple, BondOrderAromatic:
		return true
	default:
		return false
	}
}

func (o BondOrder) String() string {
	switch o {
	case BondOrderSingle:
		return "single"
	case BondOrderDouble:
		return "double"
	case BondOrderTriple:
		return "triple"
	case BondOrderAromatic:
		return "aromatic"
	case BondOrderSingleOrDouble:
		return "single-or-double"
	case BondOrderSingleOrAromatic:
		return "single-or-aromatic"
	case BondOrderDoubleOrAromatic:
		return "double-or-aromatic"
	default:
		return "unspecified"
	}
}

// BondStereo enumerates per-bond stereo tags. The core stores these
// passively; it never derives or validates stereochemistry.
type BondStereo int

const (
	BondStereoNone BondStereo = iota
	BondStereoUp
	BondStereoDown
	BondStereoEither
	BondStereoCisOrTrans
)

// Chirality enumerates per-atom chirality tags, stored passively.
type Chirality int

const (
	ChiralityNone Chirality = iota
	ChiralityR
	ChiralityS
)

// Radical enumerates per-atom radical tags, stored passively.
type Radical int

const (
	RadicalNone Radical = iota
	RadicalSinglet
	RadicalDoublet
	RadicalTriplet
)

// Unsaturation is the categorical label describing the multiset of
// non-single bonds and heteroatom participation at an atom.
type Unsaturation int

const (
	UnsaturationNone Unsaturation = iota
	UnsaturationAromatic
	UnsaturationDBondC
	UnsaturationDBondX
	UnsaturationDBondCC
	UnsaturationDBondCX
	UnsaturationDBondXX
	UnsaturationTBondC
	UnsaturationTBondX
	UnsaturationCharged
)

// Value returns the numeric tag used by the atom hash formula.
func (u Unsaturation) Value() int { return int(u) }

func (u Unsaturation) String() string {
	switch u {
	case UnsaturationAromatic:
		return "aromatic"
	case UnsaturationDBondC:
		return "dbond-c"
	case UnsaturationDBondX:
		return "dbond-x"
	case UnsaturationDBondCC:
		return "dbond-c-c"
	case UnsaturationDBondCX:
		return "dbond-c-x"
	case UnsaturationDBondXX:
		return "dbond-x-x"
	case UnsaturationTBondC:
		return "tbond-c"
	case UnsaturationTBondX:
		return "tbond-x"
	case UnsaturationCharged:
		return "charged"
	default:
		return "none"
	}
}
