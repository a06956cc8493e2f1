package core_test

import (
	"testing"

	"github.com/arborchem/molcore/core"
	"github.com/arborchem/molcore/element"
	"github.com/stretchr/testify/require"
)

func TestBond_OtherAtom(t *testing.T) {
	mol := core.NewMolecule()
	a1 := mol.AddAtom(element.MustLookup("C"))
	a2 := mol.AddAtom(element.MustLookup("C"))
	b, err := mol.AddBond(a1, a2, core.BondOrderSingle)
	require.NoError(t, err)
	require.Equal(t, a2, b.OtherAtom(a1))
	require.Equal(t, a1, b.OtherAtom(a2))
}

func TestBond_AddBondReturnsExistingBond(t *testing.T) {
	mol := core.NewMolecule()
	a1 := mol.AddAtom(element.MustLookup("C"))
	a2 := mol.AddAtom(element.MustLookup("C"))
	b1, err := mol.AddBond(a1, a2, core.BondOrderSingle)
	require.NoError(t, err)
	b2, err := mol.AddBond(a2, a1, core.BondOrderSingle)
	require.NoError(t, err)
	require.Same(t, b1, b2)
}

func TestBond_AddBondRejectsUncreatableOrder(t *testing.T) {
	mol := core.NewMolecule()
	a1 := mol.AddAtom(element.MustLookup("C"))
	a2 := mol.AddAtom(element.MustLookup("C"))
	_, err := mol.AddBond(a1, a2, core.BondOrderSingleOrDouble)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestBond_AddBondRejectsValenceViolation(t *testing.T) {
	mol := core.NewMolecule()
	c := mol.AddAtom(element.MustLookup("C"))
	h1 := mol.AddAtom(element.MustLookup("H"))
	h2 := mol.AddAtom(element.MustLookup("H"))
	h3 := mol.AddAtom(element.MustLookup("H"))
	h4 := mol.AddAtom(element.MustLookup("H"))
	h5 := mol.AddAtom(element.MustLookup("H"))
	for _, h := range []*core.Atom{h1, h2, h3, h4} {
		_, err := mol.AddBond(c, h, core.BondOrderSingle)
		require.NoError(t, err)
	}
	_, err := mol.AddBond(c, h5, core.BondOrderSingle)
	require.ErrorIs(t, err, core.ErrValenceViolation)
}

func TestBond_BreakBondDetachesEndpointsAndRings(t *testing.T) {
	mol := core.NewMolecule()
	a1 := mol.AddAtom(element.MustLookup("C"))
	a2 := mol.AddAtom(element.MustLookup("C"))
	a3 := mol.AddAtom(element.MustLookup("C"))
	a1.SetNumberOfHydrogens(2)
	a2.SetNumberOfHydrogens(2)
	a3.SetNumberOfHydrogens(2)
	_, err := mol.AddBond(a1, a2, core.BondOrderSingle)
	require.NoError(t, err)
	_, err = mol.AddBond(a2, a3, core.BondOrderSingle)
	require.NoError(t, err)
	b3, err := mol.AddBond(a3, a1, core.BondOrderSingle)
	require.NoError(t, err)

	require.NoError(t, mol.Normalise())
	require.Equal(t, 1, mol.NumberOfRings())

	require.NoError(t, mol.BreakBond(b3))
	require.Equal(t, 0, mol.NumberOfRings())
	require.Nil(t, a1.BondTo(a3))
}
