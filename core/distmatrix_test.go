package core_test

import (
	"testing"

	"github.com/arborchem/molcore/core"
	"github.com/arborchem/molcore/element"
	"github.com/arborchem/molcore/fixtures"
	"github.com/stretchr/testify/require"
)

func TestDistanceMatrix_LinearChain(t *testing.T) {
	mol := core.NewMolecule()
	a1 := mol.AddAtom(element.MustLookup("C"))
	a2 := mol.AddAtom(element.MustLookup("C"))
	a3 := mol.AddAtom(element.MustLookup("C"))
	_, err := mol.AddBond(a1, a2, core.BondOrderSingle)
	require.NoError(t, err)
	_, err = mol.AddBond(a2, a3, core.BondOrderSingle)
	require.NoError(t, err)
	a1.SetNumberOfHydrogens(3)
	a2.SetNumberOfHydrogens(2)
	a3.SetNumberOfHydrogens(3)

	require.NoError(t, mol.Normalise())
	require.Equal(t, 0, mol.DistanceBetween(a1.InputID(), a1.InputID()))
	require.Equal(t, 1, mol.DistanceBetween(a1.InputID(), a2.InputID()))
	require.Equal(t, 2, mol.DistanceBetween(a1.InputID(), a3.InputID()))

	path := mol.ShortestPathBetween(a1.InputID(), a3.InputID())
	require.Equal(t, []int{a2.InputID()}, path)
}

func TestDistanceMatrix_DisconnectedReturnsNegativeOne(t *testing.T) {
	mol := core.NewMolecule()
	a1 := mol.AddAtom(element.MustLookup("C"))
	a2 := mol.AddAtom(element.MustLookup("C"))
	a1.SetNumberOfHydrogens(4)
	a2.SetNumberOfHydrogens(4)

	require.NoError(t, mol.Normalise())
	require.Equal(t, -1, mol.DistanceBetween(a1.InputID(), a2.InputID()))
	require.Nil(t, mol.ShortestPathBetween(a1.InputID(), a2.InputID()))
}

func TestDistanceMatrix_CyclohexaneOppositeAtoms(t *testing.T) {
	mol := fixtures.Cyclohexane()
	require.NoError(t, mol.Normalise())
	require.Equal(t, 3, mol.DistanceBetween(1, 4))
}
