package core_test

import (
	"testing"

	"github.com/arborchem/molcore/core"
	"github.com/arborchem/molcore/element"
	"github.com/arborchem/molcore/fixtures"
	"github.com/stretchr/testify/require"
)

func TestAtom_InputIDAndNormalisedIDCoincide(t *testing.T) {
	mol := core.NewMolecule()
	a1 := mol.AddAtom(element.MustLookup("C"))
	a2 := mol.AddAtom(element.MustLookup("C"))
	require.Equal(t, 1, a1.InputID())
	require.Equal(t, 1, a1.ID())
	require.Equal(t, 2, a2.InputID())
	require.Equal(t, 2, a2.ID())
}

func TestAtom_AddHydrogenRespectsValence(t *testing.T) {
	mol := core.NewMolecule()
	a := mol.AddAtom(element.MustLookup("C"))
	for i := 0; i < 10; i++ {
		a.AddHydrogen()
	}
	require.Equal(t, 4, a.NumberOfHydrogens())
}

func TestAtom_HashReflectsAromaticOverride(t *testing.T) {
	mol := fixtures.Benzene()
	require.NoError(t, mol.Normalise())
	for _, a := range mol.Atoms() {
		require.Equal(t, core.UnsaturationAromatic, a.Unsaturation())
		require.Equal(t, 1000*6+10*core.UnsaturationAromatic.Value()+1, a.Hash())
	}
}

func TestAtom_SmallestRingSingleRing(t *testing.T) {
	mol := fixtures.Cyclohexane()
	require.NoError(t, mol.Normalise())
	a := mol.AtomByInputID(1)
	r, err := a.SmallestRing()
	require.NoError(t, err)
	require.NotNil(t, r)
	require.Equal(t, 6, r.Size())
}

func TestAtom_BridgeheadsInNorbornane(t *testing.T) {
	mol := fixtures.Norbornane()
	require.NoError(t, mol.Normalise())
	var bridgeheads int
	for _, a := range mol.Atoms() {
		if a.IsBridgehead() {
			bridgeheads++
		}
	}
	require.Equal(t, 2, bridgeheads)
}

func TestAtom_SpiroCenterInSpiropentane(t *testing.T) {
	mol := fixtures.SpiroPentane()
	require.NoError(t, mol.Normalise())
	center := mol.AtomByInputID(1)
	require.True(t, center.IsSpiro())
	for _, a := range mol.Atoms() {
		if a.InputID() != 1 {
			require.False(t, a.IsSpiro())
		}
	}
}
