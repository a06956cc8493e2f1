package core_test

import (
	"testing"

	"github.com/arborchem/molcore/core"
	"github.com/arborchem/molcore/element"
	"github.com/arborchem/molcore/fixtures"
	"github.com/stretchr/testify/require"
)

func TestAromaticity_FuranIsAromatic(t *testing.T) {
	mol := fixtures.Furan()
	require.NoError(t, mol.Normalise())
	require.True(t, mol.Rings()[0].IsAromatic())
}

func TestAromaticity_ThiopheneIsAromatic(t *testing.T) {
	mol := fixtures.Thiophene()
	require.NoError(t, mol.Normalise())
	require.True(t, mol.Rings()[0].IsAromatic())
}

func TestAromaticity_TolueneMethylIsBenzylic(t *testing.T) {
	mol := fixtures.Toluene()
	require.NoError(t, mol.Normalise())
	methyl := mol.AtomByInputID(7)
	require.True(t, methyl.IsBenzylic())
	for _, a := range mol.Atoms() {
		if a.InputID() != 7 {
			require.False(t, a.IsBenzylic())
		}
	}
}

func TestAromaticity_BridgingCarbonCountsPartnerAtomCyclicityNotBondCyclicity(t *testing.T) {
	mol := fixtures.Bicyclopropenylidene()
	require.NoError(t, mol.Normalise())
	require.Len(t, mol.Rings(), 2)
	// The a3=b3 connecting bond is a bridge, not itself part of either
	// ring, but b3 (a1's double-bonded partner) is a member of the
	// other ring; each ring's bridging atom must score a pi
	// contribution of 1, not 0, making both 3-membered rings
	// non-aromatic (pi total 3, not the 4n+2 total 2 a bond-level
	// cyclicity check would wrongly produce).
	for _, r := range mol.Rings() {
		n, ok := r.NumberOfPiElectrons()
		require.True(t, ok)
		require.Equal(t, 3, n)
		require.False(t, r.IsAromatic())
	}
}

func TestAromaticity_CitalopramHasOneFullyAromaticRingSystem(t *testing.T) {
	mol := fixtures.Citalopram()
	require.Len(t, mol.Atoms(), 24)
	require.Len(t, mol.Bonds(), 26)

	nDouble, nTriple := 0, 0
	for _, b := range mol.Bonds() {
		switch b.Order() {
		case core.BondOrderDouble:
			nDouble++
		case core.BondOrderTriple:
			nTriple++
		}
	}
	require.Equal(t, 6, nDouble)
	require.Equal(t, 1, nTriple)

	require.NoError(t, mol.Normalise())
	require.Equal(t, 3, mol.NumberOfRings())
	require.Equal(t, 2, mol.NumberOfRingSystems())
	require.Equal(t, 2, mol.NumberOfAromaticRings())

	// "Aromatic ring system" here means every ring it contains is
	// aromatic: the isobenzofuran system mixes its aromatic benzo ring
	// with the non-aromatic dihydrofuran ring, so only the isolated
	// fluorophenyl system counts.
	fullyAromaticSystems := 0
	for _, rs := range mol.RingSystems() {
		allAromatic := true
		for _, r := range rs.Rings() {
			if !r.IsAromatic() {
				allAromatic = false
				break
			}
		}
		if allAromatic {
			fullyAromaticSystems++
		}
	}
	require.Equal(t, 1, fullyAromaticSystems)
}

func TestAromaticity_DetermineUnsaturationRejectsIncompleteBonding(t *testing.T) {
	mol := core.NewMolecule()
	a := mol.AddAtom(element.MustLookup("C"))
	a.SetNumberOfHydrogens(1) // leaves only 1 of 4 valence slots filled
	err := mol.Normalise()
	require.ErrorIs(t, err, core.ErrStateInconsistency)
}

func TestAromaticity_ChargedAtomSkipsBondAccounting(t *testing.T) {
	mol := core.NewMolecule()
	a := mol.AddAtom(element.MustLookup("N"))
	a.SetCharge(1)
	a.SetNumberOfHydrogens(0)
	require.NoError(t, mol.Normalise())
	require.Equal(t, core.UnsaturationCharged, a.Unsaturation())
}
