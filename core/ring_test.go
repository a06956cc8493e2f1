package core_test

import (
	"testing"

	"github.com/arborchem/molcore/core"
	"github.com/arborchem/molcore/fixtures"
	"github.com/stretchr/testify/require"
)

func TestRing_BenzeneIsAromaticOfSize6(t *testing.T) {
	mol := fixtures.Benzene()
	require.NoError(t, mol.Normalise())
	require.Equal(t, 1, mol.NumberOfRings())
	r := mol.Rings()[0]
	require.True(t, r.IsAromaticOfSize6())
	require.False(t, r.IsHeteroAromatic())
}

func TestRing_PyridineIsHeteroAromatic(t *testing.T) {
	mol := fixtures.Pyridine()
	require.NoError(t, mol.Normalise())
	r := mol.Rings()[0]
	require.True(t, r.IsAromatic())
	require.True(t, r.IsHeteroAromatic())
}

func TestRing_PyrroleIsHeteroAromatic(t *testing.T) {
	mol := fixtures.Pyrrole()
	require.NoError(t, mol.Normalise())
	r := mol.Rings()[0]
	require.True(t, r.IsAromatic())
	require.True(t, r.IsHeteroAromatic())
}

func TestRing_FiveMemberedHeteroaromaticsAllReachSixPiElectrons(t *testing.T) {
	for name, build := range map[string]func() *core.Molecule{
		"imidazole":   fixtures.Imidazole,
		"pyrazole":    fixtures.Pyrazole,
		"oxazole":     fixtures.Oxazole,
		"thiazole":    fixtures.Thiazole,
		"isoxazole":   fixtures.Isoxazole,
		"isothiazole": fixtures.Isothiazole,
	} {
		t.Run(name, func(t *testing.T) {
			mol := build()
			require.NoError(t, mol.Normalise())
			require.Equal(t, 1, mol.NumberOfRings())
			r := mol.Rings()[0]
			n, ok := r.NumberOfPiElectrons()
			require.True(t, ok)
			require.Equal(t, 6, n)
			require.True(t, r.IsAromatic())
			require.True(t, r.IsHeteroAromatic())
		})
	}
}

func TestRing_CyclopentadieneVersusItsAnion(t *testing.T) {
	neutral := fixtures.Cyclopentadiene()
	require.NoError(t, neutral.Normalise())
	nr := neutral.Rings()[0]
	n, ok := nr.NumberOfPiElectrons()
	require.True(t, ok)
	require.Equal(t, 4, n)
	require.False(t, nr.IsAromatic())

	anion := fixtures.CyclopentadienylAnion()
	require.NoError(t, anion.Normalise())
	ar := anion.Rings()[0]
	n, ok = ar.NumberOfPiElectrons()
	require.True(t, ok)
	require.Equal(t, 6, n)
	require.True(t, ar.IsAromatic())
}

func TestRing_AnnulenesSatisfyHuckelsRule(t *testing.T) {
	for _, build := range []func() *core.Molecule{fixtures.Annulene14, fixtures.Annulene18} {
		mol := build()
		require.NoError(t, mol.Normalise())
		require.Equal(t, 1, mol.NumberOfRings())
		r := mol.Rings()[0]
		require.True(t, r.IsAromatic())
	}
}

func TestRing_PhenaleneHasTwoAromaticBladesAndOneNot(t *testing.T) {
	mol := fixtures.Phenalene()
	require.NoError(t, mol.Normalise())
	require.Equal(t, 3, mol.NumberOfRings())
	require.Equal(t, 1, mol.NumberOfRingSystems())
	require.Equal(t, 2, mol.NumberOfAromaticRings())
}

func TestRing_CyclohexaneIsNotAromatic(t *testing.T) {
	mol := fixtures.Cyclohexane()
	require.NoError(t, mol.Normalise())
	r := mol.Rings()[0]
	require.False(t, r.IsAromatic())
}

func TestRing_NormaliseRotationStartsAtLowestID(t *testing.T) {
	mol := fixtures.Cyclohexane()
	require.NoError(t, mol.Normalise())
	r := mol.Rings()[0]
	atoms := r.Atoms()
	require.NotEmpty(t, atoms)
	min := atoms[0].ID()
	for _, a := range atoms {
		require.LessOrEqual(t, min, a.ID())
	}
	require.Equal(t, atoms[0].ID(), min)
}

func TestRing_EqualComparesByBondSet(t *testing.T) {
	mol := fixtures.Cyclohexane()
	require.NoError(t, mol.Normalise())
	r1 := mol.Rings()[0]
	require.True(t, r1.Equal(r1))

	other := fixtures.Cyclohexane()
	require.NoError(t, other.Normalise())
	r2 := other.Rings()[0]
	require.False(t, r1.Equal(r2))
}

func TestRing_DistanceBetweenWithinRing(t *testing.T) {
	mol := fixtures.Cyclohexane()
	require.NoError(t, mol.Normalise())
	r := mol.Rings()[0]
	atoms := r.Atoms()
	d, err := r.DistanceBetween(atoms[0].InputID(), atoms[3].InputID())
	require.NoError(t, err)
	require.Equal(t, 3, d)
}

func TestRing_DecalinProducesTwoFusedRings(t *testing.T) {
	mol := fixtures.Decalin()
	require.NoError(t, mol.Normalise())
	require.Equal(t, 2, mol.NumberOfRings())
	require.Equal(t, 1, mol.NumberOfRingSystems())
	rs := mol.RingSystems()[0]
	require.Equal(t, 2, rs.Size())

	shared := rs.Rings()[0].CommonAtoms(rs.Rings()[1])
	require.Equal(t, 2, shared.Cardinality())
}
