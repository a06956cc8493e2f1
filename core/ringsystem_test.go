package core_test

import (
	"testing"

	"github.com/arborchem/molcore/fixtures"
	"github.com/stretchr/testify/require"
)

func TestRingSystem_LoneRingFormsSystemOfSizeOne(t *testing.T) {
	mol := fixtures.Cyclohexane()
	require.NoError(t, mol.Normalise())
	require.Equal(t, 1, mol.NumberOfRingSystems())
	require.Equal(t, 1, mol.RingSystems()[0].Size())
}

func TestRingSystem_SpiropentaneFormsOneSystemOfTwoRings(t *testing.T) {
	mol := fixtures.SpiroPentane()
	require.NoError(t, mol.Normalise())
	require.Equal(t, 2, mol.NumberOfRings())
	require.Equal(t, 1, mol.NumberOfRingSystems())
	require.Equal(t, 2, mol.RingSystems()[0].Size())
}

func TestRingSystem_EqualComparesCoverage(t *testing.T) {
	mol := fixtures.Decalin()
	require.NoError(t, mol.Normalise())
	rs := mol.RingSystems()[0]
	require.True(t, rs.Equal(rs))

	other := fixtures.Decalin()
	require.NoError(t, other.Normalise())
	require.False(t, rs.Equal(other.RingSystems()[0]))
}
