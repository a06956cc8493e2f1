package core_test

import (
	"testing"

	"github.com/arborchem/molcore/core"
	"github.com/arborchem/molcore/element"
	"github.com/arborchem/molcore/fixtures"
	"github.com/stretchr/testify/require"
)

func TestMolecule_AttributesRoundTrip(t *testing.T) {
	mol := core.NewMolecule()
	require.NoError(t, mol.AddAttribute("name", "acetone"))
	v, err := mol.Attribute("name")
	require.NoError(t, err)
	require.Equal(t, "acetone", v)

	require.Error(t, mol.AddAttribute("name", "other"))
	require.NoError(t, mol.SetAttribute("name", "renamed"))
	v, err = mol.Attribute("name")
	require.NoError(t, err)
	require.Equal(t, "renamed", v)

	require.NoError(t, mol.RemoveAttribute("name"))
	require.False(t, mol.HasAttribute("name"))
}

func TestMolecule_AddAttributeRejectsDuplicate(t *testing.T) {
	mol := core.NewMolecule()
	require.NoError(t, mol.AddAttribute("k", "v"))
	err := mol.AddAttribute("k", "v2")
	require.ErrorIs(t, err, core.ErrDuplicateAttribute)
}

func TestMolecule_RejectsCrossMoleculeBond(t *testing.T) {
	m1 := core.NewMolecule()
	m2 := core.NewMolecule()
	a1 := m1.AddAtom(element.MustLookup("C"))
	a2 := m2.AddAtom(element.MustLookup("C"))
	_, err := m1.AddBond(a1, a2, core.BondOrderSingle)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestMolecule_RemoveAtomBreaksItsBonds(t *testing.T) {
	mol := core.NewMolecule()
	a1 := mol.AddAtom(element.MustLookup("C"))
	a2 := mol.AddAtom(element.MustLookup("C"))
	_, err := mol.AddBond(a1, a2, core.BondOrderSingle)
	require.NoError(t, err)
	require.NoError(t, mol.RemoveAtom(a1))
	require.Equal(t, 1, mol.NumberOfAtoms())
	require.Equal(t, 0, mol.NumberOfBonds())
}

func TestMolecule_NormaliseIsIdempotent(t *testing.T) {
	mol := fixtures.Benzene()
	require.NoError(t, mol.Normalise())
	hashesBefore := make([]int, 0, mol.NumberOfAtoms())
	for _, a := range mol.Atoms() {
		hashesBefore = append(hashesBefore, a.Hash())
	}
	require.NoError(t, mol.Normalise())
	for i, a := range mol.Atoms() {
		require.Equal(t, hashesBefore[i], a.Hash())
	}
}

func TestMolecule_AtomByIDIsPositional(t *testing.T) {
	mol := fixtures.Cyclohexane()
	for _, a := range mol.Atoms() {
		require.Same(t, a, mol.AtomByID(a.ID()))
	}
}

func TestMolecule_GenerateVendorMoleculeIDMintsUniqueValues(t *testing.T) {
	m1 := core.NewMolecule()
	m2 := core.NewMolecule()
	id1 := m1.GenerateVendorMoleculeID()
	id2 := m2.GenerateVendorMoleculeID()
	require.NotEmpty(t, id1)
	require.NotEqual(t, id1, id2)
	require.Equal(t, id1, m1.VendorMoleculeID())
}

func TestMolecule_BondBetweenFindsExistingBond(t *testing.T) {
	mol := fixtures.Cyclohexane()
	atoms := mol.Atoms()
	b, err := mol.BondBetween(atoms[0], atoms[1])
	require.NoError(t, err)
	require.NotNil(t, b)
}
