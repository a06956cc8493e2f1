// Package core owns the molecule graph data model (Atom, Bond, Ring,
// RingSystem, Molecule) and the ring-perception/aromaticity pipeline
// that Molecule.Normalise orchestrates. Atoms, bonds, rings and ring
// systems are arena-owned by their Molecule, which holds them in its
// own slices. Cross-references between them (an atom's bonds and
// rings, a bond's endpoints and rings, a ring's atoms and bonds) are
// direct pointers into that same molecule's arenas, not integer ids,
// so the object graph does contain Go reference cycles.
//
// Errors:
//
//	ErrInvalidArgument    - foreign/nil atom, empty attribute name/value, unknown attribute.
//	ErrValenceViolation   - a bond would exceed an endpoint's valence ceiling.
//	ErrDuplicateAttribute - attribute name already present on the molecule.
//	ErrImmutability       - mutation attempted on a completed ring.
//	ErrStateInconsistency - internal invariant violated (bad valence accounting, degenerate ring, tied smallest ring).
package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for the fixed error kinds the core raises. Callers
// should match against these with errors.Is; every value returned to
// a caller is one of these wrapped with github.com/pkg/errors to
// carry molecule/atom/bond context in the message.
var (
	ErrInvalidArgument    = errors.New("core: invalid argument")
	ErrValenceViolation   = errors.New("core: valence violation")
	ErrDuplicateAttribute = errors.New("core: duplicate attribute")
	ErrImmutability       = errors.New("core: immutable ring")
	ErrStateInconsistency = errors.New("core: state inconsistency")
)

func invalidArgumentf(format string, args ...interface{}) error {
	return errors.Wrap(ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func valenceViolationf(format string, args ...interface{}) error {
	return errors.Wrap(ErrValenceViolation, fmt.Sprintf(format, args...))
}

func duplicateAttributef(format string, args ...interface{}) error {
	return errors.Wrap(ErrDuplicateAttribute, fmt.Sprintf(format, args...))
}

func immutabilityf(format string, args ...interface{}) error {
	return errors.Wrap(ErrImmutability, fmt.Sprintf(format, args...))
}

func stateInconsistencyf(format string, args ...interface{}) error {
	return errors.Wrap(ErrStateInconsistency, fmt.Sprintf(format, args...))
}
