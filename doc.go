// Package molcore is a small cheminformatics toolkit for in-memory
// molecule graphs: building atoms and bonds, then deriving rings, ring
// systems, aromaticity and per-atom unsaturation from them.
//
// Everything a caller needs lives under three subpackages:
//
//	element/   — the minimal chemical element record the core depends on
//	bitset/    — a dense atom/bond-indexed bit-set used by ring algebra
//	core/      — Atom, Bond, Molecule, Ring, RingSystem and Normalise
//
// fixtures/ builds a handful of well-known small molecules
// programmatically, for use by the core package's own tests and by the
// molcore CLI (cmd/molcore) demo.
//
//	go get github.com/arborchem/molcore/core
package molcore
