// Package element holds the minimal chemical element record the core
// depends on. It is deliberately not a production periodic table: it
// ships a small fixed table covering the elements exercised by the
// aromaticity case table and by the fixture molecules used in tests and
// in the CLI. A real periodic table (full element list, isotopes,
// symbol-with-mass-number lookup) is an external collaborator the core
// never implements.
package element

import "fmt"

// Element holds the essential chemical information of a natural element.
// Precision is not expected to be scientifically exhaustive; it is
// exactly what Atom needs: atomic number, symbol, weight and the
// natural valence used for valence-ceiling bookkeeping.
type Element struct {
	Number  int     // atomic number
	Symbol  string  // e.g. "C", "Cl"
	Weight  float64 // atomic weight
	Valence int     // natural valence; -1 if not meaningful for this table
}

var table = map[string]Element{
	"H":  {1, "H", 1.008, 1},
	"B":  {5, "B", 10.812, 3},
	"C":  {6, "C", 12.011, 4},
	"N":  {7, "N", 14.007, 3},
	"O":  {8, "O", 15.999, 2},
	"F":  {9, "F", 18.998, 1},
	"Na": {11, "Na", 22.99, 1},
	"Si": {14, "Si", 28.086, 4},
	"P":  {15, "P", 30.974, 3},
	"S":  {16, "S", 32.067, 2},
	"Cl": {17, "Cl", 35.453, 1},
	"Br": {35, "Br", 79.904, 1},
	"I":  {53, "I", 126.904, 1},
}

// Lookup returns the Element registered under the given symbol.
// ok is false for a symbol the fixed table does not carry.
func Lookup(symbol string) (Element, bool) {
	e, ok := table[symbol]
	return e, ok
}

// MustLookup is a test/fixture convenience: it panics on an unknown
// symbol rather than forcing every fixture builder to handle the ok
// return. It must never be called with caller-supplied input.
func MustLookup(symbol string) Element {
	e, ok := table[symbol]
	if !ok {
		panic(fmt.Sprintf("element: unknown symbol %q", symbol))
	}
	return e
}
