package main

import (
	"sort"

	"github.com/arborchem/molcore/core"
	"github.com/arborchem/molcore/fixtures"
)

var fixtureRegistry = map[string]func() *core.Molecule{
	"benzene":               fixtures.Benzene,
	"cyclohexane":           fixtures.Cyclohexane,
	"cubane":                fixtures.Cubane,
	"pyridine":              fixtures.Pyridine,
	"pyrrole":               fixtures.Pyrrole,
	"furan":                 fixtures.Furan,
	"thiophene":             fixtures.Thiophene,
	"toluene":               fixtures.Toluene,
	"decalin":               fixtures.Decalin,
	"spiropentane":          fixtures.SpiroPentane,
	"norbornane":            fixtures.Norbornane,
	"bicyclopropenylidene":  fixtures.Bicyclopropenylidene,
	"adamantane":            fixtures.Adamantane,
	"triptycene":            fixtures.Triptycene,
	"eightspirohexanes":     fixtures.EightSpiroHexanes,
	"imidazole":             fixtures.Imidazole,
	"pyrazole":              fixtures.Pyrazole,
	"oxazole":               fixtures.Oxazole,
	"thiazole":              fixtures.Thiazole,
	"isoxazole":             fixtures.Isoxazole,
	"isothiazole":           fixtures.Isothiazole,
	"cyclopentadiene":       fixtures.Cyclopentadiene,
	"cyclopentadienylanion": fixtures.CyclopentadienylAnion,
	"annulene14":            fixtures.Annulene14,
	"annulene18":            fixtures.Annulene18,
	"phenalene":             fixtures.Phenalene,
	"citalopram":            fixtures.Citalopram,
}

func fixtureNames() []string {
	names := make([]string, 0, len(fixtureRegistry))
	for name := range fixtureRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
