package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arborchem/molcore/core"
)

func newNormaliseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalise <molecule>",
		Short: "normalise a built-in fixture molecule and report its rings and aromaticity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			build, ok := fixtureRegistry[name]
			if !ok {
				return fmt.Errorf("unknown molecule %q; run %q to see the available fixtures", name, "molcore list")
			}

			log := loggerFromContext(cmd.Context())
			mol := build()
			vendorID := mol.GenerateVendorMoleculeID()

			if err := mol.Normalise(); err != nil {
				return fmt.Errorf("normalising %q: %w", name, err)
			}
			log.Debug("normalised fixture",
				zap.String("molecule", name),
				zap.String("vendor_id", vendorID),
			)

			printReport(cmd, name, mol, vendorID)
			return nil
		},
	}
	return cmd
}

func printReport(cmd *cobra.Command, name string, mol *core.Molecule, vendorID string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d atoms, %d bonds, %d rings, %d ring systems, vendor id %s\n",
		name, mol.NumberOfAtoms(), mol.NumberOfBonds(), mol.NumberOfRings(), mol.NumberOfRingSystems(), vendorID)

	for _, r := range mol.Rings() {
		kind := "non-aromatic"
		switch {
		case r.IsHeteroAromatic():
			kind = "hetero-aromatic"
		case r.IsAromatic():
			kind = "aromatic"
		}
		fmt.Fprintf(out, "  ring %d: size %d, %s, ring-system %d\n", r.ID(), r.Size(), kind, r.RingSystemID())
	}

	for _, a := range mol.Atoms() {
		if !a.IsBridgehead() && !a.IsSpiro() && !a.IsBenzylic() {
			continue
		}
		var tags []string
		if a.IsBridgehead() {
			tags = append(tags, "bridgehead")
		}
		if a.IsSpiro() {
			tags = append(tags, "spiro")
		}
		if a.IsBenzylic() {
			tags = append(tags, "benzylic")
		}
		fmt.Fprintf(out, "  atom %d (%s): %v\n", a.InputID(), a.Element().Symbol, tags)
	}
}
