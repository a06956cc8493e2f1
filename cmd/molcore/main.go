// Command molcore is a small inspection tool over the core package's
// molecule model: it builds a named fixture molecule, normalises it,
// and prints the rings, ring systems and aromaticity flags found.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
