//gomol is a small walkthrough of the mol library. Without arguments it
//builds a water and a methane molecule and prints their derived
//quantities; given the path of an XYZ file (optionally gzip- or
//zstd-compressed) it loads and summarizes that molecule instead.
package main

import (
	"fmt"
	"log"
	"math"
	"os"

	mol "github.com/gomol-dev/gomol"
	"gonum.org/v1/gonum/mat"
)

func main() {
	if len(os.Args) > 2 {
		log.Fatal("Usage: gomol [coordinates.xyz]")
	}
	if len(os.Args) == 2 {
		summarize(os.Args[1])
		return
	}
	walkthrough()
}

func summarize(path string) {
	log.Printf("Reading coordinate file `%s`\n", path)
	res := mol.ReadXYZ(path)
	if !res.OK() {
		log.Fatal(res.Err())
	}
	m := res.Value()
	fmt.Printf("%d atoms, %v units\n", m.Len(), m.Unit())
	printMolecule(m)
}

func walkthrough() {
	water := mustMolecule([]string{"O", "H", "H"}, []mol.Vec{
		{0.0, 0.0, 0.0},
		{0.0, 0.757, 0.587},
		{0.0, -0.757, 0.587},
	})
	fmt.Println("Initial water molecule coordinates:")
	fmt.Printf("%v\n", mat.Formatted(water.Coordinates()))
	printMolecule(water)

	translated := mol.Translate(water, mol.Vec{1, 1, 1})
	fmt.Println("\nTranslated coordinates:")
	fmt.Printf("%v\n", mat.Formatted(translated.Coordinates()))

	rot := mol.DefaultRotation()
	rot.Angle(math.Pi / 2)
	rot.Axis(mol.Vec{0, 1, 0})
	rotated, err := mol.Rotate(water, rot)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("\nRotated coordinates (90 degrees around the y axis):")
	fmt.Printf("%v\n", mat.Formatted(rotated.Coordinates()))

	//a methane molecule in tetrahedral geometry
	a := 1.0 / math.Sqrt(3)
	methane := mustMolecule([]string{"C", "H", "H", "H", "H"}, []mol.Vec{
		{0, 0, 0},
		{a, a, a},
		{-a, -a, a},
		{-a, a, -a},
		{a, -a, -a},
	})
	fmt.Println("\nMethane molecule interatomic distances:")
	fmt.Printf("%v\n", mat.Formatted(methane.DistanceMatrix()))
}

func printMolecule(m *mol.Molecule) {
	com, err := m.CenterOfMass()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nCenter of mass: %v\n", com)
	fmt.Println("\nInteratomic distances:")
	fmt.Printf("%v\n", mat.Formatted(m.DistanceMatrix()))
	rep, err := m.NuclearRepulsion()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nNuclear repulsion energy: %.6f (%v units)\n", rep, m.Unit())
}

func mustMolecule(symbols []string, positions []mol.Vec) *mol.Molecule {
	atoms := make([]mol.Atom, len(symbols))
	for i, s := range symbols {
		at, err := mol.FromSymbol(s, positions[i])
		if err != nil {
			log.Fatal(err)
		}
		atoms[i] = at
	}
	return mol.NewMolecule(atoms, mol.Atomic)
}
