/*
 * mol.go, part of gomol.
 *
 * Copyright 2026 The gomol developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mol

import (
	"fmt"
	"math"

	"github.com/gomol-dev/gomol/v3"
	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//UnitSystem selects the unit convention of a Molecule: the length unit of
//its coordinates and, with it, the energy unit of derived quantities.
type UnitSystem int

const (
	Atomic   UnitSystem = iota //Bohr, Hartree
	Standard                   //Angstrom, eV
	SI                         //meter, Joule
)

func (u UnitSystem) String() string {
	switch u {
	case Atomic:
		return "Atomic"
	case Standard:
		return "Standard"
	case SI:
		return "SI"
	}
	return fmt.Sprintf("UnitSystem(%d)", int(u))
}

//toBohr returns the factor that converts one length unit of u to Bohr.
func (u UnitSystem) toBohr() float64 {
	switch u {
	case Standard:
		return A2Bohr
	case SI:
		return M2Bohr
	}
	return 1
}

//fromHartree returns the factor that converts Hartree to the energy unit
//of u.
func (u UnitSystem) fromHartree() float64 {
	switch u {
	case Standard:
		return H2eV
	case SI:
		return H2J
	}
	return 1
}

//Vec is a point or displacement in 3D space.
type Vec [3]float64

//Add returns the element-wise sum of v and w.
func (v Vec) Add(w Vec) Vec {
	return Vec{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

//Sub returns the element-wise difference of v and w.
func (v Vec) Sub(w Vec) Vec {
	return Vec{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

//Scale returns v multiplied by the scalar f.
func (v Vec) Scale(f float64) Vec {
	return Vec{v[0] * f, v[1] * f, v[2] * f}
}

//Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

//Dist returns the Euclidean distance between the points v and w.
func (v Vec) Dist(w Vec) float64 {
	return v.Sub(w).Norm()
}

//Atom is one element instance at a position in space. Atoms are plain
//comparable values: they are never modified after construction, and two
//atoms are equal (==) when all their fields are.
type Atom struct {
	Symbol   string
	Position Vec
	Z        int //atomic number
	Mass     float64
}

//FromSymbol builds an Atom at the given position, taking the atomic
//number and mass from the built-in element table. The symbol is first
//normalized to its canonical form (first letter upper case, rest lower
//case), so "o", "O" and "cl" all work. It fails if the normalized symbol
//is not in the table.
//
//Atoms can also be built directly with a literal, e.g. for isotopes or
//dummy atoms; no validation against the element table happens in that
//case, so the caller is responsible for consistency.
func FromSymbol(symbol string, position Vec) (Atom, error) {
	s := CanonicalSymbol(symbol)
	z, ok := symbolNumber[s]
	if !ok {
		return Atom{}, makeError(UnknownElement, symbol, "FromSymbol")
	}
	return Atom{Symbol: s, Position: position, Z: z, Mass: symbolMass[s]}, nil
}

//Molecule is an ordered, immutable collection of Atoms plus a UnitSystem.
//The order of the atoms is significant: it identifies each atom's row in
//the derived matrices. A Molecule is never modified after construction;
//all transformations produce a new Molecule, so concurrent use needs no
//synchronization.
type Molecule struct {
	atoms []Atom
	units UnitSystem
}

//NewMolecule returns a Molecule with the given atoms and unit system. The
//atom slice is copied, so later changes to it do not affect the Molecule.
func NewMolecule(atoms []Atom, units UnitSystem) *Molecule {
	ats := make([]Atom, len(atoms))
	copy(ats, atoms)
	return &Molecule{atoms: ats, units: units}
}

//Len returns the number of atoms in the Molecule.
func (M *Molecule) Len() int {
	return len(M.atoms)
}

//Atom returns the atom at index i. Panics if out of range.
func (M *Molecule) Atom(i int) Atom {
	if i < 0 || i >= len(M.atoms) {
		panic("Molecule: requested Atom out of bounds")
	}
	return M.atoms[i]
}

//Atoms returns a copy of the atom sequence.
func (M *Molecule) Atoms() []Atom {
	ats := make([]Atom, len(M.atoms))
	copy(ats, M.atoms)
	return ats
}

//Unit returns the unit system of the Molecule.
func (M *Molecule) Unit() UnitSystem {
	return M.units
}

//Coordinates returns the positions of the atoms as a new Nx3 matrix, row
//i holding the position of atom i. It returns nil for an empty Molecule,
//nil being the trivial 0x3 matrix.
func (M *Molecule) Coordinates() *v3.Matrix {
	n := len(M.atoms)
	if n == 0 {
		return nil
	}
	data := make([]float64, 0, 3*n)
	for _, at := range M.atoms {
		data = append(data, at.Position[0], at.Position[1], at.Position[2])
	}
	coords, _ := v3.NewMatrix(data) //cannot fail, len(data) is 3n with n>0
	return coords
}

//AtomicNumbers returns the atomic numbers of the atoms, in order.
func (M *Molecule) AtomicNumbers() []int {
	zs := make([]int, len(M.atoms))
	for i, at := range M.atoms {
		zs[i] = at.Z
	}
	return zs
}

//Masses returns the masses of the atoms, in order, in atomic mass units.
func (M *Molecule) Masses() []float64 {
	masses := make([]float64, len(M.atoms))
	for i, at := range M.atoms {
		masses[i] = at.Mass
	}
	return masses
}

//CenterOfMass returns the mass-weighted average position of the atoms.
//It fails on an empty Molecule. Non-finite coordinates or masses
//propagate into the result.
func (M *Molecule) CenterOfMass() (Vec, error) {
	if len(M.atoms) == 0 {
		return Vec{}, makeError(EmptyMolecule, "", "CenterOfMass")
	}
	var com Vec
	totmass := 0.0
	for _, at := range M.atoms {
		com = com.Add(at.Position.Scale(at.Mass))
		totmass += at.Mass
	}
	return com.Scale(1 / totmass), nil
}

//DistanceMatrix returns the symmetric matrix of interatomic distances:
//entry (i,j) is the Euclidean distance between atoms i and j, so the
//diagonal is zero. For an empty Molecule it returns nil, the trivial
//matrix; for a single atom, the 1x1 zero matrix.
func (M *Molecule) DistanceMatrix() *mat.SymDense {
	n := len(M.atoms)
	if n == 0 {
		return nil
	}
	dm := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dm.SetSym(i, j, M.atoms[i].Position.Dist(M.atoms[j].Position))
		}
	}
	return dm
}

//NuclearRepulsion returns the Coulomb repulsion energy between all pairs
//of nuclei, sum over i<j of Zi*Zj/dij, in the energy unit of the
//Molecule's unit system. It fails when the Molecule has fewer than two
//atoms, and when two atoms occupy the same position.
func (M *Molecule) NuclearRepulsion() (float64, error) {
	n := len(M.atoms)
	if n < 2 {
		return 0, makeError(InsufficientAtoms, fmt.Sprintf("%d atom(s) given", n), "NuclearRepulsion")
	}
	tobohr := M.units.toBohr()
	energy := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := M.atoms[i].Position.Dist(M.atoms[j].Position)
			if d <= appzero {
				return 0, makeError(DegenerateGeometry, fmt.Sprintf("atoms %d and %d", i, j), "NuclearRepulsion")
			}
			energy += float64(M.atoms[i].Z*M.atoms[j].Z) / (d * tobohr)
		}
	}
	return energy * M.units.fromHartree(), nil
}
