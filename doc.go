/*
 * doc.go, part of gomol.
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

/*Package mol provides immutable atom and molecule values, derived geometric
and physical quantities, and pure coordinate transformations.


	**gomol capabilities**

    Builds atoms from element symbols, with atomic number and mass taken
	from a built-in element table.

    Computes per-molecule derived quantities: the N×3 coordinate matrix,
	the center of mass, the full interatomic distance matrix and the
	nuclear repulsion energy.

    Translates and rotates molecules. Both operations return a brand-new
	molecule; the original is never modified, so the same molecule can be
	shared freely between goroutines.

    Reads and writes XYZ coordinate files, transparently decompressing
	gzip (.gz) and zstd (.zst) input.

    Plots distance matrices and coordinate projections (package molplot).

Coordinate matrices are handled through the v3 subpackage, which wraps
gonum's mat.Dense. Each row of a v3.Matrix is one point in 3D space.

Conventions used throughout the library:

Units. Every Molecule carries a UnitSystem that declares the length unit
of its coordinates (Bohr for Atomic, Angstrom for Standard, meter for SI).
Derived energies are reported in the matching energy unit (Hartree, eV,
Joule).

Rotations. Rotate applies a standard axis-angle (Rodrigues) rotation about
the coordinate origin. Positive angles follow the right-hand rule about the
rotation axis. Callers wanting a rotation about the center of mass translate
to the origin, rotate, and translate back.

XYZ files. One atom per non-blank line, whitespace-separated
"symbol x y z" fields. The common XYZ header (an atom-count line followed by
a comment line) is accepted too: when the first non-blank line is a lone
integer it is taken as the count and the following line is skipped.*/
package mol
