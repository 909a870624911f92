/*
 * geometric.go, part of gomol.
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
	"math"

	"github.com/gomol-dev/gomol/v3"
)

//ApplyToCoordinates returns a new Molecule whose coordinates are the
//result of applying f to the coordinate matrix of M. The atoms keep their
//symbol, atomic number and mass; M itself is not modified. f must return
//a matrix with the same number of vectors it was given, or the function
//panics.
func ApplyToCoordinates(M *Molecule, f func(*v3.Matrix) *v3.Matrix) *Molecule {
	atoms := M.Atoms()
	if len(atoms) == 0 {
		return &Molecule{atoms: atoms, units: M.units}
	}
	coords := f(M.Coordinates())
	if coords.NVecs() != len(atoms) {
		panic("ApplyToCoordinates: transformed matrix has the wrong number of vectors")
	}
	for i := range atoms {
		atoms[i].Position = Vec{coords.At(i, 0), coords.At(i, 1), coords.At(i, 2)}
	}
	return &Molecule{atoms: atoms, units: M.units}
}

//Translate returns a new Molecule with v added to every atom position.
//M is not modified. Non-finite components of v propagate into the result.
func Translate(M *Molecule, v Vec) *Molecule {
	return ApplyToCoordinates(M, func(coords *v3.Matrix) *v3.Matrix {
		vec, _ := v3.NewMatrix([]float64{v[0], v[1], v[2]})
		out := v3.Zeros(coords.NVecs())
		out.AddVec(coords, vec)
		return out
	})
}

//Rotation holds the parameters of a Rotate call: the angle, in radians,
//and the rotation axis. Parameters are set through the accessor methods,
//so an angle can never be mistaken for an axis component.
type Rotation struct {
	angle float64
	axis  Vec
}

//DefaultRotation returns a Rotation with angle 0 around the z axis.
func DefaultRotation() *Rotation {
	return &Rotation{angle: 0, axis: Vec{0, 0, 1}}
}

//Angle returns the rotation angle in radians, and sets it first if a
//value is given.
func (r *Rotation) Angle(angle ...float64) float64 {
	if len(angle) > 0 {
		r.angle = angle[0]
	}
	return r.angle
}

//Axis returns the rotation axis, and sets it first if a value is given.
//The axis needs not be normalized.
func (r *Rotation) Axis(axis ...Vec) Vec {
	if len(axis) > 0 {
		r.axis = axis[0]
	}
	return r.axis
}

//Rotate returns a new Molecule with every atom position rotated about the
//coordinate origin by the angle and axis in o, or the default z-axis
//rotation if o is nil. M is not modified. It fails if the axis has zero
//length. The rotation follows the right-hand rule; rotating about the
//center of mass is the composition Translate(-com), Rotate, Translate(com).
func Rotate(M *Molecule, o *Rotation) (*Molecule, error) {
	if o == nil {
		o = DefaultRotation()
	}
	rotator, err := Rotator(o.Angle(), o.Axis())
	if err != nil {
		return nil, errDecorate(err, "Rotate")
	}
	return ApplyToCoordinates(M, func(coords *v3.Matrix) *v3.Matrix {
		out := v3.Zeros(coords.NVecs())
		//row vectors, so the transpose of the operator goes on the right
		out.Mul(coords, rotator.T())
		return out
	}), nil
}

//Rotator returns the 3x3 operator for a rotation of angle radians about
//axis, built with Rodrigues' rotation formula. The axis is normalized
//first; a zero-length axis is an error. The operator acts on column
//vectors; to transform an Nx3 coordinate matrix, multiply by its
//transpose from the right.
func Rotator(angle float64, axis Vec) (*v3.Matrix, error) {
	axmat, _ := v3.NewMatrix([]float64{axis[0], axis[1], axis[2]})
	unit := v3.Zeros(1)
	if err := unit.Unit(axmat); err != nil {
		return nil, makeError(DegenerateAxis, "", "Rotator")
	}
	ux, uy, uz := unit.At(0, 0), unit.At(0, 1), unit.At(0, 2)
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c
	rotator, _ := v3.NewMatrix([]float64{
		c + ux*ux*t, ux*uy*t - uz*s, ux*uz*t + uy*s,
		uy*ux*t + uz*s, c + uy*uy*t, uy*uz*t - ux*s,
		uz*ux*t - uy*s, uz*uy*t + ux*s, c + uz*uz*t,
	})
	return rotator, nil
}
