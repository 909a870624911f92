/*
 * conversion.go, part of gomol.
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

//This provides useful conversion factors and other constants

//Conversions
const (
	Deg2Rad = 0.0174533
	Rad2Deg = 1 / 0.0174533
	A2Bohr  = 1.889725989
	Bohr2A  = 1 / 1.889725989
	Bohr2M  = 5.29177210903e-11
	M2Bohr  = 1 / 5.29177210903e-11
	H2eV    = 27.211386245988 //Hartree 2 electronvolt
	EV2H    = 1 / 27.211386245988
	H2J     = 4.3597447222071e-18 //Hartree 2 Joule
	J2H     = 1 / 4.3597447222071e-18
)
