/*
 * errors.go, part of gomol.
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
	"strings"
)

// Error is the interface implemented by all errors produced in this library.
// The Decorate method allows adding information to an error as it is passed
// up the calling stack, without changing its type or wrapping it around
// something else. Each element of the decoration slice should be a function
// name, optionally followed by extra information ("FunctionName: extra").
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError (Concrete Error) is the Error implementation used by the mol
// package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds the given string to the decoration slice, unless it is
// empty, and returns the resulting slice.
func (err CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// errDecorate asserts that err implements Error and decorates it with the
// caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

// Messages for the error conditions defined in this library. Every CError
// message starts with one of these, so callers can identify the failure
// kind with IsErrorKind.
const (
	UnknownElement     = "gomol: unknown chemical element"
	EmptyMolecule      = "gomol: operation requires a non-empty molecule"
	InsufficientAtoms  = "gomol: operation requires at least two atoms"
	DegenerateGeometry = "gomol: two atoms occupy the same position"
	DegenerateAxis     = "gomol: rotation axis has zero length"
	UnableToOpen       = "gomol: unable to open file"
	WrongFormat        = "gomol: ill-formatted coordinate file"
)

// IsErrorKind reports whether err was produced by this library with the
// given message constant as its failure kind.
func IsErrorKind(err error, kind string) bool {
	if err == nil {
		return false
	}
	return strings.HasPrefix(err.Error(), kind)
}

// makeError builds a CError for the given kind, an optional detail formatted
// after it, and the name of the failing function.
func makeError(kind, detail, caller string) CError {
	msg := kind
	if detail != "" {
		msg = fmt.Sprintf("%s: %s", kind, detail)
	}
	return CError{msg, []string{caller}}
}
