/*
 * result.go, part of gomol.
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

//Result is a two-state container for the outcome of a fallible boundary
//operation, such as reading a molecule from a file: either a value, or a
//failure message, never both. Callers must branch on OK before using the
//value. Within the library proper, plain (value, error) returns are used
//instead; Result exists so that program-boundary code can handle missing
//or malformed input without interrupting its control flow.
type Result[T any] struct {
	value  T
	errmsg string
	ok     bool
}

//Ok returns a successful Result holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

//Fail returns a failed Result with the given message.
func Fail[T any](message string) Result[T] {
	return Result[T]{errmsg: message}
}

//OK reports whether the Result is a success.
func (r Result[T]) OK() bool {
	return r.ok
}

//Value returns the contained value. It panics on a failed Result: check
//OK, or use Unwrap, first.
func (r Result[T]) Value() T {
	if !r.ok {
		panic("Result: Value called on a failed Result: " + r.errmsg)
	}
	return r.value
}

//Err returns the failure message, or the empty string on success.
func (r Result[T]) Err() string {
	return r.errmsg
}

//Unwrap converts the Result to Go's usual (value, error) form.
func (r Result[T]) Unwrap() (T, error) {
	if !r.ok {
		var zero T
		return zero, CError{r.errmsg, []string{"Result.Unwrap"}}
	}
	return r.value, nil
}
