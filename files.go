/*
 * files.go, part of gomol.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//ReadXYZ reads an XYZ coordinate file and returns the Molecule in a
//Result. The file may carry the usual atom-count/comment header or be a
//bare list of "symbol x y z" lines (see the package documentation), and
//may be gzip- or zstd-compressed, decided by the .gz or .zst extension.
//The coordinates are taken to be in the given unit system, or Atomic if
//none is given. Every failure (missing file, malformed line, unknown
//element) ends up as a failed Result; nothing escapes as a panic.
func ReadXYZ(path string, units ...UnitSystem) Result[*Molecule] {
	un := Atomic
	if len(units) > 0 {
		un = units[0]
	}
	f, err := os.Open(path)
	if err != nil {
		return Fail[*Molecule](makeError(UnableToOpen, err.Error(), "ReadXYZ").Error())
	}
	defer f.Close()
	r, closer, err := decompress(f, path)
	if err != nil {
		return Fail[*Molecule](makeError(WrongFormat, err.Error(), "ReadXYZ").Error())
	}
	defer closer()
	m, err := DecodeXYZ(r, un)
	if err != nil {
		return Fail[*Molecule](errDecorate(err, "ReadXYZ").Error())
	}
	return Ok(m)
}

//decompress wraps f in a decompressing reader according to the file
//extension: .gz and .zst are supported, anything else is read as is. The
//returned function releases the decompressor, not the file itself.
func decompress(f *os.File, path string) (io.Reader, func() error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, nil, err
		}
		return gz, gz.Close, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() error { zr.Close(); return nil }, nil
	}
	return f, func() error { return nil }, nil
}

//DecodeXYZ parses XYZ-format data from r into a Molecule with the given
//unit system. If the first non-blank line is a lone integer it is taken
//as the atom count and the following line as a comment; otherwise every
//non-blank line must be an atom line.
func DecodeXYZ(r io.Reader, units UnitSystem) (*Molecule, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, makeError(WrongFormat, err.Error(), "DecodeXYZ")
	}
	first := 0
	for first < len(lines) && strings.TrimSpace(lines[first]) == "" {
		first++
	}
	if first == len(lines) {
		return nil, makeError(WrongFormat, "no atom lines found", "DecodeXYZ")
	}
	expected := -1
	if fields := strings.Fields(lines[first]); len(fields) == 1 {
		if n, err := strconv.Atoi(fields[0]); err == nil {
			expected = n
			first += 2 //count line plus comment line
		}
	}
	var atoms []Atom
	for i := first; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		at, err := decodeXYZLine(lines[i], i+1)
		if err != nil {
			return nil, errDecorate(err, "DecodeXYZ")
		}
		atoms = append(atoms, at)
	}
	if expected >= 0 && len(atoms) != expected {
		return nil, makeError(WrongFormat, fmt.Sprintf("header declares %d atoms but %d found", expected, len(atoms)), "DecodeXYZ")
	}
	return NewMolecule(atoms, units), nil
}

//decodeXYZLine parses one "symbol x y z" line. lineno is 1-based, for
//error messages.
func decodeXYZLine(line string, lineno int) (Atom, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Atom{}, makeError(WrongFormat, fmt.Sprintf("line %d: %d field(s), want 4", lineno, len(fields)), "decodeXYZLine")
	}
	var pos Vec
	for i := 0; i < 3; i++ {
		c, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return Atom{}, makeError(WrongFormat, fmt.Sprintf("line %d: bad coordinate %q", lineno, fields[i+1]), "decodeXYZLine")
		}
		pos[i] = c
	}
	at, err := FromSymbol(fields[0], pos)
	if err != nil {
		return Atom{}, errDecorate(err, fmt.Sprintf("decodeXYZLine: line %d", lineno))
	}
	return at, nil
}

//WriteXYZ writes M to an XYZ file with the given name, with the usual
//atom-count/comment header, creating or overwriting it. Newlines in the
//comment are replaced by spaces, as the comment must fit one line.
func WriteXYZ(path string, M *Molecule, comment string) error {
	out, err := os.Create(path)
	if err != nil {
		return makeError(UnableToOpen, err.Error(), "WriteXYZ")
	}
	defer out.Close()
	comment = strings.ReplaceAll(comment, "\n", " ")
	fmt.Fprintf(out, "%-4d\n", M.Len())
	fmt.Fprintf(out, "%s\n", comment)
	for i := 0; i < M.Len(); i++ {
		at := M.Atom(i)
		_, err = fmt.Fprintf(out, "%-2s  %8.3f%8.3f%8.3f \n", at.Symbol, at.Position[0], at.Position[1], at.Position[2])
		if err != nil {
			return err
		}
	}
	return nil
}
