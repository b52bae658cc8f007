/*
 * files.go, part of gocryst.
 *
 * Copyright 2024 The gocryst developers
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

package cryst

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Both the xyz and the qc readers/writers look at the file extension to
//decide on compression: ".gz" means gzip, ".zst" means zstd, anything
//else is taken as plain text. The format extension comes before the
//compression one, as in "cell.qc.zst".

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func createAny(name string) (*os.File, io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		return f, gzip.NewWriter(f), nil
	case strings.HasSuffix(name, ".zst"):
		w, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return f, w, nil
	}
	return f, nopWriteCloser{f}, nil
}

func openAny(name string) (*os.File, io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		r, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return f, r, nil
	case strings.HasSuffix(name, ".zst"):
		r, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return f, r.IOReadCloser(), nil
	}
	return f, io.NopCloser(f), nil
}

//XYZRead reads an xyz file: an atom-count line, a comment line, then one
//"symbol x y z" line per atom. Charges are left at zero.
func XYZRead(name string) ([]*Atom, error) {
	f, r, err := openAny(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	defer r.Close()
	buf := bufio.NewReader(r)
	line, err := buf.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("Ill formatted XYZ file %s", name)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, fmt.Errorf("Ill formatted XYZ file %s", name)
	}
	if _, err := buf.ReadString('\n'); err != nil { //the comment line
		return nil, fmt.Errorf("Ill formatted XYZ file %s", name)
	}
	atoms := make([]*Atom, 0, natoms)
	for i := 0; i < natoms; i++ {
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("Line number %d in file %s ill formed", i, name)
		}
		atoms = append(atoms, AtomFromStrings(fields[0], fields[1], fields[2], fields[3], "0"))
	}
	return atoms, nil
}

//XYZWrite writes atoms to an xyz file with the given name, overwriting
//any previous file.
func XYZWrite(name string, atoms []*Atom) error {
	f, w, err := createAny(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := fmt.Fprintf(w, "%-4d\n\n", len(atoms)); err != nil {
		w.Close()
		return err
	}
	for _, at := range atoms {
		if _, err := fmt.Fprintln(w, at.XYZString()); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}

//QCRead reads a qc atom-list file: one "symbol x y z charge" line per
//atom, no header. Blank lines are skipped. Unparseable numeric fields
//are reported and left at zero, as in AtomFromStrings.
func QCRead(name string) ([]*Atom, error) {
	f, r, err := openAny(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	defer r.Close()
	buf := bufio.NewReader(r)
	var atoms []*Atom
	for lineno := 0; ; lineno++ {
		line, err := buf.ReadString('\n')
		if line == "" && err != nil {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			if err != nil {
				break
			}
			continue
		}
		if len(fields) < 5 {
			return nil, fmt.Errorf("Line number %d in file %s ill formed", lineno, name)
		}
		atoms = append(atoms, AtomFromStrings(fields[0], fields[1], fields[2], fields[3], fields[4]))
		if err != nil {
			break
		}
	}
	return atoms, nil
}

//QCWrite writes atoms to a qc file with the given name, one fixed-width
//charge-inclusive line per atom, overwriting any previous file.
func QCWrite(name string, atoms []*Atom) error {
	f, w, err := createAny(name)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, at := range atoms {
		if _, err := fmt.Fprintln(w, at.String()); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}
