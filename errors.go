/*
 * errors.go, part of gocryst.
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

// Error is the interface for errors that all packages in this library
// implement. The Decorate method adds and retrieves info from the error
// without changing its type or wrapping it around something else. The
// decoration slice contains the functions in the calling stack plus, for
// each, any relevant extra information in the format "FunctionName: info".
// Decorate called with an empty string only returns the current slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete error type of the cryst package.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

// Decorate adds new information to the error.
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// errDecorate asserts that err implements Error and decorates it with the
// caller's name before passing it up. Errors of other types are returned
// unchanged.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
