// pdfcore - a PDF 1.x/2.0 document engine
// Copyright (C) 2024 The pdfcore Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdf

import (
	"errors"
	"fmt"
)

var (
	errCorrupted    = errors.New("corrupted ciphertext")
	errNoDate       = errors.New("not a valid date string")
	errNoRectangle  = errors.New("not a valid PDF rectangle")
	errDuplicateRef = errors.New("object already written")
	errShortID      = errors.New("PDF file identifier too short")
)

// MalformedFileError indicates that the lexer or object reader (C1) could
// not parse a required construct. Loc records a breadcrumb trail ("object
// 12 0", "xref subsection") for diagnostics.
type MalformedFileError struct {
	Err error
	Loc []string
}

func (err *MalformedFileError) Error() string {
	msg := "malformed PDF file"
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	for _, l := range err.Loc {
		msg += " (in " + l + ")"
	}
	return msg
}

func (err *MalformedFileError) Unwrap() error { return err.Err }

// InvalidHeaderError is returned when no "%PDF-x.y" header is found within
// the first 1 KiB of the file.
type InvalidHeaderError struct {
	Err error
}

func (err *InvalidHeaderError) Error() string {
	if err.Err != nil {
		return "invalid PDF header: " + err.Err.Error()
	}
	return "invalid PDF header"
}
func (err *InvalidHeaderError) Unwrap() error { return err.Err }

// InvalidTrailerError is returned when no "startxref"/"%%EOF" pair can be
// found within the last 1 KiB of the file.
type InvalidTrailerError struct {
	Err error
}

func (err *InvalidTrailerError) Error() string {
	if err.Err != nil {
		return "invalid PDF trailer: " + err.Err.Error()
	}
	return "invalid PDF trailer"
}
func (err *InvalidTrailerError) Unwrap() error { return err.Err }

// InvalidXrefError is returned when a classic xref table or an xref stream
// cannot be decoded.
type InvalidXrefError struct {
	Err    error
	Offset int64
}

func (err *InvalidXrefError) Error() string {
	msg := "invalid cross-reference table"
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return fmt.Sprintf("%s (at offset %d)", msg, err.Offset)
}
func (err *InvalidXrefError) Unwrap() error { return err.Err }

// AuthenticationError (BadPassword) indicates that the security handler
// could not authenticate the supplied password against the Encrypt
// dictionary.
type AuthenticationError struct {
	ID []byte
}

func (err *AuthenticationError) Error() string {
	if err.ID == nil {
		return "authentication failed: wrong password"
	}
	return fmt.Sprintf("authentication failed for document ID %x", err.ID)
}

// UnsupportedFilterError is returned when a stream names a filter this
// implementation does not recognise.
type UnsupportedFilterError struct {
	Name Name
}

func (err *UnsupportedFilterError) Error() string {
	return fmt.Sprintf("unsupported stream filter %q", string(err.Name))
}

// CorruptStreamError is returned when a filter produces an error, or
// decoded output of the wrong size (e.g. a predictor mismatch).
type CorruptStreamError struct {
	Err error
}

func (err *CorruptStreamError) Error() string {
	if err.Err != nil {
		return "corrupt stream: " + err.Err.Error()
	}
	return "corrupt stream"
}
func (err *CorruptStreamError) Unwrap() error { return err.Err }

// MissingObjectError is returned when an indirect reference resolves to a
// free xref slot, or to an object number outside the table.
type MissingObjectError struct {
	Ref Reference
}

func (err *MissingObjectError) Error() string {
	return fmt.Sprintf("object %s not found", err.Ref)
}

// ErrCancelled is returned by long-running operations (rendering,
// traversal) when the caller's cancellation predicate fired.
var ErrCancelled = errors.New("operation cancelled")

// VersionError is returned when trying to use a feature in a PDF file which is
// not supported by the PDF version used.
type VersionError struct {
	Operation string
	Earliest  Version
}

func (err *VersionError) Error() string {
	s, _ := err.Earliest.ToString()
	return err.Operation + " requires PDF version " + s + " or later"
}
