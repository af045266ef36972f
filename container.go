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
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// Getter is anything that can resolve an indirect reference to its object,
// and report the document's metadata. *Document implements Getter; C7/C9/C6
// all take a Getter rather than a concrete *Document so they can be tested
// against an in-memory fixture.
type Getter interface {
	GetMeta() *MetaInfo

	// Get reads an object from the file. canObjStm specifies whether the
	// object may legally live inside an object stream; the Encrypt
	// dictionary and xref streams set this to false (§4.3).
	Get(ref Reference, canObjStm bool) (Object, error)
}

const maxRefDepth = 32

// Resolve follows a chain of indirect references until it reaches a direct
// object. If obj is not a Reference, it is returned unchanged. A reference
// cycle or excessively long chain is reported as MalformedFileError.
func Resolve(r Getter, obj Object) (Object, error) {
	return resolve(r, obj, true)
}

func resolve(r Getter, obj Object, canObjStm bool) (Object, error) {
	if obj == nil {
		return nil, nil
	}
	ref, isReference := obj.(Reference)
	if !isReference {
		return obj, nil
	}

	origRef := ref
	for count := 0; ; count++ {
		if count > maxRefDepth {
			return nil, &MalformedFileError{
				Err: errors.New("too many levels of indirection"),
				Loc: []string{"object " + origRef.String()},
			}
		}
		next, err := r.Get(ref, canObjStm)
		if err != nil {
			return nil, err
		}
		ref, isReference = next.(Reference)
		if !isReference {
			return next, nil
		}
	}
}

func resolveAndCast[T Object](r Getter, obj Object) (x T, err error) {
	resolved, err := Resolve(r, obj)
	if err != nil {
		return x, err
	}
	if resolved == nil {
		return x, nil
	}
	x, ok := resolved.(T)
	if ok {
		return x, nil
	}
	return x, &MalformedFileError{Err: fmt.Errorf("expected %T but got %T", x, resolved)}
}

// Helper functions for fetching an object of a specific type, resolving
// indirect references first. A `null` object yields the type's zero value
// and no error; any other mismatched type is reported as
// MalformedFileError.
var (
	GetArray   = resolveAndCast[Array]
	GetBoolean = resolveAndCast[Boolean]
	GetDict    = resolveAndCast[Dict]
	GetName    = resolveAndCast[Name]
	GetReal    = resolveAndCast[Real]
	GetStream  = resolveAndCast[*Stream]
)

// GetString resolves obj and returns its byte content, accepting both
// literal and hex string forms (§3: "a hex-vs-literal flag for faithful
// re-emission" only matters to the writer, not to readers).
func GetString(r Getter, obj Object) (String, error) {
	resolved, err := Resolve(r, obj)
	if resolved == nil {
		return nil, err
	}
	if b, ok := StringBytes(resolved); ok {
		return String(b), nil
	}
	return nil, &MalformedFileError{Err: fmt.Errorf("expected String but got %T", resolved)}
}

// GetInteger resolves obj and returns it as an Integer, rounding Real
// values to the nearest integer.
func GetInteger(r Getter, obj Object) (Integer, error) {
	resolved, err := Resolve(r, obj)
	if resolved == nil {
		return 0, err
	}
	switch x := resolved.(type) {
	case Integer:
		return x, nil
	case Real:
		return Integer(math.Round(float64(x))), nil
	default:
		return 0, &MalformedFileError{Err: fmt.Errorf("expected Integer but got %T", resolved)}
	}
}

func getIntegerNoObjStm(r Getter, obj Object) (Integer, error) {
	resolved, err := resolve(r, obj, false)
	if err != nil {
		return 0, err
	}
	if x, ok := resolved.(Integer); ok {
		return x, nil
	}
	return 0, &MalformedFileError{Err: fmt.Errorf("expected Integer but got %T", resolved)}
}

// GetFloatArray resolves obj as an Array of numbers (Integer or Real).
func GetFloatArray(r Getter, obj Object) ([]float64, error) {
	array, err := GetArray(r, obj)
	if err != nil || array == nil {
		return nil, err
	}
	result := make([]float64, len(array))
	for i, item := range array {
		num, err := GetNumber(r, item)
		if err != nil {
			return nil, fmt.Errorf("array element %d: %w", i, err)
		}
		result[i] = float64(num)
	}
	return result, nil
}

// GetDictTyped resolves obj as a Dict and checks its /Type entry, if
// present, equals wantType.
func GetDictTyped(r Getter, obj Object, wantType Name) (Dict, error) {
	dict, err := GetDict(r, obj)
	if dict.vals == nil || err != nil {
		return dict, err
	}
	if err := CheckDictType(r, dict, wantType); err != nil {
		return Dict{}, err
	}
	return dict, nil
}

// CheckDictType checks that dict's /Type entry, if present, equals
// wantType.
func CheckDictType(r Getter, dict Dict, wantType Name) error {
	haveType, err := GetName(r, dict.Get("Type"))
	if err != nil {
		return err
	}
	if haveType != wantType && haveType != "" {
		return &MalformedFileError{Err: fmt.Errorf("expected dict type %q, got %q", wantType, haveType)}
	}
	return nil
}

// GetStreamReader resolves ref to a Stream and returns its fully decoded
// contents.
func GetStreamReader(r Getter, ref Object) (io.ReadCloser, error) {
	stm, err := GetStream(r, ref)
	if err != nil {
		return nil, err
	} else if stm == nil {
		return nil, fmt.Errorf("no stream found: %w", os.ErrNotExist)
	}
	data, err := stm.Decode()
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// DecodeStream returns a reader for x's decoded contents: decryption (C4,
// if the document is encrypted) is applied first, then each filter in
// /Filter order (C2). If numFilters is non-zero, only the first
// numFilters filters run, leaving the rest (e.g. a final DCTDecode) for
// the caller to handle directly.
func DecodeStream(r Getter, x *Stream, numFilters int) (io.ReadCloser, error) {
	filters, err := GetFilters(r, x.Dict)
	if err != nil {
		return nil, err
	}

	var out io.Reader = bytes.NewReader(x.raw)
	if x.crypt != nil {
		out, err = x.crypt.DecryptStream(x.ref, out)
		if err != nil {
			return nil, err
		}
	}

	for i, fi := range filters {
		if numFilters > 0 && i >= numFilters {
			break
		}
		out, err = fi.Decode(out)
		if err != nil {
			return nil, &CorruptStreamError{Err: err}
		}
	}
	return io.NopCloser(out), nil
}

// GetFilters reads the /Filter and /DecodeParms entries of a stream
// dictionary and returns the corresponding pipeline of [Filter] values, in
// declaration order (§4.2).
func GetFilters(r Getter, dict Dict) ([]Filter, error) {
	decodeParams, err := resolve(r, dict.Get("DecodeParms"), false)
	if err != nil {
		return nil, err
	}
	filter, err := resolve(r, dict.Get("Filter"), false)
	if err != nil {
		return nil, err
	}

	var res []Filter
	switch f := filter.(type) {
	case nil:
	case Name:
		var pDict Dict
		if decodeParams != nil {
			pDict, _ = decodeParams.(Dict)
		}
		ft, err := MakeFilter(f, pDict)
		if err != nil {
			return nil, err
		}
		res = append(res, ft)
	case Array:
		pa, ok := decodeParams.(Array)
		if !ok && decodeParams != nil {
			return nil, errors.New("invalid /DecodeParms field")
		}
		for i, fi := range f {
			fi, err := resolve(r, fi, false)
			if err != nil {
				return nil, err
			}
			name, ok := fi.(Name)
			if !ok {
				return nil, fmt.Errorf("wrong type, expected Name but got %T", fi)
			}
			var pDict Dict
			if len(pa) > i {
				pai, err := resolve(r, pa[i], false)
				if err != nil {
					return nil, err
				}
				if pai != nil {
					pDict, _ = pai.(Dict)
				}
			}
			ft, err := MakeFilter(name, pDict)
			if err != nil {
				return nil, err
			}
			res = append(res, ft)
		}
	default:
		return nil, errors.New("invalid /Filter field")
	}
	return res, nil
}

// GetVersion returns the PDF version in effect for pdf.
func GetVersion(pdf interface{ GetMeta() *MetaInfo }) Version {
	return pdf.GetMeta().Version
}
