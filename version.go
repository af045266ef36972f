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

import "fmt"

// Version identifies a PDF file format version, as found in the file header
// "%PDF-x.y" or, for PDF 2.0, optionally overridden by the catalog's
// /Version entry.
type Version int

const (
	V1_0 Version = iota
	V1_1
	V1_2
	V1_3
	V1_4
	V1_5
	V1_6
	V1_7
	V2_0
)

var versionStrings = [...]string{
	V1_0: "1.0", V1_1: "1.1", V1_2: "1.2", V1_3: "1.3", V1_4: "1.4",
	V1_5: "1.5", V1_6: "1.6", V1_7: "1.7", V2_0: "2.0",
}

// ParseVersion parses a version string of the form "x.y" as it appears
// after "%PDF-" in a file header.
func ParseVersion(s string) (Version, error) {
	for v, str := range versionStrings {
		if str == s {
			return Version(v), nil
		}
	}
	return 0, fmt.Errorf("unsupported PDF version %q", s)
}

// ToString formats the version the way it appears in a file header.
func (v Version) ToString() (string, error) {
	if v < V1_0 || v > V2_0 {
		return "", fmt.Errorf("invalid PDF version %d", int(v))
	}
	return versionStrings[v], nil
}

func (v Version) String() string {
	s, err := v.ToString()
	if err != nil {
		return fmt.Sprintf("invalid-version(%d)", int(v))
	}
	return s
}
