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

// MetaInfo collects the facts about a document that do not belong to any
// single indirect object: the declared version, the merged trailer
// dictionary and the file ID. GetVersion reads Version from here.
type MetaInfo struct {
	// Version is the version from the %PDF-n.m header, promoted by any
	// /Version entry in the document catalog (§4.4, PDF 32000-1:2008
	// 7.2.2).
	Version Version

	// Trailer is the merged trailer dictionary: for files with more than
	// one cross-reference section, entries from the most recent section
	// take precedence, except /Prev which is not copied forward.
	Trailer Dict

	// ID is the file identifier array, as the two raw (already
	// hex-decoded) byte strings from the trailer's /ID entry. It is nil
	// for documents that do not have one.
	ID [][]byte
}
