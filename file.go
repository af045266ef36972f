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

import "os"

func createFile(path string) (*os.File, error) {
	return os.Create(path)
}

// Open opens the PDF file at path for reading (C3/C4/C5).
func Open(path string, opt *ReaderOptions) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	r, err := NewReader(&fileReaderAt{f}, opt)
	if err != nil {
		f.Close()
		return nil, err
	}
	_ = fi
	r.closer = f
	return r, nil
}

type fileReaderAt struct{ f *os.File }

func (fr *fileReaderAt) ReadAt(p []byte, off int64) (int, error) { return fr.f.ReadAt(p, off) }

func (fr *fileReaderAt) Size() int64 {
	fi, err := fr.f.Stat()
	if err != nil {
		return 0
	}
	return fi.Size()
}
