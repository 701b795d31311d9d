/*
   GaxRip - GSF ripper for the GAX sound engine
   Copyright (c) 2023, the GaxRip authors

   This file is part of GaxRip.

   GaxRip is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   GaxRip is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with GaxRip. If not, see <http://www.gnu.org/licenses/>.
*/

package rom

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"

	log "github.com/sirupsen/logrus"
)

/*
	NewReader wraps an image source so that compressed images can be read
	transparently. Supported compressors are gzip, zip, and 7z; zip style
	archives are expected to carry exactly one image, additional entries
	are ignored with a warning.
*/
func NewReader(r io.ReadCloser, compressor string) (*Reader, error) {

	log.WithField("compressor", compressor).Debug("image reader requested")

	var ret *Reader
	var err error

	switch compressor {

	case "gzip":
		fallthrough
	case "gz":
		ret, err = getGZipReader(r)

	case "zip":
		ret, err = getZipReader(r, false)

	case "7z":
		ret, err = getZipReader(r, true)

	case "":
		ret = &Reader{r, "", "", ""}
	}

	if ret == nil && err == nil {
		err = fmt.Errorf("unsupported compressor: %s", compressor)
	}

	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"compressor": ret.compressor,
		"name":       ret.name,
		"type":       ret.typ}).Debug("image reader created")

	return ret, nil
}

//
type Reader struct {
	readCloser io.ReadCloser
	//
	name       string
	typ        string
	compressor string
}

//
func (r *Reader) Read(p []byte) (n int, err error) {
	return r.readCloser.Read(p)
}

//
func (r *Reader) Close() error {
	return r.readCloser.Close()
}

//
func (r *Reader) Name() string {
	return r.name
}

//
func (r *Reader) Type() string {
	return r.typ
}

//
func (r *Reader) Compressor() string {
	return r.compressor
}

//
func getGZipReader(r io.ReadCloser) (*Reader, error) {

	gzr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	ret := &Reader{readCloser: gzr}
	ret.name, ret.typ, _ = SplitNameTypeCompressor(gzr.Name)
	ret.compressor = "gzip"

	return ret, nil
}

//
func getZipReader(r io.ReadCloser, zip7 bool) (*Reader, error) {

	var sponge bytes.Buffer
	size, err := io.Copy(&sponge, r)
	if err != nil {
		return nil, err
	}
	r.Close()

	ret := &Reader{}

	if zip7 {
		zr, err := sevenzip.NewReader(bytes.NewReader(sponge.Bytes()), size)
		if err != nil {
			return nil, err
		}
		if len(zr.File) == 0 {
			return nil, fmt.Errorf("empty 7-zip archive")
		}
		if len(zr.File) > 1 {
			log.Warn("7-zip archive has more than one entry, using first")
		}

		ret.name, ret.typ, _ = SplitNameTypeCompressor(zr.File[0].Name)
		ret.compressor = "7z"
		ret.readCloser, err = zr.File[0].Open()
		if err != nil {
			return nil, err
		}

	} else {
		zr, err := zip.NewReader(bytes.NewReader(sponge.Bytes()), size)
		if err != nil {
			return nil, err
		}
		if len(zr.File) == 0 {
			return nil, fmt.Errorf("empty zip archive")
		}
		if len(zr.File) > 1 {
			log.Warn("zip archive has more than one entry, using first")
		}

		ret.name, ret.typ, _ = SplitNameTypeCompressor(zr.File[0].Name)
		ret.compressor = "zip"
		ret.readCloser, err = zr.File[0].Open()
		if err != nil {
			return nil, err
		}
	}

	return ret, nil
}

/*
	SplitNameTypeCompressor splits an image file name into base name, image
	type, and compressor. "wings.gba.zip" yields ("wings", "gba", "zip").
*/
func SplitNameTypeCompressor(file string) (name, typ, compressor string) {

	_, n := filepath.Split(file)

	for {
		ext := filepath.Ext(n)
		if ext == "" {
			name = n
			break
		}

		n = strings.TrimSuffix(n, ext)
		ext = strings.ToLower(strings.TrimPrefix(ext, "."))

		switch ext {

		case "gba":
			fallthrough
		case "agb":
			fallthrough
		case "srl":
			fallthrough
		case "bin":
			typ = ext

		case "gz":
			fallthrough
		case "gzip":
			fallthrough
		case "zip":
			fallthrough
		case "7z":
			compressor = ext
		}
	}

	return name, typ, compressor
}
