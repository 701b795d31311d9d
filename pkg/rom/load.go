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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

/*
	Load reads a ROM image from a file or an http(s) URL, unwrapping any
	supported compression. It returns the image bytes and the base name to
	use for derived output files.
*/
func Load(path string) ([]byte, string, error) {

	var src io.ReadCloser
	var err error

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		src, err = NewHTTPSource(path)
	} else {
		var f *os.File
		if f, err = os.Open(path); err == nil {
			src = &fileSource{file: f, reader: bufio.NewReader(f)}
		}
	}
	if err != nil {
		return nil, "", err
	}

	name, _, compressor := SplitNameTypeCompressor(path)

	rd, err := NewReader(src, compressor)
	if err != nil {
		src.Close()
		return nil, "", err
	}
	defer rd.Close()

	if rd.Name() != "" {
		name = rd.Name()
	}

	image, err := io.ReadAll(io.LimitReader(rd, MaxImageSize+1))
	if err != nil {
		return nil, "", err
	}
	if len(image) > MaxImageSize {
		return nil, "", fmt.Errorf("image exceeds %d bytes", MaxImageSize)
	}

	log.WithFields(log.Fields{
		"name": name,
		"size": len(image)}).Debug("image loaded")

	return image, name, nil
}

//
type fileSource struct {
	file   *os.File
	reader io.Reader
}

//
func (fs *fileSource) Read(p []byte) (n int, err error) {
	return fs.reader.Read(p)
}

//
func (fs *fileSource) Close() error {
	return fs.file.Close()
}
