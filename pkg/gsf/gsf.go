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

package gsf

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"sort"
	"strings"
)

// PSF container, GSF flavor. Layout: magic, version byte, reserved area
// size, compressed program size, CRC32 of the compressed program, reserved
// area, zlib compressed program, optional tag block.
const (
	psfMagic   = "PSF"
	VersionGSF = 0x22

	tagMarker = "[TAG]"

	// GSF program header: entry point, load offset, size
	programHeaderSize = 12

	// execution starts at the cartridge base
	EntryPoint = 0x08000000
)

/*
	NewProgram builds a GSF program section: the 12 byte little endian
	header followed by the payload. For a gsflib the payload is the whole
	image loaded at the ROM base; for a minigsf it is the small parameter
	record loaded at its target address.
*/
func NewProgram(entry, load uint32, data []byte) []byte {
	program := make([]byte, programHeaderSize+len(data))
	binary.LittleEndian.PutUint32(program[0:], entry)
	binary.LittleEndian.PutUint32(program[4:], load)
	binary.LittleEndian.PutUint32(program[8:], uint32(len(data)))
	copy(program[programHeaderSize:], data)
	return program
}

/*
	Write emits one PSF file. Tags are written in key order so that
	identical inputs always produce byte identical files.
*/
func Write(w io.Writer, program []byte, tags map[string]string) error {

	var comp bytes.Buffer
	zw := zlib.NewWriter(&comp)
	if _, err := zw.Write(program); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}

	header := make([]byte, 16)
	copy(header, psfMagic)
	header[3] = VersionGSF
	binary.LittleEndian.PutUint32(header[4:], 0)
	binary.LittleEndian.PutUint32(header[8:], uint32(comp.Len()))
	binary.LittleEndian.PutUint32(
		header[12:], crc32.ChecksumIEEE(comp.Bytes()))

	if _, err := w.Write(header); err != nil {
		return err
	}
	if _, err := w.Write(comp.Bytes()); err != nil {
		return err
	}

	if len(tags) == 0 {
		return nil
	}

	if _, err := io.WriteString(w, tagMarker); err != nil {
		return err
	}

	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s=%s\n", k, tags[k]); err != nil {
			return err
		}
	}

	return nil
}

// WriteFile writes one PSF file to disk.
func WriteFile(path string, program []byte, tags map[string]string) error {

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, program, tags); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

/*
	ReadTags parses the tag block of a PSF file. Files without a tag block
	yield an empty map. The program itself is not decompressed.
*/
func ReadTags(r io.Reader) (map[string]string, error) {

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(data) < 16 || string(data[:3]) != psfMagic {
		return nil, fmt.Errorf("not a PSF file")
	}

	reserved := binary.LittleEndian.Uint32(data[4:])
	compressed := binary.LittleEndian.Uint32(data[8:])

	tagOffset := 16 + int(reserved) + int(compressed)
	tags := map[string]string{}

	if tagOffset+len(tagMarker) > len(data) {
		return tags, nil
	}
	block := data[tagOffset:]
	if string(block[:len(tagMarker)]) != tagMarker {
		return tags, nil
	}

	for _, line := range strings.Split(string(block[len(tagMarker):]), "\n") {
		line = strings.TrimRight(line, "\r")
		if eq := strings.IndexByte(line, '='); eq > 0 {
			key := strings.TrimSpace(line[:eq])
			value := strings.TrimSpace(line[eq+1:])
			if prev, ok := tags[key]; ok {
				// multiline variable
				tags[key] = prev + "\n" + value
			} else {
				tags[key] = value
			}
		}
	}

	return tags, nil
}

// ReadTagsFile reads the tag block of a PSF file on disk.
func ReadTagsFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTags(f)
}
